package scoring

import (
	"sort"
	"strconv"
	"strings"
)

// matchStateRank parses a match-state total into a sortable rank: wins sort
// before ties before losses, bigger wins first, bigger losses last. The
// second return is false for totals that are not match states.
func matchStateRank(total string) (int, bool) {
	if total == "AS" {
		return 0, true
	}
	if n, ok := strings.CutSuffix(total, " UP"); ok {
		if v, err := strconv.Atoi(n); err == nil {
			return -v, true
		}
	}
	if n, ok := strings.CutSuffix(total, " DN"); ok {
		if v, err := strconv.Atoi(n); err == nil {
			return v, true
		}
	}
	return 0, false
}

// RankSummaries orders leaderboard rows. If any total is a match-state
// string the whole board sorts by match state; otherwise numerically,
// ascending for lower-is-better formats and descending when higher is
// better. Rows without a value yet sort last, and name breaks all ties.
// The input slice is not modified.
func RankSummaries(summaries []Summary, higherIsBetter bool) []Summary {
	ranked := make([]Summary, len(summaries))
	copy(ranked, summaries)

	matchState := false
	for _, s := range ranked {
		if _, ok := matchStateRank(s.Total); ok && s.Total != NoScore {
			matchState = true
			break
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Total == NoScore || b.Total == NoScore {
			if (a.Total == NoScore) != (b.Total == NoScore) {
				return b.Total == NoScore
			}
			return a.Name < b.Name
		}

		if matchState {
			ra, okA := matchStateRank(a.Total)
			rb, okB := matchStateRank(b.Total)
			if okA != okB {
				return okA
			}
			if ra != rb {
				return ra < rb
			}
			return a.Name < b.Name
		}

		va, errA := strconv.Atoi(a.Total)
		vb, errB := strconv.Atoi(b.Total)
		if (errA == nil) != (errB == nil) {
			return errA == nil
		}
		if errA == nil && va != vb {
			if higherIsBetter {
				return va > vb
			}
			return va < vb
		}
		return a.Name < b.Name
	})
	return ranked
}
