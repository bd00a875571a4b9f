package scoring

import "sort"

// metric extracts one member's per-hole value for a team format and fixes
// the direction in which values compare.
type metric struct {
	value         func(snap *Snapshot, p Participant, hole Hole) (int, bool)
	lowerIsBetter bool
	kind          ResultKind
}

var grossMetric = metric{
	value: func(snap *Snapshot, p Participant, hole Hole) (int, bool) {
		res, ok := snap.Resolve(p, hole)
		return res.Gross, ok
	},
	lowerIsBetter: true,
	kind:          KindStrokes,
}

var netMetric = metric{
	value: func(snap *Snapshot, p Participant, hole Hole) (int, bool) {
		res, ok := snap.Resolve(p, hole)
		return res.Net, ok
	},
	lowerIsBetter: true,
	kind:          KindStrokes,
}

var pointsMetric = metric{
	value: func(snap *Snapshot, p Participant, hole Hole) (int, bool) {
		res, ok := snap.Resolve(p, hole)
		if !ok {
			return 0, false
		}
		return stablefordPoints(snap.Config, hole, res)
	},
	lowerIsBetter: false,
	kind:          KindPoints,
}

// computeTeamSum scores team strokeplay and team stableford: each hole's
// team value is the sum over all present members.
func computeTeamSum(snap *Snapshot, label string, m metric) *DisplayData {
	return computeTeamFormat(snap, label, m, ModeAll, 0)
}

// computeBestBall scores the best-ball family: each hole's team value is the
// sum of the best (or worst, or all) N present member values, where "best"
// follows the metric's direction.
func computeBestBall(snap *Snapshot, label string, m metric, defaultCount int) *DisplayData {
	mode := snap.Config.TeamScoringMode
	if mode == "" {
		mode = ModeBest
	}
	count := snap.Config.CountPerHole
	if count <= 0 {
		count = defaultCount
	}
	return computeTeamFormat(snap, label, m, mode, count)
}

func computeTeamFormat(snap *Snapshot, label string, m metric, mode TeamScoringMode, count int) *DisplayData {
	rosters := ResolveTeams(snap)
	if len(rosters) == 0 {
		return nil
	}

	d := newDisplay(label, !m.lowerIsBetter, true)
	for _, roster := range rosters {
		values := make(map[int]int)
		for _, hole := range snap.Holes {
			var memberValues []int
			for _, p := range roster.Members {
				if v, ok := m.value(snap, p, hole); ok {
					memberValues = append(memberValues, v)
				}
			}
			if len(memberValues) == 0 {
				continue
			}

			total := 0
			for _, v := range selectValues(memberValues, mode, count, m.lowerIsBetter) {
				total += v
			}
			values[hole.Number] = total
			d.setResult(roster.Team.ID, hole.Number, total, m.kind)
		}
		d.Summaries = append(d.Summaries, summarize(roster.Team.ID, roster.Team.Name, values))
	}
	return d
}

// selectValues picks which member values count on a hole. "Best" is lowest
// for stroke metrics and highest for points metrics.
func selectValues(values []int, mode TeamScoringMode, count int, lowerIsBetter bool) []int {
	if mode == ModeAll || count <= 0 || count >= len(values) {
		return values
	}
	sorted := make([]int, len(values))
	copy(sorted, values)
	if lowerIsBetter {
		sort.Ints(sorted)
	} else {
		sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
	}
	if mode == ModeWorst {
		return sorted[len(sorted)-count:]
	}
	return sorted[:count]
}

// computeSharedBall scores scramble, greensomes and foursomes: one ball per
// team, so the team's hole value is the first present member's gross score.
func computeSharedBall(snap *Snapshot, label string) *DisplayData {
	rosters := ResolveTeams(snap)
	if len(rosters) == 0 {
		return nil
	}

	d := newDisplay(label, false, true)
	for _, roster := range rosters {
		values := make(map[int]int)
		for _, hole := range snap.Holes {
			for _, p := range roster.Members {
				res, ok := snap.Resolve(p, hole)
				if !ok {
					continue
				}
				values[hole.Number] = res.Gross
				d.setResult(roster.Team.ID, hole.Number, res.Gross, KindStrokes)
				break
			}
		}
		d.Summaries = append(d.Summaries, summarize(roster.Team.ID, roster.Team.Name, values))
	}
	return d
}
