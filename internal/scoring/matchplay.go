package scoring

import "fmt"

// matchPair resolves the two participants of the match: the first configured
// matchup when explicit pairings exist, otherwise the sole two participants.
// Only the first pairing is ever computed; additional matchups are not a
// round-robin. Returns false when no pair can be resolved.
func matchPair(snap *Snapshot) (Participant, Participant, bool) {
	byID := make(map[string]Participant, len(snap.Participants))
	for _, p := range snap.Participants {
		byID[p.ID] = p
	}

	if len(snap.Config.Matchups) > 0 {
		m := snap.Config.Matchups[0]
		if len(m) != 2 {
			return Participant{}, Participant{}, false
		}
		a, okA := byID[m[0]]
		b, okB := byID[m[1]]
		if !okA || !okB {
			return Participant{}, Participant{}, false
		}
		return a, b, true
	}

	if len(snap.Participants) == 2 {
		return snap.Participants[0], snap.Participants[1], true
	}
	return Participant{}, Participant{}, false
}

// renderMatchState renders a signed hole count from one side's perspective.
func renderMatchState(state int) string {
	switch {
	case state > 0:
		return fmt.Sprintf("%d UP", state)
	case state < 0:
		return fmt.Sprintf("%d DN", -state)
	default:
		return "AS"
	}
}

// computeMatchplay scores a single head-to-head pairing. The strictly lower
// net wins a hole; equal nets halve it; a hole missing either side's score
// is left unresolved and contributes nothing. The summary total is a match
// state string, not a number.
func computeMatchplay(snap *Snapshot) *DisplayData {
	a, b, ok := matchPair(snap)
	if !ok {
		return nil
	}

	d := newDisplay("Match Play", true, false)

	// Signed state from a's perspective, per range and overall.
	var total, front, back, frontN, backN int
	resolved := 0
	for _, hole := range snap.Holes {
		resA, okA := snap.Resolve(a, hole)
		resB, okB := snap.Resolve(b, hole)
		if !okA || !okB {
			continue
		}
		resolved++
		win := 0
		if resA.Net < resB.Net {
			win = 1
		} else if resA.Net > resB.Net {
			win = -1
		}
		total += win
		if hole.Number <= 9 {
			front += win
			frontN++
		} else {
			back += win
			backN++
		}
		d.setResult(a.ID, hole.Number, win, KindMatch)
		d.setResult(b.ID, hole.Number, -win, KindMatch)
	}

	render := func(state, n int) string {
		if n == 0 {
			return NoScore
		}
		return renderMatchState(state)
	}
	d.Summaries = []Summary{
		{EntityID: a.ID, Name: a.Name, Front: render(front, frontN), Back: render(back, backN), Total: render(total, resolved)},
		{EntityID: b.ID, Name: b.Name, Front: render(-front, frontN), Back: render(-back, backN), Total: render(-total, resolved)},
	}
	return d
}
