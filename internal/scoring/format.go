package scoring

// Compute dispatches to the calculator for the configured format and returns
// its display data, or nil when the format needs no view of its own beyond
// the standard gross and net views. Calculators never fail: an incomplete or
// misconfigured round degrades to a partial or empty display.
func Compute(snap *Snapshot) *DisplayData {
	switch snap.Config.Format {
	case FormatStrokeplay:
		return computeAllowance(snap)
	case FormatStableford:
		return computeStableford(snap)
	case FormatMatchplay:
		return computeMatchplay(snap)
	case FormatSkins:
		return computeSkins(snap)
	case FormatTeamStrokeplay:
		return computeTeamSum(snap, "Team Strokeplay", grossMetric)
	case FormatTeamStableford:
		return computeTeamSum(snap, "Team Stableford", pointsMetric)
	case FormatBestBall:
		return computeBestBall(snap, "Best Ball", netMetric, 1)
	case FormatPairsStableford:
		return computeBestBall(snap, "Pairs Stableford", pointsMetric, 2)
	case FormatScramble:
		return computeSharedBall(snap, "Scramble")
	case FormatGreensomes:
		return computeSharedBall(snap, "Greensomes")
	case FormatFoursomes:
		return computeSharedBall(snap, "Foursomes")
	case FormatRotatingPartner:
		// Known gap: no scoring rules exist for this format yet.
		return newDisplay("Rotating Partner", false, true)
	default:
		return nil
	}
}

// GrossView computes the plain gross strokeplay view every round gets.
func GrossView(snap *Snapshot) *DisplayData {
	return computeStrokeplay(snap, "Gross", func(r Resolved) int { return r.Gross })
}

// NetView computes the plain net strokeplay view every round gets.
func NetView(snap *Snapshot) *DisplayData {
	return computeStrokeplay(snap, "Net", func(r Resolved) int { return r.Net })
}

func computeStrokeplay(snap *Snapshot, label string, value func(Resolved) int) *DisplayData {
	d := newDisplay(label, false, false)
	for _, p := range snap.Participants {
		values := make(map[int]int)
		for _, hole := range snap.Holes {
			res, ok := snap.Resolve(p, hole)
			if !ok {
				continue
			}
			v := value(res)
			values[hole.Number] = v
			d.setResult(p.ID, hole.Number, v, KindStrokes)
		}
		d.Summaries = append(d.Summaries, summarize(p.ID, p.Name, values))
	}
	return d
}

// computeAllowance emits an allowance-adjusted net view when any playing
// handicap differs from the raw course handicap, so the two can be compared.
// At full allowance the gross and net views already cover plain strokeplay
// and no extra view is needed.
func computeAllowance(snap *Snapshot) *DisplayData {
	adjusted := false
	for _, p := range snap.Participants {
		if p.PlayingHandicap != p.CourseHandicap {
			adjusted = true
			break
		}
	}
	if !adjusted {
		return nil
	}
	return computeStrokeplay(snap, "Net (Allowance)", func(r Resolved) int { return r.Net })
}
