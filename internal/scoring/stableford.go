package scoring

// stablefordPoints scores one resolved hole against the configured points
// table. Holes with unknown par score zero points rather than guessing.
func stablefordPoints(cfg FormatConfig, hole Hole, res Resolved) (int, bool) {
	if hole.Par <= 0 {
		return 0, false
	}
	table := cfg.PointsTable
	if len(table) == 0 {
		table = DefaultPointsTable()
	}
	return table.Points(res.Net - hole.Par), true
}

func computeStableford(snap *Snapshot) *DisplayData {
	d := newDisplay("Stableford", true, false)
	for _, p := range snap.Participants {
		values := make(map[int]int)
		for _, hole := range snap.Holes {
			res, ok := snap.Resolve(p, hole)
			if !ok {
				continue
			}
			pts, ok := stablefordPoints(snap.Config, hole, res)
			if !ok {
				continue
			}
			values[hole.Number] = pts
			d.setResult(p.ID, hole.Number, pts, KindPoints)
		}
		d.Summaries = append(d.Summaries, summarize(p.ID, p.Name, values))
	}
	return d
}
