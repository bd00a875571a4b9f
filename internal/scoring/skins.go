package scoring

// computeSkins plays winner-take-all per hole with tie carryover. The
// strictly-unique lowest net wins the hole's skin plus everything carried
// over; any tie for lowest carries one more skin forward. Holes where fewer
// than two players have a value are not contested and leave the carryover
// untouched.
func computeSkins(snap *Snapshot) *DisplayData {
	if len(snap.Participants) < 2 {
		return nil
	}

	d := newDisplay("Skins", true, false)
	values := make(map[string]map[int]int, len(snap.Participants))
	for _, p := range snap.Participants {
		values[p.ID] = make(map[int]int)
	}

	carryover := 0
	for _, hole := range snap.Holes {
		type entry struct {
			id  string
			net int
		}
		var entries []entry
		for _, p := range snap.Participants {
			if res, ok := snap.Resolve(p, hole); ok {
				entries = append(entries, entry{p.ID, res.Net})
			}
		}
		if len(entries) < 2 {
			continue
		}

		best := entries[0]
		unique := true
		for _, e := range entries[1:] {
			if e.net < best.net {
				best = e
				unique = true
			} else if e.net == best.net {
				unique = false
			}
		}

		if !unique {
			carryover++
			for _, e := range entries {
				values[e.id][hole.Number] = 0
				d.setResult(e.id, hole.Number, 0, KindSkins)
			}
			continue
		}

		won := 1 + carryover
		carryover = 0
		for _, e := range entries {
			skins := 0
			if e.id == best.id {
				skins = won
			}
			values[e.id][hole.Number] = skins
			d.setResult(e.id, hole.Number, skins, KindSkins)
		}
	}

	for _, p := range snap.Participants {
		d.Summaries = append(d.Summaries, summarize(p.ID, p.Name, values[p.ID]))
	}
	return d
}
