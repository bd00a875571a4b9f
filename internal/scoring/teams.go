package scoring

// TeamRoster is one team and its members, in roster order.
type TeamRoster struct {
	Team    Team
	Members []Participant
}

// ResolveTeams groups participants into rosters by their team reference.
// Participants referencing a team absent from the team list are silently
// excluded: mixed team/individual rosters are normal while a round is being
// set up. Rosters come back in team-number order; teams with no members are
// kept so an empty column still renders.
func ResolveTeams(snap *Snapshot) []TeamRoster {
	byID := make(map[string]int, len(snap.Teams))
	rosters := make([]TeamRoster, 0, len(snap.Teams))
	for _, t := range snap.Teams {
		byID[t.ID] = len(rosters)
		rosters = append(rosters, TeamRoster{Team: t})
	}
	for _, p := range snap.Participants {
		if p.TeamID == "" {
			continue
		}
		idx, ok := byID[p.TeamID]
		if !ok {
			continue
		}
		rosters[idx].Members = append(rosters[idx].Members, p)
	}

	// Teams are stored in number order already; keep it stable regardless.
	for i := 1; i < len(rosters); i++ {
		for j := i; j > 0 && rosters[j-1].Team.Number > rosters[j].Team.Number; j-- {
			rosters[j-1], rosters[j] = rosters[j], rosters[j-1]
		}
	}
	return rosters
}
