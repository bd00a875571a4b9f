package scoring

// LatestScores reduces the append-only event log to the current value per
// (participant, hole) key, taking the event with the maximum timestamp.
// Events may arrive out of order; arrival order never matters. On equal
// timestamps the later event in the slice wins. Keys whose latest event is
// a clear (nil strokes) are absent from the result.
func LatestScores(events []ScoreEvent) map[ScoreKey]int {
	latest := make(map[ScoreKey]ScoreEvent)
	for _, ev := range events {
		key := ScoreKey{ev.ParticipantID, ev.Hole}
		if cur, ok := latest[key]; !ok || ev.CreatedAt >= cur.CreatedAt {
			latest[key] = ev
		}
	}

	scores := make(map[ScoreKey]int, len(latest))
	for key, ev := range latest {
		if ev.Strokes != nil {
			scores[key] = *ev.Strokes
		}
	}
	return scores
}
