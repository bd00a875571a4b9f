package scoring

// Resolved is the gross/net value of one completed or picked-up hole.
type Resolved struct {
	Gross    int
	Net      int
	PickedUp bool
}

// NetFromGross applies handicap strokes to a gross score. Net is floored
// at 1 so a heavily-stroked hole can never resolve to zero or below.
func NetFromGross(gross, received int) int {
	net := gross - received
	if net < 1 {
		net = 1
	}
	return net
}

// Resolve turns the current entry state of one (participant, hole) cell into
// gross/net values. The second return is false when the hole carries no
// value: not started, completed without a current score (a transient log /
// projection divergence), or picked up on a hole with unknown par.
//
// A picked-up hole scores as net double bogey. Gross adds the strokes the
// player would have received so that net = gross - received still holds.
func (s *Snapshot) Resolve(p Participant, hole Hole) (Resolved, bool) {
	key := ScoreKey{p.ID, hole.Number}
	received := StrokesReceived(p.PlayingHandicap, hole.StrokeIndex)

	switch s.Status(p.ID, hole.Number) {
	case StatusCompleted:
		gross, ok := s.Scores[key]
		if !ok {
			return Resolved{}, false
		}
		return Resolved{Gross: gross, Net: NetFromGross(gross, received)}, true
	case StatusPickedUp:
		if hole.Par <= 0 {
			return Resolved{}, false
		}
		return Resolved{
			Gross:    hole.Par + 2 + received,
			Net:      hole.Par + 2,
			PickedUp: true,
		}, true
	default:
		return Resolved{}, false
	}
}
