package scoring

import "math"

// StrokesReceived returns the handicap strokes a player receives on a hole,
// per the WHS stroke-allocation table. A handicap of 18 gives one stroke on
// every hole; 19 gives a second stroke on the hardest hole (stroke index 1),
// and so on. Negative handicaps are clamped to zero and fractional handicaps
// are floored. An invalid stroke index yields zero strokes.
func StrokesReceived(playingHandicap float64, strokeIndex int) int {
	if strokeIndex < 1 || strokeIndex > 18 {
		return 0
	}
	h := int(math.Floor(playingHandicap))
	if h < 0 {
		h = 0
	}
	received := h / 18
	if strokeIndex <= h%18 {
		received++
	}
	return received
}
