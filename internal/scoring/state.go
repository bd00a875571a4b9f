package scoring

import (
	"errors"
	"fmt"
)

// ErrMissingStrokes is returned when a hole is completed without a numeric
// stroke count. The state machine rejects this rather than coercing a value.
var ErrMissingStrokes = errors.New("cannot complete a hole without a stroke count")

// ErrInvalidStrokes is returned for non-positive stroke counts.
var ErrInvalidStrokes = errors.New("stroke count must be at least 1")

// Transition validates a hole-entry transition and returns the paired
// projection write and audit event. Every legal transition produces both so
// the log and the materialized state never silently diverge: completing a
// hole writes a value event, while clearing or picking up writes a clearing
// event (nil strokes).
func Transition(participantID string, hole int, to HoleStatus, strokes *int, author string, at int64) (HoleState, ScoreEvent, error) {
	state := HoleState{ParticipantID: participantID, Hole: hole, Status: to}
	event := ScoreEvent{ParticipantID: participantID, Hole: hole, CreatedAt: at, Author: author}

	switch to {
	case StatusCompleted:
		if strokes == nil {
			return HoleState{}, ScoreEvent{}, ErrMissingStrokes
		}
		if *strokes < 1 {
			return HoleState{}, ScoreEvent{}, fmt.Errorf("hole %d: %w", hole, ErrInvalidStrokes)
		}
		event.Strokes = strokes
	case StatusNotStarted, StatusPickedUp:
		// Explicit actions, never numeric entries. The clearing event keeps
		// the log consistent with the projection.
		event.Strokes = nil
	default:
		return HoleState{}, ScoreEvent{}, fmt.Errorf("unknown hole status %q", to)
	}

	return state, event, nil
}
