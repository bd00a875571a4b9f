package round

import "github.com/Ware71/CIAGA-sub001/internal/scoring"

// RoundStore defines the interface for interacting with round data.
type RoundStore interface {
	CreateRound(r *Round) error
	GetRound(roundID string) (*Round, error)
	ListRounds() ([]RoundInfo, error)
	// Snapshot loads the round plus the latest-per-key score projection and
	// hole state map as one immutable value for the scoring engine.
	Snapshot(roundID string) (*scoring.Snapshot, error)
	Events(roundID string) ([]scoring.ScoreEvent, error)

	SubmitScore(roundID, participantID string, hole, strokes int, author string) (*scoring.ScoreEvent, error)
	MarkPickedUp(roundID, participantID string, hole int, author string) (*scoring.ScoreEvent, error)
	ClearHole(roundID, participantID string, hole int, author string) (*scoring.ScoreEvent, error)
	// ApplyEvent records a score event produced elsewhere (pub/sub fan-in)
	// together with its matching hole state.
	ApplyEvent(roundID string, event scoring.ScoreEvent, status scoring.HoleStatus) error

	FinishRound(roundID string) error
	Clear()
	ClearRound(roundID string)
}
