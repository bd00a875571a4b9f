package round

import (
	"database/sql"
	"sync"

	"github.com/Ware71/CIAGA-sub001/internal/scoring"
)

// store handles all database operations for rounds.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// RoundStatus tracks the lifecycle of a round. Score and state writes are
// only accepted while the round is live.
type RoundStatus string

const (
	StatusLive     RoundStatus = "LIVE"
	StatusFinished RoundStatus = "FINISHED"
)

// Round is one competition round: the immutable course snapshot, the roster,
// and the format configuration. The per-hole entries live in the score event
// log and the hole state projection, not here.
type Round struct {
	ID           string                `json:"id"`
	Name         string                `json:"name"`
	CourseName   string                `json:"course_name"`
	Status       RoundStatus           `json:"status"`
	CreatedAt    int64                 `json:"created_at"`
	FinishedAt   *int64                `json:"finished_at,omitempty"`
	Config       scoring.FormatConfig  `json:"config"`
	Holes        []scoring.Hole        `json:"holes"`
	Participants []scoring.Participant `json:"participants"`
	Teams        []scoring.Team        `json:"teams"`
}

// RoundInfo is the listing row for a round.
type RoundInfo struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	CourseName string         `json:"course_name"`
	Status     RoundStatus    `json:"status"`
	Format     scoring.Format `json:"format"`
	CreatedAt  int64          `json:"created_at"`
}
