package notifier

import (
	"github.com/Ware71/CIAGA-sub001/internal/round"
	"github.com/Ware71/CIAGA-sub001/internal/scoring"
)

// Notifier defines a high-level interface for sending notifications about business events.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	// SendRoundResult posts the final standings when a round is finished.
	// board is the format-specific view and may be nil for plain strokeplay;
	// ranked is the ordered leaderboard.
	SendRoundResult(r *round.Round, board *scoring.DisplayData, ranked []scoring.Summary, dryRun bool) error
}
