package notifier

import (
	"sync"

	"github.com/Ware71/CIAGA-sub001/internal/round"
	"github.com/Ware71/CIAGA-sub001/internal/scoring"
)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	SendRoundResultFunc func(r *round.Round, board *scoring.DisplayData, ranked []scoring.Summary, dryRun bool) error

	SendRoundResultCalls []struct {
		Round  *round.Round
		Board  *scoring.DisplayData
		Ranked []scoring.Summary
		DryRun bool
	}
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) SendRoundResult(r *round.Round, board *scoring.DisplayData, ranked []scoring.Summary, dryRun bool) error {
	m.mu.Lock()
	m.SendRoundResultCalls = append(m.SendRoundResultCalls, struct {
		Round  *round.Round
		Board  *scoring.DisplayData
		Ranked []scoring.Summary
		DryRun bool
	}{r, board, ranked, dryRun})
	m.mu.Unlock()
	if m.SendRoundResultFunc != nil {
		return m.SendRoundResultFunc(r, board, ranked, dryRun)
	}
	return nil
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendRoundResultCalls = nil
}
