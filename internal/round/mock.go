package round

import (
	"sync"

	"github.com/Ware71/CIAGA-sub001/internal/scoring"
)

// MockStore is a mock implementation of the RoundStore interface for
// testing. It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	CreateRoundFunc  func(r *Round) error
	GetRoundFunc     func(roundID string) (*Round, error)
	ListRoundsFunc   func() ([]RoundInfo, error)
	SnapshotFunc     func(roundID string) (*scoring.Snapshot, error)
	EventsFunc       func(roundID string) ([]scoring.ScoreEvent, error)
	SubmitScoreFunc  func(roundID, participantID string, hole, strokes int, author string) (*scoring.ScoreEvent, error)
	MarkPickedUpFunc func(roundID, participantID string, hole int, author string) (*scoring.ScoreEvent, error)
	ClearHoleFunc    func(roundID, participantID string, hole int, author string) (*scoring.ScoreEvent, error)
	ApplyEventFunc   func(roundID string, event scoring.ScoreEvent, status scoring.HoleStatus) error
	FinishRoundFunc  func(roundID string) error

	// Call records
	CreateRoundCalls []*Round
	SubmitScoreCalls []struct {
		RoundID       string
		ParticipantID string
		Hole          int
		Strokes       int
		Author        string
	}
	MarkPickedUpCalls []struct {
		RoundID       string
		ParticipantID string
		Hole          int
		Author        string
	}
	ClearHoleCalls []struct {
		RoundID       string
		ParticipantID string
		Hole          int
		Author        string
	}
	ApplyEventCalls []struct {
		RoundID string
		Event   scoring.ScoreEvent
		Status  scoring.HoleStatus
	}
	FinishRoundCalls []string
	ClearCalls       int
	ClearRoundCalls  []string
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

func (m *MockStore) CreateRound(r *Round) error {
	m.mu.Lock()
	m.CreateRoundCalls = append(m.CreateRoundCalls, r)
	m.mu.Unlock()
	if m.CreateRoundFunc != nil {
		return m.CreateRoundFunc(r)
	}
	return nil
}

func (m *MockStore) GetRound(roundID string) (*Round, error) {
	if m.GetRoundFunc != nil {
		return m.GetRoundFunc(roundID)
	}
	return nil, ErrRoundNotFound
}

func (m *MockStore) ListRounds() ([]RoundInfo, error) {
	if m.ListRoundsFunc != nil {
		return m.ListRoundsFunc()
	}
	return nil, nil
}

func (m *MockStore) Snapshot(roundID string) (*scoring.Snapshot, error) {
	if m.SnapshotFunc != nil {
		return m.SnapshotFunc(roundID)
	}
	return nil, ErrRoundNotFound
}

func (m *MockStore) Events(roundID string) ([]scoring.ScoreEvent, error) {
	if m.EventsFunc != nil {
		return m.EventsFunc(roundID)
	}
	return nil, nil
}

func (m *MockStore) SubmitScore(roundID, participantID string, hole, strokes int, author string) (*scoring.ScoreEvent, error) {
	m.mu.Lock()
	m.SubmitScoreCalls = append(m.SubmitScoreCalls, struct {
		RoundID       string
		ParticipantID string
		Hole          int
		Strokes       int
		Author        string
	}{roundID, participantID, hole, strokes, author})
	m.mu.Unlock()
	if m.SubmitScoreFunc != nil {
		return m.SubmitScoreFunc(roundID, participantID, hole, strokes, author)
	}
	return &scoring.ScoreEvent{ParticipantID: participantID, Hole: hole, Strokes: &strokes}, nil
}

func (m *MockStore) MarkPickedUp(roundID, participantID string, hole int, author string) (*scoring.ScoreEvent, error) {
	m.mu.Lock()
	m.MarkPickedUpCalls = append(m.MarkPickedUpCalls, struct {
		RoundID       string
		ParticipantID string
		Hole          int
		Author        string
	}{roundID, participantID, hole, author})
	m.mu.Unlock()
	if m.MarkPickedUpFunc != nil {
		return m.MarkPickedUpFunc(roundID, participantID, hole, author)
	}
	return &scoring.ScoreEvent{ParticipantID: participantID, Hole: hole}, nil
}

func (m *MockStore) ClearHole(roundID, participantID string, hole int, author string) (*scoring.ScoreEvent, error) {
	m.mu.Lock()
	m.ClearHoleCalls = append(m.ClearHoleCalls, struct {
		RoundID       string
		ParticipantID string
		Hole          int
		Author        string
	}{roundID, participantID, hole, author})
	m.mu.Unlock()
	if m.ClearHoleFunc != nil {
		return m.ClearHoleFunc(roundID, participantID, hole, author)
	}
	return &scoring.ScoreEvent{ParticipantID: participantID, Hole: hole}, nil
}

func (m *MockStore) ApplyEvent(roundID string, event scoring.ScoreEvent, status scoring.HoleStatus) error {
	m.mu.Lock()
	m.ApplyEventCalls = append(m.ApplyEventCalls, struct {
		RoundID string
		Event   scoring.ScoreEvent
		Status  scoring.HoleStatus
	}{roundID, event, status})
	m.mu.Unlock()
	if m.ApplyEventFunc != nil {
		return m.ApplyEventFunc(roundID, event, status)
	}
	return nil
}

func (m *MockStore) FinishRound(roundID string) error {
	m.mu.Lock()
	m.FinishRoundCalls = append(m.FinishRoundCalls, roundID)
	m.mu.Unlock()
	if m.FinishRoundFunc != nil {
		return m.FinishRoundFunc(roundID)
	}
	return nil
}

func (m *MockStore) Clear() {
	m.mu.Lock()
	m.ClearCalls++
	m.mu.Unlock()
}

func (m *MockStore) ClearRound(roundID string) {
	m.mu.Lock()
	m.ClearRoundCalls = append(m.ClearRoundCalls, roundID)
	m.mu.Unlock()
}
