package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                  sync.Mutex
	scoresRecorded      int
	pickups             int
	leaderboardComputes int
	computeDurations    []float64
	slackNotifSent      int
	slackNotifFailed    int
	startupTime         float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		computeDurations: make([]float64, 0),
	}
}

func (m *Mock) IncScoresRecorded() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scoresRecorded++
}

func (m *Mock) IncPickups() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pickups++
}

func (m *Mock) IncLeaderboardComputes() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.leaderboardComputes++
}

func (m *Mock) ObserveComputeDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.computeDurations = append(m.computeDurations, duration)
}

func (m *Mock) IncSlackNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifSent++
}

func (m *Mock) IncSlackNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifFailed++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// ScoresRecorded returns the number of times IncScoresRecorded was called.
func (m *Mock) ScoresRecorded() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.scoresRecorded
}

// Pickups returns the number of times IncPickups was called.
func (m *Mock) Pickups() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pickups
}

// LeaderboardComputes returns the number of times IncLeaderboardComputes was called.
func (m *Mock) LeaderboardComputes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.leaderboardComputes
}

// SlackNotifSent returns the number of times IncSlackNotifSent was called.
func (m *Mock) SlackNotifSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifSent
}

// SlackNotifFailed returns the number of times IncSlackNotifFailed was called.
func (m *Mock) SlackNotifFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifFailed
}
