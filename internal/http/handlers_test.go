package http

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Ware71/CIAGA-sub001/internal/config"
	"github.com/Ware71/CIAGA-sub001/internal/metrics"
	"github.com/Ware71/CIAGA-sub001/internal/notifier"
	"github.com/Ware71/CIAGA-sub001/internal/pubsub"
	"github.com/Ware71/CIAGA-sub001/internal/round"
	"github.com/Ware71/CIAGA-sub001/internal/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

type testServer struct {
	server   *Server
	store    *round.MockStore
	metrics  *metrics.Mock
	notifier *notifier.Mock
	pubsub   *pubsub.Mock
}

func newTestServer() *testServer {
	store := round.NewMock()
	m := metrics.NewMock()
	n := notifier.NewMock()
	ps := pubsub.NewMock()
	cfg := config.Config{ScoreTopicID: "score-events"}
	return &testServer{
		server:   NewServer(store, m, http.NotFoundHandler(), cfg, n, ps),
		store:    store,
		metrics:  m,
		notifier: n,
		pubsub:   ps,
	}
}

func stablefordRound() *round.Round {
	return &round.Round{
		ID:     "r1",
		Name:   "Saturday Medal",
		Status: round.StatusLive,
		Config: scoring.FormatConfig{Format: scoring.FormatStableford},
	}
}

func stablefordSnapshot() *scoring.Snapshot {
	holes := make([]scoring.Hole, 0, 18)
	for n := 1; n <= 18; n++ {
		holes = append(holes, scoring.Hole{Number: n, Par: 4, StrokeIndex: n})
	}
	snap := &scoring.Snapshot{
		Holes: holes,
		Participants: []scoring.Participant{
			{ID: "p1", Name: "Alice"},
			{ID: "p2", Name: "Bob"},
		},
		Config: scoring.FormatConfig{Format: scoring.FormatStableford},
		Scores: make(map[scoring.ScoreKey]int),
		States: make(map[scoring.ScoreKey]scoring.HoleStatus),
	}
	// Alice pars hole 1, Bob bogeys it.
	snap.Scores[scoring.ScoreKey{ParticipantID: "p1", Hole: 1}] = 4
	snap.States[scoring.ScoreKey{ParticipantID: "p1", Hole: 1}] = scoring.StatusCompleted
	snap.Scores[scoring.ScoreKey{ParticipantID: "p2", Hole: 1}] = 5
	snap.States[scoring.ScoreKey{ParticipantID: "p2", Hole: 1}] = scoring.StatusCompleted
	return snap
}

func TestHealthCheckHandler(t *testing.T) {
	ts := newTestServer()
	rec := httptest.NewRecorder()
	ts.server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSubmitScoreHandler(t *testing.T) {
	t.Run("records the score and publishes the event", func(t *testing.T) {
		ts := newTestServer()
		body := `{"round_id":"r1","participant_id":"p1","hole":3,"strokes":5,"author":"p1"}`
		rec := httptest.NewRecorder()
		ts.server.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/score", strings.NewReader(body)))

		require.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, ts.store.SubmitScoreCalls, 1)
		assert.Equal(t, 5, ts.store.SubmitScoreCalls[0].Strokes)
		assert.Equal(t, 1, ts.metrics.ScoresRecorded())
		require.Len(t, ts.pubsub.SendMessageCalls, 1)
		assert.Equal(t, "score-events", ts.pubsub.SendMessageCalls[0].Topic)
	})

	t.Run("dry run skips publishing", func(t *testing.T) {
		ts := newTestServer()
		body := `{"round_id":"r1","participant_id":"p1","hole":3,"strokes":5,"author":"p1"}`
		rec := httptest.NewRecorder()
		ts.server.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/score?dry_run=true", strings.NewReader(body)))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, ts.pubsub.SendMessageCalls)
	})

	t.Run("store errors map to status codes", func(t *testing.T) {
		ts := newTestServer()
		ts.store.SubmitScoreFunc = func(roundID, participantID string, hole, strokes int, author string) (*scoring.ScoreEvent, error) {
			return nil, round.ErrRoundFinished
		}
		body := `{"round_id":"r1","participant_id":"p1","hole":3,"strokes":5,"author":"p1"}`
		rec := httptest.NewRecorder()
		ts.server.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/score", strings.NewReader(body)))
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("invalid stroke counts are a bad request", func(t *testing.T) {
		ts := newTestServer()
		ts.store.SubmitScoreFunc = func(roundID, participantID string, hole, strokes int, author string) (*scoring.ScoreEvent, error) {
			return nil, fmt.Errorf("hole 3: %w", scoring.ErrInvalidStrokes)
		}
		body := `{"round_id":"r1","participant_id":"p1","hole":3,"strokes":0,"author":"p1"}`
		rec := httptest.NewRecorder()
		ts.server.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/score", strings.NewReader(body)))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPickupHandler(t *testing.T) {
	ts := newTestServer()
	body := `{"round_id":"r1","participant_id":"p1","hole":7,"author":"p2"}`
	rec := httptest.NewRecorder()
	ts.server.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/pickup", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, ts.store.MarkPickedUpCalls, 1)
	assert.Equal(t, 7, ts.store.MarkPickedUpCalls[0].Hole)
	assert.Equal(t, 1, ts.metrics.Pickups())
}

func TestLeaderboardHandler(t *testing.T) {
	t.Run("computes all views and ranks the format view", func(t *testing.T) {
		ts := newTestServer()
		ts.store.GetRoundFunc = func(roundID string) (*round.Round, error) { return stablefordRound(), nil }
		ts.store.SnapshotFunc = func(roundID string) (*scoring.Snapshot, error) { return stablefordSnapshot(), nil }

		rec := httptest.NewRecorder()
		ts.server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/leaderboard?id=r1", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp LeaderboardResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		require.Len(t, resp.Views, 3, "gross, net and stableford views")
		assert.Equal(t, "Stableford", resp.Views[2].Label)
		require.Len(t, resp.Ranked, 2)
		assert.Equal(t, "Alice", resp.Ranked[0].Name, "two points beat one")
		assert.Equal(t, 1, ts.metrics.LeaderboardComputes())
	})

	t.Run("unknown round is a 404", func(t *testing.T) {
		ts := newTestServer()
		rec := httptest.NewRecorder()
		ts.server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/leaderboard?id=missing", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestFinishRoundHandler(t *testing.T) {
	t.Run("freezes the round and notifies", func(t *testing.T) {
		ts := newTestServer()
		ts.store.GetRoundFunc = func(roundID string) (*round.Round, error) { return stablefordRound(), nil }
		ts.store.SnapshotFunc = func(roundID string) (*scoring.Snapshot, error) { return stablefordSnapshot(), nil }

		rec := httptest.NewRecorder()
		ts.server.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/finish?id=r1", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []string{"r1"}, ts.store.FinishRoundCalls)
		require.Len(t, ts.notifier.SendRoundResultCalls, 1)
		assert.False(t, ts.notifier.SendRoundResultCalls[0].DryRun)
		require.NotNil(t, ts.notifier.SendRoundResultCalls[0].Board)
		assert.Equal(t, "Stableford", ts.notifier.SendRoundResultCalls[0].Board.Label)
	})

	t.Run("dry run leaves the round live", func(t *testing.T) {
		ts := newTestServer()
		ts.store.GetRoundFunc = func(roundID string) (*round.Round, error) { return stablefordRound(), nil }
		ts.store.SnapshotFunc = func(roundID string) (*scoring.Snapshot, error) { return stablefordSnapshot(), nil }

		rec := httptest.NewRecorder()
		ts.server.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/finish?id=r1&dry_run=true", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, ts.store.FinishRoundCalls)
		require.Len(t, ts.notifier.SendRoundResultCalls, 1)
		assert.True(t, ts.notifier.SendRoundResultCalls[0].DryRun)
	})
}

func TestScoreEventPushHandler(t *testing.T) {
	ts := newTestServer()

	strokes := 4
	payload, err := msgpack.Marshal(pubsub.ScoreEventMessage{
		RoundID: "r1",
		Event:   scoring.ScoreEvent{ID: "ev1", ParticipantID: "p1", Hole: 2, Strokes: &strokes, CreatedAt: 1000, Author: "p1"},
		Status:  scoring.StatusCompleted,
	})
	require.NoError(t, err)

	envelope := fmt.Sprintf(`{"message":{"data":"%s"}}`, base64.StdEncoding.EncodeToString(payload))
	rec := httptest.NewRecorder()
	ts.server.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/pubsub/score-events", bytes.NewReader([]byte(envelope))))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, ts.store.ApplyEventCalls, 1)
	call := ts.store.ApplyEventCalls[0]
	assert.Equal(t, "r1", call.RoundID)
	assert.Equal(t, "ev1", call.Event.ID)
	require.NotNil(t, call.Event.Strokes)
	assert.Equal(t, 4, *call.Event.Strokes)
	assert.Equal(t, scoring.StatusCompleted, call.Status)

	t.Run("late events for finished rounds are acked", func(t *testing.T) {
		ts := newTestServer()
		ts.store.ApplyEventFunc = func(roundID string, event scoring.ScoreEvent, status scoring.HoleStatus) error {
			return round.ErrRoundFinished
		}
		rec := httptest.NewRecorder()
		ts.server.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/pubsub/score-events", bytes.NewReader([]byte(envelope))))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
