package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Ware71/CIAGA-sub001/internal/pubsub"
	"github.com/Ware71/CIAGA-sub001/internal/round"
	"github.com/Ware71/CIAGA-sub001/internal/scoring"
	"github.com/charmbracelet/log"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

func (s *Server) ClearStoreHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		roundID := r.URL.Query().Get("roundID")
		if roundID != "" {
			log.Info("Received request to clear a specific round", "roundID", roundID)
			s.Store.ClearRound(roundID)
			w.WriteHeader(http.StatusOK)
			fmt.Fprintf(w, "Cleared round %s from store!", roundID)
			return
		}
		log.Info("Received request to clear entire store")
		s.Store.Clear()
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "Store cleared!")
	}
}

func (s *Server) ListRoundsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rounds, err := s.Store.ListRounds()
		if err != nil {
			http.Error(w, "Failed to get rounds", http.StatusInternalServerError)
			log.Error("Failed to get rounds from store", "error", err)
			return
		}
		writeJSON(w, rounds)
	}
}

func (s *Server) CreateRoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var rnd round.Round
		if err := json.NewDecoder(r.Body).Decode(&rnd); err != nil {
			http.Error(w, "Invalid round payload", http.StatusBadRequest)
			return
		}
		if rnd.Config.Format == "" {
			http.Error(w, "Missing format", http.StatusBadRequest)
			return
		}
		if err := s.Store.CreateRound(&rnd); err != nil {
			http.Error(w, "Failed to create round", http.StatusInternalServerError)
			log.Error("Failed to create round", "error", err)
			return
		}
		log.Info("Round created", "roundID", rnd.ID, "format", rnd.Config.Format)
		writeJSON(w, rnd)
	}
}

func (s *Server) GetRoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rnd, err := s.Store.GetRound(r.URL.Query().Get("id"))
		if err != nil {
			writeStoreError(w, err)
			return
		}
		writeJSON(w, rnd)
	}
}

func (s *Server) SubmitScoreHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req scoreRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid score payload", http.StatusBadRequest)
			return
		}

		event, err := s.Store.SubmitScore(req.RoundID, req.ParticipantID, req.Hole, req.Strokes, req.Author)
		if err != nil {
			writeStoreError(w, err)
			return
		}
		s.Metrics.IncScoresRecorded()
		s.publishEvent(req.RoundID, *event, scoring.StatusCompleted, isDryRunFromContext(r))
		writeJSON(w, event)
	}
}

func (s *Server) PickupHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req holeActionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid pickup payload", http.StatusBadRequest)
			return
		}

		event, err := s.Store.MarkPickedUp(req.RoundID, req.ParticipantID, req.Hole, req.Author)
		if err != nil {
			writeStoreError(w, err)
			return
		}
		s.Metrics.IncPickups()
		s.publishEvent(req.RoundID, *event, scoring.StatusPickedUp, isDryRunFromContext(r))
		writeJSON(w, event)
	}
}

func (s *Server) ClearHoleHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req holeActionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid clear payload", http.StatusBadRequest)
			return
		}

		event, err := s.Store.ClearHole(req.RoundID, req.ParticipantID, req.Hole, req.Author)
		if err != nil {
			writeStoreError(w, err)
			return
		}
		s.publishEvent(req.RoundID, *event, scoring.StatusNotStarted, isDryRunFromContext(r))
		writeJSON(w, event)
	}
}

// LeaderboardHandler computes every applicable view for a round: the gross
// and net views every round gets, plus the format view when the format has
// one, and ranks the primary view's summaries.
func (s *Server) LeaderboardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		roundID := r.URL.Query().Get("id")
		rnd, err := s.Store.GetRound(roundID)
		if err != nil {
			writeStoreError(w, err)
			return
		}
		resp, err := s.computeLeaderboard(rnd)
		if err != nil {
			writeStoreError(w, err)
			return
		}
		writeJSON(w, resp)
	}
}

func (s *Server) computeLeaderboard(rnd *round.Round) (*LeaderboardResponse, error) {
	snap, err := s.Store.Snapshot(rnd.ID)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	views := []*scoring.DisplayData{scoring.GrossView(snap), scoring.NetView(snap)}
	formatView := scoring.Compute(snap)
	if formatView != nil {
		views = append(views, formatView)
	}

	primary := formatView
	if primary == nil {
		primary = views[1] // plain strokeplay ranks on net
	}
	ranked := scoring.RankSummaries(primary.Summaries, primary.HigherIsBetter)

	s.Metrics.IncLeaderboardComputes()
	s.Metrics.ObserveComputeDuration(time.Since(start).Seconds())

	return &LeaderboardResponse{
		RoundID: rnd.ID,
		Status:  rnd.Status,
		Views:   views,
		Ranked:  ranked,
	}, nil
}

// FinishRoundHandler freezes a round and posts the final standings.
func (s *Server) FinishRoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		roundID := r.URL.Query().Get("id")
		isDryRun := isDryRunFromContext(r)

		rnd, err := s.Store.GetRound(roundID)
		if err != nil {
			writeStoreError(w, err)
			return
		}

		resp, err := s.computeLeaderboard(rnd)
		if err != nil {
			writeStoreError(w, err)
			return
		}

		if !isDryRun {
			if err := s.Store.FinishRound(roundID); err != nil {
				writeStoreError(w, err)
				return
			}
			rnd.Status = round.StatusFinished
			resp.Status = round.StatusFinished
		}

		var formatView *scoring.DisplayData
		if len(resp.Views) > 2 {
			formatView = resp.Views[2]
		}
		if err := s.Notifier.SendRoundResult(rnd, formatView, resp.Ranked, isDryRun); err != nil {
			// The round is already finished; the notification failure is
			// logged and surfaced through metrics, not the response.
			log.Error("Failed to send round result notification", "error", err, "roundID", roundID)
		}

		writeJSON(w, resp)
	}
}

// ScoreEventPushHandler receives score events recorded by other instances
// and applies them to the local store. Delivery order does not matter:
// current values resolve by event timestamp.
func (s *Server) ScoreEventPushHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var envelope pushEnvelope
		if err := json.NewDecoder(r.Body).Decode(&envelope); err != nil {
			http.Error(w, "Invalid push envelope", http.StatusBadRequest)
			return
		}

		var msg pubsub.ScoreEventMessage
		if err := s.pubsub.ProcessMessage(envelope.Message.Data, &msg); err != nil {
			http.Error(w, "Invalid message payload", http.StatusBadRequest)
			return
		}

		if err := s.Store.ApplyEvent(msg.RoundID, msg.Event, msg.Status); err != nil {
			if errors.Is(err, round.ErrRoundFinished) {
				// Late delivery for a frozen round; ack it so it is not redelivered.
				log.Warn("Dropping score event for finished round", "roundID", msg.RoundID)
				w.WriteHeader(http.StatusOK)
				return
			}
			writeStoreError(w, err)
			return
		}
		log.Debug("Applied remote score event", "roundID", msg.RoundID, "eventID", msg.Event.ID)
		w.WriteHeader(http.StatusOK)
	}
}

func (s *Server) publishEvent(roundID string, event scoring.ScoreEvent, status scoring.HoleStatus, dryRun bool) {
	if dryRun {
		log.Info("[Dry Run] Would publish score event", "roundID", roundID, "eventID", event.ID)
		return
	}
	msg := pubsub.ScoreEventMessage{RoundID: roundID, Event: event, Status: status}
	if err := s.pubsub.SendMessage(s.Cfg.ScoreTopicID, msg); err != nil {
		log.Error("Failed to publish score event", "error", err, "roundID", roundID)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to write response", "error", err)
	}
}

func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, round.ErrRoundNotFound):
		http.Error(w, "Round not found", http.StatusNotFound)
	case errors.Is(err, round.ErrRoundFinished):
		http.Error(w, "Round is finished", http.StatusConflict)
	case errors.Is(err, scoring.ErrMissingStrokes), errors.Is(err, scoring.ErrInvalidStrokes):
		http.Error(w, "A completed hole needs a positive stroke count", http.StatusBadRequest)
	default:
		http.Error(w, "Internal error", http.StatusInternalServerError)
		log.Error("Store operation failed", "error", err)
	}
}
