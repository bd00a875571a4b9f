package http

import (
	"net/http"

	"github.com/Ware71/CIAGA-sub001/internal/config"
	"github.com/Ware71/CIAGA-sub001/internal/metrics"
	"github.com/Ware71/CIAGA-sub001/internal/notifier"
	"github.com/Ware71/CIAGA-sub001/internal/pubsub"
	"github.com/Ware71/CIAGA-sub001/internal/round"
	"github.com/Ware71/CIAGA-sub001/internal/scoring"
)

type Server struct {
	Store          round.RoundStore
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Notifier       notifier.Notifier
	Router         *http.ServeMux
	pubsub         pubsub.PubSubClient
}

// LeaderboardResponse is the computed presentation payload for one round:
// every applicable view plus the ranked standings of the primary view.
type LeaderboardResponse struct {
	RoundID string                 `json:"round_id"`
	Status  round.RoundStatus      `json:"status"`
	Views   []*scoring.DisplayData `json:"views"`
	Ranked  []scoring.Summary      `json:"ranked"`
}

type scoreRequest struct {
	RoundID       string `json:"round_id"`
	ParticipantID string `json:"participant_id"`
	Hole          int    `json:"hole"`
	Strokes       int    `json:"strokes"`
	Author        string `json:"author"`
}

type holeActionRequest struct {
	RoundID       string `json:"round_id"`
	ParticipantID string `json:"participant_id"`
	Hole          int    `json:"hole"`
	Author        string `json:"author"`
}

// pushEnvelope is the Google Pub/Sub push delivery wrapper.
type pushEnvelope struct {
	Message struct {
		Data []byte `json:"data"`
	} `json:"message"`
}
