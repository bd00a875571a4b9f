package http

import (
	"net/http"

	"github.com/Ware71/CIAGA-sub001/internal/config"
	"github.com/Ware71/CIAGA-sub001/internal/metrics"
	"github.com/Ware71/CIAGA-sub001/internal/notifier"
	"github.com/Ware71/CIAGA-sub001/internal/pubsub"
	"github.com/Ware71/CIAGA-sub001/internal/round"
)

func NewServer(store round.RoundStore, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config, notifier notifier.Notifier, pubsub pubsub.PubSubClient) *Server {
	server := &Server{
		Store:          store,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Notifier:       notifier,
		Router:         http.NewServeMux(),
		pubsub:         pubsub,
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// This makes it easy to add more middlewares in the future, like an authentication middleware.
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("/health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("/clear", Chain(s.ClearStoreHandler(), paramsMiddleware))
	s.Router.Handle("/rounds", Chain(s.ListRoundsHandler(), paramsMiddleware))
	s.Router.Handle("/rounds/create", Chain(s.CreateRoundHandler(), paramsMiddleware))
	s.Router.Handle("/round", Chain(s.GetRoundHandler(), paramsMiddleware))
	s.Router.Handle("/score", Chain(s.SubmitScoreHandler(), paramsMiddleware))
	s.Router.Handle("/pickup", Chain(s.PickupHandler(), paramsMiddleware))
	s.Router.Handle("/clear-hole", Chain(s.ClearHoleHandler(), paramsMiddleware))
	s.Router.Handle("/finish", Chain(s.FinishRoundHandler(), paramsMiddleware))
	s.Router.Handle("/leaderboard", Chain(s.LeaderboardHandler(), paramsMiddleware))
	s.Router.Handle("/pubsub/score-events", Chain(s.ScoreEventPushHandler(), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
