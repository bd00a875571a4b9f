package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		ScoresRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "golf_scores_recorded_total",
			Help: "The total number of hole scores recorded.",
		}),
		Pickups: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "golf_pickups_total",
			Help: "The total number of holes marked as picked up.",
		}),
		LeaderboardComputes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "golf_leaderboard_computes_total",
			Help: "The total number of leaderboard computations.",
		}),
		ComputeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "golf_leaderboard_compute_duration_seconds",
			Help:    "The duration of individual leaderboard computations.",
			Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
		SlackNotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "golf_slack_notifications_sent_total",
			Help: "The total number of Slack notifications successfully sent.",
		}),
		SlackNotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "golf_slack_notifications_failed_total",
			Help: "The total number of Slack notifications that failed to send.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "golf_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.ScoresRecorded,
		s.Pickups,
		s.LeaderboardComputes,
		s.ComputeDuration,
		s.SlackNotifSent,
		s.SlackNotifFailed,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncScoresRecorded() {
	s.ScoresRecorded.Inc()
}

func (s *Service) IncPickups() {
	s.Pickups.Inc()
}

func (s *Service) IncLeaderboardComputes() {
	s.LeaderboardComputes.Inc()
}

func (s *Service) ObserveComputeDuration(duration float64) {
	s.ComputeDuration.Observe(duration)
}

func (s *Service) IncSlackNotifSent() {
	s.SlackNotifSent.Inc()
}

func (s *Service) IncSlackNotifFailed() {
	s.SlackNotifFailed.Inc()
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
