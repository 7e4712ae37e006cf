package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and gauges for the game service.
type Metrics struct {
	SessionsStarted prometheus.Counter
	GamesWon        prometheus.Counter
	ActiveSessions  prometheus.Gauge

	// Guess metrics.
	GuessesScored  *prometheus.CounterVec // label: tier
	GuessesUnknown prometheus.Counter
	GuessesInvalid prometheus.Counter

	// Analytics event publishing.
	EventsPublished    prometheus.Counter
	EventPublishErrors prometheus.Counter
}

// NewMetrics creates and registers all game metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.SessionsStarted,
		m.GamesWon,
		m.ActiveSessions,
		m.GuessesScored,
		m.GuessesUnknown,
		m.GuessesInvalid,
		m.EventsPublished,
		m.EventPublishErrors,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		SessionsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "citidle",
			Name:      "sessions_started_total",
			Help:      "Total game sessions created.",
		}),
		GamesWon: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "citidle",
			Name:      "games_won_total",
			Help:      "Total sessions that found the target city.",
		}),
		ActiveSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "citidle",
			Name:      "active_sessions",
			Help:      "Sessions currently held in the registry.",
		}),
		GuessesScored: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "citidle",
			Name:      "guesses_scored_total",
			Help:      "Scored guesses by proximity tier.",
		}, []string{"tier"}),
		GuessesUnknown: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "citidle",
			Name:      "guesses_unknown_total",
			Help:      "Guesses that matched no city in the dataset.",
		}),
		GuessesInvalid: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "citidle",
			Name:      "guesses_invalid_total",
			Help:      "Guesses rejected before lookup (blank input).",
		}),
		EventsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "citidle",
			Name:      "guess_events_published_total",
			Help:      "Guess analytics events published to Kafka.",
		}),
		EventPublishErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "citidle",
			Name:      "guess_event_publish_errors_total",
			Help:      "Failed attempts to publish guess analytics events.",
		}),
	}
}
