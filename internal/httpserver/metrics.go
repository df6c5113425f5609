package httpserver

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// metrics holds the server's collectors on a private registry.
type metrics struct {
	reg           *prometheus.Registry
	roundsStarted prometheus.Counter
	outcomes      *prometheus.CounterVec
	rejected      prometheus.Counter
}

func newMetrics() *metrics {
	m := &metrics{
		reg: prometheus.NewRegistry(),
		roundsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "wordle",
			Name:      "rounds_started_total",
			Help:      "Rounds started over HTTP.",
		}),
		outcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wordle",
			Name:      "rounds_finished_total",
			Help:      "Finished rounds by outcome.",
		}, []string{"outcome"}),
		rejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "wordle",
			Name:      "guesses_rejected_total",
			Help:      "Guesses rejected by validation.",
		}),
	}
	m.reg.MustRegister(m.roundsStarted, m.outcomes, m.rejected)
	return m
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})
}
