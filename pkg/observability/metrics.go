package observability

import (
	"net/http"
	"unicode/utf8"

	"github.com/aretw0/ordercheck/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics records classification results in its own registry.
type Metrics struct {
	registry   *prometheus.Registry
	words      *prometheus.CounterVec
	wordLength prometheus.Histogram
}

// NewMetrics creates the collectors and registers them in a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		words: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ordercheck_words_total",
				Help: "Total number of classified words by order state",
			},
			[]string{"state"},
		),
		wordLength: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ordercheck_word_length",
				Help:    "Length in runes of classified words",
				Buckets: prometheus.ExponentialBuckets(1, 2, 8),
			},
		),
	}
	m.registry.MustRegister(m.words, m.wordLength)

	// Pre-create every label so all states are exported from the start.
	for _, st := range domain.AllOrderStates() {
		m.words.WithLabelValues(st.String())
	}
	return m
}

// Observe implements runner.Observer.
func (m *Metrics) Observe(res domain.OrderResult) {
	m.words.WithLabelValues(res.State.String()).Inc()
	m.wordLength.Observe(float64(utf8.RuneCountInString(res.Word)))
}

// Registry returns the underlying registry (for tests and custom exporters).
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
