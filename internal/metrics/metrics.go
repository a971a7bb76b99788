// Package metrics provides Prometheus metrics for translate calls.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/pricofy/sogou-translate/pkg/sogou"
)

// Collector records translate calls. It implements sogou.Observer.
type Collector struct {
	// RequestsTotal counts translate calls by language pair and outcome.
	RequestsTotal *prometheus.CounterVec
	// RequestDuration tracks translate call latency by outcome.
	RequestDuration *prometheus.HistogramVec
}

var _ sogou.Observer = (*Collector)(nil)

// NewCollector creates the metrics and registers them on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)
	return &Collector{
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sogou_translate_requests_total",
				Help: "Total number of translate requests",
			},
			[]string{"from", "to", "outcome"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "sogou_translate_request_duration_seconds",
				Help:    "Translate request duration in seconds",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"outcome"},
		),
	}
}

// invalidLanguage labels any language code outside the supported set.
const invalidLanguage = "invalid"

// ObserveTranslate records one translate call.
func (c *Collector) ObserveTranslate(from, to sogou.Language, outcome string, elapsed time.Duration) {
	c.RequestsTotal.WithLabelValues(languageLabel(from), languageLabel(to), outcome).Inc()
	c.RequestDuration.WithLabelValues(outcome).Observe(elapsed.Seconds())
}

func languageLabel(l sogou.Language) string {
	if !l.Valid() {
		return invalidLanguage
	}
	return l.String()
}
