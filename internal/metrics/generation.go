package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Generation kinds.
const (
	KindSummary = "summary"
	KindSnippet = "snippet"
)

var (
	generationRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generation_requests_total",
			Help:      "Total number of draft generation calls",
		},
		[]string{"provider", "kind", "outcome"},
	)

	generationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "generation_duration_seconds",
			Help:      "Draft generation call duration in seconds",
			Buckets:   []float64{0.25, 0.5, 1, 2, 4, 8, 15, 30, 60},
		},
		[]string{"provider", "kind"},
	)
)

func init() {
	prometheus.MustRegister(generationRequestsTotal, generationDuration)
}

// ObserveGeneration records one generation call. Only successful calls
// contribute to the duration histogram.
func ObserveGeneration(provider, kind string, started time.Time, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	generationRequestsTotal.WithLabelValues(provider, kind, outcome).Inc()
	if err == nil {
		generationDuration.WithLabelValues(provider, kind).Observe(time.Since(started).Seconds())
	}
}
