// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	QueriesProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "voicebot_queries_processed_total",
			Help: "Total number of utterances processed, by resolved intent",
		},
		[]string{"intent"},
	)

	QueriesFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "voicebot_queries_failed_total",
			Help: "Total number of requests rejected or failed",
		},
		[]string{"error_code"},
	)

	QueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "voicebot_query_duration_seconds",
			Help: "Duration of pipeline processing in seconds",
		},
		[]string{"intent"},
	)

	RequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "voicebot_requests_in_flight",
			Help: "Number of /api/process requests currently being handled",
		},
	)
)
