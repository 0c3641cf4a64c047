package swc

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "swc_client",
			Name:      "requests_total",
			Help:      "API requests by route and outcome.",
		},
		[]string{"route", "outcome"},
	)

	retryableFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "swc_client",
			Name:      "retryable_failures_total",
			Help:      "Attempts that failed with a transport or status error.",
		},
		[]string{"route"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "swc_client",
			Name:      "request_duration_seconds",
			Help:      "Wall time of individual HTTP attempts.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"route"},
	)
)

// metricRoute collapses a trailing numeric ID to the route so per-entity
// lookups do not blow up label cardinality ("/v0/players/42" -> "/v0/players/").
func metricRoute(endpoint string) string {
	i := strings.LastIndexByte(endpoint, '/')
	if i < 0 || i == len(endpoint)-1 {
		return endpoint
	}
	if last := endpoint[i+1:]; strings.Trim(last, "0123456789") == "" {
		return endpoint[:i+1]
	}
	return endpoint
}
