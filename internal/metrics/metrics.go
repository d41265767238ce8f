// Package metrics holds the Prometheus collectors for the layout engine and
// the HTTP API. Collectors register with the default registry on import.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for LayoutRequests.
const (
	OutcomeComplete    = "complete"    // Every item placed
	OutcomePartial     = "partial"     // Some items skipped
	OutcomeCapacity    = "capacity"    // Rejected by the area gate
	OutcomeUnplaceable = "unplaceable" // Fail-fast exhaustion
	OutcomePredictor   = "predictor"   // Anchor prediction failed
	OutcomeInvalid     = "invalid"     // Bad room or settings
)

var (
	// Engine Metrics
	LayoutRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roomlayout_layout_requests_total",
			Help: "Total number of placement requests by strategy and outcome",
		},
		[]string{"strategy", "outcome"},
	)

	LayoutDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "roomlayout_layout_duration_seconds",
			Help:    "Duration of placement requests in seconds",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1},
		},
		[]string{"strategy"},
	)

	SamplingAttempts = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "roomlayout_sampling_attempts",
			Help:    "Candidates sampled per furniture item",
			Buckets: []float64{1, 2, 5, 10, 25, 50, 100, 150, 200},
		},
	)

	CandidateRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roomlayout_candidate_rejections_total",
			Help: "Total number of rejected candidates by reason",
		},
		[]string{"reason"}, // "out_of_room", "margin", "obstacle", "collision", "item_spacing"
	)

	ItemsPlaced = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "roomlayout_items_placed_total",
			Help: "Total number of furniture items placed",
		},
	)

	ItemsUnplaced = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "roomlayout_items_unplaced_total",
			Help: "Total number of furniture items that ran out of attempts",
		},
	)

	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roomlayout_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "roomlayout_api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "roomlayout_api_active_requests",
			Help: "Current number of in-flight API requests",
		},
	)
)

// RecordLayout records the outcome of one placement request.
func RecordLayout(strategy, outcome string, duration time.Duration) {
	LayoutRequests.WithLabelValues(strategy, outcome).Inc()
	LayoutDuration.WithLabelValues(strategy).Observe(duration.Seconds())
}

// RecordItem records the sampling of one furniture item.
func RecordItem(attempts int, placed bool) {
	SamplingAttempts.Observe(float64(attempts))
	if placed {
		ItemsPlaced.Inc()
	} else {
		ItemsUnplaced.Inc()
	}
}

// RecordRejections adds rejected candidate counts keyed by reason label.
func RecordRejections(byReason map[string]int) {
	for reason, n := range byReason {
		if n > 0 {
			CandidateRejections.WithLabelValues(reason).Add(float64(n))
		}
	}
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}
