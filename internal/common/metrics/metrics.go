// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// An inactive survey counts as skipped, never failed.
var (
	DispatchesDelivered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webhook_dispatches_delivered_total",
			Help: "Total number of payloads delivered to the webhook endpoint",
		},
		[]string{"survey_id"},
	)

	DispatchesFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webhook_dispatches_failed_total",
			Help: "Total number of webhook deliveries that failed",
		},
		[]string{"survey_id", "error_code"},
	)

	DispatchesSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webhook_dispatches_skipped_total",
			Help: "Total number of completion events skipped because the survey is inactive",
		},
		[]string{"survey_id"},
	)

	DispatchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "webhook_dispatch_duration_seconds",
			Help: "Duration of the completion-event pipeline in seconds",
		},
		[]string{"outcome"},
	)

	AnswerLookupMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webhook_answer_lookup_misses_total",
			Help: "Total number of answer codes with no matching catalog option",
		},
		[]string{"survey_id"},
	)
)
