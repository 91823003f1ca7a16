package streams

import (
	"function-insights/internal/shared/metrics"
)

var (
	streamInvocationBatch    = "invocation_batch"
	metricEventProducedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "event_published_total",
		},
		[]string{"stream_id"},
	)

	metricEventConsumedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "event_consumed_total",
		},
		[]string{"stream_id", metrics.FieldErrorCode},
	)
)
