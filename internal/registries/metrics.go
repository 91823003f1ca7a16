package registries

import (
	"function-insights/internal/shared/metrics"
)

var (
	metricRegistryMutationsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubRegistry,
			Name:      "mutations_total",
		},
		[]string{metrics.FieldOperation, metrics.FieldErrorCode},
	)
)
