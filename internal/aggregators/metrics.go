package aggregators

import (
	"function-insights/internal/shared/metrics"
)

const (
	reportCurrent = "current"
	reportWeekly  = "weekly"

	lookupHit  = "hit"
	lookupMiss = "miss"
)

// metricStatsReportsTotal counts stats requests by report kind ("current" or
// "weekly") and outcome. A successful request carries an empty error_code.
//
// metricStatsComputeSeconds only times the engine, after records and registry
// have been fetched, so it isolates aggregation cost from storage latency.
var (
	metricStatsReportsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStats,
			Name:      "reports_total",
		},
		[]string{metrics.FieldReport, metrics.FieldErrorCode},
	)

	metricStatsComputeSeconds = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStats,
			Name:      "compute_seconds",
			Buckets:   metrics.DefBuckets,
		},
		[]string{metrics.FieldReport},
	)
)

var (
	metricIndexCacheLookupsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIndexCache,
			Name:      "lookups_total",
		},
		[]string{"result"},
	)

	metricIndexCacheInvalidationsTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIndexCache,
			Name:      "invalidations_total",
		},
	)

	metricIndexCacheUsers = metrics.NewGauge(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIndexCache,
			Name:      "users",
			Help:      "Number of users with a cached record index.",
		},
	)
)
