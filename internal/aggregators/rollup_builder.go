package aggregators

import (
	"time"

	"function-insights/internal/models"
)

const (
	rollupBoundaries = 7
	// RollupBuckets is the number of day buckets in a weekly rollup: seven
	// boundaries delimit six whole days.
	RollupBuckets = rollupBoundaries - 1
)

// RollupBuilder produces the weekly latency trend on top of a WindowAggregator.
//
//go:generate mockgen -source=rollup_builder.go -destination=./mocks/rollup_builder_mock.go -package=mocks
type RollupBuilder interface {
	// ComputeWeeklyRollup returns RollupBuckets day buckets, newest first.
	// Bucket i covers [now-(i+1)*24h, now-i*24h) and maps every registry
	// function to its average latency in that window.
	ComputeWeeklyRollup(records RecordSource, registry []models.FunctionDescriptor, now time.Time) models.RollupSeries
}

type rollupBuilder struct {
	aggregator WindowAggregator
}

func NewRollupBuilder(aggregator WindowAggregator) RollupBuilder {
	return &rollupBuilder{aggregator: aggregator}
}

func (b *rollupBuilder) ComputeWeeklyRollup(records RecordSource, registry []models.FunctionDescriptor, now time.Time) models.RollupSeries {
	if len(registry) > 0 {
		records = indexed(records)
	}

	boundaries := dayBoundaries(now)
	series := make(models.RollupSeries, 0, RollupBuckets)
	for i := 0; i < RollupBuckets; i++ {
		window := models.TimeWindow{Start: boundaries[i+1], End: boundaries[i]}
		bucket := models.DayBucket{
			Day:              time.UnixMilli(boundaries[i]).UTC(),
			Window:           window,
			AvgLatencyByFunc: make(map[string]float64, len(registry)),
		}
		for _, fn := range registry {
			report := b.aggregator.ComputeWindowReport(records, fn, window)
			bucket.AvgLatencyByFunc[fn.FuncID] = report.AvgLatency
		}
		series = append(series, bucket)
	}
	return series
}

// dayBoundaries returns now, now-24h, ..., now-6*24h in epoch milliseconds.
func dayBoundaries(now time.Time) [rollupBoundaries]int64 {
	var boundaries [rollupBoundaries]int64
	for i := range boundaries {
		boundaries[i] = now.Add(-time.Duration(i) * models.Day).UnixMilli()
	}
	return boundaries
}
