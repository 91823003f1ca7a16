package aggregators

import (
	"testing"
	"time"

	"function-insights/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRollupBuilder_ComputeWeeklyRollup_EmptyRecords(t *testing.T) {
	t.Parallel()

	builder := NewRollupBuilder(NewWindowAggregator())
	now := time.Date(2025, 12, 28, 18, 3, 0, 0, time.UTC)

	for _, records := range []RecordSource{RecordSlice{}, RecordSlice(nil)} {
		series := builder.ComputeWeeklyRollup(records, []models.FunctionDescriptor{fnResize, fnCheckout}, now)

		require.Len(t, series, RollupBuckets)
		for _, bucket := range series {
			assert.Equal(t, map[string]float64{"f1": 0, "f2": 0}, bucket.AvgLatencyByFunc)
		}
	}
}

func TestRollupBuilder_ComputeWeeklyRollup_EmptyRegistry(t *testing.T) {
	t.Parallel()

	builder := NewRollupBuilder(NewWindowAggregator())

	series := builder.ComputeWeeklyRollup(twoRecords(), nil, time.UnixMilli(1_000_000_000))

	require.Len(t, series, RollupBuckets)
	for _, bucket := range series {
		assert.NotNil(t, bucket.AvgLatencyByFunc)
		assert.Empty(t, bucket.AvgLatencyByFunc)
	}
}

func TestRollupBuilder_ComputeWeeklyRollup_BucketsNewestFirst(t *testing.T) {
	t.Parallel()

	builder := NewRollupBuilder(NewWindowAggregator())
	now := time.Date(2025, 12, 28, 18, 3, 0, 0, time.UTC)
	nowMs := now.UnixMilli()
	dayMs := models.Day.Milliseconds()

	series := builder.ComputeWeeklyRollup(RecordSlice{}, []models.FunctionDescriptor{fnResize}, now)

	require.Len(t, series, RollupBuckets)
	for i, bucket := range series {
		assert.Equal(t, models.TimeWindow{Start: nowMs - int64(i+1)*dayMs, End: nowMs - int64(i)*dayMs}, bucket.Window, "bucket %d", i)
		assert.Equal(t, now.Add(-time.Duration(i)*models.Day), bucket.Day, "bucket %d", i)
		assert.Equal(t, time.UTC, bucket.Day.Location())
	}
	// adjacent buckets share a boundary and never overlap
	for i := 1; i < len(series); i++ {
		assert.Equal(t, series[i].Window.End, series[i-1].Window.Start)
	}
}

func TestRollupBuilder_ComputeWeeklyRollup_PlacesRecordsInTheirDay(t *testing.T) {
	t.Parallel()

	builder := NewRollupBuilder(NewWindowAggregator())
	now := time.Date(2025, 12, 28, 18, 3, 0, 0, time.UTC)
	at := func(d time.Duration) int64 { return now.Add(-d).UnixMilli() }

	records := RecordSlice{
		{FuncID: "f1", Timestamp: at(time.Hour), Latency: 40},
		{FuncID: "f1", Timestamp: at(2 * time.Hour), Latency: 20, IsColdStart: true},
		{FuncID: "f2", Timestamp: at(models.Day), Latency: 7}, // on a boundary: belongs to the newer bucket
		{FuncID: "f1", Timestamp: at(5*models.Day + time.Minute), Latency: 99},
		{FuncID: "f1", Timestamp: at(6*models.Day + time.Minute), Latency: 500}, // older than the rollup
		{FuncID: "f1", Timestamp: now.UnixMilli(), Latency: 1000},               // end is exclusive
	}

	series := builder.ComputeWeeklyRollup(records, []models.FunctionDescriptor{fnResize, fnCheckout}, now)

	require.Len(t, series, RollupBuckets)
	assert.Equal(t, map[string]float64{"f1": 30, "f2": 7}, series[0].AvgLatencyByFunc)
	assert.Equal(t, map[string]float64{"f1": 0, "f2": 0}, series[1].AvgLatencyByFunc)
	assert.Equal(t, map[string]float64{"f1": 99, "f2": 0}, series[5].AvgLatencyByFunc)
}

func TestRollupBuilder_ComputeWeeklyRollup_Deterministic(t *testing.T) {
	t.Parallel()

	builder := NewRollupBuilder(NewWindowAggregator())
	now := time.UnixMilli(1_766_944_980_000).UTC()
	records := RecordSlice{}
	for i := int64(0); i < 300; i++ {
		records = append(records, models.InvocationRecord{
			FuncID:    []string{"f1", "f2"}[i%2],
			Timestamp: now.UnixMilli() - i*1_700_000,
			Latency:   float64(i%17) + 0.1,
		})
	}
	registry := []models.FunctionDescriptor{fnResize, fnCheckout}

	first := builder.ComputeWeeklyRollup(records, registry, now)
	second := builder.ComputeWeeklyRollup(NewRecordIndex(records), registry, now)

	assert.Equal(t, first, second)
}

func TestDayBoundaries(t *testing.T) {
	t.Parallel()

	boundaries := dayBoundaries(time.UnixMilli(10 * models.Day.Milliseconds()))

	for i, b := range boundaries {
		assert.Equal(t, int64(10-i)*models.Day.Milliseconds(), b)
	}
}
