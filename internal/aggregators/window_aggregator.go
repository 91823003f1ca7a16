package aggregators

import (
	"math"

	"function-insights/internal/models"
)

// WindowAggregator reduces invocation records into per-function reports for a
// time window. Implementations are pure: they only read their inputs, so
// concurrent calls over the same source are safe as long as nobody mutates it.
//
//go:generate mockgen -source=window_aggregator.go -destination=./mocks/window_aggregator_mock.go -package=mocks
type WindowAggregator interface {
	// ComputeWindowReport aggregates the records of fn with a timestamp in window.
	// An inverted window yields the empty report.
	ComputeWindowReport(records RecordSource, fn models.FunctionDescriptor, window models.TimeWindow) models.WindowReport
	// ComputeAllReports returns one report per registry entry, in registry order.
	ComputeAllReports(records RecordSource, registry []models.FunctionDescriptor, window models.TimeWindow) []models.WindowReport
}

type windowAggregator struct{}

func NewWindowAggregator() WindowAggregator {
	return &windowAggregator{}
}

func (a *windowAggregator) ComputeWindowReport(records RecordSource, fn models.FunctionDescriptor, window models.TimeWindow) models.WindowReport {
	if window.IsInverted() {
		return models.NewEmptyWindowReport(fn)
	}

	seq := records.Records()
	if scoped, ok := records.(functionScoped); ok {
		seq = scoped.RecordsOf(fn.FuncID)
	}

	var acc windowAccumulator
	for record := range seq {
		if record.IsMalformed() || record.FuncID != fn.FuncID || !window.Contains(record.Timestamp) {
			continue
		}
		acc.add(&record)
	}
	return acc.report(fn)
}

func (a *windowAggregator) ComputeAllReports(records RecordSource, registry []models.FunctionDescriptor, window models.TimeWindow) []models.WindowReport {
	reports := make([]models.WindowReport, 0, len(registry))
	if len(registry) == 0 {
		return reports
	}

	// one scan to group by function, then one short scan per function
	records = indexed(records)
	for _, fn := range registry {
		reports = append(reports, a.ComputeWindowReport(records, fn, window))
	}
	return reports
}

// windowAccumulator collects every running sum a report needs in a single pass.
type windowAccumulator struct {
	totalRuns  int64
	coldStarts int64
	sumAll     float64
	sumCold    float64
	sumWarm    float64
}

func (acc *windowAccumulator) add(record *models.InvocationRecord) {
	latency := record.LatencyContribution()
	acc.totalRuns++
	acc.sumAll += latency
	if record.IsColdStart {
		acc.coldStarts++
		acc.sumCold += latency
	} else {
		acc.sumWarm += latency
	}
}

func (acc *windowAccumulator) report(fn models.FunctionDescriptor) models.WindowReport {
	report := models.NewEmptyWindowReport(fn)
	warmRuns := acc.totalRuns - acc.coldStarts

	report.TotalRuns = acc.totalRuns
	report.ColdStarts = acc.coldStarts
	report.PercentCold = safeRatio(float64(acc.coldStarts), float64(acc.totalRuns))
	report.AvgLatency = safeRatio(acc.sumAll, float64(acc.totalRuns))
	report.AvgColdLatency = safeRatio(acc.sumCold, float64(acc.coldStarts))
	report.AvgWarmLatency = safeRatio(acc.sumWarm, float64(warmRuns))
	report.ColdToWarmRatio = safeRatio(report.AvgColdLatency, report.AvgWarmLatency)
	return report
}

// safeRatio is num/den, or 0 when den is 0 or the quotient is not finite.
func safeRatio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	q := num / den
	if math.IsNaN(q) || math.IsInf(q, 0) {
		return 0
	}
	return q
}
