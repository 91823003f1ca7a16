package aggregators

import (
	"context"
	"errors"
	"time"

	"function-insights/internal/models"
	"function-insights/internal/shared/loggers"
	"function-insights/internal/shared/metrics"
	"function-insights/internal/shared/svcerrors"
	"function-insights/internal/stores"
)

// StatsService answers stats queries for one user at a time: it fetches the
// user's records and registry, then hands them to the engine. It never returns
// a partial result together with an error.
//
//go:generate mockgen -source=stats_service.go -destination=./mocks/stats_service_mock.go -package=mocks
type StatsService interface {
	// CurrentStats returns one report per registered function for window.
	CurrentStats(ctx context.Context, userID string, window models.TimeWindow) ([]models.WindowReport, error)
	// WeeklyRollup returns the day buckets ending at now, newest first.
	WeeklyRollup(ctx context.Context, userID string, now time.Time) (models.RollupSeries, error)
}

type statsService struct {
	indexCache    RecordIndexCache
	registryStore stores.FunctionRegistryStore
	aggregator    WindowAggregator
	rollupBuilder RollupBuilder
}

func NewStatsService(indexCache RecordIndexCache, registryStore stores.FunctionRegistryStore, aggregator WindowAggregator, rollupBuilder RollupBuilder) StatsService {
	return &statsService{
		indexCache:    indexCache,
		registryStore: registryStore,
		aggregator:    aggregator,
		rollupBuilder: rollupBuilder,
	}
}

func (s *statsService) CurrentStats(ctx context.Context, userID string, window models.TimeWindow) ([]models.WindowReport, error) {
	logger := loggers.Ctx(ctx)
	logger.Debug().Msgf("started computing current stats for user ID: %s, window: [%d, %d)", userID, window.Start, window.End)

	idx, registry, svcErr := s.fetch(ctx, userID)
	if svcErr != nil {
		metricStatsReportsTotal.WithLabelValues(reportCurrent, svcErr.Code).Inc()
		return nil, svcErr
	}

	started := time.Now()
	reports := s.aggregator.ComputeAllReports(idx, registry, window)
	metricStatsComputeSeconds.WithLabelValues(reportCurrent).Observe(time.Since(started).Seconds())

	metricStatsReportsTotal.WithLabelValues(reportCurrent, metrics.ValueNoError).Inc()
	return reports, nil
}

func (s *statsService) WeeklyRollup(ctx context.Context, userID string, now time.Time) (models.RollupSeries, error) {
	logger := loggers.Ctx(ctx)
	logger.Debug().Msgf("started computing weekly rollup for user ID: %s, now: %d", userID, now.UnixMilli())

	idx, registry, svcErr := s.fetch(ctx, userID)
	if svcErr != nil {
		metricStatsReportsTotal.WithLabelValues(reportWeekly, svcErr.Code).Inc()
		return nil, svcErr
	}

	started := time.Now()
	series := s.rollupBuilder.ComputeWeeklyRollup(idx, registry, now)
	metricStatsComputeSeconds.WithLabelValues(reportWeekly).Observe(time.Since(started).Seconds())

	metricStatsReportsTotal.WithLabelValues(reportWeekly, metrics.ValueNoError).Inc()
	return series, nil
}

// fetch loads records first, then the registry, and names the stage that failed.
func (s *statsService) fetch(ctx context.Context, userID string) (*RecordIndex, []models.FunctionDescriptor, *svcerrors.ServiceError) {
	if userID == "" {
		return nil, nil, errInvalidUserID(nil)
	}

	idx, err := s.indexCache.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, stores.ErrInvalidUserID) {
			return nil, nil, errInvalidUserID(err)
		}
		return nil, nil, errInternalRecordFetchFailed(err)
	}

	registry, err := s.registryStore.List(ctx, userID)
	if err != nil {
		if errors.Is(err, stores.ErrInvalidUserID) {
			return nil, nil, errInvalidUserID(err)
		}
		return nil, nil, errInternalRegistryFetchFailed(err)
	}
	return idx, registry, nil
}
