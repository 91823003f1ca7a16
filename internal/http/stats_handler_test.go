package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"function-insights/internal/aggregators"
	aggmocks "function-insights/internal/aggregators/mocks"
	"function-insights/internal/models"
	"function-insights/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.UnixMilli(1_700_000_000_000)

func newTestCurrentStatsHandler(statsService aggregators.StatsService, defaultPeriod models.WindowPeriod) *currentStatsHandler {
	h := NewCurrentStatsHandler(statsService, defaultPeriod).(*currentStatsHandler)
	h.now = func() time.Time { return fixedNow }
	return h
}

func TestCurrentStatsHandler_ResolvesWindow(t *testing.T) {
	t.Parallel()

	nowMs := fixedNow.UnixMilli()
	dayMs := models.Day.Milliseconds()

	tests := []struct {
		name           string
		query          string
		defaultPeriod  models.WindowPeriod
		expectedWindow models.TimeWindow
	}{
		{
			name:           "default period",
			query:          "",
			defaultPeriod:  models.PeriodWeek,
			expectedWindow: models.TimeWindow{Start: nowMs - 7*dayMs, End: nowMs},
		},
		{
			name:           "explicit period",
			query:          "?period=day",
			defaultPeriod:  models.PeriodWeek,
			expectedWindow: models.TimeWindow{Start: nowMs - dayMs, End: nowMs},
		},
		{
			name:           "period all starts at epoch",
			query:          "?period=all",
			defaultPeriod:  models.PeriodDay,
			expectedWindow: models.TimeWindow{Start: 0, End: nowMs},
		},
		{
			name:           "start and end win over period",
			query:          "?period=day&start=0&end=300",
			defaultPeriod:  models.PeriodDay,
			expectedWindow: models.TimeWindow{Start: 0, End: 300},
		},
		{
			name:           "start only ends now",
			query:          "?start=150",
			defaultPeriod:  models.PeriodDay,
			expectedWindow: models.TimeWindow{Start: 150, End: nowMs},
		},
		{
			name:           "end only starts at epoch",
			query:          "?end=300",
			defaultPeriod:  models.PeriodDay,
			expectedWindow: models.TimeWindow{Start: 0, End: 300},
		},
		{
			name:           "inverted window is passed through",
			query:          "?start=300&end=150",
			defaultPeriod:  models.PeriodDay,
			expectedWindow: models.TimeWindow{Start: 300, End: 150},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			statsService := aggmocks.NewMockStatsService(ctrl)

			reports := []models.WindowReport{{FuncID: "f1", FuncName: "resize", TotalRuns: 2, ColdStarts: 1, PercentCold: 0.5}}
			statsService.EXPECT().
				CurrentStats(gomock.Any(), "abc123", tt.expectedWindow).
				Return(reports, nil)

			req := httptest.NewRequest(http.MethodGet, "/api/stats"+tt.query, nil)
			req.Header.Set(headerUserID, "abc123")
			rr := httptest.NewRecorder()

			err := newTestCurrentStatsHandler(statsService, tt.defaultPeriod).Handle(rr, req)
			require.NoError(t, err)

			assert.Equal(t, http.StatusOK, rr.Code)
			var got []models.WindowReport
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
			assert.Equal(t, reports, got)
		})
	}
}

func TestCurrentStatsHandler_InvalidQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query string
	}{
		{name: "unknown period", query: "?period=month"},
		{name: "start not a number", query: "?start=yesterday"},
		{name: "end not a number", query: "?start=0&end=1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			statsService := aggmocks.NewMockStatsService(ctrl)

			req := httptest.NewRequest(http.MethodGet, "/api/stats"+tt.query, nil)
			err := newTestCurrentStatsHandler(statsService, models.PeriodDay).Handle(httptest.NewRecorder(), req)

			svcErr, ok := svcerrors.AsServiceError(err)
			require.True(t, ok)
			assert.Equal(t, codeInvalidQueryParam, svcErr.Code)
			assert.Equal(t, http.StatusBadRequest, svcErr.HttpStatusCode)
		})
	}
}

func TestCurrentStatsHandler_ServiceError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	statsService := aggmocks.NewMockStatsService(ctrl)

	upstreamErr := svcerrors.NewInternalError("STATS_9000", assert.AnError)
	statsService.EXPECT().CurrentStats(gomock.Any(), "abc123", gomock.Any()).Return(nil, upstreamErr)

	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	req.Header.Set(headerUserID, "abc123")
	rr := httptest.NewRecorder()

	err := newTestCurrentStatsHandler(statsService, models.PeriodDay).Handle(rr, req)

	assert.ErrorIs(t, err, upstreamErr)
	assert.Empty(t, rr.Body.String(), "no partial body on failure")
}

func TestWeeklyRollupHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		query       string
		expectedNow time.Time
	}{
		{name: "now from clock", query: "", expectedNow: fixedNow},
		{name: "now from query", query: "?now=604800000", expectedNow: time.UnixMilli(604_800_000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			statsService := aggmocks.NewMockStatsService(ctrl)

			series := models.RollupSeries{
				{Day: tt.expectedNow.UTC(), AvgLatencyByFunc: map[string]float64{"f1": 30}},
			}
			statsService.EXPECT().
				WeeklyRollup(gomock.Any(), "abc123", gomock.Any()).
				DoAndReturn(func(_ context.Context, _ string, now time.Time) (models.RollupSeries, error) {
					assert.True(t, tt.expectedNow.Equal(now), "expected %v, got %v", tt.expectedNow, now)
					return series, nil
				})

			h := NewWeeklyRollupHandler(statsService).(*weeklyRollupHandler)
			h.now = func() time.Time { return fixedNow }

			req := httptest.NewRequest(http.MethodGet, "/api/stats/weekly"+tt.query, nil)
			req.Header.Set(headerUserID, "abc123")
			rr := httptest.NewRecorder()

			require.NoError(t, h.Handle(rr, req))
			assert.Equal(t, http.StatusOK, rr.Code)

			var got []map[string]any
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
			require.Len(t, got, 1)
			assert.Equal(t, map[string]any{"f1": float64(30)}, got[0]["avgLatencyByFunc"])
		})
	}
}

func TestWeeklyRollupHandler_InvalidNow(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	statsService := aggmocks.NewMockStatsService(ctrl)

	req := httptest.NewRequest(http.MethodGet, "/api/stats/weekly?now=tomorrow", nil)
	err := NewWeeklyRollupHandler(statsService).Handle(httptest.NewRecorder(), req)

	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, codeInvalidQueryParam, svcErr.Code)
}
