package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	aggmocks "function-insights/internal/aggregators/mocks"
	ingmocks "function-insights/internal/ingestors/mocks"
	"function-insights/internal/models"
	regmocks "function-insights/internal/registries/mocks"
	"function-insights/internal/shared/loggers"
	"function-insights/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type routerMocks struct {
	stats     *aggmocks.MockStatsService
	registry  *regmocks.MockRegistryService
	ingestion *ingmocks.MockIngestionService
}

func newTestRouter(t *testing.T) (http.Handler, routerMocks) {
	ctrl := gomock.NewController(t)
	m := routerMocks{
		stats:     aggmocks.NewMockStatsService(ctrl),
		registry:  regmocks.NewMockRegistryService(ctrl),
		ingestion: ingmocks.NewMockIngestionService(ctrl),
	}
	return NewRouter(m.stats, m.registry, m.ingestion, models.PeriodDay, loggers.Nop()), m
}

func TestNewRouter_Routes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		method         string
		target         string
		body           string
		setup          func(m routerMocks)
		expectedStatus int
	}{
		{
			name:   "current stats",
			method: http.MethodGet,
			target: "/api/stats?period=week",
			setup: func(m routerMocks) {
				m.stats.EXPECT().CurrentStats(gomock.Any(), "abc123", gomock.Any()).Return([]models.WindowReport{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "weekly rollup",
			method: http.MethodGet,
			target: "/api/stats/weekly",
			setup: func(m routerMocks) {
				m.stats.EXPECT().WeeklyRollup(gomock.Any(), "abc123", gomock.Any()).Return(models.RollupSeries{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "list functions",
			method: http.MethodGet,
			target: "/api/user",
			setup: func(m routerMocks) {
				m.registry.EXPECT().ListFunctions(gomock.Any(), "abc123").Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "register function",
			method: http.MethodPost,
			target: "/api/config",
			body:   `{"funcID":"f1","funcName":"resize"}`,
			setup: func(m routerMocks) {
				m.registry.EXPECT().RegisterFunction(gomock.Any(), "abc123", gomock.Any()).
					Return(&models.FunctionDescriptor{FuncID: "f1", FuncName: "resize", WarmerOn: "No"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:   "update function",
			method: http.MethodPatch,
			target: "/api/config",
			body:   `{"funcID":"f1","warmerOn":"Yes"}`,
			setup: func(m routerMocks) {
				m.registry.EXPECT().UpdateFunctionConfig(gomock.Any(), "abc123", "f1", gomock.Any()).
					Return(&models.FunctionDescriptor{FuncID: "f1", WarmerOn: "Yes"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "delete function",
			method: http.MethodDelete,
			target: "/api/config/delete?id=f1",
			setup: func(m routerMocks) {
				m.registry.EXPECT().DeleteFunction(gomock.Any(), "abc123", "f1").Return(nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:   "ingest invocations",
			method: http.MethodPost,
			target: "/api/invocations",
			body:   `[]`,
			setup: func(m routerMocks) {
				m.ingestion.EXPECT().IngestInvocations(gomock.Any(), "abc123", "", gomock.Any(), gomock.Any()).
					Return(nil, svcerrors.NewInvalidArgumentError("ING_1000", "batch must contain at least one record", nil))
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown route",
			method:         http.MethodGet,
			target:         "/api/unknown",
			setup:          func(m routerMocks) {},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "wrong method",
			method:         http.MethodPut,
			target:         "/api/config",
			setup:          func(m routerMocks) {},
			expectedStatus: http.StatusMethodNotAllowed,
		},
		{
			name:           "metrics endpoint",
			method:         http.MethodGet,
			target:         "/metrics",
			setup:          func(m routerMocks) {},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			router, m := newTestRouter(t)
			tt.setup(m)

			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			req.Header.Set(headerUserID, "abc123")
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code, rr.Body.String())
		})
	}
}

func TestNewRouter_ErrorResponseCarriesRequestID(t *testing.T) {
	t.Parallel()

	router, m := newTestRouter(t)
	m.stats.EXPECT().
		CurrentStats(gomock.Any(), "", gomock.Any()).
		Return(nil, svcerrors.NewInvalidArgumentError("STATS_1000", "a valid user id is required", nil))

	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	req.Header.Set(headerRequestID, "req-42")
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	var errorResponse ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errorResponse))
	assert.Equal(t, ErrorResponse{
		RequestID:        "req-42",
		ErrorCategory:    "invalid_argument",
		ErrorCode:        "STATS_1000",
		ErrorDescription: "a valid user id is required",
	}, errorResponse)
}
