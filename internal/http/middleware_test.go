package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"function-insights/internal/shared/ids"
	"function-insights/internal/shared/loggers"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMwRequestID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		providedID string
	}{
		{name: "generated when missing", providedID: ""},
		{name: "kept when provided", providedID: "custom-request-id-12345"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var logs bytes.Buffer
			logger, err := loggers.NewWithWriter("info", &logs)
			require.NoError(t, err)

			var seenID string
			handler := mwRequestID(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seenID = r.Header.Get(headerRequestID)
				loggers.Ctx(r.Context()).Info().Msg("inside handler")
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
			if tt.providedID != "" {
				req.Header.Set(headerRequestID, tt.providedID)
			}
			handler.ServeHTTP(httptest.NewRecorder(), req)

			if tt.providedID == "" {
				assert.True(t, ids.IsULID(seenID), "generated request id should be a ULID, got %q", seenID)
			} else {
				assert.Equal(t, tt.providedID, seenID)
			}
			assert.Contains(t, logs.String(), `"request_id":"`+seenID+`"`, "request scoped logger carries the id")
		})
	}
}

func TestMwRecoverer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		panic any
	}{
		{name: "string panic", panic: "critical error occurred"},
		{name: "error panic", panic: errors.New("nil map write")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			handler := mwRecoverer(mwRequestID(loggers.Nop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				panic(tt.panic)
			})))

			rr := httptest.NewRecorder()
			assert.NotPanics(t, func() {
				handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/stats", nil))
			})

			assert.Equal(t, http.StatusInternalServerError, rr.Code)
			var errorResponse ErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errorResponse))
			assert.NotEmpty(t, errorResponse.RequestID)
			assert.Equal(t, "internal", errorResponse.ErrorCategory)
			assert.Equal(t, "SYS_9000", errorResponse.ErrorCode)
			assert.Equal(t, "internal server error", errorResponse.ErrorDescription)
		})
	}
}

func TestMwRequestCompletionLog_RecordsUserAndStatus(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	logger, err := loggers.NewWithWriter("info", &logs)
	require.NoError(t, err)

	router := chi.NewRouter()
	setupMiddleware(router, logger)
	router.Post("/api/config", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/config", nil)
	req.Header.Set(headerUserID, "abc123")
	router.ServeHTTP(httptest.NewRecorder(), req)

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(logs.Bytes()), &line))
	assert.Equal(t, "request completed", line["message"])
	assert.Equal(t, "abc123", line[loggers.FieldUserID])
	assert.Equal(t, "POST", line[loggers.FieldHttpMethod])
	assert.Equal(t, "/api/config", line[loggers.FieldHttpPath])
	assert.Equal(t, float64(http.StatusCreated), line[loggers.FieldHttpStatus])
}

func TestSetupMiddleware_PanicBecomesErrorResponse(t *testing.T) {
	t.Parallel()

	router := chi.NewRouter()
	setupMiddleware(router, loggers.Nop())
	router.Get("/api/stats", func(w http.ResponseWriter, r *http.Request) {
		panic("integration test panic")
	})

	rr := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/stats", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	var errorResponse ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errorResponse))
	assert.Equal(t, "SYS_9000", errorResponse.ErrorCode)
}
