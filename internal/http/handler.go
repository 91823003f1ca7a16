package http

import (
	"encoding/json"
	"net/http"

	"function-insights/internal/shared/loggers"
)

// AppHttpHandler is a handler that reports failures as errors; errorHandlingAdapter renders them.
type AppHttpHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		loggers.Ctx(r.Context()).Warn().Err(err).Msg("failed to write response body")
	}
}

// decodeJSONBody decodes a single JSON object from the request body into dst.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) error {
	if r.Body == nil {
		return errInvalidRequestBody(nil)
	}
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return errInvalidRequestBody(err)
	}
	return nil
}

const maxJSONBodyBytes = 64 * 1024
