package http

import (
	"net/http"

	"function-insights/internal/ingestors"
)

type ingestInvocationsHandler struct {
	ingestionService ingestors.IngestionService
}

func NewIngestInvocationsHandler(ingestionService ingestors.IngestionService) AppHttpHandler {
	return &ingestInvocationsHandler{
		ingestionService: ingestionService,
	}
}

// Handle processes POST /api/invocations requests.
func (h *ingestInvocationsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	result, err := h.ingestionService.IngestInvocations(r.Context(), userID(r), idempotencyKey(r), contentType(r), r.Body)
	if err != nil {
		return err
	}

	writeJSON(w, r, http.StatusAccepted, result)
	return nil
}
