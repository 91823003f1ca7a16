package http

import (
	"net/http"
	"strings"

	"function-insights/internal/registries"
)

const queryFuncID = "id"

type listFunctionsHandler struct {
	registryService registries.RegistryService
}

func NewListFunctionsHandler(registryService registries.RegistryService) AppHttpHandler {
	return &listFunctionsHandler{registryService: registryService}
}

// Handle processes GET /api/user requests.
func (h *listFunctionsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	registry, err := h.registryService.ListFunctions(r.Context(), userID(r))
	if err != nil {
		return err
	}

	writeJSON(w, r, http.StatusOK, registry)
	return nil
}

type registerFunctionHandler struct {
	registryService registries.RegistryService
}

func NewRegisterFunctionHandler(registryService registries.RegistryService) AppHttpHandler {
	return &registerFunctionHandler{registryService: registryService}
}

// Handle processes POST /api/config requests.
func (h *registerFunctionHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	var input registries.RegisterFunctionInput
	if err := decodeJSONBody(w, r, &input); err != nil {
		return err
	}

	fn, err := h.registryService.RegisterFunction(r.Context(), userID(r), &input)
	if err != nil {
		return err
	}

	writeJSON(w, r, http.StatusCreated, fn)
	return nil
}

// updateFunctionConfigRequest is the PATCH body: the target function plus the fields to change.
type updateFunctionConfigRequest struct {
	FuncID string `json:"funcID"`
	registries.FunctionConfigUpdate
}

type updateFunctionConfigHandler struct {
	registryService registries.RegistryService
}

func NewUpdateFunctionConfigHandler(registryService registries.RegistryService) AppHttpHandler {
	return &updateFunctionConfigHandler{registryService: registryService}
}

// Handle processes PATCH /api/config requests.
func (h *updateFunctionConfigHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	var req updateFunctionConfigRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		return err
	}

	fn, err := h.registryService.UpdateFunctionConfig(r.Context(), userID(r), strings.TrimSpace(req.FuncID), &req.FunctionConfigUpdate)
	if err != nil {
		return err
	}

	writeJSON(w, r, http.StatusOK, fn)
	return nil
}

type deleteFunctionHandler struct {
	registryService registries.RegistryService
}

func NewDeleteFunctionHandler(registryService registries.RegistryService) AppHttpHandler {
	return &deleteFunctionHandler{registryService: registryService}
}

// Handle processes DELETE /api/config/delete?id=<funcID> requests.
func (h *deleteFunctionHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	funcID := strings.TrimSpace(r.URL.Query().Get(queryFuncID))
	if err := h.registryService.DeleteFunction(r.Context(), userID(r), funcID); err != nil {
		return err
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}
