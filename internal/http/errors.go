package http

import (
	"fmt"

	"function-insights/internal/shared/svcerrors"
)

// Transport errors, raised before a request reaches a service.
const (
	codeInvalidQueryParam = "HTTP_1000"
	codeInvalidBody       = "HTTP_1001"
)

// errInvalidQueryParam returns an error when a query parameter cannot be parsed.
func errInvalidQueryParam(name, value string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidQueryParam, fmt.Sprintf("invalid query parameter %s: %q", name, value), cause)
}

// errInvalidRequestBody returns an error when the JSON body cannot be decoded.
func errInvalidRequestBody(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidBody, "request body must be a single JSON object with known fields", cause)
}
