package ingestors

import (
	"fmt"

	"function-insights/internal/shared/svcerrors"
)

// IngestionService errors
const (
	codeValidationFailed      = "ING_1000"
	codeBatchAlreadyProcessed = "ING_1001"

	codeInternalInvocationBatchStoreFailed   = "ING_9000"
	codeInternalInvocationBatchPublishFailed = "ING_9001"
)

// errValidationFailed returns an error for validation failures.
func errValidationFailed(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeValidationFailed, msg, cause)
}

// errInvocationBatchAlreadyProcessed returns an error when a batch with the same idempotency key was already stored.
func errInvocationBatchAlreadyProcessed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewResourceConflictError(codeBatchAlreadyProcessed, "invocation batch already processed", cause)
}

// errInternalInvocationBatchStoreFailed returns an error when an invocation batch store operation fails.
func errInternalInvocationBatchStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalInvocationBatchStoreFailed, fmt.Errorf("invocationBatchStoreFailed: %w", cause))
}

// errInternalInvocationBatchPublishFailed returns an error when the stored batch cannot be announced on the stream.
func errInternalInvocationBatchPublishFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalInvocationBatchPublishFailed, fmt.Errorf("invocationBatchPublishFailed: %w", cause))
}
