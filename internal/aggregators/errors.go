package aggregators

import (
	"fmt"

	"function-insights/internal/shared/svcerrors"
)

// StatsService errors
const (
	codeInvalidUserID = "STATS_1000"

	codeInternalRecordFetchFailed   = "STATS_9000"
	codeInternalRegistryFetchFailed = "STATS_9001"
)

// errInvalidUserID returns an error when the caller did not identify a usable user.
func errInvalidUserID(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidUserID, "a valid user id is required", cause)
}

// errInternalRecordFetchFailed returns an error when the invocation records of a user cannot be loaded.
func errInternalRecordFetchFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalRecordFetchFailed, fmt.Errorf("recordFetchFailed: %w", cause))
}

// errInternalRegistryFetchFailed returns an error when the function registry of a user cannot be loaded.
func errInternalRegistryFetchFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalRegistryFetchFailed, fmt.Errorf("registryFetchFailed: %w", cause))
}
