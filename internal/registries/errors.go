package registries

import (
	"errors"
	"fmt"
	"strings"

	"function-insights/internal/shared/svcerrors"
	"function-insights/internal/shared/validators"
)

// RegistryService errors
const (
	codeValidationFailed          = "REG_1000"
	codeFunctionAlreadyRegistered = "REG_1001"
	codeFunctionNotFound          = "REG_1002"

	codeInternalRegistryFetchFailed = "REG_9000"
	codeInternalRegistrySaveFailed  = "REG_9001"
)

// errValidationFailed returns an error for validation failures.
func errValidationFailed(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeValidationFailed, msg, cause)
}

// errFunctionAlreadyRegistered returns an error when the user already tracks funcID.
func errFunctionAlreadyRegistered(funcID string) *svcerrors.ServiceError {
	return svcerrors.NewResourceConflictError(codeFunctionAlreadyRegistered, fmt.Sprintf("function %q is already registered", funcID), nil)
}

// errFunctionNotFound returns an error when funcID is not in the user's registry.
func errFunctionNotFound(funcID string) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeFunctionNotFound, fmt.Sprintf("function %q is not registered", funcID), nil)
}

// errInternalRegistryFetchFailed returns an error when the registry cannot be read.
func errInternalRegistryFetchFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalRegistryFetchFailed, fmt.Errorf("registryFetchFailed: %w", cause))
}

// errInternalRegistrySaveFailed returns an error when the registry cannot be written.
func errInternalRegistrySaveFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalRegistrySaveFailed, fmt.Errorf("registrySaveFailed: %w", cause))
}

// describeValidationError renders validator failures as "funcFreq (funcfreq), funcID (required)".
func describeValidationError(err error) string {
	var validationErrors validators.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return "invalid request"
	}
	parts := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		name := fe.Field()
		if name != "" {
			name = strings.ToLower(name[:1]) + name[1:]
		}
		parts = append(parts, fmt.Sprintf("%s (%s)", name, fe.Tag()))
	}
	return "invalid fields: " + strings.Join(parts, ", ")
}
