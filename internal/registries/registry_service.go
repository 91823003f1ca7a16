package registries

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"

	"function-insights/internal/models"
	"function-insights/internal/shared/loggers"
	"function-insights/internal/shared/metrics"
	"function-insights/internal/shared/svcerrors"
	"function-insights/internal/shared/validators"
	"function-insights/internal/stores"
)

const defaultWarmerOn = "No"

const (
	operationRegister = "register"
	operationUpdate   = "update"
	operationDelete   = "delete"
)

// RegisterFunctionInput describes a function a user wants tracked.
type RegisterFunctionInput struct {
	FuncID   string `json:"funcID" validate:"required,max=256"`
	FuncName string `json:"funcName" validate:"required,max=256"`
	AppName  string `json:"appName" validate:"max=256"`
	WarmerOn string `json:"warmerOn" validate:"omitempty,yesno"`
	FuncFreq string `json:"funcFreq" validate:"omitempty,funcfreq"`
}

// FunctionConfigUpdate is a partial update of the warmer settings; nil fields are left alone.
type FunctionConfigUpdate struct {
	WarmerOn *string `json:"warmerOn" validate:"omitnil,yesno"`
	FuncFreq *string `json:"funcFreq" validate:"omitnil,funcfreq"`
}

// RegistryService manages the per-user set of tracked functions. Mutations are
// read-modify-write cycles on one stored registry, serialized per user.
//
//go:generate mockgen -source=registry_service.go -destination=./mocks/registry_service_mock.go -package=mocks
type RegistryService interface {
	ListFunctions(ctx context.Context, userID string) ([]models.FunctionDescriptor, error)
	RegisterFunction(ctx context.Context, userID string, input *RegisterFunctionInput) (*models.FunctionDescriptor, error)
	UpdateFunctionConfig(ctx context.Context, userID string, funcID string, update *FunctionConfigUpdate) (*models.FunctionDescriptor, error)
	DeleteFunction(ctx context.Context, userID string, funcID string) error
}

type registryService struct {
	registryStore stores.FunctionRegistryStore
	validate      *validators.Validate
	locks         *userLocks
}

func NewRegistryService(registryStore stores.FunctionRegistryStore) RegistryService {
	return &registryService{
		registryStore: registryStore,
		validate:      validators.New(),
		locks:         newUserLocks(),
	}
}

func (s *registryService) ListFunctions(ctx context.Context, userID string) ([]models.FunctionDescriptor, error) {
	if userID == "" {
		return nil, errValidationFailed("userID is required", nil)
	}
	registry, err := s.registryStore.List(ctx, userID)
	if err != nil {
		return nil, mapStoreError(err, errInternalRegistryFetchFailed)
	}
	return registry, nil
}

func (s *registryService) RegisterFunction(ctx context.Context, userID string, input *RegisterFunctionInput) (*models.FunctionDescriptor, error) {
	logger := loggers.Ctx(ctx)

	if userID == "" {
		return nil, s.failed(operationRegister, errValidationFailed("userID is required", nil))
	}
	if input == nil {
		return nil, s.failed(operationRegister, errValidationFailed("function is required", nil))
	}
	input.FuncID = strings.TrimSpace(input.FuncID)
	input.FuncName = strings.TrimSpace(input.FuncName)
	input.AppName = strings.TrimSpace(input.AppName)
	if err := s.validate.Struct(input); err != nil {
		return nil, s.failed(operationRegister, errValidationFailed(describeValidationError(err), err))
	}

	fn := models.FunctionDescriptor{
		FuncID:   input.FuncID,
		FuncName: input.FuncName,
		AppName:  input.AppName,
		WarmerOn: input.WarmerOn,
		FuncFreq: input.FuncFreq,
	}
	if fn.WarmerOn == "" {
		fn.WarmerOn = defaultWarmerOn
	}

	unlock := s.locks.lock(userID)
	defer unlock()

	registry, err := s.registryStore.List(ctx, userID)
	if err != nil {
		return nil, s.failed(operationRegister, mapStoreError(err, errInternalRegistryFetchFailed))
	}
	if indexOf(registry, fn.FuncID) >= 0 {
		return nil, s.failed(operationRegister, errFunctionAlreadyRegistered(fn.FuncID))
	}

	registry = append(registry, fn)
	if err := s.registryStore.Save(ctx, userID, registry); err != nil {
		return nil, s.failed(operationRegister, mapStoreError(err, errInternalRegistrySaveFailed))
	}

	logger.Info().Str(loggers.FieldUserID, userID).Str(loggers.FieldFuncID, fn.FuncID).Msg("registered function")
	metricRegistryMutationsTotal.WithLabelValues(operationRegister, metrics.ValueNoError).Inc()
	return &fn, nil
}

func (s *registryService) UpdateFunctionConfig(ctx context.Context, userID string, funcID string, update *FunctionConfigUpdate) (*models.FunctionDescriptor, error) {
	logger := loggers.Ctx(ctx)

	if userID == "" {
		return nil, s.failed(operationUpdate, errValidationFailed("userID is required", nil))
	}
	if funcID == "" {
		return nil, s.failed(operationUpdate, errValidationFailed("funcID is required", nil))
	}
	if update == nil || (update.WarmerOn == nil && update.FuncFreq == nil) {
		return nil, s.failed(operationUpdate, errValidationFailed("nothing to update: set warmerOn and/or funcFreq", nil))
	}
	if err := s.validate.Struct(update); err != nil {
		return nil, s.failed(operationUpdate, errValidationFailed(describeValidationError(err), err))
	}

	unlock := s.locks.lock(userID)
	defer unlock()

	registry, err := s.registryStore.List(ctx, userID)
	if err != nil {
		return nil, s.failed(operationUpdate, mapStoreError(err, errInternalRegistryFetchFailed))
	}
	i := indexOf(registry, funcID)
	if i < 0 {
		return nil, s.failed(operationUpdate, errFunctionNotFound(funcID))
	}

	if update.WarmerOn != nil {
		registry[i].WarmerOn = *update.WarmerOn
	}
	if update.FuncFreq != nil {
		registry[i].FuncFreq = *update.FuncFreq
	}
	if err := s.registryStore.Save(ctx, userID, registry); err != nil {
		return nil, s.failed(operationUpdate, mapStoreError(err, errInternalRegistrySaveFailed))
	}

	updated := registry[i]
	logger.Info().
		Str(loggers.FieldUserID, userID).
		Str(loggers.FieldFuncID, funcID).
		Msgf("updated function config: warmerOn=%s funcFreq=%s", updated.WarmerOn, updated.FuncFreq)
	metricRegistryMutationsTotal.WithLabelValues(operationUpdate, metrics.ValueNoError).Inc()
	return &updated, nil
}

func (s *registryService) DeleteFunction(ctx context.Context, userID string, funcID string) error {
	logger := loggers.Ctx(ctx)

	if userID == "" {
		return s.failed(operationDelete, errValidationFailed("userID is required", nil))
	}
	if funcID == "" {
		return s.failed(operationDelete, errValidationFailed("funcID is required", nil))
	}

	unlock := s.locks.lock(userID)
	defer unlock()

	registry, err := s.registryStore.List(ctx, userID)
	if err != nil {
		return s.failed(operationDelete, mapStoreError(err, errInternalRegistryFetchFailed))
	}
	i := indexOf(registry, funcID)
	if i < 0 {
		return s.failed(operationDelete, errFunctionNotFound(funcID))
	}

	registry = slices.Delete(registry, i, i+1)
	if err := s.registryStore.Save(ctx, userID, registry); err != nil {
		return s.failed(operationDelete, mapStoreError(err, errInternalRegistrySaveFailed))
	}

	logger.Info().Str(loggers.FieldUserID, userID).Str(loggers.FieldFuncID, funcID).Msg("deleted function")
	metricRegistryMutationsTotal.WithLabelValues(operationDelete, metrics.ValueNoError).Inc()
	return nil
}

// failed counts a failed mutation and hands the error back.
func (s *registryService) failed(operation string, svcErr *svcerrors.ServiceError) *svcerrors.ServiceError {
	metricRegistryMutationsTotal.WithLabelValues(operation, svcErr.Code).Inc()
	return svcErr
}

func mapStoreError(err error, internal func(error) *svcerrors.ServiceError) *svcerrors.ServiceError {
	if errors.Is(err, stores.ErrInvalidUserID) {
		return errValidationFailed("userID is not valid", err)
	}
	return internal(err)
}

func indexOf(registry []models.FunctionDescriptor, funcID string) int {
	return slices.IndexFunc(registry, func(fn models.FunctionDescriptor) bool { return fn.FuncID == funcID })
}

// userLocks hands out one mutex per user id.
type userLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newUserLocks() *userLocks {
	return &userLocks{locks: make(map[string]*sync.Mutex)}
}

func (l *userLocks) lock(userID string) (unlock func()) {
	l.mu.Lock()
	m, ok := l.locks[userID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[userID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
