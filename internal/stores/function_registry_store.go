package stores

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"function-insights/internal/models"
	"function-insights/internal/shared/filestorages"

	"github.com/gocarina/gocsv"
)

// FunctionRegistryStore keeps each user's registered functions in one CSV file
// at registries/<userID>.csv. Save replaces the whole file atomically; callers
// serialize read-modify-write cycles themselves.
//
//go:generate mockgen -source=function_registry_store.go -destination=./mocks/function_registry_store_mock.go -package=mocks
type FunctionRegistryStore interface {
	// List returns the registry in stored order; a user without a file has an empty registry.
	List(ctx context.Context, userID string) ([]models.FunctionDescriptor, error)
	Save(ctx context.Context, userID string, registry []models.FunctionDescriptor) error
}

type functionRegistryStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewFunctionRegistryStore(fileStorage filestorages.FileStorage) FunctionRegistryStore {
	return &functionRegistryStore{fileStorage: fileStorage, dir: "registries"}
}

func (s *functionRegistryStore) List(ctx context.Context, userID string) ([]models.FunctionDescriptor, error) {
	key, err := s.getKey(userID)
	if err != nil {
		return nil, err
	}

	readCloser, err := s.fileStorage.Get(ctx, key)
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return []models.FunctionDescriptor{}, nil
		}
		return nil, fmt.Errorf("failed to get function registry: %w", err)
	}
	defer readCloser.Close()

	data, err := io.ReadAll(readCloser)
	if err != nil {
		return nil, fmt.Errorf("failed to read function registry: %w", err)
	}

	registry := []models.FunctionDescriptor{}
	if len(bytes.TrimSpace(data)) == 0 {
		return registry, nil
	}
	if err := gocsv.Unmarshal(bytes.NewReader(data), &registry); err != nil {
		return nil, fmt.Errorf("failed to unmarshal function registry: %w", err)
	}
	return registry, nil
}

func (s *functionRegistryStore) Save(ctx context.Context, userID string, registry []models.FunctionDescriptor) error {
	key, err := s.getKey(userID)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := gocsv.Marshal(&registry, &buf); err != nil {
		return fmt.Errorf("failed to marshal function registry: %w", err)
	}
	if _, err := s.fileStorage.Put(ctx, key, &buf, filestorages.PutOptions{AllowOverwrite: true}); err != nil {
		return fmt.Errorf("failed to put function registry: %w", err)
	}
	return nil
}

func (s *functionRegistryStore) getKey(userID string) (string, error) {
	user, err := userSegment(userID)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s.csv", s.dir, user), nil
}
