package stores

import (
	"context"
	"errors"
	"testing"

	"function-insights/internal/models"
	"function-insights/internal/shared/filestorages"
	"function-insights/internal/shared/filestorages/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestFunctionRegistryStore_List_NoFile(t *testing.T) {
	t.Parallel()

	store := NewFunctionRegistryStore(newDiskStorage(t))

	registry, err := store.List(context.Background(), "abc123")
	require.NoError(t, err)
	assert.NotNil(t, registry)
	assert.Empty(t, registry)
}

func TestFunctionRegistryStore_SaveThenList_PreservesOrder(t *testing.T) {
	t.Parallel()

	store := NewFunctionRegistryStore(newDiskStorage(t))
	ctx := context.Background()

	registry := []models.FunctionDescriptor{
		{FuncID: "f2", FuncName: "thumbnail", AppName: "images", WarmerOn: "No", FuncFreq: "1H"},
		{FuncID: "f1", FuncName: "resize", AppName: "images", WarmerOn: "Yes", FuncFreq: "5M"},
		{FuncID: "f3", FuncName: "checkout", AppName: "shop", WarmerOn: "Yes", FuncFreq: "10S"},
	}
	require.NoError(t, store.Save(ctx, "abc123", registry))

	got, err := store.List(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, registry, got)
}

func TestFunctionRegistryStore_Save_Overwrites(t *testing.T) {
	t.Parallel()

	store := NewFunctionRegistryStore(newDiskStorage(t))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "abc123", []models.FunctionDescriptor{{FuncID: "f1"}, {FuncID: "f2"}}))
	require.NoError(t, store.Save(ctx, "abc123", []models.FunctionDescriptor{{FuncID: "f2"}}))

	got, err := store.List(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, []models.FunctionDescriptor{{FuncID: "f2"}}, got)
}

func TestFunctionRegistryStore_Save_EmptyRegistry(t *testing.T) {
	t.Parallel()

	store := NewFunctionRegistryStore(newDiskStorage(t))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "abc123", []models.FunctionDescriptor{{FuncID: "f1"}}))
	require.NoError(t, store.Save(ctx, "abc123", []models.FunctionDescriptor{}))

	got, err := store.List(ctx, "abc123")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFunctionRegistryStore_Save_UsesOverwriteKey(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewFunctionRegistryStore(mockFileStorage)
	ctx := context.Background()

	mockFileStorage.EXPECT().
		Put(ctx, "registries/abc123.csv", gomock.Any(), filestorages.PutOptions{AllowOverwrite: true}).
		Return(&filestorages.PutResult{FileKey: "registries/abc123.csv"}, nil)

	assert.NoError(t, store.Save(ctx, "abc123", []models.FunctionDescriptor{{FuncID: "f1"}}))
}

func TestFunctionRegistryStore_List_GetError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewFunctionRegistryStore(mockFileStorage)

	mockFileStorage.EXPECT().Get(gomock.Any(), "registries/abc123.csv").Return(nil, errors.New("permission denied"))

	registry, err := store.List(context.Background(), "abc123")
	assert.Nil(t, registry)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get function registry")
}

func TestFunctionRegistryStore_InvalidUserID(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	store := NewFunctionRegistryStore(mocks.NewMockFileStorage(ctrl))

	_, err := store.List(context.Background(), "../etc")
	assert.ErrorIs(t, err, ErrInvalidUserID)
	assert.ErrorIs(t, store.Save(context.Background(), "", nil), ErrInvalidUserID)
}
