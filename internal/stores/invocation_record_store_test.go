package stores

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"function-insights/internal/models"
	"function-insights/internal/shared/filestorages"
	"function-insights/internal/shared/filestorages/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newDiskStorage(t *testing.T) filestorages.FileStorage {
	t.Helper()

	storage, err := filestorages.NewFileStorage(t.TempDir())
	require.NoError(t, err)
	return storage
}

func TestInvocationRecordStore_PutBatchThenList_RoundTrip(t *testing.T) {
	t.Parallel()

	store := NewInvocationRecordStore(newDiskStorage(t))
	ctx := context.Background()

	first := &models.InvocationBatch{
		BatchID: "batch-a",
		UserID:  "abc123",
		Records: []models.InvocationRecord{
			{FuncID: "f1", Timestamp: 1766944980000, Latency: 52.4, IsColdStart: true},
			{FuncID: "f1", Timestamp: 1766944981000, Latency: 9.75, IsColdStart: false},
		},
	}
	second := &models.InvocationBatch{
		BatchID: "batch-b",
		UserID:  "abc123",
		Records: []models.InvocationRecord{
			{FuncID: "f2", Timestamp: 1766944982000, Latency: 0, IsColdStart: false},
		},
	}
	require.NoError(t, store.PutBatch(ctx, first))
	require.NoError(t, store.PutBatch(ctx, second))

	records, err := store.List(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, append(append([]models.InvocationRecord{}, first.Records...), second.Records...), records)
}

func TestInvocationRecordStore_PutBatch_Duplicate(t *testing.T) {
	t.Parallel()

	store := NewInvocationRecordStore(newDiskStorage(t))
	ctx := context.Background()

	batch := &models.InvocationBatch{
		BatchID: "batch-a",
		UserID:  "abc123",
		Records: []models.InvocationRecord{{FuncID: "f1", Timestamp: 1, Latency: 1}},
	}
	require.NoError(t, store.PutBatch(ctx, batch))

	err := store.PutBatch(ctx, batch)
	assert.ErrorIs(t, err, ErrInvocationBatchAlreadyExist)

	records, err := store.List(ctx, "abc123")
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestInvocationRecordStore_List_UsersAreIsolated(t *testing.T) {
	t.Parallel()

	store := NewInvocationRecordStore(newDiskStorage(t))
	ctx := context.Background()

	require.NoError(t, store.PutBatch(ctx, &models.InvocationBatch{
		BatchID: "b1",
		UserID:  "alice",
		Records: []models.InvocationRecord{{FuncID: "f1", Timestamp: 1}},
	}))

	records, err := store.List(ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestInvocationRecordStore_List_TolerantOfBadCells(t *testing.T) {
	t.Parallel()

	storage := newDiskStorage(t)
	store := NewInvocationRecordStore(storage)
	ctx := context.Background()

	// written by an older tracker: extra column, a bad timestamp, an empty latency
	csv := "funcID,timestamp,serverDifference,firstRun,region\n" +
		"f1,100,50,1,eu\n" +
		"f1,not-a-time,10,,eu\n" +
		"f2,200,,,us\n"
	_, err := storage.Put(ctx, "invocations/abc123/legacy.csv", strings.NewReader(csv), filestorages.PutOptions{})
	require.NoError(t, err)

	records, err := store.List(ctx, "abc123")
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, models.InvocationRecord{FuncID: "f1", Timestamp: 100, Latency: 50, IsColdStart: true}, records[0])
	assert.True(t, records[1].IsMalformed(), "unparsable timestamp must surface as malformed")
	assert.Equal(t, models.MissingTimestamp, records[1].Timestamp)
	assert.Equal(t, models.InvocationRecord{FuncID: "f2", Timestamp: 200}, records[2])
}

func TestInvocationRecordStore_InvalidUserID(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewInvocationRecordStore(mockFileStorage)
	ctx := context.Background()

	for _, userID := range []string{"", "..", "a/b", `a\b`} {
		_, err := store.List(ctx, userID)
		assert.ErrorIs(t, err, ErrInvalidUserID, "user %q", userID)

		err = store.PutBatch(ctx, &models.InvocationBatch{BatchID: "b", UserID: userID})
		assert.ErrorIs(t, err, ErrInvalidUserID, "user %q", userID)
	}
}

func TestInvocationRecordStore_PutBatch_UsesCreateOnlyKey(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewInvocationRecordStore(mockFileStorage)
	ctx := context.Background()

	mockFileStorage.EXPECT().
		Put(ctx, "invocations/abc123/batch-1.csv", gomock.Any(), filestorages.PutOptions{AllowOverwrite: false}).
		DoAndReturn(func(ctx context.Context, key string, r io.Reader, opts filestorages.PutOptions) (*filestorages.PutResult, error) {
			data, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(string(data), "funcID,timestamp,serverDifference,firstRun"))
			assert.Contains(t, string(data), "f1,100,50,1")
			return &filestorages.PutResult{FileKey: key}, nil
		})

	err := store.PutBatch(ctx, &models.InvocationBatch{
		BatchID: "batch-1",
		UserID:  "abc123",
		Records: []models.InvocationRecord{{FuncID: "f1", Timestamp: 100, Latency: 50, IsColdStart: true}},
	})
	assert.NoError(t, err)
}

func TestInvocationRecordStore_PutBatch_StorageError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewInvocationRecordStore(mockFileStorage)

	mockFileStorage.EXPECT().
		Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("disk full"))

	err := store.PutBatch(context.Background(), &models.InvocationBatch{BatchID: "b", UserID: "u"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to put invocation batch")
	assert.Contains(t, err.Error(), "disk full")
}

func TestInvocationRecordStore_List_GetError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewInvocationRecordStore(mockFileStorage)
	ctx := context.Background()

	mockFileStorage.EXPECT().List(ctx, "invocations/abc123").Return([]string{"invocations/abc123/b1.csv"}, nil)
	mockFileStorage.EXPECT().Get(ctx, "invocations/abc123/b1.csv").Return(nil, errors.New("io timeout"))

	records, err := store.List(ctx, "abc123")
	assert.Nil(t, records)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "io timeout")
}

func TestInvocationRecordStore_List_SkipsEmptyFiles(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewInvocationRecordStore(mockFileStorage)
	ctx := context.Background()

	mockFileStorage.EXPECT().List(ctx, "invocations/abc123").Return([]string{"invocations/abc123/b1.csv"}, nil)
	mockFileStorage.EXPECT().Get(ctx, "invocations/abc123/b1.csv").Return(io.NopCloser(bytes.NewReader([]byte("\n"))), nil)

	records, err := store.List(ctx, "abc123")
	require.NoError(t, err)
	assert.Empty(t, records)
}
