package stores

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"function-insights/internal/models"
	"function-insights/internal/shared/filestorages"

	"github.com/gocarina/gocsv"
)

var (
	ErrInvocationBatchAlreadyExist = errors.New("invocation batch already exists")
)

// InvocationRecordStore persists invocation batches as CSV files, one file per
// batch under invocations/<userID>/<batchID>.csv. PutBatch is create-only, so a
// retried ingestion with the same batch id is detected instead of double counted.
//
// Example file:
//
//	funcID,timestamp,serverDifference,firstRun
//	f1,1766944980000,52.4,1
//	f1,1766944981000,9.8,
//
//go:generate mockgen -source=invocation_record_store.go -destination=./mocks/invocation_record_store_mock.go -package=mocks
type InvocationRecordStore interface {
	PutBatch(ctx context.Context, batch *models.InvocationBatch) error
	// List returns every record stored for userID, batch by batch in key order.
	List(ctx context.Context, userID string) ([]models.InvocationRecord, error)
}

type invocationRecordStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewInvocationRecordStore(fileStorage filestorages.FileStorage) InvocationRecordStore {
	return &invocationRecordStore{fileStorage: fileStorage, dir: "invocations"}
}

// invocationRow is the on-disk layout. Cells are kept as text so one bad cell
// degrades a single field instead of failing the whole file.
type invocationRow struct {
	FuncID    string `csv:"funcID"`
	Timestamp string `csv:"timestamp"`
	Latency   string `csv:"serverDifference"`
	FirstRun  string `csv:"firstRun"`
}

func (s *invocationRecordStore) PutBatch(ctx context.Context, batch *models.InvocationBatch) error {
	user, err := userSegment(batch.UserID)
	if err != nil {
		return err
	}

	rows := make([]*invocationRow, 0, len(batch.Records))
	for i := range batch.Records {
		rows = append(rows, toInvocationRow(&batch.Records[i]))
	}
	var buf bytes.Buffer
	if err := gocsv.Marshal(&rows, &buf); err != nil {
		return fmt.Errorf("failed to marshal invocation batch: %w", err)
	}

	key := fmt.Sprintf("%s/%s/%s.csv", s.dir, user, batch.BatchID)
	_, err = s.fileStorage.Put(ctx, key, &buf, filestorages.PutOptions{AllowOverwrite: false})
	if err != nil {
		if errors.Is(err, filestorages.ErrFileAlreadyExists) {
			return ErrInvocationBatchAlreadyExist
		}
		return fmt.Errorf("failed to put invocation batch: %w", err)
	}
	return nil
}

func (s *invocationRecordStore) List(ctx context.Context, userID string) ([]models.InvocationRecord, error) {
	user, err := userSegment(userID)
	if err != nil {
		return nil, err
	}

	keys, err := s.fileStorage.List(ctx, fmt.Sprintf("%s/%s", s.dir, user))
	if err != nil {
		return nil, fmt.Errorf("failed to list invocation batches: %w", err)
	}

	records := []models.InvocationRecord{}
	for _, key := range keys {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rows, err := s.readBatch(ctx, key)
		if err != nil {
			return nil, err
		}
		for _, row := range rows {
			records = append(records, row.toRecord())
		}
	}
	return records, nil
}

func (s *invocationRecordStore) readBatch(ctx context.Context, key string) ([]*invocationRow, error) {
	readCloser, err := s.fileStorage.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to get invocation batch %q: %w", key, err)
	}
	defer readCloser.Close()

	data, err := io.ReadAll(readCloser)
	if err != nil {
		return nil, fmt.Errorf("failed to read invocation batch %q: %w", key, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var rows []*invocationRow
	if err := gocsv.Unmarshal(bytes.NewReader(data), &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal invocation batch %q: %w", key, err)
	}
	return rows, nil
}

func toInvocationRow(record *models.InvocationRecord) *invocationRow {
	row := &invocationRow{
		FuncID:    record.FuncID,
		Timestamp: strconv.FormatInt(record.Timestamp, 10),
		Latency:   strconv.FormatFloat(record.Latency, 'f', -1, 64),
	}
	if record.IsColdStart {
		row.FirstRun = "1"
	}
	return row
}

// toRecord never fails: an unparsable timestamp leaves the record malformed
// and an unparsable latency leaves it at zero.
func (row *invocationRow) toRecord() models.InvocationRecord {
	timestamp, err := strconv.ParseInt(row.Timestamp, 10, 64)
	if err != nil {
		timestamp = models.MissingTimestamp
	}
	latency, _ := strconv.ParseFloat(row.Latency, 64)
	return models.InvocationRecord{
		FuncID:      row.FuncID,
		Timestamp:   timestamp,
		Latency:     latency,
		IsColdStart: row.FirstRun == "1" || row.FirstRun == "true",
	}
}
