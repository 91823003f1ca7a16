package ingestors

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"function-insights/internal/events"
	"function-insights/internal/models"
	"function-insights/internal/shared/ids"
	"function-insights/internal/shared/loggers"
	"function-insights/internal/shared/metrics"
	"function-insights/internal/shared/validators"
	"function-insights/internal/stores"
	"function-insights/internal/streams"

	"github.com/gocarina/gocsv"
)

const (
	maxBatchBytes = 2 * 1024 * 1024
	maxFuncIDLen  = 256
)

const (
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// IngestResult represents the result of a batch ingestion operation.
type IngestResult struct {
	BatchID     string `json:"batchId"`
	StoredCount int    `json:"storedCount"`
}

// IngestionService validates and stores batches of invocation records, then
// announces each stored batch on the invocation batch stream.
//
// Accepted bodies, selected by format (a content type is fine):
//
//	json: [{"funcID":"f1","timestamp":1766944980000,"latency":52.4,"isColdStart":true}]
//	csv:  funcID,timestamp,latency,isColdStart
//	      f1,1766944980000,52.4,true
//	csv:  funcID,timestamp,serverDifference,firstRun
//	      f1,1766944980000,52.4,1
//
//go:generate mockgen -source=ingestion_service.go -destination=./mocks/ingestion_service_mock.go -package=mocks
type IngestionService interface {
	IngestInvocations(ctx context.Context, userID string, idempotencyKey string, format string, r io.Reader) (*IngestResult, error)
}

type ingestionService struct {
	recordStore   stores.InvocationRecordStore
	batchProducer streams.InvocationBatchProducer
	validate      *validators.Validate
}

func NewIngestionService(recordStore stores.InvocationRecordStore, batchProducer streams.InvocationBatchProducer) IngestionService {
	return &ingestionService{
		recordStore:   recordStore,
		batchProducer: batchProducer,
		validate:      validators.New(),
	}
}

// invocationInput is one record after decoding, before it becomes a model.
type invocationInput struct {
	FuncID      string  `validate:"required,max=256"`
	Timestamp   int64   `validate:"gte=0"`
	Latency     float64 `validate:"gte=0"`
	IsColdStart bool
}

func (s *ingestionService) IngestInvocations(ctx context.Context, userID string, idempotencyKey string, format string, r io.Reader) (*IngestResult, error) {
	logger := loggers.Ctx(ctx)
	logger.Debug().Msgf("started ingesting invocations with user ID: %s, idempotency key: %s, format: %s", userID, idempotencyKey, format)

	batchID, err := s.resolveBatchID(idempotencyKey)
	if err != nil {
		metricBatchIngestedTotal.WithLabelValues(codeValidationFailed).Inc()
		return nil, err
	}

	records, err := s.validateInvocationBatch(userID, format, r)
	if err != nil {
		metricBatchIngestedTotal.WithLabelValues(codeValidationFailed).Inc()
		return nil, err
	}

	batch := &models.InvocationBatch{
		BatchID: batchID,
		UserID:  userID,
		Records: records,
	}

	storedEvent := &events.InvocationBatchStoredEvent{
		UserID:      userID,
		BatchID:     batchID,
		RecordCount: len(records),
	}

	err = s.recordStore.PutBatch(ctx, batch)
	if err != nil {
		svcError := errInternalInvocationBatchStoreFailed(err)
		switch {
		case errors.Is(err, stores.ErrInvocationBatchAlreadyExist):
			svcError = errInvocationBatchAlreadyProcessed(err)
			// The first attempt may have stored the batch and then failed to
			// publish; announcing it again lets cached indexes catch up.
			if produceErr := s.batchProducer.Produce(ctx, storedEvent); produceErr != nil {
				svcError = errInternalInvocationBatchPublishFailed(produceErr)
			}
		case errors.Is(err, stores.ErrInvalidUserID):
			svcError = errValidationFailed("userID is not valid", err)
		}
		metricBatchIngestedTotal.WithLabelValues(svcError.Code).Inc()
		return nil, svcError
	}

	err = s.batchProducer.Produce(ctx, storedEvent)
	if err != nil {
		svcError := errInternalInvocationBatchPublishFailed(err)
		metricBatchIngestedTotal.WithLabelValues(svcError.Code).Inc()
		return nil, svcError
	}

	metricBatchIngestedTotal.WithLabelValues(metrics.ValueNoError).Inc()
	metricRecordsIngestedTotal.Add(float64(len(records)))
	logger.Info().
		Str(loggers.FieldUserID, userID).
		Str(loggers.FieldBatchID, batchID).
		Int(loggers.FieldRecordCount, len(records)).
		Msg("ingested invocation batch")
	return &IngestResult{BatchID: batchID, StoredCount: len(records)}, nil
}

// resolveBatchID uses the idempotency key as batch id so a retried request
// maps onto the batch it already stored.
func (s *ingestionService) resolveBatchID(idempotencyKey string) (string, error) {
	key := strings.TrimSpace(idempotencyKey)
	if key == "" {
		return ids.NewBatchID(), nil
	}
	if err := s.validate.Var(key, validators.TagBatchID); err != nil {
		return "", errValidationFailed("idempotency key must be 1-128 characters of [A-Za-z0-9._-] starting with a letter or digit", err)
	}
	return key, nil
}

func (s *ingestionService) validateInvocationBatch(userID string, format string, r io.Reader) ([]models.InvocationRecord, error) {
	if userID == "" {
		return nil, errValidationFailed("userID is required", nil)
	}

	if r == nil {
		return nil, errValidationFailed("empty request body", nil)
	}

	buf, err := io.ReadAll(io.LimitReader(r, maxBatchBytes+1))
	if err != nil {
		return nil, errValidationFailed("failed to read request body", err)
	}
	if len(buf) > maxBatchBytes {
		return nil, errValidationFailed("batch too large: must be <= 2MB", nil)
	}

	formatLower := strings.ToLower(format)

	var inputs []invocationInput
	switch {
	case strings.Contains(formatLower, FormatJSON):
		inputs, err = s.parseJSON(buf)
	case strings.Contains(formatLower, FormatCSV):
		inputs, err = s.parseCSV(buf)
	default:
		return nil, errValidationFailed(fmt.Sprintf("unsupported input format: %q", format), nil)
	}
	if err != nil {
		return nil, err
	}

	if len(inputs) == 0 {
		return nil, errValidationFailed("invocation records cannot be empty", nil)
	}

	records := make([]models.InvocationRecord, 0, len(inputs))
	for i := range inputs {
		if err := s.validateInvocation(&inputs[i], i); err != nil {
			return nil, err
		}
		records = append(records, models.InvocationRecord{
			FuncID:      inputs[i].FuncID,
			Timestamp:   inputs[i].Timestamp,
			Latency:     inputs[i].Latency,
			IsColdStart: inputs[i].IsColdStart,
		})
	}
	return records, nil
}

func (s *ingestionService) validateInvocation(in *invocationInput, index int) error {
	in.FuncID = strings.TrimSpace(in.FuncID)
	if math.IsNaN(in.Latency) || math.IsInf(in.Latency, 0) {
		return errValidationFailed(fmt.Sprintf("item at index %d: latency must be a finite number", index), nil)
	}

	err := s.validate.Struct(in)
	if err == nil {
		return nil
	}
	var validationErrors validators.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		fe := validationErrors[0]
		return errValidationFailed(fmt.Sprintf("item at index %d: %s", index, describeFieldError(fe)), err)
	}
	return errValidationFailed(fmt.Sprintf("item at index %d: invalid record", index), err)
}

func describeFieldError(fe validators.FieldError) string {
	switch fe.Field() {
	case "FuncID":
		if fe.Tag() == "max" {
			return fmt.Sprintf("funcID too long: max %d characters", maxFuncIDLen)
		}
		return "missing funcID"
	case "Timestamp":
		return "timestamp must be a non-negative epoch milliseconds value"
	case "Latency":
		return "latency must be >= 0"
	default:
		return fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag())
	}
}

// jsonInvocation keeps pointers so a missing field is told apart from a zero.
type jsonInvocation struct {
	FuncID      *string  `json:"funcID"`
	Timestamp   *int64   `json:"timestamp"`
	Latency     *float64 `json:"latency"`
	IsColdStart *bool    `json:"isColdStart"`
}

// parseJSON parses buf as a JSON array of invocation objects.
func (s *ingestionService) parseJSON(buf []byte) ([]invocationInput, error) {
	var arr []jsonInvocation
	if err := json.Unmarshal(buf, &arr); err != nil {
		return nil, errValidationFailed("invalid json", err)
	}

	inputs := make([]invocationInput, 0, len(arr))
	for i, item := range arr {
		switch {
		case item.FuncID == nil:
			return nil, errValidationFailed(fmt.Sprintf("item at index %d: missing funcID", i), nil)
		case item.Timestamp == nil:
			return nil, errValidationFailed(fmt.Sprintf("item at index %d: missing timestamp", i), nil)
		case item.Latency == nil:
			return nil, errValidationFailed(fmt.Sprintf("item at index %d: missing latency", i), nil)
		}
		in := invocationInput{
			FuncID:    *item.FuncID,
			Timestamp: *item.Timestamp,
			Latency:   *item.Latency,
		}
		if item.IsColdStart != nil {
			in.IsColdStart = *item.IsColdStart
		}
		inputs = append(inputs, in)
	}
	return inputs, nil
}

type csvInvocation struct {
	FuncID      string `csv:"funcID"`
	Timestamp   string `csv:"timestamp"`
	Latency     string `csv:"latency"`
	IsColdStart string `csv:"isColdStart"`

	// Column names used by the stored record files.
	ServerDifference string `csv:"serverDifference"`
	FirstRun         string `csv:"firstRun"`
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

// parseCSV parses buf as a CSV document with a header row. Columns may come in
// any order; isColdStart is optional and accepts anything strconv.ParseBool does.
// serverDifference and firstRun are read when latency and isColdStart are absent.
func (s *ingestionService) parseCSV(buf []byte) ([]invocationInput, error) {
	if len(bytes.TrimSpace(buf)) == 0 {
		return nil, nil
	}

	var rows []*csvInvocation
	if err := gocsv.Unmarshal(bytes.NewReader(buf), &rows); err != nil {
		return nil, errValidationFailed("invalid csv", err)
	}

	inputs := make([]invocationInput, 0, len(rows))
	for i, row := range rows {
		in := invocationInput{FuncID: row.FuncID}

		timestamp, err := strconv.ParseInt(strings.TrimSpace(row.Timestamp), 10, 64)
		if err != nil {
			return nil, errValidationFailed(fmt.Sprintf("item at index %d: invalid timestamp: %q", i, row.Timestamp), err)
		}
		in.Timestamp = timestamp

		rawLatency := firstNonBlank(row.Latency, row.ServerDifference)
		latency, err := strconv.ParseFloat(rawLatency, 64)
		if err != nil {
			return nil, errValidationFailed(fmt.Sprintf("item at index %d: invalid latency: %q", i, rawLatency), err)
		}
		in.Latency = latency

		if cold := firstNonBlank(row.IsColdStart, row.FirstRun); cold != "" {
			in.IsColdStart, err = strconv.ParseBool(cold)
			if err != nil {
				return nil, errValidationFailed(fmt.Sprintf("item at index %d: invalid isColdStart: %q", i, cold), err)
			}
		}
		inputs = append(inputs, in)
	}
	return inputs, nil
}
