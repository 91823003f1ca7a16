package streams

import (
	"context"
	"fmt"
	"runtime/debug"
	"strconv"
	"sync"

	"function-insights/internal/aggregators"
	"function-insights/internal/events"
	"function-insights/internal/shared/ids"
	"function-insights/internal/shared/loggers"
	"function-insights/internal/shared/metrics"
	"function-insights/internal/shared/svcerrors"
)

//go:generate mockgen -source=invocation_batch_consumer.go -destination=./mocks/invocation_batch_consumer_mock.go -package=mocks
type InvocationBatchConsumer interface {
	Start(ctx context.Context)
	Stop()
}

type invocationBatchConsumer struct {
	queue      *PartitionedQueue[events.InvocationBatchStoredEvent]
	indexCache aggregators.RecordIndexCache

	wg sync.WaitGroup

	stopOnce sync.Once
	stopCh   chan struct{}

	logger loggers.Logger
}

// NewInvocationBatchConsumer returns a consumer that invalidates the stored
// user's record index for every event.
func NewInvocationBatchConsumer(queue *PartitionedQueue[events.InvocationBatchStoredEvent], indexCache aggregators.RecordIndexCache, logger loggers.Logger) InvocationBatchConsumer {
	return &invocationBatchConsumer{
		queue:      queue,
		indexCache: indexCache,
		stopCh:     make(chan struct{}),
		logger:     logger,
	}
}

// Start spawns one worker goroutine per partition.
func (consumer *invocationBatchConsumer) Start(ctx context.Context) {
	for partitionIndex := 0; partitionIndex < consumer.queue.PartitionCount(); partitionIndex++ {
		ch := consumer.queue.partitions[partitionIndex]
		consumer.wg.Add(1)
		go func() {
			defer consumer.wg.Done()
			consumer.runPartitionWorker(ctx, partitionIndex, ch)
		}()
	}
}

// Stop waits for workers to stop (best called during app shutdown).
func (consumer *invocationBatchConsumer) Stop() {
	consumer.stopOnce.Do(func() { close(consumer.stopCh) })
	consumer.wg.Wait()
}

func (consumer *invocationBatchConsumer) runPartitionWorker(ctx context.Context, partitionIndex int, ch <-chan events.InvocationBatchStoredEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-consumer.stopCh:
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			eventCtx := consumer.logger.With().
				Str(loggers.FieldPartitionId, strconv.Itoa(partitionIndex)).
				Str(loggers.FieldRequestID, ids.NewRequestID()).
				Logger().WithContext(ctx)
			consumer.handle(eventCtx, &event)
		}
	}
}

// handle recovers from panics so one bad event cannot take a partition down.
func (consumer *invocationBatchConsumer) handle(ctx context.Context, event *events.InvocationBatchStoredEvent) {
	defer func() {
		if r := recover(); r != nil {
			loggers.Ctx(ctx).Error().
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Msg("consumer panic recovered")

			var panicErr error
			if err, ok := r.(error); ok {
				panicErr = err
			} else {
				panicErr = fmt.Errorf("%v", r)
			}
			svcErr := svcerrors.NewInternalErrorPanic(panicErr)
			metricEventConsumedTotal.WithLabelValues(streamInvocationBatch, svcErr.Code).Inc()
		}
	}()

	logger := loggers.Ctx(ctx)
	logger.Debug().
		Str(loggers.FieldUserID, event.UserID).
		Str(loggers.FieldBatchID, event.BatchID).
		Int(loggers.FieldRecordCount, event.RecordCount).
		Msg("invalidating record index")

	consumer.indexCache.Invalidate(event.UserID)
	metricEventConsumedTotal.WithLabelValues(streamInvocationBatch, metrics.ValueNoError).Inc()
}
