package streams

import (
	"context"

	"function-insights/internal/events"
)

// InvocationBatchProducer publishes InvocationBatchStoredEvents keyed by user id.
//
// Every event of a user lands on the same partition, and each partition has a
// single consumer worker, so the side effects for one user (index invalidation)
// run in the order batches were stored while different users proceed in parallel.
//
//go:generate mockgen -source=invocation_batch_producer.go -destination=./mocks/invocation_batch_producer_mock.go -package=mocks
type InvocationBatchProducer interface {
	Produce(ctx context.Context, event *events.InvocationBatchStoredEvent) error
}

type invocationBatchProducer struct {
	queue *PartitionedQueue[events.InvocationBatchStoredEvent]
}

func NewInvocationBatchProducer(queue *PartitionedQueue[events.InvocationBatchStoredEvent]) InvocationBatchProducer {
	return &invocationBatchProducer{queue: queue}
}

func (producer *invocationBatchProducer) Produce(ctx context.Context, event *events.InvocationBatchStoredEvent) error {
	if err := producer.queue.Publish(ctx, event.UserID, *event); err != nil {
		return err
	}
	metricEventProducedTotal.WithLabelValues(streamInvocationBatch).Inc()
	return nil
}
