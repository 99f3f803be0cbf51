package streams

import (
	"context"

	"log-summary/internal/events"
)

// SummaryCreatedProducer publishes SummaryCreatedEvents to a partitioned queue.
//
// The partition key is the server name, so the exports of one server are written by a single
// worker in the order their summaries were stored, while different servers are exported in
// parallel.
//
//go:generate mockgen -source=summary_created_producer.go -destination=./mocks/summary_created_producer_mock.go -package=mocks
type SummaryCreatedProducer interface {
	Produce(ctx context.Context, event *events.SummaryCreatedEvent) error
}

type summaryCreatedProducer struct {
	queue *PartitionedQueue[events.SummaryCreatedEvent]
}

func NewSummaryCreatedProducer(queue *PartitionedQueue[events.SummaryCreatedEvent]) SummaryCreatedProducer {
	return &summaryCreatedProducer{
		queue: queue,
	}
}

func (producer *summaryCreatedProducer) Produce(ctx context.Context, event *events.SummaryCreatedEvent) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if err := producer.queue.Publish(ctx, event.Server, *event); err != nil {
		metricEventsPublishedTotal.WithLabelValues(streamSummaryCreated, outcomeCancelled).Inc()
		return err
	}
	metricEventsPublishedTotal.WithLabelValues(streamSummaryCreated, outcomePublished).Inc()
	return nil
}
