package streams

import (
	"context"
	"fmt"
	"runtime/debug"
	"strconv"
	"sync"
	"time"

	"log-summary/internal/events"
	"log-summary/internal/exporters"
	"log-summary/internal/shared/loggers"
	"log-summary/internal/shared/metrics"
	"log-summary/internal/shared/svcerrors"
	"log-summary/internal/shared/ulid"
)

//go:generate mockgen -source=summary_created_consumer.go -destination=./mocks/summary_created_consumer_mock.go -package=mocks
type SummaryCreatedConsumer interface {
	Start(ctx context.Context)
	Stop()
}

type summaryCreatedConsumer struct {
	queue         *PartitionedQueue[events.SummaryCreatedEvent]
	exportService exporters.ExportService

	wg sync.WaitGroup

	stopOnce sync.Once
	stopCh   chan struct{}

	logger loggers.Logger
}

func NewSummaryCreatedConsumer(queue *PartitionedQueue[events.SummaryCreatedEvent], exportService exporters.ExportService, logger loggers.Logger) SummaryCreatedConsumer {
	return &summaryCreatedConsumer{
		queue:         queue,
		exportService: exportService,
		stopCh:        make(chan struct{}),
		logger:        logger,
	}
}

// Start spawns 1 worker goroutine per partition.
func (consumer *summaryCreatedConsumer) Start(ctx context.Context) {
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
func (consumer *summaryCreatedConsumer) Stop() {
	consumer.stopOnce.Do(func() { close(consumer.stopCh) })
	consumer.wg.Wait()
}

func (consumer *summaryCreatedConsumer) runPartitionWorker(ctx context.Context, partitionIndex int, ch <-chan events.SummaryCreatedEvent) {
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
			consumer.handle(ctx, partitionIndex, &event)
		}
	}
}

func (consumer *summaryCreatedConsumer) handle(ctx context.Context, partitionIndex int, event *events.SummaryCreatedEvent) {
	ctx = consumer.logger.With().
		Str(loggers.FieldPartitionID, strconv.Itoa(partitionIndex)).
		Str(loggers.FieldRequestID, ulid.NewULID()).
		Str(loggers.FieldSummaryID, event.SummaryID).
		Logger().WithContext(ctx)

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
			metricEventsHandledTotal.WithLabelValues(streamSummaryCreated, svcErr.Code).Inc()
		}
	}()

	start := time.Now()
	defer func() {
		metricEventHandleDurationSeconds.WithLabelValues(streamSummaryCreated).Observe(time.Since(start).Seconds())
	}()

	svcError := consumer.exportService.Export(ctx, event)
	if svcError != nil {
		loggers.Ctx(ctx).Error().
			Err(svcError.Cause).
			Str(loggers.FieldErrorCode, svcError.Code).
			Msg("failed to export summary paths")
		metricEventsHandledTotal.WithLabelValues(streamSummaryCreated, svcError.Code).Inc()
		return
	}
	metricEventsHandledTotal.WithLabelValues(streamSummaryCreated, metrics.ValueNoError).Inc()
}
