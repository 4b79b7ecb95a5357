package outbox

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/corray333/grubdash/internal/dal/interfaces/ieventrepo"
	"github.com/corray333/grubdash/internal/dal/interfaces/ioutboxrepo"
	"github.com/corray333/grubdash/internal/service/models/outbox"
	"github.com/spf13/viper"
)

// Worker relays queued events from the outbox to the broker.
type Worker struct {
	outboxRepo    ioutboxrepo.IOutboxRepository
	broker        ieventrepo.IEventRepository
	pollInterval  time.Duration
	batchSize     int
	retryInterval time.Duration
	maxRetries    int
	now           func() time.Time
}

// NewWorker creates a new outbox worker.
func NewWorker(
	outboxRepo ioutboxrepo.IOutboxRepository,
	broker ieventrepo.IEventRepository,
) *Worker {
	pollIntervalSeconds := viper.GetInt("rabbitmq.outbox.poll_interval_seconds")
	if pollIntervalSeconds == 0 {
		pollIntervalSeconds = 1
	}

	batchSize := viper.GetInt("rabbitmq.outbox.batch_size")
	if batchSize == 0 {
		batchSize = 100
	}

	retryIntervalSeconds := viper.GetInt("rabbitmq.outbox.retry_interval_seconds")
	if retryIntervalSeconds == 0 {
		retryIntervalSeconds = 30
	}

	maxRetries := viper.GetInt("rabbitmq.outbox.max_retries")
	if maxRetries == 0 {
		maxRetries = 5
	}

	return &Worker{
		outboxRepo:    outboxRepo,
		broker:        broker,
		pollInterval:  time.Duration(pollIntervalSeconds) * time.Second,
		batchSize:     batchSize,
		retryInterval: time.Duration(retryIntervalSeconds) * time.Second,
		maxRetries:    maxRetries,
		now:           time.Now,
	}
}

// Start relays messages every poll interval until ctx is done,
// then makes one last pass so events queued before shutdown are not lost.
func (w *Worker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	slog.Info("Outbox worker started", "poll_interval", w.pollInterval, "batch_size", w.batchSize)

	for {
		select {
		case <-ctx.Done():
			w.processMessages(context.WithoutCancel(ctx))
			slog.Info("Outbox worker stopped")

			return
		case <-ticker.C:
			w.processMessages(ctx)
		}
	}
}

// processMessages sends one batch of due messages.
func (w *Worker) processMessages(ctx context.Context) {
	messages, err := w.outboxRepo.GetPendingMessages(ctx, w.batchSize)
	if err != nil {
		slog.Error("Failed to get pending messages from outbox", "error", err)

		return
	}

	if len(messages) == 0 {
		return
	}

	slog.Debug("Processing outbox messages", "count", len(messages))

	for _, msg := range messages {
		if err := w.broker.Publish(ctx, msg.Event); err != nil {
			w.retry(ctx, msg, err)

			continue
		}

		if err := w.outboxRepo.Delete(ctx, msg.ID()); err != nil {
			slog.Error("Failed to delete message from outbox after successful publish",
				"outbox_id", msg.ID(),
				"error", err,
			)
		}
	}
}

// retry schedules msg again with exponential backoff, or drops it once it runs out of attempts.
func (w *Worker) retry(ctx context.Context, msg outbox.Message, cause error) {
	retryCount := msg.RetryCount + 1
	if retryCount > w.maxRetries {
		slog.Error("Dropping outbox message after too many attempts",
			"outbox_id", msg.ID(),
			"type", msg.Event.Type,
			"retry_count", msg.RetryCount,
			"error", cause,
		)
		if err := w.outboxRepo.Delete(ctx, msg.ID()); err != nil {
			slog.Error("Failed to delete message from outbox", "outbox_id", msg.ID(), "error", err)
		}

		return
	}

	backoff := time.Duration(math.Pow(2, float64(retryCount-1))) * w.retryInterval
	nextRetryAt := w.now().Add(backoff)

	slog.Warn("Failed to publish message from outbox, will retry",
		"outbox_id", msg.ID(),
		"retry_count", retryCount,
		"next_retry", nextRetryAt,
		"error", cause,
	)

	if err := w.outboxRepo.UpdateRetry(ctx, msg.ID(), retryCount, cause.Error(), nextRetryAt); err != nil {
		slog.Error("Failed to update retry information", "outbox_id", msg.ID(), "error", err)
	}
}
