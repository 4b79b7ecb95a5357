package memory

import (
	"context"
	"time"

	"github.com/corray333/grubdash/internal/service/models/event"
	"github.com/corray333/grubdash/internal/service/models/outbox"
)

// OutboxRepository holds events until the outbox worker relays them.
type OutboxRepository struct {
	messages *collection[outbox.Message]
	now      func() time.Time
}

func NewOutboxRepository() *OutboxRepository {
	return &OutboxRepository{
		messages: newCollection(outbox.Message.ID, nil),
		now:      time.Now,
	}
}

// Publish queues events for delivery. It never talks to the broker.
func (r *OutboxRepository) Publish(_ context.Context, events ...event.Event) error {
	now := r.now()
	for _, e := range events {
		if _, err := r.messages.insert(outbox.NewMessage(e, now)); err != nil {
			return err
		}
	}

	return nil
}

// GetPendingMessages returns up to limit due messages, oldest first.
func (r *OutboxRepository) GetPendingMessages(_ context.Context, limit int) ([]outbox.Message, error) {
	now := r.now()

	var pending []outbox.Message
	for _, m := range r.messages.list() {
		if limit > 0 && len(pending) == limit {
			break
		}
		if m.Due(now) {
			pending = append(pending, m)
		}
	}

	return pending, nil
}

func (r *OutboxRepository) UpdateRetry(
	_ context.Context,
	id string,
	retryCount int,
	lastError string,
	nextRetryAt time.Time,
) error {
	_, err := r.messages.update(id, func(m *outbox.Message) error {
		m.RetryCount = retryCount
		m.LastError = lastError
		m.NextRetryAt = nextRetryAt

		return nil
	})

	return err
}

func (r *OutboxRepository) Delete(_ context.Context, id string) error {
	return r.messages.remove(id, nil)
}
