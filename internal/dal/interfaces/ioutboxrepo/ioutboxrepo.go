package ioutboxrepo

import (
	"context"
	"time"

	"github.com/corray333/grubdash/internal/service/models/event"
	"github.com/corray333/grubdash/internal/service/models/outbox"
)

type IOutboxRepository interface {
	Publish(ctx context.Context, events ...event.Event) error
	GetPendingMessages(ctx context.Context, limit int) ([]outbox.Message, error)
	UpdateRetry(ctx context.Context, id string, retryCount int, lastError string, nextRetryAt time.Time) error
	Delete(ctx context.Context, id string) error
}
