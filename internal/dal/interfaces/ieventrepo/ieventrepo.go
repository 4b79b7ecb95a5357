package ieventrepo

import (
	"context"

	"github.com/corray333/grubdash/internal/service/models/event"
)

// IEventRepository is an interface for the domain event sink.
type IEventRepository interface {
	Publish(ctx context.Context, events ...event.Event) error
}
