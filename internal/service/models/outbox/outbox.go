package outbox

import (
	"time"

	"github.com/corray333/grubdash/internal/service/models/event"
)

// Message is an event waiting to be relayed to the broker.
type Message struct {
	Event       event.Event
	RetryCount  int
	LastError   string
	CreatedAt   time.Time
	NextRetryAt time.Time
}

// ID is the id of the wrapped event.
func (m Message) ID() string {
	return m.Event.ID
}

// NewMessage wraps e so it is due immediately.
func NewMessage(e event.Event, now time.Time) Message {
	return Message{
		Event:       e,
		CreatedAt:   now,
		NextRetryAt: now,
	}
}

// Due reports whether m may be sent at now.
func (m Message) Due(now time.Time) bool {
	return !m.NextRetryAt.After(now)
}
