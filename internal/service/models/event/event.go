package event

import (
	"time"

	"github.com/google/uuid"
)

// Type names what happened to a resource.
type Type string

const (
	DishCreated  Type = "dish.created"
	DishUpdated  Type = "dish.updated"
	OrderCreated Type = "order.created"
	OrderUpdated Type = "order.updated"
	OrderDeleted Type = "order.deleted"
)

// Event is emitted after a successful mutation.
type Event struct {
	ID         string    `json:"id"`
	Type       Type      `json:"type"`
	ResourceID string    `json:"resourceId"`
	Data       any       `json:"data,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// New stamps an event with a fresh id and the current time.
func New(t Type, resourceID string, data any) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       t,
		ResourceID: resourceID,
		Data:       data,
		OccurredAt: time.Now().UTC(),
	}
}
