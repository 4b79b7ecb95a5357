package orderitem

import (
	"encoding/json"
	"fmt"

	"github.com/corray333/grubdash/internal/service/models/payload"
)

// OrderItem is one line of an order: a dish reference and how many of it.
// The submitted object is kept as is, so every key and literal round-trips.
// Only quantity is validated; dish fields are not checked against the menu.
type OrderItem struct {
	fields payload.Payload
}

// New builds an item from a validated line of the "dishes" array.
func New(fields payload.Payload) OrderItem {
	return OrderItem{fields: fields.Clone()}
}

// ID is the referenced dish id as text, or "" when the line has none.
func (i OrderItem) ID() string {
	return i.fields.Text("id")
}

// Quantity is the line quantity. It is 0 when it does not fit an int64.
func (i OrderItem) Quantity() int64 {
	q, _ := i.fields.Integer("quantity")

	return q
}

// Fields returns a copy of the submitted object.
func (i OrderItem) Fields() payload.Payload {
	return i.fields.Clone()
}

func (i OrderItem) MarshalJSON() ([]byte, error) {
	if i.fields == nil {
		return []byte("{}"), nil
	}

	return json.Marshal(map[string]any(i.fields))
}

func (i *OrderItem) UnmarshalJSON(raw []byte) error {
	p, err := payload.Decode(raw)
	if err != nil {
		return fmt.Errorf("failed to decode order item: %w", err)
	}
	i.fields = p

	return nil
}
