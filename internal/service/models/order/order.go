package order

import (
	"slices"

	"github.com/corray333/grubdash/internal/service/models/orderitem"
)

// Order is a customer order.
type Order struct {
	ID           string                `json:"id"`
	DeliverTo    string                `json:"deliverTo"`
	MobileNumber string                `json:"mobileNumber"`
	Status       Status                `json:"status,omitempty"`
	Dishes       []orderitem.OrderItem `json:"dishes"`
}

// Clone returns a copy whose line item slice is independent of o.
// Line items themselves are immutable.
func (o Order) Clone() Order {
	o.Dishes = slices.Clone(o.Dishes)

	return o
}
