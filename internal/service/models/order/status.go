package order

import "errors"

// Status is the delivery state of an order.
type Status string

const (
	StatusPending        Status = "pending"
	StatusPreparing      Status = "preparing"
	StatusOutForDelivery Status = "out-for-delivery"
	StatusDelivered      Status = "delivered"
)

var ErrInvalidStatus = errors.New("invalid order status")

// Statuses lists every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{StatusPending, StatusPreparing, StatusOutForDelivery, StatusDelivered}
}

func (s Status) String() string {
	return string(s)
}

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusPreparing, StatusOutForDelivery, StatusDelivered:
		return Status(s), nil
	default:
		return "", ErrInvalidStatus
	}
}
