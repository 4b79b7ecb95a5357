package iorderrepo

import (
	"context"

	"github.com/corray333/grubdash/internal/service/models/order"
)

// IOrderRepository is an interface for order storage.
// Missing records are reported with errs.ErrNotFound.
type IOrderRepository interface {
	List(ctx context.Context) ([]order.Order, error)
	Get(ctx context.Context, id string) (order.Order, error)
	Insert(ctx context.Context, o order.Order) (order.Order, error)
	Update(ctx context.Context, id string, fn func(o *order.Order) error) (order.Order, error)
	Delete(ctx context.Context, id string, guard func(o order.Order) error) error
}
