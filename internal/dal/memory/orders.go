package memory

import (
	"context"

	"github.com/corray333/grubdash/internal/service/models/order"
)

// OrderRepository keeps orders for the lifetime of the process.
type OrderRepository struct {
	orders *collection[order.Order]
}

// NewOrderRepository creates a repository holding seed in the given order.
func NewOrderRepository(seed ...order.Order) *OrderRepository {
	r := &OrderRepository{
		orders: newCollection(
			func(o order.Order) string { return o.ID },
			func(o order.Order) order.Order { return o.Clone() },
		),
	}
	for _, o := range seed {
		_, _ = r.orders.insert(o)
	}

	return r
}

func (r *OrderRepository) List(_ context.Context) ([]order.Order, error) {
	return r.orders.list(), nil
}

func (r *OrderRepository) Get(_ context.Context, id string) (order.Order, error) {
	return r.orders.get(id)
}

func (r *OrderRepository) Insert(_ context.Context, o order.Order) (order.Order, error) {
	return r.orders.insert(o)
}

// Update runs fn against the stored order under the write lock.
func (r *OrderRepository) Update(
	_ context.Context,
	id string,
	fn func(o *order.Order) error,
) (order.Order, error) {
	return r.orders.update(id, fn)
}

// Delete removes the order when guard returns nil.
func (r *OrderRepository) Delete(
	_ context.Context,
	id string,
	guard func(o order.Order) error,
) error {
	return r.orders.remove(id, guard)
}
