package idishrepo

import (
	"context"

	"github.com/corray333/grubdash/internal/service/models/dish"
)

// IDishRepository is an interface for dish storage.
// Missing records are reported with errs.ErrNotFound.
type IDishRepository interface {
	List(ctx context.Context) ([]dish.Dish, error)
	Get(ctx context.Context, id string) (dish.Dish, error)
	Insert(ctx context.Context, d dish.Dish) (dish.Dish, error)
	Update(ctx context.Context, id string, fn func(d *dish.Dish) error) (dish.Dish, error)
}
