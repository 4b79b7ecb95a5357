package memory

import (
	"context"

	"github.com/corray333/grubdash/internal/service/models/dish"
)

// DishRepository keeps dishes for the lifetime of the process.
type DishRepository struct {
	dishes *collection[dish.Dish]
}

// NewDishRepository creates a repository holding seed in the given order.
func NewDishRepository(seed ...dish.Dish) *DishRepository {
	r := &DishRepository{
		dishes: newCollection(func(d dish.Dish) string { return d.ID }, nil),
	}
	for _, d := range seed {
		// seed ids are unique, checked by the seed loader
		_, _ = r.dishes.insert(d)
	}

	return r
}

func (r *DishRepository) List(_ context.Context) ([]dish.Dish, error) {
	return r.dishes.list(), nil
}

func (r *DishRepository) Get(_ context.Context, id string) (dish.Dish, error) {
	return r.dishes.get(id)
}

func (r *DishRepository) Insert(_ context.Context, d dish.Dish) (dish.Dish, error) {
	return r.dishes.insert(d)
}

// Update runs fn against the stored dish under the write lock.
func (r *DishRepository) Update(
	_ context.Context,
	id string,
	fn func(d *dish.Dish) error,
) (dish.Dish, error) {
	return r.dishes.update(id, fn)
}
