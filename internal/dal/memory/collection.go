package memory

import (
	"errors"
	"fmt"
	"sync"

	"github.com/corray333/grubdash/internal/service/errs"
)

var ErrDuplicateID = errors.New("duplicate id")

// collection is an insertion-ordered list of records guarded by one lock.
type collection[T any] struct {
	mu    sync.RWMutex
	items []T
	id    func(T) string
	clone func(T) T
}

func newCollection[T any](id func(T) string, clone func(T) T) *collection[T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}

	return &collection[T]{id: id, clone: clone}
}

func (c *collection[T]) list() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.items))
	for i, item := range c.items {
		out[i] = c.clone(item)
	}

	return out
}

func (c *collection[T]) indexOf(id string) int {
	for i, item := range c.items {
		if c.id(item) == id {
			return i
		}
	}

	return -1
}

func (c *collection[T]) get(id string) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i := c.indexOf(id)
	if i < 0 {
		var zero T

		return zero, errs.ErrNotFound
	}

	return c.clone(c.items[i]), nil
}

func (c *collection[T]) insert(item T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.indexOf(c.id(item)) >= 0 {
		var zero T

		return zero, fmt.Errorf("%w: %s", ErrDuplicateID, c.id(item))
	}
	c.items = append(c.items, c.clone(item))

	return c.clone(item), nil
}

// update applies fn to a copy of the record and stores the copy only when fn succeeds,
// so a failed check leaves the record untouched.
func (c *collection[T]) update(id string, fn func(*T) error) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	i := c.indexOf(id)
	if i < 0 {
		return zero, errs.ErrNotFound
	}

	next := c.clone(c.items[i])
	if err := fn(&next); err != nil {
		return zero, err
	}
	c.items[i] = next

	return c.clone(next), nil
}

// remove deletes the record if guard allows it.
func (c *collection[T]) remove(id string, guard func(T) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return errs.ErrNotFound
	}
	if guard != nil {
		if err := guard(c.clone(c.items[i])); err != nil {
			return err
		}
	}
	c.items = append(c.items[:i], c.items[i+1:]...)

	return nil
}
