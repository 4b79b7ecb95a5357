package idgen

import (
	"strconv"
	"sync/atomic"
)

// Generator hands out unique decimal string ids. Safe for concurrent use;
// share one instance between every store that needs ids.
type Generator struct {
	last atomic.Int64
}

// New creates a generator whose first id is "1".
func New() *Generator {
	return &Generator{}
}

// Observe moves the counter past any numeric id in ids.
// Non-numeric ids cannot collide with generated ones and are ignored.
func (g *Generator) Observe(ids ...string) {
	for _, id := range ids {
		n, err := strconv.ParseInt(id, 10, 64)
		if err != nil {
			continue
		}
		for {
			cur := g.last.Load()
			if n <= cur || g.last.CompareAndSwap(cur, n) {
				break
			}
		}
	}
}

// Next returns an id that has not been returned before.
func (g *Generator) Next() string {
	return strconv.FormatInt(g.last.Add(1), 10)
}
