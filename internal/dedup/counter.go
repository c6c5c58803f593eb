package dedup

import "sync"

// Counter hands out group ids as a strictly increasing sequence starting at
// 1. Increments are serialized so concurrent callers never observe the same
// value twice. A fresh counter (or one that never ran) peeks 0, the reserved
// "ungrouped" marker.
type Counter struct {
	mu    sync.Mutex
	value int
}

// NewCounter returns a counter whose first Next call yields 1.
func NewCounter() *Counter { return &Counter{} }

// Next returns the next id in the sequence.
func (c *Counter) Next() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value++
	return c.value
}

// Peek returns the most recently issued id without consuming one; 0 when no
// id has been issued. After a grouping pass it equals the group count.
func (c *Counter) Peek() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}
