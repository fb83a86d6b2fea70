package props

import (
	"context"
	"sort"
	"sync"
)

// Collection is a concurrency-safe named map that fills itself with built-in
// defaults the first time it is touched.
//
// Seeding happens at most once. A collection that was seeded, or replaced,
// and later emptied stays empty.
type Collection[V any] struct {
	mu          sync.RWMutex
	items       map[string]V
	initialized bool
	seed        func(ctx context.Context) map[string]V
	// afterWrite runs under the write lock after every mutation, seeding
	// included.
	afterWrite func(items map[string]V)
	// beforeSeed runs without the lock ahead of a possible seed; afterSeed
	// runs once the lock is released, only when this call seeded.
	beforeSeed func(ctx context.Context)
	afterSeed  func(ctx context.Context)
}

// NewCollection creates a collection seeded by seed. A nil seed starts empty.
func NewCollection[V any](seed func(ctx context.Context) map[string]V) *Collection[V] {
	return &Collection[V]{items: map[string]V{}, seed: seed}
}

// Seed fills the collection with its defaults unless that already happened.
// It reports whether this call did the seeding.
func (c *Collection[V]) Seed(ctx context.Context) bool {
	c.mu.RLock()
	done := c.initialized
	c.mu.RUnlock()
	if done {
		return false
	}

	if c.beforeSeed != nil {
		c.beforeSeed(ctx)
	}
	if !c.seedOnce(ctx) {
		return false
	}
	if c.afterSeed != nil {
		c.afterSeed(ctx)
	}
	return true
}

func (c *Collection[V]) seedOnce(ctx context.Context) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.initialized {
		return false
	}
	c.seedLocked(ctx)
	return true
}

func (c *Collection[V]) seedLocked(ctx context.Context) {
	c.initialized = true
	if c.seed != nil {
		for k, v := range c.seed(ctx) {
			c.items[k] = v
		}
	}
	c.wrote()
}

func (c *Collection[V]) ensure() {
	c.Seed(context.Background())
}

func (c *Collection[V]) wrote() {
	if c.afterWrite != nil {
		c.afterWrite(c.items)
	}
}

// Initialized reports whether the collection has been seeded or replaced.
func (c *Collection[V]) Initialized() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.initialized
}

// Get returns the value stored under key.
func (c *Collection[V]) Get(key string) (V, bool) {
	c.ensure()
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.items[key]
	return v, ok
}

// Put stores v under key, replacing any previous value.
func (c *Collection[V]) Put(key string, v V) {
	c.ensure()
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = v
	c.wrote()
}

// PutAll stores every entry of items, replacing values on key collision.
func (c *Collection[V]) PutAll(items map[string]V) {
	c.ensure()
	c.mu.Lock()
	defer c.mu.Unlock()
	for k, v := range items {
		c.items[k] = v
	}
	c.wrote()
}

// Delete removes key and reports whether it was present.
func (c *Collection[V]) Delete(key string) bool {
	c.ensure()
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[key]; !ok {
		return false
	}
	delete(c.items, key)
	c.wrote()
	return true
}

// Len returns the number of entries.
func (c *Collection[V]) Len() int {
	c.ensure()
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Keys returns the keys in ascending order.
func (c *Collection[V]) Keys() []string {
	c.ensure()
	c.mu.RLock()
	defer c.mu.RUnlock()
	keys := make([]string, 0, len(c.items))
	for k := range c.items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Snapshot returns a copy of the entries. Values are not copied.
func (c *Collection[V]) Snapshot() map[string]V {
	c.ensure()
	c.mu.RLock()
	defer c.mu.RUnlock()
	return copyMap(c.items)
}

// Range calls fn for each entry in key order until fn returns false. fn runs
// on a snapshot, so it may modify the collection.
func (c *Collection[V]) Range(fn func(key string, v V) bool) {
	snapshot := c.Snapshot()
	keys := make([]string, 0, len(snapshot))
	for k := range snapshot {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if !fn(k, snapshot[k]) {
			return
		}
	}
}

// Replace atomically swaps the contents for items. A nil map is ignored and
// Replace reports false. Replacing marks the collection seeded, so an empty
// replacement is kept.
func (c *Collection[V]) Replace(items map[string]V) bool {
	return c.replaceWith(items, nil)
}

// replaceWith is Replace that also runs fn under the same write lock.
func (c *Collection[V]) replaceWith(items map[string]V, fn func()) bool {
	if items == nil {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.initialized = true
	c.items = copyMap(items)
	if fn != nil {
		fn()
	}
	c.wrote()
	return true
}

// view runs fn under the read lock after seeding.
func (c *Collection[V]) view(fn func(items map[string]V)) {
	c.ensure()
	c.mu.RLock()
	defer c.mu.RUnlock()
	fn(c.items)
}

// update runs fn under the write lock after seeding. fn may replace the
// whole map by returning a non-nil one.
func (c *Collection[V]) update(fn func(items map[string]V) map[string]V) {
	c.ensure()
	c.mu.Lock()
	defer c.mu.Unlock()
	if next := fn(c.items); next != nil {
		c.items = next
	}
	c.wrote()
}

func copyMap[V any](in map[string]V) map[string]V {
	out := make(map[string]V, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
