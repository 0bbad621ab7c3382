/*
Package lru implements a concurrent key-value cache with capacity overflow eviction.

Records are kept in an intrusive list ordered by eviction priority, so moving
and evicting a record never allocates a list element.
*/
package lru

import (
	"encoding/gob"
	"hash/maphash"
	"sync"

	"github.com/mgnsk/intrusive"
	"github.com/puzpuzpuz/xsync/v2"
	"github.com/sirupsen/logrus"
)

type record[K comparable, V any] struct {
	key   K
	value V
	node  intrusive.Node[intrusive.Default]
}

func recordNode[K comparable, V any](r *record[K, V]) *intrusive.Node[intrusive.Default] {
	return &r.node
}

// Cache is an in-memory cache with optional capacity.
//
// Records are immutable once stored. Reads under the FIFO policy do not
// take the cache lock.
type Cache[K comparable, V any] struct {
	xmap     *xsync.MapOf[K, *record[K, V]]
	list     *intrusive.List[record[K, V], intrusive.Default]
	logger   logrus.FieldLogger
	policy   string
	capacity int
	mu       sync.Mutex
}

// New creates an empty cache.
func New[K comparable, V any](opts ...Option) *Cache[K, V] {
	opt := newDefaultCacheOptions()
	for _, o := range opts {
		o.apply(&opt)
	}

	c := &Cache[K, V]{
		xmap: xsync.NewTypedMapOf[K, *record[K, V]](func(seed maphash.Seed, key K) uint64 {
			var h maphash.Hash
			h.SetSeed(seed)

			enc := gob.NewEncoder(&h)
			if err := enc.Encode(key); err != nil {
				panic(err)
			}

			return h.Sum64()
		}),
		logger:   opt.logger,
		policy:   opt.policy,
		capacity: opt.capacity,
	}
	c.list = c.newList()

	return c
}

func (c *Cache[K, V]) newList() *intrusive.List[record[K, V], intrusive.Default] {
	return intrusive.New(intrusive.WithNode(recordNode[K, V]))
}

// Exists returns whether a value in the cache exists for key.
func (c *Cache[K, V]) Exists(key K) bool {
	_, ok := c.xmap.Load(key)
	return ok
}

// Get returns the value stored in the cache for key.
// Under the LRU policy the record becomes the most recently used one.
func (c *Cache[K, V]) Get(key K) (value V, exists bool) {
	r, ok := c.xmap.Load(key)
	if !ok {
		var zero V
		return zero, false
	}

	if c.policy == LRU {
		c.mu.Lock()
		// The record may have been evicted since it was loaded.
		if r.node.IsLinked() {
			c.list.SpliceCell(c.list.End(), c.list, c.list.IteratorOf(r))
		}
		c.mu.Unlock()
	}

	return r.value, true
}

// Set stores value for key and reports whether an existing value was
// replaced. A replaced record keeps its position under the FIFO policy and
// becomes the most recently used one under the LRU policy.
//
// Storing a new key in a full cache evicts the oldest record.
func (c *Cache[K, V]) Set(key K, value V) (replaced bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	r := &record[K, V]{key: key, value: value}

	if old, ok := c.xmap.Load(key); ok {
		if c.policy == LRU {
			c.list.PushBack(r)
		} else {
			c.list.Insert(c.list.IteratorOf(old), r)
		}
		old.node.Unlink()
		c.xmap.Store(key, r)

		return true
	}

	// Make room first so that lock-free readers never observe the cache
	// over capacity.
	if c.capacity > 0 && c.xmap.Size() >= c.capacity {
		if front, ok := c.list.TryPopFront(); ok {
			c.xmap.Delete(front.key)
			c.logger.WithField("key", front.key).Debug("lru: evicted record over capacity")
		}
	}

	c.list.PushBack(r)
	c.xmap.Store(key, r)

	return false
}

// Evict a key and return its value.
func (c *Cache[K, V]) Evict(key K) (value V, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	r, ok := c.xmap.LoadAndDelete(key)
	if !ok {
		var zero V
		return zero, false
	}

	r.node.Unlink()

	return r.value, true
}

// EvictOldest evicts at most n records in eviction order and returns the
// number of records evicted.
func (c *Cache[K, V]) EvictOldest(n int) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	evicted := c.newList()
	count := c.list.ExtractFront(evicted, n)

	for r := range evicted.All() {
		c.xmap.Delete(r.key)
		c.logger.WithField("key", r.key).Debug("lru: evicted oldest record")
	}

	evicted.Clear()

	return count
}

// Range calls f for each key and value present in the cache in eviction order.
// If f returns false, Range stops the iteration.
//
// Range iterates over a snapshot and is allowed to modify the cache.
func (c *Cache[K, V]) Range(f func(key K, value V) bool) {
	c.mu.Lock()
	records := make([]*record[K, V], 0, c.xmap.Size())
	for r := range c.list.All() {
		records = append(records, r)
	}
	c.mu.Unlock()

	for _, r := range records {
		if !f(r.key, r.value) {
			return
		}
	}
}

// Len returns the number of keys in the cache.
func (c *Cache[K, V]) Len() int {
	return c.xmap.Size()
}

// Flush evicts all keys from the cache.
func (c *Cache[K, V]) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for r, ok := c.list.TryPopFront(); ok; r, ok = c.list.TryPopFront() {
		c.xmap.Delete(r.key)
		n++
	}

	c.logger.WithField("count", n).Debug("lru: flushed")
}
