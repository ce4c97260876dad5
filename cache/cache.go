// Package cache provides a process-lifetime, in-memory cache of parsed doc roots.
package cache

import (
	"context"
	"iter"
	"slices"
	"sync"

	"github.com/fwojciec/rsdoc"
)

// Ensure Cache implements rsdoc.ItemSource at compile time.
var _ rsdoc.ItemSource = (*Cache)(nil)

// Cache wraps an ItemSource and remembers every item it produced per root.
//
// Entries are never evicted or invalidated: a root is walked at most once
// for the lifetime of the Cache. The bucket for a root is created before its
// walk starts, so a second query issued while the first walk is still in
// progress replays only the items found so far. Walks are expected to be
// issued sequentially by a single consumer.
type Cache struct {
	next rsdoc.ItemSource

	mu      sync.Mutex
	buckets map[string]*bucket
}

type bucket struct {
	items []rsdoc.Item
}

// New creates a Cache in front of next.
func New(next rsdoc.ItemSource) *Cache {
	return &Cache{
		next:    next,
		buckets: make(map[string]*bucket),
	}
}

// Items replays the cached items for root, or walks root through the wrapped
// source while recording each item as it is yielded.
//
// If the consumer stops early the walk still runs to completion so the
// bucket is complete. If the wrapped source ends with an error the bucket is
// discarded, the error is passed on, and the next query walks again.
func (c *Cache) Items(ctx context.Context, root string) iter.Seq2[rsdoc.Item, error] {
	return func(yield func(rsdoc.Item, error) bool) {
		c.mu.Lock()
		b, ok := c.buckets[root]
		if ok {
			items := slices.Clone(b.items)
			c.mu.Unlock()
			for _, item := range items {
				if !yield(item, nil) {
					return
				}
			}
			return
		}
		b = &bucket{}
		c.buckets[root] = b
		c.mu.Unlock()

		consuming := true
		for item, err := range c.next.Items(ctx, root) {
			if err != nil {
				c.mu.Lock()
				if c.buckets[root] == b {
					delete(c.buckets, root)
				}
				c.mu.Unlock()

				if consuming {
					yield(rsdoc.Item{}, err)
				}
				return
			}

			c.mu.Lock()
			b.items = append(b.items, item)
			c.mu.Unlock()

			if consuming && !yield(item, nil) {
				consuming = false
			}
		}
	}
}

// Roots returns the cached roots in sorted order.
func (c *Cache) Roots() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	roots := make([]string, 0, len(c.buckets))
	for root := range c.buckets {
		roots = append(roots, root)
	}
	slices.Sort(roots)
	return roots
}
