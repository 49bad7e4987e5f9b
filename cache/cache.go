package cache

import (
	"time"

	"github.com/dgraph-io/ristretto/v2"
)

// Cache is a named, cost-bounded cache of rendered content.
type Cache[T any] struct {
	impl *ristretto.Cache[string, T]
	name string
}

// Stats is a snapshot of cache counters for the health endpoint.
type Stats struct {
	Name         string  `json:"name"`
	Hits         uint64  `json:"hits"`
	Misses       uint64  `json:"misses"`
	HitRate      float64 `json:"hit_rate"`
	Items        int64   `json:"items"`
	CostUsed     int64   `json:"cost_used"`
	SetsDropped  uint64  `json:"sets_dropped"`
	SetsRejected uint64  `json:"sets_rejected"`
}

// New creates a cache bounded by maxCost, where costFunc measures a value.
func New[T any](name string, maxCost int64, costFunc func(T) int64) (*Cache[T], error) {
	impl, err := ristretto.NewCache(&ristretto.Config[string, T]{
		NumCounters:        maxCost / 100, // roughly 10x the expected item count
		MaxCost:            maxCost,
		BufferItems:        64,
		Metrics:            true,
		Cost:               costFunc,
		IgnoreInternalCost: true, // cost is exactly the content size
	})
	if err != nil {
		return nil, err
	}

	return &Cache[T]{impl: impl, name: name}, nil
}

func (c *Cache[T]) Get(key string) (T, bool) {
	return c.impl.Get(key)
}

// SetWithTTL stores a value. A cost of 0 defers to the cost function.
// Writes are buffered; call Wait before reading back in tests.
func (c *Cache[T]) SetWithTTL(key string, value T, cost int64, ttl time.Duration) bool {
	return c.impl.SetWithTTL(key, value, cost, ttl)
}

func (c *Cache[T]) Clear() {
	c.impl.Clear()
}

func (c *Cache[T]) Wait() {
	c.impl.Wait()
}

func (c *Cache[T]) Close() {
	c.impl.Close()
}

func (c *Cache[T]) Stats() Stats {
	m := c.impl.Metrics

	hitRate := 0.0
	if total := m.Hits() + m.Misses(); total > 0 {
		hitRate = float64(m.Hits()) / float64(total) * 100
	}

	return Stats{
		Name:         c.name,
		Hits:         m.Hits(),
		Misses:       m.Misses(),
		HitRate:      hitRate,
		Items:        int64(m.KeysAdded() - m.KeysEvicted()),
		CostUsed:     int64(m.CostAdded() - m.CostEvicted()),
		SetsDropped:  m.SetsDropped(),
		SetsRejected: m.SetsRejected(),
	}
}
