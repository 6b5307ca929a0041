// Package cache provides small in-process caches for hot paths
package cache

import (
	"sync"
	"time"
)

// TTL is an in-memory cache with per-entry expiry.
// Expiry is enforced logically on read, so a stale entry is never
// returned even if the background sweep has not run yet
type TTL[V any] struct {
	mu    sync.RWMutex
	data  map[string]ttlEntry[V]
	sweep *time.Ticker
	done  chan struct{}
}

type ttlEntry[V any] struct {
	val     V
	expires time.Time
}

// NewTTL builds a cache that sweeps expired entries every sweepEvery.
// sweepEvery <= 0 disables the background sweep; reads still expire
func NewTTL[V any](sweepEvery time.Duration) *TTL[V] {
	c := &TTL[V]{
		data: make(map[string]ttlEntry[V]),
		done: make(chan struct{}),
	}
	if sweepEvery > 0 {
		c.sweep = time.NewTicker(sweepEvery)
		go c.run()
	}
	return c
}

// Get returns the value for key if present and not expired
func (c *TTL[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	e, ok := c.data[key]
	c.mu.RUnlock()

	var zero V
	if !ok {
		return zero, false
	}
	if time.Now().After(e.expires) {
		c.mu.Lock()
		// re-check under the write lock; a Set may have refreshed it
		if cur, still := c.data[key]; still && time.Now().After(cur.expires) {
			delete(c.data, key)
		}
		c.mu.Unlock()
		return zero, false
	}
	return e.val, true
}

// Set stores val under key for ttl; ttl <= 0 drops the key
func (c *TTL[V]) Set(key string, val V, ttl time.Duration) {
	if ttl <= 0 {
		c.Delete(key)
		return
	}
	c.mu.Lock()
	c.data[key] = ttlEntry[V]{val: val, expires: time.Now().Add(ttl)}
	c.mu.Unlock()
}

// Delete removes key if present
func (c *TTL[V]) Delete(key string) {
	c.mu.Lock()
	delete(c.data, key)
	c.mu.Unlock()
}

// Len reports the number of entries including not-yet-swept expired ones
func (c *TTL[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}

// Close stops the background sweep
func (c *TTL[V]) Close() {
	if c.sweep != nil {
		c.sweep.Stop()
	}
	close(c.done)
}

func (c *TTL[V]) run() {
	for {
		select {
		case <-c.done:
			return
		case <-c.sweep.C:
			now := time.Now()
			c.mu.Lock()
			for k, e := range c.data {
				if now.After(e.expires) {
					delete(c.data, k)
				}
			}
			c.mu.Unlock()
		}
	}
}
