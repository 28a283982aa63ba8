// Package resourcecache keeps in-memory snapshots of API resources and
// refreshes them after writes. Reads are served from the snapshot; a refresh
// replaces it wholesale.
package resourcecache

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// FetchFunc loads the current state of a resource from the API.
type FetchFunc[T any] func(ctx context.Context) (T, error)

// Cache holds one resource's snapshot. Refresh failures keep the previous
// snapshot and are logged, never returned: a failed background refresh must
// not break readers that were fine a moment ago.
type Cache[T any] struct {
	name  string
	fetch FetchFunc[T]
	log   zerolog.Logger

	// seq numbers refreshes at issue time. A response whose number is no
	// longer the latest issued is discarded, so concurrent refreshes settle
	// on the most recently issued one regardless of completion order.
	seq atomic.Uint64

	mu       sync.RWMutex
	data     T
	loaded   bool
	inflight int
	subs     []func(T)
}

func New[T any](name string, fetch FetchFunc[T], log zerolog.Logger) *Cache[T] {
	return &Cache[T]{
		name:  name,
		fetch: fetch,
		log:   log.With().Str("cache", name).Logger(),
	}
}

// Refresh fetches the resource and replaces the snapshot. Safe to call
// concurrently; only the latest issued refresh wins.
func (c *Cache[T]) Refresh(ctx context.Context) {
	seq := c.seq.Add(1)

	c.mu.Lock()
	c.inflight++
	c.mu.Unlock()

	data, err := c.fetch(ctx)

	c.mu.Lock()
	c.inflight--
	if err != nil {
		c.mu.Unlock()
		c.log.Error().Err(err).Msg("refresh failed, keeping previous snapshot")
		return
	}
	if seq != c.seq.Load() {
		c.mu.Unlock()
		c.log.Debug().Uint64("seq", seq).Msg("discarding superseded refresh")
		return
	}
	c.data = data
	c.loaded = true
	subs := make([]func(T), len(c.subs))
	copy(subs, c.subs)
	c.mu.Unlock()

	for _, fn := range subs {
		fn(data)
	}
}

// Data returns the current snapshot. Zero value until the first successful
// refresh; check Loaded when that matters.
func (c *Cache[T]) Data() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.data
}

// Loaded reports whether at least one refresh has succeeded.
func (c *Cache[T]) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

// Loading reports whether any refresh is in flight.
func (c *Cache[T]) Loading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.inflight > 0
}

// Subscribe registers fn to run after every applied refresh. Callbacks run
// outside the cache lock, in Refresh's goroutine.
func (c *Cache[T]) Subscribe(fn func(T)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subs = append(c.subs, fn)
}
