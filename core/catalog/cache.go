package catalog

import (
	"context"
	"slices"
	"sync"
	"time"

	"releng-sop/core/reconcile"

	"golang.org/x/sync/singleflight"
)

// CachingClient reuses query results for a fixed time.
// Concurrent misses for the same query share one upstream request.
type CachingClient struct {
	next Client
	ttl  time.Duration
	now  func() time.Time

	mu      sync.RWMutex
	entries map[string]cacheEntry
	sf      singleflight.Group
}

type cacheEntry struct {
	repos []reconcile.RepoRecord
	built time.Time
}

// NewCachingClient wraps next. A zero ttl disables caching.
func NewCachingClient(next Client, ttl time.Duration) *CachingClient {
	return &CachingClient{
		next:    next,
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]cacheEntry),
	}
}

func (c *CachingClient) fresh(key string) ([]reconcile.RepoRecord, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || c.now().Sub(entry.built) > c.ttl {
		return nil, false
	}
	return entry.repos, true
}

// ContentDeliveryRepos implements Client.
func (c *CachingClient) ContentDeliveryRepos(ctx context.Context, query Query) ([]reconcile.RepoRecord, error) {
	if c.ttl == 0 {
		return c.next.ContentDeliveryRepos(ctx, query)
	}

	key := query.Values().Encode()
	if repos, ok := c.fresh(key); ok {
		cacheLookups.WithLabelValues("hit").Inc()
		return slices.Clone(repos), nil
	}

	result, err, _ := c.sf.Do(key, func() (interface{}, error) {
		if repos, ok := c.fresh(key); ok {
			cacheLookups.WithLabelValues("hit").Inc()
			return repos, nil
		}
		cacheLookups.WithLabelValues("miss").Inc()

		repos, err := c.next.ContentDeliveryRepos(ctx, query)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.entries[key] = cacheEntry{repos: repos, built: c.now()}
		c.mu.Unlock()

		return repos, nil
	})
	if err != nil {
		return nil, err
	}

	return slices.Clone(result.([]reconcile.RepoRecord)), nil
}

// Invalidate drops every cached result.
func (c *CachingClient) Invalidate() {
	c.mu.Lock()
	c.entries = make(map[string]cacheEntry)
	c.mu.Unlock()
}
