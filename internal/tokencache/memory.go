package tokencache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Memory is an in-process Cache backed by go-cache. Safe for concurrent
// use by many request goroutines sharing one instance.
type Memory struct {
	store *gocache.Cache
}

// NewMemory builds an in-process cache. Expired entries are reaped in
// the background; reads never return an expired entry regardless.
func NewMemory() *Memory {
	return &Memory{store: gocache.New(gocache.NoExpiration, time.Minute)}
}

// Get reports the cached verdict for key, if a live entry exists.
func (m *Memory) Get(_ context.Context, key string) (bool, bool, error) {
	val, found := m.store.Get(key)
	if !found {
		return false, false, nil
	}
	valid, ok := val.(bool)
	if !ok {
		return false, false, nil
	}
	return valid, true, nil
}

// Set stores a verdict for ttl, overwriting any previous entry.
func (m *Memory) Set(_ context.Context, key string, valid bool, ttl time.Duration) error {
	m.store.Set(key, valid, ttl)
	return nil
}
