package cache

import (
	"context"
	"time"

	mem "tripplanner/pkg/memcache"
)

type memory struct {
	store *mem.TTLStore
	ttl   time.Duration
}

func NewMemory(store *mem.TTLStore, ttl time.Duration) Cache {
	return &memory{store: store, ttl: ttl}
}

func (m *memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := m.store.Get(key)
	return v, ok, nil
}

func (m *memory) Set(_ context.Context, key string, value []byte) error {
	m.store.Set(key, value, m.ttl)
	return nil
}

func (m *memory) Backend() string {
	return "memory"
}
