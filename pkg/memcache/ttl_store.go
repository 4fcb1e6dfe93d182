// pkg/memcache/ttl_store.go
package mem

import (
	"sync"
	"time"
)

type entry struct {
	value     []byte
	expiresAt time.Time
}

// TTLStore is an in-process map with per-entry expiry. Expired entries are
// dropped when read and by Sweep.
type TTLStore struct {
	mu   sync.RWMutex
	data map[string]entry
	now  func() time.Time
}

func NewTTLStore() *TTLStore {
	return &TTLStore{
		data: make(map[string]entry),
		now:  time.Now,
	}
}

func (s *TTLStore) Set(key string, value []byte, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = entry{
		value:     value,
		expiresAt: s.now().Add(ttl),
	}
}

func (s *TTLStore) Get(key string) ([]byte, bool) {
	s.mu.RLock()
	e, ok := s.data[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if s.now().After(e.expiresAt) {
		s.mu.Lock()
		if cur, still := s.data[key]; still && cur.expiresAt.Equal(e.expiresAt) {
			delete(s.data, key)
		}
		s.mu.Unlock()
		return nil, false
	}
	return e.value, true
}

func (s *TTLStore) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
}

// Sweep removes every expired entry and returns how many were removed.
func (s *TTLStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	removed := 0
	for k, e := range s.data {
		if now.After(e.expiresAt) {
			delete(s.data, k)
			removed++
		}
	}
	return removed
}

func (s *TTLStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
