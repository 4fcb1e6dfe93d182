package mem

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTTLStore_ExpiresEntries(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	s := NewTTLStore()
	s.now = func() time.Time { return now }

	s.Set("a", []byte("1"), time.Minute)
	s.Set("b", []byte("2"), time.Hour)

	v, ok := s.Get("a")
	assert.True(t, ok)
	assert.Equal(t, []byte("1"), v)

	now = now.Add(2 * time.Minute)
	_, ok = s.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 1, s.Len())

	now = now.Add(2 * time.Hour)
	assert.Equal(t, 1, s.Sweep())
	assert.Equal(t, 0, s.Len())
}

func TestTTLStore_Delete(t *testing.T) {
	s := NewTTLStore()
	s.Set("a", []byte("1"), time.Minute)
	s.Delete("a")

	_, ok := s.Get("a")
	assert.False(t, ok)
}

func TestTTLStore_Concurrent(t *testing.T) {
	s := NewTTLStore()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := string(rune('a' + i%4))
			s.Set(key, []byte{byte(i)}, time.Minute)
			s.Get(key)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 4, s.Len())
}
