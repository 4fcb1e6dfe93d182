// Package cache stores rendered itineraries keyed by catalog version and
// canonical request.
package cache

import "context"

// Cache is a byte cache. A miss is (nil, false, nil).
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Backend() string
}

type noop struct{}

// NewNoop returns a Cache that never stores anything.
func NewNoop() Cache {
	return noop{}
}

func (noop) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }
func (noop) Set(context.Context, string, []byte) error         { return nil }
func (noop) Backend() string                                   { return "none" }
