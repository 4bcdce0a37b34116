package persistence

import (
	"context"
	"crm-server/internal/columns/usecases"
	"crm-server/internal/infra/cache"
	"errors"
	"fmt"
	"time"
)

var ErrStateRejected = errors.New("column state rejected by cache")

// NewCacheStateStorage keeps column state in a cache. A zero ttl keeps it
// until the backend evicts it.
func NewCacheStateStorage(c cache.Cache, ttl time.Duration) *CacheStateStorage {
	return &CacheStateStorage{
		cache: c,
		ttl:   ttl,
	}
}

var _ usecases.StateStorage = (*CacheStateStorage)(nil)

type CacheStateStorage struct {
	cache cache.Cache
	ttl   time.Duration
}

// Read accepts the JSON text written by Write. Redis hands the text back
// after its own JSON round trip, ristretto hands back the stored string.
func (s *CacheStateStorage) Read(ctx context.Context, key usecases.StateKey) ([]byte, bool, error) {
	value, found := s.cache.Get(ctx, key.String())
	if !found {
		return nil, false, nil
	}
	payload, ok := value.(string)
	if !ok {
		return nil, false, fmt.Errorf("unexpected cached column state %T", value)
	}
	return []byte(payload), true, nil
}

func (s *CacheStateStorage) Write(ctx context.Context, key usecases.StateKey, payload []byte) error {
	if !s.cache.Set(ctx, key.String(), string(payload), s.ttl) {
		return fmt.Errorf("%w: %s", ErrStateRejected, key)
	}
	return nil
}
