package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// SetJSON stores value as JSON text. Both backends hand the text back
// unchanged, so GetJSON can decode it into the caller's type.
func SetJSON(ctx context.Context, c Cache, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if !c.Set(ctx, key, string(data), ttl) {
		return fmt.Errorf("caching %s: rejected", key)
	}
	return nil
}

func GetJSON[T any](ctx context.Context, c Cache, key string) (T, bool, error) {
	var value T
	cached, found := c.Get(ctx, key)
	if !found {
		return value, false, nil
	}
	text, ok := cached.(string)
	if !ok {
		return value, false, fmt.Errorf("decoding %s: unexpected %T", key, cached)
	}
	if err := json.Unmarshal([]byte(text), &value); err != nil {
		return value, false, fmt.Errorf("decoding %s: %w", key, err)
	}
	return value, true, nil
}

// GetOrSetJSON returns the cached value for key or loads, caches and returns it.
func GetOrSetJSON[T any](ctx context.Context, c Cache, key string, ttl time.Duration, loader func() (T, error)) (T, error) {
	raw, err := c.GetOrSet(ctx, key, ttl, func() (any, error) {
		value, err := loader()
		if err != nil {
			return nil, err
		}
		data, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		return string(data), nil
	})
	var value T
	if err != nil {
		return value, err
	}
	text, ok := raw.(string)
	if !ok {
		return value, fmt.Errorf("decoding %s: unexpected %T", key, raw)
	}
	if err := json.Unmarshal([]byte(text), &value); err != nil {
		return value, fmt.Errorf("decoding %s: %w", key, err)
	}
	return value, nil
}
