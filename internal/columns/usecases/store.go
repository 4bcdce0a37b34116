package usecases

import (
	"context"
	"crm-server/internal/columns/domain"
	"encoding/json"
	"log/slog"
)

// Store loads and saves column sets. Storage and decoding failures never
// reach the caller: loads fall back to the defaults and saves are dropped.
type Store struct {
	storage StateStorage
}

func NewStore(storage StateStorage) *Store {
	return &Store{storage: storage}
}

func (s *Store) Load(ctx context.Context, key StateKey, defaults []domain.ColumnConfig) domain.ColumnSet {
	payload, found, err := s.storage.Read(ctx, key)
	if err != nil {
		slog.Warn("reading column state, using defaults",
			slog.String("key", key.String()),
			slog.String("error", err.Error()))
		return domain.NewColumnSet(defaults)
	}
	if !found {
		return domain.NewColumnSet(defaults)
	}

	var persisted []domain.ColumnConfig
	if err := json.Unmarshal(payload, &persisted); err != nil {
		slog.Warn("decoding column state, using defaults",
			slog.String("key", key.String()),
			slog.String("error", err.Error()))
		return domain.NewColumnSet(defaults)
	}

	return domain.Reconcile(defaults, persisted)
}

func (s *Store) Save(ctx context.Context, key StateKey, set domain.ColumnSet) {
	payload, err := json.Marshal(set.Columns())
	if err != nil {
		slog.Warn("encoding column state", slog.String("key", key.String()), slog.String("error", err.Error()))
		return
	}
	if err := s.storage.Write(ctx, key, payload); err != nil {
		slog.Warn("writing column state", slog.String("key", key.String()), slog.String("error", err.Error()))
	}
}
