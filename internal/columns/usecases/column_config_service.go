package usecases

import (
	"context"
	"crm-server/internal/columns/domain"
	"fmt"
	"log/slog"
	"strings"
	"sync"
)

func NewColumnConfigService(store *Store) *SimpleColumnConfigService {
	return &SimpleColumnConfigService{
		store: store,
	}
}

var _ ColumnConfigService = (*SimpleColumnConfigService)(nil)

// SimpleColumnConfigService serialises read-modify-write cycles on the store.
type SimpleColumnConfigService struct {
	store *Store
	mu    sync.Mutex
}

func (s *SimpleColumnConfigService) load(ctx context.Context, ownerID string, list domain.ListKey) (StateKey, []domain.ColumnConfig, domain.ColumnSet, error) {
	defaults, err := domain.DefaultColumns(list)
	if err != nil {
		return StateKey{}, nil, domain.ColumnSet{}, err
	}
	key := StateKey{OwnerID: ownerID, List: list}
	return key, defaults, s.store.Load(ctx, key, defaults), nil
}

// mutate applies change to the stored set and persists the result.
func (s *SimpleColumnConfigService) mutate(ctx context.Context, ownerID string, list domain.ListKey, change func(set *domain.ColumnSet, defaults []domain.ColumnConfig) error) (domain.ColumnSet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key, defaults, set, err := s.load(ctx, ownerID, list)
	if err != nil {
		return domain.ColumnSet{}, err
	}
	if err := change(&set, defaults); err != nil {
		return domain.ColumnSet{}, err
	}
	s.store.Save(ctx, key, set)
	return set, nil
}

func requireColumn(set *domain.ColumnSet, columnID string) error {
	if !set.Has(columnID) {
		return fmt.Errorf("%w: %s", ErrColumnNotFound, columnID)
	}
	return nil
}

func (s *SimpleColumnConfigService) Get(ctx context.Context, ownerID string, list domain.ListKey) (domain.ColumnSet, error) {
	_, _, set, err := s.load(ctx, ownerID, list)
	return set, err
}

func (s *SimpleColumnConfigService) ToggleVisibility(ctx context.Context, ownerID string, list domain.ListKey, columnID string) (domain.ColumnSet, error) {
	return s.mutate(ctx, ownerID, list, func(set *domain.ColumnSet, _ []domain.ColumnConfig) error {
		if err := requireColumn(set, columnID); err != nil {
			return err
		}
		set.ToggleVisibility(columnID)
		return nil
	})
}

func (s *SimpleColumnConfigService) Rename(ctx context.Context, ownerID string, list domain.ListKey, columnID, label string) (domain.ColumnSet, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return domain.ColumnSet{}, fmt.Errorf("%w: empty label", ErrInvalidColumn)
	}
	return s.mutate(ctx, ownerID, list, func(set *domain.ColumnSet, _ []domain.ColumnConfig) error {
		if err := requireColumn(set, columnID); err != nil {
			return err
		}
		set.Rename(columnID, label)
		return nil
	})
}

func (s *SimpleColumnConfigService) Reorder(ctx context.Context, ownerID string, list domain.ListKey, orders map[string]int) (domain.ColumnSet, error) {
	return s.mutate(ctx, ownerID, list, func(set *domain.ColumnSet, _ []domain.ColumnConfig) error {
		set.Reorder(orders)
		return nil
	})
}

func (s *SimpleColumnConfigService) SetSort(ctx context.Context, ownerID string, list domain.ListKey, columnID string, direction domain.SortDirection) (domain.ColumnSet, error) {
	return s.mutate(ctx, ownerID, list, func(set *domain.ColumnSet, _ []domain.ColumnConfig) error {
		if err := requireColumn(set, columnID); err != nil {
			return err
		}
		set.SetSort(columnID, direction)
		return nil
	})
}

func (s *SimpleColumnConfigService) ClearSort(ctx context.Context, ownerID string, list domain.ListKey) (domain.ColumnSet, error) {
	return s.mutate(ctx, ownerID, list, func(set *domain.ColumnSet, _ []domain.ColumnConfig) error {
		set.ClearSort()
		return nil
	})
}

func (s *SimpleColumnConfigService) Reset(ctx context.Context, ownerID string, list domain.ListKey) (domain.ColumnSet, error) {
	return s.mutate(ctx, ownerID, list, func(set *domain.ColumnSet, defaults []domain.ColumnConfig) error {
		set.Reset(defaults)
		return nil
	})
}

func (s *SimpleColumnConfigService) AddColumn(ctx context.Context, ownerID string, list domain.ListKey, column domain.ColumnConfig) (domain.ColumnSet, error) {
	column.ID = strings.TrimSpace(column.ID)
	if column.ID == "" {
		return domain.ColumnSet{}, fmt.Errorf("%w: empty id", ErrInvalidColumn)
	}
	if column.Label == "" {
		column.Label = column.ID
	}
	return s.mutate(ctx, ownerID, list, func(set *domain.ColumnSet, _ []domain.ColumnConfig) error {
		if set.Add(column) {
			slog.Debug("column added", slog.String("list", list.String()), slog.String("column", column.ID))
		}
		return nil
	})
}

// RemoveColumn rejects default columns; they can only be hidden.
func (s *SimpleColumnConfigService) RemoveColumn(ctx context.Context, ownerID string, list domain.ListKey, columnID string) (domain.ColumnSet, error) {
	if domain.IsDefaultColumn(list, columnID) {
		return domain.ColumnSet{}, fmt.Errorf("%w: %s", ErrDefaultColumnRemoval, columnID)
	}
	return s.mutate(ctx, ownerID, list, func(set *domain.ColumnSet, _ []domain.ColumnConfig) error {
		if err := requireColumn(set, columnID); err != nil {
			return err
		}
		set.Remove(columnID)
		return nil
	})
}

func (s *SimpleColumnConfigService) ActiveSort(ctx context.Context, ownerID string, list domain.ListKey) (domain.ColumnConfig, bool) {
	set, err := s.Get(ctx, ownerID, list)
	if err != nil {
		return domain.ColumnConfig{}, false
	}
	return set.ActiveSort()
}
