package persistence

import (
	"context"
	"crm-server/internal/columns/persistence/internal"
	"crm-server/internal/columns/usecases"
	"crm-server/internal/infra/sql"
	"errors"
	"fmt"
	"time"
)

func NewGormStateStorage(orm sql.ORM) (*GormStateStorage, error) {
	err := orm.AutoMigrate(&internal.ColumnState{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &GormStateStorage{
		orm: orm,
	}, nil
}

var _ usecases.StateStorage = (*GormStateStorage)(nil)

type GormStateStorage struct {
	orm sql.ORM
}

func (s *GormStateStorage) Read(ctx context.Context, key usecases.StateKey) ([]byte, bool, error) {
	var entity internal.ColumnState
	err := s.orm.
		WithContext(ctx).
		Where("owner_id = ? AND list_key = ?", key.OwnerID, key.List.String()).
		First(&entity).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("database query: %w", err)
	}

	return []byte(entity.Payload), true, nil
}

func (s *GormStateStorage) Write(ctx context.Context, key usecases.StateKey, payload []byte) error {
	entity := internal.ColumnState{
		OwnerID:   key.OwnerID,
		ListKey:   key.List.String(),
		Payload:   payload,
		UpdatedAt: time.Now().UTC(),
	}

	err := s.orm.WithContext(ctx).Save(&entity).Error()
	if err != nil {
		return fmt.Errorf("saving column state: %w", err)
	}
	return nil
}
