package persistence

import (
	"context"
	"crm-server/internal/customfields/domain"
	"crm-server/internal/customfields/persistence/internal"
	"crm-server/internal/customfields/usecases"
	"crm-server/internal/infra/sql"
	shareddomain "crm-server/internal/shared_kernel/domain"
	"errors"
	"fmt"
)

func NewDefinitionRepository(orm sql.ORM) (*SimpleDefinitionRepository, error) {
	err := orm.AutoMigrate(&internal.Definition{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleDefinitionRepository{
		orm: orm,
	}, nil
}

var _ usecases.DefinitionRepository = (*SimpleDefinitionRepository)(nil)

type SimpleDefinitionRepository struct {
	orm sql.ORM
}

func (r *SimpleDefinitionRepository) Create(ctx context.Context, definition domain.Definition) error {
	entity := internal.FromDefinition(definition)

	err := r.orm.WithContext(ctx).Create(&entity).Error()
	if errors.Is(err, sql.ErrDuplicateKey) {
		return usecases.ErrDuplicateFieldKey
	}
	if err != nil {
		return fmt.Errorf("creating custom field in database: %w", err)
	}

	return nil
}

func (r *SimpleDefinitionRepository) GetByID(ctx context.Context, ownerID, id shareddomain.ID) (domain.Definition, error) {
	var entity internal.Definition
	err := r.orm.
		WithContext(ctx).
		Where("id = ? AND owner_id = ?", id.String(), ownerID.String()).
		First(&entity).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.Definition{}, usecases.ErrCustomFieldNotFound
	}
	if err != nil {
		return domain.Definition{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

// FindByEntityType lists definitions in creation order.
func (r *SimpleDefinitionRepository) FindByEntityType(ctx context.Context, ownerID shareddomain.ID, entityType shareddomain.EntityType) ([]domain.Definition, error) {
	var entities []internal.Definition
	err := r.orm.
		WithContext(ctx).
		Where("owner_id = ? AND entity_type = ?", ownerID.String(), entityType.String()).
		Order("created_at ASC, field_key ASC").
		Find(&entities).
		Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	result := make([]domain.Definition, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, nil
}

func (r *SimpleDefinitionRepository) ExistsKey(ctx context.Context, ownerID shareddomain.ID, entityType shareddomain.EntityType, key string) (bool, error) {
	var count int64
	err := r.orm.
		WithContext(ctx).
		Model(&internal.Definition{}).
		Where("owner_id = ? AND entity_type = ? AND field_key = ?", ownerID.String(), entityType.String(), key).
		Count(&count).
		Error()
	if err != nil {
		return false, fmt.Errorf("database query: %w", err)
	}

	return count > 0, nil
}

func (r *SimpleDefinitionRepository) Update(ctx context.Context, definition domain.Definition) error {
	entity := internal.FromDefinition(definition)

	err := r.orm.WithContext(ctx).Save(&entity).Error()
	if err != nil {
		return fmt.Errorf("updating custom field in database: %w", err)
	}

	return nil
}

func (r *SimpleDefinitionRepository) Delete(ctx context.Context, ownerID, id shareddomain.ID) error {
	tx := r.orm.
		WithContext(ctx).
		Where("id = ? AND owner_id = ?", id.String(), ownerID.String()).
		Delete(&internal.Definition{})
	if err := tx.Error(); err != nil {
		return fmt.Errorf("deleting custom field in database: %w", err)
	}
	if tx.RowsAffected() == 0 {
		return usecases.ErrCustomFieldNotFound
	}

	return nil
}
