package usecases

//go:generate mockgen -source=custom_field_service.go -destination=../../../test/unit/doubles/customfields/usecases/custom_field_service_mock.go -package=usecases -mock_names=CustomFieldService=MockCustomFieldService

import (
	"context"
	"crm-server/internal/customfields/domain"
	shareddomain "crm-server/internal/shared_kernel/domain"
	"errors"
	"fmt"
	"log/slog"
)

type CustomFieldService interface {
	List(ctx context.Context, ownerID shareddomain.ID, entityType shareddomain.EntityType) ([]domain.Definition, error)
	Create(ctx context.Context, definition domain.Definition) error
	Update(ctx context.Context, ownerID, id shareddomain.ID, changes DefinitionChanges) (domain.Definition, error)
	Delete(ctx context.Context, ownerID, id shareddomain.ID) error
	Catalog(ctx context.Context, ownerID shareddomain.ID, entityType shareddomain.EntityType) (domain.Catalog, error)
}

// DefinitionChanges carries the optional parts of an update. The key and
// entity type are fixed once created.
type DefinitionChanges struct {
	Label *string
	Type  *shareddomain.FieldType
}

func NewCustomFieldService(repository DefinitionRepository) *SimpleCustomFieldService {
	return &SimpleCustomFieldService{
		repository: repository,
	}
}

var _ CustomFieldService = (*SimpleCustomFieldService)(nil)

type SimpleCustomFieldService struct {
	repository DefinitionRepository
}

func (s *SimpleCustomFieldService) List(ctx context.Context, ownerID shareddomain.ID, entityType shareddomain.EntityType) ([]domain.Definition, error) {
	definitions, err := s.repository.FindByEntityType(ctx, ownerID, entityType)
	if err != nil {
		slog.Error("listing custom fields", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing custom fields: %w", err)
	}

	return definitions, nil
}

func (s *SimpleCustomFieldService) Create(ctx context.Context, definition domain.Definition) error {
	exists, err := s.repository.ExistsKey(ctx, definition.OwnerID, definition.EntityType, definition.Key)
	if err != nil {
		slog.Error("checking custom field key", slog.String("error", err.Error()))
		return fmt.Errorf("checking custom field key: %w", err)
	}
	if exists {
		return ErrDuplicateFieldKey
	}

	err = s.repository.Create(ctx, definition)
	if errors.Is(err, ErrDuplicateFieldKey) {
		return ErrDuplicateFieldKey
	}
	if err != nil {
		slog.Error("creating custom field", slog.String("error", err.Error()))
		return fmt.Errorf("creating custom field: %w", err)
	}

	slog.Info("custom field created",
		slog.String("id", definition.ID.String()),
		slog.String("entity_type", definition.EntityType.String()),
		slog.String("key", definition.Key))

	return nil
}

func (s *SimpleCustomFieldService) Update(ctx context.Context, ownerID, id shareddomain.ID, changes DefinitionChanges) (domain.Definition, error) {
	definition, err := s.repository.GetByID(ctx, ownerID, id)
	if errors.Is(err, ErrCustomFieldNotFound) {
		return domain.Definition{}, ErrCustomFieldNotFound
	}
	if err != nil {
		slog.Error("getting custom field", slog.String("error", err.Error()))
		return domain.Definition{}, fmt.Errorf("getting custom field: %w", err)
	}

	if changes.Label != nil {
		if err := definition.Relabel(*changes.Label); err != nil {
			return domain.Definition{}, err
		}
	}
	if changes.Type != nil {
		if err := definition.ChangeType(*changes.Type); err != nil {
			return domain.Definition{}, err
		}
	}

	if err := s.repository.Update(ctx, definition); err != nil {
		slog.Error("updating custom field", slog.String("error", err.Error()))
		return domain.Definition{}, fmt.Errorf("updating custom field: %w", err)
	}

	return definition, nil
}

func (s *SimpleCustomFieldService) Delete(ctx context.Context, ownerID, id shareddomain.ID) error {
	err := s.repository.Delete(ctx, ownerID, id)
	if errors.Is(err, ErrCustomFieldNotFound) {
		return ErrCustomFieldNotFound
	}
	if err != nil {
		slog.Error("deleting custom field", slog.String("error", err.Error()))
		return fmt.Errorf("deleting custom field: %w", err)
	}

	return nil
}

func (s *SimpleCustomFieldService) Catalog(ctx context.Context, ownerID shareddomain.ID, entityType shareddomain.EntityType) (domain.Catalog, error) {
	definitions, err := s.List(ctx, ownerID, entityType)
	if err != nil {
		return nil, err
	}
	return domain.Catalog(definitions), nil
}
