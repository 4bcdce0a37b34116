package usecases

//go:generate mockgen -source=repository_port.go -destination=../../../test/unit/doubles/customfields/usecases/repository_port_mock.go -package=usecases -mock_names=DefinitionRepository=MockDefinitionRepository

import (
	"context"
	"crm-server/internal/customfields/domain"
	shareddomain "crm-server/internal/shared_kernel/domain"
	"errors"
)

var (
	ErrCustomFieldNotFound = errors.New("custom field not found")
	ErrDuplicateFieldKey   = errors.New("a custom field with this key already exists for this entity type")
)

type DefinitionRepository interface {
	Create(ctx context.Context, definition domain.Definition) error
	GetByID(ctx context.Context, ownerID, id shareddomain.ID) (domain.Definition, error)
	FindByEntityType(ctx context.Context, ownerID shareddomain.ID, entityType shareddomain.EntityType) ([]domain.Definition, error)
	ExistsKey(ctx context.Context, ownerID shareddomain.ID, entityType shareddomain.EntityType, key string) (bool, error)
	Update(ctx context.Context, definition domain.Definition) error
	Delete(ctx context.Context, ownerID, id shareddomain.ID) error
}
