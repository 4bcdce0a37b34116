package usecases

//go:generate mockgen -source=repository_port.go -destination=../../../test/unit/doubles/contacts/usecases/repository_port_mock.go -package=usecases -mock_names=ContactRepository=MockContactRepository,CustomFieldCatalog=MockCustomFieldCatalog,SortProvider=MockSortProvider

import (
	"context"
	columnsdomain "crm-server/internal/columns/domain"
	"crm-server/internal/contacts/domain"
	customfieldsdomain "crm-server/internal/customfields/domain"
	"crm-server/internal/query/filter"
	shareddomain "crm-server/internal/shared_kernel/domain"
	"errors"
	"time"
)

var ErrContactNotFound = errors.New("contact not found")

type Pagination struct {
	Limit  int
	Offset int
}

type ContactRepository interface {
	Create(ctx context.Context, contact domain.Contact) error
	GetByID(ctx context.Context, ownerID, id shareddomain.ID) (domain.Contact, error)
	// Find returns one page of the contacts matching the predicate, newest
	// first, and the total number of matches.
	Find(ctx context.Context, predicate filter.Expr, pagination Pagination) ([]domain.Contact, int, error)
	Update(ctx context.Context, contact domain.Contact) error
	Delete(ctx context.Context, ownerID, id shareddomain.ID) error
	Stats(ctx context.Context, ownerID shareddomain.ID, since time.Time) (domain.Stats, error)
}

type CustomFieldCatalog interface {
	Catalog(ctx context.Context, ownerID shareddomain.ID, entityType shareddomain.EntityType) (customfieldsdomain.Catalog, error)
}

type SortProvider interface {
	ActiveSort(ctx context.Context, ownerID string, list columnsdomain.ListKey) (columnsdomain.ColumnConfig, bool)
}
