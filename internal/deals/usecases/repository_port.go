package usecases

//go:generate mockgen -source=repository_port.go -destination=../../../test/unit/doubles/deals/usecases/repository_port_mock.go -package=usecases -mock_names=DealRepository=MockDealRepository,CustomFieldCatalog=MockCustomFieldCatalog,SortProvider=MockSortProvider

import (
	"context"
	columnsdomain "crm-server/internal/columns/domain"
	customfieldsdomain "crm-server/internal/customfields/domain"
	"crm-server/internal/deals/domain"
	"crm-server/internal/query/filter"
	shareddomain "crm-server/internal/shared_kernel/domain"
	"errors"
	"time"
)

var (
	ErrDealNotFound    = errors.New("deal not found")
	ErrUnknownContacts = errors.New("linked contacts not found")
)

type Pagination struct {
	Limit  int
	Offset int
}

type DealRepository interface {
	// Create stores the deal and links its ContactIDs.
	Create(ctx context.Context, deal domain.Deal) error
	// GetByID returns the deal with its linked contacts.
	GetByID(ctx context.Context, ownerID, id shareddomain.ID) (domain.Deal, error)
	// Find returns one page of the deals matching the predicate, newest first,
	// and the total number of matches. A zero limit returns every match.
	Find(ctx context.Context, predicate filter.Expr, pagination Pagination, includeContacts bool) ([]domain.Deal, int, error)
	// Update stores the deal and replaces its links. A stage different from
	// previousStage is reported as a stage change.
	Update(ctx context.Context, deal domain.Deal, previousStage domain.Stage) error
	Delete(ctx context.Context, ownerID, id shareddomain.ID) error
	// MissingContacts returns the ids that are not contacts of the owner.
	MissingContacts(ctx context.Context, ownerID shareddomain.ID, ids []shareddomain.ID) ([]shareddomain.ID, error)
	// FindOverdue returns the open deals of every owner whose expected close
	// date is before now.
	FindOverdue(ctx context.Context, now time.Time) ([]domain.Deal, error)
	Stats(ctx context.Context, ownerID shareddomain.ID) (domain.Stats, error)
}

type CustomFieldCatalog interface {
	Catalog(ctx context.Context, ownerID shareddomain.ID, entityType shareddomain.EntityType) (customfieldsdomain.Catalog, error)
}

type SortProvider interface {
	ActiveSort(ctx context.Context, ownerID string, list columnsdomain.ListKey) (columnsdomain.ColumnConfig, bool)
}
