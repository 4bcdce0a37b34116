package usecases

//go:generate mockgen -source=contact_service.go -destination=../../../test/unit/doubles/contacts/usecases/contact_service_mock.go -package=usecases -mock_names=ContactService=MockContactService

import (
	"context"
	columnsdomain "crm-server/internal/columns/domain"
	"crm-server/internal/contacts/domain"
	customfieldsdomain "crm-server/internal/customfields/domain"
	"crm-server/internal/infra/cache"
	"crm-server/internal/query/filter"
	"crm-server/internal/query/sorting"
	shareddomain "crm-server/internal/shared_kernel/domain"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

const (
	DefaultSearchLimit = 20
	MaxSearchLimit     = 100
	DefaultStatsTTL    = time.Minute
)

// SearchFields are the columns the quick search looks at.
var SearchFields = []string{"firstName", "lastName", "email", "phone", "company", "jobTitle"}

type ContactService interface {
	List(ctx context.Context, ownerID shareddomain.ID, query ListQuery) ([]domain.Contact, int, error)
	Search(ctx context.Context, ownerID shareddomain.ID, term string, limit int) ([]domain.Contact, error)
	Get(ctx context.Context, ownerID, id shareddomain.ID) (domain.Contact, error)
	Create(ctx context.Context, contact domain.Contact) error
	Update(ctx context.Context, ownerID, id shareddomain.ID, changes domain.Changes) (domain.Contact, error)
	Delete(ctx context.Context, ownerID, id shareddomain.ID) error
	Stats(ctx context.Context, ownerID shareddomain.ID) (domain.Stats, error)
}

// ListQuery is one list view request. A nil Sort falls back to the sort
// stored in the user's column configuration.
type ListQuery struct {
	Search     string
	Filters    []filter.ColumnFilter
	Sort       *sorting.Directive
	Pagination Pagination
}

type Settings struct {
	Location *time.Location
	StatsTTL time.Duration
}

func NewContactService(
	repository ContactRepository,
	customFields CustomFieldCatalog,
	columns SortProvider,
	statsCache cache.Cache,
	settings Settings,
) *SimpleContactService {
	if settings.Location == nil {
		settings.Location = time.UTC
	}
	if settings.StatsTTL <= 0 {
		settings.StatsTTL = DefaultStatsTTL
	}

	return &SimpleContactService{
		repository:   repository,
		customFields: customFields,
		columns:      columns,
		statsCache:   statsCache,
		settings:     settings,
		compiler:     filter.NewCompiler(filter.ContactCatalog(), settings.Location),
	}
}

var _ ContactService = (*SimpleContactService)(nil)

type SimpleContactService struct {
	repository   ContactRepository
	customFields CustomFieldCatalog
	columns      SortProvider
	statsCache   cache.Cache
	settings     Settings
	compiler     *filter.Compiler
}

func (s *SimpleContactService) catalog(ctx context.Context, ownerID shareddomain.ID) (customfieldsdomain.Catalog, error) {
	catalog, err := s.customFields.Catalog(ctx, ownerID, shareddomain.EntityTypeContact)
	if err != nil {
		slog.Error("loading contact custom fields", slog.String("error", err.Error()))
		return nil, fmt.Errorf("loading contact custom fields: %w", err)
	}
	return catalog, nil
}

func (s *SimpleContactService) List(ctx context.Context, ownerID shareddomain.ID, query ListQuery) ([]domain.Contact, int, error) {
	catalog, err := s.catalog(ctx, ownerID)
	if err != nil {
		return nil, 0, err
	}

	predicate := s.compiler.Compile(filter.Query{
		OwnerID: ownerID.String(),
		Search:  query.Search,
		Filters: query.Filters,
	}, catalog.FilterDefinitions())

	contacts, total, err := s.repository.Find(ctx, predicate, query.Pagination)
	if err != nil {
		slog.Error("listing contacts", slog.String("error", err.Error()))
		return nil, 0, fmt.Errorf("listing contacts: %w", err)
	}

	types := catalog.Types()
	for i := range contacts {
		contacts[i].Custom = contacts[i].Custom.Normalize(types, s.settings.Location)
	}

	if sort := s.sortFor(ctx, ownerID, query.Sort); sort.IsActive() {
		sorting.Sort(contacts, sort.ColumnID, sort.Direction)
	}

	return contacts, total, nil
}

func (s *SimpleContactService) sortFor(ctx context.Context, ownerID shareddomain.ID, explicit *sorting.Directive) sorting.Directive {
	if explicit != nil {
		return *explicit
	}
	column, ok := s.columns.ActiveSort(ctx, ownerID.String(), columnsdomain.ContactListColumns)
	if !ok {
		return sorting.Directive{}
	}
	return sorting.Directive{ColumnID: column.ID, Direction: sorting.Direction(column.SortDirection)}
}

func (s *SimpleContactService) Search(ctx context.Context, ownerID shareddomain.ID, term string, limit int) ([]domain.Contact, error) {
	switch {
	case limit <= 0:
		limit = DefaultSearchLimit
	case limit > MaxSearchLimit:
		limit = MaxSearchLimit
	}

	search := filter.ContactCatalog().Search(term, SearchFields...)
	if search == nil {
		return []domain.Contact{}, nil
	}
	predicate := filter.Conjoin(
		filter.Comparison{Field: filter.OwnerField, Op: filter.OpIs, Value: filter.Literal{Text: ownerID.String()}},
		search,
	)

	contacts, _, err := s.repository.Find(ctx, predicate, Pagination{Limit: limit})
	if err != nil {
		slog.Error("searching contacts", slog.String("error", err.Error()))
		return nil, fmt.Errorf("searching contacts: %w", err)
	}

	return contacts, nil
}

func (s *SimpleContactService) Get(ctx context.Context, ownerID, id shareddomain.ID) (domain.Contact, error) {
	contact, err := s.repository.GetByID(ctx, ownerID, id)
	if errors.Is(err, ErrContactNotFound) {
		return domain.Contact{}, ErrContactNotFound
	}
	if err != nil {
		slog.Error("getting contact", slog.String("error", err.Error()))
		return domain.Contact{}, fmt.Errorf("getting contact: %w", err)
	}

	return contact, nil
}

func (s *SimpleContactService) Create(ctx context.Context, contact domain.Contact) error {
	if len(contact.Custom) > 0 {
		catalog, err := s.catalog(ctx, contact.OwnerID)
		if err != nil {
			return err
		}
		contact.Custom, err = contact.Custom.Validate(catalog.Types(), s.settings.Location)
		if err != nil {
			return err
		}
	}

	if err := s.repository.Create(ctx, contact); err != nil {
		slog.Error("creating contact", slog.String("error", err.Error()))
		return fmt.Errorf("creating contact: %w", err)
	}
	s.invalidateStats(ctx, contact.OwnerID)

	slog.Info("contact created", slog.String("id", contact.ID.String()))
	return nil
}

func (s *SimpleContactService) Update(ctx context.Context, ownerID, id shareddomain.ID, changes domain.Changes) (domain.Contact, error) {
	contact, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return domain.Contact{}, err
	}

	if len(changes.CustomFields) > 0 {
		catalog, err := s.catalog(ctx, ownerID)
		if err != nil {
			return domain.Contact{}, err
		}
		changes.CustomFields, err = changes.CustomFields.ValidatePatch(catalog.Types(), s.settings.Location)
		if err != nil {
			return domain.Contact{}, err
		}
	}

	if err := contact.Apply(changes); err != nil {
		return domain.Contact{}, err
	}

	if err := s.repository.Update(ctx, contact); err != nil {
		slog.Error("updating contact", slog.String("error", err.Error()))
		return domain.Contact{}, fmt.Errorf("updating contact: %w", err)
	}
	s.invalidateStats(ctx, ownerID)

	return contact, nil
}

func (s *SimpleContactService) Delete(ctx context.Context, ownerID, id shareddomain.ID) error {
	err := s.repository.Delete(ctx, ownerID, id)
	if errors.Is(err, ErrContactNotFound) {
		return ErrContactNotFound
	}
	if err != nil {
		slog.Error("deleting contact", slog.String("error", err.Error()))
		return fmt.Errorf("deleting contact: %w", err)
	}
	s.invalidateStats(ctx, ownerID)

	return nil
}

func (s *SimpleContactService) Stats(ctx context.Context, ownerID shareddomain.ID) (domain.Stats, error) {
	stats, err := cache.GetOrSetJSON(ctx, s.statsCache, statsKey(ownerID), s.settings.StatsTTL, func() (domain.Stats, error) {
		since := time.Now().UTC().AddDate(0, 0, -domain.RecentWindowDays)
		return s.repository.Stats(ctx, ownerID, since)
	})
	if err != nil {
		slog.Error("computing contact stats", slog.String("error", err.Error()))
		return domain.Stats{}, fmt.Errorf("computing contact stats: %w", err)
	}

	return stats, nil
}

func (s *SimpleContactService) invalidateStats(ctx context.Context, ownerID shareddomain.ID) {
	s.statsCache.Delete(ctx, statsKey(ownerID))
}

func statsKey(ownerID shareddomain.ID) string {
	return "contacts:stats:" + ownerID.String()
}
