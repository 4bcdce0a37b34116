package usecases

//go:generate mockgen -source=deal_service.go -destination=../../../test/unit/doubles/deals/usecases/deal_service_mock.go -package=usecases -mock_names=DealService=MockDealService

import (
	"context"
	columnsdomain "crm-server/internal/columns/domain"
	customfieldsdomain "crm-server/internal/customfields/domain"
	"crm-server/internal/deals/domain"
	"crm-server/internal/infra/cache"
	"crm-server/internal/query/filter"
	"crm-server/internal/query/sorting"
	shareddomain "crm-server/internal/shared_kernel/domain"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

const DefaultStatsTTL = time.Minute

type DealService interface {
	List(ctx context.Context, ownerID shareddomain.ID, query ListQuery) ([]domain.Deal, int, error)
	ListByStage(ctx context.Context, ownerID shareddomain.ID, stage domain.Stage) ([]domain.Deal, error)
	Pipeline(ctx context.Context, ownerID shareddomain.ID) ([]domain.PipelineColumn, error)
	Get(ctx context.Context, ownerID, id shareddomain.ID) (domain.Deal, error)
	Create(ctx context.Context, deal domain.Deal) error
	Update(ctx context.Context, ownerID, id shareddomain.ID, changes domain.Changes) (domain.Deal, error)
	UpdateStage(ctx context.Context, ownerID, id shareddomain.ID, stage domain.Stage) (domain.Deal, error)
	Delete(ctx context.Context, ownerID, id shareddomain.ID) error
	Stats(ctx context.Context, ownerID shareddomain.ID) (domain.Stats, error)
}

// ListQuery is one list view request. Stage narrows the list to one stage and
// a nil Sort falls back to the sort stored in the user's column configuration.
type ListQuery struct {
	Search          string
	Filters         []filter.ColumnFilter
	Stage           domain.Stage
	IncludeContacts bool
	Sort            *sorting.Directive
	Pagination      Pagination
}

type Settings struct {
	Location *time.Location
	StatsTTL time.Duration
}

func NewDealService(
	repository DealRepository,
	customFields CustomFieldCatalog,
	columns SortProvider,
	statsCache cache.Cache,
	settings Settings,
) *SimpleDealService {
	if settings.Location == nil {
		settings.Location = time.UTC
	}
	if settings.StatsTTL <= 0 {
		settings.StatsTTL = DefaultStatsTTL
	}

	return &SimpleDealService{
		repository:   repository,
		customFields: customFields,
		columns:      columns,
		statsCache:   statsCache,
		settings:     settings,
		compiler:     filter.NewCompiler(filter.DealCatalog(), settings.Location),
	}
}

var _ DealService = (*SimpleDealService)(nil)

type SimpleDealService struct {
	repository   DealRepository
	customFields CustomFieldCatalog
	columns      SortProvider
	statsCache   cache.Cache
	settings     Settings
	compiler     *filter.Compiler
}

func (s *SimpleDealService) catalog(ctx context.Context, ownerID shareddomain.ID) (customfieldsdomain.Catalog, error) {
	catalog, err := s.customFields.Catalog(ctx, ownerID, shareddomain.EntityTypeDeal)
	if err != nil {
		slog.Error("loading deal custom fields", slog.String("error", err.Error()))
		return nil, fmt.Errorf("loading deal custom fields: %w", err)
	}
	return catalog, nil
}

func (s *SimpleDealService) List(ctx context.Context, ownerID shareddomain.ID, query ListQuery) ([]domain.Deal, int, error) {
	catalog, err := s.catalog(ctx, ownerID)
	if err != nil {
		return nil, 0, err
	}

	filters := query.Filters
	if query.Stage != "" {
		filters = append(filters[:len(filters):len(filters)], filter.ColumnFilter{
			ColumnID: "stage",
			Operator: filter.OperatorEquals,
			Value:    query.Stage.String(),
		})
	}

	predicate := s.compiler.Compile(filter.Query{
		OwnerID: ownerID.String(),
		Search:  query.Search,
		Filters: filters,
	}, catalog.FilterDefinitions())

	deals, total, err := s.repository.Find(ctx, predicate, query.Pagination, query.IncludeContacts)
	if err != nil {
		slog.Error("listing deals", slog.String("error", err.Error()))
		return nil, 0, fmt.Errorf("listing deals: %w", err)
	}

	types := catalog.Types()
	for i := range deals {
		deals[i].Custom = deals[i].Custom.Normalize(types, s.settings.Location)
	}

	if sort := s.sortFor(ctx, ownerID, query.Sort); sort.IsActive() {
		sorting.Sort(deals, sort.ColumnID, sort.Direction)
	}

	return deals, total, nil
}

func (s *SimpleDealService) sortFor(ctx context.Context, ownerID shareddomain.ID, explicit *sorting.Directive) sorting.Directive {
	if explicit != nil {
		return *explicit
	}
	column, ok := s.columns.ActiveSort(ctx, ownerID.String(), columnsdomain.DealListColumns)
	if !ok {
		return sorting.Directive{}
	}
	return sorting.Directive{ColumnID: column.ID, Direction: sorting.Direction(column.SortDirection)}
}

func (s *SimpleDealService) ownerPredicate(ownerID shareddomain.ID, terms ...filter.Expr) filter.Expr {
	owner := filter.Comparison{Field: filter.OwnerField, Op: filter.OpIs, Value: filter.Literal{Text: ownerID.String()}}
	return filter.Conjoin(append([]filter.Expr{owner}, terms...)...)
}

func (s *SimpleDealService) ListByStage(ctx context.Context, ownerID shareddomain.ID, stage domain.Stage) ([]domain.Deal, error) {
	field, _ := s.compiler.Catalog().Field("stage")
	predicate := s.ownerPredicate(ownerID, filter.Comparison{
		Field: field.Columns[0],
		Op:    filter.OpIs,
		Value: filter.Literal{Text: stage.String()},
	})

	deals, _, err := s.repository.Find(ctx, predicate, Pagination{}, true)
	if err != nil {
		slog.Error("listing deals by stage", slog.String("stage", stage.String()), slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing deals by stage: %w", err)
	}

	return deals, nil
}

func (s *SimpleDealService) Pipeline(ctx context.Context, ownerID shareddomain.ID) ([]domain.PipelineColumn, error) {
	deals, _, err := s.repository.Find(ctx, s.ownerPredicate(ownerID), Pagination{}, true)
	if err != nil {
		slog.Error("loading pipeline", slog.String("error", err.Error()))
		return nil, fmt.Errorf("loading pipeline: %w", err)
	}

	return domain.GroupByStage(deals), nil
}

func (s *SimpleDealService) Get(ctx context.Context, ownerID, id shareddomain.ID) (domain.Deal, error) {
	deal, err := s.repository.GetByID(ctx, ownerID, id)
	if errors.Is(err, ErrDealNotFound) {
		return domain.Deal{}, ErrDealNotFound
	}
	if err != nil {
		slog.Error("getting deal", slog.String("error", err.Error()))
		return domain.Deal{}, fmt.Errorf("getting deal: %w", err)
	}

	return deal, nil
}

func (s *SimpleDealService) Create(ctx context.Context, deal domain.Deal) error {
	if len(deal.Custom) > 0 {
		catalog, err := s.catalog(ctx, deal.OwnerID)
		if err != nil {
			return err
		}
		deal.Custom, err = deal.Custom.Validate(catalog.Types(), s.settings.Location)
		if err != nil {
			return err
		}
	}

	if err := s.checkContacts(ctx, deal.OwnerID, deal.ContactIDs); err != nil {
		return err
	}

	if err := s.repository.Create(ctx, deal); err != nil {
		slog.Error("creating deal", slog.String("error", err.Error()))
		return fmt.Errorf("creating deal: %w", err)
	}
	s.invalidateStats(ctx, deal.OwnerID)

	slog.Info("deal created", slog.String("id", deal.ID.String()))
	return nil
}

func (s *SimpleDealService) Update(ctx context.Context, ownerID, id shareddomain.ID, changes domain.Changes) (domain.Deal, error) {
	deal, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return domain.Deal{}, err
	}
	previousStage := deal.Stage

	if len(changes.CustomFields) > 0 {
		catalog, err := s.catalog(ctx, ownerID)
		if err != nil {
			return domain.Deal{}, err
		}
		changes.CustomFields, err = changes.CustomFields.ValidatePatch(catalog.Types(), s.settings.Location)
		if err != nil {
			return domain.Deal{}, err
		}
	}

	if err := deal.Apply(changes); err != nil {
		return domain.Deal{}, err
	}
	if changes.ContactIDs != nil {
		if err := s.checkContacts(ctx, ownerID, deal.ContactIDs); err != nil {
			return domain.Deal{}, err
		}
	}

	if err := s.repository.Update(ctx, deal, previousStage); err != nil {
		slog.Error("updating deal", slog.String("error", err.Error()))
		return domain.Deal{}, fmt.Errorf("updating deal: %w", err)
	}
	s.invalidateStats(ctx, ownerID)

	return s.Get(ctx, ownerID, id)
}

func (s *SimpleDealService) UpdateStage(ctx context.Context, ownerID, id shareddomain.ID, stage domain.Stage) (domain.Deal, error) {
	deal, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return domain.Deal{}, err
	}
	previousStage := deal.Stage

	value := stage.String()
	if err := deal.Apply(domain.Changes{Stage: &value}); err != nil {
		return domain.Deal{}, err
	}

	if err := s.repository.Update(ctx, deal, previousStage); err != nil {
		slog.Error("moving deal", slog.String("error", err.Error()))
		return domain.Deal{}, fmt.Errorf("moving deal: %w", err)
	}
	s.invalidateStats(ctx, ownerID)

	slog.Debug("deal moved",
		slog.String("id", id.String()),
		slog.String("from", previousStage.String()),
		slog.String("to", stage.String()))
	return deal, nil
}

func (s *SimpleDealService) Delete(ctx context.Context, ownerID, id shareddomain.ID) error {
	err := s.repository.Delete(ctx, ownerID, id)
	if errors.Is(err, ErrDealNotFound) {
		return ErrDealNotFound
	}
	if err != nil {
		slog.Error("deleting deal", slog.String("error", err.Error()))
		return fmt.Errorf("deleting deal: %w", err)
	}
	s.invalidateStats(ctx, ownerID)

	return nil
}

func (s *SimpleDealService) Stats(ctx context.Context, ownerID shareddomain.ID) (domain.Stats, error) {
	stats, err := cache.GetOrSetJSON(ctx, s.statsCache, statsKey(ownerID), s.settings.StatsTTL, func() (domain.Stats, error) {
		return s.repository.Stats(ctx, ownerID)
	})
	if err != nil {
		slog.Error("computing deal stats", slog.String("error", err.Error()))
		return domain.Stats{}, fmt.Errorf("computing deal stats: %w", err)
	}

	return stats, nil
}

func (s *SimpleDealService) checkContacts(ctx context.Context, ownerID shareddomain.ID, ids []shareddomain.ID) error {
	if len(ids) == 0 {
		return nil
	}
	missing, err := s.repository.MissingContacts(ctx, ownerID, ids)
	if err != nil {
		slog.Error("checking linked contacts", slog.String("error", err.Error()))
		return fmt.Errorf("checking linked contacts: %w", err)
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %v", ErrUnknownContacts, missing)
	}
	return nil
}

func (s *SimpleDealService) invalidateStats(ctx context.Context, ownerID shareddomain.ID) {
	s.statsCache.Delete(ctx, statsKey(ownerID))
}

func statsKey(ownerID shareddomain.ID) string {
	return "deals:stats:" + ownerID.String()
}
