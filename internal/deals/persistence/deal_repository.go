package persistence

import (
	"context"
	"crm-server/internal/deals/domain"
	"crm-server/internal/deals/persistence/internal"
	"crm-server/internal/deals/usecases"
	"crm-server/internal/infra/pubsub"
	"crm-server/internal/infra/sql"
	"crm-server/internal/query/filter"
	shareddomain "crm-server/internal/shared_kernel/domain"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"
)

func NewDealRepository(publisherFactory pubsub.PublisherFactory, orm sql.ORM) (*SimpleDealRepository, error) {
	publisher, err := publisherFactory.New(pubsub.RecordChangesTopic, shareddomain.RecordChange{})
	if err != nil {
		return nil, fmt.Errorf("creating publisher: %w", err)
	}

	dialect, err := filter.ParseDialect(orm.Dialect())
	if err != nil {
		return nil, fmt.Errorf("resolving dialect: %w", err)
	}

	err = orm.AutoMigrate(&internal.Deal{}, &internal.DealContact{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleDealRepository{
		publisher: publisher,
		orm:       orm,
		dialect:   dialect,
	}, nil
}

var _ usecases.DealRepository = (*SimpleDealRepository)(nil)

type SimpleDealRepository struct {
	publisher pubsub.Publisher
	orm       sql.ORM
	dialect   filter.Dialect
}

func (r *SimpleDealRepository) Create(ctx context.Context, deal domain.Deal) error {
	entity := internal.FromDeal(deal)
	links := internal.FromDealLinks(deal)

	err := r.orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
		if err := tx.Create(&entity).Error(); err != nil {
			return err
		}
		if len(links) == 0 {
			return nil
		}
		return tx.Create(&links).Error()
	})
	if err != nil {
		return fmt.Errorf("creating deal in database: %w", err)
	}

	r.publish(ctx, shareddomain.NewRecordChange(shareddomain.EntityTypeDeal, deal.ID, deal.OwnerID, shareddomain.ChangeActionCreated))
	return nil
}

func (r *SimpleDealRepository) GetByID(ctx context.Context, ownerID, id shareddomain.ID) (domain.Deal, error) {
	var entity internal.Deal
	err := r.orm.
		WithContext(ctx).
		Where("id = ? AND owner_id = ?", id.String(), ownerID.String()).
		First(&entity).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.Deal{}, usecases.ErrDealNotFound
	}
	if err != nil {
		return domain.Deal{}, fmt.Errorf("database query: %w", err)
	}

	contacts, err := r.linkedContacts(ctx, []string{entity.ID})
	if err != nil {
		return domain.Deal{}, err
	}

	return entity.ToDomain(contacts[entity.ID]), nil
}

func (r *SimpleDealRepository) Find(ctx context.Context, predicate filter.Expr, pagination usecases.Pagination, includeContacts bool) ([]domain.Deal, int, error) {
	where, args, err := filter.ToSQL(predicate, r.dialect)
	if err != nil {
		return nil, 0, fmt.Errorf("lowering predicate: %w", err)
	}

	var total int64
	err = r.orm.
		WithContext(ctx).
		Model(&internal.Deal{}).
		Where(where, args...).
		Count(&total).
		Error()
	if err != nil {
		return nil, 0, fmt.Errorf("count query: %w", err)
	}

	query := r.orm.
		WithContext(ctx).
		Where(where, args...).
		Order("created_at DESC, id ASC")
	if pagination.Limit > 0 {
		query = query.Limit(pagination.Limit).Offset(pagination.Offset)
	}

	var entities []internal.Deal
	if err := query.Find(&entities).Error(); err != nil {
		return nil, 0, fmt.Errorf("database query: %w", err)
	}

	contacts := map[string][]internal.LinkedContact{}
	if includeContacts && len(entities) > 0 {
		ids := make([]string, len(entities))
		for i, entity := range entities {
			ids[i] = entity.ID
		}
		contacts, err = r.linkedContacts(ctx, ids)
		if err != nil {
			return nil, 0, err
		}
	}

	result := make([]domain.Deal, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain(contacts[entity.ID])
	}

	return result, int(total), nil
}

func (r *SimpleDealRepository) Update(ctx context.Context, deal domain.Deal, previousStage domain.Stage) error {
	entity := internal.FromDeal(deal)
	links := internal.FromDealLinks(deal)

	err := r.orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
		if err := tx.Save(&entity).Error(); err != nil {
			return err
		}
		if err := tx.Where("deal_id = ?", entity.ID).Delete(&internal.DealContact{}).Error(); err != nil {
			return err
		}
		if len(links) == 0 {
			return nil
		}
		return tx.Create(&links).Error()
	})
	if err != nil {
		return fmt.Errorf("updating deal in database: %w", err)
	}

	change := shareddomain.NewRecordChange(shareddomain.EntityTypeDeal, deal.ID, deal.OwnerID, shareddomain.ChangeActionUpdated)
	if previousStage != "" && previousStage != deal.Stage {
		change = shareddomain.NewRecordChange(shareddomain.EntityTypeDeal, deal.ID, deal.OwnerID, shareddomain.ChangeActionStageChanged).
			WithStages(previousStage.String(), deal.Stage.String())
	}
	r.publish(ctx, change)
	return nil
}

func (r *SimpleDealRepository) Delete(ctx context.Context, ownerID, id shareddomain.ID) error {
	var affected int64
	err := r.orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
		deleted := tx.
			Where("id = ? AND owner_id = ?", id.String(), ownerID.String()).
			Delete(&internal.Deal{})
		if err := deleted.Error(); err != nil {
			return err
		}
		affected = deleted.RowsAffected()
		if affected == 0 {
			return nil
		}
		return tx.Where("deal_id = ?", id.String()).Delete(&internal.DealContact{}).Error()
	})
	if err != nil {
		return fmt.Errorf("deleting deal in database: %w", err)
	}
	if affected == 0 {
		return usecases.ErrDealNotFound
	}

	r.publish(ctx, shareddomain.NewRecordChange(shareddomain.EntityTypeDeal, id, ownerID, shareddomain.ChangeActionDeleted))
	return nil
}

func (r *SimpleDealRepository) MissingContacts(ctx context.Context, ownerID shareddomain.ID, ids []shareddomain.ID) ([]shareddomain.ID, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	wanted := make([]string, len(ids))
	for i, id := range ids {
		wanted[i] = id.String()
	}

	var found []string
	err := r.orm.
		WithContext(ctx).
		Table("contacts").
		Where("owner_id = ? AND id IN ?", ownerID.String(), wanted).
		Pluck("id", &found).
		Error()
	if err != nil {
		return nil, fmt.Errorf("looking up contacts: %w", err)
	}

	var missing []shareddomain.ID
	for _, id := range ids {
		if !slices.Contains(found, id.String()) {
			missing = append(missing, id)
		}
	}
	return missing, nil
}

func (r *SimpleDealRepository) FindOverdue(ctx context.Context, now time.Time) ([]domain.Deal, error) {
	var entities []internal.Deal
	err := r.orm.
		WithContext(ctx).
		Where("stage NOT IN ? AND expected_close_date IS NOT NULL AND expected_close_date < ?",
			[]string{domain.StageClosedWon.String(), domain.StageClosedLost.String()}, now.UTC()).
		Order("expected_close_date ASC, id ASC").
		Find(&entities).
		Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	result := make([]domain.Deal, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain(nil)
	}
	return result, nil
}

type stageValue struct {
	Stage string
	Value string
}

// Stats sums the stored decimal text in Go so that no dialect rounds it.
func (r *SimpleDealRepository) Stats(ctx context.Context, ownerID shareddomain.ID) (domain.Stats, error) {
	var rows []stageValue
	err := r.orm.
		WithContext(ctx).
		Model(&internal.Deal{}).
		Select("stage, value").
		Where("owner_id = ?", ownerID.String()).
		Scan(&rows).
		Error()
	if err != nil {
		return domain.Stats{}, fmt.Errorf("reading deal values: %w", err)
	}

	stats := domain.NewStats()
	for _, row := range rows {
		value, _ := domain.ParseValue(row.Value)
		stats.Add(domain.Stage(row.Stage), value)
	}
	return stats, nil
}

func (r *SimpleDealRepository) linkedContacts(ctx context.Context, dealIDs []string) (map[string][]internal.LinkedContact, error) {
	var rows []internal.LinkedContact
	err := r.orm.
		WithContext(ctx).
		Table("deal_contacts").
		Select("deal_contacts.deal_id AS deal_id, contacts.id AS id, contacts.first_name AS first_name, contacts.last_name AS last_name, contacts.email AS email, contacts.company AS company").
		Joins("JOIN contacts ON contacts.id = deal_contacts.contact_id").
		Where("deal_contacts.deal_id IN ?", dealIDs).
		Order("contacts.last_name ASC, contacts.first_name ASC, contacts.id ASC").
		Scan(&rows).
		Error()
	if err != nil {
		return nil, fmt.Errorf("loading linked contacts: %w", err)
	}

	result := make(map[string][]internal.LinkedContact, len(dealIDs))
	for _, row := range rows {
		result[row.DealID] = append(result[row.DealID], row)
	}
	return result, nil
}

// publish reports a committed write. The write stands even when the event
// cannot be published.
func (r *SimpleDealRepository) publish(ctx context.Context, change shareddomain.RecordChange) {
	err := r.publisher.Publish(ctx, pubsub.Key(change.RecordID), change)
	if err != nil {
		slog.Error("publishing record change",
			slog.String("record_id", change.RecordID.String()),
			slog.String("error", err.Error()))
	}
}
