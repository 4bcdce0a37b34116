package persistence

import (
	"context"
	"crm-server/internal/contacts/domain"
	"crm-server/internal/contacts/persistence/internal"
	"crm-server/internal/contacts/usecases"
	"crm-server/internal/infra/pubsub"
	"crm-server/internal/infra/sql"
	"crm-server/internal/query/filter"
	shareddomain "crm-server/internal/shared_kernel/domain"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

func NewContactRepository(publisherFactory pubsub.PublisherFactory, orm sql.ORM) (*SimpleContactRepository, error) {
	publisher, err := publisherFactory.New(pubsub.RecordChangesTopic, shareddomain.RecordChange{})
	if err != nil {
		return nil, fmt.Errorf("creating publisher: %w", err)
	}

	dialect, err := filter.ParseDialect(orm.Dialect())
	if err != nil {
		return nil, fmt.Errorf("resolving dialect: %w", err)
	}

	err = orm.AutoMigrate(&internal.Contact{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleContactRepository{
		publisher: publisher,
		orm:       orm,
		dialect:   dialect,
	}, nil
}

var _ usecases.ContactRepository = (*SimpleContactRepository)(nil)

type SimpleContactRepository struct {
	publisher pubsub.Publisher
	orm       sql.ORM
	dialect   filter.Dialect
}

func (r *SimpleContactRepository) Create(ctx context.Context, contact domain.Contact) error {
	entity := internal.FromContact(contact)

	err := r.orm.WithContext(ctx).Create(&entity).Error()
	if err != nil {
		return fmt.Errorf("creating contact in database: %w", err)
	}

	r.publish(ctx, shareddomain.NewRecordChange(shareddomain.EntityTypeContact, contact.ID, contact.OwnerID, shareddomain.ChangeActionCreated))
	return nil
}

func (r *SimpleContactRepository) GetByID(ctx context.Context, ownerID, id shareddomain.ID) (domain.Contact, error) {
	var entity internal.Contact
	err := r.orm.
		WithContext(ctx).
		Where("id = ? AND owner_id = ?", id.String(), ownerID.String()).
		First(&entity).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.Contact{}, usecases.ErrContactNotFound
	}
	if err != nil {
		return domain.Contact{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleContactRepository) Find(ctx context.Context, predicate filter.Expr, pagination usecases.Pagination) ([]domain.Contact, int, error) {
	where, args, err := filter.ToSQL(predicate, r.dialect)
	if err != nil {
		return nil, 0, fmt.Errorf("lowering predicate: %w", err)
	}

	var total int64
	err = r.orm.
		WithContext(ctx).
		Model(&internal.Contact{}).
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

	var entities []internal.Contact
	if err := query.Find(&entities).Error(); err != nil {
		return nil, 0, fmt.Errorf("database query: %w", err)
	}

	result := make([]domain.Contact, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, int(total), nil
}

func (r *SimpleContactRepository) Update(ctx context.Context, contact domain.Contact) error {
	entity := internal.FromContact(contact)

	err := r.orm.WithContext(ctx).Save(&entity).Error()
	if err != nil {
		return fmt.Errorf("updating contact in database: %w", err)
	}

	r.publish(ctx, shareddomain.NewRecordChange(shareddomain.EntityTypeContact, contact.ID, contact.OwnerID, shareddomain.ChangeActionUpdated))
	return nil
}

func (r *SimpleContactRepository) Delete(ctx context.Context, ownerID, id shareddomain.ID) error {
	tx := r.orm.
		WithContext(ctx).
		Where("id = ? AND owner_id = ?", id.String(), ownerID.String()).
		Delete(&internal.Contact{})
	if err := tx.Error(); err != nil {
		return fmt.Errorf("deleting contact in database: %w", err)
	}
	if tx.RowsAffected() == 0 {
		return usecases.ErrContactNotFound
	}

	r.publish(ctx, shareddomain.NewRecordChange(shareddomain.EntityTypeContact, id, ownerID, shareddomain.ChangeActionDeleted))
	return nil
}

func (r *SimpleContactRepository) Stats(ctx context.Context, ownerID shareddomain.ID, since time.Time) (domain.Stats, error) {
	var stats domain.Stats

	err := r.orm.
		WithContext(ctx).
		Model(&internal.Contact{}).
		Where("owner_id = ?", ownerID.String()).
		Count(&stats.TotalContacts).
		Error()
	if err != nil {
		return domain.Stats{}, fmt.Errorf("counting contacts: %w", err)
	}

	err = r.orm.
		WithContext(ctx).
		Model(&internal.Contact{}).
		Where("owner_id = ? AND company <> ''", ownerID.String()).
		Distinct("company").
		Count(&stats.TotalCompanies).
		Error()
	if err != nil {
		return domain.Stats{}, fmt.Errorf("counting companies: %w", err)
	}

	err = r.orm.
		WithContext(ctx).
		Model(&internal.Contact{}).
		Where("owner_id = ? AND created_at >= ?", ownerID.String(), since.UTC()).
		Count(&stats.RecentContacts).
		Error()
	if err != nil {
		return domain.Stats{}, fmt.Errorf("counting recent contacts: %w", err)
	}

	return stats, nil
}

// publish reports a committed write. The write stands even when the event
// cannot be published.
func (r *SimpleContactRepository) publish(ctx context.Context, change shareddomain.RecordChange) {
	err := r.publisher.Publish(ctx, pubsub.Key(change.RecordID), change)
	if err != nil {
		slog.Error("publishing record change",
			slog.String("record_id", change.RecordID.String()),
			slog.String("error", err.Error()))
	}
}
