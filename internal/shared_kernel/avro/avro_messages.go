package avro

import (
	"crm-server/internal/infra/utils"
	"crm-server/internal/shared_kernel/domain"
	_ "embed"
	"fmt"
	"time"
)

//go:embed schemas/record_change.avsc
var recordChangeSchema string

// AvroRecordChange is the wire shape of domain.RecordChange.
type AvroRecordChange struct {
	ID            string    `avro:"id"`
	EntityType    string    `avro:"entity_type"`
	RecordID      string    `avro:"record_id"`
	OwnerID       string    `avro:"owner_id"`
	Action        string    `avro:"action"`
	PreviousStage *string   `avro:"previous_stage"`
	Stage         *string   `avro:"stage"`
	OccurredAt    time.Time `avro:"occurred_at"`
}

func ToAvroRecordChange(change domain.RecordChange) *AvroRecordChange {
	return &AvroRecordChange{
		ID:            change.ID.String(),
		EntityType:    change.EntityType.String(),
		RecordID:      change.RecordID.String(),
		OwnerID:       change.OwnerID.String(),
		Action:        string(change.Action),
		PreviousStage: utils.StringPtr(change.PreviousStage),
		Stage:         utils.StringPtr(change.Stage),
		OccurredAt:    change.OccurredAt.UTC().Truncate(time.Millisecond),
	}
}

func (a *AvroRecordChange) ToDomain() domain.RecordChange {
	return domain.RecordChange{
		ID:            domain.ID(a.ID),
		EntityType:    domain.EntityType(a.EntityType),
		RecordID:      domain.ID(a.RecordID),
		OwnerID:       domain.ID(a.OwnerID),
		Action:        domain.ChangeAction(a.Action),
		PreviousStage: utils.Deref(a.PreviousStage),
		Stage:         utils.Deref(a.Stage),
		OccurredAt:    a.OccurredAt.UTC(),
	}
}

func asRecordChange(value any) (domain.RecordChange, error) {
	switch v := value.(type) {
	case domain.RecordChange:
		return v, nil
	case *domain.RecordChange:
		return *v, nil
	case *AvroRecordChange:
		return v.ToDomain(), nil
	case AvroRecordChange:
		return v.ToDomain(), nil
	}
	return domain.RecordChange{}, fmt.Errorf("%w: %T", ErrUnsupportedMessage, value)
}
