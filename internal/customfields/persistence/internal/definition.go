package internal

import (
	"crm-server/internal/customfields/domain"
	shareddomain "crm-server/internal/shared_kernel/domain"
	"time"
)

type Definition struct {
	ID         string    `gorm:"primaryKey"`
	OwnerID    string    `gorm:"not null;uniqueIndex:idx_custom_field_owner_entity_key,priority:1"`
	EntityType string    `gorm:"not null;uniqueIndex:idx_custom_field_owner_entity_key,priority:2"`
	FieldKey   string    `gorm:"not null;uniqueIndex:idx_custom_field_owner_entity_key,priority:3"`
	Label      string    `gorm:"not null"`
	FieldType  string    `gorm:"not null"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

func (Definition) TableName() string {
	return "custom_field_definitions"
}

func FromDefinition(value domain.Definition) Definition {
	return Definition{
		ID:         value.ID.String(),
		OwnerID:    value.OwnerID.String(),
		EntityType: value.EntityType.String(),
		FieldKey:   value.Key,
		Label:      value.Label,
		FieldType:  string(value.Type),
		CreatedAt:  value.CreatedAt,
		UpdatedAt:  value.UpdatedAt,
	}
}

func (d Definition) ToDomain() domain.Definition {
	return domain.Definition{
		ID:         shareddomain.ID(d.ID),
		OwnerID:    shareddomain.ID(d.OwnerID),
		EntityType: shareddomain.EntityType(d.EntityType),
		Key:        d.FieldKey,
		Label:      d.Label,
		Type:       shareddomain.FieldType(d.FieldType),
		CreatedAt:  d.CreatedAt.UTC(),
		UpdatedAt:  d.UpdatedAt.UTC(),
	}
}
