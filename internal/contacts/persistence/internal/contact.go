package internal

import (
	"crm-server/internal/contacts/domain"
	shareddomain "crm-server/internal/shared_kernel/domain"
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

type Contact struct {
	ID           string                      `gorm:"primaryKey"`
	OwnerID      string                      `gorm:"not null;index:idx_contacts_owner_id"`
	FirstName    string                      `gorm:"not null;default:''"`
	LastName     string                      `gorm:"not null;default:''"`
	Email        string                      `gorm:"not null;default:''"`
	Phone        string                      `gorm:"not null;default:''"`
	Company      string                      `gorm:"not null;default:''"`
	JobTitle     string                      `gorm:"not null;default:''"`
	Notes        string                      `gorm:"not null;default:''"`
	Tags         datatypes.JSONSlice[string] `gorm:"not null"`
	CustomFields datatypes.JSON              `gorm:"not null"`
	CreatedAt    time.Time                   `gorm:"not null;index:idx_contacts_created_at"`
	UpdatedAt    time.Time                   `gorm:"not null"`
}

func (Contact) TableName() string {
	return "contacts"
}

func FromContact(value domain.Contact) Contact {
	tags := value.Tags
	if tags == nil {
		tags = []string{}
	}
	return Contact{
		ID:           value.ID.String(),
		OwnerID:      value.OwnerID.String(),
		FirstName:    value.FirstName,
		LastName:     value.LastName,
		Email:        value.Email,
		Phone:        value.Phone,
		Company:      value.Company,
		JobTitle:     value.JobTitle,
		Notes:        value.Notes,
		Tags:         datatypes.JSONSlice[string](tags),
		CustomFields: EncodeCustomFields(value.Custom),
		CreatedAt:    value.CreatedAt,
		UpdatedAt:    value.UpdatedAt,
	}
}

func (c Contact) ToDomain() domain.Contact {
	tags := []string(c.Tags)
	if tags == nil {
		tags = []string{}
	}
	return domain.Contact{
		ID:        shareddomain.ID(c.ID),
		OwnerID:   shareddomain.ID(c.OwnerID),
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
		Company:   c.Company,
		JobTitle:  c.JobTitle,
		Notes:     c.Notes,
		Tags:      tags,
		Custom:    DecodeCustomFields(c.CustomFields),
		CreatedAt: c.CreatedAt.UTC(),
		UpdatedAt: c.UpdatedAt.UTC(),
	}
}

func EncodeCustomFields(fields shareddomain.CustomFields) datatypes.JSON {
	if len(fields) == 0 {
		return datatypes.JSON("{}")
	}
	data, err := json.Marshal(fields)
	if err != nil {
		return datatypes.JSON("{}")
	}
	return datatypes.JSON(data)
}

// DecodeCustomFields reads a stored bag. A corrupt bag reads as empty.
func DecodeCustomFields(data datatypes.JSON) shareddomain.CustomFields {
	fields := shareddomain.CustomFields{}
	if len(data) == 0 {
		return fields
	}
	if err := json.Unmarshal(data, &fields); err != nil {
		return shareddomain.CustomFields{}
	}
	return fields
}
