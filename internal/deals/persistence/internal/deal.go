package internal

import (
	"crm-server/internal/deals/domain"
	shareddomain "crm-server/internal/shared_kernel/domain"
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Deal keeps the value as decimal text so that any dialect can store it
// without rounding.
type Deal struct {
	ID                string         `gorm:"primaryKey"`
	OwnerID           string         `gorm:"not null;index:idx_deals_owner_id;index:idx_deals_owner_stage,priority:1"`
	Name              string         `gorm:"not null"`
	Stage             string         `gorm:"not null;default:'lead';index:idx_deals_owner_stage,priority:2"`
	Value             string         `gorm:"not null;default:''"`
	Currency          string         `gorm:"not null;default:'NZD'"`
	ExpectedCloseDate *time.Time     `gorm:"column:expected_close_date"`
	Notes             string         `gorm:"not null;default:''"`
	CustomFields      datatypes.JSON `gorm:"not null"`
	CreatedAt         time.Time      `gorm:"not null"`
	UpdatedAt         time.Time      `gorm:"not null"`
}

func (Deal) TableName() string {
	return "deals"
}

type DealContact struct {
	DealID    string `gorm:"primaryKey"`
	ContactID string `gorm:"primaryKey;index:idx_deal_contacts_contact_id"`
}

func (DealContact) TableName() string {
	return "deal_contacts"
}

// LinkedContact is one row of the deal_contacts to contacts join.
type LinkedContact struct {
	DealID    string
	ID        string
	FirstName string
	LastName  string
	Email     string
	Company   string
}

func (c LinkedContact) ToDomain() domain.ContactSummary {
	return domain.ContactSummary{
		ID:        shareddomain.ID(c.ID),
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Company:   c.Company,
	}
}

func FromDeal(value domain.Deal) Deal {
	var expectedClose *time.Time
	if value.ExpectedClose != nil {
		t := value.ExpectedClose.UTC()
		expectedClose = &t
	}
	return Deal{
		ID:                value.ID.String(),
		OwnerID:           value.OwnerID.String(),
		Name:              value.Name,
		Stage:             value.Stage.String(),
		Value:             value.ValueText(),
		Currency:          value.Currency,
		ExpectedCloseDate: expectedClose,
		Notes:             value.Notes,
		CustomFields:      encodeCustomFields(value.Custom),
		CreatedAt:         value.CreatedAt,
		UpdatedAt:         value.UpdatedAt,
	}
}

func FromDealLinks(value domain.Deal) []DealContact {
	links := make([]DealContact, len(value.ContactIDs))
	for i, id := range value.ContactIDs {
		links[i] = DealContact{DealID: value.ID.String(), ContactID: id.String()}
	}
	return links
}

// ToDomain maps the row. A stored value that is no longer a valid decimal
// reads as no value.
func (d Deal) ToDomain(contacts []LinkedContact) domain.Deal {
	value, _ := domain.ParseValue(d.Value)

	var expectedClose *time.Time
	if d.ExpectedCloseDate != nil {
		t := d.ExpectedCloseDate.UTC()
		expectedClose = &t
	}

	ids := make([]shareddomain.ID, len(contacts))
	summaries := make([]domain.ContactSummary, len(contacts))
	for i, contact := range contacts {
		ids[i] = shareddomain.ID(contact.ID)
		summaries[i] = contact.ToDomain()
	}

	return domain.Deal{
		ID:            shareddomain.ID(d.ID),
		OwnerID:       shareddomain.ID(d.OwnerID),
		Name:          d.Name,
		Stage:         domain.Stage(d.Stage),
		Value:         value,
		Currency:      d.Currency,
		ExpectedClose: expectedClose,
		Notes:         d.Notes,
		Custom:        decodeCustomFields(d.CustomFields),
		ContactIDs:    ids,
		Contacts:      summaries,
		CreatedAt:     d.CreatedAt.UTC(),
		UpdatedAt:     d.UpdatedAt.UTC(),
	}
}

func encodeCustomFields(fields shareddomain.CustomFields) datatypes.JSON {
	if len(fields) == 0 {
		return datatypes.JSON("{}")
	}
	data, err := json.Marshal(fields)
	if err != nil {
		return datatypes.JSON("{}")
	}
	return datatypes.JSON(data)
}

func decodeCustomFields(data datatypes.JSON) shareddomain.CustomFields {
	fields := shareddomain.CustomFields{}
	if len(data) == 0 {
		return fields
	}
	if err := json.Unmarshal(data, &fields); err != nil {
		return shareddomain.CustomFields{}
	}
	return fields
}
