package domain

import (
	"crm-server/internal/infra/utils"
	"crm-server/internal/query/filter"
	shareddomain "crm-server/internal/shared_kernel/domain"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const DefaultCurrency = "NZD"

var (
	ErrNameRequired  = errors.New("deal name is required")
	ErrOwnerRequired = errors.New("owner is required")
	ErrInvalidStage  = errors.New("invalid deal stage")
	ErrInvalidValue  = errors.New("deal value must be a non negative decimal")
)

type Stage string

const (
	StageLead        Stage = "lead"
	StageQualified   Stage = "qualified"
	StageProposal    Stage = "proposal"
	StageNegotiation Stage = "negotiation"
	StageClosedWon   Stage = "closed-won"
	StageClosedLost  Stage = "closed-lost"
)

// Stages lists every stage in pipeline order.
var Stages = func() []Stage {
	stages := make([]Stage, len(filter.DealStages))
	for i, stage := range filter.DealStages {
		stages[i] = Stage(stage)
	}
	return stages
}()

func ParseStage(value string) (Stage, error) {
	stage := Stage(strings.TrimSpace(value))
	if !slices.Contains(Stages, stage) {
		return "", fmt.Errorf("%w: %q", ErrInvalidStage, value)
	}
	return stage, nil
}

func (s Stage) String() string {
	return string(s)
}

func (s Stage) IsClosed() bool {
	return s == StageClosedWon || s == StageClosedLost
}

// ParseValue reads a deal amount. An empty text means the deal has no value.
func ParseValue(value string) (decimal.NullDecimal, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return decimal.NullDecimal{}, nil
	}
	amount, err := decimal.NewFromString(value)
	if err != nil || amount.IsNegative() {
		return decimal.NullDecimal{}, fmt.Errorf("%w: %q", ErrInvalidValue, value)
	}
	return decimal.NewNullDecimal(amount), nil
}

// ContactSummary is the part of a linked contact shown with a deal.
type ContactSummary struct {
	ID        shareddomain.ID
	FirstName string
	LastName  string
	Email     string
	Company   string
}

func (c ContactSummary) Name() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

type Deal struct {
	ID            shareddomain.ID
	OwnerID       shareddomain.ID
	Name          string
	Stage         Stage
	Value         decimal.NullDecimal
	Currency      string
	ExpectedClose *time.Time
	Notes         string
	Custom        shareddomain.CustomFields
	ContactIDs    []shareddomain.ID
	Contacts      []ContactSummary
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ValueText renders the amount, empty when the deal has none.
func (d Deal) ValueText() string {
	if !d.Value.Valid {
		return ""
	}
	return d.Value.Decimal.String()
}

// IsOverdue reports an open deal whose expected close date has passed.
func (d Deal) IsOverdue(now time.Time) bool {
	return !d.Stage.IsClosed() && d.ExpectedClose != nil && d.ExpectedClose.Before(now)
}

func (d Deal) FieldValue(id string) (shareddomain.FieldValue, bool) {
	var text string
	switch id {
	case "ownerId":
		text = d.OwnerID.String()
	case "name":
		text = d.Name
	case "stage":
		text = d.Stage.String()
	case "value":
		if !d.Value.Valid {
			return shareddomain.FieldValue{}, false
		}
		return shareddomain.NumberValue(d.Value.Decimal.InexactFloat64()), true
	case "currency":
		text = d.Currency
	case "expectedClose":
		if d.ExpectedClose == nil {
			return shareddomain.FieldValue{}, false
		}
		return shareddomain.DateValue(*d.ExpectedClose), true
	case "notes":
		text = d.Notes
	case "contacts":
		names := make([]string, 0, len(d.Contacts))
		for _, contact := range d.Contacts {
			names = append(names, contact.Name())
		}
		text = strings.Join(names, ", ")
	case "createdAt":
		return shareddomain.DateValue(d.CreatedAt), !d.CreatedAt.IsZero()
	case "updatedAt":
		return shareddomain.DateValue(d.UpdatedAt), !d.UpdatedAt.IsZero()
	default:
		return shareddomain.FieldValue{}, false
	}
	if text == "" {
		return shareddomain.FieldValue{}, false
	}
	return shareddomain.TextValue(text), true
}

func (d Deal) CustomFields() shareddomain.CustomFields {
	return d.Custom
}

// Changes carries a partial update. ContactIDs replaces every link when set
// and ClearExpectedClose removes the date.
type Changes struct {
	Name               *string
	Stage              *string
	Value              *string
	Currency           *string
	ExpectedClose      *time.Time
	ClearExpectedClose bool
	Notes              *string
	ContactIDs         *[]shareddomain.ID
	CustomFields       shareddomain.CustomFields
}

func (d *Deal) Apply(changes Changes) error {
	updated := *d

	if changes.Name != nil {
		name := strings.TrimSpace(*changes.Name)
		if name == "" {
			return ErrNameRequired
		}
		updated.Name = name
	}
	if changes.Stage != nil {
		stage, err := ParseStage(*changes.Stage)
		if err != nil {
			return err
		}
		updated.Stage = stage
	}
	if changes.Value != nil {
		value, err := ParseValue(*changes.Value)
		if err != nil {
			return err
		}
		updated.Value = value
	}
	if changes.Currency != nil {
		updated.Currency = normalizeCurrency(*changes.Currency)
	}
	switch {
	case changes.ClearExpectedClose:
		updated.ExpectedClose = nil
	case changes.ExpectedClose != nil:
		updated.ExpectedClose = utils.TimePtr(changes.ExpectedClose.UTC())
	}
	if changes.Notes != nil {
		updated.Notes = *changes.Notes
	}
	if changes.ContactIDs != nil {
		updated.ContactIDs = normalizeIDs(*changes.ContactIDs)
		updated.Contacts = nil
	}
	if changes.CustomFields != nil {
		merged := d.Custom.Clone()
		for key, value := range changes.CustomFields {
			if value.IsZero() {
				delete(merged, key)
				continue
			}
			merged[key] = value
		}
		updated.Custom = merged
	}

	updated.UpdatedAt = time.Now().UTC()
	*d = updated
	return nil
}

func normalizeCurrency(value string) string {
	value = strings.ToUpper(strings.TrimSpace(value))
	if value == "" {
		return DefaultCurrency
	}
	return value
}

func normalizeIDs(ids []shareddomain.ID) []shareddomain.ID {
	result := make([]shareddomain.ID, 0, len(ids))
	for _, id := range ids {
		id = shareddomain.ID(strings.TrimSpace(id.String()))
		if id == "" || slices.Contains(result, id) {
			continue
		}
		result = append(result, id)
	}
	return result
}

func NewDealBuilder() *dealBuilder {
	return &dealBuilder{}
}

type dealBuilder struct {
	actions []dealHandler
}

type dealHandler func(v *Deal) error

func (b *dealBuilder) WithOwnerID(value shareddomain.ID) *dealBuilder {
	b.actions = append(b.actions, func(d *Deal) error {
		d.OwnerID = shareddomain.ID(strings.TrimSpace(value.String()))
		return nil
	})
	return b
}

func (b *dealBuilder) WithName(value string) *dealBuilder {
	b.actions = append(b.actions, func(d *Deal) error {
		d.Name = strings.TrimSpace(value)
		return nil
	})
	return b
}

// WithStage keeps the default stage for an empty value.
func (b *dealBuilder) WithStage(value string) *dealBuilder {
	b.actions = append(b.actions, func(d *Deal) error {
		if strings.TrimSpace(value) == "" {
			return nil
		}
		stage, err := ParseStage(value)
		if err != nil {
			return err
		}
		d.Stage = stage
		return nil
	})
	return b
}

func (b *dealBuilder) WithValue(value string) *dealBuilder {
	b.actions = append(b.actions, func(d *Deal) error {
		amount, err := ParseValue(value)
		if err != nil {
			return err
		}
		d.Value = amount
		return nil
	})
	return b
}

func (b *dealBuilder) WithCurrency(value string) *dealBuilder {
	b.actions = append(b.actions, func(d *Deal) error {
		d.Currency = normalizeCurrency(value)
		return nil
	})
	return b
}

func (b *dealBuilder) WithExpectedClose(value *time.Time) *dealBuilder {
	b.actions = append(b.actions, func(d *Deal) error {
		if value == nil {
			d.ExpectedClose = nil
			return nil
		}
		d.ExpectedClose = utils.TimePtr(value.UTC())
		return nil
	})
	return b
}

func (b *dealBuilder) WithNotes(value string) *dealBuilder {
	b.actions = append(b.actions, func(d *Deal) error {
		d.Notes = value
		return nil
	})
	return b
}

func (b *dealBuilder) WithContactIDs(value []shareddomain.ID) *dealBuilder {
	b.actions = append(b.actions, func(d *Deal) error {
		d.ContactIDs = normalizeIDs(value)
		return nil
	})
	return b
}

func (b *dealBuilder) WithCustomFields(value shareddomain.CustomFields) *dealBuilder {
	b.actions = append(b.actions, func(d *Deal) error {
		d.Custom = value.Clone()
		return nil
	})
	return b
}

func (b *dealBuilder) WithCreatedAt(value time.Time) *dealBuilder {
	b.actions = append(b.actions, func(d *Deal) error {
		d.CreatedAt = value.UTC()
		d.UpdatedAt = value.UTC()
		return nil
	})
	return b
}

func (b *dealBuilder) Build() (Deal, error) {
	now := time.Now().UTC()
	result := Deal{
		ID:         shareddomain.ID(utils.GenerateUUID()),
		Stage:      StageLead,
		Currency:   DefaultCurrency,
		Custom:     shareddomain.CustomFields{},
		ContactIDs: []shareddomain.ID{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return Deal{}, err
		}
	}

	if result.OwnerID == "" {
		return Deal{}, ErrOwnerRequired
	}
	if result.Name == "" {
		return Deal{}, ErrNameRequired
	}

	return result, nil
}
