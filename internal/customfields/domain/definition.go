package domain

import (
	"crm-server/internal/infra/utils"
	"crm-server/internal/query/filter"
	shareddomain "crm-server/internal/shared_kernel/domain"
	"errors"
	"regexp"
	"sort"
	"strings"
	"time"
)

const (
	MaxKeyLength   = 100
	MaxLabelLength = 100
)

var (
	ErrInvalidFieldKey = errors.New("field key must be 1 to 100 letters, digits, '_' or '-'")
	ErrInvalidLabel    = errors.New("label must be 1 to 100 characters")
	ErrOwnerRequired   = errors.New("owner is required")
)

var _keyPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Definition declares a custom field for one owner and entity type. The key
// addresses the value in the records' custom field bag.
type Definition struct {
	ID         shareddomain.ID
	OwnerID    shareddomain.ID
	EntityType shareddomain.EntityType
	Key        string
	Label      string
	Type       shareddomain.FieldType
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func ValidateKey(key string) error {
	if len(key) == 0 || len(key) > MaxKeyLength || !_keyPattern.MatchString(key) {
		return ErrInvalidFieldKey
	}
	return nil
}

func ValidateLabel(label string) error {
	length := len([]rune(strings.TrimSpace(label)))
	if length == 0 || length > MaxLabelLength {
		return ErrInvalidLabel
	}
	return nil
}

func (d *Definition) Relabel(label string) error {
	if err := ValidateLabel(label); err != nil {
		return err
	}
	d.Label = strings.TrimSpace(label)
	d.UpdatedAt = time.Now().UTC()
	return nil
}

// ChangeType does not touch stored values. Values that no longer fit the new
// type are kept as text and read tolerantly.
func (d *Definition) ChangeType(fieldType shareddomain.FieldType) error {
	parsed, err := shareddomain.ParseFieldType(string(fieldType))
	if err != nil {
		return err
	}
	d.Type = parsed
	d.UpdatedAt = time.Now().UTC()
	return nil
}

func NewDefinitionBuilder() *definitionBuilder {
	return &definitionBuilder{}
}

type definitionBuilder struct {
	actions []definitionHandler
}

type definitionHandler func(v *Definition) error

func (b *definitionBuilder) WithOwnerID(value shareddomain.ID) *definitionBuilder {
	b.actions = append(b.actions, func(d *Definition) error {
		if strings.TrimSpace(value.String()) == "" {
			return ErrOwnerRequired
		}
		d.OwnerID = value
		return nil
	})
	return b
}

func (b *definitionBuilder) WithEntityType(value string) *definitionBuilder {
	b.actions = append(b.actions, func(d *Definition) error {
		entityType, err := shareddomain.ParseEntityType(value)
		if err != nil {
			return err
		}
		d.EntityType = entityType
		return nil
	})
	return b
}

func (b *definitionBuilder) WithKey(value string) *definitionBuilder {
	b.actions = append(b.actions, func(d *Definition) error {
		if err := ValidateKey(value); err != nil {
			return err
		}
		d.Key = value
		return nil
	})
	return b
}

func (b *definitionBuilder) WithLabel(value string) *definitionBuilder {
	b.actions = append(b.actions, func(d *Definition) error {
		if err := ValidateLabel(value); err != nil {
			return err
		}
		d.Label = strings.TrimSpace(value)
		return nil
	})
	return b
}

func (b *definitionBuilder) WithType(value string) *definitionBuilder {
	b.actions = append(b.actions, func(d *Definition) error {
		fieldType, err := shareddomain.ParseFieldType(value)
		if err != nil {
			return err
		}
		d.Type = fieldType
		return nil
	})
	return b
}

func (b *definitionBuilder) Build() (Definition, error) {
	now := time.Now().UTC()
	result := Definition{
		ID:        shareddomain.ID(utils.GenerateUUID()),
		Type:      shareddomain.FieldTypeText,
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return Definition{}, err
		}
	}

	switch {
	case result.OwnerID == "":
		return Definition{}, ErrOwnerRequired
	case result.EntityType == "":
		return Definition{}, shareddomain.ErrInvalidEntityType
	case result.Key == "":
		return Definition{}, ErrInvalidFieldKey
	case result.Label == "":
		return Definition{}, ErrInvalidLabel
	}

	return result, nil
}

// Catalog is the set of definitions an owner declared for one entity type.
type Catalog []Definition

func (c Catalog) Types() map[string]shareddomain.FieldType {
	result := make(map[string]shareddomain.FieldType, len(c))
	for _, definition := range c {
		result[definition.Key] = definition.Type
	}
	return result
}

func (c Catalog) Keys() []string {
	keys := make([]string, 0, len(c))
	for _, definition := range c {
		keys = append(keys, definition.Key)
	}
	sort.Strings(keys)
	return keys
}

func (c Catalog) FilterDefinitions() []filter.Definition {
	result := make([]filter.Definition, len(c))
	for i, definition := range c {
		result[i] = filter.Definition{Key: definition.Key, Type: definition.Type}
	}
	return result
}
