package filter

import (
	"crm-server/internal/shared_kernel/domain"
	"errors"
)

var ErrUnknownEntityType = errors.New("no catalog for entity type")

// OwnerField is the ownership column shared by every record table.
var OwnerField = FieldRef{ID: "ownerId", Column: "owner_id", Kind: ColumnTypeEnum}

// Field describes a built-in, filterable column. A field mapped to several
// storage columns matches when any of them does.
type Field struct {
	ID      string
	Type    ColumnType
	Columns []FieldRef
	Options []string
}

type Catalog struct {
	entityType domain.EntityType
	fields     map[string]Field
	search     []string
}

func NewCatalog(entityType domain.EntityType, search []string, fields ...Field) Catalog {
	indexed := make(map[string]Field, len(fields))
	for _, field := range fields {
		indexed[field.ID] = field
	}
	return Catalog{entityType: entityType, fields: indexed, search: search}
}

func (c Catalog) EntityType() domain.EntityType {
	return c.entityType
}

func (c Catalog) Field(id string) (Field, bool) {
	field, found := c.fields[id]
	return field, found
}

// EnumOptions returns the options of every built-in enum column.
func (c Catalog) EnumOptions() map[string][]string {
	result := map[string][]string{}
	for id, field := range c.fields {
		if field.Type == ColumnTypeEnum && len(field.Options) > 0 {
			result[id] = field.Options
		}
	}
	return result
}

// ColumnTypes returns the filter type of every built-in column.
func (c Catalog) ColumnTypes() map[string]ColumnType {
	result := make(map[string]ColumnType, len(c.fields))
	for id, field := range c.fields {
		result[id] = field.Type
	}
	return result
}

// Search builds a case-insensitive "contains" over the given fields, or over
// the catalog's default search fields when none are given. A blank term
// yields nil.
func (c Catalog) Search(term string, ids ...string) Expr {
	if isBlank(term) {
		return nil
	}
	if len(ids) == 0 {
		ids = c.search
	}
	terms := make([]Expr, 0, len(ids))
	for _, id := range ids {
		field, found := c.fields[id]
		if !found || field.Type != ColumnTypeText {
			continue
		}
		for _, ref := range field.Columns {
			terms = append(terms, Comparison{Field: ref, Op: OpContains, Value: Literal{Text: term}})
		}
	}
	if len(terms) == 0 {
		return nil
	}
	return Or{Terms: terms}
}

func textField(id, column string) Field {
	return Field{ID: id, Type: ColumnTypeText, Columns: []FieldRef{{ID: id, Column: column, Kind: ColumnTypeText}}}
}

func dateField(id, column string) Field {
	return Field{ID: id, Type: ColumnTypeDate, Columns: []FieldRef{{ID: id, Column: column, Kind: ColumnTypeDate}}}
}

var DealStages = []string{"lead", "qualified", "proposal", "negotiation", "closed-won", "closed-lost"}

func ContactCatalog() Catalog {
	return NewCatalog(domain.EntityTypeContact,
		[]string{"firstName", "lastName", "email", "company"},
		Field{
			ID:   "name",
			Type: ColumnTypeText,
			Columns: []FieldRef{
				{ID: "firstName", Column: "first_name", Kind: ColumnTypeText},
				{ID: "lastName", Column: "last_name", Kind: ColumnTypeText},
			},
		},
		textField("firstName", "first_name"),
		textField("lastName", "last_name"),
		textField("email", "email"),
		textField("phone", "phone"),
		textField("company", "company"),
		textField("jobTitle", "job_title"),
		textField("notes", "notes"),
		dateField("createdAt", "created_at"),
		dateField("updatedAt", "updated_at"),
	)
}

func DealCatalog() Catalog {
	return NewCatalog(domain.EntityTypeDeal,
		[]string{"name"},
		textField("name", "name"),
		Field{
			ID:      "stage",
			Type:    ColumnTypeEnum,
			Columns: []FieldRef{{ID: "stage", Column: "stage", Kind: ColumnTypeEnum}},
			Options: DealStages,
		},
		Field{
			ID:      "value",
			Type:    ColumnTypeNumber,
			Columns: []FieldRef{{ID: "value", Column: "value", Kind: ColumnTypeNumber}},
		},
		textField("currency", "currency"),
		dateField("expectedClose", "expected_close_date"),
		textField("notes", "notes"),
		dateField("createdAt", "created_at"),
		dateField("updatedAt", "updated_at"),
	)
}

func CatalogFor(entityType domain.EntityType) (Catalog, error) {
	switch entityType {
	case domain.EntityTypeContact:
		return ContactCatalog(), nil
	case domain.EntityTypeDeal:
		return DealCatalog(), nil
	}
	return Catalog{}, ErrUnknownEntityType
}
