package domain

import "errors"

type ID string
type Version int

func (vo ID) String() string {
	return string(vo)
}

type Name string
type DisplayName string
type Description string

type EntityType string

const (
	EntityTypeContact EntityType = "contact"
	EntityTypeDeal    EntityType = "deal"
)

var ErrInvalidEntityType = errors.New("invalid entity type")

func ParseEntityType(value string) (EntityType, error) {
	switch EntityType(value) {
	case EntityTypeContact, EntityTypeDeal:
		return EntityType(value), nil
	}
	return "", ErrInvalidEntityType
}

func (e EntityType) String() string {
	return string(e)
}

// FieldType is the declared value type of a custom field.
type FieldType string

const (
	FieldTypeText    FieldType = "text"
	FieldTypeNumber  FieldType = "number"
	FieldTypeDate    FieldType = "date"
	FieldTypeBoolean FieldType = "boolean"
)

var ErrInvalidFieldType = errors.New("invalid field type")

func ParseFieldType(value string) (FieldType, error) {
	switch FieldType(value) {
	case FieldTypeText, FieldTypeNumber, FieldTypeDate, FieldTypeBoolean:
		return FieldType(value), nil
	}
	return "", ErrInvalidFieldType
}
