// Package filter compiles user assembled column filters and a free text search
// into a typed predicate. The predicate is evaluated either in memory with
// Matches or by the database after lowering with ToSQL.
package filter

import "crm-server/internal/shared_kernel/domain"

type ColumnType string

const (
	ColumnTypeText   ColumnType = "text"
	ColumnTypeNumber ColumnType = "number"
	ColumnTypeDate   ColumnType = "date"
	ColumnTypeEnum   ColumnType = "enum"
)

// Operator is the operator name as chosen by the user.
type Operator string

const (
	OperatorContains   Operator = "contains"
	OperatorEquals     Operator = "equals"
	OperatorStartsWith Operator = "startsWith"
	OperatorEndsWith   Operator = "endsWith"

	OperatorGt  Operator = "gt"
	OperatorLt  Operator = "lt"
	OperatorGte Operator = "gte"
	OperatorLte Operator = "lte"
	OperatorEq  Operator = "eq"

	OperatorBefore  Operator = "before"
	OperatorAfter   Operator = "after"
	OperatorOn      Operator = "on"
	OperatorBetween Operator = "between"

	OperatorIn Operator = "in"
)

var _operatorsByType = map[ColumnType][]Operator{
	ColumnTypeText:   {OperatorContains, OperatorEquals, OperatorStartsWith, OperatorEndsWith},
	ColumnTypeNumber: {OperatorGt, OperatorLt, OperatorGte, OperatorLte, OperatorEq},
	ColumnTypeDate:   {OperatorBefore, OperatorAfter, OperatorOn, OperatorBetween},
	ColumnTypeEnum:   {OperatorEquals, OperatorIn},
}

// OperatorsFor lists the operators accepted for a column type.
func OperatorsFor(columnType ColumnType) []Operator {
	return _operatorsByType[columnType]
}

func Supports(columnType ColumnType, operator Operator) bool {
	for _, candidate := range _operatorsByType[columnType] {
		if candidate == operator {
			return true
		}
	}
	return false
}

// ColumnFilter is a single filter row. Value2 is only read by "between" and
// EnumOptions only carries the choices offered to the user.
type ColumnFilter struct {
	ColumnID    string     `json:"columnId"`
	ColumnLabel string     `json:"columnLabel,omitempty"`
	ColumnType  ColumnType `json:"columnType"`
	Operator    Operator   `json:"operator"`
	Value       string     `json:"value"`
	Value2      string     `json:"value2,omitempty"`
	EnumOptions []string   `json:"enumOptions,omitempty"`
}

// Definition is the part of a custom field definition the compiler needs.
type Definition struct {
	Key  string
	Type domain.FieldType
}

// ColumnTypeOf maps a declared custom field type to the filter column type.
// Booleans filter as an enum of "true" and "false".
func ColumnTypeOf(fieldType domain.FieldType) ColumnType {
	switch fieldType {
	case domain.FieldTypeNumber:
		return ColumnTypeNumber
	case domain.FieldTypeDate:
		return ColumnTypeDate
	case domain.FieldTypeBoolean:
		return ColumnTypeEnum
	default:
		return ColumnTypeText
	}
}

// Record is anything the in-memory predicate and the page sort can read.
type Record interface {
	FieldValue(id string) (domain.FieldValue, bool)
	CustomFields() domain.CustomFields
}
