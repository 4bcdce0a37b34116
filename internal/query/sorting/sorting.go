// Package sorting orders a page of records by a single column.
package sorting

import (
	"crm-server/internal/shared_kernel/domain"
	"slices"
	"strings"
)

type Direction string

const (
	DirectionAsc  Direction = "asc"
	DirectionDesc Direction = "desc"
	DirectionNone Direction = "none"
)

func ParseDirection(value string) (Direction, bool) {
	switch Direction(value) {
	case DirectionAsc, DirectionDesc, DirectionNone:
		return Direction(value), true
	}
	return "", false
}

// Directive names the single column a page is ordered by.
type Directive struct {
	ColumnID  string
	Direction Direction
}

// IsActive reports whether the directive reorders anything.
func (d Directive) IsActive() bool {
	return d.ColumnID != "" && (d.Direction == DirectionAsc || d.Direction == DirectionDesc)
}

type Record interface {
	FieldValue(id string) (domain.FieldValue, bool)
	CustomFields() domain.CustomFields
}

// Sort orders records in place by one column, keeping the input order of
// equal values. Records without a value come last in both directions.
func Sort[T Record](records []T, columnID string, direction Direction) {
	if columnID == "" || (direction != DirectionAsc && direction != DirectionDesc) {
		return
	}

	slices.SortStableFunc(records, func(a, b T) int {
		left, leftFound := valueOf(a, columnID)
		right, rightFound := valueOf(b, columnID)

		switch {
		case !leftFound && !rightFound:
			return 0
		case !leftFound:
			return 1
		case !rightFound:
			return -1
		}

		result := Compare(left, right)
		if direction == DirectionDesc {
			return -result
		}
		return result
	})
}

func valueOf(record Record, columnID string) (domain.FieldValue, bool) {
	value, found := record.FieldValue(columnID)
	if !found {
		value, found = record.CustomFields().Get(columnID)
	}
	if !found || value.IsZero() {
		return domain.FieldValue{}, false
	}
	return value, true
}

// Compare orders two present values. Values of the same kind compare
// naturally; anything else compares as case folded text.
func Compare(a, b domain.FieldValue) int {
	if a.Kind() == b.Kind() {
		switch a.Kind() {
		case domain.ValueKindNumber:
			left, _ := a.AsNumber()
			right, _ := b.AsNumber()
			return compareOrdered(left, right)
		case domain.ValueKindDate:
			left, _ := a.AsTime()
			right, _ := b.AsTime()
			return left.Compare(right)
		case domain.ValueKindBoolean:
			left, _ := a.AsBool()
			right, _ := b.AsBool()
			return compareBool(left, right)
		}
	}
	return strings.Compare(strings.ToLower(a.AsText()), strings.ToLower(b.AsText()))
}

func compareOrdered(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	}
	return 1
}
