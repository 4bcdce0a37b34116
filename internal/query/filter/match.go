package filter

import (
	"crm-server/internal/shared_kernel/domain"
	"slices"
	"strings"
	"time"
)

// Matches evaluates the predicate against a record in memory. It agrees with
// the SQL produced by ToSQL for the same expression.
func Matches(expr Expr, record Record) bool {
	switch e := expr.(type) {
	case nil:
		return true
	case And:
		for _, term := range e.Terms {
			if !Matches(term, record) {
				return false
			}
		}
		return true
	case Or:
		for _, term := range e.Terms {
			if Matches(term, record) {
				return true
			}
		}
		return false
	case Comparison:
		return matchComparison(e, record)
	}
	return false
}

func lookup(ref FieldRef, record Record) (domain.FieldValue, bool) {
	if ref.Custom {
		return record.CustomFields().Get(ref.Column)
	}
	return record.FieldValue(ref.ID)
}

func matchComparison(c Comparison, record Record) bool {
	value, found := lookup(c.Field, record)
	if !found {
		return false
	}

	switch c.Field.Kind {
	case ColumnTypeText:
		return matchText(c.Op, value.AsText(), c.Value.Text)
	case ColumnTypeNumber:
		number, ok := value.AsNumber()
		return ok && compareNumbers(c.Op, number, c.Value.Number)
	case ColumnTypeDate:
		// stored text without an offset is read where the operand was parsed
		t, ok := value.AsTimeIn(c.Value.Time.Location())
		return ok && compareTimes(c.Op, t, c.Value.Time)
	case ColumnTypeEnum:
		switch c.Op {
		case OpIs:
			return value.AsText() == c.Value.Text
		case OpIn:
			return slices.Contains(c.Value.Set, value.AsText())
		}
	}
	return false
}

func matchText(op Op, stored, term string) bool {
	stored = strings.ToLower(stored)
	term = strings.ToLower(term)
	switch op {
	case OpContains:
		return strings.Contains(stored, term)
	case OpEquals:
		return stored == term
	case OpStartsWith:
		return strings.HasPrefix(stored, term)
	case OpEndsWith:
		return strings.HasSuffix(stored, term)
	}
	return false
}

func compareNumbers(op Op, stored, operand float64) bool {
	switch op {
	case OpEq:
		return stored == operand
	case OpGt:
		return stored > operand
	case OpGte:
		return stored >= operand
	case OpLt:
		return stored < operand
	case OpLte:
		return stored <= operand
	}
	return false
}

func compareTimes(op Op, stored, operand time.Time) bool {
	switch op {
	case OpEq:
		return stored.Equal(operand)
	case OpGt:
		return stored.After(operand)
	case OpGte:
		return !stored.Before(operand)
	case OpLt:
		return stored.Before(operand)
	case OpLte:
		return !stored.After(operand)
	}
	return false
}
