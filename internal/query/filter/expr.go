package filter

import (
	"strings"
	"time"
)

// Expr is a node of the compiled predicate.
type Expr interface {
	isExpr()
}

// And holds when every term holds. An empty And always holds.
type And struct {
	Terms []Expr
}

// Or holds when any term holds.
type Or struct {
	Terms []Expr
}

type Comparison struct {
	Field FieldRef
	Op    Op
	Value Literal
}

func (And) isExpr()        {}
func (Or) isExpr()         {}
func (Comparison) isExpr() {}

// FieldRef points either at a built-in column or, when Custom is set, at a key
// of the custom field bag. Kind decides how stored values are compared.
type FieldRef struct {
	ID     string
	Column string
	Custom bool
	Kind   ColumnType
}

func CustomField(key string, kind ColumnType) FieldRef {
	return FieldRef{ID: key, Column: key, Custom: true, Kind: kind}
}

type Op string

const (
	OpContains   Op = "contains"
	OpEquals     Op = "equals"
	OpStartsWith Op = "starts_with"
	OpEndsWith   Op = "ends_with"

	OpEq  Op = "="
	OpGt  Op = ">"
	OpGte Op = ">="
	OpLt  Op = "<"
	OpLte Op = "<="

	OpIs Op = "is"
	OpIn Op = "in"
)

type Literal struct {
	Text   string
	Number float64
	Time   time.Time
	Set    []string
}

// Conjoin flattens nested conjunctions and drops nil terms.
func Conjoin(terms ...Expr) And {
	result := And{Terms: make([]Expr, 0, len(terms))}
	for _, term := range terms {
		switch t := term.(type) {
		case nil:
			continue
		case And:
			result.Terms = append(result.Terms, t.Terms...)
		default:
			result.Terms = append(result.Terms, term)
		}
	}
	return result
}

func isBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}
