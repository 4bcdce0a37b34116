package filter

import (
	"crm-server/internal/shared_kernel/domain"
	"log/slog"
	"strings"
	"time"
)

type Query struct {
	OwnerID string
	Search  string
	Filters []ColumnFilter
}

// Compiler turns a query into a predicate over one entity type. Calendar days
// for date filters are taken in the compiler's location.
type Compiler struct {
	catalog  Catalog
	location *time.Location
}

func NewCompiler(catalog Catalog, location *time.Location) *Compiler {
	if location == nil {
		location = time.UTC
	}
	return &Compiler{
		catalog:  catalog,
		location: location,
	}
}

func (c *Compiler) Catalog() Catalog {
	return c.catalog
}

// Compile returns the conjunction of the ownership restriction, the search and
// every usable filter. Filters that cannot be applied are dropped.
func (c *Compiler) Compile(query Query, definitions []Definition) And {
	terms := []Expr{
		Comparison{Field: OwnerField, Op: OpIs, Value: Literal{Text: query.OwnerID}},
		c.catalog.Search(query.Search),
	}

	types := make(map[string]domain.FieldType, len(definitions))
	for _, definition := range definitions {
		types[definition.Key] = definition.Type
	}

	for _, columnFilter := range query.Filters {
		expr, ok := c.compileFilter(columnFilter, types)
		if !ok {
			slog.Debug("dropping column filter",
				slog.String("entity_type", c.catalog.EntityType().String()),
				slog.String("column", columnFilter.ColumnID),
				slog.String("operator", string(columnFilter.Operator)))
			continue
		}
		terms = append(terms, expr)
	}

	return Conjoin(terms...)
}

func (c *Compiler) compileFilter(columnFilter ColumnFilter, types map[string]domain.FieldType) (Expr, bool) {
	var refs []FieldRef
	var columnType ColumnType

	if field, found := c.catalog.Field(columnFilter.ColumnID); found {
		columnType = field.Type
		refs = field.Columns
	} else if columnFilter.ColumnID != "" {
		if fieldType, declared := types[columnFilter.ColumnID]; declared {
			columnType = ColumnTypeOf(fieldType)
		} else {
			columnType = columnFilter.ColumnType
		}
		refs = []FieldRef{CustomField(columnFilter.ColumnID, columnType)}
	}

	if len(refs) == 0 || !Supports(columnType, columnFilter.Operator) {
		return nil, false
	}

	build, ok := c.builder(columnType, columnFilter)
	if !ok {
		return nil, false
	}

	if len(refs) == 1 {
		return build(refs[0]), true
	}
	alternatives := make([]Expr, len(refs))
	for i, ref := range refs {
		alternatives[i] = build(ref)
	}
	return Or{Terms: alternatives}, true
}

type exprBuilder func(ref FieldRef) Expr

func (c *Compiler) builder(columnType ColumnType, columnFilter ColumnFilter) (exprBuilder, bool) {
	switch columnType {
	case ColumnTypeText:
		return textBuilder(columnFilter)
	case ColumnTypeNumber:
		return numberBuilder(columnFilter)
	case ColumnTypeDate:
		return c.dateBuilder(columnFilter)
	case ColumnTypeEnum:
		return enumBuilder(columnFilter)
	}
	return nil, false
}

var _textOps = map[Operator]Op{
	OperatorContains:   OpContains,
	OperatorEquals:     OpEquals,
	OperatorStartsWith: OpStartsWith,
	OperatorEndsWith:   OpEndsWith,
}

func textBuilder(columnFilter ColumnFilter) (exprBuilder, bool) {
	if isBlank(columnFilter.Value) {
		return nil, false
	}
	op := _textOps[columnFilter.Operator]
	value := Literal{Text: columnFilter.Value}
	return func(ref FieldRef) Expr {
		return Comparison{Field: ref, Op: op, Value: value}
	}, true
}

var _numberOps = map[Operator]Op{
	OperatorGt:  OpGt,
	OperatorLt:  OpLt,
	OperatorGte: OpGte,
	OperatorLte: OpLte,
	OperatorEq:  OpEq,
}

func numberBuilder(columnFilter ColumnFilter) (exprBuilder, bool) {
	number, ok := domain.ParseNumber(columnFilter.Value)
	if !ok {
		return nil, false
	}
	op := _numberOps[columnFilter.Operator]
	return func(ref FieldRef) Expr {
		return Comparison{Field: ref, Op: op, Value: Literal{Number: number}}
	}, true
}

// dateBuilder expands date operators into bounds. A date without a time part
// stands for the whole calendar day.
func (c *Compiler) dateBuilder(columnFilter ColumnFilter) (exprBuilder, bool) {
	from, dateOnly, err := domain.ParseISODate(columnFilter.Value, c.location)
	if err != nil {
		return nil, false
	}

	at := func(ref FieldRef, op Op, t time.Time) Expr {
		return Comparison{Field: ref, Op: op, Value: Literal{Time: t}}
	}

	switch columnFilter.Operator {
	case OperatorBefore:
		return func(ref FieldRef) Expr {
			return at(ref, OpLt, from)
		}, true
	case OperatorAfter:
		if dateOnly {
			next := nextDay(from)
			return func(ref FieldRef) Expr {
				return at(ref, OpGte, next)
			}, true
		}
		return func(ref FieldRef) Expr {
			return at(ref, OpGt, from)
		}, true
	case OperatorOn:
		start := startOfDay(from)
		end := nextDay(from)
		return func(ref FieldRef) Expr {
			return And{Terms: []Expr{at(ref, OpGte, start), at(ref, OpLt, end)}}
		}, true
	case OperatorBetween:
		to, toDateOnly, err := domain.ParseISODate(columnFilter.Value2, c.location)
		if err != nil {
			return nil, false
		}
		return func(ref FieldRef) Expr {
			upper := at(ref, OpLte, to)
			if toDateOnly {
				upper = at(ref, OpLt, nextDay(to))
			}
			return And{Terms: []Expr{at(ref, OpGte, from), upper}}
		}, true
	}
	return nil, false
}

func enumBuilder(columnFilter ColumnFilter) (exprBuilder, bool) {
	switch columnFilter.Operator {
	case OperatorEquals:
		value := strings.TrimSpace(columnFilter.Value)
		if value == "" {
			return nil, false
		}
		return func(ref FieldRef) Expr {
			return Comparison{Field: ref, Op: OpIs, Value: Literal{Text: value}}
		}, true
	case OperatorIn:
		set := splitOptions(columnFilter.Value)
		if len(set) == 0 {
			return nil, false
		}
		return func(ref FieldRef) Expr {
			return Comparison{Field: ref, Op: OpIn, Value: Literal{Set: set}}
		}, true
	}
	return nil, false
}

func splitOptions(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			result = append(result, part)
		}
	}
	return result
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func nextDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day+1, 0, 0, 0, 0, t.Location())
}
