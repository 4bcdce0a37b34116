package filter

import (
	"crm-server/internal/shared_kernel/domain"
	"errors"
	"fmt"
	"strings"
)

type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

var (
	ErrUnsupportedDialect   = errors.New("unsupported SQL dialect")
	ErrUnsupportedOperation = errors.New("unsupported comparison")
)

// BagColumn holds the custom field bag in every record table.
const BagColumn = "custom_fields"

const (
	_postgresNumericPattern = `^\s*[-+]?(\d+(\.\d*)?|\.\d+)([eE][-+]?\d+)?\s*$`
	_postgresDatePattern    = `^\d{4}-(0[1-9]|1[0-2])-(0[1-9]|[12]\d|3[01])([T ]([01]\d|2[0-3]):[0-5]\d(:[0-5]\d(\.\d+)?)?(Z|[+-]\d{2}(:?\d{2})?)?)?$`

	// sqlite has no regular expressions. A value is numeric when it holds a
	// digit and matches none of the malformed shapes below, which together
	// spell out the same grammar as _postgresNumericPattern. CAST alone reads
	// any numeric prefix, so "500-1" would otherwise compare as 500.
	_sqliteHasDigit = `*[0-9]*`

	_sqliteTimeLayout = domain.ISODateLayout
)

var _sqliteMalformedNumbers = []string{
	`*[^0-9.eE+-]*`, // foreign character
	`*.*.*`,         // second point
	`*[eE]*[eE]*`,   // second exponent
	`*[eE]*.*`,      // point inside the exponent
	`*[^eE][+-]*`,   // sign neither leading nor after the exponent
	`*[+-]`,         // dangling sign
	`*[eE]`,         // empty exponent
	`[eE]*`,         // exponent without mantissa
	`*[^0-9.][eE]*`, // exponent after a sign
	`.[^0-9]*`,      // lone leading point
	`*[^0-9].[^0-9]*`,
}

func ParseDialect(name string) (Dialect, error) {
	switch Dialect(name) {
	case DialectPostgres, DialectSQLite:
		return Dialect(name), nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedDialect, name)
}

// ToSQL lowers the predicate to a WHERE fragment with "?" placeholders. Every
// user supplied value, including bag keys and patterns, is a bound argument.
func ToSQL(expr Expr, dialect Dialect) (string, []any, error) {
	if dialect != DialectPostgres && dialect != DialectSQLite {
		return "", nil, fmt.Errorf("%w: %s", ErrUnsupportedDialect, dialect)
	}
	b := &sqlBuilder{dialect: dialect}
	if err := b.write(expr); err != nil {
		return "", nil, err
	}
	return b.sb.String(), b.args, nil
}

type sqlBuilder struct {
	dialect Dialect
	sb      strings.Builder
	args    []any
}

func (b *sqlBuilder) text(parts ...string) {
	for _, part := range parts {
		b.sb.WriteString(part)
	}
}

func (b *sqlBuilder) arg(values ...any) {
	b.args = append(b.args, values...)
}

func (b *sqlBuilder) write(expr Expr) error {
	switch e := expr.(type) {
	case nil:
		b.text("1 = 1")
	case And:
		return b.junction(e.Terms, " AND ", "1 = 1")
	case Or:
		return b.junction(e.Terms, " OR ", "1 = 0")
	case Comparison:
		return b.comparison(e)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedOperation, expr)
	}
	return nil
}

func (b *sqlBuilder) junction(terms []Expr, separator, empty string) error {
	if len(terms) == 0 {
		b.text(empty)
		return nil
	}
	b.text("(")
	for i, term := range terms {
		if i > 0 {
			b.text(separator)
		}
		if err := b.write(term); err != nil {
			return err
		}
	}
	b.text(")")
	return nil
}

// valueText writes the stored value as text.
func (b *sqlBuilder) valueText(ref FieldRef) {
	if !ref.Custom {
		b.text(ref.Column)
		return
	}
	switch b.dialect {
	case DialectPostgres:
		b.text("(", BagColumn, " ->> ?)")
		b.arg(ref.Column)
	case DialectSQLite:
		// ->> yields 1 and 0 for JSON booleans.
		b.text("(CASE json_type(", BagColumn, ", ?) WHEN 'true' THEN 'true' WHEN 'false' THEN 'false' ELSE ", BagColumn, " ->> ? END)")
		b.arg(fmt.Sprintf(`$."%s"`, ref.Column), ref.Column)
	}
}

func (b *sqlBuilder) comparison(c Comparison) error {
	switch c.Field.Kind {
	case ColumnTypeText:
		return b.textComparison(c)
	case ColumnTypeNumber:
		return b.numberComparison(c)
	case ColumnTypeDate:
		return b.dateComparison(c)
	case ColumnTypeEnum:
		return b.enumComparison(c)
	}
	return fmt.Errorf("%w: %s on %s", ErrUnsupportedOperation, c.Op, c.Field.Kind)
}

func (b *sqlBuilder) textComparison(c Comparison) error {
	var pattern string
	switch c.Op {
	case OpEquals:
		b.text("LOWER(")
		b.valueText(c.Field)
		b.text(") = LOWER(?)")
		b.arg(c.Value.Text)
		return nil
	case OpContains:
		pattern = "%" + escapeLike(c.Value.Text) + "%"
	case OpStartsWith:
		pattern = escapeLike(c.Value.Text) + "%"
	case OpEndsWith:
		pattern = "%" + escapeLike(c.Value.Text)
	default:
		return fmt.Errorf("%w: %s on text", ErrUnsupportedOperation, c.Op)
	}
	b.text("LOWER(")
	b.valueText(c.Field)
	b.text(`) LIKE LOWER(?) ESCAPE '\'`)
	b.arg(pattern)
	return nil
}

func (b *sqlBuilder) numberComparison(c Comparison) error {
	if !isOrdered(c.Op) {
		return fmt.Errorf("%w: %s on number", ErrUnsupportedOperation, c.Op)
	}
	switch b.dialect {
	case DialectPostgres:
		b.text("(CASE WHEN ")
		b.valueText(c.Field)
		b.text(" ~ ? THEN CAST(")
		b.arg(_postgresNumericPattern)
		b.valueText(c.Field)
		b.text(" AS NUMERIC) END) ", string(c.Op), " ?")
	case DialectSQLite:
		b.text("(CASE WHEN trim(")
		b.valueText(c.Field)
		b.text(") GLOB ?")
		b.arg(_sqliteHasDigit)
		for _, pattern := range _sqliteMalformedNumbers {
			b.text(" AND trim(")
			b.valueText(c.Field)
			b.text(") NOT GLOB ?")
			b.arg(pattern)
		}
		b.text(" THEN CAST(trim(")
		b.valueText(c.Field)
		b.text(") AS REAL) END) ", string(c.Op), " ?")
	}
	b.arg(c.Value.Number)
	return nil
}

func (b *sqlBuilder) dateComparison(c Comparison) error {
	if !isOrdered(c.Op) {
		return fmt.Errorf("%w: %s on date", ErrUnsupportedOperation, c.Op)
	}
	switch b.dialect {
	case DialectPostgres:
		if c.Field.Custom {
			b.text("(CASE WHEN ")
			b.valueText(c.Field)
			b.text(" ~ ? THEN CAST(")
			b.arg(_postgresDatePattern)
			b.valueText(c.Field)
			b.text(" AS TIMESTAMPTZ) END)")
		} else {
			b.text(c.Field.Column)
		}
		b.text(" ", string(c.Op), " ?")
		b.arg(c.Value.Time.UTC())
	case DialectSQLite:
		b.text("julianday(")
		b.valueText(c.Field)
		b.text(") ", string(c.Op), " julianday(?)")
		b.arg(c.Value.Time.UTC().Format(_sqliteTimeLayout))
	}
	return nil
}

func (b *sqlBuilder) enumComparison(c Comparison) error {
	switch c.Op {
	case OpIs:
		b.valueText(c.Field)
		b.text(" = ?")
		b.arg(c.Value.Text)
	case OpIn:
		b.valueText(c.Field)
		b.text(" IN ?")
		b.arg(c.Value.Set)
	default:
		return fmt.Errorf("%w: %s on enum", ErrUnsupportedOperation, c.Op)
	}
	return nil
}

func isOrdered(op Op) bool {
	switch op {
	case OpEq, OpGt, OpGte, OpLt, OpLte:
		return true
	}
	return false
}

var _likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(value string) string {
	return _likeEscaper.Replace(value)
}
