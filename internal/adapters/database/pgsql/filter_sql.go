package pgsql

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/property_management_app/internal/core/domain"
)

var sqlOperators = map[domain.Operator]string{
	domain.OpEq:  "=",
	domain.OpGte: ">=",
	domain.OpLte: "<=",
	domain.OpGt:  ">",
	domain.OpLt:  "<",
}

// isoDatePattern guards the timestamptz cast so rows holding non-date text are skipped instead of failing the query.
const isoDatePattern = `'^\d{4}-\d{2}-\d{2}'`

// whereBuilder accumulates predicates and their positional arguments.
type whereBuilder struct {
	clauses []string
	args    []any
}

func (b *whereBuilder) arg(v any) string {
	b.args = append(b.args, v)
	return fmt.Sprintf("$%d", len(b.args))
}

func (b *whereBuilder) add(clause string) {
	b.clauses = append(b.clauses, clause)
}

func (b *whereBuilder) sql() string {
	return strings.Join(b.clauses, " AND ")
}

// compileFilter appends one predicate per condition. Field names and values are always bound as parameters.
func compileFilter(b *whereBuilder, filter domain.Filter) error {
	if err := filter.Validate(); err != nil {
		return err
	}

	for _, c := range filter.Conditions() {
		field := b.arg(c.Field)
		text := fmt.Sprintf("(data ->> %s::text)", field)

		switch v := c.Value.(type) {
		case []string:
			b.add(fmt.Sprintf("%s = ANY(%s::text[])", text, b.arg(v)))
		case time.Time:
			op := sqlOperators[c.Op]
			b.add(fmt.Sprintf("(CASE WHEN %s ~ %s THEN %s::timestamptz END) %s %s::timestamptz",
				text, isoDatePattern, text, op, b.arg(v)))
		case string:
			op := sqlOperators[c.Op]
			b.add(fmt.Sprintf("%s %s %s::text", text, op, b.arg(v)))
		default:
			return fmt.Errorf("unsupported filter value %T on field %s", c.Value, c.Field)
		}
	}
	return nil
}
