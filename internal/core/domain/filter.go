package domain

import (
	"fmt"
	"strings"
	"time"
)

// Operator is a comparison supported by the record store.
type Operator string

const (
	OpEq  Operator = "eq"
	OpIn  Operator = "in"
	OpGte Operator = "gte"
	OpLte Operator = "lte"
	OpGt  Operator = "gt"
	OpLt  Operator = "lt"
)

// IsValid reports whether the store understands the operator.
func (o Operator) IsValid() bool {
	switch o {
	case OpEq, OpIn, OpGte, OpLte, OpGt, OpLt:
		return true
	}
	return false
}

// Condition is a single field predicate. Value is a string or a time.Time,
// except for OpIn where it is a []string.
type Condition struct {
	Field string
	Op    Operator
	Value any
}

// Eq matches records whose field equals value.
func Eq(field string, value any) Condition {
	return Condition{Field: field, Op: OpEq, Value: normalizeValue(value)}
}

// In matches records whose field is one of values.
func In(field string, values ...string) Condition {
	vs := make([]string, len(values))
	copy(vs, values)
	return Condition{Field: field, Op: OpIn, Value: vs}
}

// Gte matches records whose field is >= value.
func Gte(field string, value any) Condition {
	return Condition{Field: field, Op: OpGte, Value: normalizeValue(value)}
}

// Lte matches records whose field is <= value.
func Lte(field string, value any) Condition {
	return Condition{Field: field, Op: OpLte, Value: normalizeValue(value)}
}

// Gt matches records whose field is > value.
func Gt(field string, value any) Condition {
	return Condition{Field: field, Op: OpGt, Value: normalizeValue(value)}
}

// Lt matches records whose field is < value.
func Lt(field string, value any) Condition {
	return Condition{Field: field, Op: OpLt, Value: normalizeValue(value)}
}

func normalizeValue(v any) any {
	if t, ok := v.(time.Time); ok {
		return t.UTC()
	}
	return v
}

// Filter is a conjunction of conditions. The zero value matches every record.
type Filter struct {
	conditions []Condition
}

// Where builds a filter from conditions.
func Where(conds ...Condition) Filter {
	return Filter{}.And(conds...)
}

// And returns a new filter with the extra conditions appended.
func (f Filter) And(conds ...Condition) Filter {
	out := make([]Condition, 0, len(f.conditions)+len(conds))
	out = append(out, f.conditions...)
	out = append(out, conds...)
	return Filter{conditions: out}
}

// Conditions returns a copy of the filter's conditions.
func (f Filter) Conditions() []Condition {
	out := make([]Condition, len(f.conditions))
	copy(out, f.conditions)
	return out
}

// IsEmpty reports whether the filter has no conditions.
func (f Filter) IsEmpty() bool {
	return len(f.conditions) == 0
}

// Validate checks the filter against the record store's capability contract.
func (f Filter) Validate() error {
	for _, c := range f.conditions {
		if strings.TrimSpace(c.Field) == "" {
			return fmt.Errorf("filter condition has an empty field name")
		}
		if !c.Op.IsValid() {
			return fmt.Errorf("filter operator %q on field %s is not supported", c.Op, c.Field)
		}
		switch v := c.Value.(type) {
		case []string:
			if c.Op != OpIn {
				return fmt.Errorf("operator %s on field %s does not accept a list", c.Op, c.Field)
			}
			if len(v) == 0 {
				return fmt.Errorf("in filter on field %s needs at least one value", c.Field)
			}
		case string, time.Time:
			if c.Op == OpIn {
				return fmt.Errorf("in filter on field %s needs a list of values", c.Field)
			}
		default:
			return fmt.Errorf("filter value of type %T on field %s is not supported", c.Value, c.Field)
		}
	}
	return nil
}

// String renders the filter for logs.
func (f Filter) String() string {
	if len(f.conditions) == 0 {
		return "<all>"
	}
	parts := make([]string, 0, len(f.conditions))
	for _, c := range f.conditions {
		parts = append(parts, fmt.Sprintf("%s %s %s", c.Field, c.Op, formatValue(c.Value)))
	}
	return strings.Join(parts, " AND ")
}

func formatValue(v any) string {
	switch val := v.(type) {
	case time.Time:
		return val.Format(time.RFC3339)
	case []string:
		return "[" + strings.Join(val, ",") + "]"
	default:
		return fmt.Sprintf("%q", val)
	}
}
