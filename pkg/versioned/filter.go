package versioned

import (
	"fmt"
	"strings"

	"github.com/lib/pq"
)

// Op is a comparison operator of a predicate.
type Op int

// Supported operators.
const (
	OpEq Op = iota
	OpAny
	OpGte
	OpLte
	OpPresent
	OpContains
)

// Predicate constrains one column.
type Predicate struct {
	Column string
	Op     Op
	Value  interface{}
}

func (p Predicate) render(placeholder int) string {
	switch p.Op {
	case OpAny:
		return fmt.Sprintf("%s = ANY($%d)", p.Column, placeholder)
	case OpGte:
		return fmt.Sprintf("%s >= $%d", p.Column, placeholder)
	case OpLte:
		return fmt.Sprintf("%s <= $%d", p.Column, placeholder)
	case OpPresent:
		return fmt.Sprintf("(%s IS NOT NULL) = $%d", p.Column, placeholder)
	case OpContains:
		return fmt.Sprintf("%s ILIKE '%%' || $%d || '%%'", p.Column, placeholder)
	default:
		return fmt.Sprintf("%s = $%d", p.Column, placeholder)
	}
}

// Filter is a conjunction of predicates. Helpers ignore unset (nil) inputs so
// an optional filter field that was not provided leaves the query unconstrained.
type Filter struct {
	predicates []Predicate
	limit      int
	offset     int
}

// NewFilter returns an empty filter.
func NewFilter() *Filter {
	return &Filter{}
}

// Where appends a raw predicate.
func (f *Filter) Where(p Predicate) *Filter {
	f.predicates = append(f.predicates, p)
	return f
}

// Int64s constrains column to one of values. A nil slice is ignored; an empty
// non-nil slice matches nothing.
func (f *Filter) Int64s(column string, values []int64) *Filter {
	if values == nil {
		return f
	}
	return f.Where(Predicate{Column: column, Op: OpAny, Value: pq.Array(values)})
}

// Strings constrains column to one of values with the same nil semantics as Int64s.
func (f *Filter) Strings(column string, values []string) *Filter {
	if values == nil {
		return f
	}
	return f.Where(Predicate{Column: column, Op: OpAny, Value: pq.Array(values)})
}

// Eq constrains column to value when value is provided.
func (f *Filter) Eq(column string, value interface{}) *Filter {
	if isNil(value) {
		return f
	}
	return f.Where(Predicate{Column: column, Op: OpEq, Value: deref(value)})
}

// Min constrains column to be at least value.
func (f *Filter) Min(column string, value *int64) *Filter {
	if value == nil {
		return f
	}
	return f.Where(Predicate{Column: column, Op: OpGte, Value: *value})
}

// Max constrains column to be at most value.
func (f *Filter) Max(column string, value *int64) *Filter {
	if value == nil {
		return f
	}
	return f.Where(Predicate{Column: column, Op: OpLte, Value: *value})
}

// Present constrains whether a nullable column holds a value.
func (f *Filter) Present(column string, value *bool) *Filter {
	if value == nil {
		return f
	}
	return f.Where(Predicate{Column: column, Op: OpPresent, Value: *value})
}

// Contains performs a case-insensitive substring match.
func (f *Filter) Contains(column string, value *string) *Filter {
	if value == nil {
		return f
	}
	return f.Where(Predicate{Column: column, Op: OpContains, Value: *value})
}

// Page bounds the result set. Non-positive limits disable paging.
func (f *Filter) Page(limit, offset int) *Filter {
	f.limit = limit
	f.offset = offset
	return f
}

// Len returns the number of predicates.
func (f *Filter) Len() int {
	if f == nil {
		return 0
	}
	return len(f.predicates)
}

// Build renders the WHERE clause numbering placeholders from start.
func (f *Filter) Build(start int) (string, []interface{}) {
	if f.Len() == 0 {
		return "", nil
	}
	conds := make([]string, 0, len(f.predicates))
	args := make([]interface{}, 0, len(f.predicates))
	for _, p := range f.predicates {
		conds = append(conds, p.render(start+len(args)))
		args = append(args, p.Value)
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (f *Filter) pageClause() string {
	if f == nil || f.limit <= 0 {
		return ""
	}
	if f.offset > 0 {
		return fmt.Sprintf(" LIMIT %d OFFSET %d", f.limit, f.offset)
	}
	return fmt.Sprintf(" LIMIT %d", f.limit)
}

func isNil(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return true
	case *int64:
		return v == nil
	case *string:
		return v == nil
	case *bool:
		return v == nil
	}
	return false
}

func deref(value interface{}) interface{} {
	switch v := value.(type) {
	case *int64:
		return *v
	case *string:
		return *v
	case *bool:
		return *v
	}
	return value
}
