// Package sqlbuilder assembles parameterized Postgres statements. Placeholder
// indices are derived from the argument accumulator's length at push time, so
// a clause fragment can never reference the wrong position.
package sqlbuilder

import (
	"strconv"
	"strings"
)

// SelectBuilder accumulates the parts of a SELECT statement together with its
// ordered argument list. The zero value is not usable; construct with
// NewSelect. Builders are single-use and not safe for concurrent use.
type SelectBuilder struct {
	columns string
	from    string
	joins   []string
	wheres  []string
	having  []string
	groupBy string
	orderBy string
	limit   string
	args    []any
}

// NewSelect starts a SELECT of columns from the given table.
func NewSelect(columns, from string) *SelectBuilder {
	return &SelectBuilder{columns: columns, from: from}
}

// Arg appends v to the argument list and returns its placeholder ("$1",
// "$2", ...). The index always equals the argument's final position, which
// keeps fragments and arguments aligned by construction.
func (b *SelectBuilder) Arg(v any) string {
	b.args = append(b.args, v)
	return "$" + strconv.Itoa(len(b.args))
}

// bind pushes args in order, replacing each ? in the fragment with the
// placeholder returned for that push.
func (b *SelectBuilder) bind(fragment string, args ...any) string {
	for _, a := range args {
		fragment = strings.Replace(fragment, "?", b.Arg(a), 1)
	}
	return fragment
}

// Join appends an inner join clause ("table ON condition").
func (b *SelectBuilder) Join(clause string) *SelectBuilder {
	b.joins = append(b.joins, clause)
	return b
}

// Where appends a predicate. Multiple predicates are joined with AND. The
// WHERE keyword is only emitted when at least one predicate was added.
func (b *SelectBuilder) Where(pred string, args ...any) *SelectBuilder {
	b.wheres = append(b.wheres, b.bind(pred, args...))
	return b
}

// GroupBy sets the GROUP BY expression.
func (b *SelectBuilder) GroupBy(expr string) *SelectBuilder {
	b.groupBy = expr
	return b
}

// Having appends an aggregate predicate, AND-joined like Where.
func (b *SelectBuilder) Having(pred string, args ...any) *SelectBuilder {
	b.having = append(b.having, b.bind(pred, args...))
	return b
}

// OrderBy sets the ORDER BY expression.
func (b *SelectBuilder) OrderBy(expr string) *SelectBuilder {
	b.orderBy = expr
	return b
}

// Limit binds n as the statement's row bound through the accumulator, like
// any other argument.
func (b *SelectBuilder) Limit(n int) *SelectBuilder {
	b.limit = "LIMIT " + b.Arg(n)
	return b
}

// SQL renders the statement and returns it with the argument list. Clause
// order is fixed: WHERE, GROUP BY, HAVING, ORDER BY, LIMIT.
func (b *SelectBuilder) SQL() (string, []any) {
	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(b.columns)
	sb.WriteString("\nFROM ")
	sb.WriteString(b.from)
	for _, j := range b.joins {
		sb.WriteString("\nJOIN ")
		sb.WriteString(j)
	}
	if len(b.wheres) > 0 {
		sb.WriteString("\nWHERE ")
		sb.WriteString(strings.Join(b.wheres, " AND "))
	}
	if b.groupBy != "" {
		sb.WriteString("\nGROUP BY ")
		sb.WriteString(b.groupBy)
	}
	if len(b.having) > 0 {
		sb.WriteString("\nHAVING ")
		sb.WriteString(strings.Join(b.having, " AND "))
	}
	if b.orderBy != "" {
		sb.WriteString("\nORDER BY ")
		sb.WriteString(b.orderBy)
	}
	if b.limit != "" {
		sb.WriteString("\n")
		sb.WriteString(b.limit)
	}
	return sb.String(), b.args
}
