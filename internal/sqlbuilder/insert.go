package sqlbuilder

import (
	"strconv"
	"strings"
)

// InsertBuilder accumulates column/value pairs for an INSERT statement. The
// column list is fixed by the Set calls, so only whitelisted columns can ever
// reach the statement.
type InsertBuilder struct {
	table     string
	columns   []string
	values    []string
	args      []any
	returning string
}

// NewInsert starts an INSERT into the given table.
func NewInsert(table string) *InsertBuilder {
	return &InsertBuilder{table: table}
}

// Set appends a column and binds its value to the next placeholder.
func (b *InsertBuilder) Set(column string, v any) *InsertBuilder {
	b.columns = append(b.columns, column)
	b.args = append(b.args, v)
	b.values = append(b.values, "$"+strconv.Itoa(len(b.args)))
	return b
}

// Returning adds a RETURNING clause.
func (b *InsertBuilder) Returning(columns string) *InsertBuilder {
	b.returning = columns
	return b
}

// SQL renders the statement and returns it with the argument list.
func (b *InsertBuilder) SQL() (string, []any) {
	var sb strings.Builder
	sb.WriteString("INSERT INTO ")
	sb.WriteString(b.table)
	sb.WriteString(" (")
	sb.WriteString(strings.Join(b.columns, ", "))
	sb.WriteString(")\nVALUES (")
	sb.WriteString(strings.Join(b.values, ", "))
	sb.WriteString(")")
	if b.returning != "" {
		sb.WriteString("\nRETURNING ")
		sb.WriteString(b.returning)
	}
	return sb.String(), b.args
}
