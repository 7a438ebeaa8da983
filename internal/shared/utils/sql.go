package utils

import (
	"fmt"
	"strings"
)

// UpdateBuilder assembles a partial UPDATE touching only the columns that were Set.
type UpdateBuilder struct {
	columns []string
	args    []any
}

func NewUpdateBuilder() *UpdateBuilder {
	return &UpdateBuilder{}
}

// Set adds "column = $n". Column names are never user input.
func (b *UpdateBuilder) Set(column string, value any) *UpdateBuilder {
	b.args = append(b.args, value)
	b.columns = append(b.columns, fmt.Sprintf("%s = $%d", column, len(b.args)))
	return b
}

// Build renders the statement with the key as the last placeholder.
func (b *UpdateBuilder) Build(table, keyColumn string, key any, returning ...string) (string, []any) {
	args := append(append([]any{}, b.args...), key)

	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE %s = $%d",
		table,
		strings.Join(b.columns, ", "),
		keyColumn,
		len(args),
	)
	if len(returning) > 0 {
		query += " RETURNING " + strings.Join(returning, ", ")
	}
	return query, args
}
