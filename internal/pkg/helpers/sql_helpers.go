package helpers

import (
	"fmt"
	"strings"
)

// WhereBuilder accumulates AND-ed SQL conditions with positional pgx arguments
type WhereBuilder struct {
	conditions []string
	args       []interface{}
}

// NewWhereBuilder starts an empty builder
func NewWhereBuilder() *WhereBuilder {
	return &WhereBuilder{}
}

// Add appends a condition whose "?" placeholder is replaced by the next $n argument
func (b *WhereBuilder) Add(condition string, arg interface{}) *WhereBuilder {
	b.args = append(b.args, arg)
	b.conditions = append(b.conditions, strings.Replace(condition, "?", fmt.Sprintf("$%d", len(b.args)), 1))
	return b
}

// AddRaw appends a condition without arguments
func (b *WhereBuilder) AddRaw(condition string) *WhereBuilder {
	b.conditions = append(b.conditions, condition)
	return b
}

// AddIfNotEmpty appends a case-insensitive substring match when value is not blank
func (b *WhereBuilder) AddIfNotEmpty(column, value string) *WhereBuilder {
	if strings.TrimSpace(value) == "" {
		return b
	}
	return b.Add(column+" ILIKE ?", ContainsPattern(value))
}

// AddSearch matches pattern against any of columns with one shared argument
func (b *WhereBuilder) AddSearch(query string, columns ...string) *WhereBuilder {
	if strings.TrimSpace(query) == "" || len(columns) == 0 {
		return b
	}
	b.args = append(b.args, ContainsPattern(query))
	placeholder := fmt.Sprintf("$%d", len(b.args))
	parts := make([]string, 0, len(columns))
	for _, col := range columns {
		parts = append(parts, col+" ILIKE "+placeholder)
	}
	b.conditions = append(b.conditions, "("+strings.Join(parts, " OR ")+")")
	return b
}

// Build returns the WHERE clause (empty when there are no conditions) and its arguments
func (b *WhereBuilder) Build() (string, []interface{}) {
	if len(b.conditions) == 0 {
		return "", b.args
	}
	return " WHERE " + strings.Join(b.conditions, " AND "), b.args
}

// ContainsPattern builds an ILIKE pattern matching value anywhere, escaping wildcards
func ContainsPattern(value string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(strings.TrimSpace(value)) + "%"
}
