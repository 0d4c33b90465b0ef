package database

import (
	"strings"
)

// QueryBuilder rewrites ? placeholders into the dialect's parameter syntax
type QueryBuilder struct {
	dialect Dialect
}

// NewQueryBuilder creates a QueryBuilder for a dialect
func NewQueryBuilder(dialect Dialect) *QueryBuilder {
	return &QueryBuilder{dialect: dialect}
}

// Build numbers each ? outside a quoted literal and asks the dialect how to
// spell it. SQLite spells every position as "?", so its queries come back
// unchanged; Postgres yields $1, $2 and so on.
func (qb *QueryBuilder) Build(query string) string {
	var out strings.Builder
	out.Grow(len(query))

	position := 0
	quoted := false
	for i := 0; i < len(query); i++ {
		ch := query[i]
		switch {
		case ch == '\'':
			quoted = !quoted
			out.WriteByte(ch)
		case ch == '?' && !quoted:
			position++
			out.WriteString(qb.dialect.Placeholder(position))
		default:
			out.WriteByte(ch)
		}
	}
	return out.String()
}

// BuildWithReturning builds an INSERT and appends a RETURNING clause when the
// dialect cannot report the inserted id through LastInsertId
func (qb *QueryBuilder) BuildWithReturning(query string, column string) string {
	built := qb.Build(query)
	if qb.dialect.SupportsLastInsertID() {
		return built
	}
	return built + qb.dialect.ReturningClause(column)
}
