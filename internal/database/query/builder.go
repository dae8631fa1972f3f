// Insightboard - Survey Insight Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/insightboard

// Package query provides SQL query building utilities for the database package.
package query

import (
	"fmt"
	"strings"

	"github.com/tomtom215/insightboard/internal/filter"
)

// WhereBuilder constructs SQL WHERE clauses with numbered placeholders
// ($1, $2, ...). Numbered placeholders are understood by both DuckDB and
// PostgreSQL, so the same predicate text serves every driver.
//
// Example usage:
//
//	wb := query.NewWhereBuilder()
//	wb.AddEquals("end_year", "2027")
//	wb.AddContainsFold("sector", "energy")
//	whereClause, args := wb.Build()
//	// end_year = $1 AND strpos(lower(sector), lower($2)) > 0
type WhereBuilder struct {
	clauses []string
	args    []interface{}
}

// NewWhereBuilder creates a new WhereBuilder instance.
func NewWhereBuilder() *WhereBuilder {
	return &WhereBuilder{
		clauses: []string{},
		args:    []interface{}{},
	}
}

// Arg binds v and returns its placeholder. Use it to compose clauses
// for AddClause or trailing LIMIT/OFFSET parameters.
func (wb *WhereBuilder) Arg(v interface{}) string {
	wb.args = append(wb.args, v)
	return fmt.Sprintf("$%d", len(wb.args))
}

// AddClause adds a raw WHERE clause. Any values it references must have
// been bound with Arg first.
func (wb *WhereBuilder) AddClause(clause string) *WhereBuilder {
	wb.clauses = append(wb.clauses, clause)
	return wb
}

// AddEquals adds "column = $n".
func (wb *WhereBuilder) AddEquals(column, value string) *WhereBuilder {
	return wb.AddClause(fmt.Sprintf("%s = %s", column, wb.Arg(value)))
}

// AddContainsFold adds a case-insensitive literal substring match.
// strpos is used instead of LIKE so '%' and '_' in value match themselves.
func (wb *WhereBuilder) AddContainsFold(column, value string) *WhereBuilder {
	return wb.AddClause(fmt.Sprintf("strpos(lower(%s), lower(%s)) > 0", column, wb.Arg(value)))
}

// AddNonEmpty adds "column <> ''".
func (wb *WhereBuilder) AddNonEmpty(column string) *WhereBuilder {
	return wb.AddClause(fmt.Sprintf("%s <> ''", column))
}

// AddSpec adds one clause per condition of spec, in canonical order.
func (wb *WhereBuilder) AddSpec(spec filter.Spec) *WhereBuilder {
	for _, c := range spec.Conditions() {
		switch c.Mode {
		case filter.MatchExact:
			wb.AddEquals(c.Field.Column(), c.Value)
		case filter.MatchContains:
			wb.AddContainsFold(c.Field.Column(), c.Value)
		}
	}
	return wb
}

// FromSpec returns a builder seeded with spec's conditions.
func FromSpec(spec filter.Spec) *WhereBuilder {
	return NewWhereBuilder().AddSpec(spec)
}

// Build constructs the final WHERE clause and returns it with arguments.
// Clauses are joined with "AND". Returns ("1=1", []) if no clauses were added.
//
// Example:
//
//	whereClause, args := wb.Build()
//	query := fmt.Sprintf("SELECT * FROM reports WHERE %s", whereClause)
//	db.QueryContext(ctx, query, args...)
func (wb *WhereBuilder) Build() (string, []interface{}) {
	if len(wb.clauses) == 0 {
		return "1=1", wb.args
	}
	return strings.Join(wb.clauses, " AND "), wb.args
}
