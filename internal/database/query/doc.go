// Insightboard - Survey Insight Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/insightboard

// Package query renders filter specs into parameterized SQL predicates.
//
// # Overview
//
// WhereBuilder collects clauses and their bound arguments and joins them
// with AND:
//
//	wb := query.FromSpec(filter.Build(map[string]string{
//	    "end_year": "2027",
//	    "sector":   "energy",
//	}))
//	whereClause, args := wb.Build()
//	// Result: "end_year = $1 AND strpos(lower(sector), lower($2)) > 0"
//	// Args: ["2027", "energy"]
//
// Trailing parameters such as LIMIT are bound with Arg so numbering stays
// consistent:
//
//	sql := fmt.Sprintf("SELECT ... WHERE %s LIMIT %s", whereClause, wb.Arg(limit))
//
// # Matching Rules
//
//   - Exact conditions render as "column = $n".
//   - Substring conditions render as strpos(lower(column), lower($n)) > 0.
//     User input is never treated as a pattern; '%', '_', '.' and '(' match
//     themselves.
//
// # SQL Injection Prevention
//
// Values are always bound as arguments. Column names come from the
// enumerated filter.Field set and never from request input.
//
// # Thread Safety
//
// WhereBuilder instances are not thread-safe. Create a new instance per query.
package query
