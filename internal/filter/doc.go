// Insightboard - Survey Insight Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/insightboard

/*
Package filter turns request parameters into a normalized filter
specification shared by record listing and every aggregation endpoint.

# Recognized Keys

Nine keys are recognized: end_year, topic, sector, region, pestle,
source, swot, country and city. Any other key is ignored, as is any
recognized key with an empty value.

# Match Semantics

  - end_year: exact equality
  - all other keys: case-insensitive substring containment

Values are always literal. A value such as "a.c" or "(x" matches only
text containing those exact characters; it is never treated as a regular
expression or LIKE pattern.

# Usage

	spec := filter.FromQuery(r.URL.Query())
	records, err := db.ListReports(ctx, spec, limit)

The database package translates a Spec into a parameterized WHERE clause
via query.WhereBuilder.
*/
package filter
