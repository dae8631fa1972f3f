// Insightboard - Survey Insight Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/insightboard

package filter

import (
	"net/url"
)

// Field identifies one of the filterable record attributes.
type Field string

// Recognized filter keys. The string values double as query parameter
// names and as record column names.
const (
	EndYear Field = "end_year"
	Topic   Field = "topic"
	Sector  Field = "sector"
	Region  Field = "region"
	PESTLE  Field = "pestle"
	Source  Field = "source"
	SWOT    Field = "swot"
	Country Field = "country"
	City    Field = "city"
)

// Fields lists every recognized filter key in canonical order.
// Conditions produced by Build always follow this order.
var Fields = []Field{EndYear, Topic, Sector, Region, PESTLE, Source, SWOT, Country, City}

// MatchMode describes how a condition compares its value.
type MatchMode int

const (
	// MatchExact requires the attribute to equal the value.
	MatchExact MatchMode = iota
	// MatchContains requires the attribute to contain the value,
	// ignoring case.
	MatchContains
)

// Mode returns the match mode applied to the field.
// end_year is matched exactly; every other field is a
// case-insensitive substring match.
func (f Field) Mode() MatchMode {
	if f == EndYear {
		return MatchExact
	}
	return MatchContains
}

// Column returns the record column the field filters on.
func (f Field) Column() string {
	return string(f)
}

// ParseField resolves a query parameter name to a Field.
func ParseField(name string) (Field, bool) {
	for _, f := range Fields {
		if string(f) == name {
			return f, true
		}
	}
	return "", false
}

// Condition is a single predicate over one record attribute.
type Condition struct {
	Field Field
	Value string
	Mode  MatchMode
}

// Spec is the conjunction of conditions derived from request parameters.
// A zero Spec matches every record.
type Spec struct {
	conditions []Condition
}

// Build derives a Spec from a parameter map. Unknown keys and empty
// values are ignored. Substring values are taken literally; they are
// never interpreted as patterns.
func Build(params map[string]string) Spec {
	var s Spec
	for _, f := range Fields {
		v, ok := params[string(f)]
		if !ok || v == "" {
			continue
		}
		s.conditions = append(s.conditions, Condition{Field: f, Value: v, Mode: f.Mode()})
	}
	return s
}

// FromQuery derives a Spec from URL query values. When a key is
// repeated the first value wins.
func FromQuery(q url.Values) Spec {
	params := make(map[string]string, len(Fields))
	for _, f := range Fields {
		if v := q.Get(string(f)); v != "" {
			params[string(f)] = v
		}
	}
	return Build(params)
}

// Conditions returns a copy of the conditions in canonical field order.
func (s Spec) Conditions() []Condition {
	out := make([]Condition, len(s.conditions))
	copy(out, s.conditions)
	return out
}
