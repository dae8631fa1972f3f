// Insightboard - Survey Insight Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/insightboard

/*
aggregates.go - Aggregation View Models

Each aggregation view groups reports by one attribute and reports
per-group statistics. The group key is serialized as "_id" for
compatibility with existing dashboard clients.

Views:
  - SectorIntensity: GET /api/data/intensity
  - RegionLikelihood: GET /api/data/likelihood
  - CountryRelevance: GET /api/data/relevance (top 20)
  - YearMetrics: GET /api/data/by-year
  - TopicStats: GET /api/data/topics (top 20)

Averages are arithmetic means over every record in the group, zero
scores included.
*/

package models

// SectorIntensity summarizes intensity per sector.
type SectorIntensity struct {
	Sector       string  `json:"_id"`
	AvgIntensity float64 `json:"avgIntensity"`
	MaxIntensity float64 `json:"maxIntensity"`
	Count        int64   `json:"count"`
}

// RegionLikelihood summarizes likelihood per region.
type RegionLikelihood struct {
	Region        string  `json:"_id"`
	AvgLikelihood float64 `json:"avgLikelihood"`
	Count         int64   `json:"count"`
}

// CountryRelevance summarizes relevance per country.
type CountryRelevance struct {
	Country      string  `json:"_id"`
	AvgRelevance float64 `json:"avgRelevance"`
	Count        int64   `json:"count"`
}

// YearMetrics summarizes all three scores per end year.
type YearMetrics struct {
	EndYear       string  `json:"_id"`
	Count         int64   `json:"count"`
	AvgIntensity  float64 `json:"avgIntensity"`
	AvgLikelihood float64 `json:"avgLikelihood"`
	AvgRelevance  float64 `json:"avgRelevance"`
}

// TopicStats summarizes topic frequency and intensity.
type TopicStats struct {
	Topic        string  `json:"_id"`
	Count        int64   `json:"count"`
	AvgIntensity float64 `json:"avgIntensity"`
}

// FilterOptions lists the distinct non-empty values of every filterable
// attribute. Slices are never nil so they serialize as [].
type FilterOptions struct {
	Sectors   []string `json:"sectors"`
	Regions   []string `json:"regions"`
	Countries []string `json:"countries"`
	Topics    []string `json:"topics"`
	PESTLEs   []string `json:"pestles"`
	Sources   []string `json:"sources"`
	SWOTs     []string `json:"swots"`
	Cities    []string `json:"cities"`
	Years     []string `json:"years"`
}

// NewFilterOptions returns FilterOptions with every slice initialized.
func NewFilterOptions() *FilterOptions {
	return &FilterOptions{
		Sectors:   []string{},
		Regions:   []string{},
		Countries: []string{},
		Topics:    []string{},
		PESTLEs:   []string{},
		Sources:   []string{},
		SWOTs:     []string{},
		Cities:    []string{},
		Years:     []string{},
	}
}
