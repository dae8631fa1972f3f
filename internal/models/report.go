// Insightboard - Survey Insight Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/insightboard

package models

import (
	"time"
)

// Report is one survey/insight entry with categorical tags and three
// numeric scores. Empty string is the "absent" value for every text
// attribute; scores default to 0.
//
// Example JSON:
//
//	{
//	  "_id": "7c1f0a0e-3a56-4f0b-9a7e-1b2c3d4e5f60",
//	  "end_year": "2027",
//	  "intensity": 6,
//	  "sector": "Energy",
//	  "topic": "oil",
//	  "region": "Northern America",
//	  "country": "United States of America",
//	  "pestle": "Industries",
//	  "source": "EIA",
//	  "likelihood": 3,
//	  "relevance": 2
//	}
type Report struct {
	ID         string    `json:"_id"`
	EndYear    string    `json:"end_year"`
	Intensity  float64   `json:"intensity"`
	Sector     string    `json:"sector"`
	Topic      string    `json:"topic"`
	Insight    string    `json:"insight"`
	URL        string    `json:"url"`
	Region     string    `json:"region"`
	StartYear  string    `json:"start_year"`
	Impact     string    `json:"impact"`
	Added      time.Time `json:"added"`
	Published  time.Time `json:"published"`
	Country    string    `json:"country"`
	Relevance  float64   `json:"relevance"`
	PESTLE     string    `json:"pestle"`
	Source     string    `json:"source"`
	Title      string    `json:"title"`
	Likelihood float64   `json:"likelihood"`
	City       string    `json:"city"`
	SWOT       string    `json:"swot"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
