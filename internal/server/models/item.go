package models

import (
	"math"
	"time"
)

// Item is a catalog entry offered for a second owner.
type Item struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Category    string     `json:"category"`
	Condition   string     `json:"condition"`
	PostedBy    string     `json:"posted_by"`
	Zipcode     string     `json:"zipcode"`
	Description string     `json:"description"`
	Image       string     `json:"image"`
	DateAdded   int64      `json:"date_added"`
	AgeDays     float64    `json:"age_days"`
	AgeYears    float64    `json:"age_years"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// ItemChanges are the fields an update may touch.
type ItemChanges struct {
	Category    string
	Condition   string
	Description string
	AgeDays     float64
	AgeYears    float64
	UpdatedAt   time.Time
}

// AgeYears converts an age in days to years rounded to one decimal.
func AgeYears(ageDays float64) float64 {
	return math.Round(ageDays/365*10) / 10
}
