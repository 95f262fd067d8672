// Package suggest provides the recommendation engine and rule types.
package suggest

import "github.com/blackwell-systems/mindweather/internal/domain"

// Priority levels for suggestions.
const (
	PriorityCritical = 1
	PriorityHigh     = 2
	PriorityMedium   = 3
	PriorityLow      = 4
)

// Suggestion is one supportive recommendation for a parent.
type Suggestion struct {
	Category string `json:"category"`
	Priority int    `json:"priority"`
	Message  string `json:"message"`
}

// AnalysisContext carries the already-computed parts of a mind-weather score
// that recommendation rules inspect.
type AnalysisContext struct {
	// OverallScore is the clamped 0-100 wellbeing score.
	OverallScore float64 `json:"overall_score"`

	// BurnoutRisk is the categorical risk level.
	BurnoutRisk domain.BurnoutRisk `json:"burnout_risk"`

	// Themes maps each detected theme to the number of entries mentioning it.
	Themes map[domain.Theme]int `json:"themes"`

	// DiversityScore is normalized theme entropy in [0,1].
	DiversityScore float64 `json:"diversity_score"`

	// ReflectionFrequency is the number of entries in the recent window.
	ReflectionFrequency int `json:"reflection_frequency"`
}

// Rule is a function that examines the analysis context and produces
// zero or more suggestions.
type Rule func(ctx *AnalysisContext) []Suggestion
