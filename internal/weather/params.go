// Package weather computes the mind-weather score: a bounded wellbeing score,
// burnout risk, trend, theme statistics and recommendations derived from a
// window of journal entries.
package weather

import "time"

// Weights are the maximum points each component contributes to the overall
// score. They sum to 100 by default.
type Weights struct {
	Negativity float64
	Sentiment  float64
	Diversity  float64
	Frequency  float64
}

// Params holds the tuning constants of the calculator. Only values are
// configurable; the formulas are fixed.
type Params struct {
	Weights Weights

	// Burnout risk score cutoffs: below CriticalScore is critical, below
	// HighScore is high, below MediumScore is medium.
	CriticalScore float64
	HighScore     float64
	MediumScore   float64

	// High-risk theme totals that force critical or high risk.
	CriticalThemeCount int
	HighThemeCount     int

	// TrendBand is the score change beyond which a trend is not stable.
	TrendBand float64

	// FrequencyWindow is how far back from now an entry counts toward
	// reflection frequency.
	FrequencyWindow time.Duration

	// TopWords caps the word-frequency table.
	TopWords int

	// MaxRecommendations caps the recommendation list.
	MaxRecommendations int
}

// DefaultParams returns the reference tuning.
func DefaultParams() Params {
	return Params{
		Weights: Weights{
			Negativity: 40,
			Sentiment:  30,
			Diversity:  20,
			Frequency:  10,
		},
		CriticalScore:      30,
		HighScore:          50,
		MediumScore:        70,
		CriticalThemeCount: 5,
		HighThemeCount:     3,
		TrendBand:          5,
		FrequencyWindow:    7 * 24 * time.Hour,
		TopWords:           20,
		MaxRecommendations: 5,
	}
}

// Frequency bands, as a fraction of the frequency weight.
const (
	frequencyIdeal      = 1.0 // 3-5 entries
	frequencyAcceptable = 0.7 // 1-2 or 6-7 entries
	frequencyExcessive  = 0.4 // more than 7
	frequencyAbsent     = 0.2 // none
)

// frequencyFactor maps a reflection count to its share of the frequency weight.
func frequencyFactor(count int) float64 {
	switch {
	case count >= 3 && count <= 5:
		return frequencyIdeal
	case count >= 1 && count <= 7:
		return frequencyAcceptable
	case count > 7:
		return frequencyExcessive
	default:
		return frequencyAbsent
	}
}
