// Package domain holds the entities shared by the mind-weather engine and the
// service around it.
package domain

import (
	"bytes"
	"encoding/json"
	"time"
)

// UserID identifies the parent whose reflections are analyzed.
type UserID string

// JournalEntry is one reflection submitted by a user. The engine reads only
// Text and CreatedAt and never mutates an entry.
type JournalEntry struct {
	ID        int64     `json:"id,omitempty"`
	UserID    UserID    `json:"user_id,omitempty"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`

	// ExternalSentiment is an optional score computed by an outside service.
	// It is stored and returned, but the engine scores text on its own.
	ExternalSentiment *float64 `json:"external_sentiment,omitempty"`
}

// Theme is one of the fixed recurring parenting-stress topics.
type Theme string

const (
	ThemeShouting           Theme = "shouting"
	ThemeCorporalPunishment Theme = "corporal_punishment"
	ThemeGuilt              Theme = "guilt"
	ThemeExhaustion         Theme = "exhaustion"
	ThemeTimeScarcity       Theme = "time_scarcity"
	ThemePerfectionism      Theme = "perfectionism"
	ThemeSocialComparison   Theme = "social_comparison"
	ThemeLoneliness         Theme = "loneliness"
)

// Themes lists the closed theme vocabulary in canonical order.
var Themes = []Theme{
	ThemeShouting,
	ThemeCorporalPunishment,
	ThemeGuilt,
	ThemeExhaustion,
	ThemeTimeScarcity,
	ThemePerfectionism,
	ThemeSocialComparison,
	ThemeLoneliness,
}

// HighRiskThemes are summed when deciding burnout risk.
var HighRiskThemes = []Theme{ThemeExhaustion, ThemeShouting, ThemeGuilt}

// IsValid reports whether t belongs to the closed theme vocabulary.
func (t Theme) IsValid() bool {
	for _, known := range Themes {
		if t == known {
			return true
		}
	}
	return false
}

// BurnoutRisk is the categorical severity derived from score and themes.
type BurnoutRisk string

const (
	RiskLow      BurnoutRisk = "low"
	RiskMedium   BurnoutRisk = "medium"
	RiskHigh     BurnoutRisk = "high"
	RiskCritical BurnoutRisk = "critical"
)

// Severity orders risk levels from 0 (low) to 3 (critical).
func (r BurnoutRisk) Severity() int {
	switch r {
	case RiskLow:
		return 0
	case RiskMedium:
		return 1
	case RiskHigh:
		return 2
	case RiskCritical:
		return 3
	}
	return -1
}

// TrendDirection compares a score with the previous computation.
type TrendDirection string

const (
	TrendImproving TrendDirection = "improving"
	TrendStable    TrendDirection = "stable"
	TrendDeclining TrendDirection = "declining"
)

// WordCount is one row of a word-frequency table.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// WordFrequency is a top-N table ordered by descending count, ties kept in
// first-seen order. It encodes as a JSON object whose keys keep that order.
type WordFrequency []WordCount

// MarshalJSON writes the table as an ordered JSON object.
func (wf WordFrequency) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, wc := range wf {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(wc.Word)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(wc.Count)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads an object back, keeping the key order of the input.
func (wf *WordFrequency) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	if _, err := dec.Token(); err != nil {
		return err
	}
	out := WordFrequency{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		word, _ := tok.(string)
		var count int
		if err := dec.Decode(&count); err != nil {
			return err
		}
		out = append(out, WordCount{Word: word, Count: count})
	}
	*wf = out
	return nil
}

// MindWeatherScore is the derived wellbeing snapshot for one window of entries.
type MindWeatherScore struct {
	// OverallScore is the weighted wellbeing score, clamped to [0,100].
	OverallScore float64 `json:"overall_score"`

	BurnoutRisk BurnoutRisk `json:"burnout_risk"`

	// NegativityRate is the mean fraction of negative tokens, in [0,1].
	NegativityRate float64 `json:"negativity_rate"`

	// SentimentAverage is the mean lexicon sentiment, in [-1,1].
	SentimentAverage float64 `json:"sentiment_average"`

	// DiversityScore is normalized Shannon entropy over theme counts, in [0,1].
	DiversityScore float64 `json:"diversity_score"`

	// ReflectionFrequency counts entries in the most recent frequency window.
	ReflectionFrequency int `json:"reflection_frequency"`

	RepetitiveThemes map[Theme]int  `json:"repetitive_themes"`
	WordFrequency    WordFrequency  `json:"word_frequency"`
	Recommendations  []string       `json:"recommendations"`
	TrendDirection   TrendDirection `json:"trend_direction"`
}

// DefaultEncouragement is the single recommendation shown before any entries exist.
const DefaultEncouragement = "Start by writing a short reflection about today. Even a few sentences help you notice how you're really doing."

// DefaultScore returns the neutral starting state used when there are no entries.
func DefaultScore() MindWeatherScore {
	return MindWeatherScore{
		OverallScore:        50,
		BurnoutRisk:         RiskMedium,
		NegativityRate:      0,
		SentimentAverage:    0,
		DiversityScore:      0,
		ReflectionFrequency: 0,
		RepetitiveThemes:    map[Theme]int{},
		WordFrequency:       WordFrequency{},
		Recommendations:     []string{DefaultEncouragement},
		TrendDirection:      TrendStable,
	}
}
