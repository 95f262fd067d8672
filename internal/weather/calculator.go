package weather

import (
	"math"
	"time"

	"github.com/blackwell-systems/mindweather/internal/domain"
	"github.com/blackwell-systems/mindweather/internal/lexicon"
	"github.com/blackwell-systems/mindweather/internal/pattern"
	"github.com/blackwell-systems/mindweather/internal/sentiment"
	"github.com/blackwell-systems/mindweather/internal/suggest"
)

// Calculator derives a MindWeatherScore from a window of journal entries.
// It holds only immutable tables and is safe for concurrent use.
type Calculator struct {
	params   Params
	scorer   *sentiment.Scorer
	detector *pattern.Detector
	engine   *suggest.Engine
}

// NewCalculator creates a calculator over the given lexicon and tuning.
func NewCalculator(lx *lexicon.Lexicon, params Params) *Calculator {
	return &Calculator{
		params:   params,
		scorer:   sentiment.NewScorer(lx),
		detector: pattern.NewDetector(lx),
		engine:   suggest.NewEngine(),
	}
}

// Params returns the calculator's tuning.
func (c *Calculator) Params() Params {
	return c.params
}

// Breakdown is the contribution of each component to the overall score,
// before clamping.
type Breakdown struct {
	Negativity float64 `json:"negativity"`
	Sentiment  float64 `json:"sentiment"`
	Diversity  float64 `json:"diversity"`
	Frequency  float64 `json:"frequency"`
}

// Total sums the four components.
func (b Breakdown) Total() float64 {
	return b.Negativity + b.Sentiment + b.Diversity + b.Frequency
}

// Report is a score together with its component breakdown.
type Report struct {
	Score     domain.MindWeatherScore `json:"score"`
	Breakdown Breakdown               `json:"breakdown"`
}

// Compute returns the mind-weather score for entries. previous, if non-nil,
// is only used for trend direction. A zero now means the wall clock.
func (c *Calculator) Compute(entries []domain.JournalEntry, previous *domain.MindWeatherScore, now time.Time) domain.MindWeatherScore {
	return c.Analyze(entries, previous, now).Score
}

// Analyze is Compute plus the component breakdown. An empty entry set yields
// the fixed default score with a zero breakdown.
func (c *Calculator) Analyze(entries []domain.JournalEntry, previous *domain.MindWeatherScore, now time.Time) Report {
	if len(entries) == 0 {
		return Report{Score: domain.DefaultScore()}
	}
	if now.IsZero() {
		now = time.Now()
	}

	texts := make([]string, len(entries))
	for i, e := range entries {
		texts[i] = e.Text
	}

	var negSum, sentSum float64
	for _, text := range texts {
		negSum += c.scorer.NegativityRate(text)
		sentSum += c.scorer.Score(text)
	}
	n := float64(len(texts))
	avgNegativity := clamp(negSum/n, 0, 1)
	sentimentAvg := clamp(sentSum/n, -1, 1)

	themes := c.detector.DetectRepetitiveThemes(texts)
	diversity := pattern.DiversityScore(themes)
	frequency := c.reflectionFrequency(entries, now)

	w := c.params.Weights
	bd := Breakdown{
		Negativity: (1 - math.Min(avgNegativity, 1)) * w.Negativity,
		Sentiment:  ((sentimentAvg + 1) / 2) * w.Sentiment,
		Diversity:  diversity * w.Diversity,
		Frequency:  frequencyFactor(frequency) * w.Frequency,
	}
	overall := clamp(bd.Total(), 0, 100)

	risk := c.burnoutRisk(overall, themes)

	recs := c.engine.Run(&suggest.AnalysisContext{
		OverallScore:        overall,
		BurnoutRisk:         risk,
		Themes:              themes,
		DiversityScore:      diversity,
		ReflectionFrequency: frequency,
	}, c.params.MaxRecommendations)

	return Report{
		Score: domain.MindWeatherScore{
			OverallScore:        overall,
			BurnoutRisk:         risk,
			NegativityRate:      avgNegativity,
			SentimentAverage:    sentimentAvg,
			DiversityScore:      diversity,
			ReflectionFrequency: frequency,
			RepetitiveThemes:    themes,
			WordFrequency:       c.detector.WordFrequency(texts, c.params.TopWords),
			Recommendations:     suggest.Messages(recs),
			TrendDirection:      c.trend(overall, previous),
		},
		Breakdown: bd,
	}
}

// reflectionFrequency counts entries created no earlier than the start of
// the frequency window.
func (c *Calculator) reflectionFrequency(entries []domain.JournalEntry, now time.Time) int {
	since := now.Add(-c.params.FrequencyWindow)
	count := 0
	for _, e := range entries {
		if !e.CreatedAt.Before(since) {
			count++
		}
	}
	return count
}

// burnoutRisk evaluates the risk ladder in order; the first match wins.
func (c *Calculator) burnoutRisk(overall float64, themes map[domain.Theme]int) domain.BurnoutRisk {
	highRisk := 0
	for _, theme := range domain.HighRiskThemes {
		highRisk += themes[theme]
	}

	p := c.params
	switch {
	case overall < p.CriticalScore || highRisk >= p.CriticalThemeCount:
		return domain.RiskCritical
	case overall < p.HighScore || highRisk >= p.HighThemeCount:
		return domain.RiskHigh
	case overall < p.MediumScore:
		return domain.RiskMedium
	default:
		return domain.RiskLow
	}
}

func (c *Calculator) trend(overall float64, previous *domain.MindWeatherScore) domain.TrendDirection {
	if previous == nil {
		return domain.TrendStable
	}
	diff := overall - previous.OverallScore
	switch {
	case diff > c.params.TrendBand:
		return domain.TrendImproving
	case diff < -c.params.TrendBand:
		return domain.TrendDeclining
	default:
		return domain.TrendStable
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
