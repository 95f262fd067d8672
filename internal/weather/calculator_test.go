package weather

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/blackwell-systems/mindweather/internal/domain"
	"github.com/blackwell-systems/mindweather/internal/lexicon"
	"github.com/blackwell-systems/mindweather/internal/suggest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 14, 20, 0, 0, 0, time.UTC)

func newTestCalculator(t *testing.T) *Calculator {
	t.Helper()
	lx, err := lexicon.Default()
	require.NoError(t, err)
	return NewCalculator(lx, DefaultParams())
}

// entriesAt builds one entry per text, each daysAgo[i] days before testNow.
func entriesAt(texts []string, daysAgo ...float64) []domain.JournalEntry {
	entries := make([]domain.JournalEntry, len(texts))
	for i, text := range texts {
		d := 0.0
		if i < len(daysAgo) {
			d = daysAgo[i]
		}
		entries[i] = domain.JournalEntry{
			Text:      text,
			CreatedAt: testNow.Add(-time.Duration(d * float64(24*time.Hour))),
		}
	}
	return entries
}

func repeat(text string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = text
	}
	return out
}

func TestCompute_EmptyReturnsDefault(t *testing.T) {
	c := newTestCalculator(t)

	got := c.Compute(nil, nil, testNow)
	assert.Equal(t, domain.DefaultScore(), got)

	// A previous score does not change the default.
	prev := &domain.MindWeatherScore{OverallScore: 90}
	got = c.Compute([]domain.JournalEntry{}, prev, testNow)
	assert.Equal(t, domain.DefaultScore(), got)
	assert.Len(t, got.Recommendations, 1)
}

func TestCompute_ShoutingScenario(t *testing.T) {
	c := newTestCalculator(t)
	text := "I yelled, shouted and screamed at the kids during dinner."
	entries := entriesAt(repeat(text, 10), 0, 0.5, 1, 1.5, 2, 3, 4, 5, 6, 6.5)

	report := c.Analyze(entries, nil, testNow)
	score := report.Score

	assert.Equal(t, 10, score.RepetitiveThemes[domain.ThemeShouting])
	assert.Len(t, score.RepetitiveThemes, 1)
	assert.Equal(t, 10, score.ReflectionFrequency)
	assert.InDelta(t, 4.0, report.Breakdown.Frequency, 1e-9)
	assert.Contains(t, score.Recommendations, suggest.MsgDeescalation)

	// Ten shouting entries exceed the critical high-risk count.
	assert.Equal(t, domain.RiskCritical, score.BurnoutRisk)
	assert.Equal(t, []string{
		suggest.MsgProfessionalHelp,
		suggest.MsgReachOut,
		suggest.MsgDeescalation,
		suggest.MsgSmallChange,
	}, score.Recommendations)
}

func TestCompute_NeutralSingleEntry(t *testing.T) {
	c := newTestCalculator(t)
	entries := entriesAt([]string{"We walked to the park after lunch"}, 0)

	report := c.Analyze(entries, nil, testNow)

	assert.Equal(t, 0.0, report.Score.SentimentAverage)
	assert.InDelta(t, 15.0, report.Breakdown.Sentiment, 1e-9)
	assert.InDelta(t, 40.0, report.Breakdown.Negativity, 1e-9)
	assert.InDelta(t, 0.0, report.Breakdown.Diversity, 1e-9)
	assert.InDelta(t, 7.0, report.Breakdown.Frequency, 1e-9)
	assert.InDelta(t, 62.0, report.Score.OverallScore, 1e-9)
	assert.Equal(t, domain.RiskMedium, report.Score.BurnoutRisk)
	assert.Equal(t, domain.TrendStable, report.Score.TrendDirection)
	assert.Equal(t, []string{suggest.MsgSmallChange}, report.Score.Recommendations)
}

func TestCompute_FrequencyWindow(t *testing.T) {
	c := newTestCalculator(t)
	texts := repeat("quiet evening", 5)

	// Two inside the window (one exactly on its edge), three outside.
	entries := entriesAt(texts, 1, 7, 7.01, 12, 29)
	report := c.Analyze(entries, nil, testNow)

	assert.Equal(t, 2, report.Score.ReflectionFrequency)
	assert.InDelta(t, 7.0, report.Breakdown.Frequency, 1e-9)
}

func TestFrequencyFactor(t *testing.T) {
	tests := []struct {
		count int
		want  float64
	}{
		{0, 2}, {1, 7}, {2, 7}, {3, 10}, {4, 10}, {5, 10},
		{6, 7}, {7, 7}, {8, 4}, {15, 4},
	}
	for _, tc := range tests {
		assert.InDelta(t, tc.want, frequencyFactor(tc.count)*10, 1e-9, "count %d", tc.count)
	}
}

func TestCompute_HappyWindowScoresLow(t *testing.T) {
	c := newTestCalculator(t)
	entries := entriesAt([]string{
		"We laughed all morning and I felt proud of us.",
		"Calm bedtime, lots of hugs. Grateful.",
		"Wonderful picnic, everyone was happy.",
		"Playful afternoon, I was patient and content.",
	}, 0, 1, 2, 3)

	score := c.Compute(entries, nil, testNow)

	// 40 (no negatives) + 30 (all positive) + 0 (no themes) + 10 (ideal cadence)
	assert.InDelta(t, 80.0, score.OverallScore, 1e-9)
	assert.Equal(t, domain.RiskLow, score.BurnoutRisk)
	assert.Equal(t, []string{suggest.MsgSmallChange, suggest.MsgPositive}, score.Recommendations)
}

func TestBurnoutRisk_ScoreBoundaries(t *testing.T) {
	c := newTestCalculator(t)

	tests := []struct {
		score float64
		want  domain.BurnoutRisk
	}{
		{0, domain.RiskCritical},
		{29, domain.RiskCritical},
		{29.999, domain.RiskCritical},
		{30, domain.RiskHigh},
		{49, domain.RiskHigh},
		{50, domain.RiskMedium},
		{69, domain.RiskMedium},
		{70, domain.RiskLow},
		{100, domain.RiskLow},
	}

	prev := -1
	for _, tc := range tests {
		got := c.burnoutRisk(tc.score, nil)
		assert.Equal(t, tc.want, got, "score %.3f", tc.score)

		// Severity never increases as the score rises.
		if prev >= 0 {
			assert.LessOrEqual(t, got.Severity(), prev)
		}
		prev = got.Severity()
	}
}

func TestBurnoutRisk_HighRiskThemes(t *testing.T) {
	c := newTestCalculator(t)

	tests := []struct {
		name   string
		themes map[domain.Theme]int
		want   domain.BurnoutRisk
	}{
		{"below high", map[domain.Theme]int{domain.ThemeGuilt: 2}, domain.RiskLow},
		{"summed to high", map[domain.Theme]int{domain.ThemeGuilt: 1, domain.ThemeShouting: 1, domain.ThemeExhaustion: 1}, domain.RiskHigh},
		{"critical", map[domain.Theme]int{domain.ThemeExhaustion: 5}, domain.RiskCritical},
		{"other themes ignored", map[domain.Theme]int{domain.ThemeLoneliness: 9, domain.ThemePerfectionism: 9}, domain.RiskLow},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, c.burnoutRisk(95, tc.themes))
		})
	}
}

func TestTrend(t *testing.T) {
	c := newTestCalculator(t)

	tests := []struct {
		name     string
		current  float64
		previous *domain.MindWeatherScore
		want     domain.TrendDirection
	}{
		{"no previous", 50, nil, domain.TrendStable},
		{"improving", 50, &domain.MindWeatherScore{OverallScore: 40}, domain.TrendImproving},
		{"small drop", 58, &domain.MindWeatherScore{OverallScore: 60}, domain.TrendStable},
		{"exactly band", 65, &domain.MindWeatherScore{OverallScore: 60}, domain.TrendStable},
		{"declining", 40, &domain.MindWeatherScore{OverallScore: 60}, domain.TrendDeclining},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, c.trend(tc.current, tc.previous))
		})
	}
}

func TestCompute_TrendAgainstPrevious(t *testing.T) {
	c := newTestCalculator(t)
	entries := entriesAt([]string{"We walked to the park after lunch"}, 0)

	base := c.Compute(entries, nil, testNow)
	require.InDelta(t, 62.0, base.OverallScore, 1e-9)

	up := c.Compute(entries, &domain.MindWeatherScore{OverallScore: 52}, testNow)
	assert.Equal(t, domain.TrendImproving, up.TrendDirection)

	flat := c.Compute(entries, &domain.MindWeatherScore{OverallScore: 64}, testNow)
	assert.Equal(t, domain.TrendStable, flat.TrendDirection)

	down := c.Compute(entries, &domain.MindWeatherScore{OverallScore: 80}, testNow)
	assert.Equal(t, domain.TrendDeclining, down.TrendDirection)
}

func TestCompute_Deterministic(t *testing.T) {
	c := newTestCalculator(t)
	entries := entriesAt([]string{
		"So tired. I yelled at bedtime and felt guilty, my fault again.",
		"Lonely day, no one to talk to. Other moms seem perfect.",
		"Exhausted but we laughed at dinner.",
		"Running late, too busy, I snapped at him because he refused shoes.",
	}, 0, 2, 3, 9)
	prev := &domain.MindWeatherScore{OverallScore: 55}

	first := c.Compute(entries, prev, testNow)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, c.Compute(entries, prev, testNow))
	}
}

func TestCompute_Bounded(t *testing.T) {
	c := newTestCalculator(t)
	texts := []string{
		"tired angry sad awful worried hate fail cry",
		"happy proud calm grateful",
		"",
		"   ",
		"yelled exhausted guilty lonely perfect compare no time spanked",
		"the a an of",
	}

	for n := 1; n <= len(texts); n++ {
		score := c.Compute(entriesAt(texts[:n]), nil, testNow)
		assert.GreaterOrEqual(t, score.OverallScore, 0.0)
		assert.LessOrEqual(t, score.OverallScore, 100.0)
		assert.GreaterOrEqual(t, score.NegativityRate, 0.0)
		assert.LessOrEqual(t, score.NegativityRate, 1.0)
		assert.GreaterOrEqual(t, score.SentimentAverage, -1.0)
		assert.LessOrEqual(t, score.SentimentAverage, 1.0)
		assert.GreaterOrEqual(t, score.DiversityScore, 0.0)
		assert.LessOrEqual(t, score.DiversityScore, 1.0)
		assert.LessOrEqual(t, len(score.Recommendations), 5)
		assert.LessOrEqual(t, len(score.WordFrequency), 20)
		assert.False(t, math.IsNaN(score.OverallScore))
	}
}

func TestCompute_MoreNegativeTokensNeverRaiseScore(t *testing.T) {
	c := newTestCalculator(t)
	// Negative words that belong to no theme, so only the sentiment
	// components move.
	negatives := []string{"angry", "awful", "sad", "worried", "miserable", "upset"}
	neutral := strings.Fields("the kids played with blocks in the living room all afternoon today")

	prevScore := math.Inf(1)
	for k := 0; k <= len(negatives); k++ {
		words := append([]string(nil), neutral...)
		copy(words, negatives[:k])
		text := strings.Join(words, " ")

		score := c.Compute(entriesAt([]string{text, text, text}, 0, 1, 2), nil, testNow)
		assert.LessOrEqual(t, score.OverallScore, prevScore, "with %d negative tokens", k)
		prevScore = score.OverallScore
	}
}

func TestCompute_RecommendationCap(t *testing.T) {
	c := newTestCalculator(t)
	text := "Exhausted and lonely, I yelled again and it was my fault."
	entries := entriesAt(repeat(text, 14), 0, 0, 0, 1, 1, 1, 2, 2, 3, 3, 4, 4, 5, 5)

	score := c.Compute(entries, nil, testNow)

	assert.Equal(t, domain.RiskCritical, score.BurnoutRisk)
	assert.Len(t, score.Recommendations, 5)
	assert.Equal(t, suggest.MsgProfessionalHelp, score.Recommendations[0])
}

func TestCompute_CustomParams(t *testing.T) {
	lx, err := lexicon.Default()
	require.NoError(t, err)
	params := DefaultParams()
	params.Weights.Frequency = 0
	params.MaxRecommendations = 1
	params.TopWords = 2
	c := NewCalculator(lx, params)

	entries := entriesAt([]string{"park park swings swings slide"}, 0)
	report := c.Analyze(entries, nil, testNow)

	assert.Equal(t, 0.0, report.Breakdown.Frequency)
	assert.InDelta(t, 55.0, report.Score.OverallScore, 1e-9)
	assert.Len(t, report.Score.Recommendations, 1)
	assert.Len(t, report.Score.WordFrequency, 2)
	assert.Equal(t, params, c.Params())
}

func TestCompute_ZeroNowUsesWallClock(t *testing.T) {
	c := newTestCalculator(t)
	entries := []domain.JournalEntry{{Text: "quiet day", CreatedAt: time.Now().Add(-time.Hour)}}

	score := c.Compute(entries, nil, time.Time{})
	assert.Equal(t, 1, score.ReflectionFrequency)
}
