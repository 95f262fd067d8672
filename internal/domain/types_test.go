package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWordFrequency_MarshalKeepsOrder(t *testing.T) {
	wf := WordFrequency{{Word: "tired", Count: 4}, {Word: "bedtime", Count: 2}, {Word: "alone", Count: 2}}

	data, err := json.Marshal(wf)
	require.NoError(t, err)
	assert.Equal(t, `{"tired":4,"bedtime":2,"alone":2}`, string(data))

	var back WordFrequency
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, wf, back)
}

func TestWordFrequency_EmptyMarshalsAsObject(t *testing.T) {
	data, err := json.Marshal(WordFrequency{})
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))
}

func TestDefaultScore(t *testing.T) {
	s := DefaultScore()
	assert.Equal(t, 50.0, s.OverallScore)
	assert.Equal(t, RiskMedium, s.BurnoutRisk)
	assert.Equal(t, TrendStable, s.TrendDirection)
	assert.Empty(t, s.RepetitiveThemes)
	assert.Empty(t, s.WordFrequency)
	assert.Equal(t, []string{DefaultEncouragement}, s.Recommendations)

	// Each call builds fresh maps.
	s.RepetitiveThemes[ThemeGuilt] = 1
	assert.Empty(t, DefaultScore().RepetitiveThemes)
}

func TestTheme_IsValid(t *testing.T) {
	for _, th := range Themes {
		assert.True(t, th.IsValid(), th)
	}
	assert.False(t, Theme("boredom").IsValid())
}

func TestBurnoutRisk_Severity(t *testing.T) {
	assert.Less(t, RiskLow.Severity(), RiskMedium.Severity())
	assert.Less(t, RiskMedium.Severity(), RiskHigh.Severity())
	assert.Less(t, RiskHigh.Severity(), RiskCritical.Severity())
	assert.Equal(t, -1, BurnoutRisk("unknown").Severity())
}

func TestMindWeatherScore_JSONFields(t *testing.T) {
	s := DefaultScore()
	data, err := json.Marshal(s)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	for _, key := range []string{
		"overall_score", "burnout_risk", "negativity_rate", "sentiment_average",
		"diversity_score", "reflection_frequency", "repetitive_themes",
		"word_frequency", "recommendations", "trend_direction",
	} {
		assert.Contains(t, raw, key)
	}
}
