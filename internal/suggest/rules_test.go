package suggest

import (
	"testing"

	"github.com/blackwell-systems/mindweather/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestBurnoutSupport(t *testing.T) {
	tests := []struct {
		risk domain.BurnoutRisk
		want []string
	}{
		{domain.RiskCritical, []string{MsgProfessionalHelp, MsgReachOut}},
		{domain.RiskHigh, []string{MsgStressManagement}},
		{domain.RiskMedium, []string{}},
		{domain.RiskLow, []string{}},
	}

	for _, tc := range tests {
		t.Run(string(tc.risk), func(t *testing.T) {
			got := BurnoutSupport(&AnalysisContext{BurnoutRisk: tc.risk})
			assert.Equal(t, tc.want, Messages(got))
		})
	}
}

func TestThemeRules_Thresholds(t *testing.T) {
	tests := []struct {
		name      string
		rule      Rule
		theme     domain.Theme
		threshold int
		message   string
	}{
		{"shouting", ShoutingDeescalation, domain.ThemeShouting, 3, MsgDeescalation},
		{"guilt", GuiltReframe, domain.ThemeGuilt, 3, MsgGrowthReframe},
		{"exhaustion", ExhaustionRest, domain.ThemeExhaustion, 4, MsgRest},
		{"loneliness", LonelinessCommunity, domain.ThemeLoneliness, 2, MsgCommunity},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			below := &AnalysisContext{Themes: map[domain.Theme]int{tc.theme: tc.threshold - 1}}
			assert.Empty(t, tc.rule(below))

			at := &AnalysisContext{Themes: map[domain.Theme]int{tc.theme: tc.threshold}}
			got := tc.rule(at)
			if assert.Len(t, got, 1) {
				assert.Equal(t, tc.message, got[0].Message)
			}
		})
	}
}

func TestLowDiversity(t *testing.T) {
	assert.Len(t, LowDiversity(&AnalysisContext{DiversityScore: 0.29}), 1)
	assert.Empty(t, LowDiversity(&AnalysisContext{DiversityScore: 0.3}))
}

func TestCadenceRules(t *testing.T) {
	tests := []struct {
		freq  int
		over  bool
		under bool
	}{
		{0, false, true},
		{1, false, false},
		{10, false, false},
		{11, true, false},
	}

	for _, tc := range tests {
		ctx := &AnalysisContext{ReflectionFrequency: tc.freq}
		assert.Equal(t, tc.over, len(OverJournaling(ctx)) == 1, "over-journaling at %d", tc.freq)
		assert.Equal(t, tc.under, len(UnderJournaling(ctx)) == 1, "under-journaling at %d", tc.freq)
	}
}

func TestPositiveReinforcement(t *testing.T) {
	assert.Empty(t, PositiveReinforcement(&AnalysisContext{OverallScore: 69.99}))
	got := PositiveReinforcement(&AnalysisContext{OverallScore: 70})
	if assert.Len(t, got, 1) {
		assert.Equal(t, MsgPositive, got[0].Message)
	}
}
