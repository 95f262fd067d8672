package suggest

import (
	"testing"

	"github.com/blackwell-systems/mindweather/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Engine.Run ---

func TestEngineRun_EmptyContext(t *testing.T) {
	engine := NewEngine()
	ctx := &AnalysisContext{}

	suggestions := engine.Run(ctx, 0)

	// Zero diversity and zero frequency trigger two rules even with no data.
	assert.Equal(t, []string{MsgSmallChange, MsgCadence}, Messages(suggestions))
}

func TestEngineRun_NilThemes(t *testing.T) {
	engine := NewEngine()
	ctx := &AnalysisContext{Themes: nil, DiversityScore: 0.9, ReflectionFrequency: 4, OverallScore: 60}

	// Should not panic with a nil theme map.
	suggestions := engine.Run(ctx, 5)
	assert.Empty(t, suggestions)
}

func TestEngineRun_KeepsPriorityOrder(t *testing.T) {
	engine := NewEngine()
	ctx := &AnalysisContext{
		BurnoutRisk:         domain.RiskHigh,
		Themes:              map[domain.Theme]int{domain.ThemeShouting: 3, domain.ThemeGuilt: 3},
		DiversityScore:      0.8,
		ReflectionFrequency: 4,
	}

	got := Messages(engine.Run(ctx, 5))
	assert.Equal(t, []string{MsgStressManagement, MsgDeescalation, MsgGrowthReframe}, got)
}

func TestEngineRun_TruncatesToLimit(t *testing.T) {
	engine := NewEngine()
	ctx := &AnalysisContext{
		BurnoutRisk: domain.RiskCritical,
		Themes: map[domain.Theme]int{
			domain.ThemeShouting:   5,
			domain.ThemeGuilt:      5,
			domain.ThemeExhaustion: 5,
			domain.ThemeLoneliness: 5,
		},
		DiversityScore:      0.1,
		ReflectionFrequency: 0,
	}

	got := Messages(engine.Run(ctx, 5))
	require.Len(t, got, 5)
	assert.Equal(t, []string{
		MsgProfessionalHelp,
		MsgReachOut,
		MsgDeescalation,
		MsgGrowthReframe,
		MsgRest,
	}, got)

	assert.Len(t, engine.Run(ctx, 2), 2)
}

func TestEngineRun_NoRules(t *testing.T) {
	engine := &Engine{rules: nil}
	suggestions := engine.Run(&AnalysisContext{}, 5)
	assert.Empty(t, suggestions)
}

func TestEngineRun_CustomRule(t *testing.T) {
	customRule := func(ctx *AnalysisContext) []Suggestion {
		return []Suggestion{{Category: "custom", Priority: PriorityCritical, Message: "custom"}}
	}
	engine := &Engine{rules: []Rule{customRule}}

	suggestions := engine.Run(&AnalysisContext{}, 5)
	require.Len(t, suggestions, 1)
	assert.Equal(t, "custom", suggestions[0].Category)
}

// --- NewEngine ---

func TestNewEngine_HasAllRules(t *testing.T) {
	engine := NewEngine()
	assert.Len(t, engine.rules, 9)
}

// --- Priority Constants ---

func TestPriorityOrdering(t *testing.T) {
	assert.Less(t, PriorityCritical, PriorityHigh)
	assert.Less(t, PriorityHigh, PriorityMedium)
	assert.Less(t, PriorityMedium, PriorityLow)
}
