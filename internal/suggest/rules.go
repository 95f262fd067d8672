package suggest

import "github.com/blackwell-systems/mindweather/internal/domain"

// Theme and cadence cutoffs used by the rules below.
const (
	shoutingThreshold   = 3
	guiltThreshold      = 3
	exhaustionThreshold = 4
	lonelinessThreshold = 2
	lowDiversity        = 0.3
	overJournaling      = 10
	underJournaling     = 1
	positiveScore       = 70
)

// Recommendation texts.
const (
	MsgProfessionalHelp = "Your recent reflections show signs of serious strain. Please consider talking to a counselor, doctor, or parenting support line soon. You don't have to carry this alone."
	MsgReachOut         = "Reach out to someone you trust today, a partner, friend, or family member, and let them know you need some support."
	MsgStressManagement = "Stress has been building up. Try to set aside ten minutes a day just for yourself: a short walk, deep breathing, or quiet time."
	MsgDeescalation     = "When you feel the urge to shout, pause and take three slow breaths before responding. Stepping away for a moment is a strong choice, not a weak one."
	MsgGrowthReframe    = "Feeling guilty shows how much you care. Instead of dwelling on mistakes, ask yourself what you'd like to try differently next time."
	MsgRest             = "You've been running on empty. Rest is not a luxury; look for one thing you can hand off or skip this week so you can recharge."
	MsgCommunity        = "Parenting can feel isolating. Consider joining a local or online parent group where you can share experiences with people who understand."
	MsgSmallChange      = "Your reflections keep circling the same concern. Try one small, concrete change this week and notice what shifts."
	MsgOverJournaling   = "You've been reflecting very often lately. Writing helps, but if worries keep looping, it may be a sign to talk things through with someone."
	MsgCadence          = "Try writing a short reflection a few times a week. Regular check-ins make it easier to notice patterns and progress."
	MsgPositive         = "Your mind weather looks bright. Keep doing what's working, and take a moment to appreciate the effort you're putting in."
)

// BurnoutSupport adds urgent support messages for critical risk, or a
// stress-management message for high risk.
func BurnoutSupport(ctx *AnalysisContext) []Suggestion {
	switch ctx.BurnoutRisk {
	case domain.RiskCritical:
		return []Suggestion{
			{Category: "burnout", Priority: PriorityCritical, Message: MsgProfessionalHelp},
			{Category: "burnout", Priority: PriorityCritical, Message: MsgReachOut},
		}
	case domain.RiskHigh:
		return []Suggestion{
			{Category: "burnout", Priority: PriorityHigh, Message: MsgStressManagement},
		}
	}
	return nil
}

// ShoutingDeescalation suggests a de-escalation technique when shouting recurs.
func ShoutingDeescalation(ctx *AnalysisContext) []Suggestion {
	if ctx.Themes[domain.ThemeShouting] >= shoutingThreshold {
		return []Suggestion{{Category: "theme", Priority: PriorityHigh, Message: MsgDeescalation}}
	}
	return nil
}

// GuiltReframe reframes recurring guilt toward growth.
func GuiltReframe(ctx *AnalysisContext) []Suggestion {
	if ctx.Themes[domain.ThemeGuilt] >= guiltThreshold {
		return []Suggestion{{Category: "theme", Priority: PriorityMedium, Message: MsgGrowthReframe}}
	}
	return nil
}

// ExhaustionRest encourages rest when exhaustion recurs.
func ExhaustionRest(ctx *AnalysisContext) []Suggestion {
	if ctx.Themes[domain.ThemeExhaustion] >= exhaustionThreshold {
		return []Suggestion{{Category: "theme", Priority: PriorityMedium, Message: MsgRest}}
	}
	return nil
}

// LonelinessCommunity points toward community when loneliness recurs.
func LonelinessCommunity(ctx *AnalysisContext) []Suggestion {
	if ctx.Themes[domain.ThemeLoneliness] >= lonelinessThreshold {
		return []Suggestion{{Category: "theme", Priority: PriorityMedium, Message: MsgCommunity}}
	}
	return nil
}

// LowDiversity suggests one small change when reflections keep returning to
// the same theme.
func LowDiversity(ctx *AnalysisContext) []Suggestion {
	if ctx.DiversityScore < lowDiversity {
		return []Suggestion{{Category: "pattern", Priority: PriorityLow, Message: MsgSmallChange}}
	}
	return nil
}

// OverJournaling cautions against very frequent reflection.
func OverJournaling(ctx *AnalysisContext) []Suggestion {
	if ctx.ReflectionFrequency > overJournaling {
		return []Suggestion{{Category: "cadence", Priority: PriorityLow, Message: MsgOverJournaling}}
	}
	return nil
}

// UnderJournaling encourages a regular reflection cadence.
func UnderJournaling(ctx *AnalysisContext) []Suggestion {
	if ctx.ReflectionFrequency < underJournaling {
		return []Suggestion{{Category: "cadence", Priority: PriorityLow, Message: MsgCadence}}
	}
	return nil
}

// PositiveReinforcement celebrates a good score.
func PositiveReinforcement(ctx *AnalysisContext) []Suggestion {
	if ctx.OverallScore >= positiveScore {
		return []Suggestion{{Category: "positive", Priority: PriorityLow, Message: MsgPositive}}
	}
	return nil
}
