package suggest

// DefaultLimit is the maximum number of recommendations returned by Run.
const DefaultLimit = 5

// Engine runs all registered rules against an AnalysisContext and collects
// the resulting suggestions.
type Engine struct {
	rules []Rule
}

// NewEngine creates a new suggest engine with all built-in rules registered
// in priority order.
func NewEngine() *Engine {
	return &Engine{
		rules: []Rule{
			BurnoutSupport,
			ShoutingDeescalation,
			GuiltReframe,
			ExhaustionRest,
			LonelinessCommunity,
			LowDiversity,
			OverJournaling,
			UnderJournaling,
			PositiveReinforcement,
		},
	}
}

// Run executes every rule in registration order and returns the collected
// suggestions, truncated to limit. Output is not re-sorted: registration
// order is the priority order. limit <= 0 means DefaultLimit.
func (e *Engine) Run(ctx *AnalysisContext, limit int) []Suggestion {
	if limit <= 0 {
		limit = DefaultLimit
	}

	all := []Suggestion{}
	for _, rule := range e.rules {
		all = append(all, rule(ctx)...)
	}
	if len(all) > limit {
		all = all[:limit]
	}
	return all
}

// Messages extracts the message text of each suggestion.
func Messages(suggestions []Suggestion) []string {
	out := make([]string, len(suggestions))
	for i, s := range suggestions {
		out[i] = s.Message
	}
	return out
}
