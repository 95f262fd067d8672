// Package sentiment scores free text against fixed positive and negative
// word lists.
package sentiment

import (
	"strings"

	"github.com/blackwell-systems/mindweather/internal/lexicon"
)

// Scorer performs keyword-based sentiment analysis. It is stateless beyond
// its lexicon and safe for concurrent use.
type Scorer struct {
	negative []string
	positive []string
}

// NewScorer creates a scorer backed by the lexicon's sentiment word lists.
func NewScorer(lx *lexicon.Lexicon) *Scorer {
	return &Scorer{
		negative: lx.Negative,
		positive: lx.Positive,
	}
}

// NegativityRate returns the fraction of whitespace tokens in text that
// contain a negative keyword, in [0,1]. Empty text scores 0.
func (s *Scorer) NegativityRate(text string) float64 {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return 0
	}

	negCount := 0
	for _, tok := range tokens {
		if containsAny(tok, s.negative) {
			negCount++
		}
	}
	return float64(negCount) / float64(len(tokens))
}

// Score returns (pos - neg) / (pos + neg) over matching tokens, in [-1,1].
// A token may count once toward each list. Text with no matches scores 0.
func (s *Scorer) Score(text string) float64 {
	negCount, posCount := 0, 0
	for _, tok := range tokenize(text) {
		if containsAny(tok, s.negative) {
			negCount++
		}
		if containsAny(tok, s.positive) {
			posCount++
		}
	}

	total := negCount + posCount
	if total == 0 {
		return 0
	}
	return float64(posCount-negCount) / float64(total)
}

func tokenize(text string) []string {
	return strings.Fields(strings.ToLower(text))
}

// containsAny reports whether token contains any keyword as a substring.
func containsAny(token string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(token, kw) {
			return true
		}
	}
	return false
}
