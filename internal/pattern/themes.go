package pattern

import (
	"math"
	"sort"
	"strings"

	"github.com/blackwell-systems/mindweather/internal/domain"
)

// DetectRepetitiveThemes counts, per theme, how many texts mention at least
// one of the theme's keywords. A text adds at most 1 to a theme no matter
// how many keywords it hits. Themes with no matches are omitted.
func (d *Detector) DetectRepetitiveThemes(texts []string) map[domain.Theme]int {
	counts := make(map[domain.Theme]int)
	for _, text := range texts {
		lower := strings.ToLower(text)
		for _, theme := range domain.Themes {
			if mentionsAny(lower, d.lx.ThemeKeywords(theme)) {
				counts[theme]++
			}
		}
	}
	return counts
}

func mentionsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// DiversityScore returns the Shannon entropy of the theme distribution,
// normalized by log2 of the number of nonzero themes, in [0,1]. Fewer than
// two nonzero themes scores 0.
func DiversityScore(counts map[domain.Theme]int) float64 {
	// Fixed iteration order keeps the float sum reproducible.
	themes := make([]domain.Theme, 0, len(counts))
	total := 0
	for theme, n := range counts {
		if n > 0 {
			themes = append(themes, theme)
			total += n
		}
	}
	if len(themes) <= 1 || total == 0 {
		return 0
	}
	sort.Slice(themes, func(i, j int) bool { return themes[i] < themes[j] })

	entropy := 0.0
	for _, theme := range themes {
		p := float64(counts[theme]) / float64(total)
		entropy -= p * math.Log2(p)
	}

	score := entropy / math.Log2(float64(len(themes)))
	return math.Max(0, math.Min(1, score))
}
