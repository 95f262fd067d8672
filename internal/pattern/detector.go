// Package pattern provides batch text analytics over a window of
// reflections: word frequency, recurring themes, theme diversity, and
// trigger/response sentence extraction.
package pattern

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/blackwell-systems/mindweather/internal/domain"
	"github.com/blackwell-systems/mindweather/internal/lexicon"
)

// DefaultTopN is the default size of a word-frequency table.
const DefaultTopN = 20

// minWordLen is the shortest token, in runes, kept by WordFrequency.
const minWordLen = 2

// Detector runs the pattern analyses against a fixed lexicon. It holds no
// mutable state and is safe for concurrent use.
type Detector struct {
	lx *lexicon.Lexicon
}

// NewDetector creates a detector backed by lx.
func NewDetector(lx *lexicon.Lexicon) *Detector {
	return &Detector{lx: lx}
}

// WordFrequency tallies words across texts and returns the topN most frequent.
// Text is lowercased and stripped of anything outside the lexicon's script,
// then split on whitespace. Tokens shorter than two runes and stop words are
// dropped. Ties keep first-seen order. topN <= 0 means DefaultTopN.
func (d *Detector) WordFrequency(texts []string, topN int) domain.WordFrequency {
	if topN <= 0 {
		topN = DefaultTopN
	}

	counts := make(map[string]int)
	var order []string

	for _, text := range texts {
		for _, word := range strings.Fields(d.normalize(text)) {
			if utf8.RuneCountInString(word) < minWordLen || d.lx.IsStopWord(word) {
				continue
			}
			if _, seen := counts[word]; !seen {
				order = append(order, word)
			}
			counts[word]++
		}
	}

	table := make(domain.WordFrequency, 0, len(order))
	for _, w := range order {
		table = append(table, domain.WordCount{Word: w, Count: counts[w]})
	}
	sort.SliceStable(table, func(i, j int) bool {
		return table[i].Count > table[j].Count
	})

	if len(table) > topN {
		table = table[:topN]
	}
	return table
}

// normalize lowercases text and removes every rune that is neither a letter
// of the lexicon's script nor whitespace.
func (d *Detector) normalize(text string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || d.lx.InScript(r) {
			return r
		}
		return -1
	}, strings.ToLower(text))
}
