// Package lexicon loads the keyword tables that drive text scoring: sentiment
// word lists, stop words, and the per-theme keyword sets.
package lexicon

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/blackwell-systems/mindweather/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultAsset []byte

// ErrInvalidLexicon is returned when a lexicon asset fails validation.
var ErrInvalidLexicon = errors.New("invalid lexicon")

// Lexicon is an immutable set of keyword tables. Build one with Default,
// Load, or Parse; consumers only read it.
type Lexicon struct {
	Version  int    `yaml:"version"`
	Language string `yaml:"language"`

	// Script is the Unicode script name (e.g. "Latin", "Hangul") whose
	// letters survive word-frequency normalization.
	Script string `yaml:"script"`

	Negative  []string                  `yaml:"negative"`
	Positive  []string                  `yaml:"positive"`
	StopWords []string                  `yaml:"stop_words"`
	Themes    map[domain.Theme][]string `yaml:"themes"`

	script *unicode.RangeTable
	stops  map[string]struct{}
}

// Default returns the embedded English lexicon.
func Default() (*Lexicon, error) {
	return Parse(defaultAsset)
}

// Load reads a lexicon asset from path. An empty path yields the default.
func Load(path string) (*Lexicon, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading lexicon %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML lexicon asset.
func Parse(data []byte) (*Lexicon, error) {
	var lx Lexicon
	if err := yaml.Unmarshal(data, &lx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLexicon, err)
	}
	if err := lx.normalize(); err != nil {
		return nil, err
	}
	return &lx, nil
}

func (lx *Lexicon) normalize() error {
	if len(lx.Negative) == 0 || len(lx.Positive) == 0 {
		return fmt.Errorf("%w: negative and positive word lists are required", ErrInvalidLexicon)
	}
	if lx.Script == "" {
		lx.Script = "Latin"
	}
	table, ok := unicode.Scripts[lx.Script]
	if !ok {
		return fmt.Errorf("%w: unknown script %q", ErrInvalidLexicon, lx.Script)
	}
	lx.script = table

	lx.Negative = lowerAll(lx.Negative)
	lx.Positive = lowerAll(lx.Positive)
	lx.StopWords = lowerAll(lx.StopWords)

	lx.stops = make(map[string]struct{}, len(lx.StopWords))
	for _, w := range lx.StopWords {
		lx.stops[w] = struct{}{}
	}

	for theme, keywords := range lx.Themes {
		if !theme.IsValid() {
			return fmt.Errorf("%w: unknown theme %q", ErrInvalidLexicon, theme)
		}
		lx.Themes[theme] = lowerAll(keywords)
	}
	return nil
}

// lowerAll lowercases and trims every word, dropping empties.
func lowerAll(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			out = append(out, w)
		}
	}
	return out
}

// IsStopWord reports whether w (already lowercased) is a stop word.
func (lx *Lexicon) IsStopWord(w string) bool {
	_, ok := lx.stops[w]
	return ok
}

// InScript reports whether r is a letter of the lexicon's script.
func (lx *Lexicon) InScript(r rune) bool {
	return unicode.Is(lx.script, r)
}

// ThemeKeywords returns the keyword set for theme, or nil.
func (lx *Lexicon) ThemeKeywords(theme domain.Theme) []string {
	return lx.Themes[theme]
}
