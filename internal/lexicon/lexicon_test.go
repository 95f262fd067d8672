package lexicon

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/blackwell-systems/mindweather/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_CoversEveryTheme(t *testing.T) {
	lx, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "en", lx.Language)
	assert.NotEmpty(t, lx.Negative)
	assert.NotEmpty(t, lx.Positive)
	for _, th := range domain.Themes {
		assert.NotEmpty(t, lx.ThemeKeywords(th), "theme %s has no keywords", th)
	}
}

func TestDefault_ReturnsIndependentCopies(t *testing.T) {
	a, err := Default()
	require.NoError(t, err)
	b, err := Default()
	require.NoError(t, err)

	a.Negative[0] = "changed"
	assert.NotEqual(t, "changed", b.Negative[0])
}

func TestIsStopWord(t *testing.T) {
	lx, err := Default()
	require.NoError(t, err)

	assert.True(t, lx.IsStopWord("the"))
	assert.False(t, lx.IsStopWord("bedtime"))
}

func TestInScript(t *testing.T) {
	lx, err := Default()
	require.NoError(t, err)

	assert.True(t, lx.InScript('a'))
	assert.True(t, lx.InScript('é'))
	assert.False(t, lx.InScript('7'))
	assert.False(t, lx.InScript('!'))
	assert.False(t, lx.InScript('한'))
}

func TestParse_LowercasesKeywords(t *testing.T) {
	lx, err := Parse([]byte(`
script: Latin
negative: ["  Tired "]
positive: [Happy]
stop_words: [The]
themes:
  guilt: ["My Fault"]
`))
	require.NoError(t, err)

	assert.Equal(t, []string{"tired"}, lx.Negative)
	assert.Equal(t, []string{"happy"}, lx.Positive)
	assert.True(t, lx.IsStopWord("the"))
	assert.Equal(t, []string{"my fault"}, lx.ThemeKeywords(domain.ThemeGuilt))
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"malformed", "negative: [unclosed"},
		{"missing lists", "script: Latin\n"},
		{"unknown script", "script: Klingon\nnegative: [a]\npositive: [b]\n"},
		{"unknown theme", "negative: [a]\npositive: [b]\nthemes:\n  boredom: [bored]\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			assert.ErrorIs(t, err, ErrInvalidLexicon)
		})
	}
}

func TestParse_DefaultsScriptToLatin(t *testing.T) {
	lx, err := Parse([]byte("negative: [a]\npositive: [b]\n"))
	require.NoError(t, err)
	assert.Equal(t, "Latin", lx.Script)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ko.yaml")
	require.NoError(t, os.WriteFile(path, []byte("language: ko\nscript: Hangul\nnegative: [힘들]\npositive: [행복]\n"), 0o644))

	lx, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "ko", lx.Language)
	assert.True(t, lx.InScript('한'))

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	def, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "en", def.Language)
}
