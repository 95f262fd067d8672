package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/blackwell-systems/mindweather/internal/weather"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultUser, cfg.User)
	assert.Equal(t, DefaultLookbackDays, cfg.LookbackDays)
	assert.Equal(t, DefaultWeights, cfg.Weights)
	assert.Equal(t, DefaultThresholds, cfg.Thresholds)
	assert.Equal(t, filepath.Join(home, ".config/mindweather", DefaultDBName), cfg.DBPath)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_DefaultParamsMatchCalculator(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, weather.DefaultParams(), cfg.Params())
	assert.Equal(t, 30*24*time.Hour, cfg.Lookback())
}

func TestLoad_FileOverrides(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	path := filepath.Join(home, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
user: sam
lookback_days: 14
lexicon_path: ~/lexicons/ko.yaml
weights:
  frequency: 0
thresholds:
  trend_band: 2.5
  frequency_days: 3
output:
  color: false
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "sam", cfg.User)
	assert.Equal(t, 14, cfg.LookbackDays)
	assert.Equal(t, filepath.Join(home, "lexicons/ko.yaml"), cfg.LexiconPath)
	assert.Equal(t, 0.0, cfg.Weights.Frequency)
	assert.Equal(t, 40.0, cfg.Weights.Negativity)
	assert.False(t, cfg.Output.Color)

	p := cfg.Params()
	assert.Equal(t, 2.5, p.TrendBand)
	assert.Equal(t, 3*24*time.Hour, p.FrequencyWindow)
	assert.Equal(t, 5, p.MaxRecommendations)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("MINDWEATHER_USER", "alex")
	t.Setenv("MINDWEATHER_THRESHOLDS_HIGH_SCORE", "55")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "alex", cfg.User)
	assert.Equal(t, 55.0, cfg.Thresholds.HighScore)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultUser, cfg.User)
}

func TestLoad_MalformedFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("user: [unclosed"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_NonPositiveLookbackFallsBack(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("MINDWEATHER_LOOKBACK_DAYS", "0")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultLookbackDays, cfg.LookbackDays)
}

func TestLoad_ThresholdsOutOfRangeFallBack(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		wantFreq int
		wantTop  int
		wantRecs int
	}{
		{"zero window", "thresholds:\n  frequency_days: 0\n", 7, 20, 5},
		{"negative top words", "thresholds:\n  top_words: -3\n", 7, 20, 5},
		{"too many recommendations", "thresholds:\n  max_recommendations: 12\n", 7, 20, 5},
		{"fewer recommendations kept", "thresholds:\n  max_recommendations: 2\n  top_words: 8\n", 7, 8, 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			home := t.TempDir()
			t.Setenv("HOME", home)
			path := filepath.Join(home, "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tc.yaml), 0o644))

			cfg, err := Load(path)
			require.NoError(t, err)
			p := cfg.Params()
			assert.Equal(t, time.Duration(tc.wantFreq)*24*time.Hour, p.FrequencyWindow)
			assert.Equal(t, tc.wantTop, p.TopWords)
			assert.Equal(t, tc.wantRecs, p.MaxRecommendations)
		})
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	assert.Equal(t, filepath.Join(home, "x/y"), expandPath("~/x/y"))
	assert.Equal(t, "/abs/path", expandPath("/abs/path"))
	assert.Equal(t, "", expandPath(""))
}
