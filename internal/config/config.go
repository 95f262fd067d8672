package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/blackwell-systems/mindweather/internal/weather"
	"github.com/spf13/viper"
)

// Config is the top-level mindweather configuration.
type Config struct {
	User         string     `mapstructure:"user"`
	LookbackDays int        `mapstructure:"lookback_days"`
	LexiconPath  string     `mapstructure:"lexicon_path"`
	DBPath       string     `mapstructure:"db_path"`
	Weights      Weights    `mapstructure:"weights"`
	Thresholds   Thresholds `mapstructure:"thresholds"`
	Output       Output     `mapstructure:"output"`
	Log          Log        `mapstructure:"log"`
}

// Weights defines the points each score component may contribute.
type Weights struct {
	Negativity float64 `mapstructure:"negativity"`
	Sentiment  float64 `mapstructure:"sentiment"`
	Diversity  float64 `mapstructure:"diversity"`
	Frequency  float64 `mapstructure:"frequency"`
}

// Thresholds defines burnout, trend and window cutoffs.
type Thresholds struct {
	CriticalScore      float64 `mapstructure:"critical_score"`
	HighScore          float64 `mapstructure:"high_score"`
	MediumScore        float64 `mapstructure:"medium_score"`
	CriticalThemeCount int     `mapstructure:"critical_theme_count"`
	HighThemeCount     int     `mapstructure:"high_theme_count"`
	TrendBand          float64 `mapstructure:"trend_band"`
	FrequencyDays      int     `mapstructure:"frequency_days"`
	TopWords           int     `mapstructure:"top_words"`
	MaxRecommendations int     `mapstructure:"max_recommendations"`
}

// Output defines output preferences.
type Output struct {
	Color bool `mapstructure:"color"`
}

// Log defines logging preferences.
type Log struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration from the given path (or the default location),
// applies MINDWEATHER_* environment overrides, and returns a Config with all
// defaults applied.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("user", DefaultUser)
	v.SetDefault("lookback_days", DefaultLookbackDays)
	v.SetDefault("lexicon_path", "")
	v.SetDefault("db_path", filepath.Join(DefaultConfigDir, DefaultDBName))
	v.SetDefault("weights.negativity", DefaultWeights.Negativity)
	v.SetDefault("weights.sentiment", DefaultWeights.Sentiment)
	v.SetDefault("weights.diversity", DefaultWeights.Diversity)
	v.SetDefault("weights.frequency", DefaultWeights.Frequency)
	v.SetDefault("thresholds.critical_score", DefaultThresholds.CriticalScore)
	v.SetDefault("thresholds.high_score", DefaultThresholds.HighScore)
	v.SetDefault("thresholds.medium_score", DefaultThresholds.MediumScore)
	v.SetDefault("thresholds.critical_theme_count", DefaultThresholds.CriticalThemeCount)
	v.SetDefault("thresholds.high_theme_count", DefaultThresholds.HighThemeCount)
	v.SetDefault("thresholds.trend_band", DefaultThresholds.TrendBand)
	v.SetDefault("thresholds.frequency_days", DefaultThresholds.FrequencyDays)
	v.SetDefault("thresholds.top_words", DefaultThresholds.TopWords)
	v.SetDefault("thresholds.max_recommendations", DefaultThresholds.MaxRecommendations)
	v.SetDefault("output.color", DefaultOutput.Color)
	v.SetDefault("log.level", DefaultLog.Level)
	v.SetDefault("log.file", DefaultLog.File)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		v.AddConfigPath(expandPath(DefaultConfigDir))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// Read config file if it exists; missing file is not an error.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.LookbackDays <= 0 {
		cfg.LookbackDays = DefaultLookbackDays
	}
	cfg.Thresholds.normalize()
	cfg.DBPath = expandPath(cfg.DBPath)
	cfg.LexiconPath = expandPath(cfg.LexiconPath)
	cfg.Log.File = expandPath(cfg.Log.File)

	return &cfg, nil
}

// normalize replaces non-positive window and cap settings with their
// defaults and keeps MaxRecommendations within the default cap.
func (t *Thresholds) normalize() {
	if t.FrequencyDays <= 0 {
		t.FrequencyDays = DefaultThresholds.FrequencyDays
	}
	if t.TopWords <= 0 {
		t.TopWords = DefaultThresholds.TopWords
	}
	if t.MaxRecommendations <= 0 || t.MaxRecommendations > DefaultThresholds.MaxRecommendations {
		t.MaxRecommendations = DefaultThresholds.MaxRecommendations
	}
}

// Params converts the configured weights and thresholds into calculator tuning.
func (c *Config) Params() weather.Params {
	return weather.Params{
		Weights: weather.Weights{
			Negativity: c.Weights.Negativity,
			Sentiment:  c.Weights.Sentiment,
			Diversity:  c.Weights.Diversity,
			Frequency:  c.Weights.Frequency,
		},
		CriticalScore:      c.Thresholds.CriticalScore,
		HighScore:          c.Thresholds.HighScore,
		MediumScore:        c.Thresholds.MediumScore,
		CriticalThemeCount: c.Thresholds.CriticalThemeCount,
		HighThemeCount:     c.Thresholds.HighThemeCount,
		TrendBand:          c.Thresholds.TrendBand,
		FrequencyWindow:    time.Duration(c.Thresholds.FrequencyDays) * 24 * time.Hour,
		TopWords:           c.Thresholds.TopWords,
		MaxRecommendations: c.Thresholds.MaxRecommendations,
	}
}

// Lookback returns the duration of the entry window.
func (c *Config) Lookback() time.Duration {
	return time.Duration(c.LookbackDays) * 24 * time.Hour
}

// ConfigDir returns the expanded configuration directory.
func ConfigDir() string {
	return expandPath(DefaultConfigDir)
}
