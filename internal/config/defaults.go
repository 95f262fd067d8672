// Package config provides configuration loading and defaults for mindweather.
package config

// DefaultConfigDir is the default location for mindweather configuration.
const DefaultConfigDir = "~/.config/mindweather"

// DefaultDBName is the filename for the SQLite database.
const DefaultDBName = "mindweather.db"

// DefaultConfigFile is the filename for the YAML config.
const DefaultConfigFile = "config.yaml"

// DefaultUser is the user reflections are recorded under when none is given.
const DefaultUser = "me"

// DefaultLookbackDays is how many days of entries feed one computation.
const DefaultLookbackDays = 30

// EnvPrefix prefixes environment overrides, e.g. MINDWEATHER_LOOKBACK_DAYS.
const EnvPrefix = "MINDWEATHER"

// DefaultWeights holds the default component weights of the overall score.
var DefaultWeights = Weights{
	Negativity: 40,
	Sentiment:  30,
	Diversity:  20,
	Frequency:  10,
}

// DefaultThresholds holds the default risk, trend and window cutoffs.
var DefaultThresholds = Thresholds{
	CriticalScore:      30,
	HighScore:          50,
	MediumScore:        70,
	CriticalThemeCount: 5,
	HighThemeCount:     3,
	TrendBand:          5,
	FrequencyDays:      7,
	TopWords:           20,
	MaxRecommendations: 5,
}

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
}

// DefaultLog holds the default logging settings.
var DefaultLog = Log{
	Level: "warn",
}
