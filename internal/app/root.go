// Package app contains the Cobra command tree for mindweather.
package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/blackwell-systems/mindweather/internal/config"
	"github.com/blackwell-systems/mindweather/internal/domain"
	"github.com/blackwell-systems/mindweather/internal/lexicon"
	"github.com/blackwell-systems/mindweather/internal/logging"
	"github.com/blackwell-systems/mindweather/internal/output"
	"github.com/blackwell-systems/mindweather/internal/store"
	"github.com/blackwell-systems/mindweather/internal/weather"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagJSON    bool
	flagVerbose bool
	flagConfig  string
	flagUser    string
)

var rootCmd = &cobra.Command{
	Use:   "mindweather",
	Short: "Journal-based wellbeing and burnout scoring",
	Long: `mindweather turns short journal reflections into a "mind weather"
report: a 0-100 wellbeing score, a burnout risk level, recurring themes,
frequent words and a few concrete recommendations.

Entries and computed scores live in a local SQLite database.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("mindweather", appVersion)
		fmt.Println()
		fmt.Println("Use a subcommand:")
		fmt.Println("  reflect   Record a journal entry")
		fmt.Println("  weather   Compute and store today's mind weather")
		fmt.Println("  analyze   Score entries from a JSON file without storing them")
		fmt.Println("  history   Show recent scores with trends")
		fmt.Println("  patterns  Show trigger and response sentences")
		fmt.Println("  watch     Recompute periodically and alert on changes")
		fmt.Println("  doctor    Check configuration, lexicon and database")
		fmt.Println("  mcp       Run an MCP stdio server")
		return nil
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/mindweather/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagUser, "user", "", "User to record or report on (default from config)")
}

// env bundles what every command needs after startup.
type env struct {
	cfg      *config.Config
	log      *zap.Logger
	closeLog func() error
	calc     *weather.Calculator
}

// loadEnv reads config, builds the logger, applies color settings and loads
// the lexicon.
func loadEnv() (*env, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	level := cfg.Log.Level
	if flagVerbose {
		level = "debug"
	}
	log, closeLog, err := logging.New(level, cfg.Log.File, os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}

	output.SetNoColor(output.ShouldDisableColor(os.Stdout, flagNoColor || !cfg.Output.Color))

	lx, err := lexicon.Load(cfg.LexiconPath)
	if err != nil {
		_ = closeLog()
		return nil, fmt.Errorf("loading lexicon: %w", err)
	}
	log.Debug("lexicon loaded",
		zap.String("path", cfg.LexiconPath),
		zap.String("language", lx.Language),
		zap.Int("negative", len(lx.Negative)),
		zap.Int("positive", len(lx.Positive)),
	)

	return &env{
		cfg:      cfg,
		log:      log,
		closeLog: closeLog,
		calc:     weather.NewCalculator(lx, cfg.Params()),
	}, nil
}

// openStore opens the configured database.
func (e *env) openStore() (*store.DB, error) {
	db, err := store.Open(e.cfg.DBPath, store.WithLogger(e.log))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return db, nil
}

// user returns the --user flag, falling back to the configured user.
func (e *env) user() domain.UserID {
	if u := strings.TrimSpace(flagUser); u != "" {
		return domain.UserID(u)
	}
	return domain.UserID(e.cfg.User)
}

// close flushes and closes the log file.
func (e *env) close() {
	_ = e.closeLog()
}
