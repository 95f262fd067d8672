package app

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/blackwell-systems/mindweather/internal/output"
	"github.com/blackwell-systems/mindweather/internal/pattern"
	"github.com/spf13/cobra"
)

var patternsDays int

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "Show trigger and response sentences",
	Long: `Split recent entries into sentences and list the ones that describe
what set things off (because, when, after, ...) and how you reacted (yelled,
snapped, walked away, ...). Each list holds at most ten distinct sentences.`,
	RunE: runPatterns,
}

func init() {
	patternsCmd.Flags().IntVar(&patternsDays, "days", 0, "Window in days, at most 365 (default: lookback_days from config)")
	rootCmd.AddCommand(patternsCmd)
}

func runPatterns(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	defer e.close()

	db, err := e.openStore()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	window := e.cfg.Lookback()
	if patternsDays > 0 {
		window = time.Duration(min(patternsDays, 365)) * 24 * time.Hour
	}

	entries, err := db.ListEntriesSince(cmd.Context(), e.user(), time.Now().Add(-window))
	if err != nil {
		return fmt.Errorf("loading entries: %w", err)
	}
	texts := make([]string, len(entries))
	for i, en := range entries {
		texts[i] = en.Text
	}
	bp := pattern.ExtractBehaviorPatterns(texts)

	out := cmd.OutOrStdout()
	if flagJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(bp)
	}
	renderPatterns(out, bp, len(entries))
	return nil
}

func renderPatterns(out io.Writer, bp pattern.BehaviorPatterns, entryCount int) {
	list := func(title string, items []string) {
		fmt.Fprintln(out, output.Section(title))
		fmt.Fprintln(out)
		if len(items) == 0 {
			fmt.Fprintf(out, " %s\n", output.StyleMuted.Render("None found"))
			return
		}
		for _, s := range items {
			fmt.Fprintf(out, " • %s\n", s)
		}
	}
	list("Triggers", bp.Triggers)
	list("Responses", bp.Responses)
	fmt.Fprintln(out)
	fmt.Fprintf(out, " %s\n\n", output.StyleMuted.Render(fmt.Sprintf("From %d entries", entryCount)))
}
