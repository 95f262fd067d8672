package app

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/blackwell-systems/mindweather/internal/domain"
	"github.com/blackwell-systems/mindweather/internal/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	analyzeNow      string
	analyzePrevious string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file.json|->",
	Short: "Score entries from a JSON file without storing them",
	Long: `Compute a mind-weather report from a JSON array of journal entries
without touching the database. Each entry needs "text" and should carry
"created_at" (RFC3339). Use "-" to read from stdin.

Example input:
  [{"text": "Exhausted, yelled at bedtime.", "created_at": "2026-03-13T21:10:00Z"}]`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeNow, "now", "", "Evaluation time (RFC3339 or YYYY-MM-DD), default now")
	analyzeCmd.Flags().StringVar(&analyzePrevious, "previous", "", "JSON file holding a previous score, used for the trend")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	defer e.close()

	entries, err := readEntries(args[0], cmd.InOrStdin())
	if err != nil {
		return err
	}

	var previous *domain.MindWeatherScore
	if analyzePrevious != "" {
		data, err := os.ReadFile(analyzePrevious)
		if err != nil {
			return fmt.Errorf("reading previous score: %w", err)
		}
		previous = &domain.MindWeatherScore{}
		if err := json.Unmarshal(data, previous); err != nil {
			return fmt.Errorf("parsing previous score: %w", err)
		}
	}

	now, err := parseEntryTime(analyzeNow, time.Now())
	if err != nil {
		return err
	}

	report := e.calc.Analyze(entries, previous, now)
	e.log.Debug("analyzed entries", zap.Int("entries", len(entries)), zap.Float64("overall", report.Score.OverallScore))

	out := cmd.OutOrStdout()
	if flagJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	fmt.Fprint(out, output.RenderWeather("Mind Weather", report.Score, &report.Breakdown))
	fmt.Fprintln(out)
	return nil
}

// readEntries decodes a JSON entry array from path, or from stdin for "-".
func readEntries(path string, stdin io.Reader) ([]domain.JournalEntry, error) {
	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening entries: %w", err)
		}
		defer f.Close()
		r = f
	}

	var entries []domain.JournalEntry
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("parsing entries: %w", err)
	}
	return entries, nil
}
