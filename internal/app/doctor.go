package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/blackwell-systems/mindweather/internal/config"
	"github.com/blackwell-systems/mindweather/internal/domain"
	"github.com/blackwell-systems/mindweather/internal/lexicon"
	"github.com/blackwell-systems/mindweather/internal/output"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check whether the mindweather setup is healthy",
	Long: `Run a series of health checks against your configuration, lexicon and
database. Prints a pass/fail line for each check and a summary of how many
checks passed.`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

// doctorCheck holds the result of a single health check.
type doctorCheck struct {
	Name    string `json:"name"`
	Passed  bool   `json:"passed"`
	Message string `json:"message"`
}

// doctorOutput is the JSON-serializable result of the doctor command.
type doctorOutput struct {
	Checks      []doctorCheck `json:"checks"`
	PassedCount int           `json:"passed"`
	TotalCount  int           `json:"total"`
}

func runDoctor(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	defer e.close()

	checks := []doctorCheck{
		checkConfigFile(flagConfig),
		checkLexicon(e.cfg.LexiconPath),
		checkWeights(e.cfg.Weights),
	}

	db, err := e.openStore()
	if err != nil {
		checks = append(checks, doctorCheck{Name: "Database", Message: err.Error()})
	} else {
		defer func() { _ = db.Close() }()
		checks = append(checks,
			doctorCheck{Name: "Database", Passed: true, Message: e.cfg.DBPath},
			checkRecentEntries(cmd.Context(), db, e.user(), time.Now()),
			checkStoredScore(cmd.Context(), db, e.user()),
		)
	}

	passed := 0
	for _, c := range checks {
		if c.Passed {
			passed++
		}
	}

	out := cmd.OutOrStdout()
	if flagJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(doctorOutput{Checks: checks, PassedCount: passed, TotalCount: len(checks)})
	}

	fmt.Fprintln(out, output.Section("Doctor"))
	fmt.Fprintln(out)
	for _, c := range checks {
		renderDoctorCheck(out, c)
	}
	fmt.Fprintln(out)
	summary := fmt.Sprintf("%d/%d checks passed", passed, len(checks))
	if passed == len(checks) {
		fmt.Fprintf(out, " %s\n\n", output.StyleSuccess.Render(summary))
	} else {
		fmt.Fprintf(out, " %s\n\n", output.StyleWarning.Render(summary))
	}
	return nil
}

// renderDoctorCheck prints a single check result line.
func renderDoctorCheck(out io.Writer, c doctorCheck) {
	indicator := output.StyleSuccess.Render("✓")
	if !c.Passed {
		indicator = output.StyleWarning.Render("✗")
	}
	fmt.Fprintf(out, "  %s  %s %s\n", indicator, output.StyleLabel.Render(c.Name), output.StyleMuted.Render(c.Message))
}

// checkConfigFile reports which config file is in effect. Running on
// defaults passes.
func checkConfigFile(explicit string) doctorCheck {
	path := explicit
	if path == "" {
		path = filepath.Join(config.ConfigDir(), config.DefaultConfigFile)
	}
	if _, err := os.Stat(path); err != nil {
		if explicit != "" {
			return doctorCheck{Name: "Config file", Message: fmt.Sprintf("not found: %s", path)}
		}
		return doctorCheck{Name: "Config file", Passed: true, Message: "using built-in defaults"}
	}
	return doctorCheck{Name: "Config file", Passed: true, Message: path}
}

func checkLexicon(path string) doctorCheck {
	lx, err := lexicon.Load(path)
	if err != nil {
		return doctorCheck{Name: "Lexicon", Message: err.Error()}
	}
	source := "built-in"
	if path != "" {
		source = path
	}
	return doctorCheck{
		Name:   "Lexicon",
		Passed: true,
		Message: fmt.Sprintf("%s (%s, %d negative, %d positive, %d stop words)",
			source, lx.Language, len(lx.Negative), len(lx.Positive), len(lx.StopWords)),
	}
}

// checkWeights verifies the component weights add up to 100 so scores span
// the full range.
func checkWeights(w config.Weights) doctorCheck {
	sum := w.Negativity + w.Sentiment + w.Diversity + w.Frequency
	if math.Abs(sum-100) > 1e-9 {
		return doctorCheck{Name: "Score weights", Message: fmt.Sprintf("weights sum to %g, expected 100", sum)}
	}
	return doctorCheck{Name: "Score weights", Passed: true, Message: "sum to 100"}
}

func checkRecentEntries(ctx context.Context, entries domain.EntryStore, user domain.UserID, now time.Time) doctorCheck {
	list, err := entries.ListEntriesSince(ctx, user, now.AddDate(0, 0, -7))
	if err != nil {
		return doctorCheck{Name: "Recent entries", Message: err.Error()}
	}
	if len(list) == 0 {
		return doctorCheck{Name: "Recent entries", Message: fmt.Sprintf("no entries for %s in the last 7 days", user)}
	}
	return doctorCheck{Name: "Recent entries", Passed: true, Message: fmt.Sprintf("%d entries for %s in the last 7 days", len(list), user)}
}

func checkStoredScore(ctx context.Context, scores domain.ScoreStore, user domain.UserID) doctorCheck {
	latest, err := scores.GetLatestScore(ctx, user, time.Time{})
	if err != nil {
		return doctorCheck{Name: "Stored scores", Message: err.Error()}
	}
	if latest == nil {
		return doctorCheck{Name: "Stored scores", Message: "none yet, run mindweather weather"}
	}
	return doctorCheck{Name: "Stored scores", Passed: true, Message: fmt.Sprintf("latest %s (%.0f)", latest.ComputedOn, latest.Score.OverallScore)}
}
