package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/blackwell-systems/mindweather/internal/alerts"
	"github.com/blackwell-systems/mindweather/internal/domain"
	"github.com/blackwell-systems/mindweather/internal/output"
	"github.com/blackwell-systems/mindweather/internal/weather"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	weatherAllUsers bool
	weatherDryRun   bool
	weatherParallel int
)

var weatherCmd = &cobra.Command{
	Use:   "weather",
	Short: "Compute and store today's mind weather",
	Long: `Score the journal entries from the lookback window, compare with the
most recent score from an earlier day, store the result for today and print
the report together with any alerts (risk escalation, score drop, new
recurring themes).

Running it again on the same day replaces that day's score.`,
	RunE: runWeather,
}

func init() {
	weatherCmd.Flags().BoolVar(&weatherAllUsers, "all-users", false, "Compute for every user with entries")
	weatherCmd.Flags().BoolVar(&weatherDryRun, "dry-run", false, "Compute and print without storing the score")
	weatherCmd.Flags().IntVar(&weatherParallel, "parallel", 4, "Users computed concurrently with --all-users")
	rootCmd.AddCommand(weatherCmd)
}

// weatherResult is one user's computation, as printed with --json.
type weatherResult struct {
	UserID    domain.UserID           `json:"user_id"`
	Score     domain.MindWeatherScore `json:"score"`
	Breakdown weather.Breakdown       `json:"breakdown"`
	Previous  *domain.StoredScore     `json:"previous,omitempty"`
	Alerts    []alerts.Alert          `json:"alerts"`
	Entries   int                     `json:"entry_count"`
	Stored    bool                    `json:"stored"`
}

func runWeather(cmd *cobra.Command, args []string) error {
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

	w := weatherRunner{
		entries:  db,
		scores:   db,
		calc:     e.calc,
		lookback: e.cfg.Lookback(),
		persist:  !weatherDryRun,
		log:      e.log,
	}

	users := []domain.UserID{e.user()}
	if weatherAllUsers {
		users, err = db.ListUsers(cmd.Context())
		if err != nil {
			return fmt.Errorf("listing users: %w", err)
		}
	}

	results, err := w.runAll(cmd.Context(), users, time.Now(), weatherParallel)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if flagJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if weatherAllUsers {
			return enc.Encode(results)
		}
		return enc.Encode(results[0])
	}

	if len(results) == 0 {
		fmt.Fprintln(out, " No journal entries yet. Start with: mindweather reflect \"...\"")
		return nil
	}
	for _, r := range results {
		renderWeatherResult(out, r)
	}
	return nil
}

// weatherRunner computes, compares and persists scores for users.
type weatherRunner struct {
	entries  domain.EntryStore
	scores   domain.ScoreStore
	calc     *weather.Calculator
	lookback time.Duration
	persist  bool
	log      *zap.Logger
}

// run computes one user's score at now.
func (w weatherRunner) run(ctx context.Context, user domain.UserID, now time.Time) (weatherResult, error) {
	entries, err := w.entries.ListEntriesSince(ctx, user, now.Add(-w.lookback))
	if err != nil {
		return weatherResult{}, fmt.Errorf("loading entries for %s: %w", user, err)
	}

	prev, err := w.scores.GetLatestScore(ctx, user, now)
	if err != nil {
		return weatherResult{}, fmt.Errorf("loading previous score for %s: %w", user, err)
	}
	var prevScore *domain.MindWeatherScore
	if prev != nil {
		prevScore = &prev.Score
	}

	report := w.calc.Analyze(entries, prevScore, now)
	res := weatherResult{
		UserID:    user,
		Score:     report.Score,
		Breakdown: report.Breakdown,
		Previous:  prev,
		Alerts:    alerts.Compare(prevScore, &report.Score),
		Entries:   len(entries),
	}
	if res.Alerts == nil {
		res.Alerts = []alerts.Alert{}
	}

	if w.persist {
		if _, err := w.scores.InsertScore(ctx, user, report.Score, now); err != nil {
			return weatherResult{}, fmt.Errorf("storing score for %s: %w", user, err)
		}
		res.Stored = true
	}

	w.log.Debug("weather computed",
		zap.String("user", string(user)),
		zap.Int("entries", len(entries)),
		zap.Float64("overall", report.Score.OverallScore),
		zap.String("risk", string(report.Score.BurnoutRisk)),
		zap.Int("alerts", len(res.Alerts)),
	)
	return res, nil
}

// runAll computes every user concurrently, at most parallel at a time, and
// returns results in input order. The first error cancels the rest.
func (w weatherRunner) runAll(ctx context.Context, users []domain.UserID, now time.Time, parallel int) ([]weatherResult, error) {
	if parallel <= 0 {
		parallel = 1
	}
	results := make([]weatherResult, len(users))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)
	for i, user := range users {
		g.Go(func() error {
			r, err := w.run(gctx, user, now)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func renderWeatherResult(out io.Writer, r weatherResult) {
	title := fmt.Sprintf("Mind Weather · %s", r.UserID)
	fmt.Fprint(out, output.RenderWeather(title, r.Score, &r.Breakdown))

	if len(r.Alerts) > 0 {
		fmt.Fprintln(out, output.Section("Alerts"))
		fmt.Fprintln(out)
		for _, a := range r.Alerts {
			fmt.Fprintf(out, " %s %s\n", styleAlertLevel(a.Level), output.StyleBold.Render(a.Title))
			fmt.Fprintf(out, "    %s\n", a.Message)
		}
	}

	fmt.Fprintln(out)
	switch {
	case r.Previous != nil:
		fmt.Fprintf(out, " %s\n", output.StyleMuted.Render(fmt.Sprintf(
			"%d entries · compared with %s (%.0f) %s",
			r.Entries, r.Previous.ComputedOn, r.Previous.Score.OverallScore,
			output.TrendArrow(r.Score.OverallScore-r.Previous.Score.OverallScore, true))))
	default:
		fmt.Fprintf(out, " %s\n", output.StyleMuted.Render(fmt.Sprintf("%d entries · no earlier score to compare", r.Entries)))
	}
	if !r.Stored {
		fmt.Fprintf(out, " %s\n", output.StyleMuted.Render("Dry run: score not stored"))
	}
	fmt.Fprintln(out)
}

func styleAlertLevel(level string) string {
	label := fmt.Sprintf("[%s]", level)
	switch level {
	case alerts.LevelCritical:
		return output.StyleError.Render(label)
	case alerts.LevelWarning:
		return output.StyleWarning.Render(label)
	default:
		return output.StyleMuted.Render(label)
	}
}
