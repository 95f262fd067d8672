package app

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/blackwell-systems/mindweather/internal/domain"
	"github.com/blackwell-systems/mindweather/internal/output"
	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent scores with trends",
	Long: `List the most recent stored mind-weather scores for the user, newest
first, with the change from the day before.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 14, "Number of scores to show")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
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

	user := e.user()
	limit := historyLimit
	if limit > 0 {
		// One extra row gives the oldest shown score something to compare with.
		limit++
	}
	scores, err := db.ListScores(cmd.Context(), user, limit)
	if err != nil {
		return fmt.Errorf("loading history: %w", err)
	}

	shown := scores
	if historyLimit > 0 && len(shown) > historyLimit {
		shown = shown[:historyLimit]
	}

	out := cmd.OutOrStdout()
	if flagJSON {
		if shown == nil {
			shown = []domain.StoredScore{}
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(shown)
	}

	fmt.Fprintln(out, output.Section(fmt.Sprintf("History · %s", user)))
	fmt.Fprintln(out)
	if len(shown) == 0 {
		fmt.Fprintln(out, " No stored scores yet. Run mindweather weather to compute one.")
		return nil
	}

	fmt.Fprint(out, historyTable(scores, len(shown)).Render())
	fmt.Fprintln(out)
	return nil
}

// historyTable renders the first n of scores (newest first); each row's
// deltas compare with the next older score when there is one.
func historyTable(scores []domain.StoredScore, n int) *output.Table {
	tbl := output.NewTable("Date", "Score", "Change", "Risk", "Negativity", "Top themes")
	for i := 0; i < n && i < len(scores); i++ {
		s := scores[i].Score

		change := output.StyleMuted.Render("─")
		negativity := fmt.Sprintf("%.0f%%", s.NegativityRate*100)
		if i+1 < len(scores) {
			older := scores[i+1].Score
			change = output.TrendArrow(s.OverallScore-older.OverallScore, true)
			negativity += " " + output.TrendArrowPercent((s.NegativityRate-older.NegativityRate)*100, false)
		}

		tbl.AddRow(
			scores[i].ComputedOn,
			fmt.Sprintf("%.0f", s.OverallScore),
			change,
			output.RiskBadge(s.BurnoutRisk),
			negativity,
			topThemes(s.RepetitiveThemes, 2),
		)
	}
	return tbl
}

// topThemes names the n most frequent themes, ties in canonical order.
func topThemes(themes map[domain.Theme]int, n int) string {
	var picked []domain.Theme
	for len(picked) < n {
		var best domain.Theme
		bestCount := 0
		for _, t := range domain.Themes {
			if themes[t] > bestCount && !slices.Contains(picked, t) {
				best, bestCount = t, themes[t]
			}
		}
		if bestCount == 0 {
			break
		}
		picked = append(picked, best)
	}

	names := make([]string, len(picked))
	for i, t := range picked {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}
