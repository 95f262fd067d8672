package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/blackwell-systems/mindweather/internal/domain"
	"github.com/blackwell-systems/mindweather/internal/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	reflectAt        string
	reflectSentiment float64
)

var reflectCmd = &cobra.Command{
	Use:   "reflect [text]",
	Short: "Record a journal entry",
	Long: `Store a short journal reflection for the current user. The text is
taken from the arguments, or read from stdin when no arguments are given
or the only argument is "-".

Examples:
  mindweather reflect "Tired today, but we laughed a lot at dinner."
  echo "Snapped at the kids before school." | mindweather reflect
  mindweather reflect --at 2026-03-12T21:00:00Z "Late entry for Thursday."`,
	RunE: runReflect,
}

func init() {
	reflectCmd.Flags().StringVar(&reflectAt, "at", "", "Entry time (RFC3339 or YYYY-MM-DD), default now")
	reflectCmd.Flags().Float64Var(&reflectSentiment, "sentiment", 0, "Sentiment in [-1,1] from an external analyzer, stored alongside the entry")
	rootCmd.AddCommand(reflectCmd)
}

func runReflect(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	defer e.close()

	text, err := reflectionText(args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	at, err := parseEntryTime(reflectAt, time.Now())
	if err != nil {
		return err
	}

	entry := &domain.JournalEntry{
		UserID:    e.user(),
		Text:      text,
		CreatedAt: at,
	}
	if cmd.Flags().Changed("sentiment") {
		if reflectSentiment < -1 || reflectSentiment > 1 {
			return fmt.Errorf("--sentiment must be within [-1,1], got %g", reflectSentiment)
		}
		s := reflectSentiment
		entry.ExternalSentiment = &s
	}

	db, err := e.openStore()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if _, err := db.InsertEntry(cmd.Context(), entry); err != nil {
		return fmt.Errorf("storing entry: %w", err)
	}
	e.log.Info("reflection recorded", zap.Int64("id", entry.ID), zap.String("user", string(entry.UserID)))

	if flagJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(entry)
	}

	fmt.Fprintf(cmd.OutOrStdout(), " %s Entry #%d saved for %s at %s\n",
		output.StyleSuccess.Render("✓"),
		entry.ID,
		output.StyleBold.Render(string(entry.UserID)),
		entry.CreatedAt.Local().Format("Jan 02 15:04"))
	fmt.Fprintf(cmd.OutOrStdout(), " %s\n", output.StyleMuted.Render("Run mindweather weather to see today's report"))
	return nil
}

// reflectionText joins args into the entry text, or reads stdin when args
// are empty or just "-".
func reflectionText(args []string, stdin io.Reader) (string, error) {
	var text string
	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		text = string(data)
	} else {
		text = strings.Join(args, " ")
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", errors.New("reflection text is empty")
	}
	return text, nil
}

// parseEntryTime accepts RFC3339 or a bare date (local midnight). Empty
// means now.
func parseEntryTime(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return now, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid --at %q: use RFC3339 or YYYY-MM-DD", s)
}
