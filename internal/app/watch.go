package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/blackwell-systems/mindweather/internal/alerts"
	"github.com/blackwell-systems/mindweather/internal/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	watchInterval string
	watchQuiet    bool
	watchNotify   bool
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Recompute periodically and alert on changes",
	Long: `Run in the foreground, recomputing and storing the user's mind weather
at every interval. Alerts (risk escalation, score drop, new themes) are
printed and, unless --notify=false, sent as desktop notifications. An alert
is repeated only after it has cleared for a cycle.

Examples:
  mindweather watch                  # check every hour (ctrl-c to stop)
  mindweather watch --interval 15m
  mindweather watch --quiet          # notifications only`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&watchInterval, "interval", "1h", "Check interval as duration string (e.g. 15m, 6h)")
	watchCmd.Flags().BoolVar(&watchQuiet, "quiet", false, "Suppress terminal output, only send notifications")
	watchCmd.Flags().BoolVar(&watchNotify, "notify", true, "Send desktop notifications")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	interval, err := time.ParseDuration(watchInterval)
	if err != nil {
		return fmt.Errorf("invalid interval %q: %w", watchInterval, err)
	}
	if interval < time.Minute {
		return fmt.Errorf("interval must be at least 1m, got %s", interval)
	}

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

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := weatherRunner{
		entries:  db,
		scores:   db,
		calc:     e.calc,
		lookback: e.cfg.Lookback(),
		persist:  true,
		log:      e.log,
	}
	user := e.user()
	out := cmd.OutOrStdout()

	check := func(ctx context.Context) ([]alerts.Alert, error) {
		res, err := runner.run(ctx, user, time.Now())
		if err != nil {
			return nil, err
		}
		if !watchQuiet {
			fmt.Fprintf(out, "[%s] %s %s %.0f/100, risk %s\n",
				time.Now().Format("15:04:05"),
				output.StyleSuccess.Render("✓"),
				user,
				res.Score.OverallScore,
				res.Score.BurnoutRisk)
		}
		return res.Alerts, nil
	}

	alertFn := func(a alerts.Alert) {
		if watchNotify {
			if err := alerts.Notify(a); err != nil {
				e.log.Warn("notification failed", zap.Error(err))
			}
		}
		if !watchQuiet {
			printAlert(out, a)
		}
	}

	if !watchQuiet {
		fmt.Fprintf(out, "mindweather watching %s... (checking every %s)\n", user, interval)
	}
	e.log.Info("watch started", zap.String("user", string(user)), zap.Duration("interval", interval))

	err = alerts.NewMonitor(interval, check, alertFn).Run(ctx)
	if errors.Is(err, context.Canceled) {
		if !watchQuiet {
			fmt.Fprintln(out, "\nStopped.")
		}
		return nil
	}
	return err
}

// printAlert formats and prints an alert to the terminal.
func printAlert(out io.Writer, a alerts.Alert) {
	fmt.Fprintf(out, "[%s] %s %s\n", a.Time.Format("15:04:05"), styleAlertLevel(a.Level), a.Title)
	if a.Message != "" {
		fmt.Fprintf(out, "         %s\n", a.Message)
	}
}
