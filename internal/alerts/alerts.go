// Package alerts compares consecutive mind-weather scores and reports the
// changes worth surfacing to a user.
package alerts

import (
	"fmt"
	"time"

	"github.com/blackwell-systems/mindweather/internal/domain"
)

// Alert levels.
const (
	LevelCritical = "critical"
	LevelWarning  = "warning"
	LevelInfo     = "info"
)

// ScoreDropThreshold is the point drop in overall score that raises a warning.
const ScoreDropThreshold = 15.0

// Alert represents a notable change between two scores.
type Alert struct {
	Level   string    `json:"level"` // "info", "warning", "critical"
	Title   string    `json:"title"`
	Message string    `json:"message"`
	Time    time.Time `json:"time"`
}

// Compare detects notable changes between the previous and current score.
// Alerts are ordered critical, then warning, then info. A nil previous score
// yields no alerts.
func Compare(prev, curr *domain.MindWeatherScore) []Alert {
	if prev == nil || curr == nil {
		return nil
	}
	now := time.Now()

	var alerts []Alert
	alerts = append(alerts, compareCritical(prev, curr, now)...)
	alerts = append(alerts, compareWarning(prev, curr, now)...)
	alerts = append(alerts, compareInfo(prev, curr, now)...)
	return alerts
}

func compareCritical(prev, curr *domain.MindWeatherScore, now time.Time) []Alert {
	if curr.BurnoutRisk == domain.RiskCritical && prev.BurnoutRisk != domain.RiskCritical {
		return []Alert{{
			Level:   LevelCritical,
			Title:   "Burnout risk is critical",
			Message: fmt.Sprintf("Risk rose from %s to critical (score %.0f)", prev.BurnoutRisk, curr.OverallScore),
			Time:    now,
		}}
	}
	return nil
}

func compareWarning(prev, curr *domain.MindWeatherScore, now time.Time) []Alert {
	var alerts []Alert

	// Escalation to critical is already reported above.
	if curr.BurnoutRisk != domain.RiskCritical && curr.BurnoutRisk.Severity() > prev.BurnoutRisk.Severity() {
		alerts = append(alerts, Alert{
			Level:   LevelWarning,
			Title:   "Burnout risk increased",
			Message: fmt.Sprintf("Risk rose from %s to %s", prev.BurnoutRisk, curr.BurnoutRisk),
			Time:    now,
		})
	}

	if drop := prev.OverallScore - curr.OverallScore; drop > ScoreDropThreshold {
		alerts = append(alerts, Alert{
			Level:   LevelWarning,
			Title:   "Mind weather dropped",
			Message: fmt.Sprintf("Score fell from %.0f to %.0f (-%.0f)", prev.OverallScore, curr.OverallScore, drop),
			Time:    now,
		})
	}

	for _, theme := range domain.Themes {
		count := curr.RepetitiveThemes[theme]
		if count > 0 && prev.RepetitiveThemes[theme] == 0 {
			alerts = append(alerts, Alert{
				Level:   LevelWarning,
				Title:   fmt.Sprintf("New theme: %s", theme),
				Message: fmt.Sprintf("First appearance in %d entr%s", count, plural(count, "y", "ies")),
				Time:    now,
			})
		}
	}

	return alerts
}

func compareInfo(prev, curr *domain.MindWeatherScore, now time.Time) []Alert {
	if prev.BurnoutRisk.Severity() > curr.BurnoutRisk.Severity() && curr.BurnoutRisk.Severity() >= 0 {
		return []Alert{{
			Level:   LevelInfo,
			Title:   "Burnout risk eased",
			Message: fmt.Sprintf("Risk fell from %s to %s", prev.BurnoutRisk, curr.BurnoutRisk),
			Time:    now,
		}}
	}
	return nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
