package output

import (
	"fmt"
	"strings"

	"github.com/blackwell-systems/mindweather/internal/domain"
	"github.com/blackwell-systems/mindweather/internal/weather"
)

// Condition names the weather for a score, from "Clear skies" down to
// "Storm".
func Condition(score float64) string {
	switch {
	case score >= 80:
		return "Clear skies"
	case score >= 60:
		return "Partly cloudy"
	case score >= 40:
		return "Overcast"
	case score >= 20:
		return "Rain"
	default:
		return "Storm"
	}
}

// RenderWeather formats a full mind-weather report. The breakdown is
// optional; stored scores do not carry one.
func RenderWeather(title string, score domain.MindWeatherScore, breakdown *weather.Breakdown) string {
	var sb strings.Builder

	sb.WriteString(Section(title))
	sb.WriteString("\n\n")
	fmt.Fprintf(&sb, " %s %s\n", StyleBold.Render(Condition(score.OverallScore)), ScoreBar(score.OverallScore, 30))
	fmt.Fprintf(&sb, " %s  %s\n\n", RiskBadge(score.BurnoutRisk)+" burnout risk", TrendLabel(score.TrendDirection))

	metric := func(label, value string) {
		fmt.Fprintf(&sb, " %s%s\n", StyleLabel.Render(label), StyleValue.Render(value))
	}
	metric("Negativity rate", fmt.Sprintf("%.0f%%", score.NegativityRate*100))
	metric("Sentiment average", fmt.Sprintf("%+.2f", score.SentimentAverage))
	metric("Theme diversity", fmt.Sprintf("%.2f", score.DiversityScore))
	metric("Reflections (7d)", fmt.Sprintf("%d", score.ReflectionFrequency))

	if breakdown != nil {
		sb.WriteString(Section("Score Breakdown"))
		sb.WriteString("\n\n")
		tbl := NewTable("Component", "Points")
		tbl.AddRow("Negativity", fmt.Sprintf("%.1f", breakdown.Negativity))
		tbl.AddRow("Sentiment", fmt.Sprintf("%.1f", breakdown.Sentiment))
		tbl.AddRow("Diversity", fmt.Sprintf("%.1f", breakdown.Diversity))
		tbl.AddRow("Frequency", fmt.Sprintf("%.1f", breakdown.Frequency))
		sb.WriteString(indent(tbl.Render()))
	}

	if themes := RenderThemes(score.RepetitiveThemes); themes != "" {
		sb.WriteString(Section("Recurring Themes"))
		sb.WriteString("\n\n")
		sb.WriteString(themes)
	}

	if len(score.WordFrequency) > 0 {
		sb.WriteString(Section("Top Words"))
		sb.WriteString("\n\n")
		sb.WriteString(" " + RenderWords(score.WordFrequency, 10) + "\n")
	}

	if len(score.Recommendations) > 0 {
		sb.WriteString(Section("Recommendations"))
		sb.WriteString("\n\n")
		for i, rec := range score.Recommendations {
			fmt.Fprintf(&sb, " %d. %s\n", i+1, rec)
		}
	}

	return sb.String()
}

// RenderThemes lists non-zero theme counts in canonical theme order.
func RenderThemes(themes map[domain.Theme]int) string {
	var sb strings.Builder
	for _, theme := range domain.Themes {
		count := themes[theme]
		if count == 0 {
			continue
		}
		label := string(theme)
		for _, hr := range domain.HighRiskThemes {
			if theme == hr {
				label = StyleWarning.Render(label)
			}
		}
		fmt.Fprintf(&sb, " %s%s\n", StyleLabel.Render(label), StyleMuted.Render(fmt.Sprintf("%d entries", count)))
	}
	return sb.String()
}

// RenderWords joins the first n words of a frequency table as "word×count".
func RenderWords(wf domain.WordFrequency, n int) string {
	if n > 0 && len(wf) > n {
		wf = wf[:n]
	}
	parts := make([]string, len(wf))
	for i, wc := range wf {
		parts[i] = fmt.Sprintf("%s×%d", wc.Word, wc.Count)
	}
	return strings.Join(parts, StyleMuted.Render(" · "))
}

func indent(s string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, l := range lines {
		lines[i] = " " + l
	}
	return strings.Join(lines, "\n") + "\n"
}
