// Package render formats air quality reports for chat delivery. Rendering is
// pure formatting: the only outside input is the clock, used to pick morning
// or evening framing.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirfuzzalot/discord-aqi-bot/internal/domain"
)

// divider is the fixed-width rule under each section heading.
const divider = "-------------------------------------"

// Window is the UTC hour range treated as "morning". Bounds are whole hours
// on the current UTC date, both inclusive.
type Window struct {
	StartHour int
	EndHour   int
}

// IsEvening reports whether the current time falls outside the morning
// window on today's UTC date. A window whose end precedes its start never
// matches (no midnight wraparound), so it always reads as evening.
func IsEvening(w Window) bool {
	now := clock.Now().UTC()
	start := time.Date(now.Year(), now.Month(), now.Day(), w.StartHour, 0, 0, 0, time.UTC)
	end := time.Date(now.Year(), now.Month(), now.Day(), w.EndHour, 0, 0, 0, time.UTC)

	morning := !now.Before(start) && !now.After(end)
	return !morning
}

// Message renders the full report: a fenced title naming the observation's
// weekday with morning or evening framing, then a fenced markdown body with
// the current conditions followed by one block per forecast, in input order.
func Message(obs domain.Observation, forecasts []domain.Forecast, w Window) string {
	var b strings.Builder

	b.WriteString("```\n")
	b.WriteString(title(obs.DateObserved.Weekday().String(), IsEvening(w)))
	b.WriteString("\n```\n")

	b.WriteString("```markdown\n")
	b.WriteString("Current AQI\n")
	b.WriteString(divider + "\n")
	fmt.Fprintf(&b, "Recorded: %s\n", obs.ObservedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "Location: %s\n", obs.ReportingArea)
	b.WriteString("\n")
	b.WriteString(rows(obs.Metrics.All()))
	b.WriteString("\n")

	for _, f := range forecasts {
		b.WriteString("\nForecast AQI\n")
		b.WriteString(divider + "\n")
		fmt.Fprintf(&b, "Forecast For: %s\n", f.DateForecast.Format(time.DateOnly))
		fmt.Fprintf(&b, "Location: %s\n", f.ReportingArea)
		b.WriteString("\n")
		b.WriteString(rows(f.Metrics.All()))
		b.WriteString("\n")
	}

	b.WriteString("```")
	return b.String()
}

func title(weekday string, evening bool) string {
	if evening {
		return "🎮 " + weekday + " Evening 😴 ↴"
	}
	return "🥞 " + weekday + " Morning 🍳 ↴"
}

// rows renders one padded line per present metric, in the fixed slot order.
// Nil slots produce no row.
func rows(metrics []*domain.Metric) string {
	var lines []string
	for _, m := range metrics {
		if m == nil {
			continue
		}
		lines = append(lines, fmt.Sprintf("%8s  |  %-8d", m.Name, m.AQI))
	}
	return strings.Join(lines, "\n")
}
