package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/shortling/shortling/pkg/core/domain"
)

// RenderBarChart draws a horizontal bar per day, scaled against the series
// peak. Zero-click days still get a row: a day the backend omitted is a day
// with no clicks, not a day to hide.
func RenderBarChart(series domain.ClickSeries, width int, styles Styles) string {
	if len(series.Points) == 0 {
		return styles.Faint.Render("No click data for this period.")
	}

	peak := series.Peak()
	barWidth := width - 24
	if barWidth < 10 {
		barWidth = 10
	}

	var sb strings.Builder
	for _, p := range series.Points {
		filled := 0
		if peak > 0 {
			filled = int(float64(p.Count) / float64(peak) * float64(barWidth))
		}
		if p.Count > 0 && filled == 0 {
			filled = 1
		}
		sb.WriteString(fmt.Sprintf("%s %s %d\n",
			styles.Faint.Render(p.Date.Format("Jan 02")),
			styles.Bar.Render(strings.Repeat("█", filled)),
			p.Count))
	}
	return strings.TrimRight(sb.String(), "\n")
}

// RenderStatCards renders the four summary cards shown above the chart.
func RenderStatCards(series domain.ClickSeries, styles Styles) string {
	trend := series.Trend()
	trendText := fmt.Sprintf("%.1f%%", trend)
	if trend >= 0 {
		trendText = "+" + trendText
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		statCard("Total Clicks", fmt.Sprintf("%d", series.Total()), styles),
		statCard("Daily Average", fmt.Sprintf("%d", series.Average()), styles),
		statCard("Peak Day", fmt.Sprintf("%d", series.Peak()), styles),
		statCard("Trend", trendText, styles),
	)
}

func statCard(label, value string, styles Styles) string {
	content := styles.Faint.Render(label) + "\n" + styles.StatNum.Render(value)
	return styles.StatCard.Render(content)
}
