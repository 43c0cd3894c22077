package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/shortling/shortling/pkg/core/domain"
	"github.com/shortling/shortling/pkg/ports"
)

type seriesLoadedMsg struct {
	reqID  int
	series domain.ClickSeries
	err    error
}

type analyticsModel struct {
	links  ports.LinkService
	styles Styles

	shortURL string // empty = clicks across all links
	days     int
	series   domain.ClickSeries

	loading bool
	loaded  bool
	reqID   int
}

func newAnalyticsModel(links ports.LinkService, styles Styles) analyticsModel {
	return analyticsModel{
		links:  links,
		styles: styles,
		days:   7,
	}
}

func (m analyticsModel) enter(shortURL string) (analyticsModel, tea.Cmd) {
	m.shortURL = shortURL
	return m.load()
}

func (m analyticsModel) load() (analyticsModel, tea.Cmd) {
	m.loading = true
	m.reqID++

	id := m.reqID
	links := m.links
	shortURL := m.shortURL
	days := m.days
	return m, func() tea.Msg {
		end := time.Now()
		start := end.AddDate(0, 0, -days)

		var series domain.ClickSeries
		var err error
		if shortURL == "" {
			series, err = links.TotalClicks(context.Background(), start, end)
		} else {
			series, err = links.URLAnalytics(context.Background(), shortURL, start, end)
		}
		return seriesLoadedMsg{reqID: id, series: series, err: err}
	}
}

func (m analyticsModel) Update(msg tea.Msg) (analyticsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case seriesLoadedMsg:
		if msg.reqID != m.reqID {
			// A stale response from a period we already switched away from.
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			return m, nil
		}
		m.loaded = true
		m.series = msg.series
		return m, nil

	case tea.KeyMsg:
		if m.loading {
			return m, nil
		}
		switch msg.String() {
		case "1":
			return m.setDays(7)
		case "2":
			return m.setDays(30)
		case "3":
			return m.setDays(90)
		case "r":
			return m.load()
		case "esc":
			if m.shortURL != "" {
				return m, switchPage(PageLinks)
			}
		}
	}
	return m, nil
}

func (m analyticsModel) setDays(days int) (analyticsModel, tea.Cmd) {
	if m.days == days {
		return m, nil
	}
	m.days = days
	return m.load()
}

func (m analyticsModel) View(width int) string {
	var sb strings.Builder

	title := "Analytics"
	if m.shortURL != "" {
		title = "Analytics · " + m.shortURL
	}
	sb.WriteString(m.styles.Title.Render(title) + "\n")
	sb.WriteString(m.styles.Subtitle.Render(fmt.Sprintf("Last %d days", m.days)) + "\n\n")

	if m.loading {
		sb.WriteString(m.styles.Faint.Render("Loading..."))
		return sb.String()
	}
	if !m.loaded {
		sb.WriteString(m.styles.Faint.Render("No data yet."))
		return sb.String()
	}

	sb.WriteString(RenderStatCards(m.series, m.styles) + "\n\n")
	sb.WriteString(RenderBarChart(m.series, width, m.styles) + "\n")

	help := "1 7d • 2 30d • 3 90d • r reload"
	if m.shortURL != "" {
		help += " • esc back to list"
	}
	sb.WriteString("\n" + m.styles.Help.Render(help))
	return sb.String()
}
