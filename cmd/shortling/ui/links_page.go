package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/shortling/shortling/pkg/core/domain"
	"github.com/shortling/shortling/pkg/ports"
)

type linksLoadedMsg struct {
	reqID  int
	links  []domain.Link
	cached bool
	err    error
}

type linksModel struct {
	links  ports.LinkService
	styles Styles

	filter textinput.Model
	all    []domain.Link
	cached bool
	cursor int

	loading bool
	loaded  bool
	reqID   int
}

func newLinksModel(links ports.LinkService, styles Styles) linksModel {
	filter := textinput.New()
	filter.Placeholder = "Search URLs..."
	filter.CharLimit = 256
	filter.Focus()

	return linksModel{
		links:  links,
		styles: styles,
		filter: filter,
	}
}

// enter starts a fresh fetch. The request id makes late responses from a
// superseded fetch no-ops instead of clobbering newer data.
func (m linksModel) enter() (linksModel, tea.Cmd) {
	m.loading = true
	m.reqID++

	id := m.reqID
	links := m.links
	return m, func() tea.Msg {
		fetched, cached, err := links.List(context.Background())
		return linksLoadedMsg{reqID: id, links: fetched, cached: cached, err: err}
	}
}

func (m linksModel) Update(msg tea.Msg) (linksModel, tea.Cmd) {
	switch msg := msg.(type) {
	case linksLoadedMsg:
		if msg.reqID != m.reqID {
			return m, nil
		}
		m.loading = false
		m.loaded = true
		if msg.err != nil {
			// The failure toast already fired; keep whatever was on screen.
			return m, nil
		}
		m.all = msg.links
		m.cached = msg.cached
		m.cursor = 0
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down":
			if m.cursor < len(m.visible())-1 {
				m.cursor++
			}
			return m, nil
		case "enter":
			visible := m.visible()
			if m.cursor < len(visible) {
				target := visible[m.cursor].ShortURL
				return m, func() tea.Msg {
					return switchPageMsg{page: PageAnalytics, shortURL: target}
				}
			}
			return m, nil
		case "ctrl+r":
			if m.loading {
				return m, nil
			}
			return m.enter()
		}
	}

	var cmd tea.Cmd
	wasFilter := m.filter.Value()
	m.filter, cmd = m.filter.Update(msg)
	if m.filter.Value() != wasFilter {
		m.cursor = 0
	}
	return m, cmd
}

func (m linksModel) visible() []domain.Link {
	return domain.FilterLinks(m.all, strings.TrimSpace(m.filter.Value()))
}

func (m linksModel) View(width, height int) string {
	var sb strings.Builder
	title := "My URLs"
	if m.cached {
		title += " " + m.styles.Warning.Render("(cached)")
	}
	sb.WriteString(m.styles.Title.Render(title) + "\n")
	sb.WriteString(m.filter.View() + "\n\n")

	if m.loading {
		sb.WriteString(m.styles.Faint.Render("Loading..."))
		return sb.String()
	}

	visible := m.visible()
	if len(visible) == 0 {
		if strings.TrimSpace(m.filter.Value()) != "" {
			sb.WriteString(m.styles.Faint.Render("No URLs match your search query"))
		} else if m.loaded {
			sb.WriteString(m.styles.Faint.Render("You haven't created any short URLs yet"))
		}
		return sb.String()
	}

	maxRows := height - 8
	if maxRows < 3 {
		maxRows = len(visible)
	}
	for i, link := range visible {
		if i >= maxRows {
			sb.WriteString(m.styles.Faint.Render(fmt.Sprintf("… and %d more", len(visible)-maxRows)) + "\n")
			break
		}
		marker := "  "
		if i == m.cursor {
			marker = m.styles.ShortURL.Render("> ")
		}
		row := fmt.Sprintf("%s%s  %s  %s",
			marker,
			m.styles.ShortURL.Render(link.ShortURL),
			truncate(link.OriginalURL, width-40),
			m.styles.Faint.Render(fmt.Sprintf("%d clicks · %s", link.ClickCount, link.CreatedDate.Format("Jan 02, 2006"))))
		sb.WriteString(row + "\n")
	}

	sb.WriteString("\n" + m.styles.Help.Render("type to filter • ↑/↓ select • enter analytics • ctrl+r refresh"))
	return sb.String()
}

func truncate(s string, max int) string {
	if max < 12 {
		max = 12
	}
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
