package ui

import (
	"context"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/shortling/shortling/pkg/core/domain"
	"github.com/shortling/shortling/pkg/ports"
)

type shortenResultMsg struct {
	link *domain.Link
	err  error
}

type dashboardModel struct {
	links      ports.LinkService
	publicBase string
	styles     Styles

	input      textinput.Model
	inlineErr  string
	result     *domain.Link
	submitting bool
}

func newDashboardModel(links ports.LinkService, publicBase string, styles Styles) dashboardModel {
	input := textinput.New()
	input.Placeholder = "https://example.com/very-long-url"
	input.CharLimit = 2048
	input.Focus()

	return dashboardModel{
		links:      links,
		publicBase: strings.TrimRight(publicBase, "/"),
		styles:     styles,
		input:      input,
	}
}

func (m dashboardModel) reset() dashboardModel {
	return newDashboardModel(m.links, m.publicBase, m.styles)
}

func (m dashboardModel) shortLink() string {
	if m.result == nil {
		return ""
	}
	return m.publicBase + "/" + m.result.ShortURL
}

func (m dashboardModel) Update(msg tea.Msg) (dashboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case shortenResultMsg:
		m.submitting = false
		if msg.err == nil {
			m.result = msg.link
			m.input.Blur()
		}
		return m, nil

	case tea.KeyMsg:
		if m.result != nil {
			switch msg.String() {
			case "c":
				return m, m.copyCmd()
			case "n":
				return m.reset(), nil
			}
			return m, nil
		}

		if msg.String() == "enter" {
			if m.submitting {
				return m, nil
			}
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m dashboardModel) submit() (dashboardModel, tea.Cmd) {
	raw := strings.TrimSpace(m.input.Value())
	if err := domain.ValidateOriginalURL(raw); err != nil {
		m.inlineErr = err.Error()
		return m, nil
	}
	m.inlineErr = ""
	m.submitting = true

	links := m.links
	return m, func() tea.Msg {
		link, err := links.Shorten(context.Background(), raw)
		return shortenResultMsg{link: link, err: err}
	}
}

// copyCmd writes the short link to the system clipboard. A clipboard failure
// is a toast and nothing else; no state changes.
func (m dashboardModel) copyCmd() tea.Cmd {
	shortLink := m.shortLink()
	return func() tea.Msg {
		if err := clipboard.WriteAll(shortLink); err != nil {
			return ToastMsg{Text: "Failed to copy", IsErr: true}
		}
		return ToastMsg{Text: "Copied to clipboard!"}
	}
}

func (m dashboardModel) View() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Shorten your URL") + "\n")
	sb.WriteString(m.styles.Subtitle.Render("Create short, memorable links that are easy to share") + "\n\n")

	sb.WriteString(m.styles.Label.Render("Enter your long URL") + "\n")
	sb.WriteString(m.input.View() + "\n")
	if m.inlineErr != "" {
		sb.WriteString(m.styles.Error.Render(m.inlineErr) + "\n")
	}

	switch {
	case m.submitting:
		sb.WriteString("\n" + m.styles.Faint.Render("Shortening..."))
	case m.result != nil:
		sb.WriteString("\n" + m.styles.Label.Render("Your short URL") + "\n")
		sb.WriteString(m.styles.ShortURL.Render(m.shortLink()) + "\n")
		sb.WriteString(m.styles.Faint.Render("→ "+m.result.OriginalURL) + "\n")
		sb.WriteString("\n" + m.styles.Help.Render("c copy • n shorten another"))
	default:
		sb.WriteString("\n" + m.styles.Help.Render("enter shorten"))
	}
	return sb.String()
}
