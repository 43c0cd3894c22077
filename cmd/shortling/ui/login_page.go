package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/shortling/shortling/pkg/core/domain"
	"github.com/shortling/shortling/pkg/ports"
)

type loginResultMsg struct {
	err error
}

type loginModel struct {
	session ports.SessionService
	styles  Styles

	username textinput.Model
	password textinput.Model
	focus    int
	errs     domain.FieldErrors

	submitting bool
}

func newLoginModel(session ports.SessionService, styles Styles) loginModel {
	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 64
	username.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 128
	password.EchoMode = textinput.EchoPassword

	return loginModel{
		session:  session,
		styles:   styles,
		username: username,
		password: password,
	}
}

func (m loginModel) reset() loginModel {
	fresh := newLoginModel(m.session, m.styles)
	return fresh
}

func (m loginModel) Update(msg tea.Msg) (loginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case loginResultMsg:
		m.submitting = false
		if msg.err == nil {
			// Navigation only happens on success; a failed login leaves the
			// form (and the session) exactly where it was.
			return m, switchPage(PageDashboard)
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "shift+tab", "up", "down":
			m = m.moveFocus(msg.String())
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}
			return m.submit()
		case "ctrl+r":
			return m, switchPage(PageRegister)
		}
	}

	var cmd tea.Cmd
	if m.focus == 0 {
		m.username, cmd = m.username.Update(msg)
	} else {
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd
}

func (m loginModel) moveFocus(string) loginModel {
	// Two fields, so every direction is a toggle.
	m.focus = (m.focus + 1) % 2
	if m.focus == 0 {
		m.username.Focus()
		m.password.Blur()
	} else {
		m.password.Focus()
		m.username.Blur()
	}
	return m
}

func (m loginModel) submit() (loginModel, tea.Cmd) {
	creds := domain.Credentials{
		Username: strings.TrimSpace(m.username.Value()),
		Password: m.password.Value(),
	}
	if errs := domain.ValidateLogin(creds); errs != nil {
		m.errs = errs
		return m, nil
	}
	m.errs = nil
	m.submitting = true

	session := m.session
	return m, func() tea.Msg {
		return loginResultMsg{err: session.Login(context.Background(), creds)}
	}
}

func (m loginModel) View() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Sign in") + "\n")
	sb.WriteString(m.styles.Subtitle.Render("Welcome back, shorten something") + "\n\n")

	sb.WriteString(m.styles.Label.Render("Username") + "\n")
	sb.WriteString(m.username.View() + "\n")
	if msg, ok := m.errs["username"]; ok {
		sb.WriteString(m.styles.Error.Render(msg) + "\n")
	}

	sb.WriteString("\n" + m.styles.Label.Render("Password") + "\n")
	sb.WriteString(m.password.View() + "\n")
	if msg, ok := m.errs["password"]; ok {
		sb.WriteString(m.styles.Error.Render(msg) + "\n")
	}

	if m.submitting {
		sb.WriteString("\n" + m.styles.Faint.Render("Signing in..."))
	} else {
		sb.WriteString("\n" + m.styles.Help.Render("enter sign in • ctrl+r create account"))
	}
	return sb.String()
}
