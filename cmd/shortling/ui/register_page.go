package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/shortling/shortling/pkg/core/domain"
	"github.com/shortling/shortling/pkg/ports"
)

type registerResultMsg struct {
	err error
}

type registerModel struct {
	session ports.SessionService
	styles  Styles

	inputs []textinput.Model // username, email, password, confirm
	focus  int
	errs   domain.FieldErrors

	submitting bool
}

var registerLabels = []string{"Username", "Email", "Password", "Confirm password"}
var registerErrKeys = []string{"username", "email", "password", "confirmPassword"}

func newRegisterModel(session ports.SessionService, styles Styles) registerModel {
	inputs := make([]textinput.Model, 4)
	for i := range inputs {
		ti := textinput.New()
		ti.CharLimit = 128
		inputs[i] = ti
	}
	inputs[0].Placeholder = "username"
	inputs[1].Placeholder = "you@example.com"
	inputs[2].Placeholder = "password"
	inputs[2].EchoMode = textinput.EchoPassword
	inputs[3].Placeholder = "repeat password"
	inputs[3].EchoMode = textinput.EchoPassword
	inputs[0].Focus()

	return registerModel{
		session: session,
		styles:  styles,
		inputs:  inputs,
	}
}

func (m registerModel) reset() registerModel {
	return newRegisterModel(m.session, m.styles)
}

func (m registerModel) Update(msg tea.Msg) (registerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case registerResultMsg:
		m.submitting = false
		if msg.err == nil {
			// Registration never authenticates; the user signs in next.
			return m, switchPage(PageLogin)
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			return m.setFocus(m.focus + 1), nil
		case "shift+tab", "up":
			return m.setFocus(m.focus - 1), nil
		case "enter":
			if m.focus < len(m.inputs)-1 {
				return m.setFocus(m.focus + 1), nil
			}
			if m.submitting {
				return m, nil
			}
			return m.submit()
		case "esc":
			return m, switchPage(PageLogin)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m registerModel) setFocus(idx int) registerModel {
	n := len(m.inputs)
	m.focus = ((idx % n) + n) % n
	for i := range m.inputs {
		if i == m.focus {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return m
}

func (m registerModel) submit() (registerModel, tea.Cmd) {
	profile := domain.Profile{
		Username: strings.TrimSpace(m.inputs[0].Value()),
		Email:    strings.TrimSpace(m.inputs[1].Value()),
		Password: m.inputs[2].Value(),
	}
	if errs := domain.ValidateRegistration(profile, m.inputs[3].Value()); errs != nil {
		m.errs = errs
		return m, nil
	}
	m.errs = nil
	m.submitting = true

	session := m.session
	return m, func() tea.Msg {
		return registerResultMsg{err: session.Register(context.Background(), profile)}
	}
}

func (m registerModel) View() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Create account") + "\n")
	sb.WriteString(m.styles.Subtitle.Render("Short links, long reach") + "\n\n")

	for i, input := range m.inputs {
		sb.WriteString(m.styles.Label.Render(registerLabels[i]) + "\n")
		sb.WriteString(input.View() + "\n")
		if msg, ok := m.errs[registerErrKeys[i]]; ok {
			sb.WriteString(m.styles.Error.Render(msg) + "\n")
		}
		sb.WriteString("\n")
	}

	if m.submitting {
		sb.WriteString(m.styles.Faint.Render("Creating account..."))
	} else {
		sb.WriteString(m.styles.Help.Render("enter next/submit • esc back to sign in"))
	}
	return sb.String()
}
