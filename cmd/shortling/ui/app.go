package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/textinput"
	"go.uber.org/zap"

	"github.com/shortling/shortling/pkg/ports"
)

// Page identifies one of the client's screens.
type Page int

const (
	PageLogin Page = iota
	PageRegister
	PageDashboard
	PageLinks
	PageAnalytics
)

// switchPageMsg moves the app to another page. ShortURL targets the
// analytics page at a single link; empty means all links.
type switchPageMsg struct {
	page     Page
	shortURL string
}

func switchPage(p Page) tea.Cmd {
	return func() tea.Msg { return switchPageMsg{page: p} }
}

type toastExpiredMsg struct {
	id int
}

// App is the root bubbletea model. It owns page routing and the transient
// toast line; everything else lives in the page models.
type App struct {
	session ports.SessionService
	logger  *zap.Logger
	styles  Styles

	page      Page
	login     loginModel
	register  registerModel
	dashboard dashboardModel
	links     linksModel
	analytics analyticsModel

	toast    string
	toastErr bool
	toastID  int

	width  int
	height int
}

// NewApp builds the TUI over the injected services. A restored session skips
// straight to the dashboard, same as the web client it replaces.
func NewApp(session ports.SessionService, links ports.LinkService, publicBase string, logger *zap.Logger) App {
	if logger == nil {
		logger = zap.NewNop()
	}
	styles := DefaultStyles()

	app := App{
		session:   session,
		logger:    logger,
		styles:    styles,
		login:     newLoginModel(session, styles),
		register:  newRegisterModel(session, styles),
		dashboard: newDashboardModel(links, publicBase, styles),
		links:     newLinksModel(links, styles),
		analytics: newAnalyticsModel(links, styles),
		page:      PageLogin,
	}
	if session.Authenticated() {
		app.page = PageDashboard
	}
	return app
}

func (a App) Init() tea.Cmd {
	return textinput.Blink
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case ToastMsg:
		a.toast = msg.Text
		a.toastErr = msg.IsErr
		a.toastID++
		id := a.toastID
		return a, tea.Tick(3*time.Second, func(time.Time) tea.Msg {
			return toastExpiredMsg{id: id}
		})

	case toastExpiredMsg:
		if msg.id == a.toastID {
			a.toast = ""
		}
		return a, nil

	case switchPageMsg:
		return a.switchTo(msg)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit
		case "ctrl+d":
			if a.session.Authenticated() {
				return a.switchTo(switchPageMsg{page: PageDashboard})
			}
		case "ctrl+l":
			if a.session.Authenticated() {
				return a.switchTo(switchPageMsg{page: PageLinks})
			}
		case "ctrl+a":
			if a.session.Authenticated() {
				return a.switchTo(switchPageMsg{page: PageAnalytics})
			}
		case "ctrl+o":
			if a.session.Authenticated() {
				a.session.Logout()
				return a.switchTo(switchPageMsg{page: PageLogin})
			}
		}
	}

	return a.updatePage(msg)
}

func (a App) switchTo(msg switchPageMsg) (tea.Model, tea.Cmd) {
	a.page = msg.page
	var cmd tea.Cmd
	switch msg.page {
	case PageLinks:
		a.links, cmd = a.links.enter()
	case PageAnalytics:
		a.analytics, cmd = a.analytics.enter(msg.shortURL)
	case PageLogin:
		a.login = a.login.reset()
	case PageRegister:
		a.register = a.register.reset()
	case PageDashboard:
		a.dashboard = a.dashboard.reset()
	}
	return a, cmd
}

func (a App) updatePage(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.page {
	case PageLogin:
		a.login, cmd = a.login.Update(msg)
	case PageRegister:
		a.register, cmd = a.register.Update(msg)
	case PageDashboard:
		a.dashboard, cmd = a.dashboard.Update(msg)
	case PageLinks:
		a.links, cmd = a.links.Update(msg)
	case PageAnalytics:
		a.analytics, cmd = a.analytics.Update(msg)
	}
	return a, cmd
}

func (a App) View() string {
	var body string
	switch a.page {
	case PageLogin:
		body = a.login.View()
	case PageRegister:
		body = a.register.View()
	case PageDashboard:
		body = a.dashboard.View()
	case PageLinks:
		body = a.links.View(a.width, a.height)
	case PageAnalytics:
		body = a.analytics.View(a.width)
	}

	toast := ""
	if a.toast != "" {
		if a.toastErr {
			toast = "\n" + a.styles.Error.Render("✘ "+a.toast)
		} else {
			toast = "\n" + a.styles.Success.Render("✔ "+a.toast)
		}
	}

	help := a.styles.Help.Render(a.helpLine())
	return body + toast + "\n" + help
}

func (a App) helpLine() string {
	if !a.session.Authenticated() {
		return "ctrl+c quit"
	}
	return "ctrl+d dashboard • ctrl+l my urls • ctrl+a analytics • ctrl+o logout • ctrl+c quit"
}
