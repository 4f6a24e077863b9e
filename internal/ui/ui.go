package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/desertthunder/vidsum/internal/services"
	"github.com/desertthunder/vidsum/internal/session"
	"github.com/desertthunder/vidsum/internal/shared"
	"github.com/desertthunder/vidsum/internal/store"
)

// App bundles the dependencies every view reads: the session oracle, the
// backend client, the shared subscription set, and the locale table.
type App struct {
	ctx     context.Context
	oracle  *session.Oracle
	backend services.Backend
	subs    *store.Subscriptions
	logger  *log.Logger
	str     Strings
	locale  string
	theme   string
	width   int
	height  int

	sessionEvents chan session.Event
}

// NewApp wires the shared dependencies and subscribes to session
// transitions so they surface as messages in the event loop.
func NewApp(ctx context.Context, oracle *session.Oracle, backend services.Backend, subs *store.Subscriptions, logger *log.Logger, cfg *shared.Config) *App {
	locale := "en"
	theme := "light"
	if cfg != nil {
		if cfg.UI.Locale != "" {
			locale = cfg.UI.Locale
		}
		if cfg.UI.Theme != "" {
			theme = cfg.UI.Theme
		}
	}
	if logger == nil {
		logger = shared.NewLogger(nil)
	}

	app := &App{
		ctx:           ctx,
		oracle:        oracle,
		backend:       backend,
		subs:          subs,
		logger:        logger,
		str:           localeStrings(locale),
		locale:        locale,
		theme:         theme,
		sessionEvents: make(chan session.Event, 16),
	}

	oracle.Watch(func(event session.Event) {
		select {
		case app.sessionEvents <- event:
		default:
		}
	})

	return app
}

// viewModel is the contract every routed view implements.
type viewModel interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (viewModel, tea.Cmd)
	View() string
}

// inputCapturer marks views that own the keyboard while a text field is
// focused; global shortcuts stand down for them.
type inputCapturer interface {
	capturesInput() bool
}

// Model is the root application state: the router, the mounted view, and
// the auth-reactive navigation bar.
type Model struct {
	app        *App
	router     *Router
	path       string
	current    viewModel
	keys       keyMap
	help       help.Model
	note       string
	logoutBusy bool
}

// NewModel creates the root TUI model with the provided dependencies.
func NewModel(app *App) *Model {
	m := &Model{
		app:  app,
		keys: newKeyMap(),
		help: help.New(),
	}
	m.router = NewRouter(defaultRoutes(app))
	return m
}

// Init mounts the home view and starts listening for session events. A
// restored session also triggers the initial subscription fetch.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.navigate(rootPath), m.waitForSession()}
	if m.app.oracle.IsAuthenticated() {
		cmds = append(cmds, m.loadSubscriptions())
	}
	return tea.Batch(cmds...)
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.app.width = msg.Width
		m.app.height = msg.Height
		return m.forward(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case navigateMsg:
		m.note = ""
		return m, m.navigate(msg.path)

	case sessionChangedMsg:
		return m.handleSessionChange(msg.event)

	case subsLoadedMsg:
		if msg.err != nil {
			m.app.logger.Warnf("failed to load subscriptions: %v", msg.err)
		} else {
			m.app.subs.Replace(msg.subs)
		}
		return m, nil

	case logoutRequestMsg:
		if m.logoutBusy {
			return m, nil
		}
		return m, m.signOut()

	case logoutDoneMsg:
		m.logoutBusy = false
		if msg.err != nil {
			// Stay on the current view with the control re-enabled.
			m.app.logger.Errorf("sign out failed: %v", msg.err)
			m.note = styles.err.Render(msg.err.Error())
			return m, nil
		}
		return m, m.navigate(rootPath)

	case noteMsg:
		if msg.err != nil {
			m.note = styles.err.Render(msg.err.Error())
		} else {
			m.note = styles.ok.Render(msg.text)
		}
		return m, nil
	}

	return m.forward(msg)
}

// View renders the nav bar, the mounted view, and the status line.
func (m *Model) View() string {
	body := ""
	if m.current != nil {
		body = m.current.View()
	}

	out := m.renderNav() + "\n\n" + body
	if m.note != "" {
		out += "\n\n" + m.note
	}
	out += "\n\n" + m.help.ShortHelpView(m.keys.ShortHelp())
	return out
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if capturer, ok := m.current.(inputCapturer); ok && capturer.capturesInput() {
		return m.forward(msg)
	}

	switch key := msg.String(); key {
	case "q":
		return m, tea.Quit
	case "1", "2", "3", "4", "5", "6":
		m.note = ""
		return m, m.activateNav(int(key[0] - '1'))
	}

	return m.forward(msg)
}

// handleSessionChange re-runs the router so guards re-evaluate against the
// new auth state, mirroring the nav regeneration on auth transitions.
func (m *Model) handleSessionChange(event session.Event) (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{m.navigate(m.path), m.waitForSession()}

	if event.Authenticated {
		cmds = append(cmds, m.loadSubscriptions())
	} else {
		m.app.subs.Clear()
	}

	return m, tea.Batch(cmds...)
}

// navigate resolves a path through the router guards and mounts the view.
func (m *Model) navigate(path string) tea.Cmd {
	route, resolved := m.router.Resolve(path, m.app.oracle.IsAuthenticated())
	m.path = resolved
	m.current = route.New(m.app)
	return tea.Batch(tea.SetWindowTitle(route.Title), m.current.Init())
}

func (m *Model) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.current == nil {
		return m, nil
	}
	var cmd tea.Cmd
	m.current, cmd = m.current.Update(msg)
	return m, cmd
}

func (m *Model) waitForSession() tea.Cmd {
	return func() tea.Msg {
		return sessionChangedMsg{event: <-m.app.sessionEvents}
	}
}

func (m *Model) loadSubscriptions() tea.Cmd {
	return func() tea.Msg {
		subs, err := m.app.backend.Subscriptions(m.app.ctx)
		return subsLoadedMsg{subs: subs, err: err}
	}
}

func (m *Model) signOut() tea.Cmd {
	m.logoutBusy = true
	return func() tea.Msg {
		return logoutDoneMsg{err: m.app.oracle.SignOut(m.app.ctx)}
	}
}
