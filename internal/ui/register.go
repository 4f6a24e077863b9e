package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/vidsum/internal/session"
)

// registerView is the account creation form. Password rules (minimum
// length, confirmation match) are checked locally before the provider is
// called.
type registerView struct {
	app     *App
	inputs  []textinput.Model
	focus   int
	busy    bool
	errText string
	spin    spinner.Model
}

func newRegisterView(app *App) viewModel {
	email := textinput.New()
	email.Placeholder = app.str.EmailLabel
	email.CharLimit = 120
	email.Focus()

	password := textinput.New()
	password.Placeholder = app.str.PasswordLabel
	password.CharLimit = 120
	password.EchoMode = textinput.EchoPassword

	confirm := textinput.New()
	confirm.Placeholder = app.str.ConfirmLabel
	confirm.CharLimit = 120
	confirm.EchoMode = textinput.EchoPassword

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return &registerView{
		app:    app,
		inputs: []textinput.Model{email, password, confirm},
		spin:   spin,
	}
}

func (v *registerView) Init() tea.Cmd {
	return textinput.Blink
}

func (v *registerView) capturesInput() bool { return true }

func (v *registerView) Update(msg tea.Msg) (viewModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if v.busy {
			return v, nil
		}
		switch msg.String() {
		case "tab", "down":
			v.setFocus((v.focus + 1) % len(v.inputs))
			return v, nil
		case "shift+tab", "up":
			v.setFocus((v.focus + len(v.inputs) - 1) % len(v.inputs))
			return v, nil
		case "enter":
			if v.focus < len(v.inputs)-1 {
				v.setFocus(v.focus + 1)
				return v, nil
			}
			return v, v.submit()
		case "esc":
			return v, func() tea.Msg { return navigateMsg{path: rootPath} }
		}

	case spinner.TickMsg:
		if v.busy {
			var cmd tea.Cmd
			v.spin, cmd = v.spin.Update(msg)
			return v, cmd
		}
		return v, nil

	case signInDoneMsg:
		v.busy = false
		if msg.err != nil {
			v.errText = msg.err.Error()
			return v, nil
		}
		return v, func() tea.Msg { return navigateMsg{path: rootPath} }
	}

	var cmd tea.Cmd
	v.inputs[v.focus], cmd = v.inputs[v.focus].Update(msg)
	return v, cmd
}

func (v *registerView) setFocus(i int) {
	v.inputs[v.focus].Blur()
	v.focus = i
	v.inputs[v.focus].Focus()
}

func (v *registerView) submit() tea.Cmd {
	email := strings.TrimSpace(v.inputs[0].Value())
	password := v.inputs[1].Value()
	confirm := v.inputs[2].Value()
	if email == "" || password == "" {
		return nil
	}

	if err := session.ValidatePassword(password, confirm); err != nil {
		v.errText = err.Error()
		return nil
	}

	v.busy = true
	v.errText = ""

	return tea.Batch(v.spin.Tick, func() tea.Msg {
		user, err := v.app.oracle.SignUp(v.app.ctx, email, password)
		return signInDoneMsg{user: user, err: err}
	})
}

func (v *registerView) View() string {
	return renderAuthForm(v.app.str.RegisterTitle, v.inputs, v.busy,
		v.spin.View()+" "+v.app.str.Registering, v.errText, v.app.str)
}
