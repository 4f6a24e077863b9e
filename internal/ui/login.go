package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// loginView is the email/password sign-in form. Provider errors render
// inline and leave the form contents intact.
type loginView struct {
	app     *App
	inputs  []textinput.Model
	focus   int
	busy    bool
	errText string
	spin    spinner.Model
}

func newLoginView(app *App) viewModel {
	email := textinput.New()
	email.Placeholder = app.str.EmailLabel
	email.CharLimit = 120
	email.Focus()

	password := textinput.New()
	password.Placeholder = app.str.PasswordLabel
	password.CharLimit = 120
	password.EchoMode = textinput.EchoPassword

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return &loginView{
		app:    app,
		inputs: []textinput.Model{email, password},
		spin:   spin,
	}
}

func (v *loginView) Init() tea.Cmd {
	return textinput.Blink
}

func (v *loginView) capturesInput() bool { return true }

func (v *loginView) Update(msg tea.Msg) (viewModel, tea.Cmd) {
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

func (v *loginView) setFocus(i int) {
	v.inputs[v.focus].Blur()
	v.focus = i
	v.inputs[v.focus].Focus()
}

func (v *loginView) submit() tea.Cmd {
	email := strings.TrimSpace(v.inputs[0].Value())
	password := v.inputs[1].Value()
	if email == "" || password == "" {
		return nil
	}

	v.busy = true
	v.errText = ""

	return tea.Batch(v.spin.Tick, func() tea.Msg {
		user, err := v.app.oracle.SignIn(v.app.ctx, email, password)
		return signInDoneMsg{user: user, err: err}
	})
}

func (v *loginView) View() string {
	return renderAuthForm(v.app.str.LoginTitle, v.inputs, v.busy,
		v.spin.View()+" "+v.app.str.LoggingIn, v.errText, v.app.str)
}

// renderAuthForm is shared by the login and register forms.
func renderAuthForm(title string, inputs []textinput.Model, busy bool, busyLine, errText string, str Strings) string {
	var b strings.Builder

	b.WriteString(styles.title.Render(title) + "\n")
	for _, input := range inputs {
		b.WriteString(input.View() + "\n")
	}

	switch {
	case busy:
		b.WriteString("\n" + busyLine + "\n")
	case errText != "":
		b.WriteString("\n" + styles.err.Render(fmt.Sprintf(str.ErrorPrefix, errText)) + "\n")
	}

	b.WriteString("\n" + styles.help.Render("tab: next field • enter: submit • esc: home"))
	return b.String()
}
