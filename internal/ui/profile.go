package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// profileView shows the signed-in user's account attributes and hosts a
// logout control; the sign-out flow itself runs in the root model.
type profileView struct {
	app *App
}

func newProfileView(app *App) viewModel {
	return &profileView{app: app}
}

func (v *profileView) Init() tea.Cmd { return nil }

func (v *profileView) Update(msg tea.Msg) (viewModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "l", "enter":
			return v, func() tea.Msg { return logoutRequestMsg{} }
		case "esc":
			return v, func() tea.Msg { return navigateMsg{path: rootPath} }
		}
	}
	return v, nil
}

func (v *profileView) View() string {
	str := v.app.str
	user := v.app.oracle.CurrentUser()
	if user == nil {
		// The router guard redirects before this renders; the check covers
		// the window between sign-out and remount.
		return styles.warn.Render(str.LoginRequired)
	}

	verified := styles.warn.Render(str.NotVerified)
	if user.EmailVerified {
		verified = styles.ok.Render(str.EmailVerified)
	}

	var b strings.Builder
	b.WriteString(styles.title.Render(str.ProfileTitle) + "\n")
	b.WriteString(fmt.Sprintf("%s: %s\n", str.EmailLabel, user.Email))
	b.WriteString(fmt.Sprintf("UID: %s\n", user.UID))
	b.WriteString(verified + "\n")
	b.WriteString("\n" + styles.help.Render("l: "+str.NavLogout+" • esc: home"))
	return b.String()
}
