package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// authTestView is the diagnostic page: it shows the current token and
// verifies it against the backend, reporting the decoded claims.
type authTestView struct {
	app        *App
	token      string
	claims     claimsDisplay
	haveClaims bool
	busy       bool
	errText    string
	spin       spinner.Model
}

type claimsDisplay struct {
	uid           string
	email         string
	emailVerified bool
	authTime      time.Time
}

func newAuthTestView(app *App) viewModel {
	spin := spinner.New()
	spin.Spinner = spinner.Dot
	return &authTestView{app: app, spin: spin}
}

func (v *authTestView) Init() tea.Cmd {
	return func() tea.Msg {
		token, err := v.app.oracle.IDToken(v.app.ctx)
		return tokenFetchedMsg{token: token, err: err}
	}
}

func (v *authTestView) Update(msg tea.Msg) (viewModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "r", "enter":
			if v.busy {
				return v, nil
			}
			return v, v.verify()
		case "c":
			if v.token == "" {
				return v, nil
			}
			token := v.token
			str := v.app.str
			return v, func() tea.Msg {
				if err := clipboard.WriteAll(token); err != nil {
					return noteMsg{err: err}
				}
				return noteMsg{text: str.TokenCopied}
			}
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

	case tokenFetchedMsg:
		if msg.err != nil {
			v.errText = msg.err.Error()
			return v, nil
		}
		v.token = msg.token
		return v, nil

	case verifyResultMsg:
		v.busy = false
		if msg.err != nil {
			v.haveClaims = false
			v.errText = msg.err.Error()
			return v, nil
		}
		v.errText = ""
		v.haveClaims = true
		v.claims = claimsDisplay{
			uid:           msg.claims.UID,
			email:         msg.claims.Email,
			emailVerified: msg.claims.EmailVerified,
			authTime:      time.Unix(msg.claims.AuthTime, 0),
		}
		return v, nil
	}

	return v, nil
}

func (v *authTestView) verify() tea.Cmd {
	v.busy = true
	v.errText = ""
	return tea.Batch(v.spin.Tick, func() tea.Msg {
		claims, err := v.app.backend.VerifyAuth(v.app.ctx)
		return verifyResultMsg{claims: claims, err: err}
	})
}

func (v *authTestView) View() string {
	str := v.app.str
	var b strings.Builder

	b.WriteString(styles.title.Render(str.AuthTestTitle) + "\n")
	b.WriteString(styles.muted.Render(str.AuthTestHint) + "\n\n")

	if v.token != "" {
		preview := v.token
		if len(preview) > 20 {
			preview = preview[:20] + "..."
		}
		b.WriteString(fmt.Sprintf("Token: %s\n", preview))
	}

	switch {
	case v.busy:
		b.WriteString("\n" + v.spin.View() + " " + str.VerifyAction + "...\n")
	case v.errText != "":
		b.WriteString("\n" + styles.err.Render(fmt.Sprintf(str.ErrorPrefix, v.errText)) + "\n")
	case v.haveClaims:
		verified := str.NotVerified
		if v.claims.emailVerified {
			verified = str.EmailVerified
		}
		b.WriteString("\n" + styles.ok.Render("✓") + "\n")
		b.WriteString(fmt.Sprintf("UID: %s\n", v.claims.uid))
		b.WriteString(fmt.Sprintf("%s: %s\n", str.EmailLabel, v.claims.email))
		b.WriteString(verified + "\n")
		b.WriteString(fmt.Sprintf("auth_time: %s\n", v.claims.authTime.Local().Format(time.RFC1123)))
	}

	b.WriteString("\n" + styles.help.Render("r: "+str.VerifyAction+" • c: copy token • esc: home"))
	return b.String()
}
