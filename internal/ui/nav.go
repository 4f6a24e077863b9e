package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// navEntry is one link in the nav bar. A logout entry has no path; it
// triggers the sign-out flow instead of a navigation.
type navEntry struct {
	label string
	path  string
}

// navEntries regenerates the nav bar contents for the current auth state,
// the way the page swaps Login/Register for Profile/Logout.
func (m *Model) navEntries() []navEntry {
	str := m.app.str
	entries := []navEntry{
		{label: str.NavHome, path: rootPath},
		{label: str.NavAbout, path: aboutPath},
		{label: str.NavContact, path: contactPath},
	}

	if m.app.oracle.IsAuthenticated() {
		entries = append(entries,
			navEntry{label: str.NavProfile, path: profilePath},
			navEntry{label: str.NavAuthTest, path: authTestPath},
			navEntry{label: str.NavLogout},
		)
	} else {
		entries = append(entries,
			navEntry{label: str.NavLogin, path: loginPath},
			navEntry{label: str.NavRegister, path: registerPath},
		)
	}

	return entries
}

// renderNav highlights the entry whose path matches the current one.
func (m *Model) renderNav() string {
	var parts []string
	for i, entry := range m.navEntries() {
		label := fmt.Sprintf("[%d] %s", i+1, entry.label)
		switch {
		case entry.path == "" && m.logoutBusy:
			label = styles.muted.Render(m.app.str.LoggingOut)
		case entry.path != "" && entry.path == m.path:
			label = styles.active.Render(label)
		default:
			label = styles.muted.Render(label)
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, "  ")
}

// activateNav follows the i-th nav entry.
func (m *Model) activateNav(i int) tea.Cmd {
	entries := m.navEntries()
	if i < 0 || i >= len(entries) {
		return nil
	}

	entry := entries[i]
	if entry.path == "" {
		if m.logoutBusy {
			return nil
		}
		return m.signOut()
	}
	return m.navigate(entry.path)
}
