package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	back      key.Binding
	summarize key.Binding
	subscribe key.Binding
	watch     key.Binding
	filter    key.Binding
	toggle    key.Binding
	theme     key.Binding
	copy      key.Binding
	export    key.Binding
	quit      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		summarize: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "summarize")),
		subscribe: key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "subscribe")),
		watch:     key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "watch")),
		filter:    key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter")),
		toggle:    key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "view")),
		theme:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		copy:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy")),
		export:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export")),
		quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.enter},
		{k.summarize, k.subscribe, k.watch},
		{k.filter, k.toggle, k.theme},
		{k.copy, k.export, k.quit},
	}
}
