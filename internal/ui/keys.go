package ui

import "charm.land/bubbles/v2/key"

type keyMap struct {
	addRow   key.Binding
	undo     key.Binding
	redo     key.Binding
	up       key.Binding
	down     key.Binding
	left     key.Binding
	right    key.Binding
	home     key.Binding
	end      key.Binding
	pageUp   key.Binding
	pageDown key.Binding
	grab     key.Binding
	cancel   key.Binding
	find     key.Binding
	help     key.Binding
	quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		addRow:   key.NewBinding(key.WithKeys("a", "+"), key.WithHelp("a", "add row")),
		undo:     key.NewBinding(key.WithKeys("u", "ctrl+z"), key.WithHelp("u", "undo")),
		redo:     key.NewBinding(key.WithKeys("r", "ctrl+y"), key.WithHelp("r", "redo")),
		up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		home:     key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first row")),
		end:      key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last row")),
		pageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		pageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		grab:     key.NewBinding(key.WithKeys("space", " ", "enter"), key.WithHelp("space", "pick up/drop")),
		cancel:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		find:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "find")),
		help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.addRow, k.undo, k.redo, k.grab, k.find, k.help, k.quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.addRow, k.undo, k.redo},
		{k.up, k.down, k.left, k.right},
		{k.home, k.end, k.pageUp, k.pageDown},
		{k.grab, k.cancel, k.find, k.help, k.quit},
	}
}
