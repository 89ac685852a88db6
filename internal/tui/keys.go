package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up            key.Binding
	down          key.Binding
	enter         key.Binding
	esc           key.Binding
	tab           key.Binding
	backtab       key.Binding
	quit          key.Binding
	toggle        key.Binding
	delete        key.Binding
	copy          key.Binding
	showCompleted key.Binding
	buildInfo     key.Binding
}

var keys = keyMap{
	up:            key.NewBinding(key.WithKeys("up", "k")),
	down:          key.NewBinding(key.WithKeys("down", "j")),
	enter:         key.NewBinding(key.WithKeys("enter")),
	esc:           key.NewBinding(key.WithKeys("esc")),
	tab:           key.NewBinding(key.WithKeys("tab")),
	backtab:       key.NewBinding(key.WithKeys("shift+tab")),
	quit:          key.NewBinding(key.WithKeys("ctrl+c")),
	toggle:        key.NewBinding(key.WithKeys(" ", "space", "x")),
	delete:        key.NewBinding(key.WithKeys("d", "delete")),
	copy:          key.NewBinding(key.WithKeys("y")),
	showCompleted: key.NewBinding(key.WithKeys("ctrl+t")),
	buildInfo:     key.NewBinding(key.WithKeys("v")),
}
