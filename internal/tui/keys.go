package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	send  key.Binding
	paste key.Binding
	info  key.Binding
	esc   key.Binding
	quit  key.Binding
}

var keys = keyMap{
	send:  key.NewBinding(key.WithKeys("enter")),
	paste: key.NewBinding(key.WithKeys("ctrl+v")),
	info:  key.NewBinding(key.WithKeys("f1")),
	esc:   key.NewBinding(key.WithKeys("esc")),
	quit:  key.NewBinding(key.WithKeys("ctrl+c", "ctrl+w")),
}
