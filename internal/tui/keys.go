package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up         key.Binding
	down       key.Binding
	tab        key.Binding
	refresh    key.Binding
	drain      key.Binding
	dismiss    key.Binding
	useOffline key.Binding
	useServer  key.Binding
	copy       key.Binding
	version    key.Binding
	esc        key.Binding
	quit       key.Binding
}

var keys = keyMap{
	up:         key.NewBinding(key.WithKeys("up", "k")),
	down:       key.NewBinding(key.WithKeys("down", "j")),
	tab:        key.NewBinding(key.WithKeys("tab")),
	refresh:    key.NewBinding(key.WithKeys("r")),
	drain:      key.NewBinding(key.WithKeys("s")),
	dismiss:    key.NewBinding(key.WithKeys("d")),
	useOffline: key.NewBinding(key.WithKeys("o")),
	useServer:  key.NewBinding(key.WithKeys("u")),
	copy:       key.NewBinding(key.WithKeys("c")),
	version:    key.NewBinding(key.WithKeys("v")),
	esc:        key.NewBinding(key.WithKeys("esc")),
	quit:       key.NewBinding(key.WithKeys("q", "ctrl+c")),
}
