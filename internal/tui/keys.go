package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	tab       key.Binding
	enter     key.Binding
	esc       key.Binding
	quit      key.Binding
	toggle    key.Binding
	shareFile key.Binding
	shareClip key.Binding
	copy      key.Binding
	write     key.Binding
	delete    key.Binding
	refresh   key.Binding
	restart   key.Binding
	forget    key.Binding
	info      key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	tab:       key.NewBinding(key.WithKeys("tab", "shift+tab")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
	toggle:    key.NewBinding(key.WithKeys(" ", "space")),
	shareFile: key.NewBinding(key.WithKeys("s")),
	shareClip: key.NewBinding(key.WithKeys("p")),
	copy:      key.NewBinding(key.WithKeys("o")),
	write:     key.NewBinding(key.WithKeys("w")),
	delete:    key.NewBinding(key.WithKeys("d")),
	refresh:   key.NewBinding(key.WithKeys("r")),
	restart:   key.NewBinding(key.WithKeys("ctrl+r")),
	forget:    key.NewBinding(key.WithKeys("F")),
	info:      key.NewBinding(key.WithKeys("v")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n", "esc")),
}
