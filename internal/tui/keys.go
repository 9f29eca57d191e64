package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	prev      key.Binding
	next      key.Binding
	reload    key.Binding
	loadMore  key.Binding
	enter     key.Binding
	copy      key.Binding
	history   key.Binding
	buildInfo key.Binding
	esc       key.Binding
	quit      key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "вверх")),
	down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "вниз")),
	prev:      key.NewBinding(key.WithKeys("p", "left"), key.WithHelp("p", "назад")),
	next:      key.NewBinding(key.WithKeys("n", "right"), key.WithHelp("n", "далее")),
	reload:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "обновить")),
	loadMore:  key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "ещё")),
	enter:     key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "открыть")),
	copy:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "копировать")),
	history:   key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "журнал")),
	buildInfo: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "версия")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "выход")),
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.prev, k.next, k.loadMore, k.reload, k.enter, k.history, k.quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.enter, k.copy},
		{k.prev, k.next, k.loadMore, k.reload},
		{k.history, k.buildInfo, k.quit},
	}
}
