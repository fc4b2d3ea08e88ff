package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit key.Binding
	Hold key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
		// never matches a key press; listed so the help bar explains the gesture
		Hold: key.NewBinding(key.WithKeys("mouse"), key.WithHelp("hold+drag", "pick an action")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Hold, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Hold, k.Quit}}
}
