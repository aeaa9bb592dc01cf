package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the viewport bindings handled for keys the engine ignores.
type KeyMap struct {
	ScrollUp, ScrollDown key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		ScrollUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "scroll up")),
		ScrollDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "scroll down")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ScrollUp, k.ScrollDown}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
