package workbench

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the application-level bindings. Editor-view bindings are
// chosen so that none of them is a reveal key.
type KeyMap struct {
	Open  key.Binding
	Close key.Binding
	Back  key.Binding
	Quit  key.Binding

	// Welcome view.
	Up, Down key.Binding
	Select   key.Binding
	Forget   key.Binding
	QuitIdle key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Open:  key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "open file")),
		Close: key.NewBinding(key.WithKeys("ctrl+w", "esc"), key.WithHelp("ctrl+w/esc", "close")),
		Back:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Quit:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),

		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Select:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open recent")),
		Forget:   key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "forget")),
		QuitIdle: key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

// bindings adapts a binding slice to help.KeyMap.
type bindings []key.Binding

func (b bindings) ShortHelp() []key.Binding { return b }

func (b bindings) FullHelp() [][]key.Binding { return [][]key.Binding{b} }

func (m Model) helpBindings() bindings {
	k := m.keys
	switch m.view {
	case viewPicker:
		return bindings{k.Back, k.Quit}
	case viewEditor:
		km := m.editor.Config().KeyMap
		return bindings{k.Close, k.Open, km.ScrollUp, km.ScrollDown, k.Quit}
	default:
		return bindings{k.Open, k.Up, k.Down, k.Select, k.Forget, k.QuitIdle}
	}
}
