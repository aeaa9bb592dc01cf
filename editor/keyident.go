package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/typeout/reveal"
)

var namedKeys = map[tea.KeyType]string{
	tea.KeyEnter:     reveal.KeyEnter,
	tea.KeySpace:     reveal.KeySpace,
	tea.KeyBackspace: reveal.KeyBackspace,
	// Many terminals send ^H for the backspace key.
	tea.KeyCtrlH: reveal.KeyBackspace,

	tea.KeyTab:    "Tab",
	tea.KeyDelete: "Delete",
	tea.KeyInsert: "Insert",
	tea.KeyEsc:    "Escape",

	tea.KeyUp:    "ArrowUp",
	tea.KeyDown:  "ArrowDown",
	tea.KeyLeft:  "ArrowLeft",
	tea.KeyRight: "ArrowRight",

	tea.KeyHome:   "Home",
	tea.KeyEnd:    "End",
	tea.KeyPgUp:   "PageUp",
	tea.KeyPgDown: "PageDown",

	tea.KeyF1:  "F1",
	tea.KeyF2:  "F2",
	tea.KeyF3:  "F3",
	tea.KeyF4:  "F4",
	tea.KeyF5:  "F5",
	tea.KeyF6:  "F6",
	tea.KeyF7:  "F7",
	tea.KeyF8:  "F8",
	tea.KeyF9:  "F9",
	tea.KeyF10: "F10",
	tea.KeyF11: "F11",
	tea.KeyF12: "F12",
}

// KeyIdentities returns the identities carried by msg, in order. Terminals
// may deliver several typed characters in one read, which arrives as a single
// KeyRunes message; each rune is then its own key. Pastes and Alt
// combinations stay a single identity.
func KeyIdentities(msg tea.KeyMsg) []string {
	if msg.Type == tea.KeyRunes && !msg.Paste && !msg.Alt && len(msg.Runes) > 1 {
		ids := make([]string, len(msg.Runes))
		for i, r := range msg.Runes {
			ids[i] = string(r)
		}
		return ids
	}
	return []string{KeyIdentity(msg)}
}

// KeyIdentity returns the host-neutral identity string for a terminal key.
//
// Single unmodified characters map to themselves and named keys to their
// conventional names ("Enter", " ", "Backspace", "ArrowLeft", ...). Pastes,
// modifier combinations and anything else fall back to msg.String(), which is
// never a single printable character.
func KeyIdentity(msg tea.KeyMsg) string {
	if msg.Paste || msg.Alt {
		return msg.String()
	}
	if msg.Type == tea.KeyRunes {
		if len(msg.Runes) == 1 {
			return string(msg.Runes[0])
		}
		return msg.String()
	}
	if id, ok := namedKeys[msg.Type]; ok {
		return id
	}
	return msg.String()
}
