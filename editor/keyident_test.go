package editor

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/typeout/reveal"
)

func TestKeyIdentity(t *testing.T) {
	cases := []struct {
		name string
		msg  tea.KeyMsg
		want string
	}{
		{"letter", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("h")}, "h"},
		{"upper", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Q")}, "Q"},
		{"punct", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("~")}, "~"},
		{"accented", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("é")}, "é"},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, " "},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, "Enter"},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, "Backspace"},
		{"ctrl+h", tea.KeyMsg{Type: tea.KeyCtrlH}, "Backspace"},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, "Tab"},
		{"delete", tea.KeyMsg{Type: tea.KeyDelete}, "Delete"},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, "ArrowLeft"},
		{"pgup", tea.KeyMsg{Type: tea.KeyPgUp}, "PageUp"},
		{"f5", tea.KeyMsg{Type: tea.KeyF5}, "F5"},
		{"ctrl+v", tea.KeyMsg{Type: tea.KeyCtrlV}, "ctrl+v"},
		{"alt+a", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a"), Alt: true}, "alt+a"},
	}
	for _, tc := range cases {
		if got := KeyIdentity(tc.msg); got != tc.want {
			t.Fatalf("%s: KeyIdentity=%q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestKeyIdentity_PasteIsIgnored(t *testing.T) {
	msgs := []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("a"), Paste: true},
		{Type: tea.KeyRunes, Runes: []rune("hello"), Paste: true},
	}
	for _, msg := range msgs {
		ids := KeyIdentities(msg)
		if len(ids) != 1 {
			t.Fatalf("KeyIdentities(%+v)=%q, want a single identity", msg, ids)
		}
		if c := reveal.Classify(ids[0]); c != reveal.Ignored {
			t.Fatalf("KeyIdentities(%+v)=%q classifies as %v, want ignored", msg, ids, c)
		}
	}
}

func TestKeyIdentities_SplitsCoalescedRunes(t *testing.T) {
	cases := []struct {
		name string
		msg  tea.KeyMsg
		want []string
	}{
		{"single", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("h")}, []string{"h"}},
		{"coalesced", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hi!")}, []string{"h", "i", "!"}},
		{"with space", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a b")}, []string{"a", " ", "b"}},
		{"alt", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ab"), Alt: true}, []string{"alt+ab"}},
		{"named", tea.KeyMsg{Type: tea.KeyEnter}, []string{"Enter"}},
	}
	for _, tc := range cases {
		got := KeyIdentities(tc.msg)
		if fmt.Sprintf("%q", got) != fmt.Sprintf("%q", tc.want) {
			t.Fatalf("%s: KeyIdentities=%q, want %q", tc.name, got, tc.want)
		}
	}
}
