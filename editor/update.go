package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/typeout/reveal"
)

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	ids := KeyIdentities(msg)
	for _, id := range ids {
		m.eng.SubmitKey(id)
	}
	if m.sync() {
		return m, nil
	}

	// The engine ignored the key; let the viewport use it.
	if len(ids) != 1 || reveal.Classify(ids[0]) != reveal.Ignored {
		return m, nil
	}
	km := m.cfg.KeyMap
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	switch {
	case key.Matches(msg, km.ScrollUp):
		m.viewport.SetYOffset(m.viewport.YOffset - max(h, 1))
	case key.Matches(msg, km.ScrollDown):
		m.viewport.SetYOffset(m.viewport.YOffset + max(h, 1))
	}
	return m, nil
}
