package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/typeout/reveal"
)

// Model is a Bubble Tea component that renders and drives a reveal engine.
type Model struct {
	cfg Config
	eng *reveal.Engine

	focused bool

	viewport viewport.Model

	lastVersion uint64
}

func New(cfg Config) Model {
	m := Model{
		cfg:      cfg.normalized(),
		eng:      reveal.New(),
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	if m.cfg.Source != "" {
		m.eng.Load(m.cfg.Source)
	}
	m.lastVersion = m.eng.Version()
	m.rebuildContent()
	return m
}

func (m Model) Engine() *reveal.Engine { return m.eng }

// Config returns the normalized configuration.
func (m Model) Config() Config { return m.cfg }

func (m Model) Snapshot() reveal.Snapshot { return m.eng.Snapshot() }

func (m Model) Init() tea.Cmd { return nil }

// Load starts a new reveal session over text.
func (m Model) Load(text string) Model {
	m.eng.Load(text)
	m.viewport.SetYOffset(0)
	m.sync()
	return m
}

// Close ends the current session.
func (m Model) Close() Model {
	m.eng.Close()
	m.viewport.SetYOffset(0)
	m.sync()
	return m
}

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.viewport.Width = width
	m.viewport.Height = height

	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Width() int { return m.viewport.Width }

func (m Model) Height() int { return m.viewport.Height }

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followCursor()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) View() string { return m.viewport.View() }

// sync re-renders after an effective engine change and reports whether one
// happened.
func (m *Model) sync() bool {
	ver := m.eng.Version()
	if ver == m.lastVersion {
		return false
	}
	m.lastVersion = ver
	m.rebuildContent()
	m.followCursor()
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(m.eng))
	}
	return true
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) followCursor() {
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}
	row := m.eng.CursorPos().Row

	// Re-clamp: retreating can shrink the content below the current offset.
	m.viewport.SetYOffset(m.viewport.YOffset)
	y := m.viewport.YOffset
	if row < y {
		m.viewport.SetYOffset(row)
		return
	}
	if row >= y+h {
		m.viewport.SetYOffset(row - h + 1)
	}
}
