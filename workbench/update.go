package workbench

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/typeout/recent"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m = m.resize()
		var cmd tea.Cmd
		// Leave room for the title and help lines.
		m.picker, cmd = m.picker.Update(tea.WindowSizeMsg{Width: msg.Width, Height: msg.Height - 2})
		return m, cmd

	case historyLoadedMsg:
		return m.applyHistory(msg)

	case historySavedMsg:
		if msg.err != nil {
			m.logger.Warn("saving recent files failed", "error", msg.err)
			return m.setStatus("could not save recent files", true), nil
		}
		return m, nil

	case documentLoadedMsg:
		m = m.openDocument(msg.doc)
		m.history.Add(msg.doc.Name, msg.doc.Content, m.now())
		m.selected = 0
		return m, m.saver.save(m.history.Entries())

	case loadFailedMsg:
		m.logger.Error("reading file failed", "path", msg.path, "error", msg.err)
		if m.view == viewPicker {
			m.view = viewWelcome
		}
		return m.setStatus(fmt.Sprintf("could not open %s: %v", msg.path, msg.err), true), nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		switch m.view {
		case viewPicker:
			return m.updatePicker(msg)
		case viewEditor:
			return m.updateEditor(msg)
		default:
			return m.updateWelcome(msg)
		}
	}

	switch m.view {
	case viewPicker:
		return m.updatePicker(msg)
	case viewEditor:
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	}
	return m, nil
}

// applyHistory merges stored entries behind any documents opened before the
// store finished loading.
func (m Model) applyHistory(msg historyLoadedMsg) (Model, tea.Cmd) {
	if msg.err != nil {
		m.logger.Warn("loading recent files failed", "error", msg.err)
		m = m.setStatus("could not load recent files", true)
	}
	opened := m.history.Entries()
	merged := append(opened, msg.entries...)
	m.history = recent.NewList(merged, m.opts.HistoryLimit)
	m.logger.Debug("recent files loaded", "count", m.history.Len())
	if len(opened) > 0 {
		return m, m.saver.save(m.history.Entries())
	}
	return m, nil
}

func (m Model) updateWelcome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Open):
		return m.openPicker()
	case key.Matches(msg, m.keys.QuitIdle):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(msg, m.keys.Down):
		if m.selected < m.history.Len()-1 {
			m.selected++
		}
	case key.Matches(msg, m.keys.Select):
		e, ok := m.history.At(m.selected)
		if !ok {
			return m.openPicker()
		}
		// Reopening from the list does not reorder it.
		return m.openDocument(document{
			Name:    e.Name,
			Path:    e.Path,
			Content: e.Content,
			Size:    int64(len(e.Content)),
		}), nil
	case key.Matches(msg, m.keys.Forget):
		e, ok := m.history.At(m.selected)
		if !ok {
			return m, nil
		}
		m.history.Remove(e.Name)
		m.selected = min(m.selected, max(m.history.Len()-1, 0))
		return m, m.saver.save(m.history.Entries())
	}
	return m, nil
}

func (m Model) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, m.keys.Back) {
		if m.doc != nil {
			m.view = viewEditor
		} else {
			m.view = viewWelcome
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	if ok, path := m.picker.DidSelectFile(msg); ok {
		return m, tea.Batch(cmd, readDocument(path))
	}
	if ok, path := m.picker.DidSelectDisabledFile(msg); ok {
		return m.setStatus(path+" cannot be opened", true), cmd
	}
	return m, cmd
}

// updateEditor handles the close and open bindings first. None of them is a
// reveal key, so the engine never misses a step.
func (m Model) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Close):
		return m.closeDocument(), nil
	case key.Matches(msg, m.keys.Open):
		return m.openPicker()
	}
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}
