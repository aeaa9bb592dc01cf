package workbench

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/typeout/filetype"
)

func (m Model) View() string {
	switch m.view {
	case viewPicker:
		return m.viewPicker()
	case viewEditor:
		return m.viewEditor()
	default:
		return m.viewWelcome()
	}
}

func iconBadge(name string) string {
	icon := filetype.IconFor(filetype.Extension(name))
	return lipgloss.NewStyle().Foreground(lipgloss.Color(icon.Color)).Bold(true).Render(icon.Glyph)
}

func (m Model) viewWelcome() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("typeout") + "\n")
	b.WriteString(subtitleStyle.Render("Every key you press reveals the next character.") + "\n")

	b.WriteString(sectionStyle.Render("Start") + "\n")
	b.WriteString("  " + actionStyle.Render("Open File...") + dimStyle.Render("  ctrl+o") + "\n")

	b.WriteString(sectionStyle.Render("Recent") + "\n")
	entries := m.history.Entries()
	if len(entries) == 0 {
		b.WriteString("  " + dimStyle.Render("No recent files") + "\n")
	}
	for i, e := range entries {
		row := fmt.Sprintf("%s %s  %s", iconBadge(e.Name), e.Name, dimStyle.Render(e.Path))
		if i == m.selected {
			row = selectedStyle.Render(fmt.Sprintf("%s %s  %s", filetype.IconFor(filetype.Extension(e.Name)).Glyph, e.Name, e.Path))
		}
		b.WriteString("  " + row + "\n")
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(m.renderStatusText() + "\n")
	}
	b.WriteString(m.help.View(m.helpBindings()))
	return b.String()
}

func (m Model) viewPicker() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Open File") + dimStyle.Render("  "+m.picker.CurrentDirectory) + "\n")
	b.WriteString(m.picker.View() + "\n")
	b.WriteString(m.help.View(m.helpBindings()))
	return b.String()
}

func (m Model) viewEditor() string {
	tab := activeTabStyle.Render(iconBadge(m.TabName()) + " " + m.TabName() + dimStyle.Render("  x"))
	bar := tabBarStyle.Width(m.width).Render(tab)

	return lipgloss.JoinVertical(lipgloss.Left,
		bar,
		m.editor.View(),
		m.renderStatusBar(),
		m.help.View(m.helpBindings()),
	)
}

func (m Model) renderStatusText() string {
	if m.statusErr {
		return errorStyle.Render(m.status)
	}
	return dimStyle.Render(m.status)
}

func (m Model) renderStatusBar() string {
	eng := m.editor.Engine()
	revealed, total := eng.Progress()
	cur := eng.CursorPos()

	parts := []string{
		fmt.Sprintf("Ln %d, Col %d", cur.Row+1, cur.Col+1),
		fmt.Sprintf("%d/%d revealed", revealed, total),
	}
	if m.doc != nil {
		parts = append(parts, filetype.Language(m.doc.Name), filetype.FormatSize(m.doc.Size))
	}
	if m.status != "" {
		parts = append(parts, m.status)
	}
	return statusBarStyle.Width(m.width).Render(strings.Join(parts, "  "))
}
