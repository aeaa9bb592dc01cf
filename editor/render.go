package editor

import (
	"fmt"
	"strings"

	"github.com/iw2rmb/typeout/internal/grapheme"
)

func (m *Model) renderContent() string {
	if m.eng == nil {
		return ""
	}

	lines := strings.Split(m.eng.Snapshot().Text, "\n")
	cursor := m.eng.CursorPos()
	showCursor := m.focused && m.eng.Active()
	digitCount := gutterDigits(len(lines))
	width := m.contentWidth(len(lines))

	out := make([]string, 0, len(lines))
	for row, line := range lines {
		var sb strings.Builder

		if m.cfg.ShowLineNums {
			numStyle := m.cfg.Style.LineNum
			if m.focused && row == cursor.Row {
				numStyle = m.cfg.Style.LineNumActive
			}
			sb.WriteString(numStyle.Render(fmt.Sprintf("%*d", digitCount, row+1)))
			sb.WriteString(m.cfg.Style.Gutter.Render(" "))
		}

		onCursor := showCursor && row == cursor.Row
		limit := width
		if onCursor && limit > 0 {
			// Keep a cell for the cursor.
			limit--
		}
		text, _ := grapheme.Fit(line, limit, m.cfg.TabWidth)
		if text != "" {
			sb.WriteString(m.cfg.Style.Text.Render(text))
		}
		if onCursor && width != 0 {
			sb.WriteString(m.cfg.Style.Cursor.Render(" "))
		}

		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

// contentWidth returns the cells available for text, or -1 when the
// component has not been sized yet.
func (m *Model) contentWidth(lineCount int) int {
	w := m.viewport.Width - m.viewport.Style.GetHorizontalFrameSize()
	if m.viewport.Width <= 0 {
		return -1
	}
	if m.cfg.ShowLineNums {
		w -= LineNumberWidth(lineCount)
	}
	return max(w, 0)
}
