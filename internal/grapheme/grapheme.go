// Package grapheme measures and clips terminal text by grapheme cluster.
package grapheme

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// CellWidth returns the terminal cell width of cluster when drawn at column
// col. Tabs advance to the next multiple of tabWidth.
func CellWidth(cluster string, col, tabWidth int) int {
	if cluster == "\t" {
		if tabWidth <= 0 {
			tabWidth = 4
		}
		return tabWidth - col%tabWidth
	}
	w := runewidth.StringWidth(cluster)
	if w <= 0 {
		w = uniseg.StringWidth(cluster)
	}
	if w < 0 {
		w = 0
	}
	return w
}

// Fit expands tabs in line and clips it to at most width cells. It returns
// the rendered text and the number of cells it occupies. A negative width
// disables clipping.
func Fit(line string, width, tabWidth int) (string, int) {
	var sb strings.Builder
	used := 0
	for _, c := range Split(line) {
		w := CellWidth(c, used, tabWidth)
		if width >= 0 && used+w > width {
			break
		}
		if c == "\t" {
			sb.WriteString(strings.Repeat(" ", w))
		} else {
			sb.WriteString(c)
		}
		used += w
	}
	return sb.String(), used
}
