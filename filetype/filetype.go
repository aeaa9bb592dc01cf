// Package filetype maps file names to display icons, language names and
// human-readable sizes.
package filetype

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var lower = cases.Lower(language.Und)

// Extension returns the text after the last dot of name, lower-cased. A name
// without a dot is returned whole, lower-cased.
func Extension(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return lower.String(name)
}

// Icon is a short badge and a 256-color code for a file type.
type Icon struct {
	Glyph string
	Color string
}

var defaultIcon = Icon{Glyph: "FILE", Color: "250"}

var icons = map[string]Icon{
	"js":   {Glyph: "JS", Color: "220"},
	"html": {Glyph: "HTML", Color: "202"},
	"css":  {Glyph: "CSS", Color: "33"},
	"py":   {Glyph: "PY", Color: "39"},
	"java": {Glyph: "JAVA", Color: "166"},
	"cpp":  {Glyph: "C++", Color: "75"},
	"c":    {Glyph: "C", Color: "75"},
	"json": {Glyph: "{}", Color: "178"},
	"xml":  {Glyph: "<>", Color: "172"},
	"md":   {Glyph: "MD", Color: "252"},
	"txt":  {Glyph: "TXT", Color: "245"},
	"php":  {Glyph: "PHP", Color: "99"},
}

// IconFor returns the icon for extension ext.
func IconFor(ext string) Icon {
	if icon, ok := icons[ext]; ok {
		return icon
	}
	return defaultIcon
}

var languages = map[string]string{
	"js":   "javascript",
	"html": "html",
	"css":  "css",
	"py":   "python",
	"java": "java",
	"cpp":  "cpp",
	"c":    "c",
	"json": "json",
	"xml":  "xml",
	"md":   "markdown",
	"php":  "php",
}

// Language returns the language name for a file name, or "text".
func Language(name string) string {
	if lang, ok := languages[Extension(name)]; ok {
		return lang
	}
	return "text"
}

var sizeUnits = []string{"Bytes", "KB", "MB", "GB"}

// FormatSize renders a byte count in base-1024 units with at most two
// decimals, e.g. "0 Bytes", "512 Bytes", "1.5 KB".
func FormatSize(bytes int64) string {
	if bytes <= 0 {
		return "0 Bytes"
	}
	i := int(math.Floor(math.Log(float64(bytes)) / math.Log(1024)))
	i = min(i, len(sizeUnits)-1)
	v := float64(bytes) / math.Pow(1024, float64(i))
	v = math.Round(v*100) / 100
	return strconv.FormatFloat(v, 'f', -1, 64) + " " + sizeUnits[i]
}
