package recent

import (
	"slices"
	"time"
)

// DefaultLimit is the number of entries kept when no limit is configured.
const DefaultLimit = 10

// Entry is one recently opened document.
type Entry struct {
	Name      string    `json:"name"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	Path      string    `json:"path"`
}

// DisplayPath returns the location label shown for a document named name.
func DisplayPath(name string) string {
	return "Local File: " + name
}

// List is a most-recent-first, capped list of entries with unique names.
type List struct {
	entries []Entry
	limit   int
}

// NewList returns a list seeded with entries, which are assumed to be in
// most-recent-first order. Duplicate names keep their first occurrence.
func NewList(entries []Entry, limit int) *List {
	if limit <= 0 {
		limit = DefaultLimit
	}
	l := &List{limit: limit}
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if _, ok := seen[e.Name]; ok {
			continue
		}
		seen[e.Name] = struct{}{}
		l.entries = append(l.entries, e)
	}
	l.truncate()
	return l
}

// Add records name as the most recent document.
func (l *List) Add(name, content string, now time.Time) Entry {
	e := Entry{
		Name:      name,
		Content:   content,
		Timestamp: now.UTC(),
		Path:      DisplayPath(name),
	}
	l.entries = slices.DeleteFunc(l.entries, func(x Entry) bool { return x.Name == name })
	l.entries = slices.Insert(l.entries, 0, e)
	l.truncate()
	return e
}

// Remove drops the entry called name and reports whether it existed.
func (l *List) Remove(name string) bool {
	n := len(l.entries)
	l.entries = slices.DeleteFunc(l.entries, func(x Entry) bool { return x.Name == name })
	return len(l.entries) != n
}

func (l *List) At(i int) (Entry, bool) {
	if i < 0 || i >= len(l.entries) {
		return Entry{}, false
	}
	return l.entries[i], true
}

func (l *List) Len() int { return len(l.entries) }

func (l *List) Limit() int { return l.limit }

// Entries returns a copy of the list, most recent first.
func (l *List) Entries() []Entry { return slices.Clone(l.entries) }

func (l *List) truncate() {
	if len(l.entries) > l.limit {
		l.entries = l.entries[:l.limit:l.limit]
	}
}
