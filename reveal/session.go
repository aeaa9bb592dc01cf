package reveal

// Session is the per-document reveal state.
//
// The zero value is the inactive session.
type Session struct {
	source []rune
	offset int
	active bool
}

// Snapshot is what a presentation layer renders after each transition.
type Snapshot struct {
	Text   string
	Cursor int
}

// Pos is a position within the visible text: 0-based row and column in code
// points.
type Pos struct {
	Row int
	Col int
}

// NewSession returns an active session over text with nothing revealed.
func NewSession(text string) Session {
	return Session{source: []rune(text), active: true}
}

// Step returns the session after applying a key of class c.
func (s Session) Step(c Class) Session {
	if !s.active {
		return s
	}
	switch c {
	case Advance:
		s.offset = min(s.offset+1, len(s.source))
	case Retreat:
		s.offset = max(s.offset-1, 0)
	}
	return s
}

func (s Session) Active() bool { return s.active }

func (s Session) Offset() int { return s.offset }

// Len returns the source length in code points.
func (s Session) Len() int { return len(s.source) }

func (s Session) Source() string { return string(s.source) }

func (s Session) Visible() string { return string(s.source[:s.offset]) }

func (s Session) Snapshot() Snapshot {
	return Snapshot{Text: s.Visible(), Cursor: s.offset}
}

// CursorPos locates the cursor (the end of the visible text) by row and column.
func (s Session) CursorPos() Pos {
	var p Pos
	for _, r := range s.source[:s.offset] {
		if r == '\n' {
			p.Row++
			p.Col = 0
			continue
		}
		p.Col++
	}
	return p
}
