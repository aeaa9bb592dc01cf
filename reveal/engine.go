package reveal

// Engine owns one Session and tracks a version that increments on every
// effective change.
//
// Engine is not safe for concurrent use; it is meant to be driven from a
// single event loop.
type Engine struct {
	s       Session
	version uint64
}

// New returns an inactive engine.
func New() *Engine { return &Engine{} }

// Load starts a new session over text. It always succeeds.
func (e *Engine) Load(text string) Snapshot {
	e.s = NewSession(text)
	e.version++
	return e.s.Snapshot()
}

// Close resets the engine to the inactive session.
func (e *Engine) Close() Snapshot {
	if e.s.active {
		e.s = Session{}
		e.version++
	}
	return e.s.Snapshot()
}

// SubmitKey classifies key and applies the resulting transition.
func (e *Engine) SubmitKey(key string) Snapshot {
	return e.Submit(Classify(key))
}

// Submit applies a pre-classified key event.
func (e *Engine) Submit(c Class) Snapshot {
	next := e.s.Step(c)
	if next.offset != e.s.offset {
		e.version++
	}
	e.s = next
	return e.s.Snapshot()
}

func (e *Engine) Session() Session { return e.s }

func (e *Engine) Snapshot() Snapshot { return e.s.Snapshot() }

func (e *Engine) Version() uint64 { return e.version }

func (e *Engine) Active() bool { return e.s.active }

func (e *Engine) Source() string { return e.s.Source() }

func (e *Engine) Len() int { return e.s.Len() }

func (e *Engine) CursorPos() Pos { return e.s.CursorPos() }

// Progress reports how many code points are revealed out of the total.
func (e *Engine) Progress() (revealed, total int) {
	return e.s.offset, len(e.s.source)
}
