package editor

import "github.com/iw2rmb/typeout/reveal"

// ChangeEvent describes the reveal state after an effective change.
type ChangeEvent struct {
	Version uint64
	Active  bool

	Text   string
	Cursor int

	Revealed int
	Total    int
}

func buildChangeEvent(e *reveal.Engine) ChangeEvent {
	snap := e.Snapshot()
	revealed, total := e.Progress()
	return ChangeEvent{
		Version:  e.Version(),
		Active:   e.Active(),
		Text:     snap.Text,
		Cursor:   snap.Cursor,
		Revealed: revealed,
		Total:    total,
	}
}
