// Package editor provides a Bubble Tea component that renders a reveal
// session as a read-only editor surface.
//
// The component translates terminal key events into key identities, submits
// them to a reveal.Engine, and renders the returned visible text with an
// optional line-number gutter and a cursor pinned to the end of the text.
package editor
