// Package reveal implements the progressive reveal engine for typeout.
//
// A Session holds a source text and a reveal offset. Key events advance or
// retreat the offset one code point at a time; the visible text is always the
// prefix source[:offset] and the cursor is pinned to its end.
package reveal
