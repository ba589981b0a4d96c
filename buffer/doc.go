// Package buffer implements the transient text model behind a key panel
// session: a flat sequence of Unicode code points and one collapsed caret.
//
// Offsets are 0-based and counted in code points (runes), not bytes and not
// grapheme clusters. A caret offset c splits the content into content[:c]
// and content[c:].
package buffer
