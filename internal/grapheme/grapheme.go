package grapheme

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Cluster is one grapheme cluster with its code point offset and cell width.
type Cluster struct {
	Text   string
	Offset int // code point offset of the first rune within the split text
	Runes  int
	Width  int
}

// Clusters splits text into grapheme clusters in visual order, annotated
// with their code point offset and terminal cell width.
func Clusters(text string) []Cluster {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]Cluster, 0, len([]rune(text)))
	off := 0
	for g.Next() {
		rs := g.Runes()
		s := g.Str()
		out = append(out, Cluster{
			Text:   s,
			Offset: off,
			Runes:  len(rs),
			Width:  Width(s),
		})
		off += len(rs)
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	n := 0
	for g.Next() {
		n++
	}
	return n
}

// Width returns the terminal cell width of text. A lone combining mark has
// no width of its own in runewidth; uniseg's estimate is used instead.
func Width(text string) int {
	if text == "" {
		return 0
	}
	w := runewidth.StringWidth(text)
	if w <= 0 {
		w = uniseg.StringWidth(text)
	}
	if w < 0 {
		w = 0
	}
	return w
}
