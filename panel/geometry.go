package panel

import (
	"math"
	"strings"

	graphemeutil "github.com/iw2rmb/akshara/internal/grapheme"
	"github.com/iw2rmb/akshara/layout"
	"github.com/iw2rmb/akshara/orthography"
)

const (
	keyGap      = 1
	minKeyCells = 3
)

// span is a half-open range of screen columns.
type span struct {
	start, end int
}

func (s span) contains(x int) bool { return x >= s.start && x < s.end }

// keySpans lays out a row of keys left to right. A key of u units covers u
// unit cells plus the gaps it swallows.
func keySpans(keys []layout.Key, cells int) []span {
	out := make([]span, 0, len(keys))
	x := 0
	for _, k := range keys {
		u := k.Units()
		w := int(math.Round(u*float64(cells) + (u-1)*keyGap))
		if w < 1 {
			w = 1
		}
		out = append(out, span{start: x, end: x + w})
		x += w + keyGap
	}
	return out
}

// fitKeyCells returns the unit width that fits every label of the given
// layouts, including matra labels drawn on a dotted circle.
func fitKeyCells(layouts []*layout.Layout, vowels *orthography.VowelTable) int {
	w := 0
	for _, l := range layouts {
		if n := l.MaxLabelWidth(); n > w {
			w = n
		}
	}
	if vowels != nil {
		for r := 0; r < vowels.Rows(); r++ {
			for i := 0; i < vowels.RowLen(r); i++ {
				p, _ := vowels.Lookup(r, i)
				// The base and its matra form one cluster, so measure them together.
				label := orthography.DisplayGlyph(orthography.VowelGlyph{Glyph: p.Matra, Form: orthography.FormMatra}, true)
				if n := graphemeutil.Width(label); n > w {
					w = n
				}
			}
		}
	}
	w += 2
	if w < minKeyCells {
		w = minKeyCells
	}
	return w
}

// center pads s to width cells.
func center(s string, width int) string {
	sw := graphemeutil.Width(s)
	if sw >= width {
		return s
	}
	left := (width - sw) / 2
	right := width - sw - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}
