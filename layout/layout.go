package layout

import (
	"github.com/iw2rmb/akshara/internal/grapheme"
)

// Key is a single panel button.
type Key struct {
	Kind  Kind    `toml:"kind"`
	Glyph string  `toml:"glyph"`
	Label string  `toml:"label"`
	Title string  `toml:"title"`
	Width float64 `toml:"width"` // in key units; 0 means 1
	Vowel []int   `toml:"vowel"` // [row, index] into the vowel table
}

// Row is one horizontal line of keys.
type Row struct {
	Keys []Key `toml:"keys"`
}

// Layout is a complete key panel.
type Layout struct {
	Name   string `toml:"name"`
	Title  string `toml:"title"`
	Script string `toml:"script"`
	Rows   []Row  `toml:"rows"`
}

// VowelRef returns the vowel table position of a vowel key.
func (k Key) VowelRef() (row, index int, ok bool) {
	if k.Kind != KindVowel || len(k.Vowel) != 2 {
		return 0, 0, false
	}
	return k.Vowel[0], k.Vowel[1], true
}

// Units returns the key width in key units.
func (k Key) Units() float64 {
	if k.Width <= 0 {
		return 1
	}
	return k.Width
}

// DisplayLabel returns the static label of the key. Vowel keys are relabeled
// by the panel according to the current vowel form.
func (k Key) DisplayLabel() string {
	if k.Label != "" {
		return k.Label
	}
	return k.Glyph
}

// KeyAt returns the key at (row, col).
func (l *Layout) KeyAt(row, col int) (Key, bool) {
	if row < 0 || row >= len(l.Rows) {
		return Key{}, false
	}
	keys := l.Rows[row].Keys
	if col < 0 || col >= len(keys) {
		return Key{}, false
	}
	return keys[col], true
}

// HasVowelKeys reports whether any key switches between vowel and matra.
func (l *Layout) HasVowelKeys() bool {
	for _, r := range l.Rows {
		for _, k := range r.Keys {
			if k.Kind == KindVowel {
				return true
			}
		}
	}
	return false
}

// MaxLabelWidth returns the widest static label in terminal cells.
func (l *Layout) MaxLabelWidth() int {
	w := 0
	for _, r := range l.Rows {
		for _, k := range r.Keys {
			if n := grapheme.Width(k.DisplayLabel()); n > w {
				w = n
			}
		}
	}
	return w
}
