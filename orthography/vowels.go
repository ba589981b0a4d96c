package orthography

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyGlyph      = errors.New("orthography: empty vowel glyph")
	ErrDuplicateVowel  = errors.New("orthography: duplicate vowel glyph")
	ErrEmptyVowelTable = errors.New("orthography: vowel table has no rows")
	ErrNoSuchVowel     = errors.New("orthography: no vowel at row/index")
)

// VowelPair binds an independent vowel letter to its dependent sign.
type VowelPair struct {
	Independent string
	Matra       string
}

// VowelTable is the fixed bijection between independent vowels and matras,
// kept in the visual key rows of the panel.
type VowelTable struct {
	rows [][]VowelPair
}

// DevanagariVowels is the primary and extended vowel rows of the Devanagari
// panel. The inherent vowel अ maps to the virama.
var DevanagariVowels = MustVowelTable(
	[]VowelPair{
		{Independent: "अ", Matra: string(Virama)},
		{Independent: "आ", Matra: "ा"},
		{Independent: "इ", Matra: "ि"},
		{Independent: "ई", Matra: "ी"},
		{Independent: "उ", Matra: "ु"},
		{Independent: "ॶ", Matra: "ॖ"},
		{Independent: "ऊ", Matra: "ू"},
		{Independent: "ऋ", Matra: "ृ"},
		{Independent: "ऌ", Matra: "ॢ"},
	},
	[]VowelPair{
		{Independent: "ऎ", Matra: "ॆ"},
		{Independent: "ए", Matra: "े"},
		{Independent: "ऒ", Matra: "ॊ"},
		{Independent: "ओ", Matra: "ो"},
		{Independent: "ऐ", Matra: "ै"},
		{Independent: "ऐॅ", Matra: "ॅ"},
		{Independent: "औ", Matra: "ौ"},
	},
)

// NewVowelTable validates rows and returns the table. Every pair must carry
// both glyphs, and no glyph may appear twice on the same side.
func NewVowelTable(rows ...[]VowelPair) (*VowelTable, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyVowelTable
	}

	seenInd := make(map[string]struct{})
	seenMatra := make(map[string]struct{})
	out := make([][]VowelPair, 0, len(rows))
	for r, row := range rows {
		for i, p := range row {
			if p.Independent == "" || p.Matra == "" {
				return nil, fmt.Errorf("vowel %d/%d: %w", r, i, ErrEmptyGlyph)
			}
			if _, dup := seenInd[p.Independent]; dup {
				return nil, fmt.Errorf("vowel %d/%d %q: %w", r, i, p.Independent, ErrDuplicateVowel)
			}
			if _, dup := seenMatra[p.Matra]; dup {
				return nil, fmt.Errorf("matra %d/%d %q: %w", r, i, p.Matra, ErrDuplicateVowel)
			}
			seenInd[p.Independent] = struct{}{}
			seenMatra[p.Matra] = struct{}{}
		}
		out = append(out, append([]VowelPair(nil), row...))
	}
	return &VowelTable{rows: out}, nil
}

// MustVowelTable is NewVowelTable for tables fixed at program start.
// It panics on a malformed table.
func MustVowelTable(rows ...[]VowelPair) *VowelTable {
	t, err := NewVowelTable(rows...)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *VowelTable) Rows() int { return len(t.rows) }

func (t *VowelTable) RowLen(row int) int {
	if row < 0 || row >= len(t.rows) {
		return 0
	}
	return len(t.rows[row])
}

// Lookup returns the pair at (row, index).
func (t *VowelTable) Lookup(row, index int) (VowelPair, bool) {
	if index < 0 || index >= t.RowLen(row) {
		return VowelPair{}, false
	}
	return t.rows[row][index], true
}

// Find returns the position of an independent vowel glyph.
func (t *VowelTable) Find(independent string) (row, index int, ok bool) {
	for r, pairs := range t.rows {
		for i, p := range pairs {
			if p.Independent == independent {
				return r, i, true
			}
		}
	}
	return 0, 0, false
}

// Glyph returns the glyph of p in form f.
func (p VowelPair) Glyph(f Form) string {
	if f == FormMatra {
		return p.Matra
	}
	return p.Independent
}
