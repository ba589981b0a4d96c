package orthography

import "fmt"

// Deletion is the number of code points a backspace removes.
type Deletion int

const (
	Delete0 Deletion = 0
	Delete1 Deletion = 1
	Delete2 Deletion = 2
)

// Special identifies keys that insert fixed text.
type Special uint8

const (
	SpecialSpace Special = iota
	SpecialEnter
)

// VowelGlyph is what one vowel-row button should display.
type VowelGlyph struct {
	Row   int
	Index int
	Glyph string
	Form  Form
}

// Options configures an Engine. Zero values select the Devanagari defaults.
type Options struct {
	Vowels     *VowelTable
	Classifier Classifier
}

// Engine resolves panel keys into text fragments and deletions.
type Engine struct {
	vowels   *VowelTable
	classify Classifier
}

func New(opt Options) *Engine {
	if opt.Vowels == nil {
		opt.Vowels = DevanagariVowels
	}
	if opt.Classifier == nil {
		opt.Classifier = TakesMatra
	}
	return &Engine{vowels: opt.Vowels, classify: opt.Classifier}
}

func (e *Engine) Vowels() *VowelTable { return e.vowels }

// VowelForm classifies the code point before the caret. hasPrev is false at
// the start of the text.
func (e *Engine) VowelForm(prev rune, hasPrev bool) Form {
	if hasPrev && e.classify(prev) {
		return FormMatra
	}
	return FormIndependent
}

// ResolveVowelKey returns the glyph a vowel key inserts after prev.
func (e *Engine) ResolveVowelKey(row, index int, prev rune, hasPrev bool) (string, Form, error) {
	p, ok := e.vowels.Lookup(row, index)
	if !ok {
		return "", FormIndependent, fmt.Errorf("vowel %d/%d: %w", row, index, ErrNoSuchVowel)
	}
	f := e.VowelForm(prev, hasPrev)
	return p.Glyph(f), f, nil
}

// ResolveBackspace decides how much text before the caret one backspace
// removes. before is the text preceding the caret; only its last two code
// points are inspected.
func (e *Engine) ResolveBackspace(before []rune) Deletion {
	n := len(before)
	switch {
	case n == 0:
		return Delete0
	case before[n-1] == Nukta && n > 1:
		return Delete2
	default:
		return Delete1
	}
}

// OrphanedNukta reports whether before ends with a nukta that does not
// follow a consonant. The panel never produces one.
func OrphanedNukta(before []rune) bool {
	n := len(before)
	if n == 0 || before[n-1] != Nukta {
		return false
	}
	return n == 1 || !IsConsonant(before[n-2])
}

// ResolveSpecialKey maps space and enter to their fragments.
func (e *Engine) ResolveSpecialKey(k Special) string {
	switch k {
	case SpecialEnter:
		return "\n"
	default:
		return " "
	}
}

// VowelRowGlyphs returns, for every vowel-row button, the glyph and form it
// should currently display given prev.
func (e *Engine) VowelRowGlyphs(prev rune, hasPrev bool) [][]VowelGlyph {
	f := e.VowelForm(prev, hasPrev)
	out := make([][]VowelGlyph, 0, e.vowels.Rows())
	for r := 0; r < e.vowels.Rows(); r++ {
		row := make([]VowelGlyph, 0, e.vowels.RowLen(r))
		for i := 0; i < e.vowels.RowLen(r); i++ {
			p, _ := e.vowels.Lookup(r, i)
			row = append(row, VowelGlyph{Row: r, Index: i, Glyph: p.Glyph(f), Form: f})
		}
		out = append(out, row)
	}
	return out
}

// DisplayGlyph returns the label for a vowel glyph. Matras are drawn on a
// dotted circle when withBase is set so they are visible on their own.
func DisplayGlyph(g VowelGlyph, withBase bool) string {
	if g.Form == FormMatra && withBase {
		return string(DottedCircle) + g.Glyph
	}
	return g.Glyph
}
