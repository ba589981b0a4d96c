package orthography

// Designated code points.
const (
	Nukta        rune = '\u093C'
	Virama       rune = '\u094D'
	DottedCircle rune = '\u25CC' // display base for dependent signs
)

// Form tells whether a vowel key currently stands for its independent letter
// or its matra.
type Form uint8

const (
	FormIndependent Form = iota
	FormMatra
)

func (f Form) String() string {
	switch f {
	case FormIndependent:
		return "independent"
	case FormMatra:
		return "matra"
	default:
		return "unknown"
	}
}

// Classifier reports whether a code point is a base that takes a dependent
// vowel sign.
type Classifier func(r rune) bool

// IsConsonant reports whether r is a Devanagari consonant letter, including
// the precomposed nukta consonants U+0958..U+095F.
func IsConsonant(r rune) bool {
	return (r >= '\u0915' && r <= '\u0939') || (r >= '\u0958' && r <= '\u095F')
}

func IsNukta(r rune) bool { return r == Nukta }

// TakesMatra is the default Classifier: consonants, and a nukta (which the
// key layout only ever places right after its consonant).
func TakesMatra(r rune) bool {
	return IsConsonant(r) || IsNukta(r)
}
