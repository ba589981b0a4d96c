package layout

import "fmt"

// Kind identifies what a key does when pressed.
type Kind uint8

const (
	KindGlyph Kind = iota // inserts Glyph literally
	KindVowel             // independent vowel or matra, decided by the engine
	KindSpace
	KindEnter
	KindBackspace
)

var kindNames = map[Kind]string{
	KindGlyph:     "glyph",
	KindVowel:     "vowel",
	KindSpace:     "space",
	KindEnter:     "enter",
	KindBackspace: "backspace",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

func (k Kind) MarshalText() ([]byte, error) {
	s, ok := kindNames[k]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, uint8(k))
	}
	return []byte(s), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*k = KindGlyph
		return nil
	}
	for kind, name := range kindNames {
		if name == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownKind, text)
}
