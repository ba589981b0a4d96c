package buffer

// Buffer is the pure session text state: content and caret.
//
// A Buffer is owned by a single editing session; it is not safe for
// concurrent use.
type Buffer struct {
	content     []rune
	caret       int
	version     uint64
	textVersion uint64

	lastChange    Change
	hasLastChange bool
}

// New returns a buffer seeded with text and the caret at its end.
// New("") is the empty buffer with caret 0.
func New(text string) *Buffer {
	content := []rune(text)
	return &Buffer{
		content: content,
		caret:   len(content),
	}
}

func (b *Buffer) Text() string { return string(b.content) }

// Runes returns a copy of the content.
func (b *Buffer) Runes() []rune { return append([]rune(nil), b.content...) }

func (b *Buffer) Len() int { return len(b.content) }

func (b *Buffer) Caret() int { return b.caret }

// Version increments on every effective change, including caret moves.
func (b *Buffer) Version() uint64 { return b.version }

// TextVersion increments only when content changes.
func (b *Buffer) TextVersion() uint64 { return b.textVersion }

// PrecedingChar returns the code point immediately before the caret.
// ok is false at offset 0.
func (b *Buffer) PrecedingChar() (r rune, ok bool) {
	if b.caret == 0 {
		return 0, false
	}
	return b.content[b.caret-1], true
}

// PrecedingChars returns up to n code points before the caret, oldest first.
func (b *Buffer) PrecedingChars(n int) []rune {
	if n <= 0 || b.caret == 0 {
		return nil
	}
	start := b.caret - n
	if start < 0 {
		start = 0
	}
	return append([]rune(nil), b.content[start:b.caret]...)
}

// Before returns the text before the caret.
func (b *Buffer) Before() string { return string(b.content[:b.caret]) }

// After returns the text after the caret.
func (b *Buffer) After() string { return string(b.content[b.caret:]) }
