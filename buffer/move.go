package buffer

// MoveCaretTo clamps offset into [0, Len()] and places the caret there.
func (b *Buffer) MoveCaretTo(offset int) {
	next := ClampCaret(offset, len(b.content))
	if next == b.caret {
		return
	}
	change := b.beginChange(ChangeMove)
	b.caret = next
	b.version++
	b.commitChange(change)
}

// MoveCaret relocates the caret relative to its current position.
// Left/right step by one code point.
func (b *Buffer) MoveCaret(dir MoveDir) {
	b.MoveCaretTo(b.caretFor(dir))
}

func (b *Buffer) caretFor(dir MoveDir) int {
	switch dir {
	case DirLeft:
		return b.caret - 1
	case DirRight:
		return b.caret + 1
	case DirHome:
		return 0
	case DirEnd:
		return len(b.content)
	default:
		return b.caret
	}
}
