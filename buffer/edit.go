package buffer

// InsertAtCaret splices fragment into the content at the caret and advances
// the caret past it. Content before the old caret is never touched.
func (b *Buffer) InsertAtCaret(fragment string) {
	if fragment == "" {
		return
	}
	ins := []rune(fragment)
	change := b.beginChange(ChangeInsert)

	out := make([]rune, 0, len(b.content)+len(ins))
	out = append(out, b.content[:b.caret]...)
	out = append(out, ins...)
	out = append(out, b.content[b.caret:]...)

	b.content = out
	b.caret += len(ins)
	b.textVersion++
	b.version++
	change.text = fragment
	b.commitChange(change)
}

// DeleteBeforeCaret removes up to count code points immediately before the
// caret and moves the caret back by the number removed. It never removes
// past offset 0; count <= 0 is a no-op.
func (b *Buffer) DeleteBeforeCaret(count int) {
	if count <= 0 || b.caret == 0 {
		return
	}
	if count > b.caret {
		count = b.caret
	}
	change := b.beginChange(ChangeDelete)

	start := b.caret - count
	deleted := string(b.content[start:b.caret])
	out := make([]rune, 0, len(b.content)-count)
	out = append(out, b.content[:start]...)
	out = append(out, b.content[b.caret:]...)

	b.content = out
	b.caret = start
	b.textVersion++
	b.version++
	change.text = deleted
	b.commitChange(change)
}
