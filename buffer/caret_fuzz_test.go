package buffer

import "testing"

func FuzzBuffer_CaretStaysInBounds(f *testing.F) {
	seeds := [][]byte{
		{},
		{0},
		{1, 2, 3, 4, 5},
		{255, 0, 128, 64, 32, 16, 8, 4, 2, 1},
		[]byte("राम"),
		[]byte("क़"),
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	fragments := []string{"क", "ि", "़", "ऐॅ", " ", "\n", ""}

	f.Fuzz(func(t *testing.T, data []byte) {
		b := New("")
		for i, op := range data {
			switch op % 4 {
			case 0:
				b.InsertAtCaret(fragments[int(op)%len(fragments)])
			case 1:
				b.DeleteBeforeCaret(int(op%3) + 1)
			case 2:
				b.MoveCaretTo(int(op) - 128 + i)
			case 3:
				b.MoveCaret(MoveDir(op % 5))
			}
			if c := b.Caret(); c < 0 || c > b.Len() {
				t.Fatalf("op %d (%d): caret=%d outside [0, %d]", i, op, c, b.Len())
			}
		}
	})
}
