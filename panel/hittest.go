package panel

// Screen layout, top to bottom: one title line, the text area, one
// separator line, one line per key row, then help.

func (m Model) textTop() int { return 1 }

func (m Model) keysTop() int { return m.textTop() + m.viewport.Height + 1 }

// textAreaY converts a screen row to a row within the text area.
func (m Model) textAreaY(y int) (int, bool) {
	ty := y - m.textTop()
	if ty < 0 || ty >= m.viewport.Height {
		return 0, false
	}
	return ty, true
}

// screenToOffset maps text-area-local coordinates to a caret offset.
// Rows below the text map to its end.
func (m *Model) screenToOffset(x, y int) int {
	if len(m.rows) == 0 {
		return 0
	}
	visualRow := m.viewport.YOffset + y
	if visualRow < 0 {
		visualRow = 0
	}
	if visualRow >= len(m.rows) {
		return m.sess.Buffer().Len()
	}
	return offsetAt(m.rows[visualRow], x)
}

// keyAt returns the panel key under screen coordinates.
func (m Model) keyAt(x, y int) (row, col int, ok bool) {
	if m.keysHidden {
		return 0, 0, false
	}
	rows := m.Layout().Rows
	row = y - m.keysTop()
	if row < 0 || row >= len(rows) {
		return 0, 0, false
	}
	for i, s := range keySpans(rows[row].Keys, m.keyCells) {
		if s.contains(x) {
			return row, i, true
		}
	}
	return 0, 0, false
}
