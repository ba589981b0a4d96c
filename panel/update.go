package panel

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/akshara/buffer"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	// Pasted text never reaches the buffer.
	if msg.Paste {
		m.gate.Reject("paste")
		return m, nil
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Up):
		m.moveFocus(-1, 0)
	case key.Matches(msg, km.Down):
		m.moveFocus(1, 0)
	case key.Matches(msg, km.Left):
		m.moveFocus(0, -1)
	case key.Matches(msg, km.Right):
		m.moveFocus(0, 1)
	case key.Matches(msg, km.Activate):
		m.activate(m.focusRow, m.focusCol)

	case key.Matches(msg, km.CaretLeft):
		m.sess.MoveCaret(buffer.DirLeft)
	case key.Matches(msg, km.CaretRight):
		m.sess.MoveCaret(buffer.DirRight)
	case key.Matches(msg, km.CaretHome):
		m.sess.MoveCaret(buffer.DirHome)
	case key.Matches(msg, km.CaretEnd):
		m.sess.MoveCaret(buffer.DirEnd)

	case key.Matches(msg, km.Copy):
		m.copyText()
	case key.Matches(msg, km.SwitchLayout):
		m.switchLayout()
	case key.Matches(msg, km.ToggleKeys):
		m.keysHidden = !m.keysHidden
		m.log.Debug("key panel toggled", "hidden", m.keysHidden)
		m.resize()
	case key.Matches(msg, km.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()

	default:
		if isTextInput(msg) {
			m.gate.Reject(msg.String())
		}
	}

	m.syncFromSession()
	return m, nil
}

// isTextInput reports keys a text field would normally apply to its content.
func isTextInput(msg tea.KeyMsg) bool {
	switch msg.Type { //nolint:exhaustive
	case tea.KeyRunes, tea.KeySpace, tea.KeyBackspace, tea.KeyDelete, tea.KeyTab, tea.KeyEnter, tea.KeyCtrlH:
		return true
	default:
		return false
	}
}

// activate presses the panel key at (row, col).
func (m *Model) activate(row, col int) {
	if m.keysHidden {
		return
	}
	k, ok := m.Layout().KeyAt(row, col)
	if !ok {
		return
	}
	res := m.sess.OnKey(k)
	m.log.Debug("panel key", "layout", m.Layout().Name, "row", row, "col", col, "kind", k.Kind.String(), "caret", res.Caret)
}

func (m *Model) moveFocus(dRow, dCol int) {
	if m.keysHidden {
		return
	}
	rows := m.Layout().Rows
	if len(rows) == 0 {
		return
	}
	r := clampInt(m.focusRow+dRow, 0, len(rows)-1)
	c := m.focusCol + dCol
	if dRow != 0 {
		c = m.focusCol
	}
	c = clampInt(c, 0, len(rows[r].Keys)-1)
	m.focusRow, m.focusCol = r, c
}

func (m *Model) switchLayout() {
	if len(m.layouts) < 2 {
		return
	}
	m.active = (m.active + 1) % len(m.layouts)
	m.moveFocus(0, 0)
	m.log.Debug("layout switched", "layout", m.Layout().Name)
	m.resize()
}

func (m Model) copyText() {
	if m.cfg.Clipboard == nil {
		return
	}
	s := m.sess.Text()
	if s == "" {
		return
	}
	if err := m.cfg.Clipboard.WriteText(s); err != nil {
		m.log.Debug("clipboard write failed", "err", err)
	}
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
