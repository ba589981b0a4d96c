package panel

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	if isWheelMouse(msg) {
		if _, ok := m.textAreaY(msg.Y); ok {
			m.viewport, cmd = m.viewport.Update(msg)
		}
		return m, cmd
	}

	// Only left presses act; there is no drag selection.
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	if row, col, ok := m.keyAt(msg.X, msg.Y); ok {
		m.focusRow, m.focusCol = row, col
		m.activate(row, col)
	} else if y, ok := m.textAreaY(msg.Y); ok {
		m.sess.OnCaretRelocated(m.screenToOffset(msg.X, y))
	}

	m.syncFromSession()
	return m, cmd
}

func isWheelMouse(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress &&
		(msg.Button == tea.MouseButtonWheelUp ||
			msg.Button == tea.MouseButtonWheelDown ||
			msg.Button == tea.MouseButtonWheelLeft ||
			msg.Button == tea.MouseButtonWheelRight)
}
