package panel

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/akshara/layout"
	"github.com/iw2rmb/akshara/orthography"
)

func (m Model) View() string {
	parts := make([]string, 0, 4+len(m.Layout().Rows))
	parts = append(parts, m.renderTitle())
	parts = append(parts, m.viewport.View())
	if !m.keysHidden {
		parts = append(parts, m.renderSeparator())
		for r := range m.Layout().Rows {
			parts = append(parts, m.renderKeyRow(r))
		}
	}
	if m.cfg.ShowHelp {
		parts = append(parts, m.help.View(m.cfg.KeyMap))
	}
	return strings.Join(parts, "\n")
}

func (m Model) renderTitle() string {
	l := m.Layout()
	s := m.cfg.Style.Title.Render(l.Title)
	if l.HasVowelKeys() {
		s += " " + m.cfg.Style.Status.Render("["+m.sess.CurrentVowelForm().String()+"]")
	}
	return s
}

func (m Model) renderSeparator() string {
	w := m.width
	if w <= 0 {
		w = m.panelWidth()
	}
	return m.cfg.Style.Separator.Render(strings.Repeat("─", w))
}

// panelWidth is the width of the widest key row.
func (m Model) panelWidth() int {
	w := 0
	for _, row := range m.Layout().Rows {
		spans := keySpans(row.Keys, m.keyCells)
		if n := len(spans); n > 0 && spans[n-1].end > w {
			w = spans[n-1].end
		}
	}
	return w
}

func (m Model) renderKeyRow(r int) string {
	keys := m.Layout().Rows[r].Keys
	spans := keySpans(keys, m.keyCells)
	var sb strings.Builder
	for i, k := range keys {
		if i > 0 {
			sb.WriteString(strings.Repeat(" ", keyGap))
		}
		label := center(m.keyLabel(k), spans[i].end-spans[i].start)
		sb.WriteString(m.keyStyle(k, r, i).Render(label))
	}
	return sb.String()
}

// keyLabel returns what a key shows now. Vowel keys follow the character
// before the caret.
func (m Model) keyLabel(k layout.Key) string {
	if row, idx, ok := k.VowelRef(); ok && row < len(m.vowels) && idx < len(m.vowels[row]) {
		return orthography.DisplayGlyph(m.vowels[row][idx], m.cfg.ShowMatraBase)
	}
	return k.DisplayLabel()
}

func (m Model) keyStyle(k layout.Key, row, col int) lipgloss.Style {
	st := m.cfg.Style
	if row == m.focusRow && col == m.focusCol {
		return st.KeyFocused
	}
	switch k.Kind {
	case layout.KindVowel:
		if m.sess.CurrentVowelForm() == orthography.FormMatra {
			return st.KeyMatra
		}
		return st.KeyVowel
	case layout.KindSpace, layout.KindEnter, layout.KindBackspace:
		return st.KeySpecial
	default:
		return st.Key
	}
}

// renderText draws the text area rows with the caret.
func (m Model) renderText() string {
	caret := m.sess.Caret()
	st := m.cfg.Style
	caretDone := false
	out := make([]string, 0, len(m.rows))
	for _, row := range m.rows {
		var sb strings.Builder
		for _, c := range row.cells {
			if !caretDone && (c.marker || c.offset == caret) {
				sb.WriteString(st.Caret.Render(c.text))
				caretDone = true
				continue
			}
			sb.WriteString(st.Text.Render(c.text))
		}
		if !caretDone && row.last && caret == row.end {
			sb.WriteString(st.Caret.Render(" "))
			caretDone = true
		}
		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}
