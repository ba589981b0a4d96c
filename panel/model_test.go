package panel

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/akshara/layout"
	"github.com/iw2rmb/akshara/orthography"
	"github.com/iw2rmb/akshara/session"
)

const (
	ka      = "क"
	kha     = "ख"
	iMatra  = "ि"
	letterI = "इ"
)

type memClipboard struct {
	s   string
	err error
}

func (c *memClipboard) WriteText(s string) error {
	if c.err != nil {
		return c.err
	}
	c.s = s
	return nil
}

// newTestModel builds an 80x20 Devanagari panel with 4-cell keys and no
// help line: title at y=0, text rows 1..11, separator at 12, key rows from 13.
func newTestModel(t *testing.T, text string, mut ...func(*Config)) Model {
	t.Helper()
	cfg := Config{
		Layout:        layout.Devanagari,
		Alternates:    []*layout.Layout{layout.Tamil},
		Session:       session.New(nil, session.Options{Text: text}),
		ShowMatraBase: true,
		KeyCells:      4,
	}
	for _, f := range mut {
		f(&cfg)
	}
	m := New(cfg)
	return m.SetSize(80, 20)
}

func TestNew_Defaults(t *testing.T) {
	m := New(Config{})
	if m.Layout() != layout.Devanagari {
		t.Fatalf("layout=%q, want devanagari", m.Layout().Name)
	}
	if m.Session() == nil || m.Session().Text() != "" {
		t.Fatalf("expected empty session")
	}
	if m.keyCells < minKeyCells {
		t.Fatalf("keyCells=%d, want >= %d", m.keyCells, minKeyCells)
	}
	if len(m.cfg.KeyMap.Activate.Keys()) == 0 {
		t.Fatalf("expected default key map")
	}
}

func TestNew_DeduplicatesLayouts(t *testing.T) {
	m := New(Config{Layout: layout.Tamil, Alternates: []*layout.Layout{layout.Devanagari, layout.Tamil, nil}})
	if len(m.layouts) != 2 || m.Layout() != layout.Tamil {
		t.Fatalf("layouts=%d active=%q", len(m.layouts), m.Layout().Name)
	}
}

func TestNew_SkipsLayoutsOutsideEngineVowels(t *testing.T) {
	eng := orthography.New(orthography.Options{
		Vowels: orthography.MustVowelTable([]orthography.VowelPair{{Independent: "अ", Matra: string(orthography.Virama)}}),
	})
	sess := session.New(eng, session.Options{})

	m := New(Config{Layout: layout.Devanagari, Alternates: []*layout.Layout{layout.Tamil}, Session: sess})
	if len(m.layouts) != 1 || m.Layout() != layout.Tamil {
		t.Fatalf("layouts=%d active=%q, want tamil only", len(m.layouts), m.Layout().Name)
	}

	m = New(Config{Layout: layout.Devanagari, Session: sess})
	if m.Layout() != layout.Tamil {
		t.Fatalf("fallback=%q, want tamil", m.Layout().Name)
	}
}

func TestSetSize_Geometry(t *testing.T) {
	m := newTestModel(t, "")
	if got, want := m.viewport.Height, 20-2-len(layout.Devanagari.Rows); got != want {
		t.Fatalf("text height=%d, want %d", got, want)
	}
	if got := m.keysTop(); got != 13 {
		t.Fatalf("keysTop=%d, want 13", got)
	}

	m = m.SetSize(10, 3)
	if m.viewport.Height != 1 {
		t.Fatalf("text height on tiny terminal=%d, want 1", m.viewport.Height)
	}
}

func TestUpdate_ToggleKeys(t *testing.T) {
	m := newTestModel(t, ka)
	shown := m.viewport.Height
	top := m.keysTop()

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyF2})
	if !m.KeysHidden() {
		t.Fatalf("expected hidden key panel")
	}
	if got, want := m.viewport.Height, 20-1; got != want {
		t.Fatalf("text height=%d, want %d", got, want)
	}
	if _, _, ok := m.keyAt(1, top); ok {
		t.Fatalf("hidden panel still hit-tests keys")
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.Session().Text(); got != ka {
		t.Fatalf("hidden panel pressed a key: %q", got)
	}
	for _, line := range strings.Split(m.View(), "\n") {
		if strings.HasPrefix(line, "─") {
			t.Fatalf("separator drawn while hidden")
		}
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyF2})
	if m.KeysHidden() || m.viewport.Height != shown {
		t.Fatalf("hidden=%v height=%d, want shown with %d", m.KeysHidden(), m.viewport.Height, shown)
	}
}

func TestUpdate_HighlightAndActivate(t *testing.T) {
	m := newTestModel(t, "")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.Session().Text(); got != ka {
		t.Fatalf("text=%q, want %q", got, ka)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if r, c := m.Focus(); r != 0 || c != 2 {
		t.Fatalf("focus=(%d,%d), want (0,2)", r, c)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.Session().Text(); got != ka+iMatra {
		t.Fatalf("text=%q, want %q", got, ka+iMatra)
	}
}

func TestUpdate_FocusClampsToRow(t *testing.T) {
	m := newTestModel(t, "")
	for i := 0; i < 20; i++ {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	}
	if _, c := m.Focus(); c != len(layout.Devanagari.Rows[0].Keys)-1 {
		t.Fatalf("col=%d, want last key", c)
	}
	for i := 0; i < 10; i++ {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	r, c := m.Focus()
	if r != len(layout.Devanagari.Rows)-1 || c != len(layout.Devanagari.Rows[r].Keys)-1 {
		t.Fatalf("focus=(%d,%d)", r, c)
	}
	for i := 0; i < 10; i++ {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	}
	if r, c := m.Focus(); r != 0 || c != 0 {
		t.Fatalf("focus=(%d,%d), want (0,0)", r, c)
	}
}

func TestUpdate_PhysicalInputIsSuppressed(t *testing.T) {
	gate := session.NewSuppressor(nil)
	m := newTestModel(t, ka, func(c *Config) { c.Gate = gate })

	msgs := []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("x")},
		{Type: tea.KeyRunes, Runes: []rune(kha)},
		{Type: tea.KeySpace, Runes: []rune(" ")},
		{Type: tea.KeyBackspace},
		{Type: tea.KeyDelete},
		{Type: tea.KeyRunes, Runes: []rune("paste"), Paste: true},
	}
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	if got := m.Session().Text(); got != ka {
		t.Fatalf("text=%q, want %q", got, ka)
	}
	if got := gate.Rejected(); got != len(msgs) {
		t.Fatalf("rejected=%d, want %d", got, len(msgs))
	}

	// Non-text keys are ignored without being counted.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyF5})
	if got := gate.Rejected(); got != len(msgs) {
		t.Fatalf("rejected after f5=%d, want %d", got, len(msgs))
	}
}

func TestUpdate_CaretMovement(t *testing.T) {
	m := newTestModel(t, ka+kha+ka)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft, Alt: true})
	if got := m.Session().Caret(); got != 2 {
		t.Fatalf("caret after alt+left=%d, want 2", got)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlLeft})
	if got := m.Session().Caret(); got != 1 {
		t.Fatalf("caret after ctrl+left=%d, want 1", got)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyHome})
	if got := m.Session().Caret(); got != 0 {
		t.Fatalf("caret after home=%d, want 0", got)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight, Alt: true})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	if got := m.Session().Caret(); got != 3 {
		t.Fatalf("caret after end=%d, want 3", got)
	}
}

func TestUpdate_CaretMoveRefreshesVowelLabels(t *testing.T) {
	m := newTestModel(t, ka+" ")
	k := layout.Devanagari.Rows[0].Keys[2]
	if got := m.keyLabel(k); got != letterI {
		t.Fatalf("label after space=%q, want %q", got, letterI)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft, Alt: true})
	if got, want := m.keyLabel(k), "◌"+iMatra; got != want {
		t.Fatalf("label after consonant=%q, want %q", got, want)
	}
}

func TestUpdate_CopyText(t *testing.T) {
	clip := &memClipboard{}
	m := newTestModel(t, ka+kha, func(c *Config) { c.Clipboard = clip })
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	if clip.s != ka+kha {
		t.Fatalf("clipboard=%q, want %q", clip.s, ka+kha)
	}

	failing := &memClipboard{err: errors.New("no display")}
	m = newTestModel(t, ka, func(c *Config) { c.Clipboard = failing })
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	if m.Session().Text() != ka {
		t.Fatalf("copy failure changed text")
	}
}

func TestUpdate_SwitchLayout(t *testing.T) {
	m := newTestModel(t, "")
	for i := 0; i < 9; i++ {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.Layout() != layout.Tamil {
		t.Fatalf("layout=%q, want tamil", m.Layout().Name)
	}
	if got, want := m.viewport.Height, 20-2-len(layout.Tamil.Rows); got != want {
		t.Fatalf("text height=%d, want %d", got, want)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	first := layout.Tamil.Rows[0].Keys[9].Glyph
	if got := m.Session().Text(); got != first {
		t.Fatalf("text=%q, want %q", got, first)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.Layout() != layout.Devanagari {
		t.Fatalf("layout=%q, want devanagari", m.Layout().Name)
	}

	single := New(Config{Layout: layout.Tamil})
	single, _ = single.Update(tea.KeyMsg{Type: tea.KeyTab})
	if single.Layout() != layout.Tamil {
		t.Fatalf("single layout switched")
	}
}

func TestUpdate_TamilInsertsAtCaret(t *testing.T) {
	m := newTestModel(t, ka+kha, func(c *Config) { c.Layout = layout.Tamil })
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyHome})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	want := layout.Tamil.Rows[0].Keys[0].Glyph + ka + kha
	if got := m.Session().Text(); got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestUpdate_HelpToggleResizes(t *testing.T) {
	m := newTestModel(t, "", func(c *Config) { c.ShowHelp = true })
	short := m.viewport.Height
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyF1})
	if !m.help.ShowAll {
		t.Fatalf("expected full help")
	}
	if m.viewport.Height >= short {
		t.Fatalf("text height=%d, want < %d", m.viewport.Height, short)
	}
}

func TestUpdate_PicksUpHostChanges(t *testing.T) {
	var events []ChangeEvent
	m := newTestModel(t, "", func(c *Config) {
		c.OnChange = func(ev ChangeEvent) { events = append(events, ev) }
	})
	m.Session().OnConsonantOrMarkKeyPressed(ka)
	m, _ = m.Update(struct{}{})
	if len(events) != 1 || events[0].Text != ka {
		t.Fatalf("events=%+v", events)
	}
	if got := m.keyLabel(layout.Devanagari.Rows[0].Keys[2]); got != "◌"+iMatra {
		t.Fatalf("label=%q", got)
	}
}
