package panel

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/akshara/internal/logging"
	"github.com/iw2rmb/akshara/layout"
	"github.com/iw2rmb/akshara/orthography"
	"github.com/iw2rmb/akshara/session"
)

// defaultTextHeight is used until the first WindowSizeMsg.
const defaultTextHeight = 3

// Model is a Bubble Tea component that renders a session's text and the key
// panel that edits it.
type Model struct {
	cfg  Config
	sess *session.Session
	gate session.InputGate
	log  *slog.Logger

	layouts []*layout.Layout
	active  int

	focusRow, focusCol int

	width, height int
	keyCells      int
	keysHidden    bool

	viewport viewport.Model
	help     help.Model

	vowels      [][]orthography.VowelGlyph
	rows        []textRow
	lastVersion uint64
}

func New(cfg Config) Model {
	if cfg.KeyMap.empty() {
		cfg.KeyMap = DefaultKeyMap()
	}
	log := cfg.Logger
	if log == nil {
		log = logging.Discard()
	}
	sess := cfg.Session
	if sess == nil {
		sess = session.New(nil, session.Options{Logger: log})
	}
	gate := cfg.Gate
	if gate == nil {
		gate = session.NewSuppressor(log)
	}

	// Vowel keys index the session's own table, which may differ from the
	// one a layout was loaded against.
	vowels := sess.Engine().Vowels()
	var layouts []*layout.Layout
	seen := make(map[string]bool)
	for _, l := range append([]*layout.Layout{cfg.Layout}, cfg.Alternates...) {
		if l == nil || seen[l.Name] {
			continue
		}
		seen[l.Name] = true
		if err := l.Validate(vowels); err != nil {
			log.Warn("layout skipped", "layout", l.Name, "err", err)
			continue
		}
		layouts = append(layouts, l)
	}
	if len(layouts) == 0 {
		layouts = []*layout.Layout{fallbackLayout(vowels)}
	}

	keyCells := cfg.KeyCells
	if keyCells <= 0 {
		keyCells = fitKeyCells(layouts, vowels)
	}

	m := Model{
		cfg:      cfg,
		sess:     sess,
		gate:     gate,
		log:      log.With("session_id", sess.ID()),
		layouts:  layouts,
		keyCells: keyCells,
		viewport: viewport.New(0, defaultTextHeight),
		help:     help.New(),
	}
	m.lastVersion = sess.Version()
	m.refresh()
	return m
}

// fallbackLayout returns the first built-in panel whose vowel keys fit the
// table. Devanagari is the last resort; the session rejects vowel keys it
// cannot resolve.
func fallbackLayout(vowels *orthography.VowelTable) *layout.Layout {
	for _, name := range layout.BuiltinNames() {
		if l, ok := layout.Builtin(name); ok && l.Validate(vowels) == nil {
			return l
		}
	}
	return layout.Devanagari
}

func (m Model) Session() *session.Session { return m.sess }

// Layout returns the active key panel.
func (m Model) Layout() *layout.Layout { return m.layouts[m.active] }

// Focus returns the highlighted key position.
func (m Model) Focus() (row, col int) { return m.focusRow, m.focusCol }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.width = width
	m.height = height
	m.help.Width = width
	m.resize()
	return m
}

func (m *Model) resize() {
	m.viewport.Width = m.width
	m.viewport.Height = m.textHeight()
	m.refresh()
}

// textHeight is what remains for the text area after the title line, the
// key panel and the help line.
func (m Model) textHeight() int {
	if m.height <= 0 {
		return defaultTextHeight
	}
	h := m.height - 1 - m.keysHeight() - m.helpHeight()
	if h < 1 {
		h = 1
	}
	return h
}

// keysHeight is the separator plus one line per key row, or nothing while
// the panel is hidden.
func (m Model) keysHeight() int {
	if m.keysHidden {
		return 0
	}
	return 1 + len(m.Layout().Rows)
}

// KeysHidden reports whether the key panel is folded away.
func (m Model) KeysHidden() bool { return m.keysHidden }

func (m Model) helpHeight() int {
	if !m.cfg.ShowHelp {
		return 0
	}
	if m.help.ShowAll {
		n := 0
		for _, col := range m.cfg.KeyMap.FullHelp() {
			if len(col) > n {
				n = len(col)
			}
		}
		return n
	}
	return 1
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	default:
		// Hosts may drive the session directly; pick up their changes.
		m.syncFromSession()
		return m, nil
	}
}

// syncFromSession refreshes derived state and reports the change when the
// session moved on since the last call.
func (m *Model) syncFromSession() bool {
	ver := m.sess.Version()
	if ver == m.lastVersion {
		return false
	}
	m.lastVersion = ver
	m.refresh()
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(m.sess))
	}
	return true
}

// refresh recomputes vowel-row labels and the text area.
func (m *Model) refresh() {
	m.vowels = m.sess.CurrentVowelRowGlyphs()
	buf := m.sess.Buffer()
	m.rows = layoutText(buf.Runes(), buf.Caret(), m.viewport.Width)
	m.viewport.SetContent(m.renderText())
	m.followCaret()
}

func (m *Model) followCaret() {
	h := m.viewport.Height
	if h <= 0 {
		return
	}
	row := caretRow(m.rows, m.sess.Caret())
	y := m.viewport.YOffset
	if row < y {
		m.viewport.SetYOffset(row)
		return
	}
	if row >= y+h {
		m.viewport.SetYOffset(row - h + 1)
	}
}
