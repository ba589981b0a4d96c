// Package session ties a text buffer to the orthography engine.
//
// A Session is the only way panel keys mutate text: each On… operation
// resolves the key through the engine, applies the result to the buffer and
// reports whether vowel-row labels need to be recomputed.
//
// Sessions are not safe for concurrent use. The engine they share is.
package session

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/iw2rmb/akshara/buffer"
	"github.com/iw2rmb/akshara/internal/logging"
	"github.com/iw2rmb/akshara/layout"
	"github.com/iw2rmb/akshara/orthography"
)

// Result is the state after one operation.
type Result struct {
	Content string
	Caret   int

	// RefreshVowelRow is set when the character before the caret may have
	// changed, so vowel-row labels must be recomputed.
	RefreshVowelRow bool
}

// Options configures a Session.
type Options struct {
	// Text seeds the buffer; the caret starts at its end.
	Text string

	// ID overrides the generated session id.
	ID string

	Logger *slog.Logger
}

// Session is one editing field.
type Session struct {
	id  string
	buf *buffer.Buffer
	eng *orthography.Engine
	log *slog.Logger
}

// New creates a session. A nil engine selects the Devanagari defaults.
func New(eng *orthography.Engine, opt Options) *Session {
	if eng == nil {
		eng = orthography.New(orthography.Options{})
	}
	id := opt.ID
	if id == "" {
		id = uuid.NewString()
	}
	log := opt.Logger
	if log == nil {
		log = logging.Discard()
	}
	return &Session{
		id:  id,
		buf: buffer.New(opt.Text),
		eng: eng,
		log: log.With("session_id", id),
	}
}

func (s *Session) ID() string { return s.id }

func (s *Session) Text() string { return s.buf.Text() }

func (s *Session) Caret() int { return s.buf.Caret() }

// Buffer exposes the buffer for rendering. Callers must not mutate it.
func (s *Session) Buffer() *buffer.Buffer { return s.buf }

func (s *Session) Engine() *orthography.Engine { return s.eng }

func (s *Session) result(refresh bool) Result {
	return Result{Content: s.buf.Text(), Caret: s.buf.Caret(), RefreshVowelRow: refresh}
}

// OnVowelKeyPressed inserts the independent vowel or its matra, depending on
// the character before the caret.
func (s *Session) OnVowelKeyPressed(row, index int) Result {
	if _, ok := s.eng.Vowels().Lookup(row, index); !ok {
		s.log.Debug("vowel key out of range", "row", row, "index", index)
		return s.result(false)
	}
	prev, hasPrev := s.buf.PrecedingChar()
	glyph, form, err := s.eng.ResolveVowelKey(row, index, prev, hasPrev)
	if err != nil {
		s.log.Debug("resolve vowel key", "err", err)
		return s.result(false)
	}
	s.buf.InsertAtCaret(glyph)
	s.log.Debug("vowel inserted", "row", row, "index", index, "form", form.String(), "glyph", glyph)
	return s.result(true)
}

// OnConsonantOrMarkKeyPressed inserts glyph verbatim.
func (s *Session) OnConsonantOrMarkKeyPressed(glyph string) Result {
	s.buf.InsertAtCaret(glyph)
	return s.result(false)
}

func (s *Session) OnSpacePressed() Result {
	s.buf.InsertAtCaret(s.eng.ResolveSpecialKey(orthography.SpecialSpace))
	return s.result(true)
}

func (s *Session) OnEnterPressed() Result {
	s.buf.InsertAtCaret(s.eng.ResolveSpecialKey(orthography.SpecialEnter))
	return s.result(true)
}

// OnBackspacePressed deletes one code point before the caret, or a nukta
// together with its base.
func (s *Session) OnBackspacePressed() Result {
	before := s.buf.PrecedingChars(2)
	if orthography.OrphanedNukta(before) {
		s.log.Warn("nukta without consonant base", "sequence", codePoints(before))
	}
	s.buf.DeleteBeforeCaret(int(s.eng.ResolveBackspace(before)))
	return s.result(true)
}

// OnCaretRelocated moves the caret to offset, clamped to the text.
func (s *Session) OnCaretRelocated(offset int) Result {
	s.buf.MoveCaretTo(offset)
	return s.result(true)
}

// MoveCaret moves the caret relative to its current position.
func (s *Session) MoveCaret(dir buffer.MoveDir) Result {
	s.buf.MoveCaret(dir)
	return s.result(true)
}

// OnKey dispatches a layout key to the matching operation.
func (s *Session) OnKey(k layout.Key) Result {
	switch k.Kind {
	case layout.KindVowel:
		row, index, ok := k.VowelRef()
		if !ok {
			s.log.Debug("vowel key without table position", "glyph", k.Glyph)
			return s.result(false)
		}
		return s.OnVowelKeyPressed(row, index)
	case layout.KindSpace:
		return s.OnSpacePressed()
	case layout.KindEnter:
		return s.OnEnterPressed()
	case layout.KindBackspace:
		return s.OnBackspacePressed()
	default:
		return s.OnConsonantOrMarkKeyPressed(k.Glyph)
	}
}

// CurrentVowelRowGlyphs returns the glyphs vowel-row buttons should show at
// the current caret.
func (s *Session) CurrentVowelRowGlyphs() [][]orthography.VowelGlyph {
	prev, hasPrev := s.buf.PrecedingChar()
	return s.eng.VowelRowGlyphs(prev, hasPrev)
}

// CurrentVowelForm is the form every vowel key inserts at the current caret.
func (s *Session) CurrentVowelForm() orthography.Form {
	prev, hasPrev := s.buf.PrecedingChar()
	return s.eng.VowelForm(prev, hasPrev)
}

func (s *Session) Version() uint64 { return s.buf.Version() }

func (s *Session) LastChange() (buffer.Change, bool) { return s.buf.LastChange() }

func codePoints(rs []rune) string {
	parts := make([]string, len(rs))
	for i, r := range rs {
		parts[i] = fmt.Sprintf("%U", r)
	}
	return strings.Join(parts, " ")
}
