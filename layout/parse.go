package layout

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/iw2rmb/akshara/orthography"
)

var (
	ErrUnknownKind     = errors.New("layout: unknown key kind")
	ErrNoName          = errors.New("layout: missing name")
	ErrNoRows          = errors.New("layout: no rows")
	ErrEmptyRow        = errors.New("layout: empty row")
	ErrEmptyGlyph      = errors.New("layout: key has no glyph")
	ErrVowelOutOfRange = errors.New("layout: vowel key outside vowel table")
	ErrVowelMismatch   = errors.New("layout: vowel key glyph differs from vowel table")
	ErrDuplicateName   = errors.New("layout: duplicate layout name")
)

// Parse decodes a TOML layout document. Keys unknown to the schema are
// rejected so that typos surface at load time.
func Parse(data []byte) (*Layout, error) {
	var l Layout
	md, err := toml.Decode(string(data), &l)
	if err != nil {
		return nil, fmt.Errorf("decode layout: %w", err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		keys := make([]string, 0, len(undec))
		for _, k := range undec {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("decode layout: unknown fields %s", strings.Join(keys, ", "))
	}
	if l.Title == "" {
		l.Title = l.Name
	}
	return &l, nil
}

// Validate checks the layout structurally and cross-checks every vowel key
// against vowels. vowels may be nil for layouts without vowel keys.
func (l *Layout) Validate(vowels *orthography.VowelTable) error {
	if l.Name == "" {
		return ErrNoName
	}
	if len(l.Rows) == 0 {
		return fmt.Errorf("%s: %w", l.Name, ErrNoRows)
	}
	for r, row := range l.Rows {
		if len(row.Keys) == 0 {
			return fmt.Errorf("%s row %d: %w", l.Name, r, ErrEmptyRow)
		}
		for c, k := range row.Keys {
			if err := validateKey(k, vowels); err != nil {
				return fmt.Errorf("%s key %d/%d: %w", l.Name, r, c, err)
			}
		}
	}
	return nil
}

func validateKey(k Key, vowels *orthography.VowelTable) error {
	switch k.Kind {
	case KindGlyph:
		if k.Glyph == "" {
			return ErrEmptyGlyph
		}
	case KindVowel:
		vr, vi, ok := k.VowelRef()
		if !ok || vowels == nil {
			return ErrVowelOutOfRange
		}
		p, ok := vowels.Lookup(vr, vi)
		if !ok {
			return fmt.Errorf("[%d, %d]: %w", vr, vi, ErrVowelOutOfRange)
		}
		if k.Glyph != "" && k.Glyph != p.Independent {
			return fmt.Errorf("%q vs %q: %w", k.Glyph, p.Independent, ErrVowelMismatch)
		}
	case KindSpace, KindEnter, KindBackspace:
	default:
		return ErrUnknownKind
	}
	return nil
}

// Load reads, parses and validates a layout file.
func Load(path string, vowels *orthography.VowelTable) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout: %w", err)
	}
	l, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := l.Validate(vowels); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// LoadDir loads every *.toml file in dir, sorted by file name.
// A missing directory yields no layouts and no error.
func LoadDir(dir string, vowels *orthography.VowelTable) ([]*Layout, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.toml"))
	if err != nil {
		return nil, fmt.Errorf("glob layouts: %w", err)
	}
	sort.Strings(paths)

	seen := make(map[string]struct{}, len(paths))
	out := make([]*Layout, 0, len(paths))
	for _, p := range paths {
		l, err := Load(p, vowels)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[l.Name]; dup {
			return nil, fmt.Errorf("%s: %q: %w", p, l.Name, ErrDuplicateName)
		}
		seen[l.Name] = struct{}{}
		out = append(out, l)
	}
	return out, nil
}
