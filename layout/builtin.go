package layout

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/iw2rmb/akshara/orthography"
)

//go:embed layouts/*.toml
var builtinFS embed.FS

var builtins = mustLoadBuiltins()

// Devanagari and Tamil are the embedded panels.
var (
	Devanagari = builtins["devanagari"]
	Tamil      = builtins["tamil"]
)

func mustLoadBuiltins() map[string]*Layout {
	entries, err := builtinFS.ReadDir("layouts")
	if err != nil {
		panic(err)
	}
	out := make(map[string]*Layout, len(entries))
	for _, e := range entries {
		data, err := builtinFS.ReadFile(path.Join("layouts", e.Name()))
		if err != nil {
			panic(err)
		}
		l, err := Parse(data)
		if err != nil {
			panic(fmt.Errorf("builtin %s: %w", e.Name(), err))
		}
		// Built-ins are written against the default table. Hosts with another
		// engine validate again against its own table before use.
		if err := l.Validate(orthography.DevanagariVowels); err != nil {
			panic(fmt.Errorf("builtin %s: %w", e.Name(), err))
		}
		out[l.Name] = l
	}
	return out
}

// Builtin returns an embedded layout by name (case-insensitive).
func Builtin(name string) (*Layout, bool) {
	l, ok := builtins[strings.ToLower(name)]
	return l, ok
}

// BuiltinNames returns the embedded layout names in sorted order.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for n := range builtins {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
