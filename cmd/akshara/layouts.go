package main

import (
	"fmt"
	"strings"

	"github.com/iw2rmb/akshara/internal/config"
	"github.com/iw2rmb/akshara/layout"
	"github.com/iw2rmb/akshara/orthography"
)

// selectLayouts returns the configured initial layout and the rest, in
// order. User layouts from the layouts directory replace built-ins of the
// same name. Every layout must fit the session's vowel table; built-ins that
// do not are left out.
func selectLayouts(pc config.PanelConfig, vowels *orthography.VowelTable) (*layout.Layout, []*layout.Layout, error) {
	var all []*layout.Layout
	index := make(map[string]int)
	add := func(l *layout.Layout) {
		key := strings.ToLower(l.Name)
		if i, ok := index[key]; ok {
			all[i] = l
			return
		}
		index[key] = len(all)
		all = append(all, l)
	}

	unfit := make(map[string]error)
	for _, name := range layout.BuiltinNames() {
		l, _ := layout.Builtin(name)
		if err := l.Validate(vowels); err != nil {
			unfit[name] = err
			continue
		}
		add(l)
	}
	if pc.LayoutsDir != "" {
		user, err := layout.LoadDir(pc.LayoutsDir, vowels)
		if err != nil {
			return nil, nil, fmt.Errorf("load user layouts: %w", err)
		}
		for _, l := range user {
			add(l)
		}
	}

	i, ok := index[strings.ToLower(pc.Layout)]
	if err := unfit[strings.ToLower(pc.Layout)]; !ok && err != nil {
		return nil, nil, fmt.Errorf("layout %q: %w", pc.Layout, err)
	}
	if !ok {
		return nil, nil, fmt.Errorf("unknown layout %q", pc.Layout)
	}
	rest := make([]*layout.Layout, 0, len(all)-1)
	for j, l := range all {
		if j != i {
			rest = append(rest, l)
		}
	}
	return all[i], rest, nil
}
