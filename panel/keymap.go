package panel

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the panel key bindings. None of them insert text.
//
// Bindings must be portable across terminals (ctrl/alt fallbacks).
type KeyMap struct {
	Up, Down, Left, Right key.Binding
	Activate              key.Binding

	CaretLeft, CaretRight key.Binding
	CaretHome, CaretEnd   key.Binding

	Copy         key.Binding
	SwitchLayout key.Binding
	ToggleKeys   key.Binding
	Help         key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:       key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "key up")),
		Down:     key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "key down")),
		Left:     key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "key left")),
		Right:    key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "key right")),
		Activate: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "press key")),

		// Portable caret movement: terminals vary between alt+arrows and ctrl+arrows.
		CaretLeft:  key.NewBinding(key.WithKeys("alt+left", "ctrl+left"), key.WithHelp("alt/ctrl+←", "caret left")),
		CaretRight: key.NewBinding(key.WithKeys("alt+right", "ctrl+right"), key.WithHelp("alt/ctrl+→", "caret right")),
		CaretHome:  key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "caret start")),
		CaretEnd:   key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "caret end")),

		Copy:         key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy text")),
		SwitchLayout: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch script")),
		ToggleKeys:   key.NewBinding(key.WithKeys("f2"), key.WithHelp("f2", "hide/show keys")),
		Help:         key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "more help")),
	}
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Activate, km.CaretLeft, km.CaretRight, km.Copy, km.SwitchLayout, km.Help}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Up, km.Down, km.Left, km.Right, km.Activate},
		{km.CaretLeft, km.CaretRight, km.CaretHome, km.CaretEnd},
		{km.Copy, km.SwitchLayout, km.ToggleKeys, km.Help},
	}
}

func (km KeyMap) empty() bool {
	return len(km.Activate.Keys()) == 0 && len(km.Up.Keys()) == 0
}
