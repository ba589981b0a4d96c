package panel

import (
	"log/slog"

	"github.com/iw2rmb/akshara/layout"
	"github.com/iw2rmb/akshara/session"
)

// Config configures the panel Model.
type Config struct {
	// Layout is the initial key panel. Alternates are reachable with the
	// SwitchLayout binding, in order.
	Layout     *layout.Layout
	Alternates []*layout.Layout

	// Session receives every activated key. A Devanagari session is created
	// when nil.
	Session *session.Session

	KeyMap KeyMap
	Style  Style

	// ShowMatraBase draws matra labels on a dotted circle.
	ShowMatraBase bool
	ShowHelp      bool

	// KeyCells is the width of one key unit in terminal cells. 0 fits the
	// widest label.
	KeyCells int

	// OnChange is called after every effective change of text or caret.
	OnChange func(ChangeEvent)

	Clipboard Clipboard

	// Gate receives rejected physical input. Defaults to a session.Suppressor.
	Gate session.InputGate

	Logger *slog.Logger
}

// DefaultConfig returns a Devanagari panel with Tamil as the alternate.
func DefaultConfig() Config {
	return Config{
		Layout:        layout.Devanagari,
		Alternates:    []*layout.Layout{layout.Tamil},
		KeyMap:        DefaultKeyMap(),
		Style:         DefaultStyle(),
		ShowMatraBase: true,
		ShowHelp:      true,
	}
}
