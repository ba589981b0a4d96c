package panel

// Clipboard receives the text copied out of the panel. The panel never reads
// from it: pasting is rejected so text only enters through key presses.
//
// Errors must not crash the UI; failures are logged and otherwise ignored.
type Clipboard interface {
	WriteText(s string) error
}
