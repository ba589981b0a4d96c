// Package panel provides a Bubble Tea component that renders a text area and
// an on-screen key panel backed by a session.
//
// Text only changes through panel keys, activated with the mouse or by moving
// a highlight with the arrow keys. Physical keystrokes that would type or
// erase text are handed to the configured InputGate instead of the buffer.
package panel
