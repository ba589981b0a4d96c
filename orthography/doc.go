// Package orthography decides what a key press on a Devanagari key panel
// means for the text before the caret.
//
// The engine is stateless: every decision is a pure function of the code
// point preceding the caret and the requested key. One Engine may be shared
// by any number of editing sessions.
//
// Two rules carry the script's orthography:
//
//   - A vowel key yields its dependent sign (matra) after a consonant or a
//     nukta, and its independent letter anywhere else.
//   - Backspace over a nukta also removes the consonant it modifies.
package orthography
