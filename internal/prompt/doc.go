// Package prompt assembles the interactive line editor: the binding
// table over the application flags and buffer, the dispatcher that
// routes decoded key events through it, and the renderer that redraws
// the prompt after each event.
package prompt
