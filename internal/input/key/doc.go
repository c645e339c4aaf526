// Package key provides key event types and parsing for the input layer.
//
// This package defines the fundamental types for representing keyboard input:
//
//   - Key: Identifies a keyboard key (special keys, function keys, or runes)
//   - Modifier: Represents modifier keys (Ctrl, Alt, Shift)
//   - Event: A single key press with modifiers
//   - Chord: One or more key events that together identify a binding
//
// # Key Specifications
//
// Binding specs are written in lowercase readline notation:
//
//   - Simple keys: "a", "l", ";", "enter", "escape", "f2"
//   - With modifiers: "c-j", "c-space", "a-enter"
//   - Multi-key chords: "escape enter"
package key
