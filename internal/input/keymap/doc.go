// Package keymap provides predicate-guarded key binding resolution.
//
// A Binding ties a key Chord to a Handler, guarded by a Condition over
// an immutable State snapshot. Several bindings may share one chord;
// dispatch picks exactly one of them, or none:
//
//  1. Among matching bindings whose condition holds, eager bindings
//     win over non-eager ones.
//  2. Within a tier, the first registered binding wins.
//
// "Eager" is a static priority annotation resolved per key event;
// there is no runtime race between bindings.
//
// The Table is built once at startup and never mutated afterwards;
// application flag toggles change what the conditions evaluate to, not
// the table contents.
package keymap
