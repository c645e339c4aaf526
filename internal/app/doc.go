// Package app holds the client-level state the key bindings act on:
// the F2-F5 toggle flags, the top-level editing mode, and the
// submission predicates that decide what Enter does.
package app
