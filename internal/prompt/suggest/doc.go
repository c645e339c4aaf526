// Package suggest produces fish-style inline suggestions from input
// history.
package suggest
