// Package term is the thin layer between the editor and the tty: raw
// mode setup, decoding of input escape sequences into key events, and
// the cursor-shape side channel.
//
// The cursor-shape channel is one-way and best effort. It writes
// DECSCUSR sequences (ESC [ n SP q, n in {1,3,5}) and swallows any
// write failure; a terminal that ignores the sequence simply keeps its
// current cursor.
package term
