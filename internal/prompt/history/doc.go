// Package history stores submitted inputs with stable IDs and
// timestamps, persisted as JSON lines so a crash loses at most the
// line being written.
package history
