// Package config loads the startup configuration: TOML first, JSON as
// a fallback, built-in defaults when no file exists.
package config
