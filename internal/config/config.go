package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// EnvConfigHome overrides the configuration directory when set.
const EnvConfigHome = "PGCLI_CONFIG_HOME"

// Config seeds the editor's startup state. Every field has a default;
// a missing config file is not an error.
type Config struct {
	// SmartCompletion enables schema-aware completion at startup.
	SmartCompletion bool `toml:"smart_completion" json:"smart_completion"`

	// MultiLine enables multi-line input at startup.
	MultiLine bool `toml:"multi_line" json:"multi_line"`

	// MultilineMode is "psql" or "safe".
	MultilineMode string `toml:"multiline_mode" json:"multiline_mode"`

	// ViMode starts the editor in vi editing mode.
	ViMode bool `toml:"vi_mode" json:"vi_mode"`

	// Prompt is the prompt text.
	Prompt string `toml:"prompt" json:"prompt"`

	// HistoryFile is the JSON-lines history path. Relative paths are
	// resolved against the config directory.
	HistoryFile string `toml:"history_file" json:"history_file"`

	// ChordTimeoutMs bounds how long multi-key chords stay pending.
	ChordTimeoutMs int `toml:"chord_timeout_ms" json:"chord_timeout_ms"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		SmartCompletion: true,
		MultiLine:       false,
		MultilineMode:   "psql",
		ViMode:          false,
		Prompt:          "pgcli> ",
		HistoryFile:     "history.jsonl",
		ChordTimeoutMs:  500,
	}
}

// Dir returns the configuration directory, honoring EnvConfigHome.
func Dir() (string, error) {
	if dir := os.Getenv(EnvConfigHome); dir != "" {
		return dir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating user config directory: %w", err)
	}
	return filepath.Join(base, "pgcli"), nil
}

// Load reads config.toml from dir, falling back to config.json, then
// to defaults when neither exists. A file that exists but fails to
// parse or validate is an error; silently ignoring it would mask typos.
func Load(dir string) (Config, error) {
	cfg := Default()

	tomlPath := filepath.Join(dir, "config.toml")
	if data, err := os.ReadFile(tomlPath); err == nil {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing %s: %w", tomlPath, err)
		}
		return cfg, cfg.Validate()
	} else if !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("reading %s: %w", tomlPath, err)
	}

	jsonPath := filepath.Join(dir, "config.json")
	if data, err := os.ReadFile(jsonPath); err == nil {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing %s: %w", jsonPath, err)
		}
		return cfg, cfg.Validate()
	} else if !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("reading %s: %w", jsonPath, err)
	}

	return cfg, nil
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error
	if c.MultilineMode != "psql" && c.MultilineMode != "safe" {
		errs = append(errs, fmt.Errorf("multiline_mode: %q is not \"psql\" or \"safe\"", c.MultilineMode))
	}
	if c.ChordTimeoutMs < 0 {
		errs = append(errs, fmt.Errorf("chord_timeout_ms: %d is negative", c.ChordTimeoutMs))
	}
	if c.Prompt == "" {
		errs = append(errs, errors.New("prompt: must not be empty"))
	}
	return errors.Join(errs...)
}

// ChordTimeout returns the chord timeout as a duration.
func (c Config) ChordTimeout() time.Duration {
	return time.Duration(c.ChordTimeoutMs) * time.Millisecond
}

// HistoryPath resolves the history file against the config directory.
func (c Config) HistoryPath(dir string) string {
	if filepath.IsAbs(c.HistoryFile) {
		return c.HistoryFile
	}
	return filepath.Join(dir, c.HistoryFile)
}
