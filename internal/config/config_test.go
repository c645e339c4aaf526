package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
}

func TestLoadTOML(t *testing.T) {
	dir := t.TempDir()
	content := `
smart_completion = false
multi_line = true
multiline_mode = "safe"
vi_mode = true
prompt = "db> "
chord_timeout_ms = 250
`
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.SmartCompletion {
		t.Error("smart_completion should be disabled")
	}
	if !cfg.MultiLine || cfg.MultilineMode != "safe" {
		t.Errorf("multi-line settings = %v/%q", cfg.MultiLine, cfg.MultilineMode)
	}
	if !cfg.ViMode {
		t.Error("vi_mode should be enabled")
	}
	if cfg.Prompt != "db> " {
		t.Errorf("Prompt = %q, want %q", cfg.Prompt, "db> ")
	}
	if got := cfg.ChordTimeout(); got != 250*time.Millisecond {
		t.Errorf("ChordTimeout() = %v, want 250ms", got)
	}
	// Unset fields keep their defaults.
	if cfg.HistoryFile != Default().HistoryFile {
		t.Errorf("HistoryFile = %q, want default", cfg.HistoryFile)
	}
}

func TestLoadJSONFallback(t *testing.T) {
	dir := t.TempDir()
	content := `{"multi_line": true, "prompt": "sql# "}`
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !cfg.MultiLine || cfg.Prompt != "sql# " {
		t.Errorf("Load() = %+v, want JSON values applied", cfg)
	}
}

func TestLoadPrefersTOMLOverJSON(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`prompt = "toml> "`), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(`{"prompt": "json> "}`), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Prompt != "toml> " {
		t.Errorf("Prompt = %q, want the TOML file to win", cfg.Prompt)
	}
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`multiline_mode = "never"`), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := Load(dir)
	if err == nil {
		t.Fatal("Load() should reject an unknown multiline_mode")
	}
	if !strings.Contains(err.Error(), "multiline_mode") {
		t.Errorf("error = %v, want multiline_mode mentioned", err)
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := Config{MultilineMode: "bogus", ChordTimeoutMs: -1}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want errors")
	}
	for _, want := range []string{"multiline_mode", "chord_timeout_ms", "prompt"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %v should mention %s", err, want)
		}
	}
}

func TestDirHonorsEnvOverride(t *testing.T) {
	t.Setenv(EnvConfigHome, "/tmp/pgcli-test-config")
	dir, err := Dir()
	if err != nil {
		t.Fatalf("Dir() error = %v", err)
	}
	if dir != "/tmp/pgcli-test-config" {
		t.Errorf("Dir() = %q, want env override", dir)
	}
}

func TestHistoryPath(t *testing.T) {
	cfg := Default()
	if got := cfg.HistoryPath("/etc/pgcli"); got != filepath.Join("/etc/pgcli", "history.jsonl") {
		t.Errorf("HistoryPath = %q", got)
	}

	cfg.HistoryFile = "/var/lib/history.jsonl"
	if got := cfg.HistoryPath("/etc/pgcli"); got != "/var/lib/history.jsonl" {
		t.Errorf("absolute HistoryPath = %q", got)
	}
}
