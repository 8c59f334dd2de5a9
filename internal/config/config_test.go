package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("expected missing file to be ignored: %v", err)
	}
	if cfg.Play.Difficulty != nil {
		t.Fatalf("expected empty config")
	}
}

func TestLoadConfigDecodes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `[play]
difficulty = "hard"
custom = true
tick-ms = 50
log-file = "/tmp/typeracer.log"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Play.Difficulty == nil || *cfg.Play.Difficulty != "hard" {
		t.Fatalf("unexpected difficulty: %v", cfg.Play.Difficulty)
	}
	if cfg.Play.Custom == nil || !*cfg.Play.Custom {
		t.Fatalf("expected custom = true")
	}
	if cfg.Play.TickMs == nil || *cfg.Play.TickMs != 50 {
		t.Fatalf("unexpected tick-ms: %v", cfg.Play.TickMs)
	}
	if cfg.Play.MaxOvertype != nil {
		t.Fatalf("expected max-overtype to stay unset")
	}
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[play]\nlang = \"en\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, err := LoadConfig(path)
	if err == nil || !strings.Contains(err.Error(), "play.lang") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestDefaultPathsUseXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	t.Setenv("XDG_DATA_HOME", "/data")
	if got := DefaultConfigPath(); got != filepath.Join("/cfg", "typeracer", "config.toml") {
		t.Fatalf("unexpected config path: %s", got)
	}
	if got := DefaultDBPath(); got != filepath.Join("/data", "typeracer", "typeracer.db") {
		t.Fatalf("unexpected db path: %s", got)
	}
}
