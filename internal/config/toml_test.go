package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Generate.Length != nil || cfg.Generate.Upper != nil || cfg.History.Path != nil {
		t.Fatalf("expected zero config for missing file, got %+v", cfg)
	}
}

func TestLoadConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `[generate]
length = 20
upper = false
symbols = true

[history]
path = "/tmp/history.json"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Generate.Length == nil || *cfg.Generate.Length != 20 {
		t.Fatalf("unexpected length: %+v", cfg.Generate.Length)
	}
	if cfg.Generate.Upper == nil || *cfg.Generate.Upper {
		t.Fatalf("expected upper = false")
	}
	if cfg.Generate.Symbols == nil || !*cfg.Generate.Symbols {
		t.Fatalf("expected symbols = true")
	}
	if cfg.Generate.Lower != nil || cfg.Generate.Digits != nil {
		t.Fatalf("expected unset fields to stay nil, got %+v", cfg.Generate)
	}
	if cfg.History.Path == nil || *cfg.History.Path != "/tmp/history.json" {
		t.Fatalf("unexpected history path: %+v", cfg.History.Path)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("generate = {"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected decode error")
	}
}
