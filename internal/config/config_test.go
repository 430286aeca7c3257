package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("missing config should not fail: %v", err)
	}
	if cfg.Test.Amount != nil || cfg.Publish.NatsURL != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `[test]
amount = 30
lang = "es"
ready-text = "Go"
timeout = 60

[publish]
nats-url = "nats://127.0.0.1:4222"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Test.Amount == nil || *cfg.Test.Amount != 30 {
		t.Fatalf("unexpected amount: %v", cfg.Test.Amount)
	}
	if cfg.Test.Lang == nil || *cfg.Test.Lang != "es" {
		t.Fatalf("unexpected lang: %v", cfg.Test.Lang)
	}
	if cfg.Test.Timeout == nil || *cfg.Test.Timeout != 60 {
		t.Fatalf("unexpected timeout: %v", cfg.Test.Timeout)
	}
	if cfg.Test.JSON != nil {
		t.Fatalf("expected unset json flag")
	}
	if cfg.Publish.NatsURL == nil || *cfg.Publish.NatsURL != "nats://127.0.0.1:4222" {
		t.Fatalf("unexpected nats url: %v", cfg.Publish.NatsURL)
	}
}

func TestLoadConfigUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[test]\nwords = 3\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err := LoadConfig(path)
	if err == nil || !strings.Contains(err.Error(), "test.words") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestXDGPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/cfg")
	t.Setenv("XDG_DATA_HOME", "/tmp/data")
	if got := DefaultConfigPath(); got != filepath.Join("/tmp/cfg", "katype", "config.toml") {
		t.Fatalf("unexpected config path %q", got)
	}
	if got := DefaultDBPath(); got != filepath.Join("/tmp/data", "katype", "katype.db") {
		t.Fatalf("unexpected db path %q", got)
	}
	if got := DefaultWordListDir(); got != filepath.Join("/tmp/cfg", "katype", "wordlists") {
		t.Fatalf("unexpected wordlist dir %q", got)
	}
}
