// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Test    TestConfig    `toml:"test"`
	Publish PublishConfig `toml:"publish"`
}

// TestConfig maps typing test settings.
type TestConfig struct {
	Amount    *int     `toml:"amount"`
	Lang      *string  `toml:"lang"`
	ReadyText *string  `toml:"ready-text"`
	Timeout   *int     `toml:"timeout"`
	JSON      *bool    `toml:"json"`
	Save      *bool    `toml:"save"`
	Seed      *int64   `toml:"seed"`
	CapsPct   *float64 `toml:"caps"`
	PunctPct  *float64 `toml:"punct"`
	PunctSet  *string  `toml:"punct-set"`
}

// PublishConfig maps result publishing settings.
type PublishConfig struct {
	NatsURL *string `toml:"nats-url"`
	Subject *string `toml:"nats-subject"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}
