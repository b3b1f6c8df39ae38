// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Generate GenerateConfig `toml:"generate"`
	History  HistoryConfig  `toml:"history"`
}

// GenerateConfig maps generation-related settings.
type GenerateConfig struct {
	Length  *int  `toml:"length"`
	Upper   *bool `toml:"upper"`
	Lower   *bool `toml:"lower"`
	Digits  *bool `toml:"digits"`
	Symbols *bool `toml:"symbols"`
}

// HistoryConfig maps history-related settings.
type HistoryConfig struct {
	Path *string `toml:"path"`
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
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
