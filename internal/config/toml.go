// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Password PasswordConfig `toml:"password"`
	Export   ExportConfig   `toml:"export"`
}

// PasswordConfig maps password generator defaults.
type PasswordConfig struct {
	Length          *int  `toml:"length"`
	Count           *int  `toml:"count"`
	Uppercase       *bool `toml:"uppercase"`
	Lowercase       *bool `toml:"lowercase"`
	Numbers         *bool `toml:"numbers"`
	Symbols         *bool `toml:"symbols"`
	AvoidSimilar    *bool `toml:"avoid-similar"`
	AllowDuplicates *bool `toml:"allow-duplicates"`
	AvoidSequential *bool `toml:"avoid-sequential"`
}

// ExportConfig maps file export settings.
type ExportConfig struct {
	Dir *string `toml:"dir"`
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
