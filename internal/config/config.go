// Package config loads the converter defaults from TOML files.
package config

import (
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	OutputDir string `koanf:"output_dir"` // where artifacts are written, empty means cwd

	// Conversion defaults, overridable per run from the command line
	Output OutputConfig `koanf:"output"`

	// Logging
	Log LogConfig `koanf:"log"`
}

// OutputConfig holds default emission parameters.
type OutputConfig struct {
	Width      int    `koanf:"width"`      // target matrix width (default: 16)
	Height     int    `koanf:"height"`     // target matrix height (default: 16)
	Brightness int    `koanf:"brightness"` // percent, >100 allowed (default: 100)
	FPS        int    `koanf:"fps"`        // playback rate (default: 10)
	Mode       string `koanf:"mode"`       // resample mode name (default: "fit")
	Format     string `koanf:"format"`     // "st", "gvl" or "json" (default: "st")
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `koanf:"level"` // "debug", "info", "warn", "error"
	File  string `koanf:"file"`  // rotating log file path, empty disables
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.OutputDir != "" {
		cfg.OutputDir = expandPath(cfg.OutputDir)
	}
	if cfg.Log.File != "" {
		cfg.Log.File = expandPath(cfg.Log.File)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/ledforge/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "ledforge", "config.toml"))
	}

	// 2. ./ledforge.toml (pwd, highest priority)
	paths = append(paths, "ledforge.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetOutputConfig returns the output defaults with fallbacks applied.
func (c *Config) GetOutputConfig() OutputConfig {
	cfg := c.Output

	if cfg.Width <= 0 {
		cfg.Width = 16
	}
	if cfg.Height <= 0 {
		cfg.Height = 16
	}
	if cfg.Brightness <= 0 {
		cfg.Brightness = 100
	}
	if cfg.FPS <= 0 {
		cfg.FPS = 10
	}
	if cfg.Mode == "" {
		cfg.Mode = "fit"
	}
	if cfg.Format == "" {
		cfg.Format = "st"
	}

	return cfg
}
