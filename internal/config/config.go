// Package config loads the optional global configuration for mpkv.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the global configuration stored under the user's config
// directory. Every field is optional; command-line flags and the
// MPKV_VAULT environment variable take precedence.
type Config struct {
	VaultPath string `yaml:"vault_path,omitempty"`
	ExportDir string `yaml:"export_dir,omitempty"`
}

const (
	// Dir is the directory name under XDG_CONFIG_HOME.
	Dir = "mpkv"
	// File is the config file name.
	File = "config.yml"
)

// Path returns the location of the global config file. Respects
// XDG_CONFIG_HOME, defaults to ~/.config/mpkv/config.yml.
func Path() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, Dir, File)
}

// Load reads the global configuration file. A missing file yields an
// empty config, not an error.
func Load() (*Config, error) {
	return loadFrom(Path())
}

func loadFrom(path string) (*Config, error) {
	if path == "" {
		return &Config{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	cfg.VaultPath = expandTilde(cfg.VaultPath)
	cfg.ExportDir = expandTilde(cfg.ExportDir)
	return &cfg, nil
}

// expandTilde replaces a leading ~ with the user's home directory.
func expandTilde(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
