// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/runoshun/git-whatdo/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	whatdoDir     string // Path to .git/whatdo directory
	globalConfDir string // Path to global config directory (e.g. ~/.config/git-whatdo)
}

// NewLoader creates a new Loader.
func NewLoader(whatdoDir string) *Loader {
	return &Loader{
		whatdoDir:     whatdoDir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a Loader with a custom global config
// directory. This is useful for testing.
func NewLoaderWithGlobalDir(whatdoDir, globalConfDir string) *Loader {
	return &Loader{
		whatdoDir:     whatdoDir,
		globalConfDir: globalConfDir,
	}
}

func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// Load returns the merged configuration.
// Repository config takes precedence over global config over defaults.
func (l *Loader) Load() (*domain.Config, error) {
	cfg := domain.NewDefaultConfig()

	if l.globalConfDir != "" {
		if err := l.loadInto(filepath.Join(l.globalConfDir, domain.ConfigFileName), cfg); err != nil {
			return nil, err
		}
	}
	if err := l.loadInto(filepath.Join(l.whatdoDir, domain.ConfigFileName), cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadInto decodes a config file over cfg. Missing files are not an error.
func (l *Loader) loadInto(path string, cfg *domain.Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}
