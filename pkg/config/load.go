package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// AppName is the directory name used under the user config dir.
const AppName = "novafetch"

// DefaultPath returns the config file location:
//  1. $XDG_CONFIG_HOME/novafetch/config.toml
//  2. <os.UserConfigDir>/novafetch/config.toml
//  3. ~/.config/novafetch/config.toml
func DefaultPath() string {
	return filepath.Join(configHome(), AppName, "config.toml")
}

// Load reads the configuration at path, or DefaultPath when path is empty.
//
// A missing or unparsable TOML file is replaced with the defaults, which are
// then written back. The returned config is always usable; a non-nil error
// only reports that the write-back failed.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	if err == nil {
		cfg, perr := decode(path, data)
		if perr == nil {
			return cfg, nil
		}
		if isYAML(path) {
			// Never overwrite a YAML file with TOML.
			return DefaultConfig(), nil
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}

	cfg := DefaultConfig()
	if werr := Save(path, cfg); werr != nil {
		return cfg, werr
	}
	return cfg, nil
}

// LoadFromReader decodes TOML from r on top of DefaultConfig.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	md, err := toml.NewDecoder(r).Decode(cfg)
	if err != nil {
		return nil, fmt.Errorf("decoding toml: %w", err)
	}
	applyPreset(&cfg.Theme, func(key string) bool {
		return md.IsDefined("theme", key)
	})
	return cfg, nil
}

// LoadYAML decodes a YAML document with the same schema on top of
// DefaultConfig.
func LoadYAML(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading yaml: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("decoding yaml: %w", err)
	}

	var raw struct {
		Theme map[string]any `yaml:"theme"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding yaml: %w", err)
	}
	applyPreset(&cfg.Theme, func(key string) bool {
		_, ok := raw.Theme[key]
		return ok
	})
	return cfg, nil
}

// Save writes cfg as TOML to path, creating parent directories. The file is
// written to a temp file in the same directory and renamed into place.
func Save(path string, cfg *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	tmpFile, err := os.CreateTemp(dir, ".novafetch-*.toml")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	if err := toml.NewEncoder(tmpFile).Encode(cfg); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("atomic rename: %w", err)
	}
	return nil
}

func decode(path string, data []byte) (*Config, error) {
	if isYAML(path) {
		return LoadYAML(bytes.NewReader(data))
	}
	return LoadFromReader(bytes.NewReader(data))
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// configHome returns XDG_CONFIG_HOME, the platform config dir, or ~/.config.
func configHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	if dir, err := os.UserConfigDir(); err == nil && dir != "" {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config")
}
