// Package config loads the ambient, user-level configuration file
// ~/.gitletconfig. This is distinct from a repository's Repository
// State record (pkg/repo.Management): it holds per-user preferences
// that apply across every repository the user touches, never anything
// that affects a commit's hash.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the decoded contents of ~/.gitletconfig.
type Config struct {
	Color struct {
		Enabled bool `toml:"enabled"`
	} `toml:"color"`
	Sign struct {
		KeyPath string `toml:"key_path"`
	} `toml:"sign"`
}

// Default returns the configuration used when no file is present:
// colorized output on, no default signing key override.
func Default() *Config {
	c := &Config{}
	c.Color.Enabled = true
	return c
}

// Load reads ~/.gitletconfig, falling back to Default if the file does
// not exist.
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("config: resolve home dir: %w", err)
	}
	return LoadFrom(filepath.Join(home, ".gitletconfig"))
}

// LoadFrom reads a configuration file at an explicit path.
func LoadFrom(path string) (*Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if _, err := toml.Decode(string(data), c); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return c, nil
}
