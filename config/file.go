package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/ghodss/yaml"
)

// DefaultFileName is the per-user config file, stored in the user's home
// directory.
const DefaultFileName = ".vclog.json"

func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultFileName), nil
}

// ReadFile loads the config file at p, or the per-user default when p is
// empty. A missing file is not an error: AI features are simply
// unavailable until configured.
func ReadFile(p string) (*Config, error) {
	if p == "" {
		var err error
		if p, err = DefaultPath(); err != nil {
			return nil, err
		}
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// WriteFile persists cfg at p, or the per-user default when p is empty,
// as two-space indented JSON. It returns the path written.
func WriteFile(p string, cfg Config) (string, error) {
	if p == "" {
		var err error
		if p, err = DefaultPath(); err != nil {
			return "", err
		}
	}
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(p, append(b, '\n'), 0600); err != nil {
		return "", err
	}
	return p, nil
}
