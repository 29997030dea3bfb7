package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk YAML configuration shape for Pixelveil.
// Fields are pointers so the CLI can tell "unset" from zero values when
// applying CLI > local > global precedence.
type FileConfig struct {
	OutputDir *string `yaml:"output_dir"`
	Landmarks *string `yaml:"landmarks"`
	Glob      *string `yaml:"glob"`
	NoColor   *bool   `yaml:"no_color"`
	NoRecord  *bool   `yaml:"no_record"`

	// Random key generation defaults
	KeyMin    *int `yaml:"key_min"`
	KeyMax    *int `yaml:"key_max"`
	KeyLength *int `yaml:"key_length"`
}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadLocal searches for a directory-local config file in root.
// It supports .pixelveil.yml/.yaml and pixelveil.yml/.yaml.
func LoadLocal(root string) (FileConfig, error) {
	var cfg FileConfig
	for _, name := range []string{".pixelveil.yml", ".pixelveil.yaml", "pixelveil.yml", "pixelveil.yaml"} {
		p := filepath.Join(root, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return cfg, errors.New("no local config")
}

// LoadGlobal loads the global config file from XDG base directory or ~/.config.
func LoadGlobal() (FileConfig, error) {
	var cfg FileConfig
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return cfg, errors.New("no config dir")
	}
	p := filepath.Join(base, "pixelveil", "config.yml")
	if _, err := os.Stat(p); err == nil {
		return LoadFile(p)
	}
	return cfg, errors.New("no global config")
}
