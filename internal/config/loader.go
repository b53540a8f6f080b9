package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the configuration file name looked up in the current
// directory.
const DefaultConfigFile = ".revisor.yaml"

// XDGConfigFile is the configuration file name inside XDGConfigDir.
const XDGConfigFile = "config.yaml"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File represents the YAML configuration file. Every field is optional;
// a missing field keeps the current value when the file is applied.
type File struct {
	Suffix        *string  `yaml:"suffix"`
	Extensions    []string `yaml:"extensions"`
	Workers       *int     `yaml:"workers"`
	InheritStyles *bool    `yaml:"inheritStyles"`
	OutputDir     *string  `yaml:"outputDir"`
}

// LoadConfigFile loads the configuration from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound.
// Callers should handle this error appropriately based on whether
// the config file path was explicitly specified by the user.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}

	return &cf, nil
}

// Apply copies the values set in the file onto c. Extensions are normalized
// to lowercase with a leading dot.
func (f *File) Apply(c *Config) {
	if f == nil {
		return
	}
	if f.Suffix != nil {
		c.Suffix = *f.Suffix
	}
	if f.Extensions != nil {
		var exts []string
		for _, ext := range f.Extensions {
			if ext = normalizeExtension(ext); ext != "" {
				exts = append(exts, ext)
			}
		}
		c.Extensions = exts
	}
	if f.Workers != nil {
		c.Workers = *f.Workers
	}
	if f.InheritStyles != nil {
		c.InheritStyles = *f.InheritStyles
	}
	if f.OutputDir != nil {
		c.OutputDir = *f.OutputDir
	}
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .revisor.yaml in the current directory
// 3. Look for config.yaml in the XDG config directory
//
// Returns the path to the configuration file if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	// If explicit path is provided, use it
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	// Check current directory
	cwd, err := os.Getwd()
	if err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	// Check XDG config directory
	xdgConfig := filepath.Join(XDGConfigDir(), XDGConfigFile)
	if _, err := os.Stat(xdgConfig); err == nil {
		return xdgConfig
	}

	return ""
}

// Load builds a Config from the defaults and the configuration file found by
// FindConfigFile. A missing file is not an error unless configPath was given
// explicitly.
func Load(configPath string) (*Config, string, error) {
	cfg := NewConfig()

	path := FindConfigFile(configPath)
	if path == "" {
		if configPath != "" {
			return nil, "", ErrConfigNotFound
		}
		return cfg, "", nil
	}

	cf, err := LoadConfigFile(path)
	if err != nil {
		return nil, path, err
	}
	cf.Apply(cfg)

	return cfg, path, nil
}
