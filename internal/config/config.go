package config

import (
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// DefaultSuffix is appended to the document name to form the report name.
	DefaultSuffix = "_analysis"

	// DefaultWorkers of 1 analyzes documents one after another.
	DefaultWorkers = 1

	// AppName is the application name used for XDG directory paths.
	AppName = "revisor"
)

// DefaultExtensions lists the document extensions analyzed by default.
var DefaultExtensions = []string{".docx"}

// Config holds all configuration options for a revisor batch run.
// It is populated from defaults, then the config file, then CLI flags.
type Config struct {
	// Suffix is appended to each document's stem to name its report,
	// "<stem><Suffix>.txt".
	Suffix string

	// Extensions are the file extensions treated as documents, compared
	// case-insensitively. Each entry starts with a dot.
	Extensions []string

	// Workers is the number of documents analyzed concurrently.
	Workers int

	// InheritStyles fills unset formatting from the document's styles.
	// When false only direct formatting is counted.
	InheritStyles bool

	// OutputDir receives all reports. Empty means each report is written
	// next to its document.
	OutputDir string

	// Verbose enables debug logging.
	Verbose bool
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Suffix:     DefaultSuffix,
		Extensions: append([]string(nil), DefaultExtensions...),
		Workers:    DefaultWorkers,
	}
}

// XDGConfigDir returns the XDG config directory for revisor.
// On Linux: ~/.config/revisor
// On macOS: ~/Library/Application Support/revisor
// On Windows: %APPDATA%\revisor
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns the first problem found.
func (c *Config) Validate() error {
	if c.Workers <= 0 {
		return ErrInvalidWorkers
	}

	if len(c.Extensions) == 0 {
		return ErrNoExtensions
	}

	if strings.ContainsAny(c.Suffix, `/\`) {
		return ErrInvalidSuffix
	}

	return nil
}

// IsDocument reports whether name has one of the configured extensions.
func (c *Config) IsDocument(name string) bool {
	ext := filepath.Ext(name)
	for _, e := range c.Extensions {
		if strings.EqualFold(ext, e) {
			return true
		}
	}
	return false
}

// normalizeExtension returns ext lowercased with a leading dot.
func normalizeExtension(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
