package domain

import (
	"fmt"
	"strings"
)

// ValidFormats enumerates the recognized report output formats.
var ValidFormats = []string{"text", "json", "html"}

// ProjectConfig holds project-level configuration loaded from .ccdlint.yaml.
type ProjectConfig struct {
	DefaultFormat string   `yaml:"default_format" json:"default_format,omitempty"`
	Extensions    []string `yaml:"extensions"     json:"extensions,omitempty"`
	ExcludeDirs   []string `yaml:"exclude_dirs"   json:"exclude_dirs,omitempty"`
}

// DefaultConfig returns the configuration used when no .ccdlint.yaml exists.
func DefaultConfig() ProjectConfig {
	return ProjectConfig{
		DefaultFormat: "text",
		Extensions:    []string{".xml"},
	}
}

// Validate catches typos in user-supplied raw input before it is merged.
func (c ProjectConfig) Validate() error {
	if c.DefaultFormat != "" && !IsValidFormat(c.DefaultFormat) {
		return fmt.Errorf("unknown default_format %q (valid: %s)",
			c.DefaultFormat, strings.Join(ValidFormats, ", "))
	}
	for _, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("extension %q must start with a dot", ext)
		}
	}
	return nil
}

// IsValidFormat reports whether format names a supported report format.
func IsValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
