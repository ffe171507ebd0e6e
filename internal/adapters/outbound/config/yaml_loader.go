package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ccdkit/ccdlint/internal/domain"
)

const fileName = ".ccdlint.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .ccdlint.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .ccdlint.yaml from dir. Returns DefaultConfig when the file
// does not exist. Explicit values win over defaults.
func (l *YAMLLoader) Load(dir string) (domain.ProjectConfig, error) {
	data, err := os.ReadFile(filepath.Join(dir, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.ProjectConfig{}, err
	}

	var cfg domain.ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	if err := cfg.Validate(); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}

	return mergeConfig(domain.DefaultConfig(), cfg), nil
}

// mergeConfig overlays explicit overrides on top of the defaults.
func mergeConfig(base, override domain.ProjectConfig) domain.ProjectConfig {
	result := base
	if override.DefaultFormat != "" {
		result.DefaultFormat = override.DefaultFormat
	}
	if len(override.Extensions) > 0 {
		result.Extensions = override.Extensions
	}
	if len(override.ExcludeDirs) > 0 {
		result.ExcludeDirs = override.ExcludeDirs
	}
	return result
}
