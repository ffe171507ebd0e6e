package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccdkit/ccdlint/internal/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".ccdlint.yaml"), []byte(content), 0o644))
	return dir
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := New().Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestLoad_ExplicitValuesWin(t *testing.T) {
	dir := writeConfig(t, "default_format: json\nextensions: [\".xml\", \".ccd\"]\nexclude_dirs: [\"archive\"]\n")

	cfg, err := New().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.DefaultFormat)
	assert.Equal(t, []string{".xml", ".ccd"}, cfg.Extensions)
	assert.Equal(t, []string{"archive"}, cfg.ExcludeDirs)
}

func TestLoad_PartialConfigKeepsDefaults(t *testing.T) {
	dir := writeConfig(t, "exclude_dirs: [\"drafts\"]\n")

	cfg, err := New().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.DefaultFormat)
	assert.Equal(t, []string{".xml"}, cfg.Extensions)
	assert.Equal(t, []string{"drafts"}, cfg.ExcludeDirs)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := writeConfig(t, "default_format: [not a string\n")
	_, err := New().Load(dir)
	assert.Error(t, err)
}

func TestLoad_RejectsUnknownFormat(t *testing.T) {
	dir := writeConfig(t, "default_format: pdf\n")
	_, err := New().Load(dir)
	assert.Error(t, err)
}
