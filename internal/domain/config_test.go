package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "text", cfg.DefaultFormat)
	assert.Equal(t, []string{".xml"}, cfg.Extensions)
	assert.Empty(t, cfg.ExcludeDirs)
}

func TestProjectConfig_Validate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
	assert.NoError(t, ProjectConfig{DefaultFormat: "html"}.Validate())
	assert.NoError(t, ProjectConfig{Extensions: []string{".xml", ".ccd"}}.Validate())

	assert.Error(t, ProjectConfig{DefaultFormat: "pdf"}.Validate())
	assert.Error(t, ProjectConfig{Extensions: []string{"xml"}}.Validate())
}

func TestIsValidFormat(t *testing.T) {
	for _, f := range ValidFormats {
		assert.True(t, IsValidFormat(f))
	}
	assert.False(t, IsValidFormat("yaml"))
	assert.False(t, IsValidFormat(""))
}
