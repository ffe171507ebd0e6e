package application

import (
	"errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	configAdapter "github.com/ccdkit/ccdlint/internal/adapters/outbound/config"
	"github.com/ccdkit/ccdlint/internal/adapters/outbound/engine"
	"github.com/ccdkit/ccdlint/internal/adapters/outbound/scanner"
	"github.com/ccdkit/ccdlint/internal/domain"
)

const (
	schemaFixture = "../../testdata/schema/clinical_document.xsd"
	docsFixture   = "../../testdata/docs"
)

func newService() *ValidateService {
	return NewValidateService(
		engine.New(),
		engine.NewMarkupParser(),
		scanner.New(),
		configAdapter.New(),
	)
}

func loadSchema(t *testing.T, svc *ValidateService) domain.CompiledSchema {
	t.Helper()
	schema, err := svc.LoadSchema(schemaFixture)
	require.NoError(t, err)
	return schema
}

func TestLoadSchema_FailureIsMarked(t *testing.T) {
	svc := newService()
	_, err := svc.LoadSchema(filepath.Join(t.TempDir(), "nope.xsd"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrSchemaLoad))
}

func TestValidateFile_Conformant(t *testing.T) {
	svc := newService()
	schema := loadSchema(t, svc)

	result := svc.ValidateFile(schema, filepath.Join(docsFixture, "valid.xml"))
	assert.True(t, result.WellFormed)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
	assert.False(t, result.Timestamp.IsZero())
}

func TestValidateFile_SchemaViolation(t *testing.T) {
	svc := newService()
	schema := loadSchema(t, svc)

	result := svc.ValidateFile(schema, filepath.Join(docsFixture, "invalid.xml"))
	assert.True(t, result.WellFormed)
	assert.False(t, result.Valid)
	require.NotEmpty(t, result.Errors)
	for _, e := range result.Errors {
		assert.Equal(t, domain.ErrorTypeSchema, e.Type)
		assert.NotEmpty(t, e.Message)
	}
}

func TestValidateFile_MalformedShortCircuits(t *testing.T) {
	svc := newService()
	schema := loadSchema(t, svc)

	result := svc.ValidateFile(schema, filepath.Join(docsFixture, "malformed.xml"))
	assert.False(t, result.WellFormed)
	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, domain.ErrorTypeXMLSyntax, result.Errors[0].Type)

	// Schema checking is never attempted on malformed markup.
	for _, e := range result.Errors {
		assert.NotEqual(t, domain.ErrorTypeSchema, e.Type)
	}
}

func TestValidateFile_NotFound(t *testing.T) {
	svc := newService()
	schema := loadSchema(t, svc)

	result := svc.ValidateFile(schema, filepath.Join(t.TempDir(), "missing.xml"))
	assert.False(t, result.WellFormed)
	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, domain.ErrorTypeFileNotFound, result.Errors[0].Type)
	assert.Contains(t, result.Errors[0].Message, "missing.xml")
}

// brokenSchema simulates an engine failure that is not a validation finding.
type brokenSchema struct{}

func (brokenSchema) Check(io.Reader) ([]domain.Diagnostic, error) {
	return nil, errors.New("engine exploded")
}

func TestValidateFile_UnexpectedEngineFailure(t *testing.T) {
	svc := newService()

	result := svc.ValidateFile(brokenSchema{}, filepath.Join(docsFixture, "valid.xml"))
	assert.True(t, result.WellFormed)
	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, domain.ErrorTypeUnexpected, result.Errors[0].Type)
	assert.Contains(t, result.Errors[0].Message, "engine exploded")
}

func TestValidateDirectory_Flat(t *testing.T) {
	svc := newService()
	schema := loadSchema(t, svc)

	var seen []string
	results, err := svc.ValidateDirectory(schema, docsFixture, false,
		func(r domain.ValidationResult) { seen = append(seen, filepath.Base(r.File)) })
	require.NoError(t, err)

	require.Len(t, results, 3)
	assert.ElementsMatch(t, []string{"valid.xml", "invalid.xml", "malformed.xml"}, seen)

	// Subdirectory files never appear without recursion.
	for _, r := range results {
		assert.NotEqual(t, "followup.xml", filepath.Base(r.File))
	}
}

func TestValidateDirectory_Recursive(t *testing.T) {
	svc := newService()
	schema := loadSchema(t, svc)

	results, err := svc.ValidateDirectory(schema, docsFixture, true, nil)
	require.NoError(t, err)
	require.Len(t, results, 4)

	valid := 0
	for _, r := range results {
		if r.Valid {
			assert.Empty(t, r.Errors)
			valid++
		}
	}
	assert.Equal(t, 2, valid)
}

func TestValidateDirectory_Empty(t *testing.T) {
	svc := newService()
	schema := loadSchema(t, svc)

	results, err := svc.ValidateDirectory(schema, t.TempDir(), false, nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestValidateDirectory_MissingDir(t *testing.T) {
	svc := newService()
	schema := loadSchema(t, svc)

	_, err := svc.ValidateDirectory(schema, filepath.Join(t.TempDir(), "nope"), false, nil)
	assert.Error(t, err)
}
