package application

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ccdkit/ccdlint/internal/domain"
)

// ProgressFunc is invoked once per file during a directory run, after the
// file's result is complete.
type ProgressFunc func(domain.ValidationResult)

// ValidateService drives schema validation over files and directories.
// The compiled schema is loaded once and reused read-only across calls.
type ValidateService struct {
	engine domain.SchemaEngine
	parser domain.DocumentParser
	finder domain.FileFinder
	config domain.ConfigLoader
}

// NewValidateService creates a ValidateService with all required dependencies.
func NewValidateService(
	engine domain.SchemaEngine,
	parser domain.DocumentParser,
	finder domain.FileFinder,
	config domain.ConfigLoader,
) *ValidateService {
	return &ValidateService{engine: engine, parser: parser, finder: finder, config: config}
}

// LoadSchema compiles the schema at path. A failure here is non-recoverable
// for the run and is marked with domain.ErrSchemaLoad.
func (s *ValidateService) LoadSchema(path string) (domain.CompiledSchema, error) {
	schema, err := s.engine.Load(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSchemaLoad, err)
	}
	return schema, nil
}

// ValidateFile validates a single document and always returns a complete
// result. Failures are recorded on the result, never propagated: one bad
// file must not abort a batch run.
func (s *ValidateService) ValidateFile(schema domain.CompiledSchema, path string) domain.ValidationResult {
	result := domain.ValidationResult{
		File:      path,
		Errors:    []domain.ErrorRecord{},
		Timestamp: time.Now(),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			result.Errors = append(result.Errors, domain.ErrorRecord{
				Type:    domain.ErrorTypeFileNotFound,
				Message: fmt.Sprintf("File not found: %s", path),
			})
		} else {
			result.Errors = append(result.Errors, domain.ErrorRecord{
				Type:    domain.ErrorTypeUnexpected,
				Message: err.Error(),
			})
		}
		return result
	}

	if me := s.parser.CheckWellFormed(bytes.NewReader(data)); me != nil {
		result.Errors = append(result.Errors, domain.ErrorRecord{
			Type:    domain.ErrorTypeXMLSyntax,
			Message: me.Message,
			Line:    me.Line,
		})
		return result
	}
	result.WellFormed = true

	diags, err := schema.Check(bytes.NewReader(data))
	if err != nil {
		result.Errors = append(result.Errors, domain.ErrorRecord{
			Type:    domain.ErrorTypeUnexpected,
			Message: err.Error(),
		})
		return result
	}

	if len(diags) == 0 {
		result.Valid = true
		return result
	}

	for _, d := range diags {
		result.Errors = append(result.Errors, domain.ErrorRecord{
			Type:    domain.ErrorTypeSchema,
			Message: d.Message,
			Line:    d.Line,
			Column:  d.Column,
			Domain:  d.Domain,
			Level:   d.Level,
		})
	}
	return result
}

// ValidateDirectory validates every candidate document under dir, in
// enumeration order. Extensions and excluded directory names come from the
// project config. progress may be nil.
func (s *ValidateService) ValidateDirectory(
	schema domain.CompiledSchema,
	dir string,
	recursive bool,
	progress ProgressFunc,
) ([]domain.ValidationResult, error) {
	cfg, err := s.config.Load(dir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	files, err := s.finder.FindDocuments(dir, recursive, cfg.Extensions, cfg.ExcludeDirs)
	if err != nil {
		return nil, err
	}

	results := make([]domain.ValidationResult, 0, len(files))
	for _, file := range files {
		result := s.ValidateFile(schema, file)
		if progress != nil {
			progress(result)
		}
		results = append(results, result)
	}
	return results, nil
}
