package engine

import (
	"fmt"
	"io"

	"github.com/jacoelho/xsd"
	xsderrors "github.com/jacoelho/xsd/errors"

	"github.com/ccdkit/ccdlint/internal/domain"
)

// XSDEngine implements domain.SchemaEngine using the jacoelho/xsd engine.
type XSDEngine struct{}

func New() *XSDEngine {
	return &XSDEngine{}
}

// Load parses and compiles the schema at path. Compilation failures are
// returned as-is; the caller decides that they are fatal.
func (e *XSDEngine) Load(path string) (domain.CompiledSchema, error) {
	schema, err := xsd.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("compiling schema %s: %w", path, err)
	}
	return &compiledSchema{schema: schema}, nil
}

// compiledSchema wraps a compiled *xsd.Schema. The underlying schema is
// read-only after compilation and safe to reuse across documents.
type compiledSchema struct {
	schema *xsd.Schema
}

// Check validates one document and drains the engine's error log into
// diagnostics, preserving its order. Engine failures that are not
// validation findings are returned as the error.
func (c *compiledSchema) Check(r io.Reader) ([]domain.Diagnostic, error) {
	err := c.schema.Validate(r)
	if err == nil {
		return nil, nil
	}

	violations, ok := xsderrors.AsValidations(err)
	if !ok {
		return nil, err
	}

	diags := make([]domain.Diagnostic, 0, len(violations))
	for _, v := range violations {
		msg := v.Message
		if v.Path != "" {
			msg = fmt.Sprintf("%s at %s", v.Message, v.Path)
		}
		diags = append(diags, domain.Diagnostic{
			Message: msg,
			Line:    v.Line,
			Column:  v.Column,
			Domain:  v.Code,
			Level:   "ERROR",
		})
	}
	return diags, nil
}
