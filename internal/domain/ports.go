package domain

import "io"

// SchemaEngine compiles a schema definition into a reusable validator.
type SchemaEngine interface {
	Load(path string) (CompiledSchema, error)
}

// CompiledSchema checks instance documents against a compiled schema.
// Implementations must be safe for repeated reuse across documents.
// A nil diagnostic slice with a nil error means the document conforms.
type CompiledSchema interface {
	Check(r io.Reader) ([]Diagnostic, error)
}

// Diagnostic is one entry of the schema engine's error log, captured at
// the boundary before conversion into an ErrorRecord.
type Diagnostic struct {
	Message string
	Line    int
	Column  int
	Domain  string
	Level   string
}

// MarkupError reports a well-formedness failure. Line is 0 when the
// parser did not attach a position.
type MarkupError struct {
	Message string
	Line    int
}

func (e *MarkupError) Error() string { return e.Message }

// DocumentParser checks raw markup for syntactic validity, independent
// of any schema. A nil return means the document is well-formed.
type DocumentParser interface {
	CheckWellFormed(r io.Reader) *MarkupError
}

// FileFinder enumerates candidate document files under a directory.
type FileFinder interface {
	FindDocuments(dir string, recursive bool, extensions, excludeDirs []string) ([]string, error)
}

// ConfigLoader reads project-level configuration for a target path.
type ConfigLoader interface {
	Load(path string) (ProjectConfig, error)
}

// RepoInspector resolves source-control metadata for report stamping.
type RepoInspector interface {
	CommitHash(path string) (string, error)
}
