package domain

import "errors"

// ErrSchemaLoad marks a schema parse/compile failure. A broken schema
// invalidates every subsequent check, so callers terminate the whole run
// instead of attempting a partial one.
var ErrSchemaLoad = errors.New("schema load failed")

// ErrDocumentsInvalid marks a run in which at least one document was
// invalid or not well-formed. Used to drive the process exit status.
var ErrDocumentsInvalid = errors.New("validation failed")
