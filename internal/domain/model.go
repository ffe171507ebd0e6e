package domain

import (
	"fmt"
	"time"
)

// ErrorType classifies a validation problem. The set is closed: every
// failure a document can produce maps onto exactly one of these kinds.
type ErrorType string

const (
	ErrorTypeXMLSyntax    ErrorType = "XML_SYNTAX_ERROR"
	ErrorTypeSchema       ErrorType = "SCHEMA_VALIDATION_ERROR"
	ErrorTypeFileNotFound ErrorType = "FILE_NOT_FOUND"
	ErrorTypeUnexpected   ErrorType = "UNEXPECTED_ERROR"
)

// ErrorRecord describes one problem found in a document. Line, Column,
// Domain and Level are present only when the producing error carried them.
type ErrorRecord struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Line    int       `json:"line,omitempty"`
	Column  int       `json:"column,omitempty"`
	Domain  string    `json:"domain,omitempty"`
	Level   string    `json:"level,omitempty"`
}

// ValidationResult is the outcome of validating a single document.
// It is fully populated before it is returned and never mutated after.
type ValidationResult struct {
	File       string        `json:"file"`
	WellFormed bool          `json:"well_formed"`
	Valid      bool          `json:"valid"`
	Errors     []ErrorRecord `json:"errors"`
	Timestamp  time.Time     `json:"timestamp"`
}

// Status returns the one-line status used in progress output and reports.
func (r ValidationResult) Status() string {
	switch {
	case r.Valid:
		return "VALID"
	case r.WellFormed:
		return fmt.Sprintf("INVALID (%d errors)", len(r.Errors))
	default:
		return "NOT WELL-FORMED"
	}
}

// ReportSummary holds the aggregate counts for one report run.
type ReportSummary struct {
	Total   int `json:"total"`
	Valid   int `json:"valid"`
	Invalid int `json:"invalid"`
}

// Report is the renderable unit: every result of one run plus metadata.
type Report struct {
	Generated time.Time          `json:"generated"`
	Schema    string             `json:"schema,omitempty"`
	Commit    string             `json:"commit,omitempty"`
	Summary   ReportSummary      `json:"summary"`
	Results   []ValidationResult `json:"results"`
}

// NewReport builds a Report from a result sequence, computing the summary.
// Total always equals Valid + Invalid.
func NewReport(results []ValidationResult, schemaPath, commit string) Report {
	valid := 0
	for _, r := range results {
		if r.Valid {
			valid++
		}
	}
	return Report{
		Generated: time.Now(),
		Schema:    schemaPath,
		Commit:    commit,
		Summary: ReportSummary{
			Total:   len(results),
			Valid:   valid,
			Invalid: len(results) - valid,
		},
		Results: results,
	}
}
