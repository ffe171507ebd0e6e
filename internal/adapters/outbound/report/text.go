package report

import (
	"fmt"
	"strings"

	"github.com/ccdkit/ccdlint/internal/domain"
)

const rule = "================================================================================"

func renderText(rep domain.Report) string {
	var lines []string
	lines = append(lines, rule)
	lines = append(lines, "CCD VALIDATION REPORT")
	lines = append(lines, rule)
	lines = append(lines, fmt.Sprintf("Generated: %s", rep.Generated.Format("2006-01-02 15:04:05")))
	if rep.Schema != "" {
		lines = append(lines, fmt.Sprintf("Schema: %s", rep.Schema))
	}
	if rep.Commit != "" {
		lines = append(lines, fmt.Sprintf("Commit: %s", rep.Commit))
	}
	lines = append(lines, fmt.Sprintf("Total files validated: %d", rep.Summary.Total))
	lines = append(lines, fmt.Sprintf("Valid: %d", rep.Summary.Valid))
	lines = append(lines, fmt.Sprintf("Invalid: %d", rep.Summary.Invalid))
	lines = append(lines, rule)
	lines = append(lines, "")

	for _, result := range rep.Results {
		lines = append(lines, fmt.Sprintf("\nFile: %s", result.File))
		lines = append(lines, strings.Repeat("-", 80))

		if result.Valid {
			lines = append(lines, "Status: ✓ VALID")
			continue
		}

		lines = append(lines, fmt.Sprintf("Status: ✗ INVALID (%d errors)", len(result.Errors)))
		lines = append(lines, "\nErrors:")
		for i, err := range result.Errors {
			lines = append(lines, fmt.Sprintf("\n  Error #%d:", i+1))
			lines = append(lines, fmt.Sprintf("    Type: %s", err.Type))
			lines = append(lines, fmt.Sprintf("    Message: %s", err.Message))
			if err.Line > 0 {
				lines = append(lines, fmt.Sprintf("    Line: %d", err.Line))
			}
			if err.Column > 0 {
				lines = append(lines, fmt.Sprintf("    Column: %d", err.Column))
			}
		}
	}

	return strings.Join(lines, "\n")
}
