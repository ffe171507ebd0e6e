package report

import (
	"fmt"
	"html"
	"path/filepath"
	"strings"

	"github.com/ccdkit/ccdlint/internal/domain"
)

const htmlHead = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>CCD Validation Report</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 20px; }
        .summary { background: #f0f0f0; padding: 15px; margin-bottom: 20px; }
        .file { border: 1px solid #ddd; margin: 10px 0; padding: 10px; }
        .valid { border-left: 5px solid #4CAF50; }
        .invalid { border-left: 5px solid #f44336; }
        .error { background: #ffebee; padding: 10px; margin: 5px 0; }
        .error-type { font-weight: bold; color: #c62828; }
        h1, h2 { color: #333; }
    </style>
</head>
<body>
    <h1>CCD Validation Report</h1>
`

// renderHTML produces a styled document with one block per file. All
// values inserted into markup are escaped; clinical narrative text in
// messages must not be able to break the report.
func renderHTML(rep domain.Report) string {
	var b strings.Builder
	b.WriteString(htmlHead)

	b.WriteString("    <div class=\"summary\">\n")
	fmt.Fprintf(&b, "        <p><strong>Generated:</strong> %s</p>\n",
		rep.Generated.Format("2006-01-02 15:04:05"))
	if rep.Schema != "" {
		fmt.Fprintf(&b, "        <p><strong>Schema:</strong> %s</p>\n", html.EscapeString(rep.Schema))
	}
	if rep.Commit != "" {
		fmt.Fprintf(&b, "        <p><strong>Commit:</strong> %s</p>\n", html.EscapeString(rep.Commit))
	}
	fmt.Fprintf(&b, "        <p><strong>Total Files:</strong> %d</p>\n", rep.Summary.Total)
	fmt.Fprintf(&b, "        <p><strong>Valid:</strong> <span style=\"color: green;\">%d</span></p>\n", rep.Summary.Valid)
	fmt.Fprintf(&b, "        <p><strong>Invalid:</strong> <span style=\"color: red;\">%d</span></p>\n", rep.Summary.Invalid)
	b.WriteString("    </div>\n")

	for _, result := range rep.Results {
		writeResultBlock(&b, result)
	}

	b.WriteString("</body>\n</html>")
	return b.String()
}

func writeResultBlock(b *strings.Builder, result domain.ValidationResult) {
	statusClass := "invalid"
	statusIcon := "&#x2717;"
	if result.Valid {
		statusClass = "valid"
		statusIcon = "&#x2713;"
	}

	fmt.Fprintf(b, "    <div class=\"file %s\">\n", statusClass)
	fmt.Fprintf(b, "        <h2>%s</h2>\n", html.EscapeString(filepath.Base(result.File)))
	fmt.Fprintf(b, "        <p><strong>Status:</strong> %s %s</p>\n", statusIcon, result.Status())
	fmt.Fprintf(b, "        <p><strong>Path:</strong> %s</p>\n", html.EscapeString(result.File))

	if len(result.Errors) > 0 {
		b.WriteString("        <h3>Errors:</h3>\n")
		for i, err := range result.Errors {
			fmt.Fprintf(b, "        <div class=\"error\">\n")
			fmt.Fprintf(b, "            <p><span class=\"error-type\">Error #%d: %s</span>%s</p>\n",
				i+1, err.Type, location(err))
			fmt.Fprintf(b, "            <p>%s</p>\n", html.EscapeString(err.Message))
			fmt.Fprintf(b, "        </div>\n")
		}
	}

	b.WriteString("    </div>\n")
}

// location formats an optional "(Line L, Column C)" suffix. The column is
// only shown when a line is present.
func location(err domain.ErrorRecord) string {
	if err.Line <= 0 {
		return ""
	}
	if err.Column > 0 {
		return fmt.Sprintf(" (Line %d, Column %d)", err.Line, err.Column)
	}
	return fmt.Sprintf(" (Line %d)", err.Line)
}
