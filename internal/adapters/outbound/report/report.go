// Package report renders a validation run into one of three textual
// representations. Rendering is pure: the caller decides whether the blob
// goes to a file or to the console.
package report

import (
	"fmt"

	"github.com/ccdkit/ccdlint/internal/domain"
)

// Render transforms a report into the requested format. An empty format
// selects text.
func Render(rep domain.Report, format string) (string, error) {
	switch format {
	case "json":
		return renderJSON(rep)
	case "html":
		return renderHTML(rep), nil
	case "text", "":
		return renderText(rep), nil
	default:
		return "", fmt.Errorf("unknown report format %q", format)
	}
}
