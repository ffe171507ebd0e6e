package report

import (
	"encoding/json"
	"fmt"

	"github.com/ccdkit/ccdlint/internal/domain"
)

// renderJSON is a lossless structured encoding of the report: decoding it
// reproduces the summary counts and the full result sequence.
func renderJSON(rep domain.Report) (string, error) {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding report: %w", err)
	}
	return string(data), nil
}
