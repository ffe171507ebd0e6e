package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ccdkit/ccdlint/internal/domain"
)

var (
	accent  = lipgloss.Color("#D97706") // amber
	dim     = lipgloss.Color("#6B7280") // muted gray
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
)

var (
	passStyle   = lipgloss.NewStyle().Foreground(success)
	failStyle   = lipgloss.NewStyle().Foreground(danger)
	badStyle    = lipgloss.NewStyle().Foreground(danger).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(dim)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 2)
)

// RenderProgress renders the per-file progress line printed while a
// directory run is in flight.
func RenderProgress(result domain.ValidationResult) string {
	name := filepath.Base(result.File)
	switch {
	case result.Valid:
		return fmt.Sprintf("Validating: %s... %s\n", name, passStyle.Render("✓ VALID"))
	case result.WellFormed:
		return fmt.Sprintf("Validating: %s... %s\n", name,
			failStyle.Render(fmt.Sprintf("✗ INVALID (%d errors)", len(result.Errors))))
	default:
		return fmt.Sprintf("Validating: %s... %s\n", name, badStyle.Render("✗ NOT WELL-FORMED"))
	}
}

// RenderSummary renders the console summary box shown after a run.
func RenderSummary(rep domain.Report) string {
	var b strings.Builder

	title := headerStyle.Render("ccdlint")
	counts := fmt.Sprintf("%s  %s  %s",
		dimStyle.Render(fmt.Sprintf("total %d", rep.Summary.Total)),
		passStyle.Render(fmt.Sprintf("valid %d", rep.Summary.Valid)),
		failStyle.Render(fmt.Sprintf("invalid %d", rep.Summary.Invalid)),
	)

	b.WriteString(boxStyle.Render(title + "  " + counts))
	b.WriteString("\n")
	return b.String()
}
