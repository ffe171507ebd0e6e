package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	configAdapter "github.com/ccdkit/ccdlint/internal/adapters/outbound/config"
	"github.com/ccdkit/ccdlint/internal/adapters/outbound/engine"
	"github.com/ccdkit/ccdlint/internal/adapters/outbound/gitinfo"
	"github.com/ccdkit/ccdlint/internal/adapters/outbound/report"
	"github.com/ccdkit/ccdlint/internal/adapters/outbound/scanner"
	"github.com/ccdkit/ccdlint/internal/adapters/outbound/tui"
	"github.com/ccdkit/ccdlint/internal/application"
	"github.com/ccdkit/ccdlint/internal/domain"
)

func newValidateCmd() *cobra.Command {
	var (
		xsdPath    string
		filePath   string
		dirPath    string
		recursive  bool
		format     string
		outputPath string
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate documents and produce a report",
		Long:  "Validate a single file or every document in a directory against the given XSD schema, then render a text, JSON, or HTML report.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Usage errors are checked before any schema work.
			if filePath == "" && dirPath == "" {
				return fmt.Errorf("either --file or --dir must be specified")
			}
			if !domain.IsValidFormat(format) {
				return fmt.Errorf("unknown format %q (valid: text, json, html)", format)
			}

			out := cmd.OutOrStdout()
			cfgLoader := configAdapter.New()
			svc := application.NewValidateService(
				engine.New(),
				engine.NewMarkupParser(),
				scanner.New(),
				cfgLoader,
			)

			schema, err := svc.LoadSchema(xsdPath)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "✗ Error loading schema: %v\n", err)
				return err
			}
			fmt.Fprintf(out, "✓ Schema loaded successfully from: %s\n", xsdPath)

			// The config's default format applies only when --format is
			// left at its default.
			target := dirPath
			if filePath != "" {
				target = filepath.Dir(filePath)
			}
			if !cmd.Flags().Changed("format") {
				if cfg, err := cfgLoader.Load(target); err == nil && cfg.DefaultFormat != "" {
					format = cfg.DefaultFormat
				}
			}

			var results []domain.ValidationResult
			if filePath != "" {
				results = []domain.ValidationResult{svc.ValidateFile(schema, filePath)}
			} else {
				results, err = svc.ValidateDirectory(schema, dirPath, recursive,
					func(result domain.ValidationResult) {
						fmt.Fprint(out, tui.RenderProgress(result))
					})
				if err != nil {
					return fmt.Errorf("validating directory: %w", err)
				}
				if len(results) == 0 {
					fmt.Fprintf(out, "No XML files found in %s\n", dirPath)
				}
			}

			// Best-effort: stamp the commit hash when the target is in a repo.
			var commitHash string
			if hash, err := gitinfo.New().CommitHash(target); err == nil {
				commitHash = hash
			}

			rep := domain.NewReport(results, xsdPath, commitHash)
			blob, err := report.Render(rep, format)
			if err != nil {
				return err
			}

			if outputPath != "" {
				if err := os.WriteFile(outputPath, []byte(blob), 0o644); err != nil {
					return fmt.Errorf("writing report: %w", err)
				}
				fmt.Fprintf(out, "\nReport saved to: %s\n", outputPath)
				fmt.Fprint(out, tui.RenderSummary(rep))
			} else {
				fmt.Fprintln(out, blob)
			}

			if rep.Summary.Invalid > 0 {
				return fmt.Errorf("%w: %d of %d file(s) invalid",
					domain.ErrDocumentsInvalid, rep.Summary.Invalid, rep.Summary.Total)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&xsdPath, "xsd", "", "Path to the main XSD schema file (required)")
	cmd.Flags().StringVar(&filePath, "file", "", "Path to a single document to validate (wins over --dir)")
	cmd.Flags().StringVar(&dirPath, "dir", "", "Path to a directory of documents to validate")
	cmd.Flags().BoolVar(&recursive, "recursive", false, "Search subdirectories recursively (with --dir)")
	cmd.Flags().StringVar(&format, "format", "text", "Report format: text, json, or html")
	cmd.Flags().StringVar(&outputPath, "output", "", "Output file path (default: print to console)")
	_ = cmd.MarkFlagRequired("xsd")

	return cmd
}
