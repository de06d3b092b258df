package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tonal/internal/colour"
)

// newAuditCmd builds the audit command.
func newAuditCmd() *cobra.Command {
	var minContrast float64

	cmd := &cobra.Command{
		Use:   "audit <hex>",
		Short: "Audit a generated palette for contrast issues",
		Long: `Generate a palette from a dominant colour and audit every plausible
(background, text) pairing against a minimum WCAG contrast ratio.

Exits non-zero when any pairing falls short, so the command can gate CI
checks on theme changes.

Examples:
  tonal audit "#3b82f6"
  tonal audit --min-contrast 7 "#cccccc"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAudit(cmd, args[0], minContrast)
		},
	}

	cmd.Flags().Float64Var(&minContrast, "min-contrast", 4.5, "minimum WCAG contrast ratio")
	return cmd
}

// runAudit executes the audit command.
func runAudit(cmd *cobra.Command, hex string, minContrast float64) error {
	logger := newLogger(cmd)

	extractor, err := colour.New(colour.WithMinContrast(minContrast))
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	palette, ok := extractor.FromDominant(hex)
	if !ok {
		return fmt.Errorf("invalid colour %q (expected 6-digit hex)", hex)
	}

	issues := colour.AuditPalette(palette, extractor.Config())
	if len(issues) == 0 {
		logger.Info("no contrast issues found", "dominant", palette.Dominant.Hex(), "min_contrast", minContrast)
		return nil
	}

	table := NewTable("BACKGROUND", "TEXT", "CONTRAST", "REQUIRED")
	for _, issue := range issues {
		table.AddRow(
			issue.Background.Hex(),
			issue.Text.Hex(),
			fmt.Sprintf("%.2f", issue.Contrast),
			fmt.Sprintf("%.1f", issue.Required),
		)
	}
	cmd.Print(table.Render())

	return fmt.Errorf("%d contrast issue(s) below %.1f:1", len(issues), minContrast)
}
