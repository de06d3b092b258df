package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tonal/internal/colour"
)

// newPaletteCmd builds the palette command, which skips image extraction
// and generates a palette straight from an explicit dominant colour.
func newPaletteCmd() *cobra.Command {
	flags := &extractFlags{}

	cmd := &cobra.Command{
		Use:   "palette <hex>",
		Short: "Generate a palette from a dominant colour",
		Long: `Generate a full palette (accents, harmonies, foreground choices) from an
explicit dominant colour, bypassing image sampling and scoring.

Examples:
  tonal palette "#3b82f6"
  tonal palette --preview --format text 1a7f5c
  tonal palette --format json "#e64520"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPalette(cmd, args[0], flags)
		},
	}

	flags.register(cmd.Flags())
	return cmd
}

// runPalette executes the palette command.
func runPalette(cmd *cobra.Command, hex string, flags *extractFlags) error {
	opts, err := flags.options()
	if err != nil {
		return err
	}

	extractor, err := colour.New(opts...)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	palette, ok := extractor.FromDominant(hex)
	if !ok {
		return fmt.Errorf("invalid colour %q (expected 6-digit hex)", hex)
	}

	return writePalette(cmd, palette, nil, flags)
}
