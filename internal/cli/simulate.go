package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/tonal/internal/colour"
)

// newSimulateCmd builds the simulate command.
func newSimulateCmd() *cobra.Command {
	var simType string
	var preview bool

	cmd := &cobra.Command{
		Use:   "simulate <hex>",
		Short: "Simulate how a palette appears under colour blindness",
		Long: `Generate a palette from a dominant colour and show each entry as it would
appear to a dichromat viewer.

Supported models: protanopia, deuteranopia, tritanopia.

Examples:
  tonal simulate --type protanopia "#3b82f6"
  tonal simulate --type tritanopia --preview "#1a7f5c"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulate(cmd, args[0], colour.SimulationType(simType), preview)
		},
	}

	cmd.Flags().StringVar(&simType, "type", string(colour.Protanopia),
		"dichromacy model (protanopia, deuteranopia, tritanopia)")
	cmd.Flags().BoolVar(&preview, "preview", false, "show colour previews in terminal")
	return cmd
}

// runSimulate executes the simulate command.
func runSimulate(cmd *cobra.Command, hex string, simType colour.SimulationType, preview bool) error {
	known := false
	for _, t := range colour.SimulationTypes() {
		if t == simType {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("unknown simulation type %q (valid: %v)", simType, colour.SimulationTypes())
	}

	extractor, err := colour.New()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	palette, ok := extractor.FromDominant(hex)
	if !ok {
		return fmt.Errorf("invalid colour %q (expected 6-digit hex)", hex)
	}

	showSwatches := preview && term.IsTerminal(int(os.Stdout.Fd()))

	table := NewTable("ROLE", "ORIGINAL", "SIMULATED")
	for _, entry := range paletteEntries(palette) {
		simulated := colour.Simulate(entry.Colour, simType)
		original := entry.Colour.Hex()
		result := simulated.Hex()
		if showSwatches {
			original = colour.Swatch(entry.Colour, 4) + " " + original
			result = colour.Swatch(simulated, 4) + " " + result
		}
		table.AddRow(entry.Label, original, result)
	}
	cmd.Print(table.Render())
	return nil
}
