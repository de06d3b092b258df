// Package cli provides the command-line interface for Tonal.
package cli

import (
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/tonal/internal/version"
)

// NewRootCmd builds the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tonal",
		Short: "A dominant-colour and colour-theory palette engine",
		Long: `Tonal extracts a representative colour from an image and derives a full,
perceptually informed palette from it: accents, harmonies, contrast-safe
text colours and accessibility diagnostics.

The engine scores candidate colours against twelve reference hues for
proximity, psychology (optionally reweighted by a semantic context) and
frequency, then expands the winner via colour theory.`,
		Version:      version.Short(),
		SilenceUsage: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress non-error output")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newExtractCmd())
	rootCmd.AddCommand(newPaletteCmd())
	rootCmd.AddCommand(newAuditCmd())
	rootCmd.AddCommand(newSimulateCmd())

	return rootCmd
}

// Execute runs the root command. Called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger builds the CLI logger from the persistent verbosity flags. The
// colour engine itself never logs; all diagnostics it returns are surfaced
// here.
func newLogger(cmd *cobra.Command) hclog.Logger {
	level := hclog.Info
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = hclog.Debug
	}
	if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
		level = hclog.Error
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "tonal",
		Level:  level,
		Output: os.Stderr,
	})
}

// newVersionCmd builds the version command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Println(version.String())
		},
	}
}
