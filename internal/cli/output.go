package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/tonal/internal/colour"
)

// paletteJSON is the serialised palette shape for --format json.
type paletteJSON struct {
	Dominant      string             `json:"dominant"`
	Accents       []string           `json:"accents"`
	Standard      string             `json:"standard"`
	Foreground    foregroundJSON     `json:"foreground"`
	Harmony       harmonyJSON        `json:"harmony"`
	IsLight       bool               `json:"is_light"`
	IsDark        bool               `json:"is_dark"`
	IsExtreme     bool               `json:"is_extreme"`
	ContrastWhite float64            `json:"contrast_white"`
	ContrastBlack float64            `json:"contrast_black"`
	Diagnostics   *colour.Diagnostics `json:"diagnostics,omitempty"`
}

type foregroundJSON struct {
	Primary           string  `json:"primary"`
	Alternate         string  `json:"alternate"`
	PrimaryContrast   float64 `json:"primary_contrast"`
	AlternateContrast float64 `json:"alternate_contrast"`
	NeedsShadow       bool    `json:"needs_shadow"`
	Shadow            string  `json:"shadow"`
}

type harmonyJSON struct {
	Complementary      string    `json:"complementary"`
	Analogous          [2]string `json:"analogous"`
	SplitComplementary [2]string `json:"split_complementary"`
	Triadic            [2]string `json:"triadic"`
}

// toJSON converts a palette (plus optional diagnostics) to the output
// shape.
func toJSON(p *colour.Palette, diag *colour.Diagnostics) paletteJSON {
	return paletteJSON{
		Dominant: p.Dominant.Hex(),
		Accents: []string{
			p.Accents[0].Hex(), p.Accents[1].Hex(),
			p.Accents[2].Hex(), p.Accents[3].Hex(),
		},
		Standard: p.Standard.Hex(),
		Foreground: foregroundJSON{
			Primary:           p.Foreground.Primary.Hex(),
			Alternate:         p.Foreground.Alternate.Hex(),
			PrimaryContrast:   p.Foreground.PrimaryContrast,
			AlternateContrast: p.Foreground.AlternateContrast,
			NeedsShadow:       p.Foreground.NeedsShadow,
			Shadow:            p.Foreground.Shadow.String(),
		},
		Harmony: harmonyJSON{
			Complementary: p.Harmony.Complementary.Hex(),
			Analogous: [2]string{
				p.Harmony.Analogous[0].Hex(), p.Harmony.Analogous[1].Hex(),
			},
			SplitComplementary: [2]string{
				p.Harmony.SplitComplementary[0].Hex(), p.Harmony.SplitComplementary[1].Hex(),
			},
			Triadic: [2]string{
				p.Harmony.Triadic[0].Hex(), p.Harmony.Triadic[1].Hex(),
			},
		},
		IsLight:       p.IsLight,
		IsDark:        p.IsDark,
		IsExtreme:     p.IsExtreme,
		ContrastWhite: p.ContrastWhite,
		ContrastBlack: p.ContrastBlack,
		Diagnostics:   diag,
	}
}

// paletteEntries returns the palette as ordered (label, colour) pairs for
// text and hex rendering.
func paletteEntries(p *colour.Palette) []struct {
	Label  string
	Colour colour.RGB
} {
	return []struct {
		Label  string
		Colour colour.RGB
	}{
		{"dominant", p.Dominant},
		{"accent-1 (l+0.2)", p.Accents[0]},
		{"accent-2 (l-0.2)", p.Accents[1]},
		{"accent-3 (l+0.4)", p.Accents[2]},
		{"accent-4 (l-0.4)", p.Accents[3]},
		{"standard", p.Standard},
		{"foreground", p.Foreground.Primary},
		{"foreground-alt", p.Foreground.Alternate},
		{"complementary", p.Harmony.Complementary},
		{"analogous-1", p.Harmony.Analogous[0]},
		{"analogous-2", p.Harmony.Analogous[1]},
		{"split-comp-1", p.Harmony.SplitComplementary[0]},
		{"split-comp-2", p.Harmony.SplitComplementary[1]},
		{"triadic-1", p.Harmony.Triadic[0]},
		{"triadic-2", p.Harmony.Triadic[1]},
	}
}

// renderPalette formats the palette for one of the supported formats.
func renderPalette(p *colour.Palette, diag *colour.Diagnostics, format string, preview bool) (string, error) {
	switch format {
	case "json":
		data, err := json.MarshalIndent(toJSON(p, diag), "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal palette: %w", err)
		}
		return string(data) + "\n", nil

	case "hex":
		var sb strings.Builder
		for _, entry := range paletteEntries(p) {
			sb.WriteString(entry.Colour.Hex())
			sb.WriteString("\n")
		}
		return sb.String(), nil

	case "text":
		var sb strings.Builder
		for _, entry := range paletteEntries(p) {
			if preview {
				sb.WriteString(colour.SwatchLabelled(entry.Colour, entry.Label))
			} else {
				sb.WriteString(fmt.Sprintf("%-22s %s", entry.Label, entry.Colour.Hex()))
			}
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("\nlight=%t dark=%t extreme=%t contrast(white)=%.2f contrast(black)=%.2f\n",
			p.IsLight, p.IsDark, p.IsExtreme, p.ContrastWhite, p.ContrastBlack))
		return sb.String(), nil

	default:
		return "", fmt.Errorf("unknown format %q (valid: text, hex, json)", format)
	}
}

// writePalette renders the palette and writes it to stdout or the --output
// file. Previews are suppressed when stdout is not a terminal.
func writePalette(cmd *cobra.Command, p *colour.Palette, diag *colour.Diagnostics, flags *extractFlags) error {
	preview := flags.preview && flags.output == "" && term.IsTerminal(int(os.Stdout.Fd()))

	out, err := renderPalette(p, diag, flags.format, preview)
	if err != nil {
		return err
	}

	if flags.output != "" {
		if err := os.WriteFile(flags.output, []byte(out), 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		return nil
	}

	cmd.Print(out)
	return nil
}
