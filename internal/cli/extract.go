package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/tonal/internal/colour"
	"github.com/jmylchreest/tonal/internal/image"
)

// extractFlags holds the flag values shared by extract and palette.
type extractFlags struct {
	format       string
	output       string
	preview      bool
	context      string
	samples      int
	minScore     float64
	minFrequency float64
	fallback     string
	hueMode      string
	excludeHues  string
	includeHues  string
	weights      []float64
}

// registerExtractFlags wires the shared extraction flags onto a flag set.
func (f *extractFlags) register(flags *pflag.FlagSet) {
	flags.StringVarP(&f.format, "format", "f", "text", "output format (text, hex, json)")
	flags.StringVarP(&f.output, "output", "o", "", "output file (default: stdout)")
	flags.BoolVar(&f.preview, "preview", false, "show colour previews in terminal")
	flags.StringVar(&f.context, "context", "", "psychology context (technology, nature, energy, luxury, calm, passion)")
	flags.IntVar(&f.samples, "samples", image.DefaultMaxSamples, "maximum pixels to sample from the image")
	flags.Float64Var(&f.minScore, "min-score", 0, "minimum total score for outright selection")
	flags.Float64Var(&f.minFrequency, "min-frequency", 0.01, "relative-frequency floor for candidate colours")
	flags.StringVar(&f.fallback, "fallback", "", "fallback colour (hex) when no candidates survive filtering")
	flags.StringVar(&f.hueMode, "hue-mode", "exclude", "hue filter mode (exclude, include, both)")
	flags.StringVar(&f.excludeHues, "exclude-hues", "", "excluded hue ranges in degrees, e.g. \"15-40,200-260\"")
	flags.StringVar(&f.includeHues, "include-hues", "", "included hue ranges in degrees, e.g. \"90-150\"")
	flags.Float64SliceVar(&f.weights, "weights", nil, "proximity,psychology,frequency scoring weights")
}

// options converts the parsed flags into engine configuration options.
func (f *extractFlags) options() ([]colour.Option, error) {
	var opts []colour.Option

	if f.context != "" {
		opts = append(opts, colour.WithContext(colour.Context(f.context)))
	}
	if f.minScore != 0 {
		opts = append(opts, colour.WithMinScore(f.minScore))
	}
	opts = append(opts, colour.WithMinFrequency(f.minFrequency))

	if f.fallback != "" {
		rgb, ok := colour.ParseHex(f.fallback)
		if !ok {
			return nil, fmt.Errorf("invalid fallback colour %q (expected 6-digit hex)", f.fallback)
		}
		opts = append(opts, colour.WithFallback(rgb))
	}

	if len(f.weights) > 0 {
		if len(f.weights) != 3 {
			return nil, fmt.Errorf("expected 3 weights (proximity,psychology,frequency), got %d", len(f.weights))
		}
		opts = append(opts, colour.WithWeights(f.weights[0], f.weights[1], f.weights[2]))
	}

	mode, err := parseHueMode(f.hueMode)
	if err != nil {
		return nil, err
	}
	exclude, err := parseHueRanges(f.excludeHues)
	if err != nil {
		return nil, fmt.Errorf("invalid --exclude-hues: %w", err)
	}
	include, err := parseHueRanges(f.includeHues)
	if err != nil {
		return nil, fmt.Errorf("invalid --include-hues: %w", err)
	}
	if mode != colour.HueFilterExclude || exclude != nil || include != nil {
		opts = append(opts, colour.WithHueFilter(mode, exclude, include))
	}

	return opts, nil
}

// parseHueMode maps a flag value to a HueFilterMode.
func parseHueMode(s string) (colour.HueFilterMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "exclude":
		return colour.HueFilterExclude, nil
	case "include":
		return colour.HueFilterInclude, nil
	case "both":
		return colour.HueFilterBoth, nil
	default:
		return 0, fmt.Errorf("unknown hue mode %q (valid: exclude, include, both)", s)
	}
}

// parseHueRanges parses a comma-separated list of "min-max" degree ranges.
// Ranges that should wrap through 0/360 must be supplied as two entries;
// the engine compares ranges linearly.
func parseHueRanges(s string) ([]colour.HueRange, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	var ranges []colour.HueRange
	for _, part := range strings.Split(s, ",") {
		bounds := strings.SplitN(strings.TrimSpace(part), "-", 2)
		if len(bounds) != 2 {
			return nil, fmt.Errorf("range %q is not in min-max form", part)
		}
		min, err := strconv.ParseFloat(strings.TrimSpace(bounds[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("bad lower bound in %q: %w", part, err)
		}
		max, err := strconv.ParseFloat(strings.TrimSpace(bounds[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("bad upper bound in %q: %w", part, err)
		}
		if min > max {
			return nil, fmt.Errorf("range %q has min > max (wrapping ranges must be split in two)", part)
		}
		ranges = append(ranges, colour.HueRange{Min: min, Max: max})
	}
	return ranges, nil
}

// newExtractCmd builds the extract command.
func newExtractCmd() *cobra.Command {
	flags := &extractFlags{}

	cmd := &cobra.Command{
		Use:   "extract <image>",
		Short: "Extract a palette from an image",
		Long: `Extract a dominant colour from an image and derive a full palette from it.

The image is sampled, filtered (tonal windows, hue policy, neutral and
skin-tone rejection), quantized and scored; the best candidate becomes the
dominant colour, which is expanded into accents, harmonies and foreground
choices.

Supported image formats: JPEG, PNG, GIF, WebP

Examples:
  # Extract a palette with terminal previews
  tonal extract --preview wallpaper.jpg

  # Score against the nature context and emit JSON
  tonal extract --context nature --format json wallpaper.png

  # Ignore autumn hues while scoring
  tonal extract --hue-mode exclude --exclude-hues "15-40" wallpaper.jpg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, args[0], flags)
		},
	}

	flags.register(cmd.Flags())
	return cmd
}

// runExtract executes the extract command.
func runExtract(cmd *cobra.Command, imagePath string, flags *extractFlags) error {
	logger := newLogger(cmd)

	if err := image.ValidatePath(imagePath); err != nil {
		return fmt.Errorf("invalid image path: %w", err)
	}

	opts, err := flags.options()
	if err != nil {
		return err
	}

	extractor, err := colour.New(opts...)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	cfg := extractor.Config()
	if sum := cfg.ProximityWeight + cfg.PsychologyWeight + cfg.FrequencyWeight; sum < 0.999 || sum > 1.001 {
		logger.Warn("scoring weights do not sum to 1.0; totals may leave [0,1]", "sum", sum)
	}

	logger.Debug("loading image", "path", imagePath)
	loader := image.NewFileLoader()
	img, err := loader.Load(imagePath)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}

	pixels := image.SamplePixels(img, flags.samples)
	logger.Debug("sampled pixels", "count", len(pixels))

	palette, diag := extractor.Extract(pixels)

	switch {
	case diag.UsedFallback:
		logger.Warn("no viable candidates survived filtering; using fallback colour",
			"fallback", palette.Dominant.Hex())
	case diag.Promoted:
		logger.Warn("no candidate met the minimum score; promoted the top-ranked candidate",
			"dominant", palette.Dominant.Hex(),
			"score", diag.Ranked[0].Total,
			"min_score", cfg.MinScore)
	default:
		logger.Debug("selected dominant colour",
			"dominant", palette.Dominant.Hex(),
			"candidates", len(diag.Ranked))
	}

	return writePalette(cmd, palette, diag, flags)
}
