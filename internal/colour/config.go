package colour

import "fmt"

// HueFilterMode selects how configured hue ranges are applied to sampled
// pixels.
type HueFilterMode int

const (
	// HueFilterExclude rejects a pixel whose hue falls inside any excluded
	// range. With no ranges configured it rejects nothing.
	HueFilterExclude HueFilterMode = iota
	// HueFilterInclude rejects a pixel unless its hue falls inside at least
	// one included range. With no ranges configured it rejects everything.
	HueFilterInclude
	// HueFilterBoth applies both tests: a pixel must pass exclusion and
	// pass inclusion.
	HueFilterBoth
)

// String returns the string representation of a HueFilterMode.
func (m HueFilterMode) String() string {
	switch m {
	case HueFilterExclude:
		return "exclude"
	case HueFilterInclude:
		return "include"
	case HueFilterBoth:
		return "both"
	default:
		return "unknown"
	}
}

// HueRange is an inclusive hue interval in degrees, compared linearly as
// min <= h <= max. A range that should wrap through 0/360 (e.g. "reds"
// spanning 345-15) must be expressed by the caller as two ranges; the
// comparison deliberately does not wrap.
type HueRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether the hue (degrees) falls inside the range.
func (r HueRange) Contains(hue float64) bool {
	return hue >= r.Min && hue <= r.Max
}

// Config holds every tunable parameter of the extraction pipeline. A Config
// is built once per Extractor and never modified afterwards, so it is safe
// to share across goroutines.
//
// The three scoring weights are expected to sum to 1.0 but this is not
// enforced; callers that violate it get totals outside [0,1]. Likewise an
// empty include list under HueFilterInclude rejects every pixel. Both are
// caller responsibilities.
type Config struct {
	// Scoring weights.
	ProximityWeight  float64
	PsychologyWeight float64
	FrequencyWeight  float64

	// MinScore is the total-score threshold a top-ranked candidate must
	// meet to be selected outright. The default accepts any non-negative
	// score.
	MinScore float64

	// Tonal windows applied per raw pixel, all in [0,1].
	MinLightness  float64
	MaxLightness  float64
	MinSaturation float64
	MaxSaturation float64

	// Hue filtering.
	HueMode     HueFilterMode
	ExcludeHues []HueRange
	IncludeHues []HueRange

	// NeutralThreshold is the maximum per-channel deviation from the pixel
	// mean (0-255 scale) under which a warm-skewed pixel is treated as a
	// grey/brown and rejected.
	NeutralThreshold float64

	// MinFrequency is the relative-frequency floor below which a quantized
	// colour is dropped before scoring.
	MinFrequency float64

	// Fallback is the colour used by the extraction wrapper when the image
	// produces no viable candidates at all.
	Fallback RGB

	// HarmonySaturation is the fixed saturation applied to generated
	// harmony colours, keeping them legible regardless of how muted the
	// source image is.
	HarmonySaturation float64

	// MinContrast is the WCAG ratio below which the accessibility audit
	// reports an issue.
	MinContrast float64

	// Context reweights psychology scoring; ContextNone applies none.
	Context Context
}

// DefaultConfig returns the built-in configuration defaults.
func DefaultConfig() Config {
	return Config{
		ProximityWeight:   0.4,
		PsychologyWeight:  0.3,
		FrequencyWeight:   0.3,
		MinScore:          0.0,
		MinLightness:      0.15,
		MaxLightness:      0.85,
		MinSaturation:     0.2,
		MaxSaturation:     1.0,
		HueMode:           HueFilterExclude,
		ExcludeHues:       nil,
		IncludeHues:       nil,
		NeutralThreshold:  15,
		MinFrequency:      0.01,
		Fallback:          RGB{R: 59, G: 130, B: 246}, // mid blue, safe with white text overlays
		HarmonySaturation: 0.6,
		MinContrast:       4.5,
		Context:           ContextNone,
	}
}

// Option is a caller-supplied configuration override, the second of the
// three configuration layers.
type Option func(*Config)

// WithWeights sets the proximity, psychology and frequency scoring weights.
// They should sum to 1.0; this is documented, not enforced.
func WithWeights(proximity, psychology, frequency float64) Option {
	return func(c *Config) {
		c.ProximityWeight = proximity
		c.PsychologyWeight = psychology
		c.FrequencyWeight = frequency
	}
}

// WithContext sets the active psychology context.
func WithContext(ctx Context) Option {
	return func(c *Config) { c.Context = ctx }
}

// WithMinScore sets the selection threshold for the top-ranked candidate.
func WithMinScore(min float64) Option {
	return func(c *Config) { c.MinScore = min }
}

// WithLightnessRange sets the per-pixel lightness window.
func WithLightnessRange(min, max float64) Option {
	return func(c *Config) {
		c.MinLightness = min
		c.MaxLightness = max
	}
}

// WithSaturationRange sets the per-pixel saturation window.
func WithSaturationRange(min, max float64) Option {
	return func(c *Config) {
		c.MinSaturation = min
		c.MaxSaturation = max
	}
}

// WithHueFilter sets the hue filter mode and its ranges. Exclude ranges are
// used by HueFilterExclude and HueFilterBoth, include ranges by
// HueFilterInclude and HueFilterBoth.
func WithHueFilter(mode HueFilterMode, exclude, include []HueRange) Option {
	return func(c *Config) {
		c.HueMode = mode
		c.ExcludeHues = exclude
		c.IncludeHues = include
	}
}

// WithMinFrequency sets the viability floor for quantized colours.
func WithMinFrequency(min float64) Option {
	return func(c *Config) { c.MinFrequency = min }
}

// WithFallback sets the colour used when no viable candidates exist.
func WithFallback(rgb RGB) Option {
	return func(c *Config) { c.Fallback = rgb }
}

// WithHarmonySaturation sets the fixed saturation for harmony colours.
func WithHarmonySaturation(s float64) Option {
	return func(c *Config) { c.HarmonySaturation = s }
}

// WithMinContrast sets the accessibility audit threshold.
func WithMinContrast(ratio float64) Option {
	return func(c *Config) { c.MinContrast = ratio }
}

// HueList identifies which hue-range list an override edit targets.
type HueList int

const (
	// ExcludeList targets Config.ExcludeHues.
	ExcludeList HueList = iota
	// IncludeList targets Config.IncludeHues.
	IncludeList
)

// HueRangeEdit replaces one bound pair of an existing hue range by index.
// It is the typed replacement for the dotted-path overrides ("exclude.0.min")
// the declarative layer used to accept; indices are validated explicitly
// when the configuration is built.
type HueRangeEdit struct {
	List  HueList
	Index int
	Range HueRange
}

// Overrides is the third, highest-precedence configuration layer: the
// declarative per-instance overrides. Nil pointer fields leave the lower
// layers untouched.
type Overrides struct {
	ProximityWeight   *float64
	PsychologyWeight  *float64
	FrequencyWeight   *float64
	MinScore          *float64
	MinFrequency      *float64
	MinContrast       *float64
	HarmonySaturation *float64
	Fallback          *RGB
	Context           *Context
	HueMode           *HueFilterMode
	HueRangeEdits     []HueRangeEdit
}

// BuildConfig assembles a Config from the three ordered layers: built-in
// defaults, caller options, then declarative overrides. Later layers win.
// The only validation performed is structural (context names and hue-range
// edit indices); semantic consistency such as weights summing to 1.0 is
// left to the caller.
func BuildConfig(opts []Option, ov *Overrides) (Config, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	// Detach the hue-range slices from whatever the options layer passed in
	// so override edits never reach back into caller-owned memory.
	cfg.ExcludeHues = append([]HueRange(nil), cfg.ExcludeHues...)
	cfg.IncludeHues = append([]HueRange(nil), cfg.IncludeHues...)

	if ov != nil {
		if err := applyOverrides(&cfg, ov); err != nil {
			return Config{}, err
		}
	}

	if !IsValidContext(cfg.Context) {
		return Config{}, fmt.Errorf("unknown context %q (valid: %v)", cfg.Context, Contexts())
	}
	return cfg, nil
}

// applyOverrides applies the declarative layer onto cfg.
func applyOverrides(cfg *Config, ov *Overrides) error {
	if ov.ProximityWeight != nil {
		cfg.ProximityWeight = *ov.ProximityWeight
	}
	if ov.PsychologyWeight != nil {
		cfg.PsychologyWeight = *ov.PsychologyWeight
	}
	if ov.FrequencyWeight != nil {
		cfg.FrequencyWeight = *ov.FrequencyWeight
	}
	if ov.MinScore != nil {
		cfg.MinScore = *ov.MinScore
	}
	if ov.MinFrequency != nil {
		cfg.MinFrequency = *ov.MinFrequency
	}
	if ov.MinContrast != nil {
		cfg.MinContrast = *ov.MinContrast
	}
	if ov.HarmonySaturation != nil {
		cfg.HarmonySaturation = *ov.HarmonySaturation
	}
	if ov.Fallback != nil {
		cfg.Fallback = *ov.Fallback
	}
	if ov.Context != nil {
		cfg.Context = *ov.Context
	}
	if ov.HueMode != nil {
		cfg.HueMode = *ov.HueMode
	}

	for _, edit := range ov.HueRangeEdits {
		switch edit.List {
		case ExcludeList:
			if edit.Index < 0 || edit.Index >= len(cfg.ExcludeHues) {
				return fmt.Errorf("exclude hue range index %d out of bounds (have %d ranges)",
					edit.Index, len(cfg.ExcludeHues))
			}
			cfg.ExcludeHues[edit.Index] = edit.Range
		case IncludeList:
			if edit.Index < 0 || edit.Index >= len(cfg.IncludeHues) {
				return fmt.Errorf("include hue range index %d out of bounds (have %d ranges)",
					edit.Index, len(cfg.IncludeHues))
			}
			cfg.IncludeHues[edit.Index] = edit.Range
		default:
			return fmt.Errorf("unknown hue list %d in range edit", edit.List)
		}
	}
	return nil
}
