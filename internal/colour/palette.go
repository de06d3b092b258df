package colour

import "math"

// Harmony holds the colour-theory relations derived from the dominant hue.
type Harmony struct {
	Complementary      RGB    `json:"complementary"`
	Analogous          [2]RGB `json:"analogous"`
	SplitComplementary [2]RGB `json:"split_complementary"`
	Triadic            [2]RGB `json:"triadic"`
}

// Foreground is the text-colour choice for presenting content over the
// dominant colour, with its contrast metadata.
type Foreground struct {
	Primary           RGB     `json:"primary"`
	Alternate         RGB     `json:"alternate"`
	PrimaryContrast   float64 `json:"primary_contrast"`
	AlternateContrast float64 `json:"alternate_contrast"`
	// NeedsShadow marks that a text shadow is advisable over image content.
	// A text-area specific resolution (ResolveTextArea) overrides this.
	NeedsShadow bool `json:"needs_shadow"`
	// Shadow is the advisable shadow colour: opposite-toned, 50% alpha.
	Shadow RGBA `json:"shadow"`
}

// Palette is the structured output of palette generation. It is never
// mutated after being returned.
type Palette struct {
	// Dominant is always the original input colour, even when harmony
	// generation worked from adjusted values.
	Dominant RGB `json:"dominant"`

	// Accents are lightness-shifted variants of the dominant:
	// +0.2, -0.2, +0.4, -0.4, clamped to [0,1].
	Accents [4]RGB `json:"accents"`

	// Standard is the dominant with saturation reduced by 20%.
	Standard RGB `json:"standard"`

	Foreground Foreground `json:"foreground"`
	Harmony    Harmony    `json:"harmony"`

	// Classification flags, computed from the original unadjusted
	// lightness.
	IsLight   bool `json:"is_light"`
	IsDark    bool `json:"is_dark"`
	IsExtreme bool `json:"is_extreme"`

	// Contrast ratios of the dominant against the reference extremes.
	ContrastWhite float64 `json:"contrast_white"`
	ContrastBlack float64 `json:"contrast_black"`
}

// Harmony hue offsets, as fractions of the wheel.
const (
	complementaryOffset = 0.5
	analogousOffset     = 1.0 / 12.0
	splitCompLowOffset  = 0.42
	splitCompHighOffset = 0.58
	triadicOffset       = 1.0 / 3.0
)

// GeneratePalette derives a full palette from one dominant colour.
//
// Near-white and near-black dominants would produce washed-out or muddy
// harmonies, so harmony generation works from clamped lightness (0.85/0.15)
// with a 0.3 saturation floor; the returned Dominant and the accents stay
// true to the input.
func GeneratePalette(dominant RGB, cfg Config) *Palette {
	hsl := RGBToHSL(dominant)

	// Adjusted HSL drives harmony generation only.
	adjusted := hsl
	switch {
	case hsl.L > 0.9:
		adjusted.L = 0.85
		adjusted.S = math.Max(adjusted.S, 0.3)
	case hsl.L < 0.1:
		adjusted.L = 0.15
		adjusted.S = math.Max(adjusted.S, 0.3)
	}

	p := &Palette{
		Dominant: dominant,
		Accents: [4]RGB{
			shiftLightness(hsl, 0.2),
			shiftLightness(hsl, -0.2),
			shiftLightness(hsl, 0.4),
			shiftLightness(hsl, -0.4),
		},
		Standard:  HSLToRGB(HSL{H: hsl.H, S: clamp01(hsl.S * 0.8), L: hsl.L}),
		Harmony:   generateHarmony(adjusted, cfg),
		IsLight:   hsl.L > 0.5,
		IsDark:    hsl.L <= 0.5,
		IsExtreme: hsl.L > 0.9 || hsl.L < 0.1,
	}

	p.ContrastWhite = ContrastRatio(dominant, White)
	p.ContrastBlack = ContrastRatio(dominant, Black)
	p.Foreground = resolveForeground(p.ContrastWhite, p.ContrastBlack)

	return p
}

// PaletteFromHex generates a palette from a hex dominant colour. A
// malformed or empty hex yields no palette (nil, false), never a partially
// filled structure.
func PaletteFromHex(hex string, cfg Config) (*Palette, bool) {
	rgb, ok := ParseHex(hex)
	if !ok {
		return nil, false
	}
	return GeneratePalette(rgb, cfg), true
}

// shiftLightness returns the colour with lightness moved by delta, clamped
// to [0,1], at unchanged hue and saturation.
func shiftLightness(hsl HSL, delta float64) RGB {
	return HSLToRGB(HSL{H: hsl.H, S: hsl.S, L: clamp01(hsl.L + delta)})
}

// generateHarmony derives the harmony colours from the (possibly adjusted)
// dominant HSL. All harmonies keep the adjusted lightness but use the
// configured harmony saturation rather than the dominant's own, so harmony
// colours stay visually consistent regardless of source vibrancy. The
// complementary keeps the dominant saturation when it is already stronger.
func generateHarmony(adjusted HSL, cfg Config) Harmony {
	harmonyAt := func(offset, saturation float64) RGB {
		return HSLToRGB(HSL{
			H: wrapHue(adjusted.H + offset),
			S: saturation,
			L: adjusted.L,
		})
	}

	return Harmony{
		Complementary: harmonyAt(complementaryOffset, math.Max(adjusted.S, cfg.HarmonySaturation)),
		Analogous: [2]RGB{
			harmonyAt(analogousOffset, cfg.HarmonySaturation),
			harmonyAt(-analogousOffset, cfg.HarmonySaturation),
		},
		SplitComplementary: [2]RGB{
			harmonyAt(splitCompLowOffset, cfg.HarmonySaturation),
			harmonyAt(splitCompHighOffset, cfg.HarmonySaturation),
		},
		Triadic: [2]RGB{
			harmonyAt(triadicOffset, cfg.HarmonySaturation),
			harmonyAt(2*triadicOffset, cfg.HarmonySaturation),
		},
	}
}

// wrapHue wraps a hue fraction into [0,1).
func wrapHue(h float64) float64 {
	h = math.Mod(h, 1.0)
	if h < 0 {
		h++
	}
	return h
}

// resolveForeground picks white or black text over the dominant colour by
// contrast, white winning ties. The shadow metadata mirrors the choice:
// opposite-toned at 50% alpha, advisable whenever text sits over image
// content rather than a flat fill.
func resolveForeground(contrastWhite, contrastBlack float64) Foreground {
	fg := Foreground{NeedsShadow: true}
	if contrastWhite >= contrastBlack {
		fg.Primary = White
		fg.Alternate = Black
		fg.PrimaryContrast = contrastWhite
		fg.AlternateContrast = contrastBlack
		fg.Shadow = RGBA{R: 0, G: 0, B: 0, A: 128}
	} else {
		fg.Primary = Black
		fg.Alternate = White
		fg.PrimaryContrast = contrastBlack
		fg.AlternateContrast = contrastWhite
		fg.Shadow = RGBA{R: 255, G: 255, B: 255, A: 128}
	}
	return fg
}
