// Package colour implements the dominant-colour scoring and colour-theory
// engine: colour-space conversions, candidate filtering, multi-factor
// scoring, harmony generation and accessibility auditing. Every function in
// this package is a pure transformation of its inputs; nothing here performs
// I/O or logging.
package colour

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// RGB represents a colour in 8-bit RGB.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// RGBA is an RGB colour with an alpha channel.
type RGBA struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// HSL holds hue, saturation and lightness, each normalised to [0,1].
// Hue 0 and hue 1 are the same angle on the wheel.
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// White and Black are the reference extremes used for foreground selection
// and contrast bounds.
var (
	White = RGB{R: 255, G: 255, B: 255}
	Black = RGB{R: 0, G: 0, B: 0}
)

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a lowercase hex string (e.g. "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// Color converts the RGB value to a color.Color with full opacity.
func (rgb RGB) Color() color.Color {
	return color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
}

// String returns the colour in CSS rgba() notation with alpha in [0,1].
func (c RGBA) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %.2f)", c.R, c.G, c.B, float64(c.A)/255.0)
}

// ToRGB converts a color.Color to RGB, discarding alpha.
func ToRGB(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	// RGBA returns values in the range [0, 65535], convert to [0, 255].
	return RGB{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
	}
}

// ParseHex parses a 6-digit hex colour string, case-insensitive, with or
// without a leading '#'. Returns ok=false for malformed input rather than
// an error: a bad hex string is an expected condition, not an exception.
func ParseHex(s string) (RGB, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return RGB{}, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, false
	}
	return RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, true
}

// RGBToHSL converts an RGB colour to HSL with all components in [0,1].
// Achromatic inputs (max channel == min channel) yield h=0, s=0.
func RGBToHSL(rgb RGB) HSL {
	r := float64(rgb.R) / 255.0
	g := float64(rgb.G) / 255.0
	b := float64(rgb.B) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	l := (maxVal + minVal) / 2.0

	if delta == 0 {
		// Achromatic (grey).
		return HSL{H: 0, S: 0, L: l}
	}

	var s float64
	if l < 0.5 {
		s = delta / (maxVal + minVal)
	} else {
		s = delta / (2.0 - maxVal - minVal)
	}

	var h float64
	switch maxVal {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	case b:
		h = (r-g)/delta + 4
	}
	h /= 6

	return HSL{H: h, S: s, L: l}
}

// HSLToRGB converts an HSL colour (all components in [0,1]) back to RGB.
// Each channel is rounded to the nearest integer, so it inverts RGBToHSL
// up to +/-1 per channel.
func HSLToRGB(hsl HSL) RGB {
	if hsl.S == 0 {
		// Achromatic (grey).
		v := uint8(math.Round(hsl.L * 255))
		return RGB{R: v, G: v, B: v}
	}

	var q float64
	if hsl.L < 0.5 {
		q = hsl.L * (1 + hsl.S)
	} else {
		q = hsl.L + hsl.S - hsl.L*hsl.S
	}
	p := 2*hsl.L - q

	r := hueToChannel(p, q, hsl.H+1.0/3.0)
	g := hueToChannel(p, q, hsl.H)
	b := hueToChannel(p, q, hsl.H-1.0/3.0)

	return RGB{
		R: uint8(math.Round(r * 255)),
		G: uint8(math.Round(g * 255)),
		B: uint8(math.Round(b * 255)),
	}
}

// hueToChannel is a helper for HSL to RGB conversion.
func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}

	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6*t
	case t < 1.0/2.0:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6
	}
	return p
}

// Luminance calculates the relative luminance of a colour according to
// WCAG 2.0. Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef
func Luminance(rgb RGB) float64 {
	rf := gammaCorrect(float64(rgb.R) / 255.0)
	gf := gammaCorrect(float64(rgb.G) / 255.0)
	bf := gammaCorrect(float64(rgb.B) / 255.0)

	return 0.2126*rf + 0.7152*gf + 0.0722*bf
}

// gammaCorrect applies sRGB gamma correction to a colour component.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the contrast ratio between two colours according
// to WCAG 2.0. Returns a value between 1 and 21, where 21 is maximum
// contrast (black vs white). Symmetric in its arguments.
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef
func ContrastRatio(c1, c2 RGB) float64 {
	return contrastFromLuminance(Luminance(c1), Luminance(c2))
}

// contrastFromLuminance computes the WCAG contrast ratio from two relative
// luminance values.
func contrastFromLuminance(l1, l2 float64) float64 {
	// Ensure l1 is the lighter value.
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// PerceptualDistance returns a perceptual distance between two colours in
// [0,1], where 0 is identical and 1 is maximally distant. It is a weighted
// Euclidean distance whose red and blue weights shift with the mean red
// channel of the pair ("redmean"), normalised by the maximum possible
// weighted distance. This is a cheap proxy for perceptual non-uniformity,
// not CIEDE2000; kept exactly as-is so existing palettes reproduce
// bit-for-bit.
func PerceptualDistance(c1, c2 RGB) float64 {
	meanR := (float64(c1.R) + float64(c2.R)) / 2.0

	rWeight := 2 + meanR/256.0
	gWeight := 4.0
	bWeight := 2 + (255.0-meanR)/256.0

	dr := float64(c1.R) - float64(c2.R)
	dg := float64(c1.G) - float64(c2.G)
	db := float64(c1.B) - float64(c2.B)

	dist := math.Sqrt(rWeight*dr*dr + gWeight*dg*dg + bWeight*db*db)
	maxDist := 255.0 * math.Sqrt(rWeight+gWeight+bWeight)

	return dist / maxDist
}

// clamp01 clamps v to [0,1].
func clamp01(v float64) float64 {
	return math.Max(0.0, math.Min(1.0, v))
}
