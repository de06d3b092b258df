package colour

import "math"

// TextStyle is the resolved text treatment for a designated sub-region of
// an image, such as an area that will carry overlaid text.
type TextStyle struct {
	// Colour is the chosen text colour, always pure white or pure black.
	Colour   RGB     `json:"colour"`
	Contrast float64 `json:"contrast"`
	// NeedsShadow is set when the background is busy (high luminance
	// variance) or the chosen contrast still misses the threshold.
	NeedsShadow bool `json:"needs_shadow"`
	// Shadow is snapped to plain black or white by mean luminance rather
	// than the literal inverse of the background; a legibility heuristic,
	// not a physically accurate inverse.
	Shadow RGBA `json:"shadow"`

	MeanLuminance     float64 `json:"mean_luminance"`
	LuminanceVariance float64 `json:"luminance_variance"`
	// Average is the mean background colour of the sampled region.
	Average RGB `json:"average"`
}

const (
	// textContrastThreshold is the WCAG AA ratio for normal text.
	textContrastThreshold = 4.5
	// busyVarianceThreshold is the luminance variance above which a
	// background is considered too noisy for unshadowed text.
	busyVarianceThreshold = 0.1
)

// ResolveTextArea decides the text colour for a sampled sub-region. The
// pixels should come from a region sampler that already skipped transparent
// pixels (alpha < 128).
//
// Policy: prefer white when only white clears 4.5:1, prefer black when only
// black does; when both or neither clear, take whichever contrasts more
// against the mean luminance, splitting exact ties at mean luminance 0.5.
// Returns ok=false for an empty region rather than a fabricated style.
func ResolveTextArea(pixels []RGB) (TextStyle, bool) {
	if len(pixels) == 0 {
		return TextStyle{}, false
	}

	mean, variance, average := regionLuminance(pixels)

	contrastWhite := contrastFromLuminance(1.0, mean)
	contrastBlack := contrastFromLuminance(mean, 0.0)

	var colour RGB
	var contrast float64
	switch {
	case contrastWhite >= textContrastThreshold && contrastBlack < textContrastThreshold:
		colour, contrast = White, contrastWhite
	case contrastBlack >= textContrastThreshold && contrastWhite < textContrastThreshold:
		colour, contrast = Black, contrastBlack
	case contrastWhite > contrastBlack:
		colour, contrast = White, contrastWhite
	case contrastBlack > contrastWhite:
		colour, contrast = Black, contrastBlack
	case mean > 0.5:
		colour, contrast = Black, contrastBlack
	default:
		colour, contrast = White, contrastWhite
	}

	noisy := variance > busyVarianceThreshold

	style := TextStyle{
		Colour:            colour,
		Contrast:          contrast,
		NeedsShadow:       noisy || contrast < textContrastThreshold,
		MeanLuminance:     mean,
		LuminanceVariance: variance,
		Average:           average,
	}

	// Shadow opacity rises on noisy backgrounds; the colour snaps to the
	// opposite tonal extreme of the averaged background.
	alpha := uint8(128) // 0.5
	if noisy {
		alpha = 179 // 0.7
	}
	if mean > 0.5 {
		style.Shadow = RGBA{R: 0, G: 0, B: 0, A: alpha}
	} else {
		style.Shadow = RGBA{R: 255, G: 255, B: 255, A: alpha}
	}

	return style, true
}

// regionLuminance computes the mean and variance of per-pixel relative
// luminance, plus the channel-wise average colour of the region.
func regionLuminance(pixels []RGB) (mean, variance float64, average RGB) {
	var sumLum, sumR, sumG, sumB float64
	lums := make([]float64, len(pixels))

	for i, px := range pixels {
		l := Luminance(px)
		lums[i] = l
		sumLum += l
		sumR += float64(px.R)
		sumG += float64(px.G)
		sumB += float64(px.B)
	}

	n := float64(len(pixels))
	mean = sumLum / n

	for _, l := range lums {
		d := l - mean
		variance += d * d
	}
	variance /= n

	average = RGB{
		R: uint8(math.Round(sumR / n)),
		G: uint8(math.Round(sumG / n)),
		B: uint8(math.Round(sumB / n)),
	}
	return mean, variance, average
}
