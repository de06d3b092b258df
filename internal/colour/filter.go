package colour

import "math"

// quantStep is the spacing between the 16 quantization levels per channel.
const quantStep = 255.0 / 15.0

// Candidate is one quantized colour observed in an image together with its
// frequency relative to the pixels retained after filtering.
type Candidate struct {
	RGB       RGB     `json:"rgb"`
	Frequency float64 `json:"frequency"`
}

// Quantize snaps each channel to one of 16 evenly spaced levels. This
// bounds candidate cardinality to at most 16^3 and merges near-duplicate
// colours. Quantizing an already-quantized colour is a no-op.
func Quantize(rgb RGB) RGB {
	return RGB{
		R: quantizeChannel(rgb.R),
		G: quantizeChannel(rgb.G),
		B: quantizeChannel(rgb.B),
	}
}

func quantizeChannel(c uint8) uint8 {
	return uint8(math.Round(math.Round(float64(c)/quantStep) * quantStep))
}

// FilterCandidates reduces raw pixel samples to viable scoring candidates:
// each pixel passes the validity predicate, is quantized, and the quantized
// colours are aggregated by relative frequency. Colours below the
// configured minimum frequency are dropped. Candidates are returned in
// first-encounter order, which later tie-breaks the ranking.
func FilterCandidates(pixels []RGB, cfg Config) []Candidate {
	counts := make(map[RGB]int)
	order := make([]RGB, 0, 64)
	retained := 0

	for _, px := range pixels {
		if !isViablePixel(px, cfg) {
			continue
		}
		q := Quantize(px)
		if _, seen := counts[q]; !seen {
			order = append(order, q)
		}
		counts[q]++
		retained++
	}

	if retained == 0 {
		return nil
	}

	candidates := make([]Candidate, 0, len(order))
	for _, q := range order {
		// Frequency is relative to retained pixels, not the whole image.
		freq := float64(counts[q]) / float64(retained)
		if freq < cfg.MinFrequency {
			continue
		}
		candidates = append(candidates, Candidate{RGB: q, Frequency: freq})
	}
	return candidates
}

// isViablePixel applies the per-pixel validity predicate: tonal windows,
// the hue filter policy, near-neutral rejection and skin-tone rejection.
func isViablePixel(px RGB, cfg Config) bool {
	hsl := RGBToHSL(px)

	if hsl.L < cfg.MinLightness || hsl.L > cfg.MaxLightness {
		return false
	}
	if hsl.S < cfg.MinSaturation || hsl.S > cfg.MaxSaturation {
		return false
	}
	if !passesHueFilter(hsl.H*360, cfg) {
		return false
	}
	if isNearNeutral(px, cfg.NeutralThreshold) {
		return false
	}
	if isSkinTone(px) {
		return false
	}
	return true
}

// passesHueFilter applies the configured hue policy to a hue in degrees.
// Range comparison is linear (min <= h <= max); wrapping ranges must be
// split by the caller, see HueRange.
func passesHueFilter(hue float64, cfg Config) bool {
	inAny := func(ranges []HueRange) bool {
		for _, r := range ranges {
			if r.Contains(hue) {
				return true
			}
		}
		return false
	}

	switch cfg.HueMode {
	case HueFilterExclude:
		return !inAny(cfg.ExcludeHues)
	case HueFilterInclude:
		return inAny(cfg.IncludeHues)
	case HueFilterBoth:
		return !inAny(cfg.ExcludeHues) && inAny(cfg.IncludeHues)
	}
	return true
}

// isNearNeutral reports whether a pixel is a likely grey or muddy brown:
// every channel sits close to the pixel mean and the channels carry the
// mild warm skew (r >= g >= b) typical of desaturated browns. Vividly
// cool-tinted pixels with the same low deviation fall through to the
// saturation window instead.
func isNearNeutral(px RGB, threshold float64) bool {
	r := float64(px.R)
	g := float64(px.G)
	b := float64(px.B)
	mean := (r + g + b) / 3.0

	maxDev := math.Max(math.Abs(r-mean), math.Max(math.Abs(g-mean), math.Abs(b-mean)))
	if maxDev > threshold {
		return false
	}

	return r >= g && g >= b && r-b <= threshold*2
}

// isSkinTone reports whether a pixel falls in the fixed RGB subspace of
// likely human skin tones: red-dominant, moderate green, low blue, with a
// bounded red-green gap. A deliberately blunt heuristic so portrait
// backgrounds rather than faces drive the palette.
func isSkinTone(px RGB) bool {
	r := int(px.R)
	g := int(px.G)
	b := int(px.B)

	return r > 95 && g > 40 && b > 20 &&
		r > g && r > b &&
		r-g > 15 && r-g <= 100 &&
		b < r-10
}
