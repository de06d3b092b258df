package colour

import (
	"math"
	"testing"
)

func TestQuantizeIdempotent(t *testing.T) {
	colours := []RGB{
		{0, 0, 0},
		{255, 255, 255},
		{59, 130, 246},
		{8, 100, 200},
		{17, 34, 51},
	}

	for _, c := range colours {
		once := Quantize(c)
		twice := Quantize(once)
		if once != twice {
			t.Errorf("Quantize not idempotent for %v: %v -> %v", c, once, twice)
		}
	}
}

func TestQuantizeLevels(t *testing.T) {
	tests := []struct {
		name string
		in   RGB
		want RGB
	}{
		{name: "extremes preserved", in: RGB{0, 255, 0}, want: RGB{0, 255, 0}},
		{name: "small values snap down", in: RGB{8, 8, 8}, want: RGB{0, 0, 0}},
		{name: "snaps to nearest level", in: RGB{100, 128, 250}, want: RGB{102, 136, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Quantize(tt.in); got != tt.want {
				t.Errorf("Quantize(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestHueFilterPolicy(t *testing.T) {
	exclude := []HueRange{{Min: 15, Max: 40}}
	include := []HueRange{{Min: 180, Max: 260}}

	tests := []struct {
		name string
		mode HueFilterMode
		hue  float64
		want bool
	}{
		{name: "exclude rejects in-range hue", mode: HueFilterExclude, hue: 30, want: false},
		{name: "exclude accepts out-of-range hue", mode: HueFilterExclude, hue: 0, want: true},
		{name: "exclude boundary is inclusive", mode: HueFilterExclude, hue: 15, want: false},
		{name: "include accepts in-range hue", mode: HueFilterInclude, hue: 210, want: true},
		{name: "include rejects out-of-range hue", mode: HueFilterInclude, hue: 30, want: false},
		{name: "both requires pass on both tests", mode: HueFilterBoth, hue: 210, want: true},
		{name: "both rejects excluded hue", mode: HueFilterBoth, hue: 30, want: false},
		{name: "both rejects non-included hue", mode: HueFilterBoth, hue: 100, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.HueMode = tt.mode
			cfg.ExcludeHues = exclude
			cfg.IncludeHues = include

			if got := passesHueFilter(tt.hue, cfg); got != tt.want {
				t.Errorf("passesHueFilter(%v, mode=%v) = %t, want %t", tt.hue, tt.mode, got, tt.want)
			}
		})
	}
}

func TestIncludeModeWithEmptyListRejectsEverything(t *testing.T) {
	// Documented footgun: include mode with no ranges accepts no pixel.
	cfg := DefaultConfig()
	cfg.HueMode = HueFilterInclude

	for _, hue := range []float64{0, 90, 180, 270, 359} {
		if passesHueFilter(hue, cfg) {
			t.Errorf("hue %v passed include filter with empty range list", hue)
		}
	}
}

func TestExcludeRangeRejectsBrownKeepsRed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.HueMode = HueFilterExclude
	cfg.ExcludeHues = []HueRange{{Min: 15, Max: 40}}

	brown := RGB{150, 75, 0} // hue 30
	red := RGB{255, 0, 0}    // hue 0

	if isViablePixel(brown, cfg) {
		t.Errorf("brown pixel %v passed an exclude range covering its hue", brown)
	}
	if !isViablePixel(red, cfg) {
		t.Errorf("red pixel %v was rejected despite its hue being outside the range", red)
	}
}

func TestNeutralRejection(t *testing.T) {
	tests := []struct {
		name string
		in   RGB
		want bool
	}{
		{name: "pure grey", in: RGB{128, 128, 128}, want: true},
		{name: "warm grey", in: RGB{130, 126, 122}, want: true},
		{name: "muddy brown within threshold", in: RGB{120, 112, 104}, want: true},
		{name: "cool tinted grey falls through", in: RGB{120, 124, 130}, want: false},
		{name: "vivid red", in: RGB{255, 0, 0}, want: false},
		{name: "strong brown exceeds deviation", in: RGB{150, 75, 0}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isNearNeutral(tt.in, DefaultConfig().NeutralThreshold); got != tt.want {
				t.Errorf("isNearNeutral(%v) = %t, want %t", tt.in, got, tt.want)
			}
		})
	}
}

func TestSkinToneRejection(t *testing.T) {
	tests := []struct {
		name string
		in   RGB
		want bool
	}{
		{name: "light skin", in: RGB{224, 172, 105}, want: true},
		{name: "medium skin", in: RGB{198, 134, 66}, want: true},
		{name: "pure red is not skin", in: RGB{255, 0, 0}, want: false},
		{name: "vivid orange is not skin", in: RGB{255, 128, 0}, want: false},
		{name: "blue is not skin", in: RGB{59, 130, 246}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isSkinTone(tt.in); got != tt.want {
				t.Errorf("isSkinTone(%v) = %t, want %t", tt.in, got, tt.want)
			}
		})
	}
}

func TestFilterCandidatesAllGreyImage(t *testing.T) {
	// An all-grey image has no viable pixels: every sample fails the
	// neutral filter (and the saturation window), forcing the caller's
	// no-candidate fallback path.
	pixels := make([]RGB, 200)
	for i := range pixels {
		v := uint8(40 + i%180)
		pixels[i] = RGB{v, v, v}
	}

	if got := FilterCandidates(pixels, DefaultConfig()); len(got) != 0 {
		t.Errorf("expected no candidates from all-grey image, got %d", len(got))
	}
}

func TestFilterCandidatesFrequencies(t *testing.T) {
	pixels := []RGB{
		{255, 0, 0},
		{255, 0, 0},
		{255, 0, 0},
		{0, 0, 255},
	}

	cands := FilterCandidates(pixels, DefaultConfig())
	if len(cands) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(cands))
	}

	// First-encounter order: red before blue.
	if cands[0].RGB != (RGB{255, 0, 0}) || cands[1].RGB != (RGB{0, 0, 255}) {
		t.Errorf("unexpected candidate order: %v", cands)
	}
	if math.Abs(cands[0].Frequency-0.75) > 1e-12 || math.Abs(cands[1].Frequency-0.25) > 1e-12 {
		t.Errorf("unexpected frequencies: %v / %v", cands[0].Frequency, cands[1].Frequency)
	}
}

func TestFilterCandidatesFrequencyRelativeToRetained(t *testing.T) {
	// Rejected pixels must not dilute the frequencies of the retained
	// ones.
	pixels := []RGB{
		{255, 0, 0},
		{255, 0, 0},
		{128, 128, 128}, // rejected as neutral
		{128, 128, 128}, // rejected as neutral
	}

	cands := FilterCandidates(pixels, DefaultConfig())
	if len(cands) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(cands))
	}
	if math.Abs(cands[0].Frequency-1.0) > 1e-12 {
		t.Errorf("frequency = %v, want 1.0 (relative to retained pixels)", cands[0].Frequency)
	}
}

func TestFilterCandidatesViabilityFloor(t *testing.T) {
	pixels := make([]RGB, 0, 100)
	for i := 0; i < 99; i++ {
		pixels = append(pixels, RGB{255, 0, 0})
	}
	pixels = append(pixels, RGB{0, 0, 255}) // 1% of retained

	cfg := DefaultConfig()
	cfg.MinFrequency = 0.05

	cands := FilterCandidates(pixels, cfg)
	if len(cands) != 1 {
		t.Fatalf("expected viability floor to drop the rare colour, got %d candidates", len(cands))
	}
	if cands[0].RGB != (RGB{255, 0, 0}) {
		t.Errorf("surviving candidate = %v, want red", cands[0].RGB)
	}
}

func TestFilterCandidatesTonalWindows(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name string
		in   RGB
		want bool
	}{
		{name: "near black rejected by lightness floor", in: RGB{20, 0, 30}, want: false},
		{name: "near white rejected by lightness ceiling", in: RGB{250, 240, 255}, want: false},
		{name: "washed out rejected by saturation floor", in: RGB{140, 150, 160}, want: false},
		{name: "mid-tone saturated accepted", in: RGB{59, 130, 246}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isViablePixel(tt.in, cfg); got != tt.want {
				t.Errorf("isViablePixel(%v) = %t, want %t", tt.in, got, tt.want)
			}
		})
	}
}
