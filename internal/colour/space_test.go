package colour

import (
	"math"
	"testing"
)

func TestRGBHSLRoundTrip(t *testing.T) {
	// Every channel combination on a coarse grid must survive the round
	// trip within rounding tolerance.
	for r := 0; r <= 255; r += 51 {
		for g := 0; g <= 255; g += 51 {
			for b := 0; b <= 255; b += 51 {
				in := RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
				out := HSLToRGB(RGBToHSL(in))

				if chanDiff(in.R, out.R) > 1 || chanDiff(in.G, out.G) > 1 || chanDiff(in.B, out.B) > 1 {
					t.Errorf("round trip %v -> %v exceeds +/-1 per channel", in, out)
				}
			}
		}
	}
}

func chanDiff(a, b uint8) int {
	d := int(a) - int(b)
	if d < 0 {
		d = -d
	}
	return d
}

func TestRGBToHSL(t *testing.T) {
	tests := []struct {
		name string
		in   RGB
		want HSL
	}{
		{name: "pure red", in: RGB{255, 0, 0}, want: HSL{H: 0, S: 1, L: 0.5}},
		{name: "pure green", in: RGB{0, 255, 0}, want: HSL{H: 1.0 / 3.0, S: 1, L: 0.5}},
		{name: "pure blue", in: RGB{0, 0, 255}, want: HSL{H: 2.0 / 3.0, S: 1, L: 0.5}},
		{name: "white is achromatic", in: RGB{255, 255, 255}, want: HSL{H: 0, S: 0, L: 1}},
		{name: "grey is achromatic", in: RGB{128, 128, 128}, want: HSL{H: 0, S: 0, L: 128.0 / 255.0}},
		{name: "mid blue", in: RGB{59, 130, 246}, want: HSL{H: 0.6034, S: 0.9122, L: 0.5980}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RGBToHSL(tt.in)
			if math.Abs(got.H-tt.want.H) > 0.001 ||
				math.Abs(got.S-tt.want.S) > 0.001 ||
				math.Abs(got.L-tt.want.L) > 0.001 {
				t.Errorf("RGBToHSL(%v) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		want   RGB
		wantOK bool
	}{
		{name: "with hash", in: "#3b82f6", want: RGB{59, 130, 246}, wantOK: true},
		{name: "without hash", in: "3b82f6", want: RGB{59, 130, 246}, wantOK: true},
		{name: "uppercase", in: "#3B82F6", want: RGB{59, 130, 246}, wantOK: true},
		{name: "white", in: "#FFFFFF", want: RGB{255, 255, 255}, wantOK: true},
		{name: "short form rejected", in: "#fff", wantOK: false},
		{name: "garbage", in: "#zzzzzz", wantOK: false},
		{name: "empty", in: "", wantOK: false},
		{name: "too long", in: "#1234567", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseHex(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("ParseHex(%q) ok = %t, want %t", tt.in, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	in := RGB{R: 26, G: 43, B: 60}
	if got := in.Hex(); got != "#1a2b3c" {
		t.Errorf("Hex() = %q, want %q", got, "#1a2b3c")
	}
	back, ok := ParseHex(in.Hex())
	if !ok || back != in {
		t.Errorf("ParseHex(Hex()) = %v, %t, want %v", back, ok, in)
	}
}

func TestContrastRatioBounds(t *testing.T) {
	if got := ContrastRatio(White, Black); math.Abs(got-21) > 1e-9 {
		t.Errorf("ContrastRatio(white, black) = %v, want 21", got)
	}

	for _, c := range []RGB{White, Black, {59, 130, 246}, {204, 204, 204}} {
		if got := ContrastRatio(c, c); math.Abs(got-1) > 1e-9 {
			t.Errorf("ContrastRatio(%v, %v) = %v, want 1", c, c, got)
		}
	}
}

func TestContrastRatioSymmetry(t *testing.T) {
	pairs := [][2]RGB{
		{White, Black},
		{{59, 130, 246}, {204, 204, 204}},
		{{255, 0, 0}, {0, 255, 0}},
		{{12, 34, 56}, {200, 100, 50}},
	}

	for _, pair := range pairs {
		ab := ContrastRatio(pair[0], pair[1])
		ba := ContrastRatio(pair[1], pair[0])
		if math.Abs(ab-ba) > 1e-12 {
			t.Errorf("ContrastRatio not symmetric for %v/%v: %v vs %v", pair[0], pair[1], ab, ba)
		}
	}
}

func TestLuminance(t *testing.T) {
	tests := []struct {
		name string
		in   RGB
		want float64
	}{
		{name: "black", in: Black, want: 0},
		{name: "white", in: White, want: 1},
		{name: "light grey", in: RGB{204, 204, 204}, want: 0.6038},
		{name: "mid blue", in: RGB{59, 130, 246}, want: 0.2355},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Luminance(tt.in); math.Abs(got-tt.want) > 0.001 {
				t.Errorf("Luminance(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestPerceptualDistance(t *testing.T) {
	t.Run("identical colours measure zero", func(t *testing.T) {
		for _, c := range []RGB{White, Black, {59, 130, 246}} {
			if got := PerceptualDistance(c, c); got != 0 {
				t.Errorf("PerceptualDistance(%v, %v) = %v, want 0", c, c, got)
			}
		}
	})

	t.Run("white to black is maximal", func(t *testing.T) {
		if got := PerceptualDistance(White, Black); math.Abs(got-1) > 1e-9 {
			t.Errorf("PerceptualDistance(white, black) = %v, want 1", got)
		}
	})

	t.Run("symmetric", func(t *testing.T) {
		a, b := RGB{10, 200, 30}, RGB{240, 10, 255}
		if d1, d2 := PerceptualDistance(a, b), PerceptualDistance(b, a); math.Abs(d1-d2) > 1e-12 {
			t.Errorf("distance not symmetric: %v vs %v", d1, d2)
		}
	})

	t.Run("within unit interval", func(t *testing.T) {
		pairs := [][2]RGB{
			{{255, 0, 0}, {0, 0, 255}},
			{{1, 2, 3}, {250, 240, 230}},
			{{128, 128, 128}, {130, 128, 126}},
		}
		for _, pair := range pairs {
			d := PerceptualDistance(pair[0], pair[1])
			if d < 0 || d > 1 {
				t.Errorf("PerceptualDistance(%v, %v) = %v, outside [0,1]", pair[0], pair[1], d)
			}
		}
	})

	t.Run("nearby colours measure closer than distant ones", func(t *testing.T) {
		base := RGB{59, 130, 246}
		near := PerceptualDistance(base, RGB{70, 140, 240})
		far := PerceptualDistance(base, RGB{246, 130, 59})
		if near >= far {
			t.Errorf("near distance %v not below far distance %v", near, far)
		}
	})
}
