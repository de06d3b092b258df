package colour

import "math"

// SimulationType names a dichromacy model for colour-blindness simulation.
type SimulationType string

const (
	// Protanopia is missing long-wavelength (red) cones.
	Protanopia SimulationType = "protanopia"
	// Deuteranopia is missing medium-wavelength (green) cones.
	Deuteranopia SimulationType = "deuteranopia"
	// Tritanopia is missing short-wavelength (blue) cones.
	Tritanopia SimulationType = "tritanopia"
)

// SimulationTypes returns the supported dichromacy models.
func SimulationTypes() []SimulationType {
	return []SimulationType{Protanopia, Deuteranopia, Tritanopia}
}

// simulationMatrices holds one fixed 4x4 homogeneous transform per model.
// Only the upper-left 3x3 block is used; the last row and column stay
// identity so the matrices remain drop-in compatible with homogeneous
// pipelines. Immutable, shared by reference.
var simulationMatrices = map[SimulationType][4][4]float64{
	Protanopia: {
		{0.567, 0.433, 0.000, 0},
		{0.558, 0.442, 0.000, 0},
		{0.000, 0.242, 0.758, 0},
		{0, 0, 0, 1},
	},
	Deuteranopia: {
		{0.625, 0.375, 0.000, 0},
		{0.700, 0.300, 0.000, 0},
		{0.000, 0.300, 0.700, 0},
		{0, 0, 0, 1},
	},
	Tritanopia: {
		{0.950, 0.050, 0.000, 0},
		{0.000, 0.433, 0.567, 0},
		{0.000, 0.475, 0.525, 0},
		{0, 0, 0, 1},
	},
}

// Simulate applies a dichromacy transform to a colour. An unknown
// simulation type returns the input unchanged - an explicit no-op, not an
// error, so callers can pass through user-selected types safely.
func Simulate(rgb RGB, t SimulationType) RGB {
	m, ok := simulationMatrices[t]
	if !ok {
		return rgb
	}

	r := float64(rgb.R) / 255.0
	g := float64(rgb.G) / 255.0
	b := float64(rgb.B) / 255.0

	sr := m[0][0]*r + m[0][1]*g + m[0][2]*b
	sg := m[1][0]*r + m[1][1]*g + m[1][2]*b
	sb := m[2][0]*r + m[2][1]*g + m[2][2]*b

	return RGB{
		R: uint8(math.Round(clamp01(sr) * 255)),
		G: uint8(math.Round(clamp01(sg) * 255)),
		B: uint8(math.Round(clamp01(sb) * 255)),
	}
}

// SimulateHex is the hex-string convenience wrapper around Simulate.
// Malformed hex or an unknown type returns the input string unchanged.
func SimulateHex(hex string, t SimulationType) string {
	rgb, ok := ParseHex(hex)
	if !ok {
		return hex
	}
	if _, known := simulationMatrices[t]; !known {
		return hex
	}
	return Simulate(rgb, t).Hex()
}
