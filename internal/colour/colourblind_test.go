package colour

import "testing"

func TestSimulateKnownValues(t *testing.T) {
	tests := []struct {
		name    string
		in      RGB
		simType SimulationType
		want    RGB
	}{
		{name: "red under protanopia", in: RGB{255, 0, 0}, simType: Protanopia, want: RGB{145, 142, 0}},
		{name: "red under deuteranopia", in: RGB{255, 0, 0}, simType: Deuteranopia, want: RGB{159, 179, 0}},
		{name: "blue under tritanopia", in: RGB{0, 0, 255}, simType: Tritanopia, want: RGB{13, 145, 134}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Simulate(tt.in, tt.simType); got != tt.want {
				t.Errorf("Simulate(%v, %s) = %v, want %v", tt.in, tt.simType, got, tt.want)
			}
		})
	}
}

func TestSimulatePreservesExtremes(t *testing.T) {
	// Each matrix row sums to 1, so pure white and pure black are fixed
	// points of every model.
	for _, simType := range SimulationTypes() {
		if got := Simulate(White, simType); got != White {
			t.Errorf("Simulate(white, %s) = %v, want white", simType, got)
		}
		if got := Simulate(Black, simType); got != Black {
			t.Errorf("Simulate(black, %s) = %v, want black", simType, got)
		}
	}
}

func TestSimulateUnknownTypeIsNoOp(t *testing.T) {
	in := RGB{59, 130, 246}
	if got := Simulate(in, SimulationType("achromatopsia")); got != in {
		t.Errorf("unknown type changed the colour: %v", got)
	}
}

func TestSimulateHex(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		simType SimulationType
		want    string
	}{
		{name: "valid colour and type", in: "#ff0000", simType: Protanopia, want: "#918e00"},
		{name: "unknown type returns input", in: "#ff0000", simType: "unknown", want: "#ff0000"},
		{name: "malformed hex returns input", in: "#xyz", simType: Protanopia, want: "#xyz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SimulateHex(tt.in, tt.simType); got != tt.want {
				t.Errorf("SimulateHex(%q, %s) = %q, want %q", tt.in, tt.simType, got, tt.want)
			}
		})
	}
}
