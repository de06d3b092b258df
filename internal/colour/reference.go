package colour

// TertiaryColour is one of the twelve reference hues, spaced 30 degrees
// apart around the wheel, used as anchors for proximity and psychology
// scoring. The catalog is immutable and shared by reference; scoring code
// must never copy or mutate it.
type TertiaryColour struct {
	Name       string
	Hue        float64 // degrees, [0,360)
	RGB        RGB
	Psychology string
	Weight     float64 // base psychological weight, [0, 1.2]
}

// Context is a named semantic domain that reweights psychological scoring.
type Context string

// Supported scoring contexts. The zero value applies no reweighting.
const (
	ContextNone       Context = ""
	ContextTechnology Context = "technology"
	ContextNature     Context = "nature"
	ContextEnergy     Context = "energy"
	ContextLuxury     Context = "luxury"
	ContextCalm       Context = "calm"
	ContextPassion    Context = "passion"
)

// Contexts returns the named contexts accepted by configuration.
func Contexts() []Context {
	return []Context{
		ContextTechnology,
		ContextNature,
		ContextEnergy,
		ContextLuxury,
		ContextCalm,
		ContextPassion,
	}
}

// IsValidContext reports whether ctx is ContextNone or one of the named
// contexts.
func IsValidContext(ctx Context) bool {
	if ctx == ContextNone {
		return true
	}
	for _, c := range Contexts() {
		if ctx == c {
			return true
		}
	}
	return false
}

// tertiaryColours is the fixed catalog of reference hues. Anchors are the
// fully saturated mid-lightness RGB for each hue angle.
var tertiaryColours = [12]TertiaryColour{
	{Name: "red", Hue: 0, RGB: RGB{255, 0, 0}, Psychology: "passion", Weight: 1.1},
	{Name: "orange", Hue: 30, RGB: RGB{255, 128, 0}, Psychology: "energy", Weight: 1.0},
	{Name: "yellow", Hue: 60, RGB: RGB{255, 255, 0}, Psychology: "optimism", Weight: 0.9},
	{Name: "chartreuse", Hue: 90, RGB: RGB{128, 255, 0}, Psychology: "growth", Weight: 0.7},
	{Name: "green", Hue: 120, RGB: RGB{0, 255, 0}, Psychology: "nature", Weight: 1.0},
	{Name: "spring-green", Hue: 150, RGB: RGB{0, 255, 128}, Psychology: "freshness", Weight: 0.8},
	{Name: "cyan", Hue: 180, RGB: RGB{0, 255, 255}, Psychology: "clarity", Weight: 0.8},
	{Name: "azure", Hue: 210, RGB: RGB{0, 128, 255}, Psychology: "trust", Weight: 1.1},
	{Name: "blue", Hue: 240, RGB: RGB{0, 0, 255}, Psychology: "stability", Weight: 1.2},
	{Name: "violet", Hue: 270, RGB: RGB{128, 0, 255}, Psychology: "luxury", Weight: 0.9},
	{Name: "magenta", Hue: 300, RGB: RGB{255, 0, 255}, Psychology: "creativity", Weight: 0.8},
	{Name: "rose", Hue: 330, RGB: RGB{255, 0, 128}, Psychology: "romance", Weight: 0.9},
}

// TertiaryColours returns the reference catalog. The returned slice aliases
// the package-level table; callers must treat it as read-only.
func TertiaryColours() []TertiaryColour {
	return tertiaryColours[:]
}

// contextWeights maps each context to per-tertiary multipliers. Tertiary
// colours absent from a context default to a multiplier of 1.0.
var contextWeights = map[Context]map[string]float64{
	ContextTechnology: {
		"blue":   1.3,
		"azure":  1.3,
		"cyan":   1.2,
		"violet": 1.1,
		"orange": 0.8,
		"red":    0.7,
	},
	ContextNature: {
		"green":        1.4,
		"spring-green": 1.3,
		"chartreuse":   1.2,
		"yellow":       1.1,
		"magenta":      0.7,
		"blue":         0.9,
	},
	ContextEnergy: {
		"red":    1.4,
		"orange": 1.4,
		"yellow": 1.2,
		"rose":   1.1,
		"blue":   0.7,
		"cyan":   0.7,
	},
	ContextLuxury: {
		"violet":  1.4,
		"magenta": 1.2,
		"rose":    1.1,
		"blue":    1.1,
		"yellow":  0.8,
		"green":   0.7,
	},
	ContextCalm: {
		"azure":        1.3,
		"cyan":         1.3,
		"spring-green": 1.2,
		"blue":         1.2,
		"red":          0.6,
		"orange":       0.7,
	},
	ContextPassion: {
		"red":     1.5,
		"rose":    1.3,
		"magenta": 1.2,
		"orange":  1.1,
		"cyan":    0.7,
		"azure":   0.7,
	},
}

// contextMultiplier returns the psychological multiplier for a tertiary
// colour under a context. Unknown contexts and unlisted colours yield 1.0.
func contextMultiplier(ctx Context, name string) float64 {
	weights, ok := contextWeights[ctx]
	if !ok {
		return 1.0
	}
	m, ok := weights[name]
	if !ok {
		return 1.0
	}
	return m
}
