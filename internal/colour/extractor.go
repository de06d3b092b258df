package colour

// Extractor runs the full pipeline: pixel samples -> candidate filtering ->
// scoring -> selection -> palette generation. Its configuration is built
// once and never mutated, so a single Extractor is safe for concurrent use
// across goroutines; every Extract call is independently reentrant.
type Extractor struct {
	cfg Config
}

// Diagnostics carries the tuning and debugging data produced alongside a
// palette. It is plain data; the engine never logs it.
type Diagnostics struct {
	// Ranked is the full scored candidate list, best first.
	Ranked []ScoredCandidate `json:"ranked"`
	// Outcome is the raw selection result before fallback policy.
	Outcome Outcome `json:"outcome"`
	// Promoted is set when no candidate met the minimum score and the
	// top-ranked one was promoted anyway.
	Promoted bool `json:"promoted,omitempty"`
	// UsedFallback is set when no viable candidates existed and the
	// configured fallback colour was used.
	UsedFallback bool `json:"used_fallback,omitempty"`
	// Issues is the accessibility audit of the generated palette.
	Issues []ContrastIssue `json:"issues,omitempty"`
}

// New creates an Extractor from the default configuration plus caller
// options.
func New(opts ...Option) (*Extractor, error) {
	return NewWithOverrides(opts, nil)
}

// NewWithOverrides creates an Extractor from all three configuration
// layers: defaults, options, then declarative per-instance overrides.
func NewWithOverrides(opts []Option, ov *Overrides) (*Extractor, error) {
	cfg, err := BuildConfig(opts, ov)
	if err != nil {
		return nil, err
	}
	return &Extractor{cfg: cfg}, nil
}

// Config returns a copy of the extractor's configuration.
func (e *Extractor) Config() Config {
	return e.cfg
}

// Extract derives a palette from raw pixel samples. The scoring engine only
// ranks and flags; the fallback policy lives here: a sub-threshold top
// candidate is promoted (flagged in Diagnostics.Promoted), and an image
// with no viable candidates at all falls back to the configured colour
// (Diagnostics.UsedFallback). Extract always returns a complete palette.
func (e *Extractor) Extract(pixels []RGB) (*Palette, *Diagnostics) {
	candidates := FilterCandidates(pixels, e.cfg)
	ranked := ScoreCandidates(candidates, e.cfg)
	selection := SelectDominant(ranked, e.cfg)

	diag := &Diagnostics{
		Ranked:  selection.Ranked,
		Outcome: selection.Outcome,
	}

	var dominant RGB
	switch selection.Outcome {
	case OutcomeSelected:
		dominant = selection.Dominant
	case OutcomeNoQualifier:
		dominant = selection.Ranked[0].RGB
		diag.Promoted = true
	case OutcomeNoCandidates:
		dominant = e.cfg.Fallback
		diag.UsedFallback = true
	}

	palette := GeneratePalette(dominant, e.cfg)
	diag.Issues = AuditPalette(palette, e.cfg)
	return palette, diag
}

// FromDominant bypasses sampling and scoring entirely, generating a palette
// from an explicit dominant colour. Returns ok=false on malformed hex.
func (e *Extractor) FromDominant(hex string) (*Palette, bool) {
	return PaletteFromHex(hex, e.cfg)
}
