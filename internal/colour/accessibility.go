package colour

// ContrastIssue is one (background, text) pairing from a palette that falls
// short of the configured minimum contrast.
type ContrastIssue struct {
	Background RGB     `json:"background"`
	Text       RGB     `json:"text"`
	Contrast   float64 `json:"contrast"`
	Required   float64 `json:"required"`
}

// AuditPalette tests every plausible (background, text) pairing from a
// palette against cfg.MinContrast: backgrounds are the dominant and the
// first two accents, text colours are white, black and the remaining two
// accents. It is a pure audit - the palette is never adjusted, only
// reported on. An empty result means every pairing passes.
func AuditPalette(p *Palette, cfg Config) []ContrastIssue {
	if p == nil {
		return nil
	}

	backgrounds := []RGB{p.Dominant, p.Accents[0], p.Accents[1]}
	texts := []RGB{White, Black, p.Accents[2], p.Accents[3]}

	var issues []ContrastIssue
	for _, bg := range backgrounds {
		for _, text := range texts {
			ratio := ContrastRatio(bg, text)
			if ratio < cfg.MinContrast {
				issues = append(issues, ContrastIssue{
					Background: bg,
					Text:       text,
					Contrast:   ratio,
					Required:   cfg.MinContrast,
				})
			}
		}
	}
	return issues
}
