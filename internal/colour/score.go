package colour

import "sort"

// ScoredCandidate is a Candidate together with its sub-scores and weighted
// total. The full ranked set is retained for diagnostics.
type ScoredCandidate struct {
	Candidate
	Proximity  float64 `json:"proximity"`
	Psychology float64 `json:"psychology"`
	Total      float64 `json:"total"`
}

// Outcome tags the result of dominant-colour selection. The engine never
// fabricates a colour: fallback policy belongs to the caller, which is why
// the non-selected outcomes still carry the full ranked list.
type Outcome int

const (
	// OutcomeSelected means the top-ranked candidate met the configured
	// minimum score and was selected.
	OutcomeSelected Outcome = iota
	// OutcomeNoQualifier means candidates exist but none met the minimum
	// score; the caller decides whether to promote the top one anyway.
	OutcomeNoQualifier
	// OutcomeNoCandidates means filtering produced no viable candidates at
	// all; the caller decides on a fallback colour.
	OutcomeNoCandidates
)

// String returns the string representation of an Outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeSelected:
		return "selected"
	case OutcomeNoQualifier:
		return "no-qualifying-candidate"
	case OutcomeNoCandidates:
		return "no-candidates"
	default:
		return "unknown"
	}
}

// Selection is the tagged result of ranking plus selection.
type Selection struct {
	Outcome Outcome
	// Dominant is only meaningful when Outcome is OutcomeSelected.
	Dominant RGB
	// Ranked is the full candidate list in descending total-score order.
	Ranked []ScoredCandidate
}

// ScoreCandidates computes the three sub-scores and weighted total for each
// candidate and returns the list ranked by descending total. The sort is
// stable, so equal totals keep their first-encounter order.
func ScoreCandidates(candidates []Candidate, cfg Config) []ScoredCandidate {
	scored := make([]ScoredCandidate, len(candidates))
	for i, cand := range candidates {
		proximity, psychology := referenceScores(cand.RGB, cfg.Context)
		scored[i] = ScoredCandidate{
			Candidate:  cand,
			Proximity:  proximity,
			Psychology: psychology,
			Total: proximity*cfg.ProximityWeight +
				psychology*cfg.PsychologyWeight +
				cand.Frequency*cfg.FrequencyWeight,
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Total > scored[j].Total
	})
	return scored
}

// referenceScores computes the proximity and psychology scores for a colour
// in a single pass over the tertiary catalog.
//
// Proximity is the best match against any canonical hue family, independent
// of context. Psychology additionally weighs each family by its base
// psychological weight and the active context multiplier, so a colour can
// score high on proximity but low on psychology when its family is
// out-of-context.
func referenceScores(rgb RGB, ctx Context) (proximity, psychology float64) {
	for _, ref := range tertiaryColours {
		closeness := 1 - PerceptualDistance(rgb, ref.RGB)
		if closeness > proximity {
			proximity = closeness
		}

		weighted := closeness * ref.Weight * contextMultiplier(ctx, ref.Name)
		if weighted > psychology {
			psychology = weighted
		}
	}
	return proximity, psychology
}

// SelectDominant applies the selection policy to a ranked candidate list:
// the top candidate wins only if its total meets cfg.MinScore. It never
// substitutes a fallback colour; that decision is tagged into the Outcome
// for the caller.
func SelectDominant(ranked []ScoredCandidate, cfg Config) Selection {
	if len(ranked) == 0 {
		return Selection{Outcome: OutcomeNoCandidates}
	}
	if ranked[0].Total >= cfg.MinScore {
		return Selection{
			Outcome:  OutcomeSelected,
			Dominant: ranked[0].RGB,
			Ranked:   ranked,
		}
	}
	return Selection{Outcome: OutcomeNoQualifier, Ranked: ranked}
}
