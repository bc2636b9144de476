package candidate

import (
	"taxalign/internal/common"
	"taxalign/internal/taxonomy"
)

// Set maps every source synset to its sorted target candidates. Synsets
// without candidates map to an empty slice.
type Set map[taxonomy.SynsetID][]taxonomy.SynsetID

// Coverage holds non-authoritative counters describing how much of each
// taxonomy the dictionary reached.
type Coverage struct {
	TranslatedLemmas int `json:"translated_lemmas" yaml:"translated_lemmas"`
	TotalLemmas      int `json:"total_lemmas" yaml:"total_lemmas"`
	ReachedTargets   int `json:"reached_targets" yaml:"reached_targets"`
	TotalTargets     int `json:"total_targets" yaml:"total_targets"`
}

// LemmaRatio returns the translated share of source lemmas (0-1).
func (c Coverage) LemmaRatio() float64 {
	return ratio(c.TranslatedLemmas, c.TotalLemmas)
}

// TargetRatio returns the reached share of target synsets (0-1).
func (c Coverage) TargetRatio() float64 {
	return ratio(c.ReachedTargets, c.TotalTargets)
}

func ratio(n, d int) float64 {
	if d == 0 {
		return 0
	}

	return float64(n) / float64(d)
}

// Result is the output of candidate generation.
type Result struct {
	Set      Set      `json:"set"`
	Coverage Coverage `json:"coverage"`
}

// Counts returns how many source synsets have zero, one, and several
// candidates.
func (r *Result) Counts() (none, single, multiple int) {
	for _, targets := range r.Set {
		switch {
		case common.IsEmpty(targets):
			none++
		case common.IsSingle(targets):
			single++
		default:
			multiple++
		}
	}

	return none, single, multiple
}

// Generator builds candidate sets from two lemma indexes and a dictionary.
type Generator struct {
	source *taxonomy.LemmaIndex
	target *taxonomy.LemmaIndex
	dict   taxonomy.Dictionary
}

// NewGenerator creates a Generator. A nil dictionary means identity
// translation.
func NewGenerator(source, target *taxonomy.LemmaIndex, dict taxonomy.Dictionary) *Generator {
	if dict == nil {
		dict = taxonomy.Identity{}
	}

	return &Generator{source: source, target: target, dict: dict}
}

// Generate computes the candidate set. For each source lemma L, the targets
// of L are the synsets containing any translation of L; a source synset's
// candidates are the union over its lemmas. Only set unions are involved,
// so the result does not depend on iteration order.
func (g *Generator) Generate() *Result {
	lemmaTargets := map[string]common.Set[taxonomy.SynsetID]{}
	translated := 0

	for _, lemma := range g.source.Lemmas() {
		targets := common.NewSet[taxonomy.SynsetID]()
		translations := g.dict.Translate(lemma)

		if len(translations) > 0 {
			translated++
		}

		for _, t := range translations {
			for _, id := range g.target.SynsetsOf(taxonomy.NormalizeLemma(t)) {
				targets.Add(id)
			}
		}

		lemmaTargets[lemma] = targets
	}

	set := Set{}
	reached := common.NewSet[taxonomy.SynsetID]()

	for _, id := range g.source.Synsets() {
		union := common.NewSet[taxonomy.SynsetID]()
		for _, lemma := range g.source.LemmasOf(id) {
			union.Union(lemmaTargets[lemma])
		}

		reached.Union(union)

		set[id] = union.Sorted()
	}

	return &Result{
		Set: set,
		Coverage: Coverage{
			TranslatedLemmas: translated,
			TotalLemmas:      len(lemmaTargets),
			ReachedTargets:   len(reached),
			TotalTargets:     len(g.target.Synsets()),
		},
	}
}
