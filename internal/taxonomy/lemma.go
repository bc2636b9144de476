package taxonomy

import "taxalign/internal/common"

// LemmaIndex maps normalized lemmas to the synsets that contain them.
// The relation is many-to-many.
type LemmaIndex struct {
	bySynset map[SynsetID][]string
	byLemma  map[string][]SynsetID
}

// BuildLemmaIndex indexes every lemma of every synset in src.
func BuildLemmaIndex(src Source) *LemmaIndex {
	idx := &LemmaIndex{
		bySynset: map[SynsetID][]string{},
		byLemma:  map[string][]SynsetID{},
	}

	for _, id := range src.All() {
		var lemmas []string

		for _, l := range src.Lemmas(id) {
			key := NormalizeLemma(l)
			if key == "" {
				continue
			}

			lemmas = append(lemmas, key)
			idx.byLemma[key] = append(idx.byLemma[key], id)
		}

		idx.bySynset[id] = common.SortedUnique(lemmas)
	}

	for key, ids := range idx.byLemma {
		idx.byLemma[key] = common.SortedUnique(ids)
	}

	return idx
}

// SynsetsOf returns the synsets containing the normalized lemma.
func (idx *LemmaIndex) SynsetsOf(lemma string) []SynsetID {
	return idx.byLemma[lemma]
}

// LemmasOf returns the normalized lemmas of a synset.
func (idx *LemmaIndex) LemmasOf(id SynsetID) []string {
	return idx.bySynset[id]
}

// Synsets returns every indexed synset in ascending order.
func (idx *LemmaIndex) Synsets() []SynsetID {
	return common.SortedKeys(idx.bySynset)
}

// Lemmas returns every distinct normalized lemma in ascending order.
func (idx *LemmaIndex) Lemmas() []string {
	return common.SortedKeys(idx.byLemma)
}
