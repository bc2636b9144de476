package candidate

import (
	"sort"

	"taxalign/internal/taxonomy"
)

// DefaultMinSimilarity is the lowest normalized similarity worth suggesting.
const DefaultMinSimilarity = 0.5

// Suggestion is a target lemma close to an untranslated source lemma.
type Suggestion struct {
	Lemma   string
	Score   float64
	Synsets []taxonomy.SynsetID
}

// SuggestionList is a list of suggestions with ranking functionality.
type SuggestionList []Suggestion

// Suggest ranks target lemmas by normalized Levenshtein similarity to lemma
// and returns at most n of them scoring at least minScore.
func Suggest(lemma string, target *taxonomy.LemmaIndex, n int, minScore float64) SuggestionList {
	key := taxonomy.NormalizeLemma(lemma)
	if key == "" || n <= 0 {
		return nil
	}

	var list SuggestionList

	for _, cand := range target.Lemmas() {
		score := LevenshteinNormalized(key, cand)
		if score < minScore {
			continue
		}

		list = append(list, Suggestion{
			Lemma:   cand,
			Score:   score,
			Synsets: target.SynsetsOf(cand),
		})
	}

	sort.Sort(list)

	return list.Top(n)
}

// Len implements sort.Interface.
func (s SuggestionList) Len() int { return len(s) }

// Swap implements sort.Interface.
func (s SuggestionList) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

// Less implements sort.Interface.
// Sorts by score descending, then by lemma for determinism.
func (s SuggestionList) Less(i, j int) bool {
	if s[i].Score != s[j].Score {
		return s[i].Score > s[j].Score
	}

	return s[i].Lemma < s[j].Lemma
}

// Top returns the top n suggestions.
func (s SuggestionList) Top(n int) SuggestionList {
	if n >= len(s) {
		return s
	}

	return s[:n]
}

// Lemmas returns the suggested lemmas in rank order.
func (s SuggestionList) Lemmas() []string {
	out := make([]string, len(s))
	for i, sg := range s {
		out[i] = sg.Lemma
	}

	return out
}
