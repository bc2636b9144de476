// Package candidate turns source lemmas into target-synset candidate sets
// through a bilingual dictionary, and ranks near-miss target lemmas for
// synsets that end up without candidates.
//
// Key functions:
//   - Generator.Generate: candidate sets plus coverage counters
//   - Levenshtein: computes edit distance between lemmas
//   - Suggest: ranks target lemmas closest to an untranslated lemma
//   - Cached: memoizes generation behind a content-fingerprint key
package candidate
