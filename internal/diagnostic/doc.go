// Package diagnostic provides structured warnings, errors, and
// explanations collected while aligning two taxonomies.
//
// Key capabilities:
//   - Dangling relation warnings from ancestry indexing
//   - Unmapped synset reports with nearest-lemma suggestions
//   - Non-convergence warnings from the relaxation loop
//   - Configuration errors surfaced before scoring
package diagnostic
