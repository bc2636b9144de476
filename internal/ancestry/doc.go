// Package ancestry derives and memoizes hypernym structure for one taxonomy.
//
// For every synset the Index can answer:
//   - Chain: the single unambiguous hypernym path, nearest parent first,
//     or nothing when the synset has no parent or the path diverges.
//   - AncestorLayers / DescendantLayers: BFS layers over hypernym or
//     hyponym edges; layer 0 holds direct parents (children).
//
// Traversals keep a visited set, so taxonomies with relation cycles are
// handled without looping. Edges to ids the source cannot resolve are
// dropped and reported once as diagnostics.
package ancestry
