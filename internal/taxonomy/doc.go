// Package taxonomy defines the capability interface the aligner consumes
// from a lexical taxonomy, plus an in-memory, YAML-backed implementation.
//
// A taxonomy is a set of synsets (word-sense groups) linked by hypernym
// ("is-a" superordinate) and hyponym edges. The aligner never reaches past
// the Source interface, so SQL or corpus readers can be plugged in without
// touching the scoring engine.
//
// # File format
//
//	name: wn30
//	synsets:
//	  - id: n-entity
//	    lemmas: [entity]
//	  - id: n-dog
//	    lemmas: [dog, domestic_dog]
//	    hypernyms: [n-canine]
//	known_mappings:
//	  wn31:
//	    n-entity: e-entity
//
// Hyponym edges are derived from hypernym edges (and may also be listed
// explicitly). Edges that reference unknown ids are preserved as-is; the
// ancestry index treats them as absent.
package taxonomy
