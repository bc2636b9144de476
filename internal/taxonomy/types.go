package taxonomy

import (
	"slices"

	"taxalign/internal/common"
)

// SynsetID identifies a synset within its taxonomy.
type SynsetID = string

// Synset is one word sense: a set of lemmas plus its direct relations.
type Synset struct {
	ID        SynsetID   `yaml:"id" json:"id"`
	Lemmas    []string   `yaml:"lemmas" json:"lemmas"`
	Hypernyms []SynsetID `yaml:"hypernyms,omitempty" json:"hypernyms,omitempty"`
	Hyponyms  []SynsetID `yaml:"hyponyms,omitempty" json:"hyponyms,omitempty"`
}

// Source is the read-only view of a taxonomy used by the aligner.
type Source interface {
	// Name identifies the taxonomy (e.g. "wn30", "es-wn").
	Name() string
	// Synset returns the synset with the given id.
	Synset(id SynsetID) (*Synset, bool)
	// Hypernyms returns the direct hypernym ids of id.
	Hypernyms(id SynsetID) []SynsetID
	// Hyponyms returns the direct hyponym ids of id.
	Hyponyms(id SynsetID) []SynsetID
	// Lemmas returns the lemmas of id.
	Lemmas(id SynsetID) []string
	// All returns every synset id in ascending order.
	All() []SynsetID
}

// KnownMapper is implemented by sources that ship authoritative mappings
// to another taxonomy (manual alignments, inter-version sense maps).
type KnownMapper interface {
	KnownMappingsTo(other string) map[SynsetID]SynsetID
}

// Graph is an immutable in-memory taxonomy.
type Graph struct {
	name    string
	synsets map[SynsetID]*Synset
	ids     []SynsetID
	known   map[string]map[SynsetID]SynsetID
}

var (
	_ Source      = (*Graph)(nil)
	_ KnownMapper = (*Graph)(nil)
)

// NewGraph builds a Graph from the given synsets. Edges are symmetric:
// hyponyms are the union of the declared hyponyms and the inverse of every
// hypernym edge, and hypernyms likewise.
// Later duplicates of an id are merged into the first occurrence.
func NewGraph(name string, synsets []Synset) *Graph {
	g := &Graph{
		name:    name,
		synsets: make(map[SynsetID]*Synset, len(synsets)),
		known:   map[string]map[SynsetID]SynsetID{},
	}

	for _, s := range synsets {
		if existing, ok := g.synsets[s.ID]; ok {
			existing.Lemmas = append(existing.Lemmas, s.Lemmas...)
			existing.Hypernyms = append(existing.Hypernyms, s.Hypernyms...)
			existing.Hyponyms = append(existing.Hyponyms, s.Hyponyms...)

			continue
		}

		cp := Synset{
			ID:        s.ID,
			Lemmas:    slices.Clone(s.Lemmas),
			Hypernyms: slices.Clone(s.Hypernyms),
			Hyponyms:  slices.Clone(s.Hyponyms),
		}
		g.synsets[s.ID] = &cp
	}

	// Derive inverse edges. A relation that does not resolve stays dangling.
	hypos := map[SynsetID][]SynsetID{}
	hypers := map[SynsetID][]SynsetID{}

	for id, s := range g.synsets {
		for _, h := range s.Hypernyms {
			hypos[h] = append(hypos[h], id)
		}

		for _, h := range s.Hyponyms {
			hypers[h] = append(hypers[h], id)
		}
	}

	for id, s := range g.synsets {
		s.Lemmas = common.SortedUnique(s.Lemmas)
		s.Hypernyms = common.SortedUnique(append(s.Hypernyms, hypers[id]...))
		s.Hyponyms = common.SortedUnique(append(s.Hyponyms, hypos[id]...))
	}

	g.ids = common.SortedKeys(g.synsets)

	return g
}

// WithKnownMappings attaches authoritative mappings to another taxonomy.
func (g *Graph) WithKnownMappings(other string, m map[SynsetID]SynsetID) *Graph {
	cp := make(map[SynsetID]SynsetID, len(m))
	for k, v := range m {
		cp[k] = v
	}

	g.known[other] = cp

	return g
}

// Name implements Source.
func (g *Graph) Name() string { return g.name }

// Len returns the number of synsets.
func (g *Graph) Len() int { return len(g.ids) }

// Synset implements Source.
func (g *Graph) Synset(id SynsetID) (*Synset, bool) {
	s, ok := g.synsets[id]
	return s, ok
}

// Hypernyms implements Source.
func (g *Graph) Hypernyms(id SynsetID) []SynsetID {
	if s, ok := g.synsets[id]; ok {
		return s.Hypernyms
	}

	return nil
}

// Hyponyms implements Source.
func (g *Graph) Hyponyms(id SynsetID) []SynsetID {
	if s, ok := g.synsets[id]; ok {
		return s.Hyponyms
	}

	return nil
}

// Lemmas implements Source.
func (g *Graph) Lemmas(id SynsetID) []string {
	if s, ok := g.synsets[id]; ok {
		return s.Lemmas
	}

	return nil
}

// All implements Source.
func (g *Graph) All() []SynsetID { return g.ids }

// KnownMappingsTo implements KnownMapper.
func (g *Graph) KnownMappingsTo(other string) map[SynsetID]SynsetID {
	return g.known[other]
}
