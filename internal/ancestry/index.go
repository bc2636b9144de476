package ancestry

import (
	"fmt"
	"sync"

	"taxalign/internal/common"
	"taxalign/internal/diagnostic"
	"taxalign/internal/taxonomy"
)

// Layer is a sorted set of synset ids at one distance from the origin.
type Layer []taxonomy.SynsetID

// Layers lists layers by increasing distance; Layers[0] is one hop away.
type Layers []Layer

// Contains reports whether id is in the layer.
func (l Layer) Contains(id taxonomy.SynsetID) bool {
	for _, v := range l {
		if v == id {
			return true
		}
	}

	return false
}

// Depth returns the number of layers.
func (l Layers) Depth() int { return len(l) }

// Index memoizes chains and layers for a taxonomy. Safe for concurrent use.
type Index struct {
	src taxonomy.Source

	mu          sync.Mutex
	chains      map[taxonomy.SynsetID][]taxonomy.SynsetID
	ancestors   map[taxonomy.SynsetID]Layers
	descendants map[taxonomy.SynsetID]Layers
	reported    common.Set[string]
	diags       *diagnostic.Diagnostics
}

// NewIndex creates an index over src. Warnings are appended to diags when
// it is non-nil.
func NewIndex(src taxonomy.Source, diags *diagnostic.Diagnostics) *Index {
	return &Index{
		src:         src,
		chains:      map[taxonomy.SynsetID][]taxonomy.SynsetID{},
		ancestors:   map[taxonomy.SynsetID]Layers{},
		descendants: map[taxonomy.SynsetID]Layers{},
		reported:    common.NewSet[string](),
		diags:       diags,
	}
}

// Source returns the indexed taxonomy.
func (x *Index) Source() taxonomy.Source { return x.src }

// Chain returns the ancestors of id from nearest to farthest, excluding id.
// It returns nil when id has no hypernym, when any synset on the way up has
// more than one parent, or when the walk runs into a cycle.
func (x *Index) Chain(id taxonomy.SynsetID) []taxonomy.SynsetID {
	x.mu.Lock()
	defer x.mu.Unlock()

	if c, ok := x.chains[id]; ok {
		return c
	}

	c := x.walkChain(id)
	x.chains[id] = c

	return c
}

func (x *Index) walkChain(id taxonomy.SynsetID) []taxonomy.SynsetID {
	var chain []taxonomy.SynsetID

	seen := common.NewSet(id)
	cur := id

	for {
		parents := x.resolve(cur, x.src.Hypernyms(cur))
		if len(parents) == 0 {
			return chain
		}

		if len(parents) > 1 {
			return nil
		}

		p := parents[0]
		if !seen.Add(p) {
			x.report(diagnostic.CodeRelationCycle, p,
				fmt.Sprintf("hypernym cycle through %s reached from %s", p, id))

			return nil
		}

		chain = append(chain, p)
		cur = p
	}
}

// ChainLayers returns Chain(id) with one synset per layer, or nil when the
// chain is absent.
func (x *Index) ChainLayers(id taxonomy.SynsetID) Layers {
	chain := x.Chain(id)
	if len(chain) == 0 {
		return nil
	}

	out := make(Layers, len(chain))
	for i, a := range chain {
		out[i] = Layer{a}
	}

	return out
}

// AncestorLayers returns the BFS layers over hypernym edges.
func (x *Index) AncestorLayers(id taxonomy.SynsetID) Layers {
	x.mu.Lock()
	defer x.mu.Unlock()

	if l, ok := x.ancestors[id]; ok {
		return l
	}

	l := x.bfs(id, x.src.Hypernyms)
	x.ancestors[id] = l

	return l
}

// DescendantLayers returns the BFS layers over hyponym edges.
func (x *Index) DescendantLayers(id taxonomy.SynsetID) Layers {
	x.mu.Lock()
	defer x.mu.Unlock()

	if l, ok := x.descendants[id]; ok {
		return l
	}

	l := x.bfs(id, x.src.Hyponyms)
	x.descendants[id] = l

	return l
}

// bfs expands frontiers until empty. A node reachable at several distances
// appears only in its nearest layer.
func (x *Index) bfs(id taxonomy.SynsetID, edges func(taxonomy.SynsetID) []taxonomy.SynsetID) Layers {
	var layers Layers

	visited := common.NewSet(id)
	frontier := []taxonomy.SynsetID{id}

	for len(frontier) > 0 {
		next := common.NewSet[taxonomy.SynsetID]()

		for _, cur := range frontier {
			for _, n := range x.resolve(cur, edges(cur)) {
				if visited.Add(n) {
					next.Add(n)
				}
			}
		}

		if len(next) == 0 {
			break
		}

		layer := next.Sorted()
		layers = append(layers, layer)
		frontier = layer
	}

	return layers
}

// resolve drops edge targets the source cannot resolve.
func (x *Index) resolve(from taxonomy.SynsetID, ids []taxonomy.SynsetID) []taxonomy.SynsetID {
	out := make([]taxonomy.SynsetID, 0, len(ids))

	for _, id := range ids {
		if _, ok := x.src.Synset(id); !ok {
			x.report(diagnostic.CodeDanglingRelation, from,
				fmt.Sprintf("relation %s -> %s points to an unknown synset", from, id))

			continue
		}

		out = append(out, id)
	}

	return out
}

// report records a warning once per distinct message. Callers hold x.mu.
func (x *Index) report(code string, synset taxonomy.SynsetID, msg string) {
	if x.diags == nil || !x.reported.Add(code+"\x00"+msg) {
		return
	}

	x.diags.AddWarning(code, msg, x.src.Name(), synset)
}
