package constraint

import (
	"errors"
	"fmt"
	"math"

	"taxalign/internal/ancestry"
	"taxalign/internal/node"
	"taxalign/internal/taxonomy"
)

// DefaultHeuristic is the base contribution of a both-direction match.
const DefaultHeuristic = 0.1

// hit records structural agreement between source depth i and target depth j.
type hit struct {
	i, j int
}

// single is the bucket used by hyper-only and hypo-only types.
func (h hit) single() int { return max(h.i, h.j) }

// combined is the bucket used by both-direction types.
func (h hit) combined() int { return h.i + h.j }

// HyperHypo scores labels by agreement between confirmed neighbours of the
// source synset and the label's own ancestors or descendants.
type HyperHypo struct {
	source    *ancestry.Index
	target    *ancestry.Index
	types     []WeightedType
	heuristic float64
}

var _ Constraint = (*HyperHypo)(nil)

// NewHyperHypo builds the constraint. At least one type must be enabled,
// each at most once, with a finite non-negative weight.
func NewHyperHypo(source, target *ancestry.Index, types []WeightedType, heuristic float64) (*HyperHypo, error) {
	if source == nil || target == nil {
		return nil, errors.New("hyperhypo: source and target ancestry indexes are required")
	}

	if len(types) == 0 {
		return nil, errors.New("hyperhypo: no HH types enabled")
	}

	seen := map[HHType]bool{}

	for _, wt := range types {
		if seen[wt.Type] {
			return nil, fmt.Errorf("hyperhypo: type %s enabled twice", wt.Type)
		}

		seen[wt.Type] = true

		if wt.Weight < 0 || math.IsNaN(wt.Weight) || math.IsInf(wt.Weight, 0) {
			return nil, fmt.Errorf("hyperhypo: type %s has invalid weight %v", wt.Type, wt.Weight)
		}
	}

	return &HyperHypo{
		source:    source,
		target:    target,
		types:     types,
		heuristic: heuristic,
	}, nil
}

// Name implements Constraint.
func (h *HyperHypo) Name() string { return "hyperhypo" }

// Types returns the enabled HH types.
func (h *HyperHypo) Types() []WeightedType { return h.types }

// Apply implements Constraint. Each label receives one AddWeight call with
// the summed contribution of every enabled type.
func (h *HyperHypo) Apply(m Mappings, n *node.Node) {
	avg := n.AvgWeight()

	for idx, label := range n.Labels() {
		delta := h.Score(m, n.Source(), label, avg)
		n.AddWeight(idx, delta)
	}
}

// Score returns the summed contribution of every enabled type for mapping
// source onto label, given the node's current average weight.
func (h *HyperHypo) Score(m Mappings, source, label taxonomy.SynsetID, avg float64) float64 {
	var total float64

	for _, wt := range h.types {
		total += h.contribution(m, wt, source, label, avg)
	}

	return total
}

func (h *HyperHypo) contribution(m Mappings, wt WeightedType, source, label taxonomy.SynsetID, avg float64) float64 {
	t := wt.Type

	switch t.Direction {
	case Hyper, Hypo:
		hits := tally(m,
			h.layers(h.source, source, t.Source, t.Direction),
			h.layers(h.target, label, t.Target, t.Direction))

		var sum float64
		for _, ht := range hits {
			sum += wt.Weight * avg / math.Exp2(float64(ht.single()))
		}

		return sum

	case Both:
		up := tally(m,
			h.layers(h.source, source, t.Source, Hyper),
			h.layers(h.target, label, t.Target, Hyper))
		if len(up) == 0 {
			return 0
		}

		down := tally(m,
			h.layers(h.source, source, t.Source, Hypo),
			h.layers(h.target, label, t.Target, Hypo))
		if len(down) == 0 {
			return 0
		}

		d := nearestCombined(up) + nearestCombined(down)

		return wt.Weight * 2 * h.heuristic / math.Exp2(float64(d))
	}

	return 0
}

// layers selects the structure compared for one side of an HH type.
func (h *HyperHypo) layers(x *ancestry.Index, id taxonomy.SynsetID, r Recursion, d Direction) ancestry.Layers {
	switch {
	case d == Hyper && r == Recursive:
		return x.ChainLayers(id)
	case d == Hyper:
		return firstLayer(x.AncestorLayers(id))
	case r == Recursive:
		return x.DescendantLayers(id)
	default:
		return firstLayer(x.DescendantLayers(id))
	}
}

func firstLayer(l ancestry.Layers) ancestry.Layers {
	if len(l) == 0 {
		return nil
	}

	return l[:1]
}

// tally returns one hit per (i, j) such that some synset in source layer i
// is confirmed onto a synset in target layer j.
func tally(m Mappings, source, target ancestry.Layers) []hit {
	if len(source) == 0 || len(target) == 0 {
		return nil
	}

	var hits []hit

	for i, sl := range source {
		var mapped []taxonomy.SynsetID

		for _, s := range sl {
			if t, ok := m.Lookup(s); ok {
				mapped = append(mapped, t)
			}
		}

		if len(mapped) == 0 {
			continue
		}

		for j, tl := range target {
			for _, t := range mapped {
				if tl.Contains(t) {
					hits = append(hits, hit{i: i, j: j})
					break
				}
			}
		}
	}

	return hits
}

func nearestCombined(hits []hit) int {
	best := math.MaxInt
	for _, h := range hits {
		best = min(best, h.combined())
	}

	return best
}
