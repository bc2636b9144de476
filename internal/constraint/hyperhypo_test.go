package constraint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taxalign/internal/ancestry"
	"taxalign/internal/node"
	"taxalign/internal/taxonomy"
)

const eps = 1e-9

// confirmed is a Mappings backed by a plain map.
type confirmed map[string]string

func (c confirmed) Lookup(s string) (string, bool) {
	t, ok := c[s]
	return t, ok
}

// Source side:
//
//	s-root
//	└── s-animal      s-pet
//	    └── s-dog ────┘ (s-dog has a second parent only in the "pet" variant)
//	        └── s-puppy
func sourceGraph(withPet bool) *taxonomy.Graph {
	dogParents := []string{"s-animal"}
	if withPet {
		dogParents = append(dogParents, "s-pet")
	}

	return taxonomy.NewGraph("src", []taxonomy.Synset{
		{ID: "s-root"},
		{ID: "s-animal", Hypernyms: []string{"s-root"}},
		{ID: "s-pet"},
		{ID: "s-dog", Hypernyms: dogParents},
		{ID: "s-puppy", Hypernyms: []string{"s-dog"}},
	})
}

// Target side:
//
//	t-root
//	├── t-animal
//	│   └── t-dog
//	│       └── t-puppy
//	└── t-thing
//	    └── t-hotdog
func targetGraph() *taxonomy.Graph {
	return taxonomy.NewGraph("tgt", []taxonomy.Synset{
		{ID: "t-root"},
		{ID: "t-animal", Hypernyms: []string{"t-root"}},
		{ID: "t-thing", Hypernyms: []string{"t-root"}},
		{ID: "t-dog", Hypernyms: []string{"t-animal"}},
		{ID: "t-puppy", Hypernyms: []string{"t-dog"}},
		{ID: "t-hotdog", Hypernyms: []string{"t-thing"}},
	})
}

func newEngine(t *testing.T, withPet bool, types ...WeightedType) *HyperHypo {
	t.Helper()

	hh, err := NewHyperHypo(
		ancestry.NewIndex(sourceGraph(withPet), nil),
		ancestry.NewIndex(targetGraph(), nil),
		types, DefaultHeuristic)
	require.NoError(t, err)

	return hh
}

func wt(code string, w float64) WeightedType {
	ht, err := ParseHHType(code)
	if err != nil {
		panic(err)
	}

	return WeightedType{Type: ht, Weight: w}
}

func TestApply_DirectHypernymAnchor(t *testing.T) {
	hh := newEngine(t, false, wt("ii-hyper", 1))
	m := confirmed{"s-animal": "t-animal"}

	n, err := node.New("s-dog", []string{"t-dog", "t-hotdog"})
	require.NoError(t, err)

	NewConstrainer(hh).Score(m, n)

	w := n.Weights()
	assert.Greater(t, w[0], w[1])
	assert.InDelta(t, 1.0, w[0], eps)
	assert.InDelta(t, 0.0, w[1], eps)
	assert.InDelta(t, 1.0, n.Sum(), eps)
	assert.Equal(t, []int{0}, n.Argmax(eps))
}

func TestApply_NoAnchors(t *testing.T) {
	hh := newEngine(t, false, AllWeighted(1)...)

	n, err := node.New("s-dog", []string{"t-dog", "t-hotdog"})
	require.NoError(t, err)

	NewConstrainer(hh).Score(confirmed{}, n)

	assert.Equal(t, []float64{0.5, 0.5}, n.Weights())
	assert.False(t, n.HasChanged(eps))
}

func TestScore_GeometricDecay(t *testing.T) {
	hh := newEngine(t, false, wt("rr-hyper", 1))

	// s-puppy chain: s-dog, s-animal, s-root. t-puppy chain: t-dog, t-animal, t-root.
	near := hh.Score(confirmed{"s-dog": "t-dog"}, "s-puppy", "t-puppy", 0.5)
	mid := hh.Score(confirmed{"s-animal": "t-animal"}, "s-puppy", "t-puppy", 0.5)
	far := hh.Score(confirmed{"s-root": "t-root"}, "s-puppy", "t-puppy", 0.5)

	assert.InDelta(t, 0.5, near, eps)
	assert.InDelta(t, 0.25, mid, eps)
	assert.InDelta(t, 0.125, far, eps)
}

func TestScore_BucketIsMaxDepth(t *testing.T) {
	hh := newEngine(t, false, wt("rr-hyper", 1))

	// Source depth 0 (s-dog) maps to target depth 1 (t-animal): bucket max(0,1)=1.
	got := hh.Score(confirmed{"s-dog": "t-animal"}, "s-puppy", "t-puppy", 0.5)
	assert.InDelta(t, 0.25, got, eps)
}

func TestScore_MultipleHitsAccumulate(t *testing.T) {
	hh := newEngine(t, false, wt("rr-hyper", 2))

	m := confirmed{"s-dog": "t-dog", "s-animal": "t-animal"}
	got := hh.Score(m, "s-puppy", "t-puppy", 0.5)

	// hits (0,0) and (1,1): 2*0.5/1 + 2*0.5/2
	assert.InDelta(t, 1.5, got, eps)
}

func TestScore_ImmediateIgnoresDeeperLayers(t *testing.T) {
	hh := newEngine(t, false, wt("ii-hyper", 1))

	got := hh.Score(confirmed{"s-animal": "t-animal"}, "s-puppy", "t-puppy", 0.5)
	assert.Zero(t, got)
}

func TestScore_AmbiguousChain(t *testing.T) {
	m := confirmed{"s-animal": "t-animal"}

	// s-dog has two parents, so its chain is absent.
	chain := newEngine(t, true, wt("rr-hyper", 1))
	assert.Zero(t, chain.Score(m, "s-dog", "t-dog", 0.5))

	// Direct-parent scoring still applies.
	direct := newEngine(t, true, wt("ii-hyper", 1))
	assert.InDelta(t, 0.5, direct.Score(m, "s-dog", "t-dog", 0.5), eps)

	both := newEngine(t, true, wt("rr-hyper", 1), wt("ii-hyper", 1))
	assert.InDelta(t, 0.5, both.Score(m, "s-dog", "t-dog", 0.5), eps)
}

func TestScore_Hyponyms(t *testing.T) {
	hh := newEngine(t, false, wt("ii-hypo", 1))
	m := confirmed{"s-puppy": "t-puppy"}

	assert.InDelta(t, 0.5, hh.Score(m, "s-dog", "t-dog", 0.5), eps)
	assert.Zero(t, hh.Score(m, "s-dog", "t-hotdog", 0.5))

	rec := newEngine(t, false, wt("rr-hypo", 1))
	// s-animal → s-dog → s-puppy; t-animal → t-dog → t-puppy: hit at (1,1).
	assert.InDelta(t, 0.25, rec.Score(m, "s-animal", "t-animal", 0.5), eps)
}

func TestScore_BothDirections(t *testing.T) {
	hh := newEngine(t, false, wt("ii-both", 1))

	up := confirmed{"s-animal": "t-animal"}
	assert.Zero(t, hh.Score(up, "s-dog", "t-dog", 0.5), "hypernym agreement alone is not enough")

	down := confirmed{"s-puppy": "t-puppy"}
	assert.Zero(t, hh.Score(down, "s-dog", "t-dog", 0.5), "hyponym agreement alone is not enough")

	m := confirmed{"s-animal": "t-animal", "s-puppy": "t-puppy"}
	assert.InDelta(t, 2*DefaultHeuristic, hh.Score(m, "s-dog", "t-dog", 0.5), eps)

	rr := newEngine(t, false, wt("rr-both", 1))
	far := confirmed{"s-root": "t-root", "s-puppy": "t-puppy"}
	// Hyper hit at (1,1) → combined 2; hypo hit at (0,0) → 0.
	assert.InDelta(t, 2*DefaultHeuristic/4, rr.Score(far, "s-dog", "t-dog", 0.5), eps)
}

func TestNewHyperHypo_Validation(t *testing.T) {
	src := ancestry.NewIndex(sourceGraph(false), nil)
	tgt := ancestry.NewIndex(targetGraph(), nil)

	_, err := NewHyperHypo(src, tgt, nil, DefaultHeuristic)
	require.Error(t, err)

	_, err = NewHyperHypo(src, tgt, []WeightedType{wt("ii-hyper", 1), wt("ii-hyper", 2)}, DefaultHeuristic)
	require.Error(t, err)

	_, err = NewHyperHypo(src, tgt, []WeightedType{wt("ii-hyper", -1)}, DefaultHeuristic)
	require.Error(t, err)

	_, err = NewHyperHypo(nil, tgt, []WeightedType{wt("ii-hyper", 1)}, DefaultHeuristic)
	require.Error(t, err)
}

func TestApply_DoesNotMutateLabels(t *testing.T) {
	hh := newEngine(t, false, AllWeighted(1)...)
	m := confirmed{"s-animal": "t-animal", "s-puppy": "t-puppy"}

	n, err := node.New("s-dog", []string{"t-dog", "t-hotdog", "t-thing"})
	require.NoError(t, err)

	before := append([]string(nil), n.Labels()...)
	NewConstrainer(hh).Score(m, n)

	assert.Equal(t, before, n.Labels())
	assert.Len(t, m, 2)
	assert.InDelta(t, 1.0, n.Sum(), eps)
}
