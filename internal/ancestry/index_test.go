package ancestry

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taxalign/internal/diagnostic"
	"taxalign/internal/taxonomy"
)

// tree:
//
//	root
//	├── animal
//	│   ├── dog
//	│   │   └── puppy
//	│   └── cat
//	└── artifact
//	    └── robodog (also under dog)
func sampleGraph() *taxonomy.Graph {
	return taxonomy.NewGraph("t", []taxonomy.Synset{
		{ID: "root", Lemmas: []string{"entity"}},
		{ID: "animal", Lemmas: []string{"animal"}, Hypernyms: []string{"root"}},
		{ID: "artifact", Lemmas: []string{"artifact"}, Hypernyms: []string{"root"}},
		{ID: "dog", Lemmas: []string{"dog"}, Hypernyms: []string{"animal"}},
		{ID: "cat", Lemmas: []string{"cat"}, Hypernyms: []string{"animal"}},
		{ID: "puppy", Lemmas: []string{"puppy"}, Hypernyms: []string{"dog"}},
		{ID: "robodog", Lemmas: []string{"robodog"}, Hypernyms: []string{"artifact", "dog"}},
	})
}

func TestChain(t *testing.T) {
	x := NewIndex(sampleGraph(), nil)

	tests := []struct {
		id       string
		expected []string
	}{
		{"puppy", []string{"dog", "animal", "root"}},
		{"dog", []string{"animal", "root"}},
		{"root", nil},
		{"robodog", nil}, // two parents: ambiguous
		{"unknown", nil},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.expected, x.Chain(tt.id))
		})
	}
}

func TestChain_DivergesHigherUp(t *testing.T) {
	g := taxonomy.NewGraph("t", []taxonomy.Synset{
		{ID: "a"}, {ID: "b"},
		{ID: "mid", Hypernyms: []string{"a", "b"}},
		{ID: "leaf", Hypernyms: []string{"mid"}},
	})

	x := NewIndex(g, nil)
	assert.Nil(t, x.Chain("leaf"))
}

func TestChainLayers(t *testing.T) {
	x := NewIndex(sampleGraph(), nil)

	assert.Equal(t, Layers{{"dog"}, {"animal"}, {"root"}}, x.ChainLayers("puppy"))
	assert.Nil(t, x.ChainLayers("robodog"))
}

func TestAncestorLayers(t *testing.T) {
	x := NewIndex(sampleGraph(), nil)

	layers := x.AncestorLayers("robodog")
	require.Equal(t, 2, layers.Depth())
	assert.Equal(t, Layer{"artifact", "dog"}, layers[0])
	// root is reachable through artifact at depth 1 and through dog at depth 2;
	// it appears only in the nearest layer.
	assert.Equal(t, Layer{"animal", "root"}, layers[1])
}

func TestDescendantLayers(t *testing.T) {
	x := NewIndex(sampleGraph(), nil)

	layers := x.DescendantLayers("root")
	require.Equal(t, 3, layers.Depth())
	assert.Equal(t, Layer{"animal", "artifact"}, layers[0])
	assert.Equal(t, Layer{"cat", "dog", "robodog"}, layers[1])
	assert.Equal(t, Layer{"puppy"}, layers[2])

	assert.Empty(t, x.DescendantLayers("puppy"))
}

func TestLayers_HyponymOnlyEdges(t *testing.T) {
	g := taxonomy.NewGraph("t", []taxonomy.Synset{
		{ID: "animal", Lemmas: []string{"animal"}, Hyponyms: []string{"dog"}},
		{ID: "dog", Lemmas: []string{"dog"}},
	})
	x := NewIndex(g, nil)

	assert.Equal(t, Layers{{"dog"}}, x.DescendantLayers("animal"))
	assert.Equal(t, Layers{{"animal"}}, x.AncestorLayers("dog"))
	assert.Equal(t, []string{"animal"}, x.Chain("dog"))
}

func TestLayers_Cycle(t *testing.T) {
	g := taxonomy.NewGraph("t", []taxonomy.Synset{
		{ID: "a", Hypernyms: []string{"c"}},
		{ID: "b", Hypernyms: []string{"a"}},
		{ID: "c", Hypernyms: []string{"b"}},
	})

	diags := &diagnostic.Diagnostics{}
	x := NewIndex(g, diags)

	layers := x.AncestorLayers("a")
	assert.Equal(t, Layers{{"c"}, {"b"}}, layers)
	assert.Equal(t, Layers{{"b"}, {"c"}}, x.DescendantLayers("a"))

	assert.Nil(t, x.Chain("a"))
	assert.Len(t, diags.ByCode(diagnostic.CodeRelationCycle), 1)
}

func TestDanglingRelation(t *testing.T) {
	g := taxonomy.NewGraph("t", []taxonomy.Synset{
		{ID: "root"},
		{ID: "leaf", Hypernyms: []string{"root", "ghost"}},
	})

	diags := &diagnostic.Diagnostics{}
	x := NewIndex(g, diags)

	require.NotPanics(t, func() {
		assert.Equal(t, Layers{{"root"}}, x.AncestorLayers("leaf"))
	})

	// The dangling parent is dropped, so the chain is unambiguous.
	assert.Equal(t, []string{"root"}, x.Chain("leaf"))

	warnings := diags.ByCode(diagnostic.CodeDanglingRelation)
	require.Len(t, warnings, 1, "dangling edge is reported once")
	assert.Equal(t, "leaf", warnings[0].Synset)
	assert.Equal(t, "t", warnings[0].Taxonomy)
}

func TestIndex_Memoized(t *testing.T) {
	x := NewIndex(sampleGraph(), nil)

	first := x.AncestorLayers("puppy")
	second := x.AncestorLayers("puppy")
	require.NotEmpty(t, first)
	assert.Same(t, &first[0][0], &second[0][0])
}

func TestIndex_ConcurrentAccess(t *testing.T) {
	x := NewIndex(sampleGraph(), &diagnostic.Diagnostics{})
	ids := sampleGraph().All()

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for _, id := range ids {
				x.Chain(id)
				x.AncestorLayers(id)
				x.DescendantLayers(id)
			}
		}()
	}

	wg.Wait()

	assert.Equal(t, Layers{{"dog"}, {"animal"}, {"root"}}, x.AncestorLayers("puppy"))
}

func TestLayer_Contains(t *testing.T) {
	l := Layer{"a", "b"}
	assert.True(t, l.Contains("b"))
	assert.False(t, l.Contains("c"))
}
