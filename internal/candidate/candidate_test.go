package candidate

import (
	"reflect"
	"testing"

	"taxalign/internal/taxonomy"
)

func englishGraph() *taxonomy.Graph {
	return taxonomy.NewGraph("en", []taxonomy.Synset{
		{ID: "en-dog", Lemmas: []string{"dog", "domestic_dog"}},
		{ID: "en-hotdog", Lemmas: []string{"hot_dog", "frank"}},
		{ID: "en-bank-river", Lemmas: []string{"bank"}},
		{ID: "en-bank-money", Lemmas: []string{"bank", "banking_company"}},
		{ID: "en-quark", Lemmas: []string{"quark"}},
	})
}

func spanishGraph() *taxonomy.Graph {
	return taxonomy.NewGraph("es", []taxonomy.Synset{
		{ID: "es-perro", Lemmas: []string{"perro", "can"}},
		{ID: "es-perrito", Lemmas: []string{"perrito_caliente"}},
		{ID: "es-orilla", Lemmas: []string{"orilla", "ribera"}},
		{ID: "es-banco", Lemmas: []string{"banco"}},
		{ID: "es-banco-asiento", Lemmas: []string{"banco"}},
	})
}

func TestGenerate(t *testing.T) {
	dict := taxonomy.NewMapDictionary(map[string][]string{
		"dog":             {"perro"},
		"domestic dog":    {"can"},
		"hot dog":         {"perrito_caliente"},
		"bank":            {"orilla", "banco"},
		"banking company": {"banco"},
	})

	gen := NewGenerator(
		taxonomy.BuildLemmaIndex(englishGraph()),
		taxonomy.BuildLemmaIndex(spanishGraph()),
		dict,
	)
	res := gen.Generate()

	expected := Set{
		"en-dog":        {"es-perro"},
		"en-hotdog":     {"es-perrito"},
		"en-bank-river": {"es-banco", "es-banco-asiento", "es-orilla"},
		"en-bank-money": {"es-banco", "es-banco-asiento", "es-orilla"},
		"en-quark":      {},
	}

	if !reflect.DeepEqual(res.Set, expected) {
		t.Errorf("Generate().Set = %v, want %v", res.Set, expected)
	}

	none, single, multiple := res.Counts()
	if none != 1 || single != 2 || multiple != 2 {
		t.Errorf("Counts() = %d/%d/%d, want 1/2/2", none, single, multiple)
	}

	cov := res.Coverage
	// dog, domestic dog, hot dog, frank, bank, banking company, quark
	if cov.TotalLemmas != 7 {
		t.Errorf("TotalLemmas = %d, want 7", cov.TotalLemmas)
	}

	if cov.TranslatedLemmas != 5 {
		t.Errorf("TranslatedLemmas = %d, want 5", cov.TranslatedLemmas)
	}

	if cov.ReachedTargets != 5 || cov.TotalTargets != 5 {
		t.Errorf("Reached/Total targets = %d/%d, want 5/5", cov.ReachedTargets, cov.TotalTargets)
	}

	if cov.TargetRatio() != 1.0 {
		t.Errorf("TargetRatio() = %f, want 1", cov.TargetRatio())
	}
}

func TestGenerate_IdentityDictionary(t *testing.T) {
	g := englishGraph()
	idx := taxonomy.BuildLemmaIndex(g)

	res := NewGenerator(idx, idx, nil).Generate()

	// Every synset reaches at least itself.
	for _, id := range g.All() {
		found := false

		for _, c := range res.Set[id] {
			if c == id {
				found = true
			}
		}

		if !found {
			t.Errorf("synset %s is not its own candidate: %v", id, res.Set[id])
		}
	}

	if got := res.Set["en-bank-river"]; len(got) != 2 {
		t.Errorf("polysemous lemma should reach both senses, got %v", got)
	}
}

func TestGenerate_Determinism(t *testing.T) {
	dict := taxonomy.NewMapDictionary(map[string][]string{"bank": {"orilla", "banco"}})
	src := taxonomy.BuildLemmaIndex(englishGraph())
	tgt := taxonomy.BuildLemmaIndex(spanishGraph())

	first := NewGenerator(src, tgt, dict).Generate()
	for i := 0; i < 10; i++ {
		next := NewGenerator(src, tgt, dict).Generate()
		if !reflect.DeepEqual(first, next) {
			t.Fatalf("run %d differs: %v vs %v", i, first, next)
		}
	}
}

func TestCoverage_EmptyRatios(t *testing.T) {
	var c Coverage
	if c.LemmaRatio() != 0 || c.TargetRatio() != 0 {
		t.Errorf("empty coverage ratios should be 0")
	}
}
