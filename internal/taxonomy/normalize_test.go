package taxonomy

import "testing"

func TestNormalizeLemma(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"dog", "dog"},
		{"Dog", "dog"},
		{"hot_dog", "hot dog"},
		{"Hot-Dog", "hot dog"},
		{"  part-of--speech ", "part of speech"},
		{"a\t_b", "a b"},
		{"", ""},
		{"___", ""},
		// Decomposed "é" composes to the same key as the precomposed form.
		{"cafe\u0301", "caf\u00e9"},
		{"CAF\u00c9", "caf\u00e9"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := NormalizeLemma(tt.input); got != tt.expected {
				t.Errorf("NormalizeLemma(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestBuildLemmaIndex(t *testing.T) {
	g := NewGraph("t", []Synset{
		{ID: "s1", Lemmas: []string{"Bank", "depository_financial_institution"}},
		{ID: "s2", Lemmas: []string{"bank"}},
		{ID: "s3", Lemmas: []string{"  "}},
	})

	idx := BuildLemmaIndex(g)

	if got := idx.SynsetsOf("bank"); len(got) != 2 || got[0] != "s1" || got[1] != "s2" {
		t.Errorf("SynsetsOf(bank) = %v, want [s1 s2]", got)
	}

	if got := idx.LemmasOf("s1"); len(got) != 2 || got[0] != "bank" {
		t.Errorf("LemmasOf(s1) = %v", got)
	}

	if got := idx.LemmasOf("s3"); len(got) != 0 {
		t.Errorf("LemmasOf(s3) = %v, want empty", got)
	}

	if got := idx.Synsets(); len(got) != 3 {
		t.Errorf("Synsets() = %v, want 3 entries", got)
	}
}
