package taxonomy

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"taxalign/internal/common"
)

// Dictionary translates a source-language lemma into target-language lemmas.
// Implementations receive and return normalized lemmas.
type Dictionary interface {
	Translate(lemma string) []string
}

// Identity translates every lemma to itself (monolingual alignment).
type Identity struct{}

// Translate implements Dictionary.
func (Identity) Translate(lemma string) []string { return []string{lemma} }

// MapDictionary is a bilingual dictionary backed by a lemma table.
// An empty MapDictionary behaves like Identity.
type MapDictionary struct {
	entries map[string][]string
}

// NewMapDictionary builds a dictionary; keys and values are normalized and
// duplicate translations collapsed.
func NewMapDictionary(entries map[string][]string) *MapDictionary {
	d := &MapDictionary{entries: make(map[string][]string, len(entries))}

	for src, targets := range entries {
		key := NormalizeLemma(src)
		if key == "" {
			continue
		}

		for _, t := range targets {
			if nt := NormalizeLemma(t); nt != "" {
				d.entries[key] = append(d.entries[key], nt)
			}
		}
	}

	for k, v := range d.entries {
		d.entries[k] = common.SortedUnique(v)
	}

	return d
}

// Translate implements Dictionary.
func (d *MapDictionary) Translate(lemma string) []string {
	if d == nil || len(d.entries) == 0 {
		return []string{lemma}
	}

	return d.entries[lemma]
}

// Len returns the number of source lemmas with a translation.
func (d *MapDictionary) Len() int {
	if d == nil {
		return 0
	}

	return len(d.entries)
}

// dictionaryFile is the on-disk representation of a MapDictionary.
type dictionaryFile struct {
	Entries map[string][]string `yaml:"entries"`
}

// LoadDictionaryFile loads a YAML dictionary:
//
//	entries:
//	  dog: [perro, can]
//	  cat: gato
func LoadDictionaryFile(path string) (*MapDictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dictionary file %s: %w", path, err)
	}

	return ParseDictionary(data)
}

// ParseDictionary parses YAML data into a MapDictionary. Translation values
// may be a single string or a list.
func ParseDictionary(data []byte) (*MapDictionary, error) {
	var raw struct {
		Entries map[string]yaml.Node `yaml:"entries"`
	}

	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse dictionary YAML: %w", err)
	}

	f := dictionaryFile{Entries: make(map[string][]string, len(raw.Entries))}

	for lemma, node := range raw.Entries {
		switch node.Kind {
		case yaml.ScalarNode:
			f.Entries[lemma] = []string{node.Value}
		case yaml.SequenceNode:
			var arr []string
			if err := node.Decode(&arr); err != nil {
				return nil, fmt.Errorf("entry %q: %w", lemma, err)
			}

			f.Entries[lemma] = arr
		default:
			return nil, fmt.Errorf("entry %q: expected string or array, got %v", lemma, node.Kind)
		}
	}

	return NewMapDictionary(f.Entries), nil
}
