package taxonomy

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the on-disk representation of a taxonomy.
type File struct {
	Name          string                           `yaml:"name"`
	Synsets       []Synset                         `yaml:"synsets"`
	KnownMappings map[string]map[SynsetID]SynsetID `yaml:"known_mappings,omitempty"`
}

// ErrEmptyID is returned when a synset entry has no id.
var ErrEmptyID = errors.New("synset id is empty")

// LoadFile loads and parses a YAML taxonomy file from the given path.
func LoadFile(path string) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read taxonomy file %s: %w", path, err)
	}

	g, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// Parse parses YAML data into a Graph.
func Parse(data []byte) (*Graph, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse taxonomy YAML: %w", err)
	}

	return f.Graph()
}

// Graph validates the file and builds the in-memory taxonomy.
func (f *File) Graph() (*Graph, error) {
	for i, s := range f.Synsets {
		if s.ID == "" {
			return nil, fmt.Errorf("synset #%d: %w", i, ErrEmptyID)
		}
	}

	name := f.Name
	if name == "" {
		name = "taxonomy"
	}

	g := NewGraph(name, f.Synsets)
	for other, m := range f.KnownMappings {
		g.WithKnownMappings(other, m)
	}

	return g, nil
}

// Marshal serializes a Graph back to YAML.
func Marshal(g *Graph) ([]byte, error) {
	f := File{Name: g.Name(), KnownMappings: g.known}
	for _, id := range g.All() {
		s, _ := g.Synset(id)
		f.Synsets = append(f.Synsets, *s)
	}

	return yaml.Marshal(&f)
}
