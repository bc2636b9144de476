package align

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"taxalign/internal/taxonomy"
)

// LoadAnchorsFile reads a YAML map of source id to target id.
func LoadAnchorsFile(path string) (map[taxonomy.SynsetID]taxonomy.SynsetID, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read anchors file %s: %w", path, err)
	}

	return ParseAnchors(data)
}

// ParseAnchors parses a YAML map of source id to target id.
func ParseAnchors(data []byte) (map[taxonomy.SynsetID]taxonomy.SynsetID, error) {
	var m map[taxonomy.SynsetID]taxonomy.SynsetID

	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse anchors YAML: %w", err)
	}

	for s, t := range m {
		if s == "" || t == "" {
			return nil, fmt.Errorf("anchor %q -> %q: %w", s, t, taxonomy.ErrEmptyID)
		}
	}

	return m, nil
}
