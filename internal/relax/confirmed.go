package relax

import (
	"maps"

	"taxalign/internal/constraint"
	"taxalign/internal/taxonomy"
)

// Confirmed is the growing table of resolved source→target mappings.
// Entries are never removed or overwritten.
type Confirmed struct {
	m map[taxonomy.SynsetID]taxonomy.SynsetID
}

var _ constraint.Mappings = (*Confirmed)(nil)

// NewConfirmed returns an empty table.
func NewConfirmed() *Confirmed {
	return &Confirmed{m: map[taxonomy.SynsetID]taxonomy.SynsetID{}}
}

// Lookup implements constraint.Mappings.
func (c *Confirmed) Lookup(source taxonomy.SynsetID) (taxonomy.SynsetID, bool) {
	t, ok := c.m[source]
	return t, ok
}

// Len returns the number of confirmed mappings.
func (c *Confirmed) Len() int { return len(c.m) }

// Map returns a copy of the table.
func (c *Confirmed) Map() map[taxonomy.SynsetID]taxonomy.SynsetID {
	return maps.Clone(c.m)
}

// add records source→target unless source is already confirmed.
func (c *Confirmed) add(source, target taxonomy.SynsetID) bool {
	if _, ok := c.m[source]; ok {
		return false
	}

	c.m[source] = target

	return true
}
