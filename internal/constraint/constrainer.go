package constraint

import "taxalign/internal/node"

// Constrainer applies every enabled constraint to a node. Contributions are
// additive, so constraint order does not matter.
type Constrainer struct {
	constraints []Constraint
}

// NewConstrainer creates a Constrainer over the given constraints.
func NewConstrainer(constraints ...Constraint) *Constrainer {
	return &Constrainer{constraints: constraints}
}

// Score resets n and applies every constraint to it. It touches only n.
func (c *Constrainer) Score(m Mappings, n *node.Node) {
	n.Reset()

	for _, con := range c.constraints {
		con.Apply(m, n)
	}
}
