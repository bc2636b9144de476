package node

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"taxalign/internal/taxonomy"
)

// DefaultEpsilon is the tolerance used for tie and change detection.
const DefaultEpsilon = 1e-9

// ErrTooFewLabels is returned when a node would hold fewer than two labels.
var ErrTooFewLabels = errors.New("node needs at least two labels")

// Node is a pending source synset with its candidate labels and weights.
type Node struct {
	source  taxonomy.SynsetID
	labels  []taxonomy.SynsetID
	weights []float64
}

// New creates a node with uniform weights.
func New(source taxonomy.SynsetID, labels []taxonomy.SynsetID) (*Node, error) {
	if len(labels) < 2 {
		return nil, fmt.Errorf("%s: %w", source, ErrTooFewLabels)
	}

	n := &Node{
		source:  source,
		labels:  slices.Clone(labels),
		weights: make([]float64, len(labels)),
	}
	n.Reset()

	return n, nil
}

// Source returns the source synset id.
func (n *Node) Source() taxonomy.SynsetID { return n.source }

// Labels returns the current labels. Callers must not modify the slice.
func (n *Node) Labels() []taxonomy.SynsetID { return n.labels }

// Weights returns a copy of the current weights.
func (n *Node) Weights() []float64 { return slices.Clone(n.weights) }

// Len returns the number of labels.
func (n *Node) Len() int { return len(n.labels) }

// AvgWeight returns 1/len(labels).
func (n *Node) AvgWeight() float64 { return 1 / float64(len(n.labels)) }

// Reset sets every weight to AvgWeight.
func (n *Node) Reset() {
	avg := n.AvgWeight()
	for i := range n.weights {
		n.weights[i] = avg
	}
}

// AddWeight moves amount onto label idx. Every weight first loses
// amount/(n-1), then idx gains amount/(n-1)+amount, so idx nets +amount,
// the others net -amount/(n-1), and the sum is unchanged.
func (n *Node) AddWeight(idx int, amount float64) {
	sub := amount / float64(len(n.weights)-1)

	for i := range n.weights {
		n.weights[i] -= sub
	}

	n.weights[idx] += sub + amount
}

// Sum returns the total weight; 1 up to rounding.
func (n *Node) Sum() float64 {
	var s float64
	for _, w := range n.weights {
		s += w
	}

	return s
}

// HasChanged reports whether any weight differs from AvgWeight by more
// than eps. A vector perturbed and brought back to uniform counts as
// unchanged.
func (n *Node) HasChanged(eps float64) bool {
	avg := n.AvgWeight()
	for _, w := range n.weights {
		if math.Abs(w-avg) > eps {
			return true
		}
	}

	return false
}

// Argmax returns the indices whose weight is within eps of the maximum,
// in label order.
func (n *Node) Argmax(eps float64) []int {
	best := math.Inf(-1)
	for _, w := range n.weights {
		best = max(best, w)
	}

	var out []int

	for i, w := range n.weights {
		if w >= best-eps {
			out = append(out, i)
		}
	}

	return out
}

// Shrink keeps only the labels at the given indices and resets weights.
// It never adds labels and refuses to go below two.
func (n *Node) Shrink(keep []int) error {
	if len(keep) < 2 {
		return fmt.Errorf("%s: shrink to %d: %w", n.source, len(keep), ErrTooFewLabels)
	}

	labels := make([]taxonomy.SynsetID, 0, len(keep))

	for _, i := range keep {
		if i < 0 || i >= len(n.labels) {
			return fmt.Errorf("%s: label index %d out of range", n.source, i)
		}

		labels = append(labels, n.labels[i])
	}

	n.labels = labels
	n.weights = make([]float64, len(labels))
	n.Reset()

	return nil
}

// String implements fmt.Stringer for debugging output.
func (n *Node) String() string {
	return fmt.Sprintf("%s%v%v", n.source, n.labels, n.weights)
}
