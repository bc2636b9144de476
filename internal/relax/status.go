package relax

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"taxalign/internal/candidate"
	"taxalign/internal/common"
	"taxalign/internal/constraint"
	"taxalign/internal/node"
	"taxalign/internal/taxonomy"
)

// Promotion is a mapping confirmed by a round.
type Promotion struct {
	Source taxonomy.SynsetID
	Target taxonomy.SynsetID
}

// Round records what one round changed.
type Round struct {
	Number   int
	Promoted []Promotion
	Shrunk   []taxonomy.SynsetID
}

// Changed reports whether the round promoted or shrank anything.
func (r Round) Changed() bool {
	return len(r.Promoted) > 0 || len(r.Shrunk) > 0
}

// Status is the alignment state machine.
type Status struct {
	state     State
	confirmed *Confirmed
	pending   map[taxonomy.SynsetID]*node.Node
	order     []taxonomy.SynsetID
	unmapped  []taxonomy.SynsetID
	seeded    int
	rounds    []Round
	eps       float64
}

// NewStatus splits candidates: seeds are confirmed first, then synsets with
// one candidate are confirmed, synsets with several become pending nodes and
// synsets with none are unmapped.
func NewStatus(cands candidate.Set, seeds map[taxonomy.SynsetID]taxonomy.SynsetID, eps float64) (*Status, error) {
	if eps <= 0 {
		eps = node.DefaultEpsilon
	}

	st := &Status{
		state:     Initializing,
		confirmed: NewConfirmed(),
		pending:   map[taxonomy.SynsetID]*node.Node{},
		eps:       eps,
	}

	for _, s := range common.SortedKeys(seeds) {
		if st.confirmed.add(s, seeds[s]) {
			st.seeded++
		}
	}

	for _, id := range common.SortedKeys(cands) {
		if _, ok := st.confirmed.Lookup(id); ok {
			continue
		}

		targets := cands[id]

		switch {
		case common.IsEmpty(targets):
			st.unmapped = append(st.unmapped, id)
		case common.IsSingle(targets):
			st.confirmed.add(id, targets[0])
		default:
			n, err := node.New(id, targets)
			if err != nil {
				return nil, err
			}

			st.pending[id] = n
			st.order = append(st.order, id)
		}
	}

	return st, nil
}

// State returns the current lifecycle state.
func (s *Status) State() State { return s.state }

// Confirmed returns the confirmed mapping table.
func (s *Status) Confirmed() *Confirmed { return s.confirmed }

// Seeded returns how many mappings came from seeds.
func (s *Status) Seeded() int { return s.seeded }

// Unmapped returns source synsets without candidates, in id order.
func (s *Status) Unmapped() []taxonomy.SynsetID { return s.unmapped }

// Rounds returns the records of every completed round.
func (s *Status) Rounds() []Round { return s.rounds }

// PendingCount returns the number of pending nodes.
func (s *Status) PendingCount() int { return len(s.order) }

// Pending returns the pending nodes in source-id order.
func (s *Status) Pending() []*node.Node {
	out := make([]*node.Node, len(s.order))
	for i, id := range s.order {
		out[i] = s.pending[id]
	}

	return out
}

// Node returns the pending node for source, if any.
func (s *Status) Node(source taxonomy.SynsetID) (*node.Node, bool) {
	n, ok := s.pending[source]
	return n, ok
}

// Ambiguous returns the label sets of nodes still pending.
func (s *Status) Ambiguous() map[taxonomy.SynsetID][]taxonomy.SynsetID {
	out := make(map[taxonomy.SynsetID][]taxonomy.SynsetID, len(s.order))
	for _, id := range s.order {
		out[id] = append([]taxonomy.SynsetID(nil), s.pending[id].Labels()...)
	}

	return out
}

// Decide classifies a scored node. For Shrink the returned indices are the
// labels to keep; for Promote it holds the single winning index.
func Decide(n *node.Node, eps float64) (Decision, []int) {
	if !n.HasChanged(eps) {
		return Keep, nil
	}

	best := n.Argmax(eps)

	switch {
	case len(best) == n.Len():
		return Keep, nil
	case len(best) == 1:
		return Promote, best
	default:
		return Shrink, best
	}
}

// Step runs one round. Scoring uses up to workers goroutines (1 or less
// means sequential); decisions are committed only after every node has been
// scored. If ctx is cancelled during scoring the round is discarded and the
// state is left as it was.
func (s *Status) Step(ctx context.Context, c *constraint.Constrainer, workers int) (Round, error) {
	if err := s.score(ctx, c, workers); err != nil {
		return Round{}, err
	}

	round := Round{Number: len(s.rounds) + 1}
	remaining := s.order[:0:0]

	for _, id := range s.order {
		n := s.pending[id]

		decision, keep := Decide(n, s.eps)

		switch decision {
		case Promote:
			target := n.Labels()[keep[0]]
			s.confirmed.add(id, target)
			delete(s.pending, id)
			round.Promoted = append(round.Promoted, Promotion{Source: id, Target: target})

			continue
		case Shrink:
			if err := n.Shrink(keep); err != nil {
				return Round{}, fmt.Errorf("round %d: %w", round.Number, err)
			}

			round.Shrunk = append(round.Shrunk, id)
		case Keep:
		}

		remaining = append(remaining, id)
	}

	s.order = remaining
	s.rounds = append(s.rounds, round)

	if round.Changed() {
		s.state = Relaxing
	} else {
		s.state = Converged
	}

	return round, nil
}

// score is the parallel phase of a round. It reads the confirmed table and
// writes only to each node's own weights.
func (s *Status) score(ctx context.Context, c *constraint.Constrainer, workers int) error {
	if workers <= 1 {
		for _, id := range s.order {
			if err := ctx.Err(); err != nil {
				return err
			}

			c.Score(s.confirmed, s.pending[id])
		}

		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, id := range s.order {
		n := s.pending[id]

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			c.Score(s.confirmed, n)

			return nil
		})
	}

	return g.Wait()
}

// finish marks a stop that was not a fixpoint.
func (s *Status) finish(state State) {
	if s.state != Converged {
		s.state = state
	}
}
