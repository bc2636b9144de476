package relax

//go:generate go tool stringer -type=State,Decision -output=state_string.go

// State is the lifecycle state of a Status.
type State int

const (
	// Initializing means candidates have not been split yet.
	Initializing State = iota
	// Relaxing means at least one round ran and more may follow.
	Relaxing
	// Converged means the last round changed nothing.
	Converged
	// Capped means the round limit was reached before convergence.
	Capped
	// Cancelled means the caller stopped the run between rounds.
	Cancelled
)

// Decision is the per-node outcome of a round's commit phase.
type Decision int

const (
	// Keep leaves the node pending with its labels unchanged.
	Keep Decision = iota
	// Shrink narrows the node to its tied maxima.
	Shrink
	// Promote confirms the single maximum label.
	Promote
)
