package align

import (
	"log/slog"

	"taxalign/internal/candidate"
	"taxalign/internal/diagnostic"
	"taxalign/internal/relax"
	"taxalign/internal/taxonomy"
)

// Result is the outcome of one alignment run.
type Result struct {
	// RunID uniquely identifies the run.
	RunID  string
	Source string
	Target string
	// Confirmed maps source ids to their resolved target ids.
	Confirmed map[taxonomy.SynsetID]taxonomy.SynsetID
	// Ambiguous holds the remaining labels of nodes that never resolved.
	Ambiguous map[taxonomy.SynsetID][]taxonomy.SynsetID
	// Unmapped lists source synsets without any candidate.
	Unmapped []taxonomy.SynsetID
	// Seeded counts confirmed mappings that came from known mappings or
	// anchors rather than candidates or relaxation.
	Seeded    int
	Rounds    int
	Converged bool
	State     relax.State
	// CacheHit reports whether candidates came from the memo store.
	CacheHit    bool
	Coverage    candidate.Coverage
	Diagnostics diagnostic.Diagnostics
}

// Option configures an Aligner.
type Option func(*Aligner)

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(a *Aligner) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithStore memoizes candidate generation in s.
func WithStore(s candidate.Store) Option {
	return func(a *Aligner) { a.store = s }
}

// WithAnchors seeds the run with caller-supplied mappings.
func WithAnchors(m map[taxonomy.SynsetID]taxonomy.SynsetID) Option {
	return func(a *Aligner) { a.anchors = m }
}
