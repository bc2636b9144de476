package relax

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"taxalign/internal/constraint"
)

// Options tune a Relaxer.
type Options struct {
	// MaxRounds caps the number of rounds. Zero means unbounded.
	MaxRounds int
	// Workers is the scoring parallelism. One or less scores sequentially.
	Workers int
	// Logger receives per-round progress. Nil discards it.
	Logger *slog.Logger
}

// Outcome summarizes a Run.
type Outcome struct {
	State     State
	Rounds    int
	Promoted  int
	Shrunk    int
	Converged bool
}

// Relaxer drives a Status to a fixpoint.
type Relaxer struct {
	constrainer *constraint.Constrainer
	opts        Options
	logger      *slog.Logger
}

// New creates a Relaxer scoring nodes with c.
func New(c *constraint.Constrainer, opts Options) *Relaxer {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Relaxer{constrainer: c, opts: opts, logger: logger}
}

// Run executes rounds until convergence, the round cap or cancellation.
// Cancellation is checked between rounds; on cancellation the Status keeps
// every mapping confirmed so far and the context error is returned.
func (r *Relaxer) Run(ctx context.Context, st *Status) (Outcome, error) {
	ctx, span := tracer.Start(ctx, "relax.Run",
		trace.WithAttributes(
			attribute.Int("pending", st.PendingCount()),
			attribute.Int("confirmed", st.Confirmed().Len()),
			attribute.Int("max_rounds", r.opts.MaxRounds),
		),
	)
	defer span.End()

	var out Outcome

	if st.PendingCount() == 0 {
		st.state = Converged
		out.State = Converged
		out.Converged = true

		return out, nil
	}

	for {
		if err := ctx.Err(); err != nil {
			st.finish(Cancelled)
			out.State = st.State()
			span.SetStatus(codes.Error, "cancelled")

			return out, fmt.Errorf("relaxation cancelled after %d rounds: %w", out.Rounds, err)
		}

		if r.opts.MaxRounds > 0 && out.Rounds >= r.opts.MaxRounds {
			st.finish(Capped)
			out.State = st.State()
			r.logger.Warn("round cap reached",
				slog.Int("rounds", out.Rounds),
				slog.Int("pending", st.PendingCount()))

			break
		}

		start := time.Now()

		round, err := st.Step(ctx, r.constrainer, r.opts.Workers)
		if err != nil {
			// A round aborted mid-scoring is discarded; report it as a
			// cancellation when the context caused it.
			if ctx.Err() != nil {
				continue
			}

			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())

			return out, err
		}

		recordRound(ctx, round, time.Since(start))

		out.Rounds++
		out.Promoted += len(round.Promoted)
		out.Shrunk += len(round.Shrunk)

		r.logger.Debug("round complete",
			slog.Int("round", round.Number),
			slog.Int("promoted", len(round.Promoted)),
			slog.Int("shrunk", len(round.Shrunk)),
			slog.Int("pending", st.PendingCount()))

		if !round.Changed() {
			break
		}
	}

	out.State = st.State()
	out.Converged = out.State == Converged

	span.SetAttributes(
		attribute.Int("rounds", out.Rounds),
		attribute.Bool("converged", out.Converged),
	)

	return out, nil
}
