package align

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"taxalign/internal/ancestry"
	"taxalign/internal/candidate"
	"taxalign/internal/common"
	"taxalign/internal/config"
	"taxalign/internal/constraint"
	"taxalign/internal/diagnostic"
	"taxalign/internal/relax"
	"taxalign/internal/taxonomy"
)

// Aligner aligns a source taxonomy to a target taxonomy.
type Aligner struct {
	cfg     config.Config
	logger  *slog.Logger
	store   candidate.Store
	anchors map[taxonomy.SynsetID]taxonomy.SynsetID
}

// New creates an Aligner. The config is validated by Align.
func New(cfg config.Config, opts ...Option) *Aligner {
	a := &Aligner{cfg: cfg, logger: slog.Default()}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Align runs the pipeline. A nil dict aligns by identity. On cancellation
// the partial result is returned together with the wrapped context error.
func (a *Aligner) Align(ctx context.Context, src, tgt taxonomy.Source, dict taxonomy.Dictionary) (*Result, error) {
	if err := a.cfg.Validate(); err != nil {
		return nil, err
	}

	types, err := a.cfg.WeightedTypes()
	if err != nil {
		return nil, err
	}

	if dict == nil {
		dict = taxonomy.Identity{}
	}

	res := &Result{
		RunID:  uuid.NewString(),
		Source: src.Name(),
		Target: tgt.Name(),
	}

	log := a.logger.With(slog.String("run_id", res.RunID))

	srcLemmas := taxonomy.BuildLemmaIndex(src)
	tgtLemmas := taxonomy.BuildLemmaIndex(tgt)

	cands, err := a.candidates(log, src, tgt, dict, srcLemmas, tgtLemmas)
	if err != nil {
		return nil, err
	}

	res.CacheHit = cands.hit
	res.Coverage = cands.Coverage

	none, single, multiple := cands.Counts()
	log.Info("candidates generated",
		slog.Int("unmapped", none),
		slog.Int("monosemous", single),
		slog.Int("polysemous", multiple),
		slog.Bool("cache_hit", cands.hit),
		slog.Float64("lemma_coverage", cands.Coverage.LemmaRatio()))

	seeds := a.seeds(src, tgt, &res.Diagnostics)

	// One diagnostics sink per index: both are written under their own
	// lock from parallel scorers.
	var srcDiags, tgtDiags diagnostic.Diagnostics

	hh, err := constraint.NewHyperHypo(
		ancestry.NewIndex(src, &srcDiags),
		ancestry.NewIndex(tgt, &tgtDiags),
		types, a.cfg.Heuristic)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", config.ErrInvalid, err)
	}

	status, err := relax.NewStatus(cands.Set, seeds, a.cfg.TieEpsilon)
	if err != nil {
		return nil, err
	}

	relaxer := relax.New(constraint.NewConstrainer(hh), relax.Options{
		MaxRounds: a.cfg.MaxRounds,
		Workers:   a.cfg.Workers,
		Logger:    log,
	})

	outcome, runErr := relaxer.Run(ctx, status)

	res.Diagnostics.Merge(srcDiags)
	res.Diagnostics.Merge(tgtDiags)

	res.Confirmed = status.Confirmed().Map()
	res.Ambiguous = status.Ambiguous()
	res.Unmapped = status.Unmapped()
	res.Seeded = status.Seeded()
	res.Rounds = outcome.Rounds
	res.Converged = outcome.Converged
	res.State = status.State()

	a.suggest(src, dict, tgtLemmas, res)

	if !res.Converged {
		res.Diagnostics.AddWarning(diagnostic.CodeNotConverged,
			fmt.Sprintf("stopped after %d rounds in state %s with %d pending synsets",
				res.Rounds, res.State, len(res.Ambiguous)),
			res.Source, "")
	}

	log.Info("alignment finished",
		slog.String("state", res.State.String()),
		slog.Int("rounds", res.Rounds),
		slog.Int("confirmed", len(res.Confirmed)),
		slog.Int("ambiguous", len(res.Ambiguous)),
		slog.Int("unmapped", len(res.Unmapped)),
		slog.Int("warnings", len(res.Diagnostics.Warnings)))

	if runErr != nil {
		return res, fmt.Errorf("align %s to %s: %w", res.Source, res.Target, runErr)
	}

	return res, nil
}

type candidateRun struct {
	*candidate.Result
	hit bool
}

// candidates generates candidate sets, consulting the memo store when one
// is set. Store failures are logged and generation falls back to a direct
// build.
func (a *Aligner) candidates(
	log *slog.Logger,
	src, tgt taxonomy.Source,
	dict taxonomy.Dictionary,
	srcLemmas, tgtLemmas *taxonomy.LemmaIndex,
) (candidateRun, error) {
	build := func() *candidate.Result {
		return candidate.NewGenerator(srcLemmas, tgtLemmas, dict).Generate()
	}

	if a.store == nil {
		return candidateRun{Result: build()}, nil
	}

	key := candidate.Key(src, tgt, dict)
	if key == "" {
		log.Debug("dictionary cannot be fingerprinted, skipping candidate cache")
		return candidateRun{Result: build()}, nil
	}

	r, hit, err := candidate.Cached(a.store, key, build)
	if err != nil {
		log.Warn("candidate cache unavailable", slog.String("error", err.Error()))
		return candidateRun{Result: build()}, nil
	}

	return candidateRun{Result: r, hit: hit}, nil
}

// seeds merges the source's known mappings to the target with the explicit
// anchors. Known mappings win over conflicting anchors; entries naming
// unknown synsets are dropped with a warning.
func (a *Aligner) seeds(src, tgt taxonomy.Source, diags *diagnostic.Diagnostics) map[taxonomy.SynsetID]taxonomy.SynsetID {
	out := map[taxonomy.SynsetID]taxonomy.SynsetID{}

	add := func(s, t taxonomy.SynsetID, origin string) {
		if _, ok := src.Synset(s); !ok {
			diags.AddWarning(diagnostic.CodeUnknownAnchor,
				fmt.Sprintf("%s mapping names unknown source synset", origin), src.Name(), s)

			return
		}

		if _, ok := tgt.Synset(t); !ok {
			diags.AddWarning(diagnostic.CodeUnknownAnchor,
				fmt.Sprintf("%s mapping names unknown target synset %s", origin, t), src.Name(), s)

			return
		}

		if prev, ok := out[s]; ok {
			if prev != t {
				diags.AddWarning(diagnostic.CodeAnchorConflict,
					fmt.Sprintf("%s mapping to %s ignored, already mapped to %s", origin, t, prev), src.Name(), s)
			}

			return
		}

		out[s] = t
	}

	if km, ok := src.(taxonomy.KnownMapper); ok {
		known := km.KnownMappingsTo(tgt.Name())
		for _, s := range common.SortedKeys(known) {
			add(s, known[s], "known")
		}
	}

	for _, s := range common.SortedKeys(a.anchors) {
		add(s, a.anchors[s], "anchor")
	}

	return out
}

// suggest attaches an info diagnostic with the nearest target lemmas to
// every unmapped source synset.
func (a *Aligner) suggest(src taxonomy.Source, dict taxonomy.Dictionary, tgtLemmas *taxonomy.LemmaIndex, res *Result) {
	n := a.cfg.Suggestions

	for _, id := range res.Unmapped {
		var picks []string

		if n > 0 {
			seen := common.NewSet[string]()

			for _, lemma := range src.Lemmas(id) {
				probes := dict.Translate(taxonomy.NormalizeLemma(lemma))
				if len(probes) == 0 {
					probes = []string{lemma}
				}

				for _, p := range probes {
					for _, s := range candidate.Suggest(p, tgtLemmas, n, candidate.DefaultMinSimilarity) {
						if seen.Add(s.Lemma) {
							picks = append(picks, s.Lemma)
						}
					}
				}
			}

			if len(picks) > n {
				picks = picks[:n]
			}
		}

		res.Diagnostics.AddInfo(diagnostic.CodeUnmapped,
			"no target candidates", res.Source, id, picks...)
	}
}
