package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"taxalign/internal/align"
	"taxalign/internal/cache"
	"taxalign/internal/config"
	"taxalign/internal/taxonomy"
	"taxalign/internal/telemetry"
)

type alignFlags struct {
	source    string
	target    string
	dict      string
	config    string
	anchors   string
	out       string
	cacheDir  string
	maxRounds int
	workers   int
	dump      bool
	trace     bool
}

func newAlignCmd() *cobra.Command {
	var f alignFlags

	cmd := &cobra.Command{
		Use:   "align",
		Short: "Align a source taxonomy to a target taxonomy",
		Long: `Align loads two YAML taxonomies and an optional bilingual dictionary,
runs relaxation labeling and writes the confirmed, ambiguous and unmapped
synsets as YAML.

Exit status is 2 when the run stopped before converging.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAlign(cmd, f)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.source, "source", "", "Source taxonomy YAML file (required)")
	flags.StringVar(&f.target, "target", "", "Target taxonomy YAML file (required)")
	flags.StringVar(&f.dict, "dict", "", "Bilingual dictionary YAML file (identity when omitted)")
	flags.StringVar(&f.config, "config", "", "Config YAML file (defaults when omitted)")
	flags.StringVar(&f.anchors, "anchors", "", "YAML map of known source->target anchors")
	flags.StringVarP(&f.out, "out", "o", "", "Write the result YAML to this file instead of stdout")
	flags.StringVar(&f.cacheDir, "cache-dir", "", "Directory for the candidate cache (disabled when omitted)")
	flags.IntVar(&f.maxRounds, "max-rounds", -1, "Override max_rounds from the config (0 = unbounded)")
	flags.IntVar(&f.workers, "workers", 0, "Override workers from the config")
	flags.BoolVar(&f.dump, "dump", false, "Dump the full result structure to stderr")
	flags.BoolVar(&f.trace, "trace", false, "Export OpenTelemetry spans and metrics to stderr")

	_ = cmd.MarkFlagRequired("source")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

func runAlign(cmd *cobra.Command, f alignFlags) error {
	ctx := cmd.Context()
	logger := slog.Default()

	cfg := config.Default()

	if f.config != "" {
		var err error

		cfg, err = config.LoadFile(f.config)
		if err != nil {
			return err
		}
	}

	if f.maxRounds >= 0 {
		cfg.MaxRounds = f.maxRounds
	}

	if f.workers > 0 {
		cfg.Workers = f.workers
	}

	if f.trace {
		tcfg := telemetry.DefaultConfig()
		tcfg.TraceExporter = telemetry.ExporterStdout
		tcfg.MetricExporter = telemetry.ExporterStdout
		tcfg.Writer = cmd.ErrOrStderr()

		shutdown, err := telemetry.Init(ctx, tcfg)
		if err != nil {
			return err
		}

		defer func() {
			sctx, cancel := shutdownContext(ctx)
			defer cancel()

			if err := shutdown(sctx); err != nil {
				logger.Warn("telemetry shutdown failed", slog.String("error", err.Error()))
			}
		}()
	}

	src, err := taxonomy.LoadFile(f.source)
	if err != nil {
		return err
	}

	tgt, err := taxonomy.LoadFile(f.target)
	if err != nil {
		return err
	}

	var dict taxonomy.Dictionary = taxonomy.Identity{}

	if f.dict != "" {
		md, err := taxonomy.LoadDictionaryFile(f.dict)
		if err != nil {
			return err
		}

		dict = md
	}

	opts := []align.Option{align.WithLogger(logger)}

	if f.anchors != "" {
		anchors, err := align.LoadAnchorsFile(f.anchors)
		if err != nil {
			return err
		}

		opts = append(opts, align.WithAnchors(anchors))
	}

	if f.cacheDir != "" {
		ccfg := cache.DefaultConfig()
		ccfg.Path = f.cacheDir

		store, err := cache.Open(ccfg)
		if err != nil {
			return err
		}

		defer store.Close()

		opts = append(opts, align.WithStore(store))
	}

	res, alignErr := align.New(cfg, opts...).Align(ctx, src, tgt, dict)
	if res == nil {
		return alignErr
	}

	if f.dump {
		spew.Fdump(cmd.ErrOrStderr(), res)
	}

	if err := writeResult(cmd, res, f.out); err != nil {
		return err
	}

	fmt.Fprint(cmd.ErrOrStderr(), align.FormatReport(res))

	if alignErr != nil {
		return alignErr
	}

	if !res.Converged {
		return errPartial
	}

	return nil
}

func writeResult(cmd *cobra.Command, res *align.Result, path string) error {
	if path != "" {
		return align.WriteFile(res, path)
	}

	data, err := align.ExportYAML(res)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	_, err = cmd.OutOrStdout().Write(data)

	return err
}

// telemetryFlushTimeout bounds the final export of spans and metrics.
const telemetryFlushTimeout = 5 * time.Second

// shutdownContext detaches from ctx so a run interrupted by a signal still
// flushes its telemetry.
func shutdownContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), telemetryFlushTimeout)
}
