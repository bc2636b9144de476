package relax

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	tracer = otel.Tracer("taxalign.relax")
	meter  = otel.Meter("taxalign.relax")
)

var (
	roundsTotal     metric.Int64Counter
	promotionsTotal metric.Int64Counter
	shrinksTotal    metric.Int64Counter
	roundLatency    metric.Float64Histogram

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics creates the instruments. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		roundsTotal, err = meter.Int64Counter(
			"relax_rounds_total",
			metric.WithDescription("Total number of relaxation rounds"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		promotionsTotal, err = meter.Int64Counter(
			"relax_promotions_total",
			metric.WithDescription("Nodes promoted to confirmed mappings"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		shrinksTotal, err = meter.Int64Counter(
			"relax_shrinks_total",
			metric.WithDescription("Nodes narrowed to their tied maxima"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		roundLatency, err = meter.Float64Histogram(
			"relax_round_duration_seconds",
			metric.WithDescription("Duration of a relaxation round"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})

	return metricsErr
}

func recordRound(ctx context.Context, r Round, duration time.Duration) {
	if err := initMetrics(); err != nil {
		return
	}

	attrs := metric.WithAttributes(attribute.Bool("changed", r.Changed()))

	roundsTotal.Add(ctx, 1, attrs)
	promotionsTotal.Add(ctx, int64(len(r.Promoted)))
	shrinksTotal.Add(ctx, int64(len(r.Shrunk)))
	roundLatency.Record(ctx, duration.Seconds(), attrs)
}
