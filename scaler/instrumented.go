package scaler

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// InstrumentedScaler wraps the batch scaler with tracing and metrics.
type InstrumentedScaler struct {
	tracer trace.Tracer
	opts   options

	requests metric.Int64Counter
	failures metric.Int64Counter
	lines    metric.Int64Counter
	scalable metric.Int64Counter
	duration metric.Float64Histogram
}

// NewInstrumentedScaler initializes a scaler that reports to tracer and meter.
func NewInstrumentedScaler(tracer trace.Tracer, meter metric.Meter, opts ...Option) *InstrumentedScaler {
	requests, _ := meter.Int64Counter("scaler_requests_total",
		metric.WithDescription("Total number of ingredient lists scaled"))
	failures, _ := meter.Int64Counter("scaler_requests_failed_total",
		metric.WithDescription("Total number of scale requests that did not complete"))
	lines, _ := meter.Int64Counter("scaler_lines_total",
		metric.WithDescription("Total number of ingredient lines processed"))
	scalable, _ := meter.Int64Counter("scaler_lines_scalable_total",
		metric.WithDescription("Total number of ingredient lines that carried a scalable quantity"))
	duration, _ := meter.Float64Histogram("scaler_duration_seconds",
		metric.WithDescription("Time taken to scale one ingredient list in seconds"))

	return &InstrumentedScaler{
		tracer:   tracer,
		opts:     newOptions(opts),
		requests: requests,
		failures: failures,
		lines:    lines,
		scalable: scalable,
		duration: duration,
	}
}

// ScaleIngredients behaves like ScaleIngredientsContext and records a span and
// metrics for the call.
func (s *InstrumentedScaler) ScaleIngredients(ctx context.Context, ingredients []string, originalServings, newServings float64) ([]string, error) {
	multiplier, ok := Multiplier(originalServings, newServings)
	ctx, span := s.tracer.Start(ctx, "InstrumentedScaler.ScaleIngredients", trace.WithAttributes(
		attribute.Float64("servings.original", originalServings),
		attribute.Float64("servings.new", newServings),
		attribute.Float64("scale.multiplier", multiplier),
		attribute.Bool("scale.applied", ok),
		attribute.Int("ingredients.count", len(ingredients)),
	))
	defer span.End()

	start := time.Now()
	s.requests.Add(ctx, 1)

	out, scalable, err := scaleBatch(ctx, ingredients, originalServings, newServings, s.opts)
	s.duration.Record(ctx, time.Since(start).Seconds())
	if err != nil {
		s.failures.Add(ctx, 1)
		span.SetStatus(codes.Error, "scale ingredients")
		span.RecordError(err)
		slog.Error("SCALER: Failed to scale ingredients", "error", err, "lines", len(ingredients))
		return nil, err
	}

	s.lines.Add(ctx, int64(len(ingredients)))
	s.scalable.Add(ctx, int64(scalable))
	span.SetAttributes(attribute.Int("ingredients.scalable", scalable))
	span.SetStatus(codes.Ok, "")

	slog.Info("SCALER: Scaled ingredients",
		"lines", len(ingredients),
		"scalable", scalable,
		"multiplier", multiplier,
		"duration", time.Since(start),
	)
	return out, nil
}
