// Package scaler parses free-text recipe ingredient lines and rescales their
// quantities for a different number of servings.
//
// Every function in this package is pure. The batch helpers may fan work out
// across goroutines but always return lines in input order.
package scaler

import (
	"context"
	"runtime"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Scale renders p with its quantity multiplied by multiplier. Lines without a
// quantity come back as p.Original.
func Scale(p ParsedIngredient, multiplier float64) string {
	if !p.HasQuantity {
		return p.Original
	}

	var b strings.Builder
	b.WriteString(FormatQuantity(p.Quantity * multiplier))
	if p.IsRange {
		b.WriteByte('-')
		b.WriteString(FormatQuantity(p.RangeEnd * multiplier))
	}
	if p.Unit != "" {
		b.WriteByte(' ')
		b.WriteString(p.Unit)
	}
	if p.Ingredient != "" {
		b.WriteByte(' ')
		b.WriteString(p.Ingredient)
	}
	return b.String()
}

// Multiplier returns newServings/originalServings. ok is false when either
// count is not positive, in which case no scaling should happen.
func Multiplier(originalServings, newServings float64) (m float64, ok bool) {
	if originalServings <= 0 || newServings <= 0 {
		return 0, false
	}
	return newServings / originalServings, true
}

// ScaleIngredients rescales every line from originalServings to newServings.
// The result always has the same length and order as ingredients. When either
// serving count is not positive the lines are only cleaned.
func ScaleIngredients(ingredients []string, originalServings, newServings float64) []string {
	multiplier, ok := Multiplier(originalServings, newServings)
	out := make([]string, len(ingredients))
	for i, line := range ingredients {
		out[i], _ = scaleLine(line, multiplier, ok)
	}
	return out
}

// scaleLine cleans, parses and scales one line. The bool reports whether the
// line carried a scalable quantity.
func scaleLine(line string, multiplier float64, scale bool) (string, bool) {
	cleaned := Clean(line)
	if !scale {
		return cleaned, false
	}
	p := Parse(cleaned)
	return Scale(p, multiplier), p.HasQuantity
}

type options struct {
	workers int
}

// Option configures the concurrent batch helpers.
type Option func(*options)

// WithWorkers bounds how many lines are processed at once. Values below one
// fall back to GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

func newOptions(opts []Option) options {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.workers < 1 {
		o.workers = runtime.GOMAXPROCS(0)
	}
	return o
}

// ScaleIngredientsContext is ScaleIngredients spread across a bounded pool of
// goroutines. It stops early and returns the context error if ctx is done
// before every line has been handled.
func ScaleIngredientsContext(ctx context.Context, ingredients []string, originalServings, newServings float64, opts ...Option) ([]string, error) {
	out, _, err := scaleBatch(ctx, ingredients, originalServings, newServings, newOptions(opts))
	return out, err
}

// scaleBatch is shared by ScaleIngredientsContext and InstrumentedScaler. It
// also returns how many lines had a scalable quantity.
func scaleBatch(ctx context.Context, ingredients []string, originalServings, newServings float64, o options) ([]string, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	multiplier, ok := Multiplier(originalServings, newServings)
	out := make([]string, len(ingredients))
	var scalable atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for i, line := range ingredients {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			var hit bool
			out[i], hit = scaleLine(line, multiplier, ok)
			if hit {
				scalable.Add(1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	return out, int(scalable.Load()), nil
}
