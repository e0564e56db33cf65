// Package prediction produces synthetic, randomly perturbed rates for
// display. The numbers carry no forecasting value.
package prediction

import (
	"log/slog"
	"math/rand/v2"
	"time"
)

const (
	// DailyVariation bounds the one-shot daily perturbation.
	DailyVariation = 0.05
	// Volatility bounds the noise of a single hourly step.
	Volatility = 0.02
	// Smoothing is the share of the previous hourly variation carried into
	// the next step.
	Smoothing = 0.3
)

// Source supplies random numbers. *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	// Float64 returns a number in [0.0, 1.0).
	Float64() float64
	// IntN returns a number in [0, n). It panics if n <= 0.
	IntN(n int) int
}

// globalSource draws from the auto-seeded top-level math/rand/v2 generator.
type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }
func (globalSource) IntN(n int) int   { return rand.IntN(n) }

// Generator derives predictions from a rate table.
type Generator struct {
	src    Source
	now    func() time.Time
	logger *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithSource sets the random source.
func WithSource(src Source) Option {
	return func(g *Generator) {
		if src != nil {
			g.src = src
		}
	}
}

// WithClock sets the clock used to label hourly steps.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// New creates a generator. Without options it uses the global random
// generator and the wall clock.
func New(opts ...Option) *Generator {
	g := &Generator{
		src:    globalSource{},
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// uniform returns a value in [-bound, bound).
func (g *Generator) uniform(bound float64) float64 {
	return (g.src.Float64()*2 - 1) * bound
}

// intBetween returns a value in [lo, hi].
func (g *Generator) intBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.src.IntN(hi-lo+1)
}
