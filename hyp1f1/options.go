// SPDX-License-Identifier: MIT

// Package hyp1f1: functional configuration for the ₁F₁ evaluators.
// This file defines:
//   - documented defaults (constants, single source of truth),
//   - Option / Options (functional options with unexported state),
//   - WithX constructors that panic on nonsensical values (programmer error),
//   - gatherOptions, which resolves a call's options into a stack value.
//
// Design goals:
//   - No global state: options are resolved per call, never cached.
//   - No dead switches: every option changes the behavior of some evaluator.
//   - The three iteration caps stay independent constants; nothing derives
//     one from another.
package hyp1f1

import (
	"log/slog"
	"math"
)

// ---------- Defaults (single source of truth) ----------

// MachineEpsilon is the conventional tolerance for double precision:
// the gap between 1 and the next representable float64.
const MachineEpsilon = 2.220446049250313e-16

// Iteration caps.
const (
	// DefaultSeriesMaxIter bounds the fast, unmonitored Series summation.
	DefaultSeriesMaxIter = 500

	// DefaultTrackedMaxIter bounds SeriesTrackConvergence. Exhausting it is
	// reported as non-convergence.
	DefaultTrackedMaxIter = 1000

	// DefaultReferenceMaxIter is the highest term index summed by Slow.
	DefaultReferenceMaxIter = 100
)

// Numeric policy.
const (
	// DefaultPrecisionBudget is the relative error budget of the tracked
	// series: a result is accepted only if k·ε·Σ|termₖ| ≤ budget·|result|.
	DefaultPrecisionBudget = 1e-7

	// DefaultFastRegionFactor defines the fast-convergence region
	// b > 0 ∧ (|a|+1)·|z| < factor·b.
	DefaultFastRegionFactor = 0.9
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicLoggerNil          = "hyp1f1: WithLogger: logger must be non-nil"
	panicSeriesMaxIter      = "hyp1f1: WithSeriesMaxIter: cap must be > 0"
	panicTrackedMaxIter     = "hyp1f1: WithTrackedMaxIter: cap must be > 0"
	panicReferenceMaxIter   = "hyp1f1: WithReferenceMaxIter: cap must be > 0"
	panicPrecisionBudget    = "hyp1f1: WithPrecisionBudget: budget must be finite and > 0"
	panicFastRegionFactorNG = "hyp1f1: WithFastRegionFactor: factor must be finite and > 0"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Applying the same Option twice is harmless;
// when two Options touch the same field, the last one wins.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	logger *slog.Logger // nil ⇒ slog.Default() at call time

	seriesMaxIter    int // DefaultSeriesMaxIter
	trackedMaxIter   int // DefaultTrackedMaxIter
	referenceMaxIter int // DefaultReferenceMaxIter

	precisionBudget  float64 // DefaultPrecisionBudget
	fastRegionFactor float64 // DefaultFastRegionFactor
}

// WithLogger routes the non-convergence diagnostics to l.
// Panics if l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

// WithSeriesMaxIter overrides DefaultSeriesMaxIter. Panics if n ≤ 0.
func WithSeriesMaxIter(n int) Option {
	if n <= 0 {
		panic(panicSeriesMaxIter)
	}

	return func(o *Options) { o.seriesMaxIter = n }
}

// WithTrackedMaxIter overrides DefaultTrackedMaxIter. Panics if n ≤ 0.
func WithTrackedMaxIter(n int) Option {
	if n <= 0 {
		panic(panicTrackedMaxIter)
	}

	return func(o *Options) { o.trackedMaxIter = n }
}

// WithReferenceMaxIter overrides DefaultReferenceMaxIter. Panics if n ≤ 0.
func WithReferenceMaxIter(n int) Option {
	if n <= 0 {
		panic(panicReferenceMaxIter)
	}

	return func(o *Options) { o.referenceMaxIter = n }
}

// WithPrecisionBudget overrides DefaultPrecisionBudget.
// Panics unless budget is finite and strictly positive.
func WithPrecisionBudget(budget float64) Option {
	if !(budget > 0) || math.IsInf(budget, 1) {
		panic(panicPrecisionBudget)
	}

	return func(o *Options) { o.precisionBudget = budget }
}

// WithFastRegionFactor overrides DefaultFastRegionFactor.
// Panics unless factor is finite and strictly positive.
func WithFastRegionFactor(factor float64) Option {
	if !(factor > 0) || math.IsInf(factor, 1) {
		panic(panicFastRegionFactorNG)
	}

	return func(o *Options) { o.fastRegionFactor = factor }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		seriesMaxIter:    DefaultSeriesMaxIter,
		trackedMaxIter:   DefaultTrackedMaxIter,
		referenceMaxIter: DefaultReferenceMaxIter,
		precisionBudget:  DefaultPrecisionBudget,
		fastRegionFactor: DefaultFastRegionFactor,
	}
}

// gatherOptions applies opts over the defaults in order (last writer wins).
// nil entries are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// log returns the configured logger or the process default.
func (o *Options) log() *slog.Logger {
	if o.logger != nil {
		return o.logger
	}

	return slog.Default()
}
