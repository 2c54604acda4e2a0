// SPDX-License-Identifier: MIT

// Package hyp1f1 evaluates Kummer's confluent hypergeometric function
//
//	M(a,b,z) = ₁F₁(a;b;z) = Σₖ (a)ₖ/(b)ₖ · zᵏ/k!
//
// for real a, b, z in double precision.
//
// 🚀 How a value is produced
//
//	Classify(a,b,z) walks an ordered guard cascade and tags the triple with a
//	Regime; EvaluateRegime maps the tag to an evaluator. Hyp1F1 does both.
//
//	  invalid            NaN input                       → NaN
//	  pole               b ∈ {0,−1,…}, nothing cancels   → +Inf
//	  polynomial_b       b ∈ {0,−1,…}, a ∈ [b, −1] int   → SeriesTrackConvergence
//	  degenerate         a = 0 or z = 0                  → 1
//	  linear             a = −1                          → 1 − z/b
//	  kummer             a = b                           → eᶻ
//	  shifted_kummer     a − b = 1                       → (1 + z/b)·eᶻ
//	  exp_ratio          a = 1, b = 2                    → (eᶻ − 1)/z
//	  polynomial_a       a ∈ {0,−1,…}                    → SeriesTrackConvergence
//	  fast_series        b > 0, (|a|+1)|z| < 0.9·b       → Series
//	  fallback_series    anything else                   → Series
//
// ✨ Evaluators
//
//   - Series — term recurrence, cap 500, silent cutoff. Fast path.
//   - SeriesTrackConvergence — same recurrence, cap 1000, detects removable
//     0/0 terms, undefined terms, non-convergence and precision loss.
//   - Slow — gamma-ratio reference used only for back-testing.
//
// ⚠️ Limitations
//
//	There is no asymptotic expansion, continued fraction or quadrature: the
//	fallback regime sums the power series even where it converges slowly or
//	cancels badly (large negative z). Overflow of zᵏ or of large gamma
//	arguments is not guarded and may surface as ±Inf or NaN.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/kummer/hyp1f1"
//
//	m := hyp1f1.Hyp1F1(2.5, 5.33, 6.4, hyp1f1.MachineEpsilon)
//
//	// checked form: same value, outcome class as a sentinel error
//	m, err := hyp1f1.Evaluate(-3, 2.5, 4, hyp1f1.MachineEpsilon,
//	    hyp1f1.WithLogger(logger))
//	if errors.Is(err, hyp1f1.ErrPrecisionLoss) { … }
//
// Concurrency: every function is pure over its own stack frame and safe to
// call from any number of goroutines. The only side effect is the Warn-level
// diagnostic emitted by the tracked series on failure.
package hyp1f1
