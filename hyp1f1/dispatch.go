// SPDX-License-Identifier: MIT

package hyp1f1

import (
	"fmt"
	"math"
)

// Hyp1F1 evaluates Kummer's confluent hypergeometric function M(a,b,z) = ₁F₁(a;b;z)
// with series tolerance eps (conventionally MachineEpsilon).
//
// Outcomes:
//   - finite — closed form or a converged series;
//   - NaN    — NaN input, or the tracked series failed one of its gates;
//   - +Inf   — true pole (non-positive integer b, no cancelling a).
//
// Equivalent to EvaluateRegime(Classify(a, b, z, opts...), a, b, z, eps, opts...).
//
// Example:
//
//	m := hyp1f1.Hyp1F1(2.5, 5.33, 6.4, hyp1f1.MachineEpsilon)
func Hyp1F1(a, b, z, eps float64, opts ...Option) float64 {
	o := gatherOptions(opts...)
	v, _ := evaluate(classify(a, b, z, &o), a, b, z, eps, &o)

	return v
}

// EvaluateRegime evaluates M(a,b,z) with the strategy tagged by r, without
// re-checking that r is the regime Classify would pick. Mapping:
//
//	invalid                     → NaN
//	pole                        → +Inf
//	polynomial_a, polynomial_b  → SeriesTrackConvergence
//	degenerate                  → 1
//	linear                      → 1 − z/b
//	kummer                      → eᶻ
//	shifted_kummer              → (1 + z/b)·eᶻ
//	exp_ratio                   → (eᶻ − 1)/z
//	fast_series, fallback_series→ Series
//
// Unknown regimes evaluate to NaN.
func EvaluateRegime(r Regime, a, b, z, eps float64, opts ...Option) float64 {
	o := gatherOptions(opts...)
	v, _ := evaluate(r, a, b, z, eps, &o)

	return v
}

// Evaluate is the checked form of Hyp1F1. The value is identical; the error
// names the outcome class (ErrNaNInput, ErrPole, ErrNotConverged,
// ErrPrecisionLoss, ErrUndefinedTerm) and eps is validated (ErrBadTolerance).
func Evaluate(a, b, z, eps float64, opts ...Option) (float64, error) {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		return math.NaN(), ErrBadTolerance
	}

	o := gatherOptions(opts...)
	r := classify(a, b, z, &o)
	v, err := evaluate(r, a, b, z, eps, &o)
	if err != nil {
		return v, fmt.Errorf("Evaluate(%g, %g, %g) [%s]: %w", a, b, z, r, err)
	}

	return v, nil
}

// evaluate maps a regime to its evaluator.
func evaluate(r Regime, a, b, z, eps float64, o *Options) (float64, error) {
	switch r {
	case RegimeInvalid:
		return math.NaN(), ErrNaNInput
	case RegimePole:
		return math.Inf(1), ErrPole
	case RegimePolynomialA, RegimePolynomialB:
		return trackedSeries(a, b, z, eps, o)
	case RegimeDegenerate:
		return 1, nil
	case RegimeLinear:
		return 1 - z/b, nil
	case RegimeKummer:
		return math.Exp(z), nil
	case RegimeShiftedKummer:
		return (1 + z/b) * math.Exp(z), nil
	case RegimeExpRatio:
		// z ≠ 0 here; z = 0 is RegimeDegenerate.
		return math.Expm1(z) / z, nil
	case RegimeFastSeries, RegimeFallbackSeries:
		return series(a, b, z, eps, o), nil
	default:
		return math.NaN(), fmt.Errorf("hyp1f1: unknown regime %d", int(r))
	}
}
