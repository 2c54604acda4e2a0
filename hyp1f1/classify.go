// SPDX-License-Identifier: MIT

package hyp1f1

import "math"

// Classify returns the regime for (a,b,z) by walking the guard cascade in
// order; the first matching guard wins.
//
//  1. a, b or z NaN                                 → RegimeInvalid
//  2. b ∈ {0,−1,−2,…}:
//     a negative integer with a ≥ b                 → RegimePolynomialB
//     otherwise                                     → RegimePole
//  3. a = 0 or z = 0                                → RegimeDegenerate
//  4. a = −1                                        → RegimeLinear
//  5. a = b                                         → RegimeKummer
//  6. a − b = 1                                     → RegimeShiftedKummer
//  7. a = 1 and b = 2                               → RegimeExpRatio
//  8. a ∈ {0,−1,−2,…}                               → RegimePolynomialA
//  9. b > 0 and (|a|+1)·|z| < factor·b              → RegimeFastSeries
//  10. otherwise                                    → RegimeFallbackSeries
//
// Only WithFastRegionFactor affects classification.
//
// Complexity: O(1).
func Classify(a, b, z float64, opts ...Option) Regime {
	o := gatherOptions(opts...)

	return classify(a, b, z, &o)
}

func classify(a, b, z float64, o *Options) Regime {
	// NaN never compares equal to anything, itself included, so it needs an
	// explicit predicate.
	if math.IsNaN(a) || math.IsNaN(b) || math.IsNaN(z) {
		return RegimeInvalid
	}

	if isNonPositiveInt(b) {
		if isNegativeInt(a) && a >= b {
			return RegimePolynomialB
		}

		return RegimePole
	}

	switch {
	case a == 0 || z == 0:
		return RegimeDegenerate
	case a == -1:
		return RegimeLinear
	case a == b:
		return RegimeKummer
	case a-b == 1:
		return RegimeShiftedKummer
	case a == 1 && b == 2:
		return RegimeExpRatio
	case isNonPositiveInt(a):
		return RegimePolynomialA
	case b > 0 && (math.Abs(a)+1)*math.Abs(z) < o.fastRegionFactor*b:
		return RegimeFastSeries
	default:
		return RegimeFallbackSeries
	}
}

// isInt reports whether x is a finite integral value.
func isInt(x float64) bool {
	return !math.IsInf(x, 0) && x == math.Trunc(x)
}

// isNonPositiveInt reports whether x ∈ {0, −1, −2, …}.
func isNonPositiveInt(x float64) bool {
	return x <= 0 && isInt(x)
}

// isNegativeInt reports whether x ∈ {−1, −2, …}.
func isNegativeInt(x float64) bool {
	return x < 0 && isInt(x)
}
