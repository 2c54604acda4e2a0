// SPDX-License-Identifier: MIT

package hyp1f1

// Regime tags the evaluation strategy chosen for a parameter triple (a,b,z).
// It is derived on every call by Classify and never cached.
//
// The declaration order follows the guard cascade: earlier regimes win.
type Regime int

const (
	// RegimeInvalid — a, b or z is NaN. Evaluates to NaN.
	RegimeInvalid Regime = iota

	// RegimePole — b is a non-positive integer and the numerator never
	// cancels the vanishing denominator. Evaluates to +Inf.
	RegimePole

	// RegimePolynomialB — b is a non-positive integer, a is a negative
	// integer with a ≥ b: a finite polynomial whose 0/0 term is removable.
	RegimePolynomialB

	// RegimeDegenerate — a = 0 or z = 0. Evaluates to 1.
	RegimeDegenerate

	// RegimeLinear — a = −1. Evaluates to 1 − z/b.
	RegimeLinear

	// RegimeKummer — a = b. Evaluates to eᶻ.
	RegimeKummer

	// RegimeShiftedKummer — a − b = 1. Evaluates to (1 + z/b)·eᶻ.
	RegimeShiftedKummer

	// RegimeExpRatio — a = 1, b = 2. Evaluates to (eᶻ − 1)/z.
	RegimeExpRatio

	// RegimePolynomialA — a is a non-positive integer: a polynomial of
	// degree −a without singular terms.
	RegimePolynomialA

	// RegimeFastSeries — b > 0 and (|a|+1)·|z| < 0.9·b.
	RegimeFastSeries

	// RegimeFallbackSeries — everything else; summed with Series anyway.
	RegimeFallbackSeries
)

// regimeNames are stable snake_case labels (metrics, CLI output).
var regimeNames = [...]string{
	RegimeInvalid:        "invalid",
	RegimePole:           "pole",
	RegimePolynomialB:    "polynomial_b",
	RegimeDegenerate:     "degenerate",
	RegimeLinear:         "linear",
	RegimeKummer:         "kummer",
	RegimeShiftedKummer:  "shifted_kummer",
	RegimeExpRatio:       "exp_ratio",
	RegimePolynomialA:    "polynomial_a",
	RegimeFastSeries:     "fast_series",
	RegimeFallbackSeries: "fallback_series",
}

// Regimes lists every regime in cascade order.
func Regimes() []Regime {
	out := make([]Regime, len(regimeNames))
	for i := range out {
		out[i] = Regime(i)
	}

	return out
}

// String returns the stable label of r, or "unknown" for out-of-range values.
func (r Regime) String() string {
	if r < 0 || int(r) >= len(regimeNames) {
		return "unknown"
	}

	return regimeNames[r]
}

// Closed reports whether r is one of the five closed-form identities.
func (r Regime) Closed() bool {
	switch r {
	case RegimeDegenerate, RegimeLinear, RegimeKummer, RegimeShiftedKummer, RegimeExpRatio:
		return true
	default:
		return false
	}
}

// Polynomial reports whether r sums a terminating series with the tracked
// evaluator.
func (r Regime) Polynomial() bool {
	return r == RegimePolynomialA || r == RegimePolynomialB
}
