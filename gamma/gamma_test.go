// SPDX-License-Identifier: MIT

package gamma_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/kummer/gamma"
	"github.com/stretchr/testify/assert"
)

// relTol is the relative tolerance shared by the identity checks below.
const relTol = 1e-9

// relErr returns |got−want| / |want|, or |got| when want is zero.
func relErr(got, want float64) float64 {
	if want == 0 {
		return math.Abs(got)
	}

	return math.Abs(got-want) / math.Abs(want)
}

// TestGamma_Factorial verifies Γ(n+1) = n! for n = 0..10.
func TestGamma_Factorial(t *testing.T) {
	fact := 1.0
	for n := 0; n <= 10; n++ {
		if n > 0 {
			fact *= float64(n)
		}
		got := gamma.Gamma(float64(n) + 1)
		assert.LessOrEqualf(t, relErr(got, fact), relTol, "Γ(%d+1)=%v, want %v", n, got, fact)
	}
}

// TestGamma_HalfIntegers checks Γ(½)=√π and Γ(3/2)=√π/2.
func TestGamma_HalfIntegers(t *testing.T) {
	sqrtPi := math.Sqrt(math.Pi)
	assert.LessOrEqual(t, relErr(gamma.Gamma(0.5), sqrtPi), relTol, "Γ(1/2)")
	assert.LessOrEqual(t, relErr(gamma.Gamma(1.5), sqrtPi/2), relTol, "Γ(3/2)")
}

// TestGamma_Reflection exercises the z < 0.5 branch, including negative
// non-integers where the sign alternates between poles.
func TestGamma_Reflection(t *testing.T) {
	sqrtPi := math.Sqrt(math.Pi)
	cases := []struct {
		z, want float64
	}{
		{-0.5, -2 * sqrtPi},
		{-1.5, 4 * sqrtPi / 3},
		{-2.5, -8 * sqrtPi / 15},
		{0.25, math.Gamma(0.25)},
		{0.1, math.Gamma(0.1)},
	}
	for _, tc := range cases {
		got := gamma.Gamma(tc.z)
		assert.LessOrEqualf(t, relErr(got, tc.want), relTol, "Γ(%v)=%v, want %v", tc.z, got, tc.want)
	}
}

// TestGamma_MatchesStdlib sweeps non-integer arguments on both sides of the
// reflection threshold and compares against math.Gamma.
func TestGamma_MatchesStdlib(t *testing.T) {
	for z := -4.45; z < 30; z += 0.7 {
		want := math.Gamma(z)
		got := gamma.Gamma(z)
		assert.LessOrEqualf(t, relErr(got, want), 1e-10, "Γ(%v)=%v, want %v", z, got, want)
	}
}

// TestGamma_PoleAndNaN documents the non-suppressed divergence at zero and
// NaN propagation.
func TestGamma_PoleAndNaN(t *testing.T) {
	assert.True(t, math.IsInf(gamma.Gamma(0), 1), "Γ(0) must diverge to +Inf")
	assert.True(t, math.IsNaN(gamma.Gamma(math.NaN())), "NaN must propagate")
}

// TestPoch_ZeroOrder verifies (z)₀ = 1 for any z, NaN included.
func TestPoch_ZeroOrder(t *testing.T) {
	for _, z := range []float64{-3, -0.5, 0, 1, 2.5, 1e6, math.NaN(), math.Inf(1)} {
		assert.Equalf(t, 1.0, gamma.Poch(z, 0), "(%v)₀", z)
	}
	assert.Equal(t, 1.0, gamma.Poch(2.5, -3), "negative order is treated as zero")
}

// TestPoch_RisingProduct compares (z)ₖ against the explicit product
// z(z+1)…(z+k−1) for small k.
func TestPoch_RisingProduct(t *testing.T) {
	for _, z := range []float64{-0.5, 0.5, 1, 2.5, 3.75, 5.33} {
		want := 1.0
		for k := 1; k <= 6; k++ {
			want *= z + float64(k-1)
			got := gamma.Poch(z, k)
			assert.LessOrEqualf(t, relErr(got, want), relTol, "(%v)_%d=%v, want %v", z, k, got, want)
		}
	}
}

// TestPoch_OneIsFactorial verifies (1)ₖ = k!.
func TestPoch_OneIsFactorial(t *testing.T) {
	fact := 1.0
	for k := 1; k <= 10; k++ {
		fact *= float64(k)
		assert.LessOrEqualf(t, relErr(gamma.Poch(1, k), fact), relTol, "(1)_%d", k)
	}
}
