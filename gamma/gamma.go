// SPDX-License-Identifier: MIT

package gamma

import "math"

// lanczosG is the Lanczos g parameter the coefficient table was fitted for.
const lanczosG = 7

// reflectionThreshold splits the domain: Gamma(z) for z below it is obtained
// from Gamma(1−z), which is always ≥ 0.5.
const reflectionThreshold = 0.5

// lanczosC0 and lanczosP form the fixed coefficient table of the
// approximation. They MUST stay verbatim for numerical compatibility.
const lanczosC0 = 0.99999999999980993

var lanczosP = [...]float64{
	676.5203681218851,
	-1259.1392167224028,
	771.32342877765313,
	-176.61502916214059,
	12.507343278686905,
	-0.13857109526572012,
	9.9843695780195716e-6,
	1.5056327351493116e-7,
}

// Gamma returns the gamma function Γ(z) for real z.
//
// Algorithm:
//  1. z < 0.5: reflection Γ(z) = π / (sin(πz)·Γ(1−z)).
//     1−z ≥ 0.5 there, so the recursion goes exactly one level deep.
//  2. z ≥ 0.5: with z2 = z−1,
//     x = c₀ + Σᵢ pᵢ/(z2+i+1),  t = z2 + g + 0.5,
//     Γ(z) = √(2π) · t^(z2+0.5) · e^(−t) · x.
//
// NaN propagates. Non-positive integers are true poles and diverge.
//
// Complexity: O(1).
func Gamma(z float64) float64 {
	if z < reflectionThreshold {
		return math.Pi / (math.Sin(math.Pi*z) * Gamma(1-z))
	}

	z2 := z - 1
	x := lanczosC0
	for i, p := range lanczosP {
		x += p / (z2 + float64(i) + 1)
	}

	t := z2 + lanczosG + 0.5

	return math.Sqrt(2*math.Pi) * math.Pow(t, z2+0.5) * math.Exp(-t) * x
}
