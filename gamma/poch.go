// SPDX-License-Identifier: MIT

package gamma

// Poch returns the Pochhammer symbol (rising factorial)
//
//	(z)ₖ = z(z+1)…(z+k−1) = Γ(z+k) / Γ(z),  (z)₀ = 1.
//
// k must be non-negative; a negative k is treated as 0 and yields 1.
// The gamma ratio accumulates rounding error for large k and is meaningless
// when z is a non-positive integer (both gamma values sit on poles).
//
// Complexity: O(1).
func Poch(z float64, k int) float64 {
	if k <= 0 {
		return 1
	}

	return Gamma(z+float64(k)) / Gamma(z)
}
