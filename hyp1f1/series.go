// SPDX-License-Identifier: MIT

package hyp1f1

import "math"

// Series sums the Kummer power series with the term recurrence
//
//	term₀ = 1,  termₖ₊₁ = termₖ · (a+k)·z / ((b+k)·(k+1))
//
// for k = 0 … cap−1 (cap = DefaultSeriesMaxIter unless WithSeriesMaxIter),
// stopping early the first time |termₖ| ≤ eps·|result|.
//
// The sum is returned unconditionally: running out of iterations is NOT
// distinguished from convergence. Use it only where convergence is known to
// be fast; SeriesTrackConvergence is the monitored variant.
//
// Complexity: O(cap).
func Series(a, b, z, eps float64, opts ...Option) float64 {
	o := gatherOptions(opts...)

	return series(a, b, z, eps, &o)
}

func series(a, b, z, eps float64, o *Options) float64 {
	term, result := 1.0, 1.0
	for k := 0; k < o.seriesMaxIter; k++ {
		kf := float64(k)
		term *= (a + kf) * z / (b + kf) / (kf + 1)
		result += term
		if math.Abs(term) <= eps*math.Abs(result) {
			break
		}
	}

	return result
}
