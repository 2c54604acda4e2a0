// SPDX-License-Identifier: MIT

package hyp1f1

import "math"

// SeriesTrackConvergence sums the same term recurrence as Series but refuses
// to return a result it cannot vouch for.
//
// Per step k (apk = a+k, bpk = b+k):
//   - bpk ≠ 0            — regular update of the term;
//   - bpk = 0, apk = 0   — removable 0/0, the term is 0 and the series ends;
//   - bpk = 0, apk ≠ 0   — undefined term, NaN immediately.
//
// Alongside the sum it tracks abssum = Σ|termₖ|. Two gates follow:
//  1. the cap (DefaultTrackedMaxIter) is exhausted before |termₖ| ≤ eps·|result|
//     ⇒ NaN, logged as "series did not converge";
//  2. stopped at step k but k·eps·abssum > budget·|result|
//     ⇒ NaN, logged as "series did not converge after precision check".
//
// Diagnostics go to the WithLogger logger (slog.Default() otherwise) at Warn.
//
// Complexity: O(cap).
func SeriesTrackConvergence(a, b, z, eps float64, opts ...Option) float64 {
	o := gatherOptions(opts...)
	v, _ := trackedSeries(a, b, z, eps, &o)

	return v
}

// trackedSeries is SeriesTrackConvergence reporting the failure sentinel.
func trackedSeries(a, b, z, eps float64, o *Options) (float64, error) {
	term, result, abssum := 1.0, 1.0, 1.0

	k := 0
	converged := false
	for ; k < o.trackedMaxIter; k++ {
		apk := a + float64(k)
		bpk := b + float64(k)
		switch {
		case bpk != 0:
			term *= apk * z / bpk / float64(k+1)
		case apk == 0:
			term = 0
		default:
			return math.NaN(), ErrUndefinedTerm
		}

		abssum += math.Abs(term)
		result += term
		if math.Abs(term) <= eps*math.Abs(result) {
			converged = true
			break
		}
	}

	if !converged {
		o.log().Warn(ErrNotConverged.Error(),
			"a", a, "b", b, "z", z, "eps", eps,
			"iterations", o.trackedMaxIter)

		return math.NaN(), ErrNotConverged
	}

	estimate := float64(k) * eps * abssum
	budget := o.precisionBudget * math.Abs(result)
	if !(estimate <= budget) {
		o.log().Warn(ErrPrecisionLoss.Error(),
			"a", a, "b", b, "z", z, "eps", eps,
			"iterations", k, "error_estimate", estimate, "budget", budget)

		return math.NaN(), ErrPrecisionLoss
	}

	return result, nil
}
