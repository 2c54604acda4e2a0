// SPDX-License-Identifier: MIT

package hyp1f1

import (
	"math"

	"github.com/katalvlaran/kummer/gamma"
)

// Slow is the brute-force reference evaluator used to back-test Hyp1F1:
//
//	M(a,b,z) = Σⱼ (a)ⱼ / (b)ⱼ / Γ(j+1) · zʲ,  j = 0 … cap (DefaultReferenceMaxIter)
//
// stopping early once |termⱼ| / |result| < eps. Every coefficient is an
// independent gamma ratio, so it shares no state or rounding path with the
// recurrence-based evaluators. It is slow and loses accuracy for large j;
// keep it off production paths.
//
// Complexity: O(cap) gamma evaluations.
func Slow(a, b, z, eps float64, opts ...Option) float64 {
	o := gatherOptions(opts...)

	result := 0.0
	for j := 0; j <= o.referenceMaxIter; j++ {
		term := gamma.Poch(a, j) / gamma.Poch(b, j) / gamma.Gamma(float64(j+1)) * math.Pow(z, float64(j))
		result += term
		if math.Abs(term)/math.Abs(result) < eps {
			break
		}
	}

	return result
}
