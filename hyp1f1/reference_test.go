// SPDX-License-Identifier: MIT

package hyp1f1_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/kummer/hyp1f1"
	"github.com/stretchr/testify/assert"
)

// scaledErr is |got−want| / max(|want|, 1): relative for large values,
// absolute near the roots of M.
func scaledErr(got, want float64) float64 {
	return math.Abs(got-want) / math.Max(math.Abs(want), 1)
}

// TestSlow_AgreesWithHyp1F1 sweeps a ∈ [−5,−1] (non-integer), b ∈ [1,6],
// z ∈ [0,60]. Up to z = 40 the reference tail beyond j = 100 is negligible;
// above it the truncated tail is ~1e-7 relative, hence the looser bound.
func TestSlow_AgreesWithHyp1F1(t *testing.T) {
	as := []float64{-4.7, -3.9, -3.3, -2.6, -1.8, -1.2}
	bs := []float64{1, 1.7, 2.9, 4.4, 6}
	zs := []float64{0, 0.5, 3, 9.5, 17, 26, 33, 40, 50, 60}

	for _, a := range as {
		for _, b := range bs {
			for _, z := range zs {
				tol := 1e-6
				if z > 40 {
					tol = 1e-5
				}
				want := hyp1f1.Slow(a, b, z, eps)
				got := hyp1f1.Hyp1F1(a, b, z, eps)
				assert.LessOrEqualf(t, scaledErr(got, want), tol,
					"M(%v,%v,%v): dispatcher %v, reference %v", a, b, z, got, want)
			}
		}
	}
}

// TestSlow_Identities checks the reference on closed forms.
func TestSlow_Identities(t *testing.T) {
	for _, z := range []float64{-1.5, 0.5, 2, 5} {
		assert.LessOrEqualf(t, relErr(hyp1f1.Slow(2.5, 2.5, z, eps), math.Exp(z)), 1e-9, "M(a,a,%v)", z)
		assert.LessOrEqualf(t, relErr(hyp1f1.Slow(1, 2, z, eps), math.Expm1(z)/z), 1e-9, "M(1,2,%v)", z)
	}
	// 1/Γ(1) carries the Lanczos rounding, so z = 0 is 1 only to ~1e-15.
	assert.LessOrEqual(t, relErr(hyp1f1.Slow(3.3, 1.7, 0, eps), 1), 1e-12)
}

// TestSlow_ReferenceCap shows the cap truncates the sum.
func TestSlow_ReferenceCap(t *testing.T) {
	// j = 0, 1: 1 + a·z/b = 1 + 2·3/4.
	got := hyp1f1.Slow(2, 4, 3, eps, hyp1f1.WithReferenceMaxIter(1))
	assert.LessOrEqual(t, relErr(got, 2.5), 1e-12)
}
