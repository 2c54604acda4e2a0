// SPDX-License-Identifier: MIT

package backtest

import (
	"fmt"
	"math"
)

// validatorErrorf tags a sentinel with the failing field.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isFinite reports whether x is neither NaN nor ±Inf.
func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Validate checks that r has finite bounds and Lo ≤ Hi.
func (r Range) Validate() error {
	if !isFinite(r.Lo) || !isFinite(r.Hi) || r.Lo > r.Hi {
		return ErrBadRange
	}

	return nil
}

// Validate checks every field in a fixed order: ranges (a, b, z), then
// sample count, then tolerances. The first violation is returned, tagged with
// the field name.
func (c Config) Validate() error {
	for _, f := range []struct {
		tag string
		r   Range
	}{{"a", c.A}, {"b", c.B}, {"z", c.Z}} {
		if err := f.r.Validate(); err != nil {
			return validatorErrorf(f.tag, err)
		}
	}
	if c.Samples <= 0 {
		return validatorErrorf("samples", ErrBadSamples)
	}
	if !isFinite(c.Eps) || c.Eps < 0 {
		return validatorErrorf("eps", ErrBadTolerance)
	}
	if !isFinite(c.Tolerance) || c.Tolerance <= 0 {
		return validatorErrorf("tolerance", ErrBadTolerance)
	}

	return nil
}
