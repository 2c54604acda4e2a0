// SPDX-License-Identifier: MIT

package hyp1f1

import "errors"

// Sentinel errors returned by Evaluate. Every message is prefixed with
// "hyp1f1: ". Match them with errors.Is; Evaluate may wrap them with context.
//
// The plain evaluators (Hyp1F1, Series, SeriesTrackConvergence, Slow) never
// return errors: they encode the same outcomes as NaN or +Inf.
var (
	// ErrNaNInput indicates that a, b or z is NaN. The value is NaN.
	ErrNaNInput = errors.New("hyp1f1: NaN parameter")

	// ErrBadTolerance indicates that eps is NaN, infinite or negative.
	ErrBadTolerance = errors.New("hyp1f1: tolerance must be finite and non-negative")

	// ErrPole indicates a true pole: b is a non-positive integer with no
	// compensating negative-integer a. The value is +Inf.
	ErrPole = errors.New("hyp1f1: pole at non-positive integer b")

	// ErrNotConverged indicates that the tracked series exhausted its
	// iteration cap. The value is NaN.
	ErrNotConverged = errors.New("hyp1f1: series did not converge")

	// ErrPrecisionLoss indicates that the tracked series stopped but its
	// accumulated rounding estimate exceeded the relative error budget.
	// The value is NaN.
	ErrPrecisionLoss = errors.New("hyp1f1: series did not converge after precision check")

	// ErrUndefinedTerm indicates a zero denominator b+k with a nonzero
	// numerator a+k inside the tracked series. The value is NaN.
	ErrUndefinedTerm = errors.New("hyp1f1: undefined series term")
)
