// SPDX-License-Identifier: MIT

package backtest

import "errors"

var (
	// ErrBadRange indicates a sampling range with non-finite bounds or Lo > Hi.
	ErrBadRange = errors.New("backtest: invalid sampling range")

	// ErrBadSamples indicates a non-positive sample count.
	ErrBadSamples = errors.New("backtest: sample count must be > 0")

	// ErrBadTolerance indicates a non-finite or non-positive tolerance, or a
	// non-finite or negative series eps.
	ErrBadTolerance = errors.New("backtest: invalid tolerance")
)
