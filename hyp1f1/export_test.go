// SPDX-License-Identifier: MIT

package hyp1f1

import "log/slog"

// OptionsSnapshot mirrors the resolved Options for black-box tests.
type OptionsSnapshot struct {
	Logger           *slog.Logger
	SeriesMaxIter    int
	TrackedMaxIter   int
	ReferenceMaxIter int
	PrecisionBudget  float64
	FastRegionFactor float64
}

// GatherOptionsSnapshot_TestOnly resolves opts and exposes the result.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{
		Logger:           o.logger,
		SeriesMaxIter:    o.seriesMaxIter,
		TrackedMaxIter:   o.trackedMaxIter,
		ReferenceMaxIter: o.referenceMaxIter,
		PrecisionBudget:  o.precisionBudget,
		FastRegionFactor: o.fastRegionFactor,
	}
}
