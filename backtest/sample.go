// SPDX-License-Identifier: MIT

package backtest

// Samples draws cfg.Samples triples uniformly from cfg's ranges.
//
// Errors: whatever cfg.Validate reports.
//
// Complexity: O(Samples).
func Samples(cfg Config) ([]Sample, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	base := rngFromSeed(cfg.Seed)
	ra := deriveRNG(base, streamA)
	rb := deriveRNG(base, streamB)
	rz := deriveRNG(base, streamZ)

	out := make([]Sample, cfg.Samples)
	for i := range out {
		out[i] = Sample{
			A: uniform(ra, cfg.A),
			B: uniform(rb, cfg.B),
			Z: uniform(rz, cfg.Z),
		}
	}

	return out, nil
}
