// SPDX-License-Identifier: MIT

// Package backtest cross-validates the production evaluator hyp1f1.Hyp1F1
// against the independent gamma-ratio reference hyp1f1.Slow on randomly
// sampled parameter triples.
//
// ⚙️ Usage:
//
//	cfg := backtest.DefaultConfig() // a∈[−5,−1], b∈[1,6], z∈[0,60], 1000 samples
//	rep, err := backtest.Run(cfg, nil)
//	if err != nil { … }
//	_ = rep.WriteYAML(os.Stdout)
//
// Determinism: the same Config (seed included) always yields the same samples
// and the same report. Seed 0 selects a fixed default seed.
//
// Error metric: |dispatcher − reference| / max(|reference|, 1). A sample is
// skipped, not failed, when either side is NaN or ±Inf.
package backtest
