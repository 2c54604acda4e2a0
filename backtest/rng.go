// SPDX-License-Identifier: MIT

// Package backtest - deterministic random generation for parameter sampling.
//
// Goals:
//   - Determinism: same seed ⇒ identical samples across platforms.
//   - Independence: each axis (a, b, z) draws from its own derived stream,
//     so narrowing one range never shifts the values drawn for another.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe; streams live inside one Samples call.
package backtest

import "math/rand"

// Stream identifiers for the three axes.
const (
	streamA uint64 = iota + 1
	streamB
	streamZ
)

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ DefaultSeed; otherwise the seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = DefaultSeed
	}

	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier into a new seed
// using the SplitMix64 finalizer.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// deriveRNG creates an independent stream from base and a stream id.
// base.Int63() is consumed once, so the order of derivations matters.
func deriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	var parent int64
	if base == nil {
		parent = DefaultSeed
	} else {
		parent = base.Int63()
	}

	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}

// uniform draws from [r.Lo, r.Hi).
func uniform(rng *rand.Rand, r Range) float64 {
	return r.Lo + rng.Float64()*(r.Hi-r.Lo)
}
