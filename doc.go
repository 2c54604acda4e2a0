// SPDX-License-Identifier: MIT

// Package kummer is a small numeric library for Kummer's confluent
// hypergeometric function M(a,b,z) = ₁F₁(a;b;z) over real parameters in
// double precision.
//
// 🚀 What is inside?
//
//	gamma/    — Lanczos gamma function with reflection, Pochhammer symbol
//	hyp1f1/   — regime classification, closed-form identities, the fast
//	            power series, the convergence-tracked series for terminating
//	            (polynomial) cases, and the gamma-ratio reference evaluator
//	backtest/ — deterministic random sweeps comparing the dispatcher with
//	            the reference, YAML config and reports
//	cmd/kummer — CLI: eval, bench (prometheus latency histograms), backtest
//
// ✨ Guarantees:
//   - Pure functions: no global state, safe for concurrent use.
//   - Bounded work: every series has a fixed iteration cap (500/1000/100).
//   - Failure is a value: NaN for invalid input or an untrustworthy series,
//     +Inf for true poles; hyp1f1.Evaluate names the case as an error.
//
// Out of scope: complex arguments, arbitrary precision, asymptotic
// expansions for large |z|, continued fractions and quadrature.
//
//	go get github.com/katalvlaran/kummer
package kummer
