// SPDX-License-Identifier: MIT

// Package gamma provides the real-valued gamma function and the Pochhammer
// symbol (rising factorial) used by the reference ₁F₁ evaluator.
//
// 🚀 What is inside?
//
//	Gamma(z) — Lanczos approximation (g = 7, 8 coefficients) for z ≥ 0.5,
//	           Euler reflection Γ(z)·Γ(1−z) = π / sin(πz) for z < 0.5.
//	Poch(z,k) — rising factorial (z)ₖ = z(z+1)…(z+k−1) = Γ(z+k)/Γ(z).
//
// ✨ Accuracy notes:
//   - Relative error of Gamma is ~1e-15 on moderate positive arguments.
//   - Poles at z = 0, −1, −2, … are NOT suppressed: the result diverges
//     (±Inf, or a huge finite value when sin(πz) rounds away from zero).
//   - Poch is a ratio of two gamma values, so its rounding error grows with
//     k. Prefer the term recurrence of package hyp1f1 on hot paths.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/kummer/gamma"
//
//	g := gamma.Gamma(4.5)   // 11.6317283…
//	p := gamma.Poch(2.5, 3) // 2.5·3.5·4.5 = 39.375
//
// All functions are pure and safe for concurrent use.
package gamma
