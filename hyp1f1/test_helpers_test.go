// SPDX-License-Identifier: MIT

package hyp1f1_test

import (
	"bytes"
	"log/slog"
	"math"
	"math/big"
)

// eps is the tolerance every evaluator is called with in these tests.
const eps = 2.2e-16

// relErr returns |got−want| / |want|, or |got| when want is zero.
func relErr(got, want float64) float64 {
	if want == 0 {
		return math.Abs(got)
	}

	return math.Abs(got-want) / math.Abs(want)
}

// captureLogger returns a text logger writing into the returned buffer.
func captureLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})

	return slog.New(h), &buf
}

// bigRecurrence sums the Kummer term recurrence in 256-bit arithmetic until
// the term drops below 1e-40 of the sum. It is an oracle independent of the
// float64 rounding path of the evaluators under test.
func bigRecurrence(a, b, z float64) float64 {
	const prec = 256
	newF := func(x float64) *big.Float { return new(big.Float).SetPrec(prec).SetFloat64(x) }

	term := newF(1)
	sum := newF(1)
	bz := newF(z)
	cut := newF(1e-40)
	for k := 0; k < 5000; k++ {
		num := newF(a + float64(k))
		num.Mul(num, bz)
		den := newF(b + float64(k))
		den.Mul(den, newF(float64(k+1)))
		term.Mul(term, num)
		term.Quo(term, den)
		sum.Add(sum, term)

		absTerm := new(big.Float).SetPrec(prec).Abs(term)
		limit := new(big.Float).SetPrec(prec).Abs(sum)
		limit.Mul(limit, cut)
		if absTerm.Cmp(limit) <= 0 {
			break
		}
	}
	f, _ := sum.Float64()

	return f
}
