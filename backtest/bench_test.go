// SPDX-License-Identifier: MIT

package backtest_test

import (
	"testing"

	"github.com/katalvlaran/kummer/backtest"
)

func BenchmarkSamples(b *testing.B) {
	cfg := backtest.DefaultConfig()
	for i := 0; i < b.N; i++ {
		if _, err := backtest.Samples(cfg); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRun_100(b *testing.B) {
	cfg := backtest.DefaultConfig()
	cfg.Samples = 100
	for i := 0; i < b.N; i++ {
		if _, err := backtest.Run(cfg, nil); err != nil {
			b.Fatal(err)
		}
	}
}
