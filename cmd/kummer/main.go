// SPDX-License-Identifier: MIT

// Command kummer evaluates, benchmarks and back-tests the confluent
// hypergeometric function M(a,b,z).
//
//	kummer eval 2.5 5.33 6.4
//	kummer bench --n 10000 --metrics
//	kummer backtest --config backtest.yaml
package main

import (
	"log/slog"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("kummer failed", "error", err)
		os.Exit(1)
	}
}
