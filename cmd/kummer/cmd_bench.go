// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/kummer/hyp1f1"
)

type benchFlags struct {
	a, b, z float64
	n       int
	metrics bool
}

func newBenchCmd(flags *rootFlags) *cobra.Command {
	bf := &benchFlags{}

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time repeated evaluations of M(a,b,z)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if bf.n <= 0 {
				return fmt.Errorf("bench: --n must be > 0, got %d", bf.n)
			}

			log := flags.logger(cmd.ErrOrStderr())
			opts := []hyp1f1.Option{hyp1f1.WithLogger(log)}
			m := newMetrics()
			regime := hyp1f1.Classify(bf.a, bf.b, bf.z).String()

			var v float64
			start := time.Now()
			for i := 0; i < bf.n; i++ {
				t0 := time.Now()
				v = hyp1f1.Hyp1F1(bf.a, bf.b, bf.z, flags.eps, opts...)
				m.observeLatency(regime, time.Since(t0))
			}
			elapsed := time.Since(start)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "value=%v regime=%s\n", v, regime)
			fmt.Fprintf(out, "evaluations=%d elapsed=%s per_eval=%s\n",
				bf.n, elapsed, elapsed/time.Duration(bf.n))
			log.Debug("bench finished", "evaluations", bf.n, "elapsed", elapsed)

			if bf.metrics {
				return m.dump(out)
			}

			return nil
		},
	}
	cmd.Flags().Float64Var(&bf.a, "a", 2.5, "parameter a")
	cmd.Flags().Float64Var(&bf.b, "b", 5.33, "parameter b")
	cmd.Flags().Float64Var(&bf.z, "z", 6.4, "argument z")
	cmd.Flags().IntVar(&bf.n, "n", 10000, "number of evaluations")
	cmd.Flags().BoolVar(&bf.metrics, "metrics", false, "dump prometheus metrics in text format")

	return cmd
}
