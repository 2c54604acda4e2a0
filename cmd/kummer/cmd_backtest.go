// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/kummer/backtest"
	"github.com/katalvlaran/kummer/hyp1f1"
)

type backtestFlags struct {
	config  string
	samples int
	seed    int64
	metrics bool
}

func newBacktestCmd(flags *rootFlags) *cobra.Command {
	bf := &backtestFlags{}

	cmd := &cobra.Command{
		Use:   "backtest",
		Short: "Cross-validate the dispatcher against the gamma-ratio reference",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := backtest.DefaultConfig()
			if bf.config != "" {
				loaded, err := backtest.LoadConfig(bf.config)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			if cmd.Flags().Changed("samples") {
				cfg.Samples = bf.samples
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = bf.seed
			}
			if cmd.Flags().Changed("eps") {
				cfg.Eps = flags.eps
			}

			log := flags.logger(cmd.ErrOrStderr())
			m := newMetrics()
			rep, err := backtest.Run(cfg, m, hyp1f1.WithLogger(log))
			if err != nil {
				return err
			}
			log.Debug("backtest finished", "samples", rep.Samples, "failed", rep.Failed, "max_error", rep.MaxError)

			out := cmd.OutOrStdout()
			if err := rep.WriteYAML(out); err != nil {
				return err
			}
			if bf.metrics {
				m.setMaxError(rep.MaxError)
				if err := m.dump(out); err != nil {
					return err
				}
			}
			if !rep.OK() {
				return fmt.Errorf("backtest: %d of %d samples exceed tolerance %g", rep.Failed, rep.Samples, rep.Tolerance)
			}

			return nil
		},
	}
	cmd.Flags().StringVarP(&bf.config, "config", "c", "", "YAML config file (defaults apply to absent keys)")
	cmd.Flags().IntVar(&bf.samples, "samples", backtest.DefaultSamples, "number of sampled triples")
	cmd.Flags().Int64Var(&bf.seed, "seed", backtest.DefaultSeed, "sampling seed (0 selects the default)")
	cmd.Flags().BoolVar(&bf.metrics, "metrics", false, "dump prometheus metrics in text format")

	return cmd
}
