// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/kummer/hyp1f1"
)

func newEvalCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "eval a b z",
		Short: "Print the regime and value of M(a,b,z)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, z, err := parseTriple(args)
			if err != nil {
				return err
			}

			log := flags.logger(cmd.ErrOrStderr())
			regime := hyp1f1.Classify(a, b, z)
			v, evalErr := hyp1f1.Evaluate(a, b, z, flags.eps, hyp1f1.WithLogger(log))
			log.Debug("evaluated", "a", a, "b", b, "z", z, "regime", regime.String())

			fmt.Fprintf(cmd.OutOrStdout(), "regime=%s value=%v\n", regime, v)
			if evalErr != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "outcome=%v\n", evalErr)
			}

			return nil
		},
	}
}
