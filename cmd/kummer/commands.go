// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/kummer/hyp1f1"
)

// rootFlags are shared by every subcommand.
type rootFlags struct {
	eps     float64
	verbose bool
}

// newRootCmd wires the command tree. Each call builds fresh state so tests can
// execute commands in isolation.
func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:           "kummer",
		Short:         "Evaluate Kummer's confluent hypergeometric function M(a,b,z)",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().Float64Var(&flags.eps, "eps", hyp1f1.MachineEpsilon, "series truncation tolerance")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "log diagnostics at debug level")

	root.AddCommand(
		newEvalCmd(flags),
		newBenchCmd(flags),
		newBacktestCmd(flags),
	)

	return root
}

// logger returns the diagnostics logger writing to w.
func (f *rootFlags) logger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if f.verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// parseTriple parses the positional a, b, z arguments.
func parseTriple(args []string) (a, b, z float64, err error) {
	vals := make([]float64, 3)
	names := [...]string{"a", "b", "z"}
	for i, s := range args[:3] {
		vals[i], err = strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("parse %s: %w", names[i], err)
		}
	}

	return vals[0], vals[1], vals[2], nil
}
