// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command axisplot computes calibrated axes and prints or draws them.
//
// Each subcommand takes the axis bounds and options as flags:
//
//	axisplot ticks --min 0 --max 49000 --width 1000
//	axisplot svg --min -50 --max 50 --scale log --two-sided -o axis.svg
//	axisplot png --min 1 --max 1e6 --scale truelog -o axis.png
//	axisplot curve --min -1000 --max 1000 -o curve.svg
//
// The bounds can also be taken from data with --data, which reads
// whitespace-separated numbers from a file ("-" for stdin).
//
// axisplot batch reads a YAML list of axes and prints a tick table for
// each. axisplot script reads axisplot command lines, one per line,
// and runs each.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/ssh/terminal"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "axisplot: %v\n", err)
		os.Exit(1)
	}
}

func setupLogger(logLevel string) error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return errors.Wrap(err, "parsing --log-level")
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{})
	if terminal.IsTerminal(int(os.Stderr.Fd())) {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.Kitchen,
		})
	}
	return nil
}

func newRootCommand() *cobra.Command {
	var logLevel string
	cmd := &cobra.Command{
		Use:   "axisplot",
		Short: "Compute and draw calibrated axes",
		Long: `axisplot chooses tick positions and labels for linear and logarithmic
axes and prints them as tables or draws them as SVG and PNG previews.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return setupLogger(logLevel)
		},
	}
	cmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "info", "log level (trace, debug, info, warn, error)")

	cmd.AddCommand(
		newTicksCommand(),
		newSVGCommand(),
		newPNGCommand(),
		newCurveCommand(),
		newBatchCommand(),
		newScriptCommand(),
	)
	return cmd
}
