// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/aclements/go-gg/table"
	"github.com/fatih/color"
	"github.com/ornl-ndav/ipns-gov-sub004/axis"
	"github.com/ornl-ndav/ipns-gov-sub004/numfmt"
	"github.com/ornl-ndav/ipns-gov-sub004/ticklayout"
	"github.com/spf13/cobra"
)

func newTicksCommand() *cobra.Command {
	var (
		flags axisFlags
		out   string
		all   bool
	)
	cmd := &cobra.Command{
		Use:   "ticks",
		Short: "Print the ticks of an axis as a table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.config(cmd.InOrStdin())
			if err != nil {
				return err
			}
			a, err := axis.Compute(cfg)
			if err != nil {
				return err
			}
			w, closer, err := openOutput(cmd, out)
			if err != nil {
				return err
			}
			printAxis(w, a, all)
			return closer()
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&out, "output", "o", "", "write output to `file` (default: stdout)")
	cmd.Flags().BoolVarP(&all, "all", "a", false, "include mid ticks")
	return cmd
}

// ticksToTable returns a table with one row per tick of a. Mid ticks
// are only included if mids is set.
func ticksToTable(a *axis.Axis, mids bool) *table.Table {
	var (
		values, classes, labels []string
		pixels                  []int
	)
	for _, t := range a.Ticks {
		if !mids && t.Class == ticklayout.Mid {
			continue
		}
		values = append(values, numfmt.FormatFull(t.Value, a.Spec.Digits+1))
		pixels = append(pixels, t.Pixel)
		classes = append(classes, t.Class.String())
		labels = append(labels, t.Label)
	}
	return new(table.Builder).
		Add("value", values).
		Add("pixel", pixels).
		Add("class", classes).
		Add("label", labels).
		Done()
}

// printAxis prints a summary line, the tick table of a, and the label
// suffix if there is one.
func printAxis(w io.Writer, a *axis.Axis, mids bool) {
	fmt.Fprintf(w, "%v, label every %d, %s labels\n", a.Mapper, a.Skip, a.Spec.Kind)
	table.Fprint(w, ticksToTable(a, mids))
	if s := a.Suffix(); s != "" {
		color.New(color.Bold, color.FgCyan).Fprintf(w, "labels in units of %s\n", s)
	}
}
