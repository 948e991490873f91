// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"github.com/ornl-ndav/ipns-gov-sub004/axis"
	"github.com/ornl-ndav/ipns-gov-sub004/numfmt"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// axisFlags are the flags that describe one axis.
type axisFlags struct {
	min, max       float64
	scale          string
	twoSided       bool
	format         string
	digits         int
	width          float64
	gap            float64
	pseudoLogScale float64
	data           string
}

func (f *axisFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.Float64Var(&f.min, "min", 0, "axis minimum")
	fs.Float64Var(&f.max, "max", 1, "axis maximum")
	fs.StringVarP(&f.scale, "scale", "s", "linear", "axis scale (linear, log, truelog)")
	fs.BoolVar(&f.twoSided, "two-sided", false, "mirror log calibrations on both sides of zero")
	fs.StringVarP(&f.format, "format", "f", "auto", "label format (decimal, scientific, engineering, auto)")
	fs.IntVar(&f.digits, "digits", numfmt.DefaultDigits, "significant digits in labels")
	fs.Float64VarP(&f.width, "width", "w", axis.DefaultWidth, "axis length in pixels")
	fs.Float64Var(&f.gap, "gap", 0, "minimum pixel gap between labels (default 6)")
	fs.Float64Var(&f.pseudoLogScale, "pseudolog-scale", 0, "compression factor of a log axis (default 1000/max(|min|,|max|))")
	fs.StringVar(&f.data, "data", "", "take --min and --max from the numbers in `file` (\"-\" for stdin)")
}

// config returns the axis.Config described by f. stdin is read if
// --data is "-".
func (f *axisFlags) config(stdin io.Reader) (axis.Config, error) {
	scale, err := axis.ParseScale(f.scale)
	if err != nil {
		return axis.Config{}, err
	}
	kind, err := numfmt.ParseKind(f.format)
	if err != nil {
		return axis.Config{}, err
	}
	cfg := axis.Config{
		Min:            f.min,
		Max:            f.max,
		Scale:          scale,
		TwoSided:       f.twoSided,
		Format:         kind,
		Digits:         f.digits,
		To:             f.width,
		Gap:            f.gap,
		PseudoLogScale: f.pseudoLogScale,
	}
	if f.data == "" {
		return cfg, nil
	}

	r := stdin
	if f.data != "-" {
		file, err := os.Open(f.data)
		if err != nil {
			return cfg, err
		}
		defer file.Close()
		r = file
	}
	xs, err := readNumbers(r)
	if err != nil {
		return cfg, errors.Wrapf(err, "reading %s", f.data)
	}
	if len(xs) == 0 {
		logrus.WithField("file", f.data).Warn("no data, using --min and --max")
	}
	return axis.FromData(xs, cfg), nil
}

// readNumbers reads whitespace-separated numbers from r.
func readNumbers(r io.Reader) ([]float64, error) {
	var xs []float64
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		x, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil {
			return nil, err
		}
		xs = append(xs, x)
	}
	return xs, sc.Err()
}

// openOutput returns the writer for -o path, or the command's output if
// path is "" or "-".
func openOutput(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
