// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"math"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/vec"
	"github.com/ornl-ndav/ipns-gov-sub004/axismap"
	"github.com/ornl-ndav/ipns-gov-sub004/calib"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newCurveCommand() *cobra.Command {
	var (
		flags   axisFlags
		out     string
		force   bool
		samples int
	)
	cmd := &cobra.Command{
		Use:   "curve",
		Short: "Plot the world-to-pixel mapping of each scale",
		Long: `curve plots pixel position against world value over [--min, --max] for
the linear, pseudo-log, and (for positive intervals) true-log mappings.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.config(cmd.InOrStdin())
			if err != nil {
				return err
			}
			iv := calib.NewInterval(cfg.Min, cfg.Max)
			tab, err := curveTable(iv, cfg.To, cfg.PseudoLogScale, samples)
			if err != nil {
				return err
			}

			w, closer, err := openOutput(cmd, out)
			if err != nil {
				return err
			}
			if err := checkTerminal(w, force); err != nil {
				return err
			}
			p := gg.NewPlot(tab)
			p.Add(gg.LayerLines{X: "value", Y: "pixel", Color: "scale"})
			p.Add(gg.AxisLabel("x", "world value"), gg.AxisLabel("y", "pixel"))
			p.Add(gg.Title(iv.String()))
			if err := p.WriteSVG(w, 600, 400); err != nil {
				closer()
				return err
			}
			return closer()
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&out, "output", "o", "", "write output to `file` (default: stdout)")
	cmd.Flags().BoolVar(&force, "force", false, "write to stdout even if it is a terminal")
	cmd.Flags().IntVar(&samples, "samples", 200, "number of points per curve")
	return cmd
}

// curveTable samples each applicable mapping over iv and returns a
// table with columns "value", "pixel", and "scale".
func curveTable(iv calib.Interval, width, c float64, samples int) (*table.Table, error) {
	if samples < 2 {
		return nil, errors.Errorf("need at least 2 samples, got %d", samples)
	}
	var opts []axismap.Option
	if c > 0 {
		opts = append(opts, axismap.PseudoLogScale(c))
	}

	var values, pixels []float64
	var scales []string
	for _, mode := range []axismap.Mode{axismap.Linear, axismap.PseudoLog, axismap.TrueLog} {
		m, err := axismap.New(iv, 0, width, mode, opts...)
		if errors.Cause(err) == axismap.ErrNonPositive {
			logrus.WithField("interval", iv).Info("skipping true-log curve for non-positive interval")
			continue
		} else if err != nil {
			return nil, err
		}
		xs := vec.Linspace(iv.Min, iv.Max, samples)
		if mode == axismap.TrueLog {
			xs = vec.Logspace(math.Log10(iv.Min), math.Log10(iv.Max), samples, 10)
		}
		for _, x := range xs {
			values = append(values, x)
			pixels = append(pixels, m.ToPixel(x))
			scales = append(scales, mode.String())
		}
	}
	return new(table.Builder).
		Add("value", values).
		Add("pixel", pixels).
		Add("scale", scales).
		Done(), nil
}
