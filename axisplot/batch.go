// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ornl-ndav/ipns-gov-sub004/axis"
	"github.com/ornl-ndav/ipns-gov-sub004/numfmt"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// batchAxis is one entry of a batch file.
type batchAxis struct {
	Name     string  `yaml:"name"`
	Min      float64 `yaml:"min"`
	Max      float64 `yaml:"max"`
	Scale    string  `yaml:"scale"`
	TwoSided bool    `yaml:"two_sided"`
	Format   string  `yaml:"format"`
	Digits   int     `yaml:"digits"`
	Width    float64 `yaml:"width"`
	Gap      float64 `yaml:"gap"`
}

func (b *batchAxis) config() (axis.Config, error) {
	cfg := axis.Config{
		Min:      b.Min,
		Max:      b.Max,
		TwoSided: b.TwoSided,
		Format:   numfmt.Auto,
		Digits:   b.Digits,
		To:       b.Width,
		Gap:      b.Gap,
	}
	var err error
	if b.Scale != "" {
		if cfg.Scale, err = axis.ParseScale(b.Scale); err != nil {
			return cfg, err
		}
	}
	if b.Format != "" {
		if cfg.Format, err = numfmt.ParseKind(b.Format); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

// readBatch parses a YAML list of axes.
func readBatch(r io.Reader) ([]batchAxis, error) {
	var axes []batchAxis
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&axes); err != nil && err != io.EOF {
		return nil, err
	}
	return axes, nil
}

func newBatchCommand() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Print the ticks of each axis in a YAML file",
		Long: `batch reads a YAML list of axes from FILE ("-" for stdin) and prints a
tick table for each. Each entry may set name, min, max, scale, two_sided,
format, digits, width, and gap.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}
			axes, err := readBatch(r)
			if err != nil {
				return errors.Wrapf(err, "parsing %s", args[0])
			}

			w, closer, err := openOutput(cmd, out)
			if err != nil {
				return err
			}
			for i := range axes {
				b := &axes[i]
				name := b.Name
				if name == "" {
					name = fmt.Sprintf("axis %d", i+1)
				}
				cfg, err := b.config()
				if err != nil {
					closer()
					return errors.Wrapf(err, "%s", name)
				}
				a, err := axis.Compute(cfg)
				if err != nil {
					closer()
					return errors.Wrapf(err, "%s", name)
				}
				if i > 0 {
					fmt.Fprintln(w)
				}
				fmt.Fprintf(w, "# %s\n", name)
				printAxis(w, a, false)
			}
			return closer()
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "write output to `file` (default: stdout)")
	return cmd
}
