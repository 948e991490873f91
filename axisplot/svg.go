// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"

	svg "github.com/ajstarks/svgo"
	"github.com/ornl-ndav/ipns-gov-sub004/ticklayout"
	"github.com/spf13/cobra"
)

func newSVGCommand() *cobra.Command {
	var flags imageFlags
	cmd := &cobra.Command{
		Use:   "svg",
		Short: "Draw an axis as SVG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return flags.render(cmd, writeSVG)
		},
	}
	flags.register(cmd)
	return cmd
}

func writeSVG(w io.Writer, f frame) error {
	width, height := f.size()
	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:white")

	y := f.axisY()
	if f.panel > 0 {
		canvas.Gstyle("stroke:#ddd;stroke-width:1")
		for _, t := range f.a.Ticks {
			if t.Class.Grid() {
				canvas.Line(f.x(t), 0, f.x(t), y)
			}
		}
		canvas.Gend()
	}

	canvas.Gstyle("stroke:black;stroke-width:1")
	x0, x1 := f.axisEnds()
	canvas.Line(x0, y, x1, y)
	for _, t := range f.a.Ticks {
		canvas.Line(f.x(t), y, f.x(t), y+t.Class.Length())
	}
	canvas.Gend()

	canvas.Gstyle("font-family:monospace;font-size:13px;text-anchor:middle;fill:black")
	ly := f.labelY() + fontAscent
	for _, t := range f.a.Ticks {
		if t.Class == ticklayout.Major {
			canvas.Text(f.x(t), ly, t.Label)
		}
	}
	if s := f.a.Suffix(); s != "" {
		canvas.Text(x1, ly+fontHeight+2, s, "text-anchor:end")
	}
	canvas.Gend()

	canvas.End()
	return nil
}
