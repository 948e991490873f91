// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"os"

	"github.com/ornl-ndav/ipns-gov-sub004/axis"
	"github.com/ornl-ndav/ipns-gov-sub004/ticklayout"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/ssh/terminal"
)

// errTerminal is returned when image output would go to a terminal.
var errTerminal = errors.New("refusing to write an image to a terminal (use -o or --force)")

// checkTerminal returns errTerminal if w is a terminal, unless force is
// set.
func checkTerminal(w io.Writer, force bool) error {
	if force {
		return nil
	}
	f, ok := w.(*os.File)
	if !ok || os.Getenv("TERM") == "dumb" {
		return nil
	}
	if terminal.IsTerminal(int(f.Fd())) {
		return errTerminal
	}
	return nil
}

// Geometry of a rendered horizontal axis, in pixels.
const (
	margin     = 40 // left and right of the axis
	fontHeight = 13 // basicfont.Face7x13
	fontAscent = 11
)

// frame lays out a horizontal axis with a grid panel above it.
type frame struct {
	a *axis.Axis

	// panel is the height of the grid panel above the axis line.
	panel int
}

func (f frame) size() (width, height int) {
	width = int(f.a.Mapper.Pixels()) + 2*margin
	height = f.panel + ticklayout.Major.Length() + 2*fontHeight + 12
	return
}

// axisY is the y of the axis line.
func (f frame) axisY() int {
	return f.panel + 4
}

// x returns the x position of tick t.
func (f frame) x(t ticklayout.Tick) int {
	return margin + t.Pixel
}

// labelY returns the y of the top of the tick labels.
func (f frame) labelY() int {
	return f.axisY() + ticklayout.Major.Length() + 2
}

// axisEnds returns the x positions of the ends of the axis line.
func (f frame) axisEnds() (x0, x1 int) {
	from, to := f.a.Mapper.From, f.a.Mapper.To
	if from > to {
		from, to = to, from
	}
	return margin + int(from), margin + int(to)
}

// imageFlags are the flags shared by the image-producing commands.
type imageFlags struct {
	axisFlags
	out   string
	force bool
	panel int
}

func (f *imageFlags) register(cmd *cobra.Command) {
	f.axisFlags.register(cmd)
	cmd.Flags().StringVarP(&f.out, "output", "o", "", "write output to `file` (default: stdout)")
	cmd.Flags().BoolVar(&f.force, "force", false, "write to stdout even if it is a terminal")
	cmd.Flags().IntVar(&f.panel, "panel", 120, "height of the grid panel above the axis")
}

// render computes the axis described by f and writes it with draw.
func (f *imageFlags) render(cmd *cobra.Command, draw func(io.Writer, frame) error) error {
	cfg, err := f.config(cmd.InOrStdin())
	if err != nil {
		return err
	}
	a, err := axis.Compute(cfg)
	if err != nil {
		return err
	}
	w, closer, err := openOutput(cmd, f.out)
	if err != nil {
		return err
	}
	if err := checkTerminal(w, f.force); err != nil {
		return err
	}
	if err := draw(w, frame{a: a, panel: f.panel}); err != nil {
		closer()
		return err
	}
	return closer()
}
