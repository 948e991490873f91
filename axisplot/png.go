// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/ornl-ndav/ipns-gov-sub004/ticklayout"
	"github.com/spf13/cobra"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

func newPNGCommand() *cobra.Command {
	var (
		flags imageFlags
		zoom  int
	)
	cmd := &cobra.Command{
		Use:   "png",
		Short: "Draw an axis as PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return flags.render(cmd, func(w io.Writer, f frame) error {
				return writePNG(w, f, zoom)
			})
		},
	}
	flags.register(cmd)
	cmd.Flags().IntVar(&zoom, "zoom", 1, "scale the image up by `n`")
	return cmd
}

var gridColor = color.Gray{0xdd}

// drawAxis draws f into a new image at 1:1 scale.
func drawAxis(f frame) *image.RGBA {
	width, height := f.size()
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)

	y := f.axisY()
	for _, t := range f.a.Ticks {
		if f.panel > 0 && t.Class.Grid() {
			vline(dst, f.x(t), 0, y, gridColor)
		}
	}
	x0, x1 := f.axisEnds()
	for x := x0; x <= x1; x++ {
		dst.Set(x, y, color.Black)
	}
	for _, t := range f.a.Ticks {
		vline(dst, f.x(t), y, y+t.Class.Length(), color.Black)
	}

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.Black,
		Face: basicfont.Face7x13,
	}
	ly := f.labelY() + fontAscent
	for _, t := range f.a.Ticks {
		if t.Class != ticklayout.Major {
			continue
		}
		w := d.MeasureString(t.Label)
		d.Dot = fixed.Point26_6{X: fixed.I(f.x(t)) - w/2, Y: fixed.I(ly)}
		d.DrawString(t.Label)
	}
	if s := f.a.Suffix(); s != "" {
		d.Dot = fixed.Point26_6{X: fixed.I(x1) - d.MeasureString(s), Y: fixed.I(ly + fontHeight + 2)}
		d.DrawString(s)
	}
	return dst
}

func vline(dst *image.RGBA, x, y0, y1 int, c color.Color) {
	for y := y0; y <= y1; y++ {
		dst.Set(x, y, c)
	}
}

func writePNG(w io.Writer, f frame, zoom int) error {
	img := drawAxis(f)
	if zoom > 1 {
		// Nearest neighbor keeps the 1-pixel lines and bitmap
		// font sharp.
		sb := img.Bounds()
		big := image.NewRGBA(image.Rect(0, 0, sb.Dx()*zoom, sb.Dy()*zoom))
		draw.NearestNeighbor.Scale(big, big.Bounds(), img, sb, draw.Src, nil)
		img = big
	}
	return png.Encode(w, img)
}
