// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package axis computes a complete calibrated axis: tick values, their
// pixel positions, labels, and the shared exponent suffix.
//
// It ties together the subdividers in calib, the label formats in
// numfmt, the coordinate mapping in axismap, and the label layout in
// ticklayout.
package axis

import (
	"math"
	"strings"

	"github.com/aclements/go-moremath/stats"
	"github.com/ornl-ndav/ipns-gov-sub004/axismap"
	"github.com/ornl-ndav/ipns-gov-sub004/calib"
	"github.com/ornl-ndav/ipns-gov-sub004/numfmt"
	"github.com/ornl-ndav/ipns-gov-sub004/ticklayout"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Scale is the kind of axis.
type Scale int

const (
	Linear Scale = iota

	// PseudoLog is a logarithmic axis that stays defined at and
	// around zero.
	PseudoLog

	// TrueLog is a logarithmic axis over strictly positive data.
	TrueLog
)

var scaleNames = map[string]Scale{
	"linear":    Linear,
	"lin":       Linear,
	"pseudolog": PseudoLog,
	"log":       PseudoLog,
	"truelog":   TrueLog,
}

func (s Scale) String() string {
	switch s {
	case Linear:
		return "linear"
	case PseudoLog:
		return "pseudolog"
	case TrueLog:
		return "truelog"
	}
	return "Scale(?)"
}

// mode returns the coordinate mapping mode of s.
func (s Scale) mode() axismap.Mode {
	switch s {
	case PseudoLog:
		return axismap.PseudoLog
	case TrueLog:
		return axismap.TrueLog
	}
	return axismap.Linear
}

var (
	// ErrUnknownScale is returned by ParseScale for unrecognized
	// names.
	ErrUnknownScale = errors.New("unknown axis scale")

	// ErrNotFinite is returned by Compute for NaN or infinite
	// bounds.
	ErrNotFinite = errors.New("axis bounds must be finite")
)

// ParseScale returns the Scale named s. "log" is the same as
// "pseudolog".
func ParseScale(s string) (Scale, error) {
	if sc, ok := scaleNames[strings.ToLower(s)]; ok {
		return sc, nil
	}
	return 0, errors.Wrapf(ErrUnknownScale, "%q", s)
}

// DefaultWidth is the pixel length of an axis whose Config leaves From
// and To zero.
const DefaultWidth = 600

// Config describes an axis to compute.
type Config struct {
	// Min and Max are the data bounds. They may be given in either
	// order. Equal bounds are widened.
	Min, Max float64

	Scale Scale

	// TwoSided places log calibrations symmetrically on both sides
	// of zero. It only applies to PseudoLog.
	TwoSided bool

	Format numfmt.Kind

	// Digits is the minimum number of significant digits in labels.
	// Linear axes use more if the tick step needs them.
	Digits int

	// From and To are the pixel positions of Min and Max. If both
	// are 0, the axis runs from 0 to DefaultWidth.
	From, To float64

	// Gap is the minimum pixel gap between labels, as in
	// ticklayout.Options.
	Gap float64

	// PseudoLogScale overrides the compression factor of a PseudoLog
	// axis. 0 means the default.
	PseudoLogScale float64

	// LabelWidth measures labels. If nil, ticklayout's default font
	// metrics are used.
	LabelWidth func(string) float64
}

// Axis is a computed axis.
type Axis struct {
	// Interval is the normalized data interval.
	Interval calib.Interval

	Mapper *axismap.Mapper

	// Spec is the label format shared by all ticks.
	Spec numfmt.Spec

	// Values are the calibration values before layout.
	Values []float64

	// Ticks are the laid-out ticks in ascending value order.
	Ticks []ticklayout.Tick

	// Skip is the label skip factor chosen by the layout.
	Skip int
}

// Suffix returns the exponent suffix to print once next to the axis,
// such as "×10^3", or "".
func (a *Axis) Suffix() string {
	return a.Spec.Suffix()
}

// Labels returns the labels of the major ticks in order.
func (a *Axis) Labels() []string {
	var labels []string
	for _, t := range a.Ticks {
		if t.IsMajor() {
			labels = append(labels, t.Label)
		}
	}
	return labels
}

// Compute calibrates the axis described by cfg.
func Compute(cfg Config) (*Axis, error) {
	for _, v := range []float64{cfg.Min, cfg.Max} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, errors.Wrapf(ErrNotFinite, "[%g, %g]", cfg.Min, cfg.Max)
		}
	}
	iv := calib.NewInterval(cfg.Min, cfg.Max)

	from, to := cfg.From, cfg.To
	if from == 0 && to == 0 {
		to = DefaultWidth
	}
	var opts []axismap.Option
	if cfg.PseudoLogScale > 0 {
		opts = append(opts, axismap.PseudoLogScale(cfg.PseudoLogScale))
	}
	m, err := axismap.New(iv, from, to, cfg.Scale.mode(), opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "%v axis", cfg.Scale)
	}

	a := &Axis{Interval: iv, Mapper: m}
	digits := cfg.Digits
	if digits <= 0 {
		digits = numfmt.DefaultDigits
	}
	mirror := false
	switch cfg.Scale {
	case Linear:
		lt := calib.Linear(iv)
		a.Values = lt.Values()
		digits = linearDigits(lt, iv, digits)
	case PseudoLog, TrueLog:
		twoSided := cfg.Scale == PseudoLog && cfg.TwoSided
		mirror = twoSided && iv.Min < 0
		vals, lt, linear := calib.LogTicks(iv, twoSided)
		a.Values = vals
		if linear {
			// Too narrow for log steps.
			digits = linearDigits(lt, iv, digits)
		}
	default:
		return nil, errors.Wrapf(ErrUnknownScale, "%v", cfg.Scale)
	}
	a.Spec = numfmt.ForInterval(cfg.Format, digits, iv.Min, iv.Max)

	o := ticklayout.Options{
		LabelWidth:     cfg.LabelWidth,
		Format:         a.Spec,
		Gap:            cfg.Gap,
		Mirror:         mirror,
		MinorMidpoints: true,
		ForceEnd:       true,
	}
	a.Ticks, a.Skip = ticklayout.LayoutSkip(a.Values, m, o)

	calib.Logger.WithFields(logrus.Fields{
		"interval": iv,
		"scale":    cfg.Scale,
		"values":   len(a.Values),
		"ticks":    len(a.Ticks),
		"skip":     a.Skip,
	}).Debug("computed axis")
	return a, nil
}

// linearDigits returns the number of significant digits needed to
// label every grid point of lt distinctly, and at least min.
func linearDigits(lt calib.LinearTicks, iv calib.Interval, min int) int {
	mag := math.Max(iv.Magnitude(), math.Max(math.Abs(lt.Start), math.Abs(lt.Last())))
	if mag == 0 {
		return min
	}
	need := calib.Decade(mag) - lt.Resolution() + 1
	if need > 15 {
		need = 15
	}
	if need < min {
		return min
	}
	return need
}

// FromData returns cfg with Min and Max set to the bounds of the
// finite values in xs. If xs has no finite values, cfg is returned
// unchanged.
func FromData(xs []float64, cfg Config) Config {
	finite := make([]float64, 0, len(xs))
	for _, x := range xs {
		if !math.IsNaN(x) && !math.IsInf(x, 0) {
			finite = append(finite, x)
		}
	}
	if len(finite) == 0 {
		return cfg
	}
	cfg.Min, cfg.Max = stats.Bounds(finite)
	return cfg
}
