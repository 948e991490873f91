// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package calib chooses calibration values ("ticks") for numeric axes.
//
// Linear axes get an evenly spaced grid whose step is a nice number,
// one of {1, 2, 2.5, 5, 10}×10^k. Logarithmic axes get a geometric
// sequence: {1, 2, 5}×10^k when the data spans a decade or more, or a
// denser template when it spans less. Both work on an Interval, which
// is always normalized so that Min < Max.
package calib

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
)

// Logger receives diagnostics, currently only for degenerate
// intervals. It is read, never written, by this package.
var Logger logrus.FieldLogger = logrus.StandardLogger()

// Interval is a closed numeric interval [Min, Max] with Min < Max.
type Interval struct {
	Min, Max float64
}

// NewInterval returns the interval spanned by a and b.
//
// The endpoints are swapped if necessary. If a == b, the interval
// would be degenerate, so Max is widened by 1 and a warning is logged;
// callers still get a usable axis. NaN and infinite endpoints are a
// precondition violation and panic.
func NewInterval(a, b float64) Interval {
	if math.IsNaN(a) || math.IsNaN(b) || math.IsInf(a, 0) || math.IsInf(b, 0) {
		panic(fmt.Sprintf("calib: interval endpoints must be finite, got [%v, %v]", a, b))
	}
	if a > b {
		a, b = b, a
	}
	if a == b {
		Logger.WithFields(logrus.Fields{
			"min": a,
			"max": b,
		}).Warn("degenerate interval, widening max by 1")
		b = a + 1
	}
	return Interval{a, b}
}

// Span returns Max - Min.
func (iv Interval) Span() float64 {
	return iv.Max - iv.Min
}

// Contains reports whether x lies in iv, allowing a tiny amount of
// slack relative to the span so that grid points computed by repeated
// addition are not lost to rounding.
func (iv Interval) Contains(x float64) bool {
	slack := iv.Span() * 1e-9
	return iv.Min-slack <= x && x <= iv.Max+slack
}

// Magnitude returns the largest absolute value in iv.
func (iv Interval) Magnitude() float64 {
	return math.Max(math.Abs(iv.Min), math.Abs(iv.Max))
}

// StraddlesZero reports whether iv includes 0.
func (iv Interval) StraddlesZero() bool {
	return iv.Min <= 0 && iv.Max >= 0
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%g, %g]", iv.Min, iv.Max)
}

// Decade returns ⌊log10(x)⌋ for x > 0.
//
// math.Log10 is not exact at powers of ten (Log10(1000) is slightly
// below 3), so the estimate is corrected against math.Pow10, which is.
func Decade(x float64) int {
	p := int(math.Floor(math.Log10(x)))
	if math.Pow10(p+1) <= x {
		p++
	} else if math.Pow10(p) > x {
		p--
	}
	if p < -300 || p > 300 {
		panic(fmt.Sprintf("calib: decade of %g out of range", x))
	}
	return p
}

// scaled returns m×10^p. Negative powers divide rather than multiply
// so that values like 3×10^-1 come out as the nearest double to 0.3.
func scaled(m float64, p int) float64 {
	if p < 0 {
		return m / math.Pow10(-p)
	}
	return m * math.Pow10(p)
}
