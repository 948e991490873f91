// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calib

import "math"

// A Template is a set of tick mantissas for log axes spanning less
// than a decade.
//
// A template is written as one geometric cycle, such as {1, 2, 5, 10}.
// The cycle is repeated, scaled by its last/first ratio each time,
// until it fills a decade, so {1, 1.25, 1.5, 2} yields
// {1, 1.25, 1.5, 2, 2.5, 3, 4, 5, 6, 8}. This repetition extends the
// classic scheme, which scales three fixed templates to the data's
// decade without filling the rest of the decade.
type Template struct {
	Name string

	// Limit is the largest hi/lo ratio this template is used for.
	Limit float64

	// Mantissas are the tick mantissas within one decade, in
	// ascending order and in [1, 10).
	Mantissas []float64
}

func newTemplate(name string, limit float64, cycle ...float64) Template {
	t := Template{Name: name, Limit: limit}
	factor := cycle[len(cycle)-1] / cycle[0]
	for c := 1.0; c < 10; c *= factor {
		for _, g := range cycle[:len(cycle)-1] {
			if m := g * c; m < 10 {
				t.Mantissas = append(t.Mantissas, m)
			}
		}
	}
	return t
}

// nearTemplates are used when the data spans less than a decade,
// ordered from densest to sparsest.
var nearTemplates = []Template{
	newTemplate("fine", 2, 1, 1.25, 1.5, 2),
	newTemplate("medium", 5, 1, 1.5, 2, 3, 5),
	newTemplate("coarse", 10, 1, 2, 5, 10),
}

// farMantissas are used when the data spans a decade or more.
var farMantissas = []float64{1, 2, 5}

// zeroDecades is the number of decades, counting the top one, shown
// above 0 when a log interval touches zero.
const zeroDecades = 3

// SubdivideLog is shorthand for Log(NewInterval(min, max), twoSided).
func SubdivideLog(min, max float64, twoSided bool) []float64 {
	return Log(NewInterval(min, max), twoSided)
}

// Log returns calibration values for a logarithmic axis over iv, in
// ascending order from the value nearest the origin outward.
//
// If twoSided is false, negative data is clipped to zero. If twoSided
// is true, the values are magnitudes covering max(|Min|, |Max|) and
// the caller mirrors them onto the negative side.
//
// If the (clipped or magnitude) range touches zero, the result starts
// with a single 0, followed by values from the top few decades below
// the maximum, since zero itself has no decade.
//
// The result brackets the range: its first value is <= the low end
// and its last is >= the high end, except when the range spans too
// little of a decade for any template and linear steps are used.
func Log(iv Interval, twoSided bool) []float64 {
	vals, _, _ := LogTicks(iv, twoSided)
	return vals
}

// LogTicks is like Log, but also reports whether the range was too
// narrow for any template. In that case linear is true and lt is the
// linear grid the values came from, so callers can pick label
// precision from lt.
func LogTicks(iv Interval, twoSided bool) (vals []float64, lt LinearTicks, linear bool) {
	lo, hi := LogRange(iv, twoSided)

	if lo == 0 {
		vals = append(vals, 0)
		lo = scaled(1, Decade(hi)-(zeroDecades-1))
	}

	if lo < hi/10 {
		return append(vals, logGrid(lo, hi, farMantissas)...), lt, false
	}

	t := NearTemplate(hi / lo)
	grid := logGrid(lo, hi, t.Mantissas)
	inside := 0
	for _, v := range grid {
		if v >= lo*(1-1e-9) && v <= hi*(1+1e-9) {
			inside++
		}
	}
	if inside < 3 {
		lt = Linear(Interval{lo, hi})
		return append(vals, lt.Values()...), lt, true
	}
	return append(vals, grid...), lt, false
}

// LogRange returns the non-negative range [lo, hi] that Log
// subdivides for iv.
func LogRange(iv Interval, twoSided bool) (lo, hi float64) {
	if twoSided {
		hi = iv.Magnitude()
		if !iv.StraddlesZero() {
			lo = math.Min(math.Abs(iv.Min), math.Abs(iv.Max))
		}
	} else {
		lo, hi = math.Max(iv.Min, 0), math.Max(iv.Max, 0)
	}
	if lo == hi {
		// All-negative data clipped to zero. Not a degenerate
		// input, so no warning.
		hi = lo + 1
	}
	return lo, hi
}

// NearTemplate returns the template used for a range whose hi/lo
// ratio is ratio (1 <= ratio <= 10).
func NearTemplate(ratio float64) Template {
	for _, t := range nearTemplates {
		if ratio <= t.Limit {
			return t
		}
	}
	return nearTemplates[len(nearTemplates)-1]
}

// logGrid returns the values m×10^p for m in mantissas that lie in
// [lo, hi], plus the nearest such value on either side of the range
// if lo or hi is not itself a grid value. mantissas must be ascending
// and in [1, 10).
func logGrid(lo, hi float64, mantissas []float64) []float64 {
	var cands []float64
	for p := Decade(lo) - 1; p <= Decade(hi)+1; p++ {
		for _, m := range mantissas {
			cands = append(cands, scaled(m, p))
		}
	}

	first, last := 0, len(cands)-1
	for i, v := range cands {
		if v <= lo*(1+1e-9) {
			first = i
		}
	}
	for i := len(cands) - 1; i >= 0; i-- {
		if cands[i] >= hi*(1-1e-9) {
			last = i
		}
	}
	return cands[first : last+1]
}
