// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calib

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/vec"
)

// LinearTicks describes an evenly spaced tick grid: Start + k*Step for
// k = 0, ..., Count-1.
type LinearTicks struct {
	// Step is the distance between ticks. It is always one of
	// {1, 2, 2.5, 5, 10}×10^k.
	Step float64

	// Start is the first grid point. It is the largest multiple of
	// Step that is <= the interval's Min, so the first tick never
	// excludes data.
	Start float64

	// Count is the number of Step increments taken from Start
	// before the running value exceeded the interval's Max. The
	// grid may stop short of Max by less than one Step.
	Count int
}

// linearSteps maps the mantissa of an interval's width to the tick
// step, as a multiple of 10^(power-1).
var linearSteps = []struct {
	limit, step float64
}{
	{1.2, 1},
	{2, 2},
	{2.5, 2.5},
	{5, 5},
	{math.Inf(1), 10},
}

// SubdivideLinear is shorthand for Linear(NewInterval(min, max)).
func SubdivideLinear(min, max float64) LinearTicks {
	return Linear(NewInterval(min, max))
}

// Linear returns a nice linear tick grid covering iv.
func Linear(iv Interval) LinearTicks {
	diff := iv.Span()
	power := Decade(diff)
	mantissa := diff / scaled(1, power)

	var step float64
	for _, s := range linearSteps {
		if mantissa <= s.limit {
			step = scaled(s.step, power-1)
			break
		}
	}

	// Start on the grid point at or below Min. If Min is already
	// on the grid (up to rounding), keep it exactly.
	q := iv.Min / step
	start := math.Floor(q) * step
	if r := math.Round(q); math.Abs(q-r) < 1e-9 {
		start = iv.Min
	}

	// Count increments until we pass Max. Multiply rather than
	// accumulate to keep the error from growing with the count.
	slack := diff * 1e-9
	count := 1
	for start+float64(count)*step <= iv.Max+slack {
		count++
	}

	return LinearTicks{Step: step, Start: start, Count: count}
}

// Values returns the grid points in ascending order.
func (t LinearTicks) Values() []float64 {
	if t.Count <= 0 {
		return nil
	}
	return vec.Linspace(t.Start, t.Start+float64(t.Count-1)*t.Step, t.Count)
}

// Resolution returns the exponent of the last significant digit of
// Step: 3 for a step of 5000, -2 for 0.25. A label needs digits down
// to 10^Resolution to tell adjacent grid points apart.
func (t LinearTicks) Resolution() int {
	p := Decade(t.Step)
	for i := 0; i < 3; i++ {
		x := scaled(t.Step, -p)
		if math.Abs(x-math.Round(x)) <= 1e-9*x {
			break
		}
		p--
	}
	return p
}

// Last returns the final grid point.
func (t LinearTicks) Last() float64 {
	return t.Start + float64(t.Count-1)*t.Step
}

func (t LinearTicks) String() string {
	return fmt.Sprintf("%d ticks from %g by %g", t.Count, t.Start, t.Step)
}
