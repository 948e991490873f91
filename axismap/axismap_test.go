// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axismap

import (
	"math"
	"testing"

	"github.com/ornl-ndav/ipns-gov-sub004/calib"
	"github.com/pkg/errors"
)

func mustNew(t *testing.T, world calib.Interval, from, to float64, mode Mode, opts ...Option) *Mapper {
	t.Helper()
	m, err := New(world, from, to, mode, opts...)
	if err != nil {
		t.Fatalf("New(%v, %g, %g, %v) failed: %v", world, from, to, mode, err)
	}
	return m
}

func TestLinear(t *testing.T) {
	m := mustNew(t, calib.Interval{Min: -10, Max: 30}, 100, 500, Linear)
	for _, test := range []struct {
		v, p float64
	}{
		{-10, 100},
		{30, 500},
		{0, 200},
		{10, 300},
		{-20, 0},
	} {
		if got := m.ToPixel(test.v); math.Abs(got-test.p) > 1e-9 {
			t.Errorf("%v.ToPixel(%g) = %g; want %g", m, test.v, got, test.p)
		}
		if got := m.ToWorld(test.p); math.Abs(got-test.v) > 1e-9 {
			t.Errorf("%v.ToWorld(%g) = %g; want %g", m, test.p, got, test.v)
		}
	}
}

func TestReversed(t *testing.T) {
	// A y axis: World.Min at the bottom of a 300 pixel panel.
	m := mustNew(t, calib.Interval{Min: 0, Max: 1}, 300, 0, Linear)
	if got := m.ToPixel(0.25); got != 225 {
		t.Errorf("ToPixel(0.25) = %g; want 225", got)
	}
	prev := math.Inf(1)
	for v := 0.0; v <= 1; v += 0.1 {
		p := m.ToPixel(v)
		if p >= prev {
			t.Errorf("ToPixel not monotonic at %g: %g after %g", v, p, prev)
		}
		prev = p
	}
	if got := m.Pixels(); got != 300 {
		t.Errorf("Pixels() = %g; want 300", got)
	}
}

func TestTrueLog(t *testing.T) {
	m := mustNew(t, calib.Interval{Min: 1, Max: 1000}, 0, 300, TrueLog)
	for _, test := range []struct {
		v, p float64
	}{
		{1, 0},
		{10, 100},
		{100, 200},
		{1000, 300},
	} {
		if got := m.ToPixel(test.v); math.Abs(got-test.p) > 1e-9 {
			t.Errorf("ToPixel(%g) = %g; want %g", test.v, got, test.p)
		}
	}
	if got := m.ToPixel(0); !math.IsNaN(got) {
		t.Errorf("ToPixel(0) = %g; want NaN", got)
	}

	for _, iv := range []calib.Interval{{Min: 0, Max: 10}, {Min: -5, Max: 10}, {Min: -5, Max: -1}} {
		if _, err := New(iv, 0, 100, TrueLog); errors.Cause(err) != ErrNonPositive {
			t.Errorf("New(%v, TrueLog) error = %v; want ErrNonPositive", iv, err)
		}
	}
}

func TestPseudoLog(t *testing.T) {
	m := mustNew(t, calib.Interval{Min: -50, Max: 50}, 0, 400, PseudoLog)
	if got := m.Compression(); got != 20 {
		t.Errorf("Compression() = %g; want 20", got)
	}
	// Symmetric about zero.
	if got := m.ToPixel(0); math.Abs(got-200) > 1e-9 {
		t.Errorf("ToPixel(0) = %g; want 200", got)
	}
	for _, v := range []float64{0.1, 1, 5, 20} {
		lo, hi := m.ToPixel(-v), m.ToPixel(v)
		if math.Abs((200-lo)-(hi-200)) > 1e-9 {
			t.Errorf("ToPixel(±%g) = %g, %g; not symmetric about 200", v, lo, hi)
		}
	}
	// Compressed: the top decade gets much less than its linear
	// share of the axis.
	if d := m.ToPixel(50) - m.ToPixel(5); d > 100 {
		t.Errorf("pixels from 5 to 50 = %g; want compression below 100", d)
	}

	m2 := mustNew(t, calib.Interval{Min: -50, Max: 50}, 0, 400, PseudoLog, PseudoLogScale(1))
	if got := m2.Compression(); got != 1 {
		t.Errorf("Compression() with PseudoLogScale(1) = %g; want 1", got)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, test := range []struct {
		world calib.Interval
		mode  Mode
	}{
		{calib.Interval{Min: 0, Max: 49000}, Linear},
		{calib.Interval{Min: -3.2, Max: 3.2}, Linear},
		{calib.Interval{Min: 1e-3, Max: 1e6}, TrueLog},
		{calib.Interval{Min: -1e4, Max: 50}, PseudoLog},
		{calib.Interval{Min: 0, Max: 1}, PseudoLog},
	} {
		m := mustNew(t, test.world, 20, 820, test.mode)
		// One pixel's worth of world units near v bounds the
		// acceptable error.
		for i := 0; i <= 100; i++ {
			v := test.world.Min + float64(i)/100*test.world.Span()
			if test.mode == TrueLog {
				v = test.world.Min * math.Pow(test.world.Max/test.world.Min, float64(i)/100)
			}
			p := m.ToPixel(v)
			tol := math.Abs(m.ToWorld(p+1)-m.ToWorld(p)) * 1e-6
			if got := m.ToWorld(p); math.Abs(got-v) > tol+1e-12 {
				t.Errorf("%v: ToWorld(ToPixel(%g)) = %g", m, v, got)
			}
		}
	}
}

func TestEmptyRange(t *testing.T) {
	if _, err := New(calib.Interval{Min: 0, Max: 1}, 5, 5, Linear); errors.Cause(err) != ErrEmptyRange {
		t.Errorf("New with empty pixel range error = %v; want ErrEmptyRange", err)
	}
}
