// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package axismap maps between world coordinates on an axis and pixel
// coordinates on the screen.
//
// A Mapper is an invertible, monotonic transform. Linear mappers are
// affine. PseudoLog mappers compress with sign(v)·log10(1+|v|·c)
// before the affine step, which stays defined at and around zero.
// TrueLog mappers are logarithmic and require a strictly positive
// world interval.
package axismap

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/scale"
	"github.com/ornl-ndav/ipns-gov-sub004/calib"
	"github.com/pkg/errors"
)

// Mode selects the transform of a Mapper.
type Mode int

const (
	Linear Mode = iota
	PseudoLog
	TrueLog
)

func (m Mode) String() string {
	switch m {
	case Linear:
		return "linear"
	case PseudoLog:
		return "pseudolog"
	case TrueLog:
		return "truelog"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// IsLog reports whether m is one of the logarithmic modes.
func (m Mode) IsLog() bool {
	return m == PseudoLog || m == TrueLog
}

var (
	// ErrNonPositive is returned for a TrueLog mapper whose world
	// interval is not strictly positive.
	ErrNonPositive = errors.New("true-log axis requires a positive interval")

	// ErrEmptyRange is returned when the pixel range has zero
	// length.
	ErrEmptyRange = errors.New("empty pixel range")
)

// normalizer maps the (possibly compressed) world interval onto
// [0, 1] and back. Both scale.Linear and scale.Log are normalizers.
type normalizer interface {
	Map(x float64) float64
	Unmap(y float64) float64
}

// A Mapper converts between world values and pixels. It is immutable
// once built; build a new one when the view is resized or zoomed.
type Mapper struct {
	// World is the world-coordinate interval.
	World calib.Interval

	// From and To are the pixel positions of World.Min and
	// World.Max. To may be less than From, as on a y axis that
	// grows upward.
	From, To float64

	// Mode is the transform, fixed at construction.
	Mode Mode

	// c is the PseudoLog compression factor.
	c float64

	norm normalizer
}

// An Option configures a Mapper.
type Option func(*Mapper)

// PseudoLogScale sets the compression factor c of a PseudoLog mapper.
// Values much smaller than 1/c map nearly linearly; larger values map
// logarithmically. The default is 1000/max(|Min|, |Max|), which gives
// roughly three decades of log behavior below the top of the axis.
func PseudoLogScale(c float64) Option {
	return func(m *Mapper) {
		m.c = c
	}
}

// New returns a Mapper from world to the pixel range [from, to].
func New(world calib.Interval, from, to float64, mode Mode, opts ...Option) (*Mapper, error) {
	if from == to {
		return nil, errors.Wrapf(ErrEmptyRange, "pixel range [%g, %g]", from, to)
	}
	m := &Mapper{World: world, From: from, To: to, Mode: mode}
	for _, o := range opts {
		o(m)
	}

	switch mode {
	case Linear:
		m.norm = scale.Linear{Min: world.Min, Max: world.Max}

	case PseudoLog:
		if m.c <= 0 {
			m.c = 1000 / world.Magnitude()
		}
		m.norm = scale.Linear{Min: m.compress(world.Min), Max: m.compress(world.Max)}

	case TrueLog:
		if world.Min <= 0 {
			return nil, errors.Wrapf(ErrNonPositive, "world interval %v", world)
		}
		ls, err := scale.NewLog(world.Min, world.Max, 10)
		if err != nil {
			return nil, errors.Wrapf(err, "world interval %v", world)
		}
		m.norm = ls

	default:
		return nil, errors.Errorf("unknown axis mode %v", mode)
	}
	return m, nil
}

// compress applies the PseudoLog transform.
func (m *Mapper) compress(v float64) float64 {
	if m.Mode != PseudoLog {
		return v
	}
	return math.Copysign(math.Log10(1+math.Abs(v)*m.c), v)
}

// expand inverts compress.
func (m *Mapper) expand(y float64) float64 {
	if m.Mode != PseudoLog {
		return y
	}
	return math.Copysign((math.Pow(10, math.Abs(y))-1)/m.c, y)
}

// ToPixel returns the pixel position of world value v. Values outside
// World extrapolate. It returns NaN for values the mode cannot
// represent, such as v <= 0 on a TrueLog axis.
func (m *Mapper) ToPixel(v float64) float64 {
	y := m.norm.Map(m.compress(v))
	return m.From + y*(m.To-m.From)
}

// ToWorld returns the world value at pixel position p. It is the
// inverse of ToPixel.
func (m *Mapper) ToWorld(p float64) float64 {
	y := (p - m.From) / (m.To - m.From)
	return m.expand(m.norm.Unmap(y))
}

// Contains reports whether v lies within World.
func (m *Mapper) Contains(v float64) bool {
	return m.World.Contains(v)
}

// Pixels returns the length of the pixel range.
func (m *Mapper) Pixels() float64 {
	return math.Abs(m.To - m.From)
}

// Compression returns the PseudoLog compression factor, or 0 for
// other modes.
func (m *Mapper) Compression() float64 {
	if m.Mode != PseudoLog {
		return 0
	}
	return m.c
}

func (m *Mapper) String() string {
	return fmt.Sprintf("%s %v => [%g, %g]", m.Mode, m.World, m.From, m.To)
}
