// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package numfmt formats axis labels in decimal, scientific, or
// engineering notation.
//
// All labels on one axis share a Spec. For scientific and engineering
// notation, the Spec fixes the exponent once for the whole axis, so
// labels are printed as mantissas and the caller renders the common
// "×10^k" suffix (Spec.Suffix) once.
package numfmt

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Kind is a label notation.
type Kind int

const (
	Decimal Kind = iota
	Scientific
	Engineering

	// Auto picks Decimal for moderate magnitudes and Scientific
	// otherwise. It is resolved by ForInterval.
	Auto
)

var kindNames = []string{"decimal", "scientific", "engineering", "auto"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// ErrUnknownKind is returned by ParseKind for unrecognized names.
var ErrUnknownKind = errors.New("unknown number format")

// ParseKind returns the Kind named s ("decimal", "scientific",
// "engineering", or "auto"). A unique prefix is accepted.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(s)
	found := Kind(-1)
	for i, name := range kindNames {
		if s != "" && strings.HasPrefix(name, s) {
			if found >= 0 {
				return 0, errors.Wrapf(ErrUnknownKind, "ambiguous %q", s)
			}
			found = Kind(i)
		}
	}
	if found < 0 {
		return 0, errors.Wrapf(ErrUnknownKind, "%q", s)
	}
	return found, nil
}

// DefaultDigits is the number of significant digits used when a Spec
// has Digits <= 0.
const DefaultDigits = 3

// Spec is the label format of one axis.
type Spec struct {
	Kind Kind

	// Digits is the number of significant digits of each label.
	Digits int

	// ExponentBase is the power of ten divided out of every label.
	// It is 0 for Decimal and a multiple of 3 for Engineering.
	ExponentBase int

	// Magnitude is the decimal exponent of the axis's largest
	// absolute value. Values smaller than 10^(Magnitude-12) are
	// rounding noise and print as 0.
	Magnitude int
}

// ForInterval returns the Spec for an axis spanning [min, max].
//
// The exponent base is derived from max(|min|, |max|). Auto is
// resolved to Decimal when that magnitude is in [1e-3, 1e6) and to
// Scientific otherwise.
func ForInterval(kind Kind, digits int, min, max float64) Spec {
	return forMagnitude(kind, digits, math.Max(math.Abs(min), math.Abs(max)))
}

func forMagnitude(kind Kind, digits int, mag float64) Spec {
	if digits <= 0 {
		digits = DefaultDigits
	}
	s := Spec{Kind: kind, Digits: digits}
	if mag == 0 {
		if kind == Auto {
			s.Kind = Decimal
		}
		return s
	}
	e := exponent(mag, digits)
	s.Magnitude = e
	switch kind {
	case Auto:
		if e >= -3 && e < 6 {
			s.Kind = Decimal
		} else {
			s.Kind = Scientific
			s.ExponentBase = e
		}
	case Scientific:
		s.ExponentBase = e
	case Engineering:
		s.ExponentBase = floorDiv(e, 3) * 3
	}
	return s
}

// exponent returns the decimal exponent of x after rounding it to
// digits significant digits, so 9.99 at 2 digits has exponent 1.
func exponent(x float64, digits int) int {
	str := strconv.FormatFloat(math.Abs(x), 'e', digits-1, 64)
	e, _ := strconv.Atoi(str[strings.IndexByte(str, 'e')+1:])
	return e
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// Suffix returns the shared exponent suffix of the axis, such as
// "×10^3", or "" if labels are not scaled.
func (s Spec) Suffix() string {
	if s.ExponentBase == 0 {
		return ""
	}
	return "×10^" + strconv.Itoa(s.ExponentBase)
}

// Format formats v according to s. Scientific and engineering labels
// are mantissas relative to s.ExponentBase. Trailing zeros are
// stripped.
func Format(v float64, s Spec) string {
	digits := s.Digits
	if digits <= 0 {
		digits = DefaultDigits
	}
	if math.Abs(v) < math.Pow10(s.Magnitude-12) {
		return "0"
	}

	x := v
	if s.ExponentBase > 0 {
		x = v / math.Pow10(s.ExponentBase)
	} else if s.ExponentBase < 0 {
		x = v * math.Pow10(-s.ExponentBase)
	}

	decimals := digits - 1 - exponent(x, digits)
	if decimals < 0 {
		decimals = 0
	} else if decimals > 20 {
		decimals = 20
	}
	return trimZeros(strconv.FormatFloat(x, 'f', decimals, 64))
}

// FormatFull formats a standalone value with its own exponent, such
// as "4.9×10^7", for places where no axis Spec applies.
func FormatFull(v float64, digits int) string {
	s := forMagnitude(Auto, digits, math.Abs(v))
	return Format(v, s) + s.Suffix()
}

func trimZeros(str string) string {
	if strings.IndexByte(str, '.') >= 0 {
		str = strings.TrimRight(str, "0")
		str = strings.TrimSuffix(str, ".")
	}
	if str == "-0" {
		str = "0"
	}
	return str
}
