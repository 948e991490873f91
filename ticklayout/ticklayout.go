// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ticklayout places calibration ticks on a pixel axis and
// decides which of them get labels.
//
// Labels are never allowed to overlap. Layout picks a skip factor k
// (label every k-th calibration value) large enough that no two labels
// collide, then walks the ticks and labels the survivors. Ticks that
// lose their label are still drawn as minor marks.
package ticklayout

import (
	"math"
	"sort"

	"github.com/aclements/go-moremath/scale"
	"github.com/ornl-ndav/ipns-gov-sub004/axismap"
	"github.com/ornl-ndav/ipns-gov-sub004/numfmt"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Class is the drawing class of a tick.
type Class int

const (
	// Major ticks are labeled and carry a grid line.
	Major Class = iota

	// Minor ticks are calibration values whose label was skipped.
	Minor

	// Mid ticks are unlabeled marks halfway between calibration
	// values.
	Mid
)

func (c Class) String() string {
	switch c {
	case Major:
		return "major"
	case Minor:
		return "minor"
	case Mid:
		return "mid"
	}
	return "Class(?)"
}

// Length returns the length in pixels of a tick mark of class c.
func (c Class) Length() int {
	switch c {
	case Major:
		return 8
	case Minor:
		return 5
	}
	return 3
}

// Grid reports whether ticks of class c extend a grid line across
// the plot.
func (c Class) Grid() bool {
	return c == Major
}

// Tick is one mark on the axis.
type Tick struct {
	Value float64
	Pixel int
	Class Class

	// Label is the formatted value, or "" if the tick is not
	// labeled.
	Label string
}

// IsMajor reports whether t is labeled.
func (t Tick) IsMajor() bool {
	return t.Class == Major
}

// DefaultGap is the default minimum distance in pixels between
// adjacent labels.
const DefaultGap = 6

// Options control Layout.
type Options struct {
	// LabelWidth returns the width in pixels of a label. If nil,
	// labels are measured in basicfont.Face7x13.
	LabelWidth func(label string) float64

	// Format is the label format of the axis.
	Format numfmt.Spec

	// Gap is the minimum space between labels. If 0, DefaultGap
	// is used; use a negative value for no gap.
	Gap float64

	// Mirror places each non-zero value v at both +v and -v, as
	// for a two-sided log axis. A zero value is one shared origin
	// tick.
	Mirror bool

	// MinorMidpoints adds a Mid tick halfway (in pixels) between
	// each pair of adjacent calibration ticks.
	MinorMidpoints bool

	// ForceEnd adds a tick at the end of the axis if the last
	// labeled tick is more than half a labeled step away from it.
	ForceEnd bool
}

// MeasureLabel returns the width in pixels of label drawn in
// basicfont.Face7x13.
func MeasureLabel(label string) float64 {
	return float64(font.MeasureString(basicfont.Face7x13, label).Ceil())
}

func (o *Options) gap() float64 {
	switch {
	case o.Gap < 0:
		return 0
	case o.Gap == 0:
		return DefaultGap
	}
	return o.Gap
}

func (o *Options) width(label string) float64 {
	if o.LabelWidth == nil {
		return MeasureLabel(label)
	}
	return o.LabelWidth(label)
}

// slot is a calibration tick under consideration.
type slot struct {
	value float64
	pixel float64
	label string
	width float64
}

// layout is the state of one layout pass.
type layout struct {
	m *axismap.Mapper
	o Options

	// slots are in ascending value order.
	slots []slot

	// anchor is the index in slots that the walk starts from. Arms
	// extend from anchor toward both ends of slots.
	anchor int
}

func newLayout(values []float64, m *axismap.Mapper, o Options) *layout {
	l := &layout{m: m, o: o}

	var vs []float64
	for _, v := range values {
		if o.Mirror && v != 0 {
			vs = append(vs, -math.Abs(v), math.Abs(v))
		} else {
			vs = append(vs, v)
		}
	}
	sort.Float64s(vs)

	for i, v := range vs {
		if i > 0 && v == vs[i-1] {
			continue
		}
		if !m.Contains(v) {
			continue
		}
		p := m.ToPixel(v)
		if math.IsNaN(p) || math.IsInf(p, 0) {
			continue
		}
		label := numfmt.Format(v, o.Format)
		l.slots = append(l.slots, slot{v, p, label, o.width(label)})
	}

	// Two-sided axes grow outward from the value nearest zero;
	// others run from the low end.
	if o.Mirror {
		for i, s := range l.slots {
			if math.Abs(s.value) < math.Abs(l.slots[l.anchor].value) {
				l.anchor = i
			}
		}
	}
	return l
}

// arms returns the slot indexes of each arm, walking outward from the
// anchor. The anchor itself is in neither arm.
func (l *layout) arms() [2][]int {
	var arms [2][]int
	for i := l.anchor + 1; i < len(l.slots); i++ {
		arms[0] = append(arms[0], i)
	}
	for i := l.anchor - 1; i >= 0; i-- {
		arms[1] = append(arms[1], i)
	}
	return arms
}

// clear reports whether the labels of slots i and j do not overlap.
func (l *layout) clear(i, j int) bool {
	a, b := l.slots[i], l.slots[j]
	d := math.Abs(a.pixel - b.pixel)
	return d >= a.width/2+b.width/2+l.o.gap()
}

// fits reports whether labeling every k-th slot of each arm, plus the
// anchor, leaves all labels clear of each other.
func (l *layout) fits(k int) bool {
	for _, arm := range l.arms() {
		last := l.anchor
		for n, i := range arm {
			if (n+1)%k != 0 {
				continue
			}
			if !l.clear(last, i) {
				return false
			}
			last = i
		}
	}
	return true
}

// labelTicker presents the labeled slots at each skip factor as tick
// levels, with level = k-1.
type labelTicker struct {
	l *layout
}

func (t labelTicker) CountTicks(level int) int {
	k := level + 1
	arms := t.l.arms()
	return 1 + len(arms[0])/k + len(arms[1])/k
}

func (t labelTicker) TicksAtLevel(level int) interface{} {
	k := level + 1
	ticks := []float64{t.l.slots[t.l.anchor].value}
	for _, arm := range t.l.arms() {
		for n, i := range arm {
			if (n+1)%k == 0 {
				ticks = append(ticks, t.l.slots[i].value)
			}
		}
	}
	sort.Float64s(ticks)
	return ticks
}

// skip returns the smallest skip factor at which labels do not
// overlap.
//
// The number of labels that could fit if every label were as narrow
// as the narrowest one bounds k from below; FindLevel finds that
// bound. From there, k only grows until the labels fit.
func (l *layout) skip() int {
	n := len(l.slots)
	if n <= 1 {
		return 1
	}

	narrowest := math.Inf(1)
	for _, s := range l.slots {
		narrowest = math.Min(narrowest, s.width)
	}
	maxLabels := int(l.m.Pixels()/(narrowest+l.o.gap())) + 1
	o := scale.TickOptions{Max: maxLabels, MinLevel: 0, MaxLevel: n}
	level, ok := o.FindLevel(labelTicker{l}, 0)
	k := 1
	if ok {
		k = level + 1
	}
	for k <= n && !l.fits(k) {
		k++
	}
	return k
}

// SkipFactor returns the skip factor k that Layout uses: every k-th
// calibration value, counted from the start of the axis (or outward
// from zero when mirroring), is a labeling candidate.
func SkipFactor(values []float64, m *axismap.Mapper, o Options) int {
	return newLayout(values, m, o).skip()
}

// Layout places values on the axis described by m and returns the
// resulting ticks in ascending value order.
//
// Values outside the mapper's world interval, and values the mapper
// cannot represent, are dropped. Layout labels every k-th value (see
// SkipFactor) as long as its label clears the previous label on the
// same arm; every other value becomes a Minor tick. If no value
// survives and o.ForceEnd is set, the ends of the world interval are
// the only ticks.
func Layout(values []float64, m *axismap.Mapper, o Options) []Tick {
	ticks, _ := LayoutSkip(values, m, o)
	return ticks
}

// LayoutSkip is like Layout, but also returns the skip factor it
// used, saving a separate call to SkipFactor.
func LayoutSkip(values []float64, m *axismap.Mapper, o Options) ([]Tick, int) {
	l := newLayout(values, m, o)
	if len(l.slots) == 0 {
		if o.ForceEnd {
			return l.boundTicks(), 1
		}
		return nil, 1
	}
	k := l.skip()

	classes := make([]Class, len(l.slots))
	for i := range classes {
		classes[i] = Minor
	}
	classes[l.anchor] = Major

	var ticks []Tick
	for side, arm := range l.arms() {
		last := l.anchor
		prev := -1
		for n, i := range arm {
			if (n+1)%k == 0 && l.clear(last, i) {
				classes[i] = Major
				prev, last = last, i
			}
		}
		if o.ForceEnd {
			if t, ok := l.endTick(side, last, prev, classes); ok {
				ticks = append(ticks, t)
			}
		}
	}

	for i, s := range l.slots {
		t := Tick{Value: s.value, Pixel: int(math.Round(s.pixel)), Class: classes[i]}
		if t.Class == Major {
			t.Label = s.label
		}
		ticks = append(ticks, t)
	}

	if o.MinorMidpoints {
		for i := 1; i < len(l.slots); i++ {
			a, b := l.slots[i-1], l.slots[i]
			if math.Abs(b.pixel-a.pixel) < 2 {
				// No room for a mark in between.
				continue
			}
			p := (a.pixel + b.pixel) / 2
			ticks = append(ticks, Tick{Value: m.ToWorld(p), Pixel: int(math.Round(p)), Class: Mid})
		}
	}

	sort.SliceStable(ticks, func(i, j int) bool {
		return ticks[i].Value < ticks[j].Value
	})
	return ticks, k
}

// boundTicks returns ticks at both ends of the world interval, for an
// axis with no calibration value inside it. The min end is labeled;
// the max end is labeled if its label clears the min's.
func (l *layout) boundTicks() []Tick {
	for _, end := range []float64{l.m.World.Min, l.m.World.Max} {
		p := l.m.ToPixel(end)
		if math.IsNaN(p) || math.IsInf(p, 0) {
			continue
		}
		label := numfmt.Format(end, l.o.Format)
		l.slots = append(l.slots, slot{end, p, label, l.o.width(label)})
	}
	var ticks []Tick
	for i, s := range l.slots {
		t := Tick{Value: s.value, Pixel: int(math.Round(s.pixel)), Class: Major, Label: s.label}
		if i > 0 && !l.clear(0, i) {
			t.Class, t.Label = Minor, ""
		}
		ticks = append(ticks, t)
	}
	return ticks
}

// endTick handles the outer end of arm side, given the last labeled
// slot on that arm and the one before it (or -1).
//
// The end is forced when it is more than half a labeled step beyond
// the last label. The labeled step is the pixel distance between the
// last two labels on the arm. If the arm has no label besides the
// anchor, the end is always forced. If the end is itself a calibration
// value, its slot is promoted to Major in classes when its label
// fits; otherwise endTick returns a new tick at the end.
func (l *layout) endTick(side, last, prev int, classes []Class) (Tick, bool) {
	var end float64
	var outer int
	switch {
	case side == 0:
		end, outer = l.m.World.Max, len(l.slots)-1
	case l.o.Mirror && l.m.World.Min < 0:
		end, outer = l.m.World.Min, 0
	default:
		return Tick{}, false
	}
	onGrid := math.Abs(l.slots[outer].value-end) <= l.m.World.Span()*1e-9
	if onGrid && outer == last {
		return Tick{}, false
	}

	pEnd := l.m.ToPixel(end)
	if math.IsNaN(pEnd) {
		return Tick{}, false
	}
	lastP := l.slots[last].pixel
	if prev >= 0 {
		step := math.Abs(lastP - l.slots[prev].pixel)
		if math.Abs(pEnd-lastP) <= step/2 {
			return Tick{}, false
		}
	}

	if onGrid {
		if l.clear(last, outer) {
			classes[outer] = Major
		}
		return Tick{}, false
	}

	label := numfmt.Format(end, l.o.Format)
	l.slots = append(l.slots, slot{end, pEnd, label, l.o.width(label)})
	defer func() { l.slots = l.slots[:len(l.slots)-1] }()
	t := Tick{Value: end, Pixel: int(math.Round(pEnd)), Class: Minor}
	if l.clear(last, len(l.slots)-1) {
		t.Class, t.Label = Major, label
	}
	return t, true
}
