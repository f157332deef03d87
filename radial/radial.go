// SPDX-License-Identifier: Unlicense OR MIT

// Package radial computes geometry for fills that radiate from the
// center of a rectangle: bursts of lines and soft glows.
package radial

import (
	"math"
	"math/rand/v2"
)

// Point is a position with y extending down.
type Point struct {
	X, Y float64
}

// Size is the extent of a rectangle anchored at the origin.
type Size struct {
	W, H float64
}

// Center returns the center of a rectangle of size s.
func (s Size) Center() Point {
	return Point{X: s.W / 2, Y: s.H / 2}
}

// Segment is a straight line.
type Segment struct {
	From, To Point
}

// Range is a closed interval.
type Range struct {
	Min, Max float64
}

// Sample returns a uniformly distributed value in r.
func (r Range) Sample(rng *rand.Rand) float64 {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// Cutoff returns the angle in radians between the horizontal axis and
// the diagonal of a rectangle of size s.
func Cutoff(s Size) float64 {
	if s.W <= 0 {
		return math.Pi / 2
	}
	return math.Atan(s.H / s.W)
}

// EdgeDistance returns the distance from the center of a rectangle of
// size s to its border along angle, in radians. Angles between the
// diagonal cutoffs meet the top or bottom edge, all others the left or
// right edge.
func EdgeDistance(angle float64, s Size) float64 {
	c1 := Cutoff(s)
	c2 := math.Pi - c1
	a := math.Abs(math.Remainder(angle, 2*math.Pi))
	if a >= c1 && a <= c2 {
		return (s.H / 2) / math.Abs(math.Sin(a))
	}
	return (s.W / 2) / math.Abs(math.Cos(a))
}

// Burst describes a ring of lines radiating from the center.
type Burst struct {
	// Lines is the number of lines, spread evenly from -180 to 180
	// degrees.
	Lines int
	// LineWidth is the stroke width.
	LineWidth float64
	// Start scales the inner end of each line relative to the
	// shorter half extent of the rectangle.
	Start Range
	// End scales the outer end of each line relative to the
	// distance to the border.
	End Range
}

// DefaultBurst returns the burst used when no configuration is given.
func DefaultBurst() Burst {
	return Burst{
		Lines:     25,
		LineWidth: 2,
		Start:     Range{Min: 0.5, Max: 0.53},
		End:       Range{Min: 0.8, Max: 1},
	}
}

// Segments returns the lines of b in a rectangle of size s. The random
// line lengths are drawn from rng.
func (b Burst) Segments(s Size, rng *rand.Rand) []Segment {
	if b.Lines <= 0 || s.W <= 0 || s.H <= 0 {
		return nil
	}
	c := s.Center()
	inner := math.Min(s.W/2, s.H/2)
	segs := make([]Segment, 0, b.Lines)
	for i := 0; i < b.Lines; i++ {
		deg := float64(i)/float64(b.Lines)*360 - 180
		a := deg * math.Pi / 180
		length := EdgeDistance(a, s)
		start, end := inner*b.Start.Sample(rng), length*b.End.Sample(rng)
		x, y := math.Cos(a), math.Sin(a)
		segs = append(segs, Segment{
			From: Point{X: c.X + x*start, Y: c.Y - y*start},
			To:   Point{X: c.X + x*end, Y: c.Y - y*end},
		})
	}
	return segs
}
