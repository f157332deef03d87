// SPDX-License-Identifier: Unlicense OR MIT

package ribbon

import (
	"math"
)

// Point is a position in layout space with y extending down.
type Point struct {
	X, Y float64
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Bounds is the measured extent of a projected panel.
type Bounds struct {
	Width, Height float64
}

// Empty reports whether b has no area.
func (b Bounds) Empty() bool {
	return b.Width <= 0 || b.Height <= 0
}

// Quad is a projected rectangle. The corners are ordered top left, top
// right, bottom right, bottom left in the unprojected panel.
type Quad [4]Point

// Bounds returns the extent of the axis aligned box enclosing q.
func (q Quad) Bounds() Bounds {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range q {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	return Bounds{Width: maxX - minX, Height: maxY - minY}
}

// Min returns the top left corner of the box enclosing q.
func (q Quad) Min() Point {
	m := q[0]
	for _, p := range q[1:] {
		m.X, m.Y = math.Min(m.X, p.X), math.Min(m.Y, p.Y)
	}
	return m
}

// Rotation is a rotation of a w×h panel about a vertical axis, viewed
// through a perspective camera.
type Rotation struct {
	// Angle in degrees. Positive angles move the right side of the
	// panel away from the viewer.
	Angle float64
	// Anchor of the rotation axis in unit coordinates of the panel:
	// (0, 0) is the top left corner, (1, 1) the bottom right.
	Anchor Point
	// Perspective is the camera strength. Zero or less projects
	// orthographically.
	Perspective float64
}

// Project returns the corners of a w×h panel at the origin after the
// rotation r.
func (r Rotation) Project(w, h float64) Quad {
	corners := Quad{{0, 0}, {w, 0}, {w, h}, {0, h}}
	for i, c := range corners {
		corners[i] = r.project(c, w, h)
	}
	return corners
}

// Scale returns the perspective scale applied to the panel edge at
// horizontal position x.
func (r Rotation) Scale(x, w, h float64) float64 {
	ax := r.Anchor.X * w
	sin := math.Sin(r.Angle * math.Pi / 180)
	return r.depthScale(-(x-ax)*sin, w, h)
}

// Point projects a point of a w×h panel.
func (r Rotation) Point(p Point, w, h float64) Point {
	return r.project(p, w, h)
}

func (r Rotation) depthScale(z, w, h float64) float64 {
	if r.Perspective <= 0 {
		return 1
	}
	d := math.Max(w, h) / r.Perspective
	if d-z <= 0 {
		return 0
	}
	return d / (d - z)
}

func (r Rotation) project(p Point, w, h float64) Point {
	a := r.Angle * math.Pi / 180
	sin, cos := math.Sincos(a)
	ax, ay := r.Anchor.X*w, r.Anchor.Y*h
	x, y := p.X-ax, p.Y-ay
	xr, z := x*cos, -x*sin
	s := r.depthScale(z, w, h)
	return Point{X: ax + xr*s, Y: ay + y*s}
}
