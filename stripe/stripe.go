// SPDX-License-Identifier: Unlicense OR MIT

package stripe

import (
	"math"
)

// Epsilon is the angle, in degrees, substituted for angles that are
// exact multiples of 180.
const Epsilon = 0.01

// Spec describes an angled line fill.
type Spec struct {
	// Angle of the stripes in degrees, measured counter-clockwise
	// from the positive x axis.
	Angle float64
	// LineWidth is the stroke width of each stripe.
	LineWidth float64
	// Spacing is the perpendicular gap between two strokes.
	Spacing float64
	// Opacity of the strokes in [0, 1].
	Opacity float64
}

// Size is the extent of the region to fill.
type Size struct {
	W, H float64
}

// Point is a position in the fill coordinate space. The origin is the
// top left corner with y extending down.
type Point struct {
	X, Y float64
}

// Line is a stripe centerline.
type Line struct {
	From, To Point
}

// Normalize returns the angle with exact multiples of 180 degrees
// replaced by Epsilon.
func Normalize(angle float64) float64 {
	if math.Mod(angle, 180) == 0 {
		return Epsilon
	}
	return angle
}

// Normalized returns s with its angle normalized and a negative width,
// spacing or opacity clamped to zero.
func (s Spec) Normalized() Spec {
	s.Angle = Normalize(s.Angle)
	s.LineWidth = math.Max(s.LineWidth, 0)
	s.Spacing = math.Max(s.Spacing, 0)
	s.Opacity = math.Min(math.Max(s.Opacity, 0), 1)
	return s
}

// Period is the perpendicular distance between two stripe centerlines.
func (s Spec) Period() float64 {
	return s.LineWidth + s.Spacing
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Offset returns the horizontal distance between two stripe anchors.
func Offset(s Spec) float64 {
	s = s.Normalized()
	return s.Period() / math.Abs(math.Cos(math.Pi/2-radians(s.Angle)))
}

// ChordLength returns the distance from the midpoint of the left edge
// to the top or bottom edge along angle, given in radians.
func ChordLength(angle float64, sz Size) float64 {
	slope := math.Tan(angle)
	dy := sz.H / 2
	dx := dy * (1 / slope)
	return math.Hypot(dx, dy)
}

// AdditionalLength returns the horizontal extent a stripe covers on
// each side of its anchor. Angle is in degrees.
func AdditionalLength(angle float64, sz Size) float64 {
	a := radians(Normalize(angle))
	return math.Abs(math.Cos(a) * ChordLength(a, sz))
}

// Count returns the number of anchor intervals needed to cover a region
// of size sz, including the extension on both sides. A spec with a
// non-finite field yields zero.
func Count(s Spec, sz Size) int {
	if !finite(s.Angle, s.LineWidth, s.Spacing, sz.W, sz.H) {
		return 0
	}
	if sz.W <= 0 || sz.H <= 0 || s.Period() <= 0 {
		return 0
	}
	extra := AdditionalLength(s.Angle, sz)
	return int(math.Ceil((sz.W + 2*extra) / Offset(s)))
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// CapExtension returns how far a centerline of the given angle, in
// degrees, must run past the region edge so that the flat end of its
// stroke lies outside the region. It is never less than half the line
// width.
func CapExtension(angle, lineWidth float64) float64 {
	a := radians(Normalize(angle))
	cot := math.Abs(math.Cos(a) / math.Sin(a))
	return lineWidth / 2 * math.Max(1, cot)
}

// Lines returns the stripe centerlines tiling a region of size sz. The
// result holds Count(s, sz)+1 lines ordered from left to right. Each line
// crosses the top and bottom edges and extends CapExtension beyond them,
// so flat stroke ends leave no gaps along the edges. A degenerate spec
// or region yields no lines.
func Lines(s Spec, sz Size) []Line {
	s = s.Normalized()
	n := Count(s, sz)
	if n == 0 {
		return nil
	}
	a := radians(s.Angle)
	length := ChordLength(a, sz) + CapExtension(s.Angle, s.LineWidth)
	dx, dy := length*math.Cos(a), length*math.Sin(a)
	offset := Offset(s)
	start := -AdditionalLength(s.Angle, sz) + s.LineWidth/2
	mid := sz.H / 2
	lines := make([]Line, 0, n+1)
	for i := 0; i <= n; i++ {
		x := start + float64(i)*offset
		lines = append(lines, Line{
			From: Point{X: x - dx, Y: mid + dy},
			To:   Point{X: x + dx, Y: mid - dy},
		})
	}
	return lines
}

// Covers reports whether p lies inside the stroke of l with the given
// width and flat ends.
func (l Line) Covers(p Point, width float64) bool {
	vx, vy := l.To.X-l.From.X, l.To.Y-l.From.Y
	n := math.Hypot(vx, vy)
	if n == 0 {
		return false
	}
	along := ((p.X-l.From.X)*vx + (p.Y-l.From.Y)*vy) / n
	const eps = 1e-6
	if along < -eps || along > n+eps {
		return false
	}
	return l.Distance(p) <= width/2+eps
}

// Distance returns the distance from p to the infinite line through l.
func (l Line) Distance(p Point) float64 {
	vx, vy := l.To.X-l.From.X, l.To.Y-l.From.Y
	n := math.Hypot(vx, vy)
	if n == 0 {
		return math.Hypot(p.X-l.From.X, p.Y-l.From.Y)
	}
	return math.Abs(vx*(p.Y-l.From.Y)-vy*(p.X-l.From.X)) / n
}
