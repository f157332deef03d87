// SPDX-License-Identifier: Unlicense OR MIT

/*
Package dial resolves pointer positions on circular controls into angles
and discrete selections.

Positions are given relative to the top left corner of the control with y
extending down. Angles are measured counter-clockwise from the positive x
axis of the control center, so the top of a dial is at π/2.

A radial menu of n items spread over a half circle places item i at
angle i·π/(n-1). Resolve maps a pointer to the nearest item, or to None
when the pointer is closer to the center than the activation threshold.
*/
package dial

import (
	"math"
)

// None is the index of an empty selection.
const None = -1

// NoAngle is the angle of an empty selection. It lies outside every
// range returned by this package.
const NoAngle = -1.0

// Point is a pointer position relative to the top left corner of a
// control.
type Point struct {
	X, Y float64
}

// Selection is the resolved state of an angular control.
type Selection struct {
	// CenterRadius is the distance from the control center to the
	// pointer.
	CenterRadius float64
	// Items is the number of selectable items.
	Items int
	// Angle in radians, or NoAngle.
	Angle float64
	// Index of the selected item, or None.
	Index int
}

// Empty returns a selection with nothing selected.
func Empty(items int) Selection {
	return Selection{Items: items, Angle: NoAngle, Index: None}
}

// Selected reports whether s refers to an item.
func (s Selection) Selected() bool {
	return s.Index != None
}

// HalfAngle returns the angle of the vector (dx, dy) clamped to the
// upper half circle [0, π]. Dy is positive upwards. Vectors below the
// horizontal axis clamp to the nearer end of the half circle.
func HalfAngle(dx, dy float64) float64 {
	a := math.Atan2(dy, dx)
	if a >= 0 {
		return a
	}
	if a < -math.Pi/2 {
		return math.Pi
	}
	return 0
}

// FullAngle returns the angle of the vector (dx, dy) in [0, 2π). Dy is
// positive upwards.
func FullAngle(dx, dy float64) float64 {
	a := math.Atan2(dy, dx)
	if a < 0 {
		a += 2 * math.Pi
	}
	if a >= 2*math.Pi {
		a = 0
	}
	return a
}

// LineAngle returns the orientation of the line through the origin and
// (dx, dy) in [0, π). Opposite vectors share an orientation, which lets a
// half circle dial keep turning when the pointer crosses below the center.
func LineAngle(dx, dy float64) float64 {
	if dx == 0 {
		if dy == 0 {
			return 0
		}
		return math.Pi / 2
	}
	a := math.Atan(dy / dx)
	if a < 0 {
		a += math.Pi
	}
	return a
}

// Snap returns the index of the item nearest to angle among n items
// evenly spread over [0, π].
func Snap(angle float64, n int) int {
	switch {
	case n <= 0:
		return None
	case n == 1:
		return 0
	}
	segment := math.Pi / float64(n-1)
	i := int(math.Round(angle / segment))
	if i < 0 {
		i = 0
	}
	if i > n-1 {
		i = n - 1
	}
	return i
}

// ItemAngle returns the angle of item i among n items spread over [0, π].
func ItemAngle(i, n int) float64 {
	if n <= 1 {
		return math.Pi / 2
	}
	return float64(i) * math.Pi / float64(n-1)
}

// Resolve maps the pointer position pos on a half circle control of the
// given radius to a selection among n items. The control center is at
// (radius, radius). Positions closer to the center than threshold select
// nothing.
func Resolve(pos Point, radius float64, n int, threshold float64) Selection {
	dx, dy := pos.X-radius, radius-pos.Y
	dist := math.Hypot(dx, dy)
	if dist < threshold || n <= 0 {
		s := Empty(n)
		s.CenterRadius = dist
		return s
	}
	angle := HalfAngle(dx, dy)
	return Selection{
		CenterRadius: dist,
		Items:        n,
		Angle:        angle,
		Index:        Snap(angle, n),
	}
}

// ResolveFull is like Resolve for a full circle control. The index
// snaps to n items evenly spread over [0, 2π) and wraps around.
func ResolveFull(pos Point, radius float64, n int, threshold float64) Selection {
	dx, dy := pos.X-radius, radius-pos.Y
	dist := math.Hypot(dx, dy)
	if dist < threshold || n <= 0 {
		s := Empty(n)
		s.CenterRadius = dist
		return s
	}
	angle := FullAngle(dx, dy)
	i := int(math.Round(angle/(2*math.Pi/float64(n)))) % n
	return Selection{
		CenterRadius: dist,
		Items:        n,
		Angle:        angle,
		Index:        i,
	}
}
