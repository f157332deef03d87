// SPDX-License-Identifier: Unlicense OR MIT

package radial

import (
	"math"
	"sort"
)

// Halo places the characters of a text evenly around a tilted ring.
type Halo struct {
	Text string
	// Radius of the ring.
	Radius float64
	// Angle turns the ring, in degrees.
	Angle float64
	// Squash scales the ring vertically so it reads as a tilted
	// circle seen from above.
	Squash float64
}

// Glyph is the placement of one character of a halo.
type Glyph struct {
	Rune rune
	// Angle of the glyph on the ring in [0, 360) degrees; 0 faces the
	// viewer at the top of the ring.
	Angle float64
	// X, Y is the glyph offset from the ring center with y extending
	// down.
	X, Y float64
	// Width of the cell the glyph is centered in.
	Width float64
	// Facing is the horizontal scale of the glyph as it turns about
	// the ring, from 1 facing the viewer to 0 edge on.
	Facing float64
	// Back is set for glyphs on the far side of the ring.
	Back bool
	// Order is the stacking order, higher on top.
	Order float64
}

// Glyphs returns the placement of every character sorted by stacking
// order, bottom first.
func (h Halo) Glyphs() []Glyph {
	runes := []rune(h.Text)
	n := len(runes)
	if n == 0 || h.Radius <= 0 {
		return nil
	}
	width := 2 * math.Pi * h.Radius / float64(n)
	glyphs := make([]Glyph, n)
	for i, r := range runes {
		a := math.Mod(360*float64(i)/float64(n)+h.Angle, 360)
		if a < 0 {
			a += 360
		}
		sin, cos := math.Sincos(a * math.Pi / 180)
		glyphs[i] = Glyph{
			Rune:   r,
			Angle:  a,
			X:      sin * h.Radius,
			Y:      -cos * h.Radius * h.Squash,
			Width:  width,
			Facing: math.Abs(cos),
			Back:   a > 90 && a < 270,
			Order:  math.Abs(float64(n) - a),
		}
	}
	sort.SliceStable(glyphs, func(i, j int) bool {
		return glyphs[i].Order < glyphs[j].Order
	})
	return glyphs
}
