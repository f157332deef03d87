// SPDX-License-Identifier: Unlicense OR MIT

package cactus

import (
	"math"

	"gioui.org/f32"
	"gioui.org/op"
	"gioui.org/op/clip"
)

// maxArcSegment caps the angle covered by a single quadratic segment.
const maxArcSegment = math.Pi / 8

// arcTo adds a circular arc around c to p, from angle start to angle end
// in radians with y extending down. The pen must be at the start of the
// arc.
func arcTo(p *clip.Path, c f32.Point, r float32, start, end float64) {
	n := int(math.Ceil(math.Abs(end-start) / maxArcSegment))
	if n == 0 {
		return
	}
	step := (end - start) / float64(n)
	sine, cose := math.Sincos(start)
	for i := 1; i <= n; i++ {
		sins, coss := sine, cose
		sine, cose = math.Sincos(start + float64(i)*step)

		// https://pomax.github.io/bezierinfo/#circles
		div := 1. / (coss*sine - cose*sins)
		ctrl := f32.Point{
			X: float32((sine - sins) * div),
			Y: -float32((cose - coss) * div),
		}.Mul(r).Add(c)
		to := f32.Pt(float32(cose), float32(sine)).Mul(r).Add(c)
		p.QuadTo(ctrl, to)
	}
}

// circle returns the path of a circle.
func circle(ops *op.Ops, c f32.Point, r float32) clip.PathSpec {
	var p clip.Path
	p.Begin(ops)
	p.MoveTo(c.Add(f32.Pt(r, 0)))
	arcTo(&p, c, r, 0, 2*math.Pi)
	p.Close()
	return p.End()
}

// arcPoints returns points along a circular arc, including both ends.
func arcPoints(c f32.Point, r float32, start, end float64) []f32.Point {
	n := max(int(math.Ceil(math.Abs(end-start)/(maxArcSegment/2))), 1)
	pts := make([]f32.Point, n+1)
	for i := range pts {
		sin, cos := math.Sincos(start + (end-start)*float64(i)/float64(n))
		pts[i] = f32.Pt(float32(cos), float32(sin)).Mul(r).Add(c)
	}
	return pts
}

// polygon returns the closed outline through pts.
func polygon(ops *op.Ops, pts []f32.Point) clip.PathSpec {
	var p clip.Path
	p.Begin(ops)
	for i, pt := range pts {
		if i == 0 {
			p.MoveTo(pt)
			continue
		}
		p.LineTo(pt)
	}
	p.Close()
	return p.End()
}
