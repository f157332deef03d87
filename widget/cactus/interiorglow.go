// SPDX-License-Identifier: Unlicense OR MIT

package cactus

import (
	"image"
	"image/color"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"

	"github.com/cactuskit/cactus/shadow"
)

// InteriorGlowStyle draws a rounded square lit from the inside along
// its edges: warm along the top and left, foreground along the bottom
// and right.
type InteriorGlowStyle struct {
	Size   unit.Dp
	Radius unit.Dp
	Border unit.Dp
	Color  color.NRGBA
	Warm   color.NRGBA
}

// InteriorGlow returns a 200dp glowing square.
func InteriorGlow(th *Theme) InteriorGlowStyle {
	return InteriorGlowStyle{
		Size:   200,
		Radius: 15,
		Border: 3,
		Color:  th.Fg,
		Warm:   color.NRGBA{R: 255, G: 240, B: 209, A: 255},
	}
}

func (g InteriorGlowStyle) Layout(gtx layout.Context) layout.Dimensions {
	side := gtx.Dp(g.Size)
	rect := image.Rectangle{Max: image.Pt(side, side)}
	rr := clip.UniformRRect(rect, gtx.Dp(g.Radius))
	paint.FillShape(gtx.Ops, withAlpha(g.Color, 0.1), rr.Op(gtx.Ops))

	scale := float64(pxPerDp(gtx))
	wide := shadow.Soften(30*scale, 35*scale, 0.5, softBands)
	sharp := shadow.Soften(10*scale, 10*scale, 1, softBands)
	s := float32(side)
	edges := []struct {
		a, b f32.Point
		col  color.NRGBA
	}{
		{f32.Pt(0, 0), f32.Pt(0, s), g.Warm},
		{f32.Pt(0, 0), f32.Pt(s, 0), g.Warm},
		{f32.Pt(s, 0), f32.Pt(s, s), g.Color},
		{f32.Pt(0, s), f32.Pt(s, s), g.Color},
	}
	area := rr.Push(gtx.Ops)
	for _, e := range edges {
		softLine(gtx.Ops, e.a, e.b, wide, e.col)
		softLine(gtx.Ops, e.a, e.b, sharp, e.col)
	}
	area.Pop()
	paint.FillShape(gtx.Ops, g.Color, clip.Stroke{Path: rr.Path(gtx.Ops), Width: float32(gtx.Dp(g.Border))}.Op())
	return layout.Dimensions{Size: rect.Max}
}
