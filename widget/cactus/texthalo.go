// SPDX-License-Identifier: Unlicense OR MIT

package cactus

import (
	"image"
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/cactuskit/cactus/radial"
)

// TextHaloStyle draws text around a tilted ring.
type TextHaloStyle struct {
	// Halo radius is in dp.
	Halo radial.Halo
	// Tilt rotates the ring in degrees.
	Tilt     float32
	TextSize unit.Sp
	Color    color.NRGBA

	th *Theme
}

// TextHalo returns a halo of txt.
func TextHalo(th *Theme, txt string) TextHaloStyle {
	return TextHaloStyle{
		Halo:     radial.Halo{Text: txt, Radius: 150, Squash: 0.3},
		Tilt:     20,
		TextSize: 24,
		Color:    th.Fg,
		th:       th,
	}
}

func (h TextHaloStyle) Layout(gtx layout.Context) layout.Dimensions {
	scale := pxPerDp(gtx)
	halo := h.Halo
	halo.Radius *= float64(scale)
	r := int(math.Ceil(halo.Radius))
	pad := gtx.Sp(h.TextSize)
	size := gtx.Constraints.Constrain(image.Pt(2*(r+pad), 2*(r+pad)))
	c := layout.FPt(size).Mul(0.5)
	tilt := op.Affine(f32.Affine2D{}.Rotate(c, h.Tilt*math.Pi/180)).Push(gtx.Ops)
	for _, g := range halo.Glyphs() {
		if g.Facing < 0.02 {
			continue
		}
		pos := c.Add(f32.Pt(float32(g.X), float32(g.Y)))
		st := op.Affine(f32.Affine2D{}.Scale(pos, f32.Pt(float32(g.Facing), 1))).Push(gtx.Ops)
		l := material.Label(h.th.Theme, h.TextSize, string(g.Rune))
		l.Color = h.Color
		if g.Back {
			l.Color = withAlpha(h.Color, 0.5)
		}
		layoutCentered(gtx, pos.Round(), l.Layout)
		st.Pop()
	}
	tilt.Pop()
	return layout.Dimensions{Size: size}
}
