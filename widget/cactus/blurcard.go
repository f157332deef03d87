// SPDX-License-Identifier: Unlicense OR MIT

package cactus

import (
	"image"
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"

	"github.com/cactuskit/cactus/ribbon"
	"github.com/cactuskit/cactus/widget"
)

// BlurCardStyle draws a frosted card that turns in perspective when
// dragged.
type BlurCardStyle struct {
	Card          *widget.BlurCard
	Width, Height unit.Dp
	Radius        unit.Dp
	Surface       color.NRGBA
	Shadow        color.NRGBA
	// Blobs color the frosted background.
	Blobs       []color.NRGBA
	Perspective float64
}

// BlurCard returns a 300×200dp card.
func BlurCard(th *Theme, card *widget.BlurCard) BlurCardStyle {
	return BlurCardStyle{
		Card:        card,
		Width:       300,
		Height:      200,
		Radius:      20,
		Surface:     color.NRGBA{R: 255, G: 255, B: 255, A: 150},
		Shadow:      th.Shadow,
		Blobs:       widget.BlurPalette,
		Perspective: 0.4,
	}
}

// Layout centers the card in the maximum constraints. The content is
// hidden while the back of the card faces the viewer.
func (b BlurCardStyle) Layout(gtx layout.Context, content layout.Widget) layout.Dimensions {
	tilt := b.Card.Update(gtx)
	size := gtx.Constraints.Max
	card := image.Pt(gtx.Dp(b.Width), gtx.Dp(b.Height))
	origin := size.Sub(card).Div(2)
	defer op.Offset(origin).Push(gtx.Ops).Pop()

	area := clip.Rect{Max: card}.Push(gtx.Ops)
	b.Card.Add(gtx.Ops)
	area.Pop()

	c := layout.FPt(card).Mul(0.5)
	pose := f32.Affine2D{}.
		Scale(c, f32.Pt(float32(tilt.Scale), float32(tilt.Scale))).
		Rotate(c, float32(tilt.Roll*math.Pi/180))
	defer op.Affine(pose).Push(gtx.Ops).Pop()

	radius := gtx.Dp(b.Radius)
	softRRect(gtx.Ops, image.Rectangle{Max: card}.Add(image.Pt(0, gtx.Dp(10))), radius, gtx.Dp(20), b.Shadow, 0.3)

	macro := op.Record(gtx.Ops)
	b.face(gtx, card, radius, tilt.Back(), content)
	face := macro.Stop()

	rot := ribbon.Rotation{
		Angle:       tilt.Turn,
		Anchor:      ribbon.Point{X: 0.5, Y: 0.5},
		Perspective: b.Perspective,
	}
	w, h := float64(card.X), float64(card.Y)
	slices := max(int(math.Ceil(w/sliceWidth)), 1)
	for k := 0; k < slices; k++ {
		x0 := w * float64(k) / float64(slices)
		x1 := w * float64(k+1) / float64(slices)
		q := [4]ribbon.Point{
			rot.Point(ribbon.Point{X: x0}, w, h),
			rot.Point(ribbon.Point{X: x1}, w, h),
			rot.Point(ribbon.Point{X: x1, Y: h}, w, h),
			rot.Point(ribbon.Point{X: x0, Y: h}, w, h),
		}
		st := clip.Outline{Path: quadPath(gtx.Ops, q)}.Op().Push(gtx.Ops)
		t := op.Affine(sliceTransform(q, x0, x1, h)).Push(gtx.Ops)
		face.Add(gtx.Ops)
		t.Pop()
		st.Pop()
	}
	return layout.Dimensions{Size: size}
}

func (b BlurCardStyle) face(gtx layout.Context, card image.Point, radius int, back bool, content layout.Widget) {
	rr := clip.UniformRRect(image.Rectangle{Max: card}, radius)
	defer rr.Push(gtx.Ops).Pop()
	s := layout.FPt(card)
	for i, col := range b.Blobs {
		// Blobs sit on a fixed spiral so the frost reads the same on
		// both sides.
		a := float64(i) * 2.4
		f := float32(i+1) / float32(len(b.Blobs)+1)
		pt := f32.Pt(s.X*(0.5+0.4*f*float32(math.Cos(a))), s.Y*(0.5+0.4*f*float32(math.Sin(a))))
		softDisc(gtx.Ops, pt, s.Y*0.3, s.Y*0.2, col, 0.8)
	}
	paint.FillShape(gtx.Ops, b.Surface, rr.Op(gtx.Ops))
	if back || content == nil {
		return
	}
	gtx.Constraints = layout.Exact(card)
	content(gtx)
}
