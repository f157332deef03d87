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

	"github.com/cactuskit/cactus/widget"
)

// ScrollCardsStyle draws a scrolling list of cards that collapse into
// the top edge.
type ScrollCardsStyle struct {
	State   *widget.ScrollCards
	Inset   unit.Dp
	Radius  unit.Dp
	Surface color.NRGBA
	Shadow  color.NRGBA
}

// ScrollCards returns a list style for state.
func ScrollCards(th *Theme, state *widget.ScrollCards) ScrollCardsStyle {
	return ScrollCardsStyle{
		State:   state,
		Inset:   16,
		Radius:  20,
		Surface: th.Surface,
		Shadow:  th.Shadow,
	}
}

// Layout fills the maximum constraints. card draws the content of card
// i; full is cleared while the card is mostly collapsed.
func (s ScrollCardsStyle) Layout(gtx layout.Context, card func(gtx layout.Context, i int, full bool) layout.Dimensions) layout.Dimensions {
	size := gtx.Constraints.Max
	frames := s.State.Update(gtx)
	defer clip.Rect{Max: size}.Push(gtx.Ops).Pop()
	s.State.Add(gtx.Ops)

	scale := pxPerDp(gtx)
	inset := gtx.Dp(s.Inset)
	radius := gtx.Dp(s.Radius)
	width := size.X - 2*inset
	for i, f := range frames {
		y := int(math.Round((f.Top + f.Offset) * float64(scale)))
		h := int(math.Round(f.Height * float64(scale)))
		if y > size.Y || y+h < 0 || width <= 0 {
			continue
		}
		rect := image.Rectangle{Max: image.Pt(width, h)}
		c := layout.FPt(rect.Max).Mul(0.5)
		k := float32(f.Scale)
		tr := f32.Affine2D{}.
			Scale(c, f32.Pt(k, k)).
			Offset(f32.Pt(float32(inset), float32(y)))
		st := op.Affine(tr).Push(gtx.Ops)
		alpha := paint.PushOpacity(gtx.Ops, float32(min(max(f.Alpha, 0), 1)))
		softRRect(gtx.Ops, rect.Add(image.Pt(0, gtx.Dp(4))), radius, gtx.Dp(8), s.Shadow, 0.2)
		rr := clip.UniformRRect(rect, radius)
		paint.FillShape(gtx.Ops, s.Surface, rr.Op(gtx.Ops))
		area := rr.Push(gtx.Ops)
		s.State.Tap(i).Add(gtx.Ops)
		if card != nil {
			cgtx := gtx
			cgtx.Constraints = layout.Exact(rect.Max)
			card(cgtx, i, f.Full)
		}
		area.Pop()
		alpha.Pop()
		st.Pop()
	}
	return layout.Dimensions{Size: size}
}
