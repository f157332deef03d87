// SPDX-License-Identifier: Unlicense OR MIT

package cactus

import (
	"image"
	"image/color"
	"sort"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"

	"github.com/cactuskit/cactus/widget"
)

// CarouselStyle draws a stack of cards that scale down and fade away
// from the current one.
type CarouselStyle struct {
	Carousel *widget.Carousel
	Length   int
	// CardWidth is the card width relative to the carousel width.
	CardWidth float32
	// Background fades cards away from the current one.
	Background color.NRGBA
}

// Carousel returns a carousel of length cards.
func Carousel(th *Theme, c *widget.Carousel, length int) CarouselStyle {
	return CarouselStyle{
		Carousel:   c,
		Length:     length,
		CardWidth:  0.85,
		Background: th.Bg,
	}
}

// Layout fills the maximum constraints with cards drawn by card.
func (c CarouselStyle) Layout(gtx layout.Context, card func(gtx layout.Context, i int) layout.Dimensions) layout.Dimensions {
	size := gtx.Constraints.Max
	pos := c.Carousel.Update(gtx, c.Length)
	defer clip.Rect{Max: size}.Push(gtx.Ops).Pop()
	c.Carousel.Add(gtx.Ops)

	order := make([]int, c.Length)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return c.Carousel.CardOrder(order[a], c.Length) < c.Carousel.CardOrder(order[b], c.Length)
	})

	cardSize := image.Pt(int(float32(size.X)*c.CardWidth), size.Y)
	half := layout.FPt(cardSize).Mul(0.5)
	scale := pxPerDp(gtx)
	for _, i := range order {
		s := float32(widget.CardScale(i, pos))
		dx := float32(widget.CardOffset(i, pos)) * scale
		tr := f32.Affine2D{}.
			Offset(half.Mul(-1)).
			Scale(f32.Point{}, f32.Pt(s, s)).
			Offset(f32.Pt(float32(size.X)/2+dx, float32(size.Y)/2))
		st := op.Affine(tr).Push(gtx.Ops)
		cgtx := gtx
		cgtx.Constraints = layout.Exact(cardSize)
		card(cgtx, i)
		if fade := float64(1-s) * 8; fade > 0 {
			paint.FillShape(gtx.Ops, withAlpha(c.Background, fade), clip.Rect{Max: cardSize}.Op())
		}
		st.Pop()
	}
	return layout.Dimensions{Size: size}
}
