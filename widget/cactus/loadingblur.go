// SPDX-License-Identifier: Unlicense OR MIT

package cactus

import (
	"image/color"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"

	"github.com/cactuskit/cactus/widget"
)

// LoadingBlurStyle draws the drifting blobs of a LoadingBlur.
type LoadingBlurStyle struct {
	State      *widget.LoadingBlur
	Background color.NRGBA
	// Blur softens the blob edges.
	Blur unit.Dp
}

func LoadingBlur(th *Theme, state *widget.LoadingBlur) LoadingBlurStyle {
	return LoadingBlurStyle{
		State:      state,
		Background: th.Bg,
		Blur:       60,
	}
}

// Layout fills the maximum constraints.
func (l LoadingBlurStyle) Layout(gtx layout.Context) layout.Dimensions {
	l.State.Update(gtx)
	size := gtx.Constraints.Max
	defer clip.Rect{Max: size}.Push(gtx.Ops).Pop()
	paint.Fill(gtx.Ops, l.Background)
	l.State.Add(gtx.Ops)
	scale := pxPerDp(gtx)
	blur := float32(gtx.Dp(l.Blur))
	s := layout.FPt(size)
	for i := range l.State.Blobs {
		b := &l.State.Blobs[i]
		x, y := b.Position(gtx.Now)
		c := f32.Pt(float32(x)*s.X, float32(y)*s.Y)
		softDisc(gtx.Ops, c, float32(b.Radius)*scale, blur, l.State.Color(i), b.Alpha(gtx.Now))
	}
	return layout.Dimensions{Size: size}
}
