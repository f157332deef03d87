// SPDX-License-Identifier: Unlicense OR MIT

package cactus

import (
	"image"
	"image/color"
	"math"

	"gioui.org/layout"
	"gioui.org/op"

	"github.com/cactuskit/cactus/shadow"
)

// CastShadowStyle draws content over a long shadow made of offset
// copies fading into the background.
type CastShadowStyle struct {
	// Cast lengths are in dp.
	Cast       shadow.Cast
	Foreground color.NRGBA
	Background color.NRGBA
}

// CastShadow returns a shadow falling down and right.
func CastShadow(th *Theme) CastShadowStyle {
	return CastShadowStyle{
		Cast:       shadow.DefaultCast(),
		Foreground: th.Fg,
		Background: th.Bg,
	}
}

// Layout draws the shadow copies and then the content, each drawn by
// content in the color it is given.
func (s CastShadowStyle) Layout(gtx layout.Context, content func(gtx layout.Context, col color.NRGBA) layout.Dimensions) layout.Dimensions {
	scale := float64(pxPerDp(gtx))
	c := s.Cast
	c.Length *= scale
	c.Spacing *= scale
	for _, l := range c.Layers(s.Foreground, s.Background) {
		if l.Color.A == 0 {
			continue
		}
		off := image.Pt(int(math.Round(l.DX)), int(math.Round(l.DY)))
		st := op.Offset(off).Push(gtx.Ops)
		content(gtx, l.Color)
		st.Pop()
	}
	return content(gtx, s.Foreground)
}
