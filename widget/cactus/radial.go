// SPDX-License-Identifier: Unlicense OR MIT

package cactus

import (
	"image/color"
	"math"
	"math/rand/v2"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"

	"github.com/cactuskit/cactus/radial"
)

// RadialLinesStyle draws a burst of lines from the center of its area
// towards the border.
type RadialLinesStyle struct {
	Burst radial.Burst
	// Seed selects the random line lengths. Equal seeds draw equal
	// bursts.
	Seed  uint64
	Color color.NRGBA
}

// RadialLines returns the default burst in the theme foreground.
func RadialLines(th *Theme) RadialLinesStyle {
	return RadialLinesStyle{Burst: radial.DefaultBurst(), Seed: 1, Color: th.Fg}
}

// Layout fills the maximum constraints.
func (r RadialLinesStyle) Layout(gtx layout.Context) layout.Dimensions {
	size := gtx.Constraints.Max
	defer clip.Rect{Max: size}.Push(gtx.Ops).Pop()
	rng := rand.New(rand.NewPCG(r.Seed, r.Seed^0x9e3779b97f4a7c15))
	segs := r.Burst.Segments(radial.Size{W: float64(size.X), H: float64(size.Y)}, rng)
	if len(segs) == 0 || r.Burst.LineWidth <= 0 {
		return layout.Dimensions{Size: size}
	}
	var p clip.Path
	p.Begin(gtx.Ops)
	for _, s := range segs {
		p.MoveTo(f32.Pt(float32(s.From.X), float32(s.From.Y)))
		p.LineTo(f32.Pt(float32(s.To.X), float32(s.To.Y)))
	}
	width := float32(r.Burst.LineWidth) * pxPerDp(gtx)
	paint.FillShape(gtx.Ops, r.Color, clip.Stroke{Path: p.End(), Width: width}.Op())
	return layout.Dimensions{Size: size}
}

// RadialGlowStyle draws a soft glow fading out from the center of its
// area.
type RadialGlowStyle struct {
	Colors []color.NRGBA
	// Bands is the number of rings the gradient is drawn with.
	Bands int
}

// RadialGlow returns a warm glow.
func RadialGlow() RadialGlowStyle {
	return RadialGlowStyle{
		Colors: []color.NRGBA{
			{R: 242, G: 138, B: 2, A: 255},
			{R: 250, G: 208, B: 55, A: 255},
			{R: 16, G: 176, B: 224, A: 255},
		},
		Bands: 48,
	}
}

// Layout fills the maximum constraints. The glow reaches the corners of
// the area.
func (g RadialGlowStyle) Layout(gtx layout.Context) layout.Dimensions {
	size := gtx.Constraints.Max
	stops := radial.GlowStops(g.Colors)
	if len(stops) == 0 || g.Bands <= 0 {
		return layout.Dimensions{Size: size}
	}
	defer clip.Rect{Max: size}.Push(gtx.Ops).Pop()
	c := layout.FPt(size.Div(2))
	radius := float32(math.Hypot(float64(size.X), float64(size.Y)) / 2)
	band := radius / float32(g.Bands)
	for i := 0; i < g.Bands; i++ {
		t := (float64(i) + 0.5) / float64(g.Bands)
		col := radial.Sample(stops, t)
		if col.A == 0 {
			continue
		}
		r := band * (float32(i) + 0.5)
		paint.FillShape(gtx.Ops, col, clip.Stroke{Path: circle(gtx.Ops, c, r), Width: band + 0.5}.Op())
	}
	return layout.Dimensions{Size: size}
}
