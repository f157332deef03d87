// SPDX-License-Identifier: Unlicense OR MIT

package cactus

import (
	"image/color"
	"math"
	"time"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"

	"github.com/cactuskit/cactus/motion"
)

// waveShift is the phase the wave travels in one period.
const waveShift = 20 * math.Pi

// LoadingWaveStyle draws an endless glowing wave.
type LoadingWaveStyle struct {
	// Wave shape. Amplitude and period are in dp.
	Wave motion.Wave
	// Period is the time the wave takes to travel 20π.
	Period time.Duration
	// Glow scales the height of the glow bands.
	Glow  float64
	Color color.NRGBA
	// Background is used to carve the inner side of the glow.
	Background color.NRGBA
}

// LoadingWave returns a wave in the theme foreground.
func LoadingWave(th *Theme) LoadingWaveStyle {
	return LoadingWaveStyle{
		Wave:       motion.Wave{Amplitude: 20, Period: 40},
		Period:     13 * time.Second,
		Glow:       0.8,
		Color:      th.Fg,
		Background: th.Bg,
	}
}

// glowBands are the layers of the glow, from the widest to the core: the
// boost applied to the wave on the outer side of a band, the scale of
// its inner side and the band opacity.
var glowBands = []struct {
	boost, base, alpha float64
}{
	{2.5, 1, 0.2},
	{2, 1, 0.5},
	{1.5, 1, 0.8},
	{1.3, 0.9, 1},
}

// Layout fills the maximum constraints and animates continuously.
func (w LoadingWaveStyle) Layout(gtx layout.Context) layout.Dimensions {
	size := gtx.Constraints.Max
	defer clip.Rect{Max: size}.Push(gtx.Ops).Pop()
	scale := float64(pxPerDp(gtx))
	wave := motion.Wave{Amplitude: w.Wave.Amplitude * scale, Period: w.Wave.Period * scale}
	shift := motion.Phase(gtx.Now, w.Period) * waveShift
	width, mid := float64(size.X), float64(size.Y)/2
	step := max(scale, 1)

	curve := func(s float64) []f32.Point {
		n := int(width/step) + 1
		pts := make([]f32.Point, 0, n+1)
		for x := 0.0; x < width; x += step {
			pts = append(pts, f32.Pt(float32(x), float32(wave.Y(x, shift)*s+mid)))
		}
		return append(pts, f32.Pt(float32(width), float32(wave.Y(width, shift)*s+mid)))
	}
	band := func(boost, base float64) clip.PathSpec {
		outer := curve(boost)
		inner := curve(base)
		for i, j := 0, len(inner)-1; i < j; i, j = i+1, j-1 {
			inner[i], inner[j] = inner[j], inner[i]
		}
		return polygon(gtx.Ops, append(outer, inner...))
	}

	for _, b := range glowBands {
		paint.FillShape(gtx.Ops, withAlpha(w.Color, b.alpha), clip.Outline{Path: band(b.boost*w.Glow, b.base)}.Op())
		paint.FillShape(gtx.Ops, withAlpha(w.Background, b.alpha), clip.Outline{Path: band(-b.boost*w.Glow, b.base)}.Op())
	}

	var p clip.Path
	p.Begin(gtx.Ops)
	for i, pt := range curve(1) {
		if i == 0 {
			p.MoveTo(pt)
			continue
		}
		p.LineTo(pt)
	}
	paint.FillShape(gtx.Ops, withAlpha(w.Color, 0.6), clip.Stroke{Path: p.End(), Width: float32(scale)}.Op())

	gtx.Execute(op.InvalidateCmd{})
	return layout.Dimensions{Size: size}
}
