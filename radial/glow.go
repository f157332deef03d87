// SPDX-License-Identifier: Unlicense OR MIT

package radial

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// glowSpan is the fraction of the glow radius covered by color stops.
const glowSpan = 0.65

// Stop is a gradient color stop.
type Stop struct {
	Offset float64
	Color  color.NRGBA
}

// GlowStops returns the stops of a glow fading through colors to
// transparent. The stops are spread evenly over the inner 65% of the
// radius.
func GlowStops(colors []color.NRGBA) []Stop {
	if len(colors) == 0 {
		return nil
	}
	last := colors[len(colors)-1]
	last.A = 0
	all := append(append([]color.NRGBA(nil), colors...), last)
	spacing := glowSpan / float64(len(all))
	stops := make([]Stop, len(all))
	for i, c := range all {
		stops[i] = Stop{Offset: spacing * float64(i), Color: c}
	}
	return stops
}

// Sample returns the color of the gradient at offset t. Colors between
// stops are blended in the Lab color space.
func Sample(stops []Stop, t float64) color.NRGBA {
	switch {
	case len(stops) == 0:
		return color.NRGBA{}
	case t <= stops[0].Offset:
		return stops[0].Color
	case t >= stops[len(stops)-1].Offset:
		return stops[len(stops)-1].Color
	}
	for i := 1; i < len(stops); i++ {
		a, b := stops[i-1], stops[i]
		if t > b.Offset {
			continue
		}
		f := (t - a.Offset) / (b.Offset - a.Offset)
		return blend(a.Color, b.Color, f)
	}
	return stops[len(stops)-1].Color
}

func blend(a, b color.NRGBA, f float64) color.NRGBA {
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	r, g, bl := ca.BlendLab(cb, f).Clamped().RGB255()
	alpha := float64(a.A) + (float64(b.A)-float64(a.A))*f
	return color.NRGBA{R: r, G: g, B: bl, A: uint8(alpha + 0.5)}
}
