// SPDX-License-Identifier: Unlicense OR MIT

package cactus

import (
	"image/color"

	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/text"
	"gioui.org/widget/material"
)

// Theme holds the colors and text shaper shared by the styles.
type Theme struct {
	*material.Theme
	// Accent highlights selections and markers.
	Accent color.NRGBA
	// Surface fills panels, cards and dial faces.
	Surface color.NRGBA
	// Shadow darkens alternate ribbon panels.
	Shadow color.NRGBA
}

// NewTheme returns a light theme using the Go fonts.
func NewTheme() *Theme {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	th.Palette = material.Palette{
		Bg:         color.NRGBA{R: 255, G: 248, B: 223, A: 255},
		Fg:         color.NRGBA{R: 15, G: 15, B: 15, A: 255},
		ContrastBg: color.NRGBA{R: 190, G: 72, B: 22, A: 255},
		ContrastFg: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
	}
	return &Theme{
		Theme:   th,
		Accent:  th.Palette.ContrastBg,
		Surface: color.NRGBA{R: 236, G: 228, B: 204, A: 255},
		Shadow:  color.NRGBA{A: 255},
	}
}

// pxPerDp returns the pixel density of gtx.
func pxPerDp(gtx layout.Context) float32 {
	if gtx.Metric.PxPerDp == 0 {
		return 1
	}
	return gtx.Metric.PxPerDp
}

// withAlpha returns c with its alpha scaled by a in [0, 1].
func withAlpha(c color.NRGBA, a float64) color.NRGBA {
	a = min(max(a, 0), 1)
	c.A = uint8(float64(c.A)*a + 0.5)
	return c
}
