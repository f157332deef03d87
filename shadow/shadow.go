// SPDX-License-Identifier: Unlicense OR MIT

// Package shadow computes layered shadows and soft edges.
//
// Gio has no blur filter, so soft shapes are drawn as a stack of
// translucent copies of decreasing extent. Band describes one copy.
package shadow

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// maxAlpha caps the composite opacity of a soft edge so its outer bands
// stay translucent.
const maxAlpha = 0.95

// Band is one layer of a soft edge.
type Band struct {
	// Extent is the width of the layer: the stroke width of a soft
	// line, or the diameter of a soft disc.
	Extent float64
	// Alpha of the layer.
	Alpha float64
}

// Soften returns n bands approximating a shape of the given extent
// blurred by radius, with composite opacity alpha at its core. The
// widest band comes first. Stacked in order, the core is covered by
// every band and the outer rim by one only.
func Soften(extent, radius, alpha float64, n int) []Band {
	if n <= 0 || alpha <= 0 || extent < 0 {
		return nil
	}
	alpha = math.Min(alpha, maxAlpha)
	radius = math.Max(radius, 0)
	layer := 1 - math.Pow(1-alpha, 1/float64(n))
	bands := make([]Band, n)
	for i := range bands {
		f := 0.0
		if n > 1 {
			f = float64(n-1-i) / float64(n-1)
		}
		bands[i] = Band{Extent: extent + 2*radius*f, Alpha: layer}
	}
	return bands
}

// Composite returns the opacity of the stacked bands at distance d from
// the center line of the shape.
func Composite(bands []Band, d float64) float64 {
	through := 1.0
	for _, b := range bands {
		if math.Abs(d) <= b.Extent/2 {
			through *= 1 - b.Alpha
		}
	}
	return 1 - through
}

// Cast describes a cast shadow: copies of a shape stepped along a
// direction, fading from the foreground to the background color.
type Cast struct {
	// Angle of the shadow direction in degrees, with y extending down.
	Angle float64
	// Length of the shadow.
	Length float64
	// Spacing between two copies.
	Spacing float64
	// Opacity of the shadow in [0, 1].
	Opacity float64
}

// DefaultCast returns a shadow falling 100 units down and right.
func DefaultCast() Cast {
	return Cast{Angle: 45, Length: 100, Spacing: 5, Opacity: 0.7}
}

// Layer is one copy of a cast shadow.
type Layer struct {
	// Index of the copy; 0 lies under the shape.
	Index int
	// DX, DY is the offset of the copy.
	DX, DY float64
	Color  color.NRGBA
}

// Count returns the number of steps along the shadow.
func (c Cast) Count() float64 {
	if c.Spacing <= 0 || c.Length <= 0 {
		return 0
	}
	return c.Length / c.Spacing
}

// Layers returns the copies of the shadow ordered from the farthest to
// the nearest, ready to be drawn in order. The color of copy i steps
// from fg towards bg; a copy that reaches bg is transparent.
func (c Cast) Layers(fg, bg color.NRGBA) []Layer {
	count := c.Count()
	if count == 0 || math.IsInf(count, 0) || math.IsNaN(count) {
		return nil
	}
	opacity := math.Min(math.Max(c.Opacity, 0), 1)
	sin, cos := math.Sincos(c.Angle * math.Pi / 180)
	n := int(count)
	layers := make([]Layer, 0, n+1)
	for i := n; i >= 0; i-- {
		f := float64(i) / count
		scale := math.Min(math.Max(f+(1-opacity), 0), 1)
		col := blendRGB(fg, bg, scale)
		alpha := 1 - f*opacity
		if scale == 1 {
			alpha = 0
		}
		col.A = uint8(float64(col.A)*alpha + 0.5)
		layers = append(layers, Layer{
			Index: i,
			DX:    cos * float64(i) * c.Spacing,
			DY:    sin * float64(i) * c.Spacing,
			Color: col,
		})
	}
	return layers
}

func blendRGB(a, b color.NRGBA, f float64) color.NRGBA {
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	r, g, bl := ca.BlendRgb(cb, f).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: bl, A: 255}
}
