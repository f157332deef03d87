// SPDX-License-Identifier: Unlicense OR MIT

package cactus

import (
	"image"
	"image/color"

	"gioui.org/f32"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"

	"github.com/cactuskit/cactus/shadow"
)

// softBands is the number of layers of a soft shape.
const softBands = 6

// softDisc fills a disc of radius r blurred by blur.
func softDisc(ops *op.Ops, c f32.Point, r, blur float32, col color.NRGBA, alpha float64) {
	for _, b := range shadow.Soften(float64(2*r), float64(blur), alpha, softBands) {
		paint.FillShape(ops, withAlpha(col, b.Alpha), clip.Outline{Path: circle(ops, c, float32(b.Extent/2))}.Op())
	}
}

// softRRect fills the rounded rectangle rect blurred by blur.
func softRRect(ops *op.Ops, rect image.Rectangle, radius, blur int, col color.NRGBA, alpha float64) {
	for _, b := range shadow.Soften(0, float64(blur), alpha, softBands) {
		grow := int(b.Extent / 2)
		r := rect.Inset(-grow)
		paint.FillShape(ops, withAlpha(col, b.Alpha), clip.UniformRRect(r, radius+grow).Op(ops))
	}
}

// softLine strokes the segment from a to b with every band of bands.
func softLine(ops *op.Ops, a, b f32.Point, bands []shadow.Band, col color.NRGBA) {
	for _, band := range bands {
		var p clip.Path
		p.Begin(ops)
		p.MoveTo(a)
		p.LineTo(b)
		paint.FillShape(ops, withAlpha(col, band.Alpha), clip.Stroke{Path: p.End(), Width: float32(band.Extent)}.Op())
	}
}
