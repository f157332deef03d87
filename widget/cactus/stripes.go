// SPDX-License-Identifier: Unlicense OR MIT

package cactus

import (
	"image"
	"image/color"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"

	"github.com/cactuskit/cactus/stripe"
)

// StripedFillStyle fills its area with angled stripes.
type StripedFillStyle struct {
	// Spec of the stripes. Widths are in dp.
	Spec  stripe.Spec
	Color color.NRGBA
}

// StripedFill returns a fill of spec in the theme foreground.
func StripedFill(th *Theme, spec stripe.Spec) StripedFillStyle {
	return StripedFillStyle{Spec: spec, Color: th.Fg}
}

// Layout fills the maximum constraints.
func (s StripedFillStyle) Layout(gtx layout.Context) layout.Dimensions {
	size := gtx.Constraints.Max
	defer clip.Rect{Max: size}.Push(gtx.Ops).Pop()
	spec := s.Spec.Normalized()
	paint.FillShape(gtx.Ops, withAlpha(s.Color, spec.Opacity), stripes(gtx, spec, size))
	return layout.Dimensions{Size: size}
}

// MaskedStripesStyle shows content only where the stripes of Spec
// would be drawn.
type MaskedStripesStyle struct {
	Spec stripe.Spec
}

// MaskedStripes returns a stripe mask.
func MaskedStripes(spec stripe.Spec) MaskedStripesStyle {
	return MaskedStripesStyle{Spec: spec}
}

// Layout draws w through the stripes.
func (s MaskedStripesStyle) Layout(gtx layout.Context, w layout.Widget) layout.Dimensions {
	macro := op.Record(gtx.Ops)
	dims := w(gtx)
	call := macro.Stop()
	spec := s.Spec.Normalized()
	defer paint.PushOpacity(gtx.Ops, float32(spec.Opacity)).Pop()
	defer clip.Rect{Max: dims.Size}.Push(gtx.Ops).Pop()
	defer stripes(gtx, spec, dims.Size).Push(gtx.Ops).Pop()
	call.Add(gtx.Ops)
	return dims
}

// stripes returns the stroked stripes covering a rectangle of size.
func stripes(gtx layout.Context, spec stripe.Spec, size image.Point) clip.Op {
	scale := float64(pxPerDp(gtx))
	spec.LineWidth *= scale
	spec.Spacing *= scale
	lines := stripe.Lines(spec, stripe.Size{W: float64(size.X), H: float64(size.Y)})
	if len(lines) == 0 || spec.LineWidth <= 0 {
		return clip.Rect{}.Op()
	}
	var p clip.Path
	p.Begin(gtx.Ops)
	for _, l := range lines {
		p.MoveTo(f32.Pt(float32(l.From.X), float32(l.From.Y)))
		p.LineTo(f32.Pt(float32(l.To.X), float32(l.To.Y)))
	}
	return clip.Stroke{Path: p.End(), Width: float32(spec.LineWidth)}.Op()
}
