// SPDX-License-Identifier: Unlicense OR MIT

package cactus

import (
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
)

// TicketStyle draws a ticket: a card with concave corners and a
// notch on either side of the tear-off stub.
type TicketStyle struct {
	// Stub is the position of the notches relative to the height.
	Stub float32
	// Corner is the radius of the corner cutouts.
	Corner unit.Dp
	// Notch is the radius of the notches.
	Notch unit.Dp
	// Dash is the length of the dashes along the tear line.
	Dash unit.Dp

	Color     color.NRGBA
	TearColor color.NRGBA
}

// Ticket returns a ticket on the theme surface.
func Ticket(th *Theme) TicketStyle {
	return TicketStyle{
		Stub:      0.75,
		Corner:    20,
		Notch:     20,
		Dash:      8,
		Color:     th.Surface,
		TearColor: withAlpha(th.Fg, 0.3),
	}
}

// Layout draws the ticket at the size of w and clips w to it.
func (t TicketStyle) Layout(gtx layout.Context, w layout.Widget) layout.Dimensions {
	macro := op.Record(gtx.Ops)
	dims := w(gtx)
	call := macro.Stop()

	size := layout.FPt(dims.Size)
	corner, notch := float32(gtx.Dp(t.Corner)), float32(gtx.Dp(t.Notch))
	outline := ticketOutline(size, corner, notch, t.Stub)
	shape := clip.Outline{Path: polygon(gtx.Ops, outline)}.Op()
	paint.FillShape(gtx.Ops, t.Color, shape)
	st := clip.Outline{Path: polygon(gtx.Ops, outline)}.Op().Push(gtx.Ops)
	call.Add(gtx.Ops)
	st.Pop()

	y := size.Y * t.Stub
	dash := float32(gtx.Dp(t.Dash))
	if dash > 0 {
		var p clip.Path
		p.Begin(gtx.Ops)
		for x := notch + dash/2; x+dash < size.X-notch; x += 2 * dash {
			p.MoveTo(f32.Pt(x, y))
			p.LineTo(f32.Pt(x+dash, y))
		}
		paint.FillShape(gtx.Ops, t.TearColor, clip.Stroke{Path: p.End(), Width: float32(gtx.Dp(1))}.Op())
	}
	return dims
}

// ticketOutline returns the outline of a ticket of the given size,
// clockwise from the top left corner.
func ticketOutline(size f32.Point, corner, notch, stub float32) []f32.Point {
	w, h := size.X, size.Y
	corner = min(corner, w/2, h/2)
	y := h * stub
	notch = min(notch, y, h-y, w/2)
	var pts []f32.Point
	add := func(p ...f32.Point) { pts = append(pts, p...) }

	add(arcPoints(f32.Pt(0, 0), corner, math.Pi/2, 0)...)
	add(arcPoints(f32.Pt(w, 0), corner, math.Pi, math.Pi/2)...)
	add(arcPoints(f32.Pt(w, y), notch, -math.Pi/2, -3*math.Pi/2)...)
	add(arcPoints(f32.Pt(w, h), corner, -math.Pi/2, -math.Pi)...)
	add(arcPoints(f32.Pt(0, h), corner, 0, -math.Pi/2)...)
	add(arcPoints(f32.Pt(0, y), notch, math.Pi/2, -math.Pi/2)...)
	return pts
}
