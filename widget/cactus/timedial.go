// SPDX-License-Identifier: Unlicense OR MIT

package cactus

import (
	"fmt"
	"image"
	"image/color"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/cactuskit/cactus/dial"
	"github.com/cactuskit/cactus/widget"
)

// TimeDialStyle draws a half circle time picker with a linear track
// below it.
type TimeDialStyle struct {
	Dial *widget.TimeDial
	// Radius of the face.
	Radius unit.Dp
	// TrackHeight is the height of the linear track.
	TrackHeight unit.Dp

	Face       color.NRGBA
	Foreground color.NRGBA
	Accent     color.NRGBA

	th *Theme
}

// TimeDial returns a time dial style.
func TimeDial(th *Theme, d *widget.TimeDial) TimeDialStyle {
	return TimeDialStyle{
		Dial:        d,
		Radius:      140,
		TrackHeight: 36,
		Face:        th.Surface,
		Foreground:  th.Fg,
		Accent:      th.Accent,
		th:          th,
	}
}

// Layout draws the header, the face and the track.
func (t TimeDialStyle) Layout(gtx layout.Context) layout.Dimensions {
	return layout.Flex{Axis: layout.Vertical, Alignment: layout.Middle}.Layout(gtx,
		layout.Rigid(t.layoutHeader),
		layout.Rigid(layout.Spacer{Height: 12}.Layout),
		layout.Rigid(t.layoutFace),
		layout.Rigid(layout.Spacer{Height: 12}.Layout),
		layout.Rigid(t.layoutTrack),
	)
}

func (t TimeDialStyle) layoutHeader(gtx layout.Context) layout.Dimensions {
	c := t.Dial.Clock
	half := "AM"
	if t.Dial.Meridian.PM {
		half = "PM"
	}
	h := c.Hour % 12
	if h == 0 {
		h = 12
	}
	return layout.Flex{Alignment: layout.Baseline}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return t.Dial.Mode.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				l := material.H4(t.th.Theme, fmt.Sprintf("%d:%02d", h, c.Minute))
				l.Color = t.Foreground
				return l.Layout(gtx)
			})
		}),
		layout.Rigid(layout.Spacer{Width: 8}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return t.Dial.Half.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				l := material.H6(t.th.Theme, half)
				l.Color = t.Accent
				return l.Layout(gtx)
			})
		}),
	)
}

func (t TimeDialStyle) layoutFace(gtx layout.Context) layout.Dimensions {
	radius := gtx.Dp(t.Radius)
	// The input area extends below the face so drags can cross the
	// midline.
	t.Dial.LayoutFace(gtx, radius, func(gtx layout.Context) layout.Dimensions {
		return t.drawFace(gtx, float32(radius))
	})
	return layout.Dimensions{Size: image.Pt(2*radius, radius)}
}

func (t TimeDialStyle) drawFace(gtx layout.Context, r float32) layout.Dimensions {
	c := f32.Pt(r, r)
	paint.FillShape(gtx.Ops, t.Face, clip.Outline{Path: halfDisc(gtx.Ops, c, r)}.Op())

	value := 1
	if !t.Dial.SelectingHour {
		value = 5
	}
	for i := 0; i < 12; i++ {
		var angle float64
		if t.Dial.SelectingHour {
			angle = dial.HourAngle(float64(i))
		} else {
			angle = dial.MinuteAngle(float64(i * value))
		}
		off := dial.LabelOffset(float64(r)*0.82, angle)
		text := fmt.Sprint(i * value)
		if t.Dial.SelectingHour && i == 0 {
			text = "12"
		}
		pt := image.Pt(int(float64(c.X)+off.X), int(float64(c.Y)+off.Y))
		layoutCentered(gtx, pt, func(gtx layout.Context) layout.Dimensions {
			return t.Dial.Label(i).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				l := material.Caption(t.th.Theme, text)
				l.Color = t.Foreground
				return layout.UniformInset(6).Layout(gtx, l.Layout)
			})
		})
	}

	off := dial.LabelOffset(float64(r)*0.62, t.Dial.Angle())
	tip := c.Add(f32.Pt(float32(off.X), float32(off.Y)))
	var p clip.Path
	p.Begin(gtx.Ops)
	p.MoveTo(c)
	p.LineTo(tip)
	paint.FillShape(gtx.Ops, t.Accent, clip.Stroke{Path: p.End(), Width: float32(gtx.Dp(2))}.Op())
	paint.FillShape(gtx.Ops, t.Accent, clip.Outline{Path: circle(gtx.Ops, tip, float32(gtx.Dp(6)))}.Op())
	paint.FillShape(gtx.Ops, t.Accent, clip.Outline{Path: circle(gtx.Ops, c, float32(gtx.Dp(4)))}.Op())
	return layout.Dimensions{Size: gtx.Constraints.Max}
}

func (t TimeDialStyle) layoutTrack(gtx layout.Context) layout.Dimensions {
	height := gtx.Dp(t.TrackHeight)
	width := 2 * gtx.Dp(t.Radius)
	size := image.Pt(width, height)
	paint.FillShape(gtx.Ops, t.Face, clip.UniformRRect(image.Rectangle{Max: size}, height/2).Op(gtx.Ops))

	fraction := float32(t.Dial.Clock.Minute) / 60
	if t.Dial.SelectingHour {
		fraction = float32(t.Dial.Clock.Hour) / 24
	}
	x := fraction * float32(width)
	mid := f32.Pt(float32(width)/2, float32(height)/2)
	paint.FillShape(gtx.Ops, withAlpha(t.Foreground, 0.2), clip.Rect{
		Min: image.Pt(int(mid.X), height/4),
		Max: image.Pt(int(mid.X)+1, height*3/4),
	}.Op())
	paint.FillShape(gtx.Ops, t.Accent, clip.Outline{Path: circle(gtx.Ops, f32.Pt(x, mid.Y), float32(height)/3)}.Op())

	t.Dial.LayoutTrack(gtx, height)
	return layout.Dimensions{Size: size}
}

// layoutCentered lays out w centered on pt.
func layoutCentered(gtx layout.Context, pt image.Point, w layout.Widget) {
	gtx.Constraints.Min = image.Point{}
	macro := op.Record(gtx.Ops)
	dims := w(gtx)
	call := macro.Stop()
	defer op.Offset(pt.Sub(dims.Size.Div(2))).Push(gtx.Ops).Pop()
	call.Add(gtx.Ops)
}
