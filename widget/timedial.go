// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"
	"math"

	"gioui.org/gesture"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	giowidget "gioui.org/widget"

	"github.com/cactuskit/cactus/dial"
)

// TimeDial picks a time of day on a half circle face, or along a linear
// track below it. Dragging the face picks hours and then minutes;
// crossing the face midline while picking hours switches between
// morning and afternoon. Tapping a face label picks its value directly.
type TimeDial struct {
	dial.TimeDial

	// Half toggles between morning and afternoon.
	Half giowidget.Clickable
	// Mode switches between picking hours and minutes.
	Mode giowidget.Clickable

	labels  [12]giowidget.Clickable
	face    gesture.Drag
	track   gesture.Drag
	press   dial.Point
	dragged bool
	radius  float64
	changed bool
}

// Label returns the tap target of face label i. Label i stands for hour
// i while picking hours and for minute 5·i while picking minutes.
func (d *TimeDial) Label(i int) *giowidget.Clickable {
	return &d.labels[i]
}

// NewTimeDial returns a dial showing c.
func NewTimeDial(c dial.Clock) *TimeDial {
	return &TimeDial{TimeDial: *dial.NewTimeDial(c)}
}

// Changed reports whether the time changed since the last call to
// Changed.
func (d *TimeDial) Changed() bool {
	c := d.changed
	d.changed = false
	return c
}

// Dragging reports whether the face or the track is being dragged.
func (d *TimeDial) Dragging() bool {
	return d.dragged && d.face.Dragging() || d.track.Dragging()
}

// Update processes events.
func (d *TimeDial) Update(gtx layout.Context) {
	before := d.Clock
	if d.Half.Clicked(gtx) {
		d.SetPM(!d.Meridian.PM)
	}
	if d.Mode.Clicked(gtx) {
		d.SelectingHour = !d.SelectingHour
	}
	for {
		e, ok := d.face.Update(gtx.Metric, gtx.Source, gesture.Both)
		if !ok {
			break
		}
		pos := dial.Point{X: float64(e.Position.X), Y: float64(e.Position.Y)}
		switch e.Kind {
		case pointer.Press:
			d.press = pos
			d.dragged = false
		case pointer.Drag:
			// A face drag starts once the pointer leaves the press slop.
			if !d.dragged && math.Hypot(pos.X-d.press.X, pos.Y-d.press.Y) < dial.DefaultMinDistance {
				break
			}
			d.dragged = true
			d.Drag(pos, d.radius)
		case pointer.Release:
			if d.dragged {
				d.EndDrag()
			}
		case pointer.Cancel:
			d.dragged = false
			d.Meridian.Reset()
		}
	}
	for i := range d.labels {
		if !d.labels[i].Clicked(gtx) || d.dragged {
			continue
		}
		if d.SelectingHour {
			d.TapHour(i)
		} else {
			d.TapMinute(i * 5)
		}
	}
	for {
		e, ok := d.track.Update(gtx.Metric, gtx.Source, gesture.Horizontal)
		if !ok {
			break
		}
		switch e.Kind {
		case pointer.Press, pointer.Drag:
			d.Slide(float64(e.Position.X), d.radius)
		case pointer.Release, pointer.Cancel:
			d.EndSlide()
		}
	}
	if d.Clock != before {
		d.changed = true
		gtx.Execute(op.InvalidateCmd{})
	}
}

// LayoutFace registers the input area of a face with the given radius in
// pixels and lays out w inside it. The face center is at (radius,
// radius). Labels laid out by w keep their taps while drags that start
// on them still reach the face.
func (d *TimeDial) LayoutFace(gtx layout.Context, radius int, w layout.Widget) layout.Dimensions {
	d.radius = float64(radius)
	d.Update(gtx)
	size := image.Pt(2*radius, 2*radius)
	defer clip.Rect{Max: size}.Push(gtx.Ops).Pop()
	d.face.Add(gtx.Ops)
	if w != nil {
		gtx.Constraints = layout.Exact(size)
		w(gtx)
	}
	return layout.Dimensions{Size: size}
}

// LayoutTrack registers the input area of the linear track, 2·radius
// wide and height pixels tall.
func (d *TimeDial) LayoutTrack(gtx layout.Context, height int) layout.Dimensions {
	size := image.Pt(int(2*d.radius), height)
	defer clip.Rect{Max: size}.Push(gtx.Ops).Pop()
	d.track.Add(gtx.Ops)
	return layout.Dimensions{Size: size}
}
