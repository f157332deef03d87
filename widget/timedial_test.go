// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"
	"testing"
	"time"

	"gioui.org/f32"
	"gioui.org/io/input"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"

	"github.com/cactuskit/cactus/dial"
)

func TestTimeDialCrossesMidline(t *testing.T) {
	var r input.Router
	d := NewTimeDial(dial.Clock{Hour: 9})
	gtx := layout.Context{
		Ops:    new(op.Ops),
		Source: r.Source(),
		Now:    time.Unix(0, 0),
	}
	gtx.Reset()
	d.LayoutFace(gtx, 100, nil)
	r.Frame(gtx.Ops)
	r.Queue(pointerEvents(
		[]pointer.Kind{pointer.Press, pointer.Move, pointer.Move, pointer.Release},
		f32.Pt(20, 90), f32.Pt(20, 70), f32.Pt(20, 110), f32.Pt(20, 110),
	)...)
	d.Update(gtx)
	if !d.Changed() {
		t.Fatal("drag did not change the time")
	}
	if got := d.Clock.Hour; got != 23 {
		t.Errorf("Hour = %d, want 23", got)
	}
	if !d.Meridian.PM {
		t.Error("crossing the midline did not switch to PM")
	}
	if d.SelectingHour {
		t.Error("dial still picks hours after the drag")
	}
}

func TestTimeDialPressWithoutDrag(t *testing.T) {
	var r input.Router
	d := NewTimeDial(dial.Clock{Hour: 9, Minute: 30})
	gtx := layout.Context{
		Ops:    new(op.Ops),
		Source: r.Source(),
		Now:    time.Unix(0, 0),
	}
	gtx.Reset()
	d.LayoutFace(gtx, 100, nil)
	r.Frame(gtx.Ops)
	r.Queue(pointerEvents(
		[]pointer.Kind{pointer.Press, pointer.Move, pointer.Release},
		f32.Pt(30, 60), f32.Pt(34, 63), f32.Pt(34, 63),
	)...)
	d.Update(gtx)
	if d.Changed() {
		t.Errorf("press within the slop changed the time to %v", d.Clock)
	}
	if want := (dial.Clock{Hour: 9, Minute: 30}); d.Clock != want {
		t.Errorf("Clock = %v, want %v", d.Clock, want)
	}
	if !d.SelectingHour {
		t.Error("press within the slop moved on to minutes")
	}
}

func TestTimeDialTapLabel(t *testing.T) {
	var r input.Router
	d := NewTimeDial(dial.Clock{Hour: 9, Minute: 30})
	gtx := layout.Context{
		Ops:    new(op.Ops),
		Source: r.Source(),
		Now:    time.Unix(0, 0),
	}
	// Label 3 covers (40,40)-(60,60) of the face.
	frame := func() {
		gtx.Reset()
		d.LayoutFace(gtx, 100, func(gtx layout.Context) layout.Dimensions {
			defer op.Offset(image.Pt(40, 40)).Push(gtx.Ops).Pop()
			return d.Label(3).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return layout.Dimensions{Size: image.Pt(20, 20)}
			})
		})
		r.Frame(gtx.Ops)
	}
	tap := func() {
		r.Queue(pointerEvents(
			[]pointer.Kind{pointer.Press, pointer.Release},
			f32.Pt(50, 50), f32.Pt(50, 50),
		)...)
		d.Update(gtx)
	}

	frame()
	tap()
	if want := (dial.Clock{Hour: 3, Minute: 30}); d.Clock != want {
		t.Errorf("tapping hour 3 gave %v, want %v", d.Clock, want)
	}
	if d.SelectingHour {
		t.Error("tapping an hour did not move on to minutes")
	}

	frame()
	tap()
	if want := (dial.Clock{Hour: 3, Minute: 15}); d.Clock != want {
		t.Errorf("tapping minute label 3 gave %v, want %v", d.Clock, want)
	}
}
