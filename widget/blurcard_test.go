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
	"gioui.org/op/clip"
)

func layoutBlurCard(gtx layout.Context, c *BlurCard) Tilt {
	t := c.Update(gtx)
	defer clip.Rect{Max: image.Pt(200, 200)}.Push(gtx.Ops).Pop()
	c.Add(gtx.Ops)
	return t
}

func TestBlurCardTurn(t *testing.T) {
	var (
		r input.Router
		c BlurCard
	)
	t0 := time.Unix(0, 0)
	gtx := layout.Context{Ops: new(op.Ops), Source: r.Source(), Now: t0}
	layoutBlurCard(gtx, &c)
	r.Frame(gtx.Ops)
	r.Queue(pointerEvents(
		[]pointer.Kind{pointer.Press, pointer.Move},
		f32.Pt(50, 50), f32.Pt(110, 30),
	)...)
	tilt := c.Update(gtx)
	if !c.Dragging() {
		t.Fatal("card not dragging")
	}
	if tilt.Turn != 60 || tilt.Roll != 2 {
		t.Errorf("tilt = %+v, want turn 60 and roll 2", tilt)
	}
	r.Queue(pointerEvents([]pointer.Kind{pointer.Release}, f32.Pt(110, 30))...)
	if tilt := c.Update(gtx); tilt.Turn != 60 {
		t.Errorf("turn jumped to %v on release", tilt.Turn)
	}
	gtx.Now = t0.Add(100 * time.Millisecond)
	if tilt := c.Update(gtx); tilt.Turn <= 0 || tilt.Turn >= 60 {
		t.Errorf("turn = %v while springing back", tilt.Turn)
	}
	gtx.Now = t0.Add(time.Second)
	if tilt := c.Update(gtx); tilt.Turn != 0 || tilt.Roll != 0 {
		t.Errorf("card did not settle: %+v", tilt)
	}
	if tilt.Scale != 1 {
		t.Errorf("drag changed the scale to %v", tilt.Scale)
	}
}

func TestBlurCardTap(t *testing.T) {
	var (
		r input.Router
		c BlurCard
	)
	t0 := time.Unix(0, 0)
	gtx := layout.Context{Ops: new(op.Ops), Source: r.Source(), Now: t0}
	layoutBlurCard(gtx, &c)
	r.Frame(gtx.Ops)
	r.Queue(pointerEvents(
		[]pointer.Kind{pointer.Press, pointer.Release},
		f32.Pt(50, 50), f32.Pt(50, 50),
	)...)
	c.Update(gtx)
	gtx.Now = t0.Add(150 * time.Millisecond)
	if tilt := c.Update(gtx); tilt.Scale < 1.04 {
		t.Errorf("tapped card scale = %v", tilt.Scale)
	}
	gtx.Now = t0.Add(time.Second)
	if tilt := c.Update(gtx); tilt.Scale != 1 {
		t.Errorf("card did not bounce back: scale %v", tilt.Scale)
	}
}

func TestTiltBack(t *testing.T) {
	tests := []struct {
		turn float64
		back bool
	}{
		{0, false},
		{60, false},
		{89, false},
		{100, true},
		{-100, true},
		{269, true},
		{270, false},
		{460, true},
	}
	for _, test := range tests {
		if got := (Tilt{Turn: test.turn}).Back(); got != test.back {
			t.Errorf("Back(%v) = %v, want %v", test.turn, got, test.back)
		}
	}
}
