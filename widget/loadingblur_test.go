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

func TestLoadingBlur(t *testing.T) {
	now := time.Unix(0, 0)
	gtx := layout.Context{Ops: new(op.Ops), Now: now}
	a, b := LoadingBlur{Seed: 3}, LoadingBlur{Seed: 3}
	a.Update(gtx)
	b.Update(gtx)
	if len(a.Blobs) != 16 {
		t.Fatalf("%d blobs, want 16", len(a.Blobs))
	}
	for i := range a.Blobs {
		bl := &a.Blobs[i]
		if bl.Radius < 100 || bl.Radius > 350 {
			t.Errorf("blob %d radius %v", i, bl.Radius)
		}
		if bl.Duration < 3*time.Second || bl.Duration > 7*time.Second {
			t.Errorf("blob %d duration %v", i, bl.Duration)
		}
		if a := bl.alpha.Target(); a < 0.1 || a > 1 {
			t.Errorf("blob %d opacity target %v", i, a)
		}
		if !bl.x.Running(now) {
			t.Errorf("blob %d is not moving", i)
		}
		if bl.x.Target() != b.Blobs[i].x.Target() {
			t.Errorf("blob %d differs between equal seeds", i)
		}
	}
	end := now.Add(a.Blobs[0].Duration)
	if x, _ := a.Blobs[0].Position(end); x != a.Blobs[0].x.Target() {
		t.Errorf("blob ended at %v, want %v", x, a.Blobs[0].x.Target())
	}
	if a.Color(6) != BlurPalette[0] {
		t.Errorf("Color(6) = %v", a.Color(6))
	}
	a.Scramble()
	a.Reset()
	for i, c := range BlurPalette {
		if a.Colors[i] != c {
			t.Fatalf("Reset left color %d at %v", i, a.Colors[i])
		}
	}
}

func TestLoadingBlurHold(t *testing.T) {
	var (
		r input.Router
		l LoadingBlur
	)
	gtx := layout.Context{Ops: new(op.Ops), Source: r.Source(), Now: time.Unix(0, 0)}
	l.Update(gtx)
	area := clip.Rect{Max: image.Pt(400, 400)}.Push(gtx.Ops)
	l.Add(gtx.Ops)
	area.Pop()
	r.Frame(gtx.Ops)
	r.Queue(pointerEvents([]pointer.Kind{pointer.Press}, f32.Pt(10, 10))...)
	gtx.Now = gtx.Now.Add(8 * time.Second)
	l.Update(gtx)
	if !l.Holding() {
		t.Fatal("press did not hold the background")
	}
	for i := range l.Blobs {
		b := &l.Blobs[i]
		if want := time.Duration(float64(b.Duration) * holdSpeed); b.x.Duration != want {
			t.Errorf("blob %d moves in %v while held, want %v", i, b.x.Duration, want)
		}
	}
	r.Queue(pointerEvents([]pointer.Kind{pointer.Release}, f32.Pt(10, 10))...)
	l.Update(gtx)
	if l.Holding() {
		t.Error("release kept the background held")
	}
}
