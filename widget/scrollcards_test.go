// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"
	"math"
	"testing"
	"time"

	"gioui.org/f32"
	"gioui.org/io/input"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
)

func TestScrollCardFrame(t *testing.T) {
	f := ScrollCardFrame(-50, CardStandard)
	if f.Offset != 50 || f.Height != 225 || !f.Full {
		t.Errorf("collapsing frame = %+v", f)
	}
	if want := 1 / (50.0/3500 + 1); math.Abs(f.Scale-want) > 1e-12 {
		t.Errorf("Scale = %v, want %v", f.Scale, want)
	}
	if math.Abs(f.Alpha-0.8*f.Scale) > 1e-12 {
		t.Errorf("Alpha = %v", f.Alpha)
	}
	f = ScrollCardFrame(-200, CardStandard)
	if f.Full {
		t.Error("card more than half way out still shows all content")
	}
	f = ScrollCardFrame(-300, CardStandard)
	if f.Height != CardCollapsed || f.Offset != 0 {
		t.Errorf("card past the top = %+v", f)
	}
	f = ScrollCardFrame(100, CardSmall)
	if f.Scale <= 1 || f.Scale > 1.05 || f.Alpha != 1 {
		t.Errorf("card below the top = %+v", f)
	}
	if f := ScrollCardFrame(2000, CardFull); f.Scale != 1 || f.Height != CardFull {
		t.Errorf("far card = %+v", f)
	}
}

func TestScrollCardsWheel(t *testing.T) {
	var r input.Router
	s := ScrollCards{Heights: []float64{CardStandard, CardSmall, CardFull}}
	if got := s.MaxOffset(); got != 420 {
		t.Fatalf("MaxOffset = %v, want 420", got)
	}
	gtx := layout.Context{Ops: new(op.Ops), Source: r.Source(), Now: time.Unix(0, 0)}
	scroll := func(dy float32) []CardFrame {
		gtx.Ops.Reset()
		s.Update(gtx)
		area := clip.Rect{Max: image.Pt(300, 600)}.Push(gtx.Ops)
		s.Add(gtx.Ops)
		area.Pop()
		r.Frame(gtx.Ops)
		r.Queue(pointer.Event{
			Kind:     pointer.Scroll,
			Source:   pointer.Mouse,
			Position: f32.Pt(100, 100),
			Scroll:   f32.Pt(0, dy),
		})
		return s.Update(gtx)
	}
	frames := scroll(50)
	if s.Offset != 50 {
		t.Fatalf("Offset = %v, want 50", s.Offset)
	}
	if len(frames) != 3 || frames[0].Offset != 50 || frames[1].Top != 235 {
		t.Errorf("frames = %+v", frames)
	}
	scroll(1000)
	if s.Offset != 420 {
		t.Errorf("Offset = %v, want the last card at the top", s.Offset)
	}
	scroll(-2000)
	if s.Offset != 0 {
		t.Errorf("Offset = %v after scrolling back", s.Offset)
	}
}
