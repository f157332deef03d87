// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"testing"
	"time"

	"gioui.org/layout"
	"gioui.org/op"
)

func TestFormat(t *testing.T) {
	for _, tc := range []struct {
		v                 float64
		integer, fraction int
		want              string
	}{
		{1, 2, 3, "01.000"},
		{123.4567, 2, 3, "23.457"},
		{-3.5, 2, 1, "-03.5"},
		{7, 0, 0, "7"},
		{0.25, 1, 2, "0.25"},
	} {
		if got := Format(tc.v, tc.integer, tc.fraction); got != tc.want {
			t.Errorf("Format(%v, %d, %d) = %q, want %q", tc.v, tc.integer, tc.fraction, got, tc.want)
		}
	}
}

func TestTickerColumns(t *testing.T) {
	tk := NewTicker()
	tk.Value = 12.5
	now := time.Unix(50, 0)
	gtx := layout.Context{Ops: new(op.Ops), Now: now}
	tk.Update(gtx)
	gtx.Now = now.Add(time.Second)
	cols := tk.Update(gtx)
	if len(cols) != 6 {
		t.Fatalf("got %d columns, want 6", len(cols))
	}
	want := "12.500"
	for i, c := range cols {
		if c.Rune != rune(want[i]) {
			t.Errorf("column %d shows %q, want %q", i, c.Rune, want[i])
		}
		if c.Digit && c.Position != float64(want[i]-'0') {
			t.Errorf("column %d at %v, want %c", i, c.Position, want[i])
		}
	}
	if cols[2].Digit {
		t.Error("decimal point rolls")
	}

	tk.Value = 13.5
	gtx.Now = now.Add(2 * time.Second)
	cols = tk.Update(gtx)
	if cols[1].Position != 2 {
		t.Errorf("column started at %v, want 2", cols[1].Position)
	}
	gtx.Now = gtx.Now.Add(100 * time.Millisecond)
	cols = tk.Update(gtx)
	if p := cols[1].Position; p <= 2 || p >= 3 {
		t.Errorf("rolling column at %v, want between 2 and 3", p)
	}
}

func TestAngleTransition(t *testing.T) {
	now := time.Unix(0, 0)
	gtx := layout.Context{Ops: new(op.Ops), Now: now}
	var a AngleTransition
	if got := a.Angle(gtx, 45); got != 45 {
		t.Fatalf("initial angle = %v, want 45", got)
	}
	if got := a.Angle(gtx, 90); got != 45 {
		t.Errorf("angle jumped to %v", got)
	}
	gtx.Now = now.Add(time.Second)
	if got := a.Angle(gtx, 90); got != 90 {
		t.Errorf("settled angle = %v, want 90", got)
	}
}
