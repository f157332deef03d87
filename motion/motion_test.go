// SPDX-License-Identifier: Unlicense OR MIT

package motion

import (
	"math"
	"testing"
	"time"
)

func TestTween(t *testing.T) {
	now := time.Unix(100, 0)
	tw := Tween{Duration: time.Second, Curve: Linear}
	tw.Set(10)
	if got := tw.Value(now); got != 10 {
		t.Fatalf("Value = %v, want 10", got)
	}
	tw.Animate(now, 20)
	if !tw.Running(now) {
		t.Fatal("tween not running after Animate")
	}
	if got := tw.Value(now.Add(500 * time.Millisecond)); math.Abs(got-15) > 1e-9 {
		t.Errorf("halfway Value = %v, want 15", got)
	}
	if got := tw.Value(now.Add(2 * time.Second)); got != 20 {
		t.Errorf("final Value = %v, want 20", got)
	}
	if tw.Running(now.Add(2 * time.Second)) {
		t.Error("tween still running after its duration")
	}
}

func TestTweenRetarget(t *testing.T) {
	now := time.Unix(0, 0)
	tw := Tween{Duration: time.Second, Curve: Linear}
	tw.Set(0)
	tw.Animate(now, 100)
	mid := now.Add(250 * time.Millisecond)
	tw.Animate(mid, 0)
	if got := tw.Value(mid); math.Abs(got-25) > 1e-9 {
		t.Errorf("retargeted tween jumped to %v, want 25", got)
	}
	if got := tw.Target(); got != 0 {
		t.Errorf("Target = %v, want 0", got)
	}
}

func TestTweenZeroDuration(t *testing.T) {
	var tw Tween
	tw.Animate(time.Now(), 7)
	if got := tw.Value(time.Now()); got != 7 {
		t.Errorf("Value = %v, want 7", got)
	}
}

func TestCurves(t *testing.T) {
	for name, c := range map[string]Curve{"linear": Linear, "easeInOut": EaseInOut, "spring": Spring} {
		if got := c(0); math.Abs(got) > 1e-9 {
			t.Errorf("%s(0) = %v", name, got)
		}
		if got := c(1); math.Abs(got-1) > 1e-9 {
			t.Errorf("%s(1) = %v", name, got)
		}
	}
}

func TestPhase(t *testing.T) {
	now := time.Unix(0, int64(1500*time.Millisecond))
	if got := Phase(now, time.Second); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Phase = %v, want 0.5", got)
	}
}

func TestWave(t *testing.T) {
	w := Wave{Amplitude: 20, Period: 40}
	if got := w.Y(0, 0); got != 0 {
		t.Errorf("Y(0, 0) = %v, want 0", got)
	}
	want := 20 * (math.Sin(1) + 0.8*math.Sin(0.5) + 0.5*math.Sin(1.0/3))
	if got := w.Y(40, 0); math.Abs(got-want) > 1e-9 {
		t.Errorf("Y(40, 0) = %v, want %v", got, want)
	}
	if got := w.Y(40, 1); math.Abs(got-w.Y(40, 0)) < 1e-6 {
		t.Error("shift had no effect")
	}
	if got := (Wave{Amplitude: 1}).Y(3, 1); got != 0 {
		t.Errorf("zero period Y = %v", got)
	}
}
