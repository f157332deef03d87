// SPDX-License-Identifier: Unlicense OR MIT

// Package motion interpolates values over time for animated widgets.
//
// Values are sampled with the frame time of the layout context; a
// running Tween reports the time of the next frame it needs so callers
// can request a redraw.
package motion

import (
	"math"
	"time"
)

// Curve maps linear progress in [0, 1] to eased progress.
type Curve func(t float64) float64

// Linear is the identity curve.
func Linear(t float64) float64 { return t }

// EaseInOut is a cubic ease in and out.
func EaseInOut(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	f := 2*t - 2
	return 0.5*f*f*f + 1
}

// Spring is a damped oscillation that overshoots once before settling.
func Spring(t float64) float64 {
	if t >= 1 {
		return 1
	}
	const damping, freq = 6, 2.2
	return 1 - math.Exp(-damping*t)*math.Cos(freq*math.Pi*t)
}

// Tween animates a value between two endpoints.
type Tween struct {
	// Duration of the animation.
	Duration time.Duration
	// Curve defaults to EaseInOut.
	Curve Curve

	from, to float64
	start    time.Time
	running  bool
}

// Set jumps to v without animating.
func (t *Tween) Set(v float64) {
	t.from, t.to = v, v
	t.running = false
}

// Animate starts an animation from the value at now towards v.
func (t *Tween) Animate(now time.Time, v float64) {
	if v == t.to && (t.running || t.from == v) {
		return
	}
	t.from = t.Value(now)
	t.to = v
	t.start = now
	t.running = t.Duration > 0
	if !t.running {
		t.from = v
	}
}

// Target returns the value the tween is moving towards.
func (t *Tween) Target() float64 {
	return t.to
}

// Value returns the value at now.
func (t *Tween) Value(now time.Time) float64 {
	if !t.running {
		return t.to
	}
	p := t.progress(now)
	if p >= 1 {
		t.running = false
		t.from = t.to
		return t.to
	}
	curve := t.Curve
	if curve == nil {
		curve = EaseInOut
	}
	return t.from + (t.to-t.from)*curve(p)
}

// Running reports whether the tween is animating at now.
func (t *Tween) Running(now time.Time) bool {
	return t.running && t.progress(now) < 1
}

func (t *Tween) progress(now time.Time) float64 {
	if t.Duration <= 0 {
		return 1
	}
	p := float64(now.Sub(t.start)) / float64(t.Duration)
	return math.Max(p, 0)
}

// Phase returns the position in [0, 1) of now within a repeating period.
func Phase(now time.Time, period time.Duration) float64 {
	if period <= 0 {
		return 0
	}
	return float64(now.UnixNano()%int64(period)) / float64(period)
}

// Wave is a sum of three sines of decreasing amplitude and frequency.
type Wave struct {
	// Amplitude of the dominant sine.
	Amplitude float64
	// Period scales the wave horizontally.
	Period float64
}

// Y returns the height of the wave at x when shifted by shift radians.
func (w Wave) Y(x, shift float64) float64 {
	if w.Period == 0 {
		return 0
	}
	h := w.Period
	s1 := math.Sin(x/h - shift)
	s2 := math.Sin(x/(2*h) - shift/5)
	s3 := math.Sin(x/(3*h) - shift/10)
	return w.Amplitude * (s1 + 0.8*s2 + 0.5*s3)
}
