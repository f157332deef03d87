// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image/color"
	"math/rand/v2"
	"time"

	"gioui.org/gesture"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"

	"github.com/cactuskit/cactus/motion"
)

// holdSpeed scales blob durations while the background is held.
const holdSpeed = 0.3

// BlurPalette is the default set of blob colors.
var BlurPalette = []color.NRGBA{
	{R: 176, G: 158, B: 153, A: 255},
	{R: 255, G: 233, B: 225, A: 255},
	{R: 250, G: 212, B: 192, A: 255},
	{R: 100, G: 182, B: 172, A: 255},
	{R: 192, G: 253, B: 251, A: 255},
	{R: 255, A: 178},
}

// Blob is a soft disc wandering across a LoadingBlur.
type Blob struct {
	// Radius in dp.
	Radius float64
	// Duration of one move while not held.
	Duration time.Duration

	x, y, alpha motion.Tween
}

// Position returns the blob center at now, in units of the area size.
func (b *Blob) Position(now time.Time) (x, y float64) {
	return b.x.Value(now), b.y.Value(now)
}

// Alpha returns the blob opacity at now.
func (b *Blob) Alpha(now time.Time) float64 {
	return b.alpha.Value(now)
}

// LoadingBlur is an animated background of colored blobs drifting to
// random positions. Holding the background speeds them up.
type LoadingBlur struct {
	// Blobs are created on first use.
	Blobs []Blob
	// Colors are cycled through by the blobs.
	Colors []color.NRGBA
	// Seed seeds the random placement.
	Seed uint64

	rng     *rand.Rand
	hold    gesture.Drag
	holding bool
}

// Holding reports whether the background is held.
func (l *LoadingBlur) Holding() bool {
	return l.holding
}

// Scramble replaces the colors with random ones.
func (l *LoadingBlur) Scramble() {
	l.init()
	for i := range l.Colors {
		l.Colors[i] = color.NRGBA{R: uint8(l.rng.UintN(256)), G: uint8(l.rng.UintN(256)), B: uint8(l.rng.UintN(256)), A: 255}
	}
}

// Reset restores the default colors.
func (l *LoadingBlur) Reset() {
	l.Colors = append(l.Colors[:0], BlurPalette...)
}

// Color returns the color of blob i.
func (l *LoadingBlur) Color(i int) color.NRGBA {
	if len(l.Colors) == 0 {
		return color.NRGBA{}
	}
	return l.Colors[i%len(l.Colors)]
}

func (l *LoadingBlur) init() {
	if l.rng == nil {
		l.rng = rand.New(rand.NewPCG(l.Seed, l.Seed^0x2545f4914f6cdd1d))
	}
	if l.Colors == nil {
		l.Reset()
	}
	if l.Blobs != nil {
		return
	}
	l.Blobs = make([]Blob, 16)
	for i := range l.Blobs {
		b := &l.Blobs[i]
		b.Radius = 100 + l.rng.Float64()*250
		b.Duration = time.Duration((3 + l.rng.Float64()*4) * float64(time.Second))
		b.x.Set(l.rng.Float64())
		b.y.Set(l.rng.Float64())
		b.alpha.Set(1)
	}
}

// Update processes events and moves every blob that reached its target
// towards a new one.
func (l *LoadingBlur) Update(gtx layout.Context) {
	l.init()
	for {
		e, ok := l.hold.Update(gtx.Metric, gtx.Source, gesture.Both)
		if !ok {
			break
		}
		switch e.Kind {
		case pointer.Press:
			l.holding = true
		case pointer.Release, pointer.Cancel:
			l.holding = false
		}
	}
	for i := range l.Blobs {
		b := &l.Blobs[i]
		if b.x.Running(gtx.Now) {
			continue
		}
		d := b.Duration
		if l.holding {
			d = time.Duration(float64(d) * holdSpeed)
		}
		for _, t := range []*motion.Tween{&b.x, &b.y, &b.alpha} {
			t.Duration = d
		}
		b.x.Animate(gtx.Now, l.rng.Float64())
		b.y.Animate(gtx.Now, l.rng.Float64())
		b.alpha.Animate(gtx.Now, 0.1+l.rng.Float64()*0.9)
	}
	gtx.Execute(op.InvalidateCmd{})
}

// Add registers the hold area. Clip the area before calling Add.
func (l *LoadingBlur) Add(ops *op.Ops) {
	l.hold.Add(ops)
}
