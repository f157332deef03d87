// SPDX-License-Identifier: Unlicense OR MIT

// Package snapshot renders component geometry to images without a
// window, for documentation and regression checks.
package snapshot

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"math/rand/v2"

	"github.com/gogpu/gg"

	"github.com/cactuskit/cactus/radial"
	"github.com/cactuskit/cactus/ribbon"
	"github.com/cactuskit/cactus/stripe"
)

// Kinds lists the geometry that can be rendered.
var Kinds = []string{"stripes", "radial-lines", "ribbon"}

// Scene holds the parameters of every kind.
type Scene struct {
	Stripes stripe.Spec
	Burst   radial.Burst
	Ribbon  ribbon.Ribbon
}

// Options configure the output image.
type Options struct {
	Width, Height int
	Background    color.NRGBA
	Foreground    color.NRGBA
	// Seed selects the random radial line lengths.
	Seed uint64
}

// DefaultOptions returns a 600×400 image in the gallery colors.
func DefaultOptions() Options {
	return Options{
		Width:      600,
		Height:     400,
		Background: color.NRGBA{R: 255, G: 248, B: 223, A: 255},
		Foreground: color.NRGBA{R: 15, G: 15, B: 15, A: 255},
		Seed:       1,
	}
}

// Render draws the scene geometry named kind.
func Render(kind string, sc Scene, opts Options) (image.Image, error) {
	dc, err := render(kind, sc, opts)
	if err != nil {
		return nil, err
	}
	defer dc.Close()
	return dc.Image(), nil
}

// WritePNG renders kind and encodes it as PNG to w.
func WritePNG(w io.Writer, kind string, sc Scene, opts Options) error {
	dc, err := render(kind, sc, opts)
	if err != nil {
		return err
	}
	defer dc.Close()
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	return nil
}

func render(kind string, sc Scene, opts Options) (*gg.Context, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("snapshot: invalid size %dx%d", opts.Width, opts.Height)
	}
	dc := gg.NewContext(opts.Width, opts.Height)
	dc.ClearWithColor(gg.FromColor(opts.Background))

	var err error
	switch kind {
	case "stripes":
		err = Stripes(dc, sc.Stripes, opts.Foreground)
	case "radial-lines":
		rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))
		err = RadialLines(dc, sc.Burst, rng, opts.Foreground)
	case "ribbon":
		err = Ribbon(dc, sc.Ribbon, opts.Foreground)
	default:
		err = fmt.Errorf("unknown kind %q", kind)
	}
	if err == nil {
		err = dc.FlushGPU()
	}
	if err != nil {
		dc.Close()
		return nil, fmt.Errorf("snapshot: %s: %w", kind, err)
	}
	return dc, nil
}

// Stripes strokes the stripe centerlines covering the context.
func Stripes(dc *gg.Context, spec stripe.Spec, fg color.NRGBA) error {
	spec = spec.Normalized()
	lines := stripe.Lines(spec, stripe.Size{W: float64(dc.Width()), H: float64(dc.Height())})
	if len(lines) == 0 || spec.LineWidth <= 0 {
		return nil
	}
	fg.A = uint8(float64(fg.A)*min(max(spec.Opacity, 0), 1) + 0.5)
	dc.SetColor(fg)
	dc.SetLineWidth(spec.LineWidth)
	for _, l := range lines {
		dc.MoveTo(l.From.X, l.From.Y)
		dc.LineTo(l.To.X, l.To.Y)
	}
	return dc.Stroke()
}

// RadialLines strokes a burst from the center of the context.
func RadialLines(dc *gg.Context, b radial.Burst, rng *rand.Rand, fg color.NRGBA) error {
	segs := b.Segments(radial.Size{W: float64(dc.Width()), H: float64(dc.Height())}, rng)
	if len(segs) == 0 || b.LineWidth <= 0 {
		return nil
	}
	dc.SetColor(fg)
	dc.SetLineWidth(b.LineWidth)
	for _, s := range segs {
		dc.MoveTo(s.From.X, s.From.Y)
		dc.LineTo(s.To.X, s.To.Y)
	}
	return dc.Stroke()
}

// Ribbon measures every node of r, then fills the flattened panel
// quads scaled to fit the context. Later panels are drawn beneath
// earlier ones and odd panels are shaded.
func Ribbon(dc *gg.Context, r ribbon.Ribbon, fg color.NRGBA) error {
	chain := ribbon.NewChain(r)
	for i := 0; i < chain.Len(); i++ {
		chain.Report(i, chain.Measure(i))
	}
	quads := make([]ribbon.Quad, chain.Len())
	var lo, hi ribbon.Point
	first := true
	for i := range quads {
		if r.Degenerate(i) {
			continue
		}
		quads[i] = chain.Quad(i)
		for _, p := range quads[i] {
			if first {
				lo, hi, first = p, p, false
				continue
			}
			lo.X, lo.Y = min(lo.X, p.X), min(lo.Y, p.Y)
			hi.X, hi.Y = max(hi.X, p.X), max(hi.Y, p.Y)
		}
	}
	if first || hi.X <= lo.X || hi.Y <= lo.Y {
		return nil
	}

	const margin = 0.05
	w, h := float64(dc.Width()), float64(dc.Height())
	scale := math.Min(w/(hi.X-lo.X), h/(hi.Y-lo.Y)) * (1 - 2*margin)
	dx := (w - (hi.X-lo.X)*scale) / 2
	dy := (h - (hi.Y-lo.Y)*scale) / 2

	for i := len(quads) - 1; i >= 0; i-- {
		if r.Degenerate(i) {
			continue
		}
		for k, p := range quads[i] {
			x, y := (p.X-lo.X)*scale+dx, (p.Y-lo.Y)*scale+dy
			if k == 0 {
				dc.MoveTo(x, y)
			} else {
				dc.LineTo(x, y)
			}
		}
		dc.ClosePath()
		c := fg
		if shade := r.Shade(i); shade > 0 {
			c.A = uint8(float64(c.A) * (1 - shade*0.5))
		}
		dc.SetColor(c)
		if err := dc.Fill(); err != nil {
			return err
		}
	}
	return nil
}
