// SPDX-License-Identifier: Unlicense OR MIT

package cactus

import (
	"image"
	"image/color"
	"math"
	"testing"
	"time"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/cactuskit/cactus/dial"
	"github.com/cactuskit/cactus/ribbon"
	"github.com/cactuskit/cactus/stripe"
	"github.com/cactuskit/cactus/widget"
)

func TestSliceTransform(t *testing.T) {
	cfg := ribbon.Ribbon{
		Nodes:       []ribbon.Node{{Width: 120, Angle: 30}},
		Height:      80,
		Perspective: 0.3,
	}
	const x0, x1 = 40, 46
	q := [4]ribbon.Point{
		cfg.Transform(0, ribbon.Identity, ribbon.Point{X: x0}),
		cfg.Transform(0, ribbon.Identity, ribbon.Point{X: x1}),
		cfg.Transform(0, ribbon.Identity, ribbon.Point{X: x1, Y: 80}),
		cfg.Transform(0, ribbon.Identity, ribbon.Point{X: x0, Y: 80}),
	}
	tr := sliceTransform(q, x0, x1, 80)
	for _, tc := range []struct {
		in   f32.Point
		want ribbon.Point
	}{
		{f32.Pt(x0, 0), q[0]},
		{f32.Pt(x1, 0), q[1]},
		{f32.Pt(x0, 80), q[3]},
	} {
		got := tr.Transform(tc.in)
		if math.Abs(float64(got.X)-tc.want.X) > 1e-3 || math.Abs(float64(got.Y)-tc.want.Y) > 1e-3 {
			t.Errorf("transform of %v = %v, want %v", tc.in, got, tc.want)
		}
	}
	// The remaining corner is approximated.
	got := tr.Transform(f32.Pt(x1, 80))
	if d := math.Hypot(float64(got.X)-q[2].X, float64(got.Y)-q[2].Y); d > 1 {
		t.Errorf("bottom right corner off by %v", d)
	}
	if got := sliceTransform(q, x1, x0, 80); got != (f32.Affine2D{}) {
		t.Errorf("empty slice gave %v", got)
	}
}

func TestTicketOutline(t *testing.T) {
	size := f32.Pt(300, 200)
	pts := ticketOutline(size, 20, 20, 0.75)
	deepest := size.X
	for _, p := range pts {
		if p.X < -1e-3 || p.X > size.X+1e-3 || p.Y < -1e-3 || p.Y > size.Y+1e-3 {
			t.Fatalf("point %v outside the ticket", p)
		}
		if p.X > size.X/2 && math.Abs(float64(p.Y)-150) < 20 {
			deepest = min(deepest, p.X)
		}
	}
	if math.Abs(float64(deepest)-280) > 0.5 {
		t.Errorf("right notch reaches x=%v, want 280", deepest)
	}
	for _, p := range []f32.Point{{X: 0, Y: 0}, {X: 300, Y: 0}, {X: 300, Y: 200}, {X: 0, Y: 200}} {
		for _, q := range pts {
			if q == p {
				t.Errorf("corner %v is not cut", p)
			}
		}
	}
}

func TestScaleRibbon(t *testing.T) {
	cfg := ribbon.Ribbon{Nodes: []ribbon.Node{{Width: 10}, {Width: 20}}, Height: 5}
	got := scaleRibbon(cfg, 2)
	if got.Height != 10 || got.Nodes[0].Width != 20 || got.Nodes[1].Width != 40 {
		t.Errorf("scaleRibbon = %+v", got)
	}
	if cfg.Nodes[0].Width != 10 {
		t.Error("scaleRibbon modified its input")
	}
}

func TestWithAlpha(t *testing.T) {
	th := NewTheme()
	if got := withAlpha(th.Fg, 0.5).A; got != 128 {
		t.Errorf("alpha = %d, want 128", got)
	}
	if got := withAlpha(th.Fg, 3).A; got != 255 {
		t.Errorf("alpha = %d, want 255", got)
	}
}

// TestStylesLayout draws every style once.
func TestStylesLayout(t *testing.T) {
	th := NewTheme()
	gtx := layout.Context{
		Ops:         new(op.Ops),
		Now:         time.Unix(0, 0),
		Metric:      unit.Metric{PxPerDp: 1, PxPerSp: 1},
		Constraints: layout.Exact(image.Pt(400, 600)),
	}
	spec := stripe.Spec{Angle: 45, LineWidth: 5, Spacing: 5, Opacity: 1}
	var (
		rib    widget.Ribbon
		menu   widget.ContextMenu
		car    widget.Carousel
		modal  widget.SlidingModal
		ticker = widget.NewTicker()
		td     = widget.NewTimeDial(dial.Clock{Hour: 10, Minute: 30})
		card   widget.BlurCard
		list   = widget.ScrollCards{Heights: []float64{widget.CardStandard, widget.CardSmall, widget.CardFull}}
		blur   = widget.LoadingBlur{Seed: 1}
	)
	cfg := ribbon.Ribbon{
		Nodes:       []ribbon.Node{{Width: 150, Angle: 10}, {Width: 200, Angle: 30, Alignment: ribbon.Trailing}},
		Height:      120,
		Perspective: 0.3,
	}
	panel := func(gtx layout.Context, i int) layout.Dimensions {
		return StripedFill(th, spec).Layout(gtx)
	}
	for name, w := range map[string]layout.Widget{
		"stripes": StripedFill(th, spec).Layout,
		"masked": func(gtx layout.Context) layout.Dimensions {
			return MaskedStripes(spec).Layout(gtx, RadialGlow().Layout)
		},
		"ribbon": func(gtx layout.Context) layout.Dimensions {
			return Ribbon(th, &rib, cfg).Layout(gtx, panel)
		},
		"menu": ContextMenu(th, &menu, MenuItem{Label: "a"}, MenuItem{Label: "b"}, MenuItem{Label: "c"}).Layout,
		"timedial": TimeDial(th, td).Layout,
		"lines":    RadialLines(th).Layout,
		"glow":     RadialGlow().Layout,
		"wave":     LoadingWave(th).Layout,
		"carousel": func(gtx layout.Context) layout.Dimensions {
			return Carousel(th, &car, 4).Layout(gtx, panel)
		},
		"modal": func(gtx layout.Context) layout.Dimensions {
			return SlidingModal(th, &modal, nil).Layout(gtx, layout.Spacer{}.Layout, layout.Spacer{}.Layout)
		},
		"ticker": Ticker(th, ticker).Layout,
		"cast": func(gtx layout.Context) layout.Dimensions {
			return CastShadow(th).Layout(gtx, func(gtx layout.Context, col color.NRGBA) layout.Dimensions {
				l := material.H3(th.Theme, "Cactus")
				l.Color = col
				return l.Layout(gtx)
			})
		},
		"interior": InteriorGlow(th).Layout,
		"halo":     TextHalo(th, "CACTUS HALO ").Layout,
		"blurcard": func(gtx layout.Context) layout.Dimensions {
			return BlurCard(th, &card).Layout(gtx, layout.Spacer{}.Layout)
		},
		"scrollcards": func(gtx layout.Context) layout.Dimensions {
			return ScrollCards(th, &list).Layout(gtx, func(gtx layout.Context, i int, full bool) layout.Dimensions {
				return layout.Dimensions{Size: gtx.Constraints.Min}
			})
		},
		"loadingblur": LoadingBlur(th, &blur).Layout,
		"ticket": func(gtx layout.Context) layout.Dimensions {
			return Ticket(th).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return layout.Dimensions{Size: image.Pt(300, 200)}
			})
		},
	} {
		gtx.Ops.Reset()
		dims := w(gtx)
		if dims.Size.X <= 0 || dims.Size.Y <= 0 {
			t.Errorf("%s: empty dimensions %v", name, dims.Size)
		}
	}
}

func TestCastShadowLayers(t *testing.T) {
	th := NewTheme()
	gtx := layout.Context{
		Ops:         new(op.Ops),
		Metric:      unit.Metric{PxPerDp: 2},
		Constraints: layout.Exact(image.Pt(400, 400)),
	}
	var cols []color.NRGBA
	CastShadow(th).Layout(gtx, func(gtx layout.Context, col color.NRGBA) layout.Dimensions {
		cols = append(cols, col)
		return layout.Dimensions{Size: image.Pt(10, 10)}
	})
	if len(cols) < 2 {
		t.Fatalf("content drawn %d times", len(cols))
	}
	if last := cols[len(cols)-1]; last != th.Fg {
		t.Errorf("content drawn in %v, want the foreground", last)
	}
	for i, c := range cols {
		if c.A == 0 {
			t.Errorf("copy %d is transparent", i)
		}
	}
}
