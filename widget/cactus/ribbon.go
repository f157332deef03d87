// SPDX-License-Identifier: Unlicense OR MIT

package cactus

import (
	"image"
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"

	"github.com/cactuskit/cactus/ribbon"
	"github.com/cactuskit/cactus/widget"
)

// sliceWidth is the approximate width in pixels of the vertical strips
// a panel is drawn in. Each strip is drawn with an affine transform, so
// narrower strips follow the perspective more closely.
const sliceWidth = 6

// RibbonStyle draws a chain of perspective panels.
type RibbonStyle struct {
	State *widget.Ribbon
	// Ribbon configuration. Widths and height are in dp.
	Ribbon     ribbon.Ribbon
	Background color.NRGBA
	Shadow     color.NRGBA
}

// Ribbon returns a ribbon style for cfg.
func Ribbon(th *Theme, state *widget.Ribbon, cfg ribbon.Ribbon) RibbonStyle {
	return RibbonStyle{
		State:      state,
		Ribbon:     cfg,
		Background: th.Surface,
		Shadow:     th.Shadow,
	}
}

// Layout draws the visible panels with node drawing the content of each
// panel. Later panels are drawn beneath earlier ones.
func (r RibbonStyle) Layout(gtx layout.Context, node func(gtx layout.Context, i int) layout.Dimensions) layout.Dimensions {
	cfg := scaleRibbon(r.Ribbon, float64(pxPerDp(gtx)))
	n := r.State.Update(gtx, cfg)
	if n == 0 {
		return layout.Dimensions{Size: gtx.Constraints.Min}
	}
	chain := r.State.Chain()
	lo, hi := r.State.Bounds(n)
	defer op.Affine(f32.Affine2D{}.Offset(f32.Pt(float32(-lo.X), float32(-lo.Y)))).Push(gtx.Ops).Pop()
	for i := n - 1; i >= 0; i-- {
		if cfg.Degenerate(i) {
			continue
		}
		r.layoutPanel(gtx, cfg, i, chain.Flatten(i), node)
	}
	size := image.Pt(int(math.Ceil(hi.X-lo.X)), int(math.Ceil(hi.Y-lo.Y)))
	return layout.Dimensions{Size: gtx.Constraints.Constrain(size)}
}

func (r RibbonStyle) layoutPanel(gtx layout.Context, cfg ribbon.Ribbon, i int, off ribbon.Offset, node func(gtx layout.Context, i int) layout.Dimensions) {
	w, h := cfg.Nodes[i].Width, cfg.Height
	macro := op.Record(gtx.Ops)
	cgtx := gtx
	cgtx.Constraints = layout.Exact(image.Pt(int(w), int(h)))
	paint.FillShape(cgtx.Ops, r.Background, clip.Rect{Max: cgtx.Constraints.Max}.Op())
	if node != nil {
		node(cgtx, i)
	}
	call := macro.Stop()

	shade := cfg.Shade(i)
	slices := max(int(math.Ceil(w/sliceWidth)), 1)
	for k := 0; k < slices; k++ {
		x0 := w * float64(k) / float64(slices)
		x1 := w * float64(k+1) / float64(slices)
		q := [4]ribbon.Point{
			cfg.Transform(i, off, ribbon.Point{X: x0}),
			cfg.Transform(i, off, ribbon.Point{X: x1}),
			cfg.Transform(i, off, ribbon.Point{X: x1, Y: h}),
			cfg.Transform(i, off, ribbon.Point{X: x0, Y: h}),
		}
		area := clip.Outline{Path: quadPath(gtx.Ops, q)}.Op().Push(gtx.Ops)
		t := op.Affine(sliceTransform(q, x0, x1, h)).Push(gtx.Ops)
		call.Add(gtx.Ops)
		t.Pop()
		if shade > 0 {
			paint.Fill(gtx.Ops, withAlpha(r.Shadow, shade))
		}
		area.Pop()
	}
}

// sliceTransform returns the affine transform mapping the vertical strip
// [x0, x1]×[0, h] of a panel onto the projected quad q, exact at the top
// corners and the bottom left corner.
func sliceTransform(q [4]ribbon.Point, x0, x1, h float64) f32.Affine2D {
	dx := x1 - x0
	if dx <= 0 || h <= 0 {
		return f32.Affine2D{}
	}
	a, b, c := q[0], q[1], q[3]
	sx := (b.X - a.X) / dx
	hy := (b.Y - a.Y) / dx
	hx := (c.X - a.X) / h
	sy := (c.Y - a.Y) / h
	ox := a.X - sx*x0
	oy := a.Y - hy*x0
	return f32.NewAffine2D(float32(sx), float32(hx), float32(ox), float32(hy), float32(sy), float32(oy))
}

func quadPath(ops *op.Ops, q [4]ribbon.Point) clip.PathSpec {
	pts := make([]f32.Point, len(q))
	for i, p := range q {
		pts[i] = f32.Pt(float32(p.X), float32(p.Y))
	}
	return polygon(ops, pts)
}

func scaleRibbon(r ribbon.Ribbon, scale float64) ribbon.Ribbon {
	if scale == 1 {
		return r
	}
	nodes := make([]ribbon.Node, len(r.Nodes))
	for i, n := range r.Nodes {
		n.Width *= scale
		nodes[i] = n
	}
	r.Nodes = nodes
	r.Height *= scale
	return r
}
