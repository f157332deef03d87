// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"slices"

	"gioui.org/layout"
	"gioui.org/op"

	"github.com/cactuskit/cactus/ribbon"
)

// Ribbon holds the measurement state of a chain of perspective panels.
//
// Each frame measures the nodes that became visible in the previous
// frame. While the visible range grows, Update requests another frame,
// so a ribbon of n nodes settles after at most n frames.
type Ribbon struct {
	chain *ribbon.Chain
}

// Chain returns the measurement cache, or nil before the first Update.
func (r *Ribbon) Chain() *ribbon.Chain {
	return r.chain
}

// Update sets the ribbon configuration, measures the visible nodes and
// returns the number of nodes to draw. Changing the configuration
// discards every measurement.
func (r *Ribbon) Update(gtx layout.Context, cfg ribbon.Ribbon) int {
	switch {
	case r.chain == nil:
		r.chain = ribbon.NewChain(cfg)
	case !sameRibbon(r.chain.Ribbon(), cfg):
		r.chain.Reset(cfg)
	}
	visible := r.chain.Visible()
	grew := false
	for i := 0; i < visible; i++ {
		if r.chain.Measured(i) {
			continue
		}
		if r.chain.Report(i, r.chain.Measure(i)) {
			grew = true
		}
	}
	if grew {
		gtx.Execute(op.InvalidateCmd{})
	}
	return visible
}

// Bounds returns the union of the quads of the first n nodes.
func (r *Ribbon) Bounds(n int) (lo, hi ribbon.Point) {
	if r.chain == nil {
		return
	}
	first := true
	for i := 0; i < n && i < r.chain.Len(); i++ {
		for _, p := range r.chain.Quad(i) {
			if first {
				lo, hi = p, p
				first = false
				continue
			}
			lo.X, lo.Y = min(lo.X, p.X), min(lo.Y, p.Y)
			hi.X, hi.Y = max(hi.X, p.X), max(hi.Y, p.Y)
		}
	}
	return lo, hi
}

func sameRibbon(a, b ribbon.Ribbon) bool {
	return a.Height == b.Height &&
		a.Perspective == b.Perspective &&
		a.ShadowOpacity == b.ShadowOpacity &&
		slices.Equal(a.Nodes, b.Nodes)
}
