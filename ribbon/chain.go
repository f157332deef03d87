// SPDX-License-Identifier: Unlicense OR MIT

package ribbon

// Chain caches the measured bounds of the nodes of a Ribbon and derives
// node offsets from them.
//
// Offsets are pure functions of the cached measurements: reporting the
// same bounds again changes nothing, and Flatten returns the same result
// until a measurement changes.
type Chain struct {
	ribbon   Ribbon
	measured map[int]Bounds
	loaded   int
}

// NewChain returns an empty chain for r.
func NewChain(r Ribbon) *Chain {
	return &Chain{
		ribbon:   r,
		measured: make(map[int]Bounds),
	}
}

// Ribbon returns the chain configuration.
func (c *Chain) Ribbon() Ribbon {
	return c.ribbon
}

// Len returns the number of nodes.
func (c *Chain) Len() int {
	return len(c.ribbon.Nodes)
}

// Reset replaces the configuration and forgets every measurement.
func (c *Chain) Reset(r Ribbon) {
	c.ribbon = r
	c.measured = make(map[int]Bounds)
	c.loaded = 0
}

// Measure returns the projected bounds of the measuring rotation of node i. Hosts
// that measure rendered geometry themselves report their own bounds
// instead.
func (c *Chain) Measure(i int) Bounds {
	if i < 0 || i >= len(c.ribbon.Nodes) || c.ribbon.Degenerate(i) {
		return Bounds{}
	}
	n := c.ribbon.Nodes[i]
	return n.MeasureRotation(c.ribbon.Perspective).Project(n.Width, c.ribbon.Height).Bounds()
}

// Report records the measured bounds of node i. It reports whether the
// visible range grew.
func (c *Chain) Report(i int, b Bounds) bool {
	if i < 0 || i >= len(c.ribbon.Nodes) {
		return false
	}
	_, seen := c.measured[i]
	c.measured[i] = b
	if seen {
		return false
	}
	before := c.Visible()
	c.loaded++
	return c.Visible() > before
}

// Measured reports whether node i has been measured.
func (c *Chain) Measured(i int) bool {
	_, ok := c.measured[i]
	return ok
}

// Loaded returns the number of measured nodes.
func (c *Chain) Loaded() int {
	return c.loaded
}

// Visible returns the number of leading nodes to draw. It never
// decreases until Reset.
func (c *Chain) Visible() int {
	n := len(c.ribbon.Nodes)
	if n == 0 {
		return 0
	}
	if v := c.loaded + 1; v < n {
		return v
	}
	return n
}

// Correction returns the offset contribution of node i, or Identity if
// it has not been measured.
func (c *Chain) Correction(i int) Offset {
	b, ok := c.measured[i]
	if !ok || c.ribbon.Degenerate(i) {
		return Identity
	}
	return Correction(b, c.ribbon.Nodes[i], c.ribbon.Height, c.Flatten(i).Scale)
}

// Flatten returns the offset of node i: the sum of the corrections of
// nodes 0 through i-1, each scaled by the product of the scales before
// it. Node 0 always has the Identity offset.
func (c *Chain) Flatten(i int) Offset {
	off := Identity
	for j := 0; j < i && j < len(c.ribbon.Nodes); j++ {
		b, ok := c.measured[j]
		if !ok || c.ribbon.Degenerate(j) {
			continue
		}
		n := c.ribbon.Nodes[j]
		corr := Correction(b, n, c.ribbon.Height, off.Scale)
		off.DX += corr.DX * off.Scale * n.AlignmentDir()
		off.DY += corr.DY
		off.Scale *= corr.Scale
	}
	return off
}

// Quad returns the on-screen corners of node i at its current offset.
func (c *Chain) Quad(i int) Quad {
	return c.ribbon.Quad(i, c.Flatten(i))
}
