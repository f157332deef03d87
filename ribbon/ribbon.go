// SPDX-License-Identifier: Unlicense OR MIT

/*
Package ribbon lays out chains of panels rotated in perspective.

Each Node is a panel rotated about a vertical axis at its leading or
trailing edge. Rotating a panel under perspective changes both its
apparent width and, through the skew of its far edge, its apparent
height, so the position of a panel depends on how the previous panel
ended up on screen. The layout is therefore a feedback loop: a panel is
drawn, its projected bounds are measured and reported to a Chain, and
the Chain derives the offset and scale of the next panel.

	chain := ribbon.NewChain(ribbon.Ribbon{Nodes: nodes, Height: 150, Perspective: 0.3})
	for i := 0; i < chain.Visible(); i++ {
		off := chain.Flatten(i)
		// draw node i translated by off and scaled by off.Scale.
		chain.Report(i, chain.Measure(i))
	}

Panels that have not been measured are left out of the visible chain;
the visible range grows as measurements arrive.
*/
package ribbon

// Alignment selects the edge a panel rotates about.
type Alignment uint8

const (
	Leading Alignment = iota
	Trailing
)

func (a Alignment) String() string {
	switch a {
	case Leading:
		return "Leading"
	case Trailing:
		return "Trailing"
	default:
		panic("invalid Alignment")
	}
}

// Node is one panel of a ribbon.
type Node struct {
	// Angle of rotation in degrees.
	Angle float64
	// Width of the panel before rotation.
	Width float64
	// Alignment of the rotation axis.
	Alignment Alignment
	// Perspective controls how far the vertical anchor of the rotation
	// is moved from the panel center, and with it the vertical skew
	// of the panel.
	Perspective float64
}

// PerspectiveDir returns the sign of the node's perspective, or 1 for
// zero perspective.
func (n Node) PerspectiveDir() float64 {
	if n.Perspective < 0 {
		return -1
	}
	return 1
}

// AlignmentDir returns 1 for leading and -1 for trailing nodes.
func (n Node) AlignmentDir() float64 {
	if n.Alignment == Trailing {
		return -1
	}
	return 1
}

// Rotation returns the rotation used to draw the node with the given
// camera perspective.
func (n Node) Rotation(perspective float64) Rotation {
	ax := 0.0
	if n.Alignment == Trailing {
		ax = 1
	}
	return Rotation{
		Angle:       n.AlignmentDir() * n.Angle,
		Anchor:      Point{X: ax, Y: 0.5 - n.Perspective},
		Perspective: perspective,
	}
}

// MeasureRotation returns the rotation whose projected bounds drive the position
// of the node that follows n.
func (n Node) MeasureRotation(perspective float64) Rotation {
	return Rotation{
		Angle:       n.Angle,
		Anchor:      Point{X: 0, Y: 1.5},
		Perspective: perspective,
	}
}

// Offset positions a node relative to the start of the ribbon.
type Offset struct {
	DX, DY float64
	Scale  float64
}

// Identity is the offset of the first node.
var Identity = Offset{Scale: 1}

// Ribbon is the static configuration of a chain of nodes.
type Ribbon struct {
	Nodes []Node
	// Height of every panel before rotation.
	Height float64
	// Perspective is the camera strength, typically 0.3.
	Perspective float64
	// ShadowOpacity darkens every other panel.
	ShadowOpacity float64
}

// Degenerate reports whether node i collapses to nothing. Nodes out of
// range are degenerate.
func (r Ribbon) Degenerate(i int) bool {
	if i < 0 || i >= len(r.Nodes) {
		return true
	}
	return r.Nodes[i].Width <= 0 || r.Height <= 0
}

// Shade returns the shadow opacity of panel i, clamped to [0, 1]. Even
// panels are shaded, odd panels are not.
func (r Ribbon) Shade(i int) float64 {
	if i%2 != 0 {
		return 0
	}
	return min(max(r.ShadowOpacity, 0), 1)
}

// Correction returns the offset contribution of a node measured with
// bounds b, given the accumulated scale of the nodes before it.
//
// The vertical correction is twice the growth of the measured height,
// scaled by the node perspective; the scale shrinks by the same amount.
func Correction(b Bounds, n Node, height, previousScale float64) Offset {
	if b.Empty() || height <= 0 {
		return Identity
	}
	difference := b.Height - height
	scale := (height - difference*2) / height
	if scale < 0 {
		scale = 0
	}
	return Offset{
		DX:    b.Width,
		DY:    -difference * 2 * n.Perspective * previousScale,
		Scale: scale,
	}
}

// Transform places a point of node i, given in panel coordinates before
// rotation, in ribbon coordinates.
func (r Ribbon) Transform(i int, off Offset, p Point) Point {
	n := r.Nodes[i]
	q := n.Rotation(r.Perspective).Point(p, n.Width, r.Height)
	if n.Alignment == Trailing {
		q.X -= n.Width
	}
	// Scale about the leading edge midline.
	mid := r.Height / 2
	q.X *= off.Scale
	q.Y = mid + (q.Y-mid)*off.Scale
	return Point{X: q.X + off.DX, Y: q.Y + off.DY}
}

// Quad returns the on-screen corners of node i drawn with offset off.
func (r Ribbon) Quad(i int, off Offset) Quad {
	n := r.Nodes[i]
	w, h := n.Width, r.Height
	corners := Quad{{0, 0}, {w, 0}, {w, h}, {0, h}}
	for j, c := range corners {
		corners[j] = r.Transform(i, off, c)
	}
	return corners
}
