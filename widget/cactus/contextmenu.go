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
	"gioui.org/unit"
	giowidget "gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/cactuskit/cactus/dial"
	"github.com/cactuskit/cactus/widget"
)

// MenuItem is an entry of a context menu.
type MenuItem struct {
	Label string
	// Icon replaces the label when set.
	Icon *giowidget.Icon
}

// ContextMenuStyle draws a half circle menu.
type ContextMenuStyle struct {
	Menu  *widget.ContextMenu
	Items []MenuItem
	// Radius of the menu.
	Radius unit.Dp
	// Threshold is the radius of the dead zone around the center.
	Threshold unit.Dp
	// ItemSize is the diameter of an item button.
	ItemSize unit.Dp

	Background color.NRGBA
	Foreground color.NRGBA
	Accent     color.NRGBA

	th *Theme
}

// ContextMenu returns a menu of items.
func ContextMenu(th *Theme, menu *widget.ContextMenu, items ...MenuItem) ContextMenuStyle {
	return ContextMenuStyle{
		Menu:       menu,
		Items:      items,
		Radius:     120,
		Threshold:  30,
		ItemSize:   44,
		Background: th.Surface,
		Foreground: th.Fg,
		Accent:     th.Accent,
		th:         th,
	}
}

// Layout draws the menu. Item 0 is on the right end of the half circle.
func (m ContextMenuStyle) Layout(gtx layout.Context) layout.Dimensions {
	radius := gtx.Dp(m.Radius)
	m.Menu.Gesture.Threshold = float64(gtx.Dp(m.Threshold))
	dims := m.Menu.Layout(gtx, len(m.Items), radius, func(gtx layout.Context) layout.Dimensions {
		c := f32.Pt(float32(radius), float32(radius))
		paint.FillShape(gtx.Ops, m.Background, clip.Outline{Path: halfDisc(gtx.Ops, c, float32(radius))}.Op())
		paint.FillShape(gtx.Ops, withAlpha(m.Foreground, 0.08), clip.Outline{Path: circle(gtx.Ops, c, float32(m.Menu.Gesture.Threshold))}.Op())
		sel := m.Menu.Selection()
		if sel.Selected() {
			m.layoutPointer(gtx, c, float32(radius), sel)
		}
		for i := range m.Items {
			m.layoutItem(gtx, i, c, float32(radius), sel.Index == i)
		}
		return layout.Dimensions{Size: gtx.Constraints.Min}
	})
	// Only the upper half is drawn.
	dims.Size.Y = radius
	return dims
}

func (m ContextMenuStyle) layoutPointer(gtx layout.Context, c f32.Point, radius float32, sel dial.Selection) {
	sin, cos := math.Sincos(sel.Angle)
	tip := c.Add(f32.Pt(float32(cos), -float32(sin)).Mul(radius * 0.9))
	var p clip.Path
	p.Begin(gtx.Ops)
	p.MoveTo(c)
	p.LineTo(tip)
	paint.FillShape(gtx.Ops, m.Accent, clip.Stroke{Path: p.End(), Width: float32(gtx.Dp(2))}.Op())
}

func (m ContextMenuStyle) layoutItem(gtx layout.Context, i int, c f32.Point, radius float32, selected bool) {
	n := len(m.Items)
	size := gtx.Dp(m.ItemSize)
	sin, cos := math.Sincos(dial.ItemAngle(i, n))
	center := c.Add(f32.Pt(float32(cos), -float32(sin)).Mul(radius - float32(size)*0.75))
	corner := image.Pt(int(center.X)-size/2, int(center.Y)-size/2)
	defer op.Offset(corner).Push(gtx.Ops).Pop()
	gtx.Constraints = layout.Exact(image.Pt(size, size))
	m.Menu.Item(i).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		fg := m.Foreground
		if selected || m.Menu.Item(i).Hovered() {
			fg = m.th.ContrastFg
			d := float32(size) / 2
			paint.FillShape(gtx.Ops, m.Accent, clip.Outline{Path: circle(gtx.Ops, f32.Pt(d, d), d)}.Op())
		}
		it := m.Items[i]
		if it.Icon != nil {
			return layout.UniformInset(unit.Dp(10)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return it.Icon.Layout(gtx, fg)
			})
		}
		return layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			l := material.Caption(m.th.Theme, it.Label)
			l.Color = fg
			return l.Layout(gtx)
		})
	})
}

// halfDisc returns the upper half of a disc.
func halfDisc(ops *op.Ops, c f32.Point, r float32) clip.PathSpec {
	var p clip.Path
	p.Begin(ops)
	p.MoveTo(c.Add(f32.Pt(-r, 0)))
	arcTo(&p, c, r, math.Pi, 2*math.Pi)
	p.Close()
	return p.End()
}
