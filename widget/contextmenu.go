// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"

	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	giowidget "gioui.org/widget"

	"github.com/cactuskit/cactus/dial"
)

// ContextMenu is a half circle menu. An item is chosen either by
// tapping it or by dragging from the press point towards it and
// releasing.
type ContextMenu struct {
	// Gesture resolves the drag path. Items is set by Layout.
	Gesture dial.Gesture

	items  []giowidget.Clickable
	chosen []int
}

// Item returns the tap target of item i.
func (m *ContextMenu) Item(i int) *giowidget.Clickable {
	if len(m.items) <= i {
		m.items = append(m.items, make([]giowidget.Clickable, i+1-len(m.items))...)
	}
	return &m.items[i]
}

// Selection returns the item under the drag, if any.
func (m *ContextMenu) Selection() dial.Selection {
	return m.Gesture.Selection()
}

// Update processes events and returns the next chosen item.
func (m *ContextMenu) Update(gtx layout.Context) (int, bool) {
	m.update(gtx)
	if len(m.chosen) == 0 {
		return dial.None, false
	}
	i := m.chosen[0]
	m.chosen = m.chosen[1:]
	return i, true
}

func (m *ContextMenu) update(gtx layout.Context) {
	for i := range m.items {
		if m.items[i].Clicked(gtx) && m.Gesture.Phase() != dial.Dragging {
			m.chosen = append(m.chosen, i)
		}
	}
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: m,
			Kinds:  pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel,
		})
		if !ok {
			break
		}
		e, ok := ev.(pointer.Event)
		if !ok {
			continue
		}
		p := dial.Point{X: float64(e.Position.X), Y: float64(e.Position.Y)}
		switch e.Kind {
		case pointer.Press:
			m.Gesture.Press(p)
		case pointer.Drag:
			if m.Gesture.Move(p) {
				gtx.Execute(op.InvalidateCmd{})
			}
		case pointer.Release:
			if i, ok := m.Gesture.Release(p, gtx.Now); ok {
				m.chosen = append(m.chosen, i)
			}
		case pointer.Cancel:
			m.Gesture.Cancel()
		}
	}
	if at := m.Gesture.Settle(gtx.Now); !at.IsZero() {
		gtx.Execute(op.InvalidateCmd{At: at})
	}
}

// Layout registers the drag area of a menu of n items with the given
// radius in pixels and lays out the items with w inside it. The area is
// the square enclosing the full circle so that drags below the center
// still resolve; drags that start on an item still reach the menu.
func (m *ContextMenu) Layout(gtx layout.Context, n, radius int, w layout.Widget) layout.Dimensions {
	m.Gesture.Items = n
	m.Gesture.Radius = float64(radius)
	if n > 0 {
		m.Item(n - 1)
	}
	m.items = m.items[:n]
	m.update(gtx)
	size := image.Pt(2*radius, 2*radius)
	defer clip.Rect{Max: size}.Push(gtx.Ops).Pop()
	event.Op(gtx.Ops, m)
	gtx.Constraints = layout.Exact(size)
	if w != nil {
		w(gtx)
	}
	return layout.Dimensions{Size: size}
}
