// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"math"
	"time"

	"gioui.org/gesture"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"

	"github.com/cactuskit/cactus/motion"
)

// Peek is the resting state of a SlidingModal.
type Peek uint8

const (
	// Minimized shows only the peek strip.
	Minimized Peek = iota
	// Mid shows the back sheet at the dragged height.
	Mid
	// Full covers the whole area with the back sheet.
	Full
)

func (p Peek) String() string {
	switch p {
	case Minimized:
		return "Minimized"
	case Mid:
		return "Mid"
	case Full:
		return "Full"
	default:
		panic("invalid Peek")
	}
}

// Sliding modal dimensions.
const (
	// ModalMinCover is the part of the front sheet that stays visible
	// in the Mid state.
	ModalMinCover = 275
	// ModalPeek is the height of the minimized back sheet.
	ModalPeek = 75
	// ModalHandle is the height of the drag handle.
	ModalHandle = 30

	modalMinimize  = 10
	modalFullCover = 140
	modalDismiss   = 40
	modalVelocity  = 14
)

// Impact is the feedback produced by a sliding modal update. Hosts
// forward it to a haptic engine, if any.
type Impact struct {
	// Soft is the intensity of a soft impact in [0, ∞) while the sheet
	// is pulled past its maximum height, or zero.
	Soft float64
	// Rigid is set when the modal snapped to a new resting state.
	Rigid bool
}

// SlidingModal is a back sheet that slides up over a front sheet.
type SlidingModal struct {
	// Peek is the resting state.
	Peek Peek
	// Height of the back sheet.
	Height float64

	drag       gesture.Drag
	start      float32
	last       pointer.Event
	velocity   float32
	dismissing bool
	height     motion.Tween
	drawn      float64
	impact     Impact
}

// Place sets the back sheet height from a drag at vertical position y,
// measured from the top of an area of the given height.
func (m *SlidingModal) Place(y, height float64) Impact {
	if m.Peek == Full {
		return Impact{}
	}
	minimum := float64(ModalPeek)
	maximum := height - ModalMinCover
	proposed := height - math.Abs(y)
	h := math.Min(math.Max(proposed, minimum), maximum)
	var imp Impact
	if proposed > h {
		imp.Soft = (proposed - h) / modalFullCover
	}
	if proposed-h > modalFullCover {
		imp.Rigid = m.Peek != Full
		m.Peek = Full
		m.Height = height
		return imp
	}
	if proposed <= ModalPeek+modalMinimize {
		imp.Rigid = m.Peek != Minimized
		m.Peek = Minimized
		m.Height = ModalPeek
		return imp
	}
	m.Peek = Mid
	m.Height = h
	return imp
}

// Move handles a drag to y that has travelled dy from the press point.
// A drag that starts with the modal fully open dismisses it to Mid once
// it travels 40 units down.
func (m *SlidingModal) Move(y, dy, height float64) Impact {
	if m.Peek == Full {
		m.dismissing = true
	}
	if !m.dismissing {
		return m.Place(y, height)
	}
	if dy > modalDismiss {
		m.Peek = Mid
		return m.Place(y, height)
	}
	return Impact{}
}

// Release ends a drag at y with the given vertical velocity in units per
// second. The velocity carries the sheet further; outside the Full state
// the release never opens the sheet past the Mid state.
func (m *SlidingModal) Release(y, velocity, height float64) Impact {
	m.dismissing = false
	floor := 0.0
	if m.Peek != Full {
		floor = ModalMinCover
	}
	return m.Place(math.Max(y+velocity/modalVelocity, floor), height)
}

// Update processes events for a modal covering an area of the given
// height and returns the animated height of the back sheet. Heights are
// in dp.
func (m *SlidingModal) Update(gtx layout.Context, height float64) float64 {
	scale := pxPerDp(gtx.Metric)
	if m.Height == 0 {
		m.Height = ModalPeek
		m.height.Duration = 300 * time.Millisecond
		m.height.Curve = motion.EaseInOut
		m.height.Set(m.Height)
		m.drawn = m.Height
	}
	for {
		e, ok := m.drag.Update(gtx.Metric, gtx.Source, gesture.Vertical)
		if !ok {
			break
		}
		// Positions are relative to the drag area at the top of the
		// back sheet as drawn in the previous frame.
		y := float64(e.Position.Y)/scale + height - m.drawn
		switch e.Kind {
		case pointer.Press:
			m.start = e.Position.Y
			m.last = e
			m.velocity = 0
		case pointer.Drag:
			if dt := (e.Time - m.last.Time).Seconds(); dt > 0 {
				m.velocity = (e.Position.Y - m.last.Position.Y) / float32(dt)
			}
			m.last = e
			m.impact = m.Move(y, float64(e.Position.Y-m.start)/scale, height)
		case pointer.Release:
			m.impact = m.Release(y, float64(m.velocity)/scale, height)
		case pointer.Cancel:
			m.dismissing = false
		}
	}
	m.height.Animate(gtx.Now, m.Height)
	m.drawn = m.height.Value(gtx.Now)
	if m.height.Running(gtx.Now) {
		gtx.Execute(op.InvalidateCmd{})
	}
	return m.drawn
}

// Impact returns the feedback of the last update and clears it.
func (m *SlidingModal) Impact() Impact {
	imp := m.impact
	m.impact = Impact{}
	return imp
}

// Add registers the drag handle area. Clip the area before calling
// Add.
func (m *SlidingModal) Add(ops *op.Ops) {
	m.drag.Add(ops)
}
