// SPDX-License-Identifier: Unlicense OR MIT

package dial

import (
	"math"
	"time"
)

// Phase is the state of a Gesture.
type Phase uint8

const (
	// Idle waits for a press.
	Idle Phase = iota
	// Dragging tracks the pointer and resolves a selection on every
	// move.
	Dragging
	// Committed shows a confirmed selection until the commit delay
	// has passed.
	Committed
)

const (
	// DefaultMinDistance is the pointer travel that turns a press into
	// a drag.
	DefaultMinDistance = 10
	// DefaultCommitDelay is how long a committed selection stays
	// visible.
	DefaultCommitDelay = 350 * time.Millisecond
)

// Gesture drives the drag path of a radial menu.
//
// A press arms the gesture; moving the pointer further than MinDistance
// starts a drag during which every move is resolved with Resolve. A
// release commits the selection unless the pointer ended inside the dead
// zone.
type Gesture struct {
	// Radius of the control.
	Radius float64
	// Items is the number of selectable items.
	Items int
	// Threshold is the dead zone radius.
	Threshold float64
	// MinDistance overrides DefaultMinDistance when positive.
	MinDistance float64
	// CommitDelay overrides DefaultCommitDelay when positive.
	CommitDelay time.Duration

	phase     Phase
	pressed   bool
	start     Point
	sel       Selection
	committed time.Time
}

// Phase returns the current phase.
func (g *Gesture) Phase() Phase {
	return g.phase
}

// Selection returns the current selection. Outside a drag or commit it
// is empty.
func (g *Gesture) Selection() Selection {
	if g.phase == Idle {
		return Empty(g.Items)
	}
	return g.sel
}

// Pressed reports whether a press is armed or a drag is in progress.
func (g *Gesture) Pressed() bool {
	return g.pressed
}

func (g *Gesture) minDistance() float64 {
	if g.MinDistance > 0 {
		return g.MinDistance
	}
	return DefaultMinDistance
}

func (g *Gesture) commitDelay() time.Duration {
	if g.CommitDelay > 0 {
		return g.CommitDelay
	}
	return DefaultCommitDelay
}

// Press arms the gesture at p. A press during the commit delay ends it
// early.
func (g *Gesture) Press(p Point) {
	g.phase = Idle
	g.pressed = true
	g.start = p
	g.sel = Empty(g.Items)
}

// Move updates the gesture with the pointer at p and reports whether the
// selection changed.
func (g *Gesture) Move(p Point) bool {
	if !g.pressed {
		return false
	}
	if g.phase != Dragging {
		if math.Hypot(p.X-g.start.X, p.Y-g.start.Y) < g.minDistance() {
			return false
		}
		g.phase = Dragging
	}
	prev := g.sel
	g.sel = Resolve(p, g.Radius, g.Items, g.Threshold)
	return prev.Index != g.sel.Index || prev.Angle != g.sel.Angle
}

// Release ends the gesture at time now. It returns the committed index
// and true if the drag ended on an item.
func (g *Gesture) Release(p Point, now time.Time) (int, bool) {
	if !g.pressed {
		return None, false
	}
	g.Move(p)
	g.pressed = false
	if g.phase != Dragging || !g.sel.Selected() {
		g.phase = Idle
		g.sel = Empty(g.Items)
		return None, false
	}
	g.phase = Committed
	g.committed = now
	return g.sel.Index, true
}

// Cancel abandons the gesture without a selection.
func (g *Gesture) Cancel() {
	g.pressed = false
	g.phase = Idle
	g.sel = Empty(g.Items)
}

// Settle returns a committed gesture to Idle once the commit delay has
// passed. It returns the time at which the gesture should be settled
// again, or the zero time when no further update is needed.
func (g *Gesture) Settle(now time.Time) time.Time {
	if g.phase != Committed {
		return time.Time{}
	}
	end := g.committed.Add(g.commitDelay())
	if now.Before(end) {
		return end
	}
	g.phase = Idle
	g.sel = Empty(g.Items)
	return time.Time{}
}
