// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"math"
	"time"

	"gioui.org/f32"
	"gioui.org/gesture"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"

	"github.com/cactuskit/cactus/motion"
)

const (
	// BlurCardPressScale is the scale a tapped card grows to.
	BlurCardPressScale = 1.05
	// blurCardBounce is how long a tapped card stays grown.
	blurCardBounce = 100 * time.Millisecond
)

// Tilt is the pose of a BlurCard.
type Tilt struct {
	// Turn is the rotation about the vertical axis in degrees.
	Turn float64
	// Roll is the rotation in the card plane in degrees.
	Roll float64
	// Scale of the card.
	Scale float64
}

// Back reports whether the card shows its back side.
func (t Tilt) Back() bool {
	return math.Mod(math.Floor((math.Abs(t.Turn)+90)/180), 2) != 0
}

// BlurCard is a card that turns with a drag and springs back on
// release. A tap makes it bounce.
type BlurCard struct {
	drag   gesture.Drag
	click  gesture.Click
	origin f32.Point
	turn   motion.Tween
	roll   motion.Tween
	scale  motion.Tween
	bounce time.Time
}

// Update processes events and returns the current pose. Drag distances
// are measured in dp: every dp of horizontal travel turns the card by a
// degree, and vertical travel rolls it by a tenth of that.
func (c *BlurCard) Update(gtx layout.Context) Tilt {
	if c.scale.Duration == 0 {
		c.scale.Duration = 200 * time.Millisecond
		c.scale.Set(1)
		c.turn.Duration = 350 * time.Millisecond
		c.roll.Duration = 350 * time.Millisecond
	}
	scale := float32(pxPerDp(gtx.Metric))
	for {
		e, ok := c.drag.Update(gtx.Metric, gtx.Source, gesture.Both)
		if !ok {
			break
		}
		switch e.Kind {
		case pointer.Press:
			c.origin = e.Position
		case pointer.Drag:
			d := e.Position.Sub(c.origin).Div(scale)
			c.turn.Set(float64(d.X))
			c.roll.Set(float64(-d.Y) / 10)
		case pointer.Release, pointer.Cancel:
			c.turn.Animate(gtx.Now, 0)
			c.roll.Animate(gtx.Now, 0)
		}
	}
	for {
		e, ok := c.click.Update(gtx.Source)
		if !ok {
			break
		}
		if e.Kind == gesture.KindClick {
			c.scale.Animate(gtx.Now, BlurCardPressScale)
			c.bounce = gtx.Now.Add(blurCardBounce)
		}
	}
	if !c.bounce.IsZero() {
		if gtx.Now.Before(c.bounce) {
			gtx.Execute(op.InvalidateCmd{At: c.bounce})
		} else {
			c.scale.Animate(gtx.Now, 1)
			c.bounce = time.Time{}
		}
	}
	t := Tilt{
		Turn:  c.turn.Value(gtx.Now),
		Roll:  c.roll.Value(gtx.Now),
		Scale: c.scale.Value(gtx.Now),
	}
	if c.turn.Running(gtx.Now) || c.roll.Running(gtx.Now) || c.scale.Running(gtx.Now) {
		gtx.Execute(op.InvalidateCmd{})
	}
	return t
}

// Dragging reports whether the card is being turned.
func (c *BlurCard) Dragging() bool {
	return c.drag.Dragging()
}

// Add registers the input area. Clip the area before calling Add.
func (c *BlurCard) Add(ops *op.Ops) {
	c.drag.Add(ops)
	c.click.Add(ops)
}
