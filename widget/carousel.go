// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"math"
	"time"

	"gioui.org/gesture"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"

	"github.com/cactuskit/cactus/motion"
)

const (
	// CarouselSpacing is the horizontal distance between two cards.
	CarouselSpacing = 250
	// carouselSwipe is the horizontal travel that advances the carousel
	// by one card.
	carouselSwipe = 100
	// carouselSlop is the travel before a drag counts as a swipe.
	carouselSlop = 30
)

// Carousel is a horizontal stack of cards with one current card.
type Carousel struct {
	// Index of the current card.
	Index int

	drag     gesture.Drag
	origin   float32
	mark     float32
	swiping  bool
	position motion.Tween
}

// Advance moves forward by n cards, stopping at the last of length
// cards.
func (c *Carousel) Advance(n, length int) {
	c.Index = min(c.Index+abs(n), length-1)
	c.Index = max(c.Index, 0)
}

// Reduce moves back by n cards, stopping at the first.
func (c *Carousel) Reduce(n int) {
	c.Index = max(c.Index-abs(n), 0)
}

// Swipe updates the carousel from a drag that has travelled dx from the
// press point. Every 100 units of travel since the last step move one
// card, left for forward.
func (c *Carousel) Swipe(dx float32, length int) {
	if !c.swiping {
		if abs32(dx) < carouselSlop {
			return
		}
		c.swiping = true
	}
	switch {
	case dx < c.mark-carouselSwipe:
		c.mark = dx
		c.Advance(1, length)
	case dx > c.mark+carouselSwipe:
		c.mark = dx
		c.Reduce(1)
	}
}

// EndSwipe finishes a swipe.
func (c *Carousel) EndSwipe() {
	c.swiping = false
	c.mark = 0
}

// Update processes events for a carousel of length cards and returns
// the animated position of the current card, a fractional index. Swipe
// distances are measured in dp.
func (c *Carousel) Update(gtx layout.Context, length int) float64 {
	if c.Index >= length {
		c.Index = max(length-1, 0)
	}
	for {
		e, ok := c.drag.Update(gtx.Metric, gtx.Source, gesture.Horizontal)
		if !ok {
			break
		}
		switch e.Kind {
		case pointer.Press:
			c.origin = e.Position.X
		case pointer.Drag:
			c.Swipe((e.Position.X-c.origin)/float32(pxPerDp(gtx.Metric)), length)
		case pointer.Release, pointer.Cancel:
			c.EndSwipe()
		}
	}
	if c.position.Duration == 0 {
		c.position.Duration = 500 * time.Millisecond
		c.position.Curve = motion.Spring
		c.position.Set(float64(c.Index))
	}
	c.position.Animate(gtx.Now, float64(c.Index))
	pos := c.position.Value(gtx.Now)
	if c.position.Running(gtx.Now) {
		gtx.Execute(op.InvalidateCmd{})
	}
	return pos
}

// Add registers the swipe area. Clip the area before calling Add.
func (c *Carousel) Add(ops *op.Ops) {
	c.drag.Add(ops)
}

// CardOffset returns the horizontal offset of card i when the carousel
// is at pos.
func CardOffset(i int, pos float64) float64 {
	return CarouselSpacing * (float64(i) - pos)
}

// CardScale returns the scale of card i when the carousel is at pos.
// Every card away from the current one shrinks by a tenth, down to a
// tenth of its size.
func CardScale(i int, pos float64) float64 {
	return math.Max(1-0.1*math.Abs(float64(i)-pos), 0.1)
}

// CardOrder returns the stacking order of card i, higher on top. The
// current card is on top; cards before it stack above the cards after
// it.
func (c *Carousel) CardOrder(i, length int) int {
	order := length - abs(i-c.Index)
	if i == c.Index {
		order = length + 1
	}
	if i <= c.Index {
		order += length
	}
	return order
}

func pxPerDp(m unit.Metric) float64 {
	if m.PxPerDp == 0 {
		return 1
	}
	return float64(m.PxPerDp)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
