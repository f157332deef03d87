// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"math"
	"time"

	"gioui.org/gesture"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
)

// Card heights in dp.
const (
	CardSmall    = 125
	CardStandard = 275
	CardFull     = 350
	// CardCollapsed is the height a card shrinks to at the top of the
	// list.
	CardCollapsed = 60
	// CardSpacing separates two cards.
	CardSpacing = 10
	// cardTapScale is added to the scale of a tapped card.
	cardTapScale = 0.05
	cardBounce   = 100 * time.Millisecond
)

// CardFrame is the geometry of a card in a ScrollCards list.
type CardFrame struct {
	// Top of the card relative to the top of the list.
	Top float64
	// Height the card is drawn with.
	Height float64
	// Offset pushes the card down so it sticks to the top of the list
	// while it collapses.
	Offset float64
	Scale  float64
	// Alpha of the card in [0, 1].
	Alpha float64
	// Full is set while the card shows all of its content.
	Full bool
}

// ScrollCardFrame returns the geometry of a card of the given height
// whose top lies distance below the top of the list. Cards leaving the
// top collapse, shrink and fade; cards just below the top swell
// slightly.
func ScrollCardFrame(distance, height float64) CardFrame {
	f := CardFrame{
		Top:    distance,
		Height: math.Min(math.Max(height+distance, CardCollapsed), height),
		Full:   -distance <= height*0.55,
		Scale:  1,
		Alpha:  1,
	}
	if distance <= 0 && distance > -height-CardSpacing {
		f.Offset = -distance
		f.Scale = 1 / (-distance/3500 + 1)
		f.Alpha = f.Scale * 0.8
		return f
	}
	in := -distance + 170
	bell := math.Pow(2, -math.Pow(in/90, 2))
	f.Scale = math.Max(bell/20+1, 1)
	f.Alpha = math.Min(f.Scale, 1)
	return f
}

// ScrollCards is a vertical list of cards that collapse as they scroll
// past the top.
type ScrollCards struct {
	// Heights of the cards in dp.
	Heights []float64
	// Offset is the scroll position in dp.
	Offset float64

	scroll gesture.Scroll
	taps   []gesture.Click
	bounce []time.Time
}

// Tap returns the tap target of card i.
func (s *ScrollCards) Tap(i int) *gesture.Click {
	s.grow()
	return &s.taps[i]
}

func (s *ScrollCards) grow() {
	if n := len(s.Heights); len(s.taps) < n {
		s.taps = append(s.taps, make([]gesture.Click, n-len(s.taps))...)
		s.bounce = append(s.bounce, make([]time.Time, n-len(s.bounce))...)
	}
}

// Top returns the top of card i in dp with the list scrolled to the
// start.
func (s *ScrollCards) Top(i int) float64 {
	top := 0.0
	for _, h := range s.Heights[:i] {
		top += h + CardSpacing
	}
	return top
}

// MaxOffset is the scroll position that brings the last card to the
// top.
func (s *ScrollCards) MaxOffset() float64 {
	if len(s.Heights) == 0 {
		return 0
	}
	return s.Top(len(s.Heights) - 1)
}

// Update processes events and returns the frame of every card.
func (s *ScrollCards) Update(gtx layout.Context) []CardFrame {
	s.grow()
	scale := pxPerDp(gtx.Metric)
	off := int(math.Round(s.Offset * scale))
	end := int(math.Round(s.MaxOffset() * scale))
	dist := s.scroll.Update(gtx.Metric, gtx.Source, gtx.Now, gesture.Vertical,
		pointer.ScrollRange{},
		pointer.ScrollRange{Min: -off, Max: end - off},
	)
	s.Offset = math.Min(math.Max(s.Offset+float64(dist)/scale, 0), s.MaxOffset())

	for i := range s.taps {
		for {
			e, ok := s.taps[i].Update(gtx.Source)
			if !ok {
				break
			}
			if e.Kind == gesture.KindClick {
				s.bounce[i] = gtx.Now.Add(cardBounce)
			}
		}
	}
	frames := make([]CardFrame, len(s.Heights))
	for i, h := range s.Heights {
		f := ScrollCardFrame(s.Top(i)-s.Offset, h)
		if gtx.Now.Before(s.bounce[i]) {
			f.Scale += cardTapScale
			gtx.Execute(op.InvalidateCmd{At: s.bounce[i]})
		}
		frames[i] = f
	}
	return frames
}

// Add registers the scroll area. Clip the area before calling Add.
func (s *ScrollCards) Add(ops *op.Ops) {
	s.scroll.Add(ops)
}
