// SPDX-License-Identifier: Unlicense OR MIT

package cactus

import (
	"image"
	"image/color"
	"math"
	"strconv"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/cactuskit/cactus/widget"
)

// TickerStyle draws a Ticker as rolling digit columns.
type TickerStyle struct {
	Ticker   *widget.Ticker
	TextSize unit.Sp
	Color    color.NRGBA

	th *Theme
}

// Ticker returns a ticker style.
func Ticker(th *Theme, t *widget.Ticker) TickerStyle {
	return TickerStyle{Ticker: t, TextSize: 64, Color: th.Fg, th: th}
}

// Layout draws the columns side by side.
func (t TickerStyle) Layout(gtx layout.Context) layout.Dimensions {
	cols := t.Ticker.Update(gtx)
	children := make([]layout.FlexChild, len(cols))
	for i, c := range cols {
		children[i] = layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			if !c.Digit {
				return t.label(gtx, string(c.Rune), 1)
			}
			return t.layoutColumn(gtx, c.Position)
		})
	}
	return layout.Flex{}.Layout(gtx, children...)
}

// layoutColumn draws the digits 0 through 9 stacked and scrolled so
// that pos is in view.
func (t TickerStyle) layoutColumn(gtx layout.Context, pos float64) layout.Dimensions {
	gtx.Constraints.Min = image.Point{}
	macro := op.Record(gtx.Ops)
	cell := t.label(gtx, "0", 1)
	macro.Stop()
	size := cell.Size
	defer clip.Rect{Max: size}.Push(gtx.Ops).Pop()
	for d := 0; d < 10; d++ {
		y := int(math.Round((float64(d) - pos) * float64(size.Y)))
		if y <= -size.Y || y >= size.Y {
			continue
		}
		// Digits out of place fade out.
		alpha := 1 - math.Min(math.Abs(float64(d)-pos), 1)*0.8
		st := op.Offset(image.Pt(0, y)).Push(gtx.Ops)
		t.label(gtx, strconv.Itoa(d), alpha)
		st.Pop()
	}
	return layout.Dimensions{Size: size, Baseline: cell.Baseline}
}

func (t TickerStyle) label(gtx layout.Context, txt string, alpha float64) layout.Dimensions {
	l := material.Label(t.th.Theme, t.TextSize, txt)
	l.Color = withAlpha(t.Color, alpha)
	return l.Layout(gtx)
}
