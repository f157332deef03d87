// SPDX-License-Identifier: Unlicense OR MIT

package cactus

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	giowidget "gioui.org/widget"

	"github.com/cactuskit/cactus/widget"
)

// SlidingModalStyle draws a front sheet with a back sheet that slides
// up over it.
type SlidingModalStyle struct {
	Modal *widget.SlidingModal
	// CornerRadius of the front sheet.
	CornerRadius unit.Dp
	// Handle is drawn on the drag handle. It may be nil.
	Handle *giowidget.Icon

	Front  color.NRGBA
	Back   color.NRGBA
	Accent color.NRGBA
}

// SlidingModal returns a sliding modal style.
func SlidingModal(th *Theme, m *widget.SlidingModal, handle *giowidget.Icon) SlidingModalStyle {
	return SlidingModalStyle{
		Modal:        m,
		CornerRadius: 40,
		Handle:       handle,
		Front:        th.Bg,
		Back:         th.Fg,
		Accent:       th.Accent,
	}
}

// Layout fills the maximum constraints. Front is hidden while the back
// sheet covers the area.
func (s SlidingModalStyle) Layout(gtx layout.Context, front, back layout.Widget) layout.Dimensions {
	size := gtx.Constraints.Max
	scale := pxPerDp(gtx)
	hdp := s.Modal.Update(gtx, float64(float32(size.Y)/scale))
	h := int(float32(hdp) * scale)
	peek := gtx.Dp(widget.ModalPeek)

	defer clip.Rect{Max: size}.Push(gtx.Ops).Pop()
	paint.Fill(gtx.Ops, s.Back)

	// The front sheet narrows as the back sheet rises.
	shrink := int(float32(h-peek) / 45)
	frontRect := image.Rect(shrink/2, 0, size.X-shrink/2, size.Y-peek)
	if s.Modal.Peek != widget.Full {
		st := clip.UniformRRect(frontRect, gtx.Dp(s.CornerRadius)).Push(gtx.Ops)
		paint.Fill(gtx.Ops, s.Front)
		fgtx := gtx
		fgtx.Constraints = layout.Exact(frontRect.Size())
		t := op.Offset(frontRect.Min).Push(gtx.Ops)
		front(fgtx)
		t.Pop()
		st.Pop()
	}

	top := size.Y - h
	backRect := image.Rect(0, top, size.X, size.Y)
	st := clip.Rect(backRect).Push(gtx.Ops)
	paint.Fill(gtx.Ops, s.Back)
	t := op.Offset(backRect.Min).Push(gtx.Ops)
	s.Modal.Add(gtx.Ops)
	handle := gtx.Dp(40)
	bgtx := gtx
	inset := handle
	if s.Modal.Peek == widget.Full {
		inset = 0
	}
	bgtx.Constraints = layout.Exact(image.Pt(size.X, max(h-inset, 0)))
	ct := op.Offset(image.Pt(0, inset)).Push(gtx.Ops)
	back(bgtx)
	ct.Pop()
	if s.Modal.Peek != widget.Full {
		s.layoutHandle(gtx, size.X, handle)
	}
	t.Pop()
	st.Pop()
	return layout.Dimensions{Size: size}
}

func (s SlidingModalStyle) layoutHandle(gtx layout.Context, width, height int) {
	w := gtx.Dp(80 + widget.ModalHandle)
	r := image.Rect((width-w)/2, 0, (width+w)/2, height)
	paint.FillShape(gtx.Ops, s.Front, clip.UniformRRect(r, height/2).Op(gtx.Ops))
	if s.Handle == nil {
		return
	}
	defer op.Offset(r.Min.Add(image.Pt((w-height)/2, 0))).Push(gtx.Ops).Pop()
	gtx.Constraints = layout.Exact(image.Pt(height, height))
	s.Handle.Layout(gtx, s.Accent)
}
