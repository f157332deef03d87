// SPDX-License-Identifier: Unlicense OR MIT

package catalog

import (
	"image"
	"time"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	giowidget "gioui.org/widget"
	"gioui.org/widget/material"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"github.com/cactuskit/cactus/widget/cactus"
)

// previewFrame is the redraw interval of the previews in the component
// list.
const previewFrame = time.Second / 30

// Gallery lists components with a live preview each. Clicking a
// preview opens the interactive demo.
type Gallery struct {
	Title string

	entries []Entry
	cards   []giowidget.Clickable
	list    giowidget.List
	back    giowidget.Clickable
	icon    *giowidget.Icon
	// open is the index of the open demo, or -1.
	open int
}

// NewGallery returns a gallery of entries.
func NewGallery(title string, entries []Entry) *Gallery {
	g := &Gallery{Title: title, icon: mustIcon(icons.NavigationArrowBack), open: -1}
	g.list.Axis = layout.Vertical
	g.SetEntries(entries)
	return g
}

// SetEntries replaces the listed components. An open demo stays open if
// its component is still listed.
func (g *Gallery) SetEntries(entries []Entry) {
	open := -1
	if e, ok := g.Open(); ok {
		for i, n := range entries {
			if n.ID == e.ID {
				open = i
				break
			}
		}
	}
	g.entries = entries
	g.cards = make([]giowidget.Clickable, len(entries))
	g.open = open
}

// Open returns the component whose demo is open.
func (g *Gallery) Open() (Entry, bool) {
	if g.open < 0 || g.open >= len(g.entries) {
		return Entry{}, false
	}
	return g.entries[g.open], true
}

// Show opens the demo of the component with the given name and reports
// whether it is listed.
func (g *Gallery) Show(name string) bool {
	for i, e := range g.entries {
		if e.Name() == name {
			g.open = i
			return true
		}
	}
	return false
}

// Close returns to the component list.
func (g *Gallery) Close() {
	g.open = -1
}

// Update handles clicks on the previews and the back button.
func (g *Gallery) Update(gtx layout.Context) {
	for i := range g.cards {
		if g.cards[i].Clicked(gtx) {
			g.open = i
		}
	}
	if g.back.Clicked(gtx) {
		g.Close()
	}
}

// Layout draws the list or the open demo.
func (g *Gallery) Layout(gtx layout.Context, th *cactus.Theme) layout.Dimensions {
	g.Update(gtx)
	paint.Fill(gtx.Ops, th.Bg)
	e, ok := g.Open()
	if !ok {
		return g.layoutList(gtx, th)
	}
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return layout.UniformInset(unit.Dp(8)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
					layout.Rigid(material.IconButton(th.Theme, &g.back, g.icon, "Back").Layout),
					layout.Rigid(layout.Spacer{Width: 12}.Layout),
					layout.Flexed(1, material.H6(th.Theme, e.Name()).Layout),
				)
			})
		}),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			defer clip.Rect{Max: gtx.Constraints.Max}.Push(gtx.Ops).Pop()
			gtx.Constraints.Min = gtx.Constraints.Max
			e.Layout(gtx, th, true)
			return layout.Dimensions{Size: gtx.Constraints.Max}
		}),
	)
}

func (g *Gallery) layoutList(gtx layout.Context, th *cactus.Theme) layout.Dimensions {
	gtx.Execute(op.InvalidateCmd{At: gtx.Now.Add(previewFrame)})
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return layout.UniformInset(unit.Dp(16)).Layout(gtx, material.H4(th.Theme, g.Title).Layout)
		}),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return material.List(th.Theme, &g.list).Layout(gtx, len(g.entries), func(gtx layout.Context, i int) layout.Dimensions {
				return layout.Inset{Left: 16, Right: 16, Bottom: 24}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					return g.layoutCard(gtx, th, i)
				})
			})
		}),
	)
}

func (g *Gallery) layoutCard(gtx layout.Context, th *cactus.Theme, i int) layout.Dimensions {
	e := g.entries[i]
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(material.H6(th.Theme, e.Name()).Layout),
		layout.Rigid(material.Body2(th.Theme, e.Description()).Layout),
		layout.Rigid(layout.Spacer{Height: 8}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			size := image.Pt(gtx.Constraints.Max.X, gtx.Dp(220))
			gtx.Constraints = layout.Exact(size)
			return g.cards[i].Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				r := gtx.Dp(24)
				defer clip.UniformRRect(image.Rectangle{Max: size}, r).Push(gtx.Ops).Pop()
				paint.Fill(gtx.Ops, th.Surface)
				e.Layout(gtx.Disabled(), th, false)
				return layout.Dimensions{Size: size}
			})
		}),
	)
}
