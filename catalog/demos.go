// SPDX-License-Identifier: Unlicense OR MIT

package catalog

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"time"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	giowidget "gioui.org/widget"
	"gioui.org/widget/material"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"github.com/cactuskit/cactus/config"
	"github.com/cactuskit/cactus/dial"
	"github.com/cactuskit/cactus/ribbon"
	"github.com/cactuskit/cactus/stripe"
	"github.com/cactuskit/cactus/widget"
	"github.com/cactuskit/cactus/widget/cactus"
)

// Default returns every component, configured by cfg.
func Default(cfg *config.Config) *Registry {
	if cfg == nil {
		cfg = config.Default()
	}
	return NewRegistry(
		newRibbonDemo(cfg.Ribbon, cfg.Stripes.Spec()),
		newStripesDemo(cfg.Stripes.Spec()),
		&maskedStripesDemo{spec: cfg.Stripes.Spec()},
		&radialLinesDemo{seed: 1},
		radialGlowDemo{},
		loadingWaveDemo{},
		&carouselDemo{},
		newSlidingModalDemo(),
		newTickerDemo(),
		ticketDemo{},
		newContextMenuDemo(cfg.Dial),
		newTimeDialDemo(),
		castShadowDemo{},
		interiorGlowDemo{},
		newTextHaloDemo(),
		&blurCardDemo{},
		newScrollingCardsDemo(),
		&loadingBlurDemo{},
	)
}

// demoContext returns gtx with input disabled unless interactive.
// Previews do not invalidate themselves; the gallery redraws them.
func demoContext(gtx layout.Context, interactive bool) layout.Context {
	if !interactive {
		return gtx.Disabled()
	}
	return gtx
}

func mustIcon(data []byte) *giowidget.Icon {
	ic, err := giowidget.NewIcon(data)
	if err != nil {
		panic(err)
	}
	return ic
}

func caption(th *cactus.Theme, txt string) layout.Widget {
	return material.Caption(th.Theme, txt).Layout
}

// RibbonNodes is the demo ribbon, folding back and forth with varying panel
// widths.
var RibbonNodes = []ribbon.Node{
	{Width: 150, Angle: 10, Perspective: -3},
	{Width: 420, Angle: 45, Perspective: 5, Alignment: ribbon.Leading},
	{Width: 200, Angle: 20, Perspective: 7, Alignment: ribbon.Trailing},
	{Width: 350, Angle: 45, Perspective: 5, Alignment: ribbon.Leading},
	{Width: 200, Angle: 20, Perspective: 11, Alignment: ribbon.Trailing},
	{Width: 600, Angle: 20, Perspective: 4, Alignment: ribbon.Trailing},
	{Width: 350, Angle: 45, Perspective: -8, Alignment: ribbon.Leading},
	{Width: 250, Angle: 45, Perspective: -5, Alignment: ribbon.Trailing},
	{Width: 650, Angle: 45, Perspective: -8, Alignment: ribbon.Leading},
}

type ribbonDemo struct {
	cfg   ribbon.Ribbon
	spec  stripe.Spec
	state widget.Ribbon
	list  giowidget.List
}

func newRibbonDemo(cfg config.Ribbon, spec stripe.Spec) *ribbonDemo {
	d := &ribbonDemo{
		cfg:  cfg.Apply(ribbon.Ribbon{Nodes: RibbonNodes}),
		spec: spec,
	}
	d.list.Axis = layout.Horizontal
	return d
}

func (d *ribbonDemo) Name() string { return "ribbon" }

func (d *ribbonDemo) Description() string {
	return "Panels chained in perspective, each rotated about its leading or trailing edge."
}

func (d *ribbonDemo) Layout(gtx layout.Context, th *cactus.Theme, interactive bool) layout.Dimensions {
	gtx = demoContext(gtx, interactive)
	st := cactus.Ribbon(th, &d.state, d.cfg)
	node := func(gtx layout.Context, i int) layout.Dimensions {
		if i%2 == 0 {
			return cactus.StripedFill(th, d.spec).Layout(gtx)
		}
		return layout.Center.Layout(gtx, material.H4(th.Theme, fmt.Sprint(i+1)).Layout)
	}
	if !interactive {
		return layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			return st.Layout(gtx, node)
		})
	}
	return material.List(th.Theme, &d.list).Layout(gtx, 1, func(gtx layout.Context, _ int) layout.Dimensions {
		return st.Layout(gtx, node)
	})
}

type stripesDemo struct {
	spec  stripe.Spec
	angle giowidget.Float
}

func newStripesDemo(spec stripe.Spec) *stripesDemo {
	d := &stripesDemo{spec: spec}
	a := math.Mod(spec.Angle, 180)
	if a < 0 {
		a += 180
	}
	d.angle.Value = float32(a / 180)
	return d
}

func (d *stripesDemo) Name() string { return "stripes" }

func (d *stripesDemo) Description() string {
	return "Parallel stripes tiling a rectangle at any angle."
}

func (d *stripesDemo) Layout(gtx layout.Context, th *cactus.Theme, interactive bool) layout.Dimensions {
	gtx = demoContext(gtx, interactive)
	spec := d.spec
	if !interactive {
		return cactus.StripedFill(th, spec).Layout(gtx)
	}
	spec.Angle = float64(d.angle.Value) * 180
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Flexed(1, cactus.StripedFill(th, spec).Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return layout.UniformInset(unit.Dp(16)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
					layout.Rigid(caption(th, fmt.Sprintf("%3.0f°", spec.Angle))),
					layout.Flexed(1, material.Slider(th.Theme, &d.angle).Layout),
				)
			})
		}),
	)
}

type maskedStripesDemo struct {
	spec stripe.Spec
}

func (d *maskedStripesDemo) Name() string { return "masked-stripes" }

func (d *maskedStripesDemo) Description() string {
	return "A glow revealed through angled stripes."
}

func (d *maskedStripesDemo) Layout(gtx layout.Context, th *cactus.Theme, interactive bool) layout.Dimensions {
	spec := d.spec
	spec.Angle = -spec.Angle
	return cactus.MaskedStripes(spec).Layout(gtx, cactus.RadialGlow().Layout)
}

type radialLinesDemo struct {
	seed    uint64
	reshape giowidget.Clickable
}

func (d *radialLinesDemo) Name() string { return "radial-lines" }

func (d *radialLinesDemo) Description() string {
	return "A burst of lines from the center, trimmed short of the border."
}

func (d *radialLinesDemo) Layout(gtx layout.Context, th *cactus.Theme, interactive bool) layout.Dimensions {
	gtx = demoContext(gtx, interactive)
	for d.reshape.Clicked(gtx) {
		d.seed++
	}
	st := cactus.RadialLines(th)
	st.Seed = d.seed
	return d.reshape.Layout(gtx, st.Layout)
}

type radialGlowDemo struct{}

func (radialGlowDemo) Name() string { return "radial-glow" }

func (radialGlowDemo) Description() string {
	return "A soft glow fading out from the center."
}

func (radialGlowDemo) Layout(gtx layout.Context, th *cactus.Theme, interactive bool) layout.Dimensions {
	return cactus.RadialGlow().Layout(gtx)
}

type loadingWaveDemo struct{}

func (loadingWaveDemo) Name() string { return "loading-wave" }

func (loadingWaveDemo) Description() string {
	return "Three summed sine waves drifting with time."
}

func (loadingWaveDemo) Layout(gtx layout.Context, th *cactus.Theme, interactive bool) layout.Dimensions {
	return cactus.LoadingWave(th).Layout(gtx)
}

// cardColors fill the carousel cards.
var cardColors = []color.NRGBA{
	{R: 190, G: 72, B: 22, A: 255},
	{R: 16, G: 120, B: 160, A: 255},
	{R: 224, G: 176, B: 40, A: 255},
	{R: 60, G: 120, B: 60, A: 255},
	{R: 110, G: 60, B: 140, A: 255},
}

type carouselDemo struct {
	state widget.Carousel
}

func (d *carouselDemo) Name() string { return "carousel" }

func (d *carouselDemo) Description() string {
	return "Stacked cards swiped left and right."
}

func (d *carouselDemo) Layout(gtx layout.Context, th *cactus.Theme, interactive bool) layout.Dimensions {
	gtx = demoContext(gtx, interactive)
	card := func(gtx layout.Context, i int) layout.Dimensions {
		size := gtx.Constraints.Min
		rr := gtx.Dp(24)
		paint.FillShape(gtx.Ops, cardColors[i%len(cardColors)], clip.UniformRRect(image.Rectangle{Max: size}, rr).Op(gtx.Ops))
		return layout.UniformInset(unit.Dp(24)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			l := material.H4(th.Theme, fmt.Sprintf("Card %d", i+1))
			l.Color = th.ContrastFg
			return l.Layout(gtx)
		})
	}
	return layout.UniformInset(unit.Dp(24)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return cactus.Carousel(th, &d.state, len(cardColors)).Layout(gtx, card)
	})
}

type slidingModalDemo struct {
	state  widget.SlidingModal
	handle *giowidget.Icon
}

func newSlidingModalDemo() *slidingModalDemo {
	return &slidingModalDemo{handle: mustIcon(icons.NavigationExpandLess)}
}

func (d *slidingModalDemo) Name() string { return "sliding-modal" }

func (d *slidingModalDemo) Description() string {
	return "A sheet dragged between minimized, mid and full height."
}

func (d *slidingModalDemo) Layout(gtx layout.Context, th *cactus.Theme, interactive bool) layout.Dimensions {
	gtx = demoContext(gtx, interactive)
	front := func(gtx layout.Context) layout.Dimensions {
		return layout.UniformInset(unit.Dp(24)).Layout(gtx, material.H6(th.Theme, "Drag the handle up").Layout)
	}
	back := func(gtx layout.Context) layout.Dimensions {
		l := material.Body1(th.Theme, d.state.Peek.String())
		l.Color = th.Bg
		return layout.UniformInset(unit.Dp(24)).Layout(gtx, l.Layout)
	}
	return cactus.SlidingModal(th, &d.state, d.handle).Layout(gtx, front, back)
}

type tickerDemo struct {
	state *widget.Ticker
	roll  giowidget.Clickable
}

func newTickerDemo() *tickerDemo {
	t := widget.NewTicker()
	t.Value = 12.5
	return &tickerDemo{state: t}
}

func (d *tickerDemo) Name() string { return "ticker" }

func (d *tickerDemo) Description() string {
	return "Digits rolling into place as the value changes."
}

func (d *tickerDemo) Layout(gtx layout.Context, th *cactus.Theme, interactive bool) layout.Dimensions {
	gtx = demoContext(gtx, interactive)
	for d.roll.Clicked(gtx) {
		d.state.Value += 17.321
		if d.state.Value >= 100 {
			d.state.Value -= 100
		}
	}
	return layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical, Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(cactus.Ticker(th, d.state).Layout),
			layout.Rigid(layout.Spacer{Height: 16}.Layout),
			layout.Rigid(material.Button(th.Theme, &d.roll, "Roll").Layout),
		)
	})
}

type ticketDemo struct{}

func (ticketDemo) Name() string { return "ticket" }

func (ticketDemo) Description() string {
	return "A ticket with concave corners and a notched tear-off stub."
}

func (ticketDemo) Layout(gtx layout.Context, th *cactus.Theme, interactive bool) layout.Dimensions {
	return layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		gtx.Constraints = layout.Exact(gtx.Constraints.Constrain(image.Pt(gtx.Dp(280), gtx.Dp(360))))
		return cactus.Ticket(th).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			layout.UniformInset(unit.Dp(24)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
					layout.Rigid(material.H5(th.Theme, "Cactus Components").Layout),
					layout.Rigid(caption(th, "Admit one")),
					layout.Rigid(layout.Spacer{Height: 8}.Layout),
					layout.Rigid(material.Body1(th.Theme, time.Date(2024, 6, 18, 19, 30, 0, 0, time.UTC).Format("Mon Jan 2, 15:04")).Layout),
				)
			})
			return layout.Dimensions{Size: gtx.Constraints.Min}
		})
	})
}

// menuIcons are cycled through by the context menu items.
var menuIcons = [][]byte{
	icons.ContentAdd,
	icons.ContentSend,
	icons.ActionSettings,
	icons.ActionList,
	icons.ActionBuild,
	icons.ActionBugReport,
	icons.HardwareMemory,
}

var menuLabels = []string{"Add", "Send", "Settings", "List", "Build", "Report", "Memory"}

type contextMenuDemo struct {
	state    widget.ContextMenu
	items    []cactus.MenuItem
	cfg      config.Dial
	selected string
}

func newContextMenuDemo(cfg config.Dial) *contextMenuDemo {
	d := &contextMenuDemo{cfg: cfg}
	for i := 0; i < cfg.Items; i++ {
		k := i % len(menuIcons)
		d.items = append(d.items, cactus.MenuItem{Label: menuLabels[k], Icon: mustIcon(menuIcons[k])})
	}
	return d
}

func (d *contextMenuDemo) Name() string { return "context-menu" }

func (d *contextMenuDemo) Description() string {
	return "A half circle menu chosen by dragging from the center or tapping an item."
}

func (d *contextMenuDemo) Layout(gtx layout.Context, th *cactus.Theme, interactive bool) layout.Dimensions {
	gtx = demoContext(gtx, interactive)
	if i, ok := d.state.Update(gtx); ok && i >= 0 && i < len(d.items) {
		d.selected = d.items[i].Label
	}
	menu := cactus.ContextMenu(th, &d.state, d.items...)
	menu.Threshold = unit.Dp(d.cfg.Threshold)
	status := "Drag from the center"
	if d.selected != "" {
		status = "Selected: " + d.selected
	}
	return layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical, Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(menu.Layout),
			layout.Rigid(layout.Spacer{Height: 16}.Layout),
			layout.Rigid(material.Body1(th.Theme, status).Layout),
		)
	})
}

type timeDialDemo struct {
	state *widget.TimeDial
}

func newTimeDialDemo() *timeDialDemo {
	return &timeDialDemo{state: widget.NewTimeDial(dial.Clock{Hour: 9, Minute: 41})}
}

func (d *timeDialDemo) Name() string { return "time-dial" }

func (d *timeDialDemo) Description() string {
	return "A dial and a track for picking a time of day."
}

func (d *timeDialDemo) Layout(gtx layout.Context, th *cactus.Theme, interactive bool) layout.Dimensions {
	gtx = demoContext(gtx, interactive)
	return layout.Center.Layout(gtx, cactus.TimeDial(th, d.state).Layout)
}
