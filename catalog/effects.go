// SPDX-License-Identifier: Unlicense OR MIT

package catalog

import (
	"fmt"
	"image/color"

	"gioui.org/layout"
	"gioui.org/unit"
	giowidget "gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/cactuskit/cactus/widget"
	"github.com/cactuskit/cactus/widget/cactus"
)

type castShadowDemo struct{}

func (castShadowDemo) Name() string { return "cast-shadow" }

func (castShadowDemo) Description() string {
	return "A long shadow of offset copies fading into the background."
}

func (castShadowDemo) Layout(gtx layout.Context, th *cactus.Theme, interactive bool) layout.Dimensions {
	return layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return cactus.CastShadow(th).Layout(gtx, func(gtx layout.Context, col color.NRGBA) layout.Dimensions {
			l := material.H2(th.Theme, "Cactus")
			l.Color = col
			return l.Layout(gtx)
		})
	})
}

type interiorGlowDemo struct{}

func (interiorGlowDemo) Name() string { return "interior-glow" }

func (interiorGlowDemo) Description() string {
	return "A rounded square lit from the inside along its edges."
}

func (interiorGlowDemo) Layout(gtx layout.Context, th *cactus.Theme, interactive bool) layout.Dimensions {
	return layout.Center.Layout(gtx, cactus.InteriorGlow(th).Layout)
}

type textHaloDemo struct {
	angle  giowidget.Float
	radius giowidget.Float
}

func newTextHaloDemo() *textHaloDemo {
	d := new(textHaloDemo)
	d.radius.Value = 0.2
	return d
}

func (d *textHaloDemo) Name() string { return "text-halo" }

func (d *textHaloDemo) Description() string {
	return "Text wrapped around a tilted ring."
}

func (d *textHaloDemo) Layout(gtx layout.Context, th *cactus.Theme, interactive bool) layout.Dimensions {
	gtx = demoContext(gtx, interactive)
	st := cactus.TextHalo(th, "CACTUS · CACTUS · ")
	st.Halo.Angle = float64(d.angle.Value) * 360
	st.Halo.Radius = 100 + float64(d.radius.Value)*250
	if !interactive {
		return layout.Center.Layout(gtx, st.Layout)
	}
	slider := func(label string, f *giowidget.Float) layout.FlexChild {
		return layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return layout.UniformInset(unit.Dp(8)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
					layout.Rigid(caption(th, label)),
					layout.Flexed(1, material.Slider(th.Theme, f).Layout),
				)
			})
		})
	}
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return layout.Center.Layout(gtx, st.Layout)
		}),
		slider(fmt.Sprintf("angle %3.0f°", st.Halo.Angle), &d.angle),
		slider(fmt.Sprintf("radius %3.0f", st.Halo.Radius), &d.radius),
	)
}

type blurCardDemo struct {
	card widget.BlurCard
}

func (d *blurCardDemo) Name() string { return "blur-card" }

func (d *blurCardDemo) Description() string {
	return "A frosted card that turns when dragged and bounces when tapped."
}

func (d *blurCardDemo) Layout(gtx layout.Context, th *cactus.Theme, interactive bool) layout.Dimensions {
	gtx = demoContext(gtx, interactive)
	return cactus.BlurCard(th, &d.card).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.UniformInset(unit.Dp(20)).Layout(gtx, material.H5(th.Theme, "Cactus").Layout)
	})
}

type scrollingCardsDemo struct {
	list widget.ScrollCards
}

func newScrollingCardsDemo() *scrollingCardsDemo {
	d := new(scrollingCardsDemo)
	for i := 0; i < 12; i++ {
		h := []float64{widget.CardStandard, widget.CardSmall, widget.CardFull}[i%3]
		d.list.Heights = append(d.list.Heights, h)
	}
	return d
}

func (d *scrollingCardsDemo) Name() string { return "scrolling-cards" }

func (d *scrollingCardsDemo) Description() string {
	return "Cards that collapse into the top edge as they scroll past it."
}

func (d *scrollingCardsDemo) Layout(gtx layout.Context, th *cactus.Theme, interactive bool) layout.Dimensions {
	gtx = demoContext(gtx, interactive)
	return cactus.ScrollCards(th, &d.list).Layout(gtx, func(gtx layout.Context, i int, full bool) layout.Dimensions {
		return layout.UniformInset(unit.Dp(16)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			if !full {
				return caption(th, fmt.Sprintf("Card %d", i+1))(gtx)
			}
			return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
				layout.Rigid(material.H6(th.Theme, fmt.Sprintf("Card %d", i+1)).Layout),
				layout.Rigid(caption(th, fmt.Sprintf("%.0fdp tall", d.list.Heights[i]))),
			)
		})
	})
}

type loadingBlurDemo struct {
	state    widget.LoadingBlur
	scramble giowidget.Clickable
	reset    giowidget.Clickable
}

func (d *loadingBlurDemo) Name() string { return "loading-blur" }

func (d *loadingBlurDemo) Description() string {
	return "Soft colored blobs drifting about; hold to hurry them."
}

func (d *loadingBlurDemo) Layout(gtx layout.Context, th *cactus.Theme, interactive bool) layout.Dimensions {
	gtx = demoContext(gtx, interactive)
	if !interactive {
		return cactus.LoadingBlur(th, &d.state).Layout(gtx)
	}
	if d.scramble.Clicked(gtx) {
		d.state.Scramble()
	}
	if d.reset.Clicked(gtx) {
		d.state.Reset()
	}
	return layout.Stack{Alignment: layout.S}.Layout(gtx,
		layout.Expanded(cactus.LoadingBlur(th, &d.state).Layout),
		layout.Stacked(func(gtx layout.Context) layout.Dimensions {
			return layout.UniformInset(unit.Dp(16)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return layout.Flex{Spacing: layout.SpaceSides}.Layout(gtx,
					layout.Rigid(material.Button(th.Theme, &d.scramble, "Scramble").Layout),
					layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
					layout.Rigid(material.Button(th.Theme, &d.reset, "Reset").Layout),
				)
			})
		}),
	)
}
