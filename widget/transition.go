// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"time"

	"gioui.org/layout"
	"gioui.org/op"

	"github.com/cactuskit/cactus/motion"
)

// AngleTransition animates a stripe angle towards a target.
type AngleTransition struct {
	// Duration of a transition. Zero means 600ms.
	Duration time.Duration

	tween motion.Tween
	init  bool
}

// Angle returns the animated angle in degrees while moving towards
// target.
func (a *AngleTransition) Angle(gtx layout.Context, target float64) float64 {
	if !a.init {
		a.init = true
		a.tween.Duration = a.Duration
		if a.tween.Duration == 0 {
			a.tween.Duration = 600 * time.Millisecond
		}
		a.tween.Curve = motion.Spring
		a.tween.Set(target)
	}
	a.tween.Animate(gtx.Now, target)
	v := a.tween.Value(gtx.Now)
	if a.tween.Running(gtx.Now) {
		gtx.Execute(op.InvalidateCmd{})
	}
	return v
}
