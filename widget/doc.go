// SPDX-License-Identifier: Unlicense OR MIT

// Package widget implements the stateful half of the cactus components.
// Widgets contain persistent state and process user events; the
// widget/cactus package draws them.
//
// Widgets are updated during layout: each frame they drain their
// pending pointer events, advance their state with the frame time of
// the layout context and request another frame while an animation or a
// measurement is in progress.
package widget
