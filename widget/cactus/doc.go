// SPDX-License-Identifier: Unlicense OR MIT

// Package cactus draws the cactus components.
//
// As in the material package of Gio, every control is split into the
// stateful widget from the widget package and a stateless style that
// draws it. A style is created from a Theme, adjusted through its
// fields and drawn with Layout:
//
//	var menu widget.ContextMenu
//
//	for {
//		i, ok := menu.Update(gtx)
//		if !ok {
//			break
//		}
//		fmt.Println("chose", i)
//	}
//	cactus.ContextMenu(th, &menu, items...).Layout(gtx)
//
// Fills without state, such as StripedFill or RadialGlow, only need a
// style.
package cactus
