// SPDX-License-Identifier: Unlicense OR MIT

/*
Package stripe computes the geometry of angled line fills.

A fill is described by a Spec: the angle of the stripes in degrees, the
width of each stroke and the gap between neighbouring strokes. Lines
returns the centerlines needed to tile a rectangle of a given size without
seams at its edges. Stripes are anchored on the left edge midline and
extended horizontally by AdditionalLength on both sides so that a stripe
entering one corner leaves through the opposite edge.

The horizontal distance between anchors is corrected for the angle so the
perpendicular distance between stripes is always LineWidth + Spacing:

	spec := stripe.Spec{Angle: 45, LineWidth: 5, Spacing: 5, Opacity: 1}
	for _, l := range stripe.Lines(spec, stripe.Size{W: 300, H: 200}) {
		// stroke l.From -> l.To with width spec.LineWidth.
	}

Angles that are exact multiples of 180 degrees make the slope undefined;
Normalize replaces them with a small positive angle.
*/
package stripe
