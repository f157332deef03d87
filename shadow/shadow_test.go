// SPDX-License-Identifier: Unlicense OR MIT

package shadow

import (
	"image/color"
	"math"
	"testing"
)

func TestSoften(t *testing.T) {
	bands := Soften(10, 20, 0.5, 8)
	if len(bands) != 8 {
		t.Fatalf("got %d bands, want 8", len(bands))
	}
	if got, want := bands[0].Extent, 50.0; got != want {
		t.Errorf("outer extent = %v, want %v", got, want)
	}
	if got, want := bands[len(bands)-1].Extent, 10.0; got != want {
		t.Errorf("inner extent = %v, want %v", got, want)
	}
	if got := Composite(bands, 0); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("core opacity = %v, want 0.5", got)
	}
	prev := Composite(bands, 0)
	for d := 1.0; d <= 26; d++ {
		got := Composite(bands, d)
		if got > prev+1e-12 {
			t.Fatalf("opacity grows from %v to %v at distance %v", prev, got, d)
		}
		prev = got
	}
	if got := Composite(bands, 26); got != 0 {
		t.Errorf("opacity outside the blur = %v", got)
	}
}

func TestSoftenOpaque(t *testing.T) {
	bands := Soften(10, 10, 1, 4)
	for _, b := range bands {
		if b.Alpha >= 1 {
			t.Fatalf("band %+v is opaque", b)
		}
	}
	if got := Composite(bands, 0); math.Abs(got-maxAlpha) > 1e-9 {
		t.Errorf("core opacity = %v, want %v", got, maxAlpha)
	}
}

func TestSoftenDegenerate(t *testing.T) {
	for _, tc := range []struct {
		name                  string
		extent, radius, alpha float64
		n                     int
	}{
		{"no bands", 10, 10, 0.5, 0},
		{"transparent", 10, 10, 0, 4},
		{"negative extent", -1, 10, 0.5, 4},
	} {
		if got := Soften(tc.extent, tc.radius, tc.alpha, tc.n); got != nil {
			t.Errorf("%s: got %v, want none", tc.name, got)
		}
	}
	if got := Soften(10, 10, 0.5, 1); len(got) != 1 || got[0].Extent != 10 {
		t.Errorf("single band = %+v, want the bare shape", got)
	}
}

func TestCastLayers(t *testing.T) {
	fg := color.NRGBA{A: 255}
	bg := color.NRGBA{R: 255, G: 255, B: 0, A: 255}
	c := DefaultCast()
	layers := c.Layers(fg, bg)
	if len(layers) != 21 {
		t.Fatalf("got %d layers, want 21", len(layers))
	}
	if first, last := layers[0], layers[len(layers)-1]; first.Index != 20 || last.Index != 0 {
		t.Fatalf("layers run from %d to %d, want 20 to 0", first.Index, last.Index)
	}
	near := layers[len(layers)-1]
	if near.DX != 0 || near.DY != 0 {
		t.Errorf("nearest copy offset by (%v, %v)", near.DX, near.DY)
	}
	// The nearest copy starts 30% of the way towards the background.
	if got := near.Color; got.A != 255 || got.R != 77 || got.B != 0 {
		t.Errorf("nearest copy color = %v", got)
	}
	far := layers[0]
	if math.Abs(far.DX-100/math.Sqrt2) > 1e-9 || math.Abs(far.DY-100/math.Sqrt2) > 1e-9 {
		t.Errorf("farthest copy offset = (%v, %v)", far.DX, far.DY)
	}
	if far.Color.A != 0 {
		t.Errorf("copy reaching the background has alpha %d", far.Color.A)
	}
	for i := 1; i < len(layers); i++ {
		if layers[i].Color.A < layers[i-1].Color.A {
			t.Fatalf("copy %d is fainter than the copy behind it", layers[i].Index)
		}
	}
}

func TestCastDegenerate(t *testing.T) {
	fg, bg := color.NRGBA{A: 255}, color.NRGBA{R: 255, A: 255}
	for _, c := range []Cast{
		{Angle: 45, Length: 100},
		{Angle: 45, Spacing: 5},
		{Angle: 45, Length: math.Inf(1), Spacing: 5},
	} {
		if got := c.Layers(fg, bg); got != nil {
			t.Errorf("%+v: got %d layers, want none", c, len(got))
		}
	}
}
