// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"math"
	"testing"
)

func TestSlidingModalPlace(t *testing.T) {
	const h = 800
	m := SlidingModal{Height: ModalPeek}
	if imp := m.Place(600, h); m.Peek != Mid || m.Height != 200 || imp.Soft != 0 {
		t.Fatalf("Place(600) = %v %v %+v", m.Peek, m.Height, imp)
	}
	imp := m.Place(780, h)
	if m.Peek != Minimized || m.Height != ModalPeek || !imp.Rigid {
		t.Fatalf("Place(780) = %v %v %+v", m.Peek, m.Height, imp)
	}
	imp = m.Place(400, h)
	if m.Peek != Mid || m.Height != 400 || imp.Rigid || imp.Soft != 0 {
		t.Fatalf("Place(400) = %v %v %+v", m.Peek, m.Height, imp)
	}
	imp = m.Place(200, h)
	if m.Peek != Mid || m.Height != h-ModalMinCover || math.Abs(imp.Soft-75.0/140) > 1e-9 {
		t.Fatalf("Place(200) = %v %v %+v", m.Peek, m.Height, imp)
	}
	imp = m.Place(100, h)
	if m.Peek != Full || m.Height != h || !imp.Rigid {
		t.Fatalf("Place(100) = %v %v %+v", m.Peek, m.Height, imp)
	}
	if imp := m.Place(700, h); m.Peek != Full || imp != (Impact{}) {
		t.Errorf("Place moved a full modal to %v", m.Peek)
	}
}

func TestSlidingModalDismiss(t *testing.T) {
	const h = 800
	m := SlidingModal{Peek: Full, Height: h}
	m.Move(30, 30, h)
	if m.Peek != Full {
		t.Fatalf("short drag dismissed to %v", m.Peek)
	}
	m.Move(300, 50, h)
	if m.Peek != Mid || m.Height != 500 {
		t.Fatalf("dismiss gave %v %v, want Mid 500", m.Peek, m.Height)
	}
	m.Release(100, 0, h)
	if m.Peek != Mid || m.Height != h-ModalMinCover {
		t.Errorf("release gave %v %v, want Mid %v", m.Peek, m.Height, h-ModalMinCover)
	}
}

func TestSlidingModalVelocity(t *testing.T) {
	const h = 800
	m := SlidingModal{Peek: Mid, Height: 300}
	m.Release(600, 1400, h)
	if m.Peek != Mid || m.Height != 100 {
		t.Errorf("release gave %v %v, want Mid 100", m.Peek, m.Height)
	}
	m.Release(700, 700, h)
	if m.Peek != Minimized {
		t.Errorf("fast release gave %v, want Minimized", m.Peek)
	}
}
