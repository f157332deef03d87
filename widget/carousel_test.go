// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"math"
	"testing"
)

func TestCarouselSwipe(t *testing.T) {
	var c Carousel
	c.Swipe(-25, 5)
	if c.Index != 0 {
		t.Fatalf("swipe inside the slop moved to %d", c.Index)
	}
	c.Swipe(-99, 5)
	if c.Index != 0 {
		t.Fatalf("short swipe moved to %d", c.Index)
	}
	c.Swipe(-101, 5)
	if c.Index != 1 {
		t.Fatalf("Index = %d after one step, want 1", c.Index)
	}
	c.Swipe(-150, 5)
	if c.Index != 1 {
		t.Fatalf("Index = %d, want 1 until another 100 units", c.Index)
	}
	c.Swipe(-202, 5)
	if c.Index != 2 {
		t.Fatalf("Index = %d after two steps, want 2", c.Index)
	}
	c.Swipe(-101, 5)
	if c.Index != 1 {
		t.Fatalf("swiping back gave %d, want 1", c.Index)
	}
	c.EndSwipe()
	c.Swipe(-20, 5)
	c.Swipe(-120, 5)
	if c.Index != 2 {
		t.Errorf("new swipe gave %d, want 2", c.Index)
	}
}

func TestCarouselBounds(t *testing.T) {
	c := Carousel{Index: 2}
	c.Advance(5, 3)
	if c.Index != 2 {
		t.Errorf("Advance past the end gave %d", c.Index)
	}
	c.Reduce(-7)
	if c.Index != 0 {
		t.Errorf("Reduce past the start gave %d", c.Index)
	}
}

func TestCarouselCards(t *testing.T) {
	if got := CardOffset(3, 1); got != 500 {
		t.Errorf("CardOffset = %v, want 500", got)
	}
	if got := CardScale(1, 1); got != 1 {
		t.Errorf("current card scale = %v", got)
	}
	if got := CardScale(3, 0); math.Abs(got-0.7) > 1e-9 {
		t.Errorf("CardScale = %v, want 0.7", got)
	}
	if got := CardScale(40, 0); got != 0.1 {
		t.Errorf("far card scale = %v, want 0.1", got)
	}
	c := Carousel{Index: 2}
	orders := make([]int, 5)
	for i := range orders {
		orders[i] = c.CardOrder(i, 5)
	}
	want := []int{8, 9, 11, 4, 3}
	for i := range want {
		if orders[i] != want[i] {
			t.Fatalf("orders = %v, want %v", orders, want)
		}
	}
}
