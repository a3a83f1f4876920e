package ui

import (
	"image"
	"slices"
	"testing"

	"powder-sandbox/internal/core"
	"powder-sandbox/internal/sims/powder"
)

func TestAdjustClampsToBounds(t *testing.T) {
	ctrl := core.ParameterControl{Key: "k", Step: 5, Min: 0, Max: 12}
	cases := []struct {
		current, dir int
		want         int
		changed      bool
	}{
		{current: 5, dir: 1, want: 10, changed: true},
		{current: 10, dir: 1, want: 12, changed: true},
		{current: 12, dir: 1, want: 12, changed: false},
		{current: 3, dir: -1, want: 0, changed: true},
		{current: 0, dir: -1, want: 0, changed: false},
		{current: 7, dir: 0, want: 7, changed: false},
	}
	for _, tc := range cases {
		got, changed := adjust(ctrl, tc.current, tc.dir)
		if got != tc.want || changed != tc.changed {
			t.Fatalf("adjust(%d, %d) = %d, %v; want %d, %v", tc.current, tc.dir, got, changed, tc.want, tc.changed)
		}
	}
	if got, _ := adjust(core.ParameterControl{Min: 0, Max: 100}, 4, 1); got != 5 {
		t.Fatalf("zero step should default to 1, got %d", got)
	}
}

func TestControlRects(t *testing.T) {
	top, minus, plus := controlRects(2, 300, 10)
	if top != controlsTop+2*lineHeight-10 {
		t.Fatalf("top = %d", top)
	}
	if plus.Max.X != 300-panelPadding || minus.Max.X != plus.Min.X-buttonGap {
		t.Fatalf("buttons misplaced: minus %v plus %v", minus, plus)
	}
	if !pointInRect(plus.Min.X, plus.Min.Y, plus) || pointInRect(plus.Max.X, plus.Min.Y, plus) {
		t.Fatal("rects are half-open")
	}
	if pointInRect(0, 0, image.Rectangle{}) {
		t.Fatal("empty rect contains nothing")
	}
}

func TestMaxScroll(t *testing.T) {
	if got := maxScroll(2, 1000); got != 0 {
		t.Fatalf("short list scroll = %d, want 0", got)
	}
	want := controlsTop + 40*lineHeight + panelPadding - 500
	if got := maxScroll(40, 500); got != want {
		t.Fatalf("long list scroll = %d, want %d", got, want)
	}
}

func TestCensusLines(t *testing.T) {
	var c powder.Census
	c[powder.Empty] = 50
	c[powder.Water] = 3
	c[powder.Sand] = 12
	got := censusLines(c)
	want := []string{"Sand           12", "Water           3"}
	if !slices.Equal(got, want) {
		t.Fatalf("census lines = %q, want %q", got, want)
	}
}
