// Package ui draws the window front-end's parameter panel and overlays.
package ui

import (
	"fmt"
	"image"

	"powder-sandbox/internal/core"
	"powder-sandbox/internal/sims/powder"
)

const (
	panelPadding   = 12
	lineHeight     = 30
	buttonSize     = 20
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 20
	statusSpacing  = 18
	controlsTop    = panelPadding + headerBaseline + 2*statusSpacing + 8
)

// adjust steps current by ctrl.Step in direction dir, clamped to the
// control's bounds. It reports false when the value would not change.
func adjust(ctrl core.ParameterControl, current, dir int) (int, bool) {
	if dir == 0 {
		return current, false
	}
	step := ctrl.Step
	if step <= 0 {
		step = 1
	}
	target := current + dir*step
	if ctrl.Min <= ctrl.Max {
		target = min(max(target, ctrl.Min), ctrl.Max)
	}
	return target, target != current
}

// controlRects lays out the minus and plus buttons of row i in a panel of
// the given width, shifted up by scroll pixels.
func controlRects(i, width, scroll int) (top int, minus, plus image.Rectangle) {
	top = controlsTop + i*lineHeight - scroll
	buttonY := top + (lineHeight-buttonSize)/2
	plus = image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
	minus = image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
	return top, minus, plus
}

// maxScroll is the furthest the control list can scroll in a panel of the
// given height.
func maxScroll(rows, height int) int {
	content := controlsTop + rows*lineHeight + panelPadding
	return max(0, content-height)
}

type censusProvider interface {
	Census() powder.Census
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return image.Pt(x, y).In(rect)
}

// censusLines lists the non-empty materials with their cell counts in
// declaration order.
func censusLines(c powder.Census) []string {
	var lines []string
	for _, m := range powder.Materials() {
		if m == powder.Empty || c.Count(m) == 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf("%-10s %6d", m, c.Count(m)))
	}
	return lines
}
