//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws the brush outline and an optional material census on top of
// the grid view.
type Overlay struct {
	sim        censusProvider
	scale      int
	showCensus bool
}

// NewOverlay constructs an overlay for sim drawn at the given scale.
func NewOverlay(sim censusProvider, scale int) *Overlay {
	return &Overlay{sim: sim, scale: max(scale, 1)}
}

// Update toggles the census readout on F2.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		o.showCensus = !o.showCensus
	}
}

// Draw outlines a brush of radius r centred on grid cell (cx, cy).
func (o *Overlay) Draw(screen *ebiten.Image, cx, cy, r int) {
	s := float32(o.scale)
	x := (float32(cx) + 0.5) * s
	y := (float32(cy) + 0.5) * s
	vector.StrokeCircle(screen, x, y, (float32(r)+0.5)*s, 1, color.RGBA{R: 255, G: 255, B: 255, A: 160}, true)

	if !o.showCensus || o.sim == nil {
		return
	}
	face := basicfont.Face7x13
	for i, line := range censusLines(o.sim.Census()) {
		text.Draw(screen, line, face, 8, 16+i*14, color.RGBA{R: 230, G: 230, B: 200, A: 255})
	}
}
