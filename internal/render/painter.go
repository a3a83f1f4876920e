//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Missing marks bytes the palette does not cover.
var Missing = color.RGBA{R: 255, G: 0, B: 255, A: 255}

// GridPainter uploads a cell grid to an offscreen image and blits it scaled.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a w x h grid.
func NewGridPainter(w, h int) *GridPainter {
	p := &GridPainter{}
	p.Resize(w, h)
	return p
}

// Resize reallocates the offscreen image when the grid dimensions change.
func (p *GridPainter) Resize(w, h int) {
	w, h = max(w, 1), max(h, 1)
	if p.img != nil && p.w == w && p.h == h {
		return
	}
	p.w, p.h = w, h
	p.img = ebiten.NewImage(w, h)
	p.buf = pixelBuffer(p.buf, w, h)
}

// Blit paints cells with palette onto screen at the given integer scale.
func (p *GridPainter) Blit(screen *ebiten.Image, cells []uint8, palette []color.RGBA, scale int) {
	if len(cells) != p.w*p.h {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	fillPaletteRGBA(p.buf, cells, palette, Missing)
	p.img.WritePixels(p.buf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(p.img, op)
}
