package powder

import (
	"errors"
	"fmt"
)

// ErrInvalidSize is returned for non-positive grid dimensions.
var ErrInvalidSize = errors.New("invalid grid size")

// Grid is a row-major height x width field of cells with the origin at the
// top-left; y grows downward.
type Grid struct {
	w, h  int
	cells []Cell
}

// NewGrid allocates an empty grid.
func NewGrid(w, h int) (*Grid, error) {
	g := &Grid{}
	if err := g.Resize(w, h); err != nil {
		return nil, err
	}
	return g, nil
}

// Resize discards the contents and reshapes the grid.
func (g *Grid) Resize(w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("resize to %dx%d: %w", w, h, ErrInvalidSize)
	}
	if w*h != len(g.cells) {
		g.cells = make([]Cell, w*h)
	} else {
		g.Clear()
	}
	g.w, g.h = w, h
	return nil
}

// Width reports the number of columns.
func (g *Grid) Width() int { return g.w }

// Height reports the number of rows.
func (g *Grid) Height() int { return g.h }

// Cells exposes the backing slice in row-major order.
func (g *Grid) Cells() []Cell { return g.cells }

// Clear resets every cell to empty.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Cell{}
	}
}

// InBounds reports whether (x, y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.w && y < g.h
}

// Index returns the linear index for (x, y).
func (g *Grid) Index(x, y int) int { return y*g.w + x }

// At returns the cell at (x, y), or an empty cell outside the grid.
func (g *Grid) At(x, y int) Cell {
	if !g.InBounds(x, y) {
		return Cell{}
	}
	return g.cells[y*g.w+x]
}

// Set writes a cell; out-of-bounds writes are ignored.
func (g *Grid) Set(x, y int, c Cell) {
	if !g.InBounds(x, y) {
		return
	}
	if c.Life < 0 {
		c.Life = 0
	}
	g.cells[y*g.w+x] = c
}

// Swap exchanges two cells by value. It is a no-op if either is out of bounds.
func (g *Grid) Swap(ax, ay, bx, by int) {
	if !g.InBounds(ax, ay) || !g.InBounds(bx, by) {
		return
	}
	a, b := ay*g.w+ax, by*g.w+bx
	g.cells[a], g.cells[b] = g.cells[b], g.cells[a]
}

// Kind returns the material at (x, y), or Empty outside the grid.
func (g *Grid) Kind(x, y int) Material {
	if !g.InBounds(x, y) {
		return Empty
	}
	return g.cells[y*g.w+x].Kind
}

// cell returns a pointer to an in-bounds cell; callers check bounds first.
func (g *Grid) cell(x, y int) *Cell { return &g.cells[y*g.w+x] }
