package tui

import (
	"github.com/gdamore/tcell/v2"

	"powder-sandbox/internal/session"
	"powder-sandbox/internal/sims/powder"
)

// statusRows is the number of terminal rows reserved under the grid.
const statusRows = 3

const helpLine = "Move: Arrows/WASD | Space: draw | E: erase | +/-: brush | C/X: clear | " +
	"P: pause | M/Tab: elements | Q: quit"

// canvas is the drawing surface subset of tcell.Screen the renderers need.
type canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

var classColors = map[powder.ColorClass]tcell.Color{
	powder.ColorNone:   tcell.ColorBlack,
	powder.ColorEarth:  tcell.ColorYellow,
	powder.ColorWater:  tcell.ColorAqua,
	powder.ColorSolid:  tcell.ColorWhite,
	powder.ColorLife:   tcell.ColorGreen,
	powder.ColorDanger: tcell.ColorRed,
	powder.ColorHaze:   tcell.ColorFuchsia,
	powder.ColorHeavy:  tcell.ColorBlue,
	powder.ColorChem:   tcell.ColorYellow,
}

func cellStyle(c powder.Cell) tcell.Style {
	color, ok := classColors[c.ColorClass()]
	if !ok {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(color)
}

// drawGrid paints every cell of snap and the cursor marker.
func drawGrid(c canvas, snap powder.Snapshot, cx, cy int) {
	for y := 0; y < snap.Height; y++ {
		for x := 0; x < snap.Width; x++ {
			cell := snap.At(x, y)
			c.SetContent(x, y, cell.Glyph(), nil, cellStyle(cell))
		}
	}
	if cx >= 0 && cy >= 0 && cx < snap.Width && cy < snap.Height {
		c.SetContent(cx, cy, '+', nil, tcell.StyleDefault)
	}
}

// drawStatus writes the separator, the key help and the session status
// starting at row top.
func drawStatus(c canvas, top, width, height int, st session.Status) {
	if top < height {
		for x := 0; x < width; x++ {
			c.SetContent(x, top, '-', nil, tcell.StyleDefault)
		}
	}
	if top+1 < height {
		putString(c, 0, top+1, width, helpLine, tcell.StyleDefault)
	}
	if top+2 < height {
		putString(c, 0, top+2, width, st.String(), tcell.StyleDefault)
	}
}

// putString writes s from (x, y), truncated to limit columns. It returns the
// number of columns written.
func putString(c canvas, x, y, limit int, s string, style tcell.Style) int {
	n := 0
	for _, r := range s {
		if n >= limit {
			break
		}
		c.SetContent(x+n, y, r, nil, style)
		n++
	}
	return n
}
