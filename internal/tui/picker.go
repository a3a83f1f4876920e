package tui

import (
	"github.com/gdamore/tcell/v2"

	"powder-sandbox/internal/sims/powder"
)

const (
	pickerHint  = "Left/Right: tabs | Up/Down: select | Enter: choose | ESC: back"
	creditsHint = "Press any key to return."
)

var creditLines = []string{
	"Terminal Powder Toy-like Sandbox",
	"Author: Robert",
	"GitHub: https://github.com/RobertFlexx",
	"",
	"BSD 3-Clause License (snippet):",
	"Redistribution and use in source and binary forms,",
	"with or without modification, are permitted provided",
	"that the following conditions are met:",
	"1) Source redistributions retain this notice & disclaimer.",
	"2) Binary redistributions reproduce this notice & disclaimer.",
	"3) Names of contributors can't be used to endorse products",
	"   derived from this software without permission.",
}

// picker is the tabbed material browser. The tab after the material
// categories holds the credits entry.
type picker struct {
	tabs    []powder.Category
	tab     int
	sel     int
	credits bool
}

// newPicker opens the browser on the tab holding current, with current
// highlighted.
func newPicker(current powder.Material) *picker {
	p := &picker{tabs: powder.Categories()}
	for i, c := range p.tabs {
		if c != current.Category() {
			continue
		}
		p.tab = i
		for j, m := range powder.InCategory(c) {
			if m == current {
				p.sel = j
			}
		}
	}
	return p
}

func (p *picker) onCredits() bool { return p.tab == len(p.tabs) }

func (p *picker) items() []powder.Material {
	if p.onCredits() {
		return nil
	}
	return powder.InCategory(p.tabs[p.tab])
}

// handle applies a key press. done reports that the picker should close;
// chosen is valid only when ok is true. While the credits are shown any
// key returns to the browser.
func (p *picker) handle(key tcell.Key) (chosen powder.Material, ok, done bool) {
	if p.credits {
		p.credits = false
		return 0, false, false
	}
	items := p.items()
	n := len(p.tabs) + 1
	switch key {
	case tcell.KeyLeft:
		p.tab = (p.tab + n - 1) % n
		p.sel = 0
	case tcell.KeyRight:
		p.tab = (p.tab + 1) % n
		p.sel = 0
	case tcell.KeyUp:
		if len(items) > 0 {
			p.sel = (p.sel + len(items) - 1) % len(items)
		}
	case tcell.KeyDown:
		if len(items) > 0 {
			p.sel = (p.sel + 1) % len(items)
		}
	case tcell.KeyEnter:
		if p.onCredits() {
			p.credits = true
			return 0, false, false
		}
		if len(items) == 0 {
			return 0, false, true
		}
		return items[p.sel], true, true
	case tcell.KeyEscape:
		return 0, false, true
	}
	return 0, false, false
}

func itemLabel(m powder.Material) string {
	if m == powder.Empty {
		return "Eraser"
	}
	return m.String()
}

// drawBox clears a boxW x boxH area at (lx, ty), frames it and centres
// title on the top edge.
func drawBox(c canvas, lx, ty, boxW, boxH int, title string) {
	rx, by := lx+boxW-1, ty+boxH-1
	for y := ty; y <= by; y++ {
		for x := lx; x <= rx; x++ {
			c.SetContent(x, y, ' ', nil, tcell.StyleDefault)
		}
	}
	for x := lx + 1; x < rx; x++ {
		c.SetContent(x, ty, '-', nil, tcell.StyleDefault)
		c.SetContent(x, by, '-', nil, tcell.StyleDefault)
	}
	for y := ty + 1; y < by; y++ {
		c.SetContent(lx, y, '|', nil, tcell.StyleDefault)
		c.SetContent(rx, y, '|', nil, tcell.StyleDefault)
	}
	for _, corner := range [][2]int{{lx, ty}, {rx, ty}, {lx, by}, {rx, by}} {
		c.SetContent(corner[0], corner[1], '+', nil, tcell.StyleDefault)
	}
	putString(c, lx+max(0, (boxW-len(title))/2), ty, boxW-2, title, tcell.StyleDefault)
}

// draw renders the browser box centred in a width x height screen, with the
// credits on top when they are open.
func (p *picker) draw(c canvas, width, height int) {
	boxW := min(max(44, width-6), width)
	boxH := min(max(14, height-6), height)
	if boxW < 4 || boxH < 6 {
		return
	}
	lx, ty := (width-boxW)/2, (height-boxH)/2
	rx, by := lx+boxW-1, ty+boxH-1
	drawBox(c, lx, ty, boxW, boxH, " Element Browser ")

	reverse := tcell.StyleDefault.Reverse(true)
	cx := lx + 2
	for i := 0; i <= len(p.tabs); i++ {
		name := "Credits"
		if i < len(p.tabs) {
			name = p.tabs[i].String()
		}
		tab := " " + name + " "
		if cx+len(tab) >= rx {
			break
		}
		style := tcell.StyleDefault
		if i == p.tab {
			style = reverse
		}
		cx += putString(c, cx, ty+1, rx-cx-1, tab, style) + 1
	}

	y := ty + 3
	if p.onCredits() {
		putString(c, lx+2, y, boxW-4, " Credits - Show credits & license.", reverse)
	}
	for i, m := range p.items() {
		if y > by-3 {
			break
		}
		style := tcell.StyleDefault
		if i == p.sel {
			style = reverse
		}
		putString(c, lx+2, y, boxW-4, " "+itemLabel(m)+" - "+m.Description(), style)
		y++
	}
	putString(c, lx+2, by-1, boxW-4, pickerHint, tcell.StyleDefault)

	if p.credits {
		drawCredits(c, width, height)
	}
}

func drawCredits(c canvas, width, height int) {
	if width < 40 || height < 12 {
		return
	}
	boxW := min(width-4, 70)
	boxH := min(height-4, len(creditLines)+5)
	lx, ty := (width-boxW)/2, (height-boxH)/2
	by := ty + boxH - 1
	drawBox(c, lx, ty, boxW, boxH, " Credits ")
	y := ty + 2
	for _, line := range creditLines {
		if y >= by-1 {
			break
		}
		putString(c, lx+2, y, boxW-4, line, tcell.StyleDefault)
		y++
	}
	putString(c, lx+2, by-1, boxW-4, creditsHint, tcell.StyleDefault)
}
