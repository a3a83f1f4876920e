// Package session tracks the interactive tool state shared by the sandbox
// front-ends: cursor, selected material, brush size and pause control.
package session

import (
	"fmt"

	"powder-sandbox/internal/sims/powder"
)

// Brush radius bounds.
const (
	MinBrush = 1
	MaxBrush = 8
)

// Painter receives brush strokes. *powder.World satisfies it.
type Painter interface {
	Place(x, y, r int, kind powder.Material)
}

// Session is the front-end tool state. It is not safe for concurrent use;
// front-ends drive it from their input loop.
type Session struct {
	width, height    int
	cursorX, cursorY int

	tool   powder.Material
	brush  int
	paused bool
	step   bool
}

// New returns a session for a w x h grid with the cursor centred, Sand
// selected and the smallest brush.
func New(w, h int) *Session {
	s := &Session{tool: powder.Sand, brush: MinBrush}
	s.SetBounds(w, h)
	s.cursorX, s.cursorY = s.width/2, s.height/2
	return s
}

// SetBounds updates the grid dimensions and pulls the cursor inside them.
func (s *Session) SetBounds(w, h int) {
	s.width, s.height = max(w, 1), max(h, 1)
	s.SetCursor(s.cursorX, s.cursorY)
}

// Bounds reports the grid dimensions the cursor is clamped to.
func (s *Session) Bounds() (int, int) { return s.width, s.height }

// Cursor reports the cursor position.
func (s *Session) Cursor() (int, int) { return s.cursorX, s.cursorY }

// SetCursor moves the cursor to (x, y), clamped to the grid.
func (s *Session) SetCursor(x, y int) {
	s.cursorX = min(max(x, 0), s.width-1)
	s.cursorY = min(max(y, 0), s.height-1)
}

// MoveCursor shifts the cursor by (dx, dy), clamped to the grid.
func (s *Session) MoveCursor(dx, dy int) {
	s.SetCursor(s.cursorX+dx, s.cursorY+dy)
}

// Tool reports the selected material.
func (s *Session) Tool() powder.Material { return s.tool }

// SetTool selects m. Invalid materials are ignored.
func (s *Session) SetTool(m powder.Material) bool {
	if !m.Valid() {
		return false
	}
	s.tool = m
	return true
}

// Brush reports the brush radius.
func (s *Session) Brush() int { return s.brush }

// SetBrush sets the brush radius, clamped to [MinBrush, MaxBrush].
func (s *Session) SetBrush(r int) {
	s.brush = min(max(r, MinBrush), MaxBrush)
}

// GrowBrush widens the brush by one.
func (s *Session) GrowBrush() { s.SetBrush(s.brush + 1) }

// ShrinkBrush narrows the brush by one.
func (s *Session) ShrinkBrush() { s.SetBrush(s.brush - 1) }

// Paused reports whether automatic ticking is suspended.
func (s *Session) Paused() bool { return s.paused }

// TogglePause flips the paused flag.
func (s *Session) TogglePause() { s.paused = !s.paused }

// RequestStep asks for a single tick while paused.
func (s *Session) RequestStep() { s.step = true }

// ShouldAdvance reports whether the front-end should run a tick now and
// consumes any pending single-step request.
func (s *Session) ShouldAdvance() bool {
	if s.step {
		s.step = false
		return true
	}
	return !s.paused
}

// Paint stamps the selected material under the cursor.
func (s *Session) Paint(p Painter) {
	p.Place(s.cursorX, s.cursorY, s.brush, s.tool)
}

// Erase empties the brush area under the cursor.
func (s *Session) Erase(p Painter) {
	p.Place(s.cursorX, s.cursorY, s.brush, powder.Empty)
}

// Status captures the read-only status block shown under the grid.
type Status struct {
	Tool    powder.Material
	Paused  bool
	Brush   int
	CursorX int
	CursorY int
	Tick    int
}

// Status snapshots the session for display.
func (s *Session) Status(tick int) Status {
	return Status{
		Tool:    s.tool,
		Paused:  s.paused,
		Brush:   s.brush,
		CursorX: s.cursorX,
		CursorY: s.cursorY,
		Tick:    tick,
	}
}

func (st Status) String() string {
	out := fmt.Sprintf("Current: %s | Brush r=%d", st.Tool, st.Brush)
	if st.Paused {
		out += " [PAUSED]"
	}
	return out
}
