package session

import (
	"testing"

	"powder-sandbox/internal/sims/powder"
)

type stroke struct {
	x, y, r int
	kind    powder.Material
}

type recorder struct{ strokes []stroke }

func (r *recorder) Place(x, y, rad int, kind powder.Material) {
	r.strokes = append(r.strokes, stroke{x, y, rad, kind})
}

func TestNewCentresCursor(t *testing.T) {
	s := New(11, 6)
	if x, y := s.Cursor(); x != 5 || y != 3 {
		t.Fatalf("cursor = (%d,%d), want (5,3)", x, y)
	}
	if s.Tool() != powder.Sand || s.Brush() != MinBrush || s.Paused() {
		t.Fatal("unexpected initial state")
	}
}

func TestCursorClamps(t *testing.T) {
	s := New(4, 3)
	s.MoveCursor(-10, 10)
	if x, y := s.Cursor(); x != 0 || y != 2 {
		t.Fatalf("cursor = (%d,%d), want (0,2)", x, y)
	}
	s.SetCursor(3, 0)
	s.SetBounds(2, 2)
	if x, y := s.Cursor(); x != 1 || y != 0 {
		t.Fatalf("cursor after shrink = (%d,%d), want (1,0)", x, y)
	}
	s.SetBounds(0, -5)
	if w, h := s.Bounds(); w != 1 || h != 1 {
		t.Fatalf("bounds = %dx%d, want 1x1", w, h)
	}
}

func TestBrushClamps(t *testing.T) {
	s := New(10, 10)
	s.ShrinkBrush()
	if s.Brush() != MinBrush {
		t.Fatalf("brush = %d, want %d", s.Brush(), MinBrush)
	}
	for i := 0; i < 20; i++ {
		s.GrowBrush()
	}
	if s.Brush() != MaxBrush {
		t.Fatalf("brush = %d, want %d", s.Brush(), MaxBrush)
	}
	s.SetBrush(3)
	if s.Brush() != 3 {
		t.Fatalf("brush = %d, want 3", s.Brush())
	}
}

func TestPauseAndSingleStep(t *testing.T) {
	s := New(5, 5)
	if !s.ShouldAdvance() {
		t.Fatal("running session should advance")
	}
	s.TogglePause()
	if s.ShouldAdvance() {
		t.Fatal("paused session should not advance")
	}
	s.RequestStep()
	if !s.ShouldAdvance() {
		t.Fatal("single step should advance once")
	}
	if s.ShouldAdvance() {
		t.Fatal("single step should be consumed")
	}
}

func TestStatusString(t *testing.T) {
	s := New(5, 5)
	if got := s.Status(0).String(); got != "Current: Sand | Brush r=1" {
		t.Fatalf("status = %q", got)
	}
	s.TogglePause()
	if got := s.Status(0).String(); got != "Current: Sand | Brush r=1 [PAUSED]" {
		t.Fatalf("status = %q", got)
	}
	s.SetTool(powder.Saltwater)
	s.SetBrush(4)
	st := s.Status(42)
	if st.Tick != 42 || st.CursorX != 2 || st.CursorY != 2 {
		t.Fatalf("status fields = %+v", st)
	}
	if got := st.String(); got != "Current: Salt Water | Brush r=4 [PAUSED]" {
		t.Fatalf("status = %q", got)
	}
}

func TestHotkeys(t *testing.T) {
	cases := []struct {
		key  rune
		want powder.Material
	}{
		{'1', powder.Sand},
		{'0', powder.Acid},
		{'W', powder.Wall},
		{'L', powder.Lightning},
		{'h', powder.Human},
		{'Z', powder.Zombie},
		{'D', powder.Dirt},
	}
	s := New(3, 3)
	for _, tc := range cases {
		if !s.SelectHotkey(tc.key) || s.Tool() != tc.want {
			t.Fatalf("hotkey %q selected %s, want %s", tc.key, s.Tool(), tc.want)
		}
	}
	if s.SelectHotkey('d') {
		t.Fatal("'d' is a movement key, not a material")
	}
	if s.SetTool(powder.Material(200)) || s.Tool() != powder.Dirt {
		t.Fatal("invalid tool should be ignored")
	}
}

func TestPaintAndErase(t *testing.T) {
	s := New(9, 9)
	s.SetTool(powder.Oil)
	s.SetBrush(2)
	var r recorder
	s.Paint(&r)
	s.Erase(&r)
	want := []stroke{{4, 4, 2, powder.Oil}, {4, 4, 2, powder.Empty}}
	if len(r.strokes) != 2 || r.strokes[0] != want[0] || r.strokes[1] != want[1] {
		t.Fatalf("strokes = %+v, want %+v", r.strokes, want)
	}
}

func TestWorldIsPainter(t *testing.T) {
	w, err := powder.New(9, 9)
	if err != nil {
		t.Fatal(err)
	}
	s := New(9, 9)
	s.SetTool(powder.Stone)
	s.Paint(w)
	if w.At(4, 4).Kind != powder.Stone {
		t.Fatal("paint should reach the world")
	}
}
