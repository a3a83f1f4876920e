//go:build ebiten

package app

import (
	"fmt"
	"time"

	"powder-sandbox/internal/render"
	"powder-sandbox/internal/session"
	"powder-sandbox/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a sandbox to the ebiten.Game interface.
type Game struct {
	sim     Sandbox
	sess    *session.Session
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	scale int
	seed  int64
	chars []rune
}

// New constructs a Game for the provided sandbox.
func New(sim Sandbox, cfg *Config) (*Game, error) {
	if cfg.Scale <= 0 {
		return nil, fmt.Errorf("scale must be positive, got %d", cfg.Scale)
	}
	size := sim.Size()
	return &Game{
		sim:     sim,
		sess:    session.New(size.W, size.H),
		painter: render.NewGridPainter(size.W, size.H),
		hud:     ui.NewHUD(sim, cfg.HUDWidth),
		overlay: ui.NewOverlay(sim, cfg.Scale),
		scale:   cfg.Scale,
		seed:    cfg.Seed,
	}, nil
}

// Reset reinitializes the sandbox with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
}

// Update handles per-frame input and advances the sandbox.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.sess.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && g.sess.Paused() {
		g.sess.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.sess.RequestStep()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) || inpututil.IsKeyJustPressed(ebiten.KeyX) {
		g.sim.Clear()
	}

	g.chars = ebiten.AppendInputChars(g.chars[:0])
	for _, r := range g.chars {
		switch r {
		case '+', '=':
			g.sess.GrowBrush()
		case '-', '_':
			g.sess.ShrinkBrush()
		default:
			g.sess.SelectHotkey(r)
		}
	}

	g.handleMouse()

	size := g.sim.Size()
	g.hud.SetStatus(g.sess.Status(g.sim.Ticks()).String(), fmt.Sprintf("Tick %d | Seed %d", g.sim.Ticks(), g.seed))
	g.hud.Update(size.W * g.scale)
	g.overlay.Update()

	if g.sess.ShouldAdvance() {
		g.sim.Step()
	}
	return nil
}

func (g *Game) handleMouse() {
	size := g.sim.Size()
	mx, my := ebiten.CursorPosition()
	if mx < 0 || my < 0 || mx >= size.W*g.scale || my >= size.H*g.scale {
		return
	}
	g.sess.SetCursor(mx/g.scale, my/g.scale)
	if _, dy := ebiten.Wheel(); dy > 0 {
		g.sess.GrowBrush()
	} else if dy < 0 {
		g.sess.ShrinkBrush()
	}
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		g.sess.Paint(g.sim)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		g.sess.Erase(g.sim)
	}
}

// Draw renders the grid, the brush outline and the parameter panel.
func (g *Game) Draw(screen *ebiten.Image) {
	size := g.sim.Size()
	g.painter.Resize(size.W, size.H)
	g.painter.Blit(screen, g.sim.Cells(), g.sim.Palette(), g.scale)
	cx, cy := g.sess.Cursor()
	g.overlay.Draw(screen, cx, cy, g.sess.Brush())
	g.hud.Draw(screen, size.W*g.scale, size.H*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hud.Width(), s.H * g.scale
}
