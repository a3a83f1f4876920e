// Package tui is the terminal front-end of the sandbox, drawn with tcell.
package tui

import (
	"context"
	"io"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"powder-sandbox/internal/core"
	"powder-sandbox/internal/session"
	"powder-sandbox/internal/sims/powder"
)

const frameInterval = 16 * time.Millisecond

// App couples a tcell screen to a sandbox world. The grid always spans the
// terminal width and its height minus the status rows.
type App struct {
	screen tcell.Screen
	world  *powder.World
	sess   *session.Session
	pacer  *core.FixedStep
	picker *picker
	logger *log.Logger
	quit   bool
}

// New sizes world to the screen and returns an App ready to Run. A nil
// logger discards diagnostics.
func New(screen tcell.Screen, world *powder.World, tps int, logger *log.Logger) *App {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	size := world.Size()
	a := &App{
		screen: screen,
		world:  world,
		sess:   session.New(size.W, size.H),
		pacer:  core.NewFixedStep(tps),
		logger: logger,
	}
	a.resize()
	return a
}

// Session exposes the tool state.
func (a *App) Session() *session.Session { return a.sess }

// resize matches the grid to the terminal. The world is reset because a
// resize discards its contents.
func (a *App) resize() {
	w, h := a.screen.Size()
	w, simH := max(1, w), max(1, h-statusRows)
	if size := a.world.Size(); size.W != w || size.H != simH {
		if err := a.world.Resize(w, simH); err != nil {
			a.logger.Printf("resize to %dx%d failed: %v", w, simH, err)
			return
		}
		a.world.Reset(0)
		a.logger.Printf("grid resized to %dx%d", w, simH)
	}
	a.sess.SetBounds(w, simH)
}

// Run processes input and advances the world until the user quits or ctx is
// cancelled. The caller owns the screen and must Fini it afterwards.
func (a *App) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	a.draw()
	for !a.quit {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			a.handleEvent(ev)
		case <-ticker.C:
			a.tick()
			a.draw()
		}
	}
	a.logger.Printf("quit after %d ticks", a.world.Ticks())
	return nil
}

func (a *App) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		a.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		a.screen.Sync()
		a.resize()
	}
}

func (a *App) handleKey(key tcell.Key, r rune) {
	if a.picker != nil {
		if m, ok, done := a.picker.handle(key); done {
			if ok {
				a.sess.SetTool(m)
			}
			a.picker = nil
		}
		return
	}
	switch key {
	case tcell.KeyCtrlC:
		a.quit = true
	case tcell.KeyLeft:
		a.sess.MoveCursor(-1, 0)
	case tcell.KeyRight:
		a.sess.MoveCursor(1, 0)
	case tcell.KeyUp:
		a.sess.MoveCursor(0, -1)
	case tcell.KeyDown:
		a.sess.MoveCursor(0, 1)
	case tcell.KeyTab:
		a.picker = newPicker(a.sess.Tool())
	case tcell.KeyRune:
		a.handleRune(r)
	}
}

func (a *App) handleRune(r rune) {
	switch r {
	case 'q', 'Q':
		a.quit = true
	case 'a', 'A':
		a.sess.MoveCursor(-1, 0)
	case 'd':
		a.sess.MoveCursor(1, 0)
	case 'w':
		a.sess.MoveCursor(0, -1)
	case 's', 'S':
		a.sess.MoveCursor(0, 1)
	case ' ':
		a.sess.Paint(a.world)
	case 'e', 'E':
		a.sess.Erase(a.world)
	case '+', '=':
		a.sess.GrowBrush()
	case '-', '_':
		a.sess.ShrinkBrush()
	case 'c', 'C', 'x', 'X':
		a.world.Clear()
	case 'p', 'P':
		a.sess.TogglePause()
	case '.':
		a.sess.RequestStep()
	case 'm', 'M':
		a.picker = newPicker(a.sess.Tool())
	default:
		a.sess.SelectHotkey(r)
	}
}

// tick advances the world when the pacer and the session allow it. The
// world is frozen while the picker is open.
func (a *App) tick() {
	if a.picker != nil || !a.pacer.ShouldStep() {
		return
	}
	if a.sess.ShouldAdvance() {
		a.world.Step()
	}
}

func (a *App) draw() {
	a.screen.Clear()
	w, h := a.screen.Size()
	if a.picker != nil {
		a.picker.draw(a.screen, w, h)
	} else {
		snap := a.world.Snapshot()
		cx, cy := a.sess.Cursor()
		drawGrid(a.screen, snap, cx, cy)
		drawStatus(a.screen, snap.Height, w, h, a.sess.Status(snap.Tick))
	}
	a.screen.Show()
}
