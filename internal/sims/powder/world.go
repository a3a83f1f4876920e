package powder

import (
	"fmt"
	"sync"

	"powder-sandbox/internal/core"
)

// World is the sandbox facade front-ends drive: it owns the grid, the
// engine and the random stream, and serializes every operation so a caller
// never observes a partial tick.
type World struct {
	mu sync.Mutex

	cfg     Config
	grid    *Grid
	engine  *Engine
	rng     *core.RNG
	display *core.ByteGrid
	ticks   int
}

// Snapshot is a point-in-time copy of the grid.
type Snapshot struct {
	Width  int
	Height int
	Tick   int
	Cells  []Cell
}

// At returns the cell at (x, y), or an empty cell outside the snapshot.
func (s Snapshot) At(x, y int) Cell {
	if x < 0 || y < 0 || x >= s.Width || y >= s.Height {
		return Cell{}
	}
	return s.Cells[y*s.Width+x]
}

// Census counts cells per material.
type Census [NumMaterials]int

// Count returns the number of cells holding m.
func (c Census) Count(m Material) int {
	if !m.Valid() {
		return 0
	}
	return c[m]
}

// Occupied returns the number of non-empty cells.
func (c Census) Occupied() int {
	total := 0
	for m, n := range c {
		if Material(m) != Empty {
			total += n
		}
	}
	return total
}

// New returns a sandbox with the provided dimensions using defaults.
func New(w, h int) (*World, error) {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a sandbox reset with the configured seed and preset.
func NewWithConfig(cfg Config) (*World, error) {
	if err := cfg.Params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid params: %w", err)
	}
	grid, err := NewGrid(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	w := &World{
		cfg:     cfg,
		grid:    grid,
		engine:  NewEngine(cfg.Params),
		rng:     core.NewRNG(cfg.Seed),
		display: core.NewByteGrid(cfg.Width, cfg.Height),
	}
	w.Reset(0)
	return w, nil
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "powder" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size {
	w.mu.Lock()
	defer w.mu.Unlock()
	return core.Size{W: w.grid.w, H: w.grid.h}
}

// Config returns the active configuration.
func (w *World) Config() Config {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.cfg
}

// Reset clears the grid, restarts the random stream and re-applies the
// configured preset. A zero seed falls back to the configured seed.
func (w *World) Reset(seed int64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.rng.Seed(effective)
	w.grid.Clear()
	w.ticks = 0
	applyPreset(w.grid, w.cfg.Preset, effective, w.rng)
}

// Step advances the sandbox by one tick.
func (w *World) Step() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.engine.Step(w.grid, w.rng)
	w.ticks++
}

// Tick is an alias of Step.
func (w *World) Tick() { w.Step() }

// Cells exposes the material of every cell as a byte, row-major. The buffer
// is rebuilt on each call and reused between calls.
func (w *World) Cells() []uint8 {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := w.display.Cells()
	for i, c := range w.grid.cells {
		out[i] = uint8(c.Kind)
	}
	return out
}

// Resize discards the grid and reallocates it with the new dimensions.
func (w *World) Resize(width, height int) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.grid.Resize(width, height); err != nil {
		return err
	}
	w.display.Resize(width, height)
	w.cfg.Width, w.cfg.Height = width, height
	return nil
}

// Clear empties every cell.
func (w *World) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.grid.Clear()
}

// Place stamps a disc of kind with radius r centred on (x, y).
func (w *World) Place(x, y, r int, kind Material) {
	w.mu.Lock()
	defer w.mu.Unlock()
	stampCircle(w.grid, x, y, r, kind, &w.cfg.Params)
}

// Erase empties a disc of radius r centred on (x, y).
func (w *World) Erase(x, y, r int) {
	w.Place(x, y, r, Empty)
}

// CastLightning drops a bolt from (x, y).
func (w *World) CastLightning(x, y int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	castLightning(w.grid, x, y, &w.cfg.Params)
}

// Explode detonates a blast of radius r centred on (x, y).
func (w *World) Explode(x, y, r int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	explode(w.grid, w.rng, x, y, r, &w.cfg.Params)
}

// At returns the cell at (x, y).
func (w *World) At(x, y int) Cell {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.grid.At(x, y)
}

// Set overwrites a single cell.
func (w *World) Set(x, y int, c Cell) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.grid.Set(x, y, c)
}

// Snapshot copies the grid.
func (w *World) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	return Snapshot{
		Width:  w.grid.w,
		Height: w.grid.h,
		Tick:   w.ticks,
		Cells:  append([]Cell(nil), w.grid.cells...),
	}
}

// Ticks reports how many ticks ran since the last Reset.
func (w *World) Ticks() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.ticks
}

// Census counts the cells of each material.
func (w *World) Census() Census {
	w.mu.Lock()
	defer w.mu.Unlock()
	var c Census
	for _, cell := range w.grid.cells {
		if cell.Kind.Valid() {
			c[cell.Kind]++
		}
	}
	return c
}

// Params returns the active rule table.
func (w *World) Params() Params {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.cfg.Params
}

// SetParams validates and installs a new rule table.
func (w *World) SetParams(p Params) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.cfg.Params = p
	w.engine.SetParams(p)
	return nil
}

func init() {
	core.Register("powder", func(cfg map[string]string) (core.Sim, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return nil, err
		}
		w, err := NewWithConfig(c)
		if err != nil {
			return nil, err
		}
		return w, nil
	})
}
