package powder

// Engine advances a grid by one tick at a time. It owns the update mask that
// records which positions were finalized during the current tick.
type Engine struct {
	params Params
	mask   []bool

	g   *Grid
	rng Random

	// visit, when set, is called for every position the scan processes.
	visit func(x, y int)
}

// NewEngine returns an engine driven by the given rule table.
func NewEngine(p Params) *Engine {
	return &Engine{params: p}
}

// Params returns the active rule table.
func (e *Engine) Params() Params { return e.params }

// SetParams replaces the rule table used from the next tick on.
func (e *Engine) SetParams(p Params) { e.params = p }

// Step performs exactly one tick: rows bottom to top, columns left to right,
// each unfinalized position dispatched by its material.
func (e *Engine) Step(g *Grid, rng Random) {
	if g == nil || g.w <= 0 || g.h <= 0 {
		return
	}
	n := g.w * g.h
	if cap(e.mask) < n {
		e.mask = make([]bool, n)
	} else {
		e.mask = e.mask[:n]
		clear(e.mask)
	}
	e.g, e.rng = g, rng
	defer func() { e.g, e.rng = nil, nil }()

	for y := g.h - 1; y >= 0; y-- {
		for x := 0; x < g.w; x++ {
			i := y*g.w + x
			if e.mask[i] {
				continue
			}
			e.mask[i] = true
			if e.visit != nil {
				e.visit(x, y)
			}
			e.update(x, y, &g.cells[i])
		}
	}
}

func (e *Engine) update(x, y int, c *Cell) {
	switch c.Kind {
	case Sand, Gunpowder, Ash, Snow:
		e.updatePowder(x, y, c)
	case Water, Saltwater, Oil, Ethanol, Acid, Lava, Mercury:
		e.updateLiquid(x, y, c)
	case Smoke, Steam, Gas, ToxicGas, Hydrogen, Chlorine:
		e.updateGas(x, y, c)
	case Fire:
		e.updateFire(x, y, c)
	case Lightning:
		e.updateLightning(x, y, c)
	case Human, Zombie:
		e.updateAgent(x, y, c)
	case WetDirt:
		e.updateWetDirt(x, y, c)
	case Plant, Seaweed:
		e.updateGrowth(x, y, c)
	case Wood, Coal:
		e.updateFuel(x, y, c)
	case Wire, Metal:
		e.updateConductor(x, y, c)
	case Ice:
		e.updateIce(x, y, c)
	}
}

// move swaps the cell at (x, y) into (nx, ny), finalizes the destination and
// returns the new position and cell.
func (e *Engine) move(x, y, nx, ny int) (int, int, *Cell) {
	e.g.Swap(x, y, nx, ny)
	e.mask[e.g.Index(nx, ny)] = true
	return nx, ny, e.g.cell(nx, ny)
}

// neighbors calls fn for every in-bounds cell of the (2r+1)x(2r+1) box around
// (x, y), excluding the centre, in row-major order. Returning false stops
// the scan.
func (e *Engine) neighbors(x, y, r int, fn func(nx, ny int, n *Cell) bool) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if !e.g.InBounds(nx, ny) {
				continue
			}
			if !fn(nx, ny, e.g.cell(nx, ny)) {
				return
			}
		}
	}
}

// anyNeighbor reports whether some cell around (x, y) matches pred.
func (e *Engine) anyNeighbor(x, y, r int, pred func(Cell) bool) bool {
	found := false
	e.neighbors(x, y, r, func(_, _ int, n *Cell) bool {
		found = pred(*n)
		return !found
	})
	return found
}

func (e *Engine) open(x, y int) bool {
	return e.g.InBounds(x, y) && e.g.Kind(x, y) == Empty
}

// openOrGas reports whether (x, y) is in bounds and empty or gaseous.
func (e *Engine) openOrGas(x, y int) bool {
	if !e.g.InBounds(x, y) {
		return false
	}
	k := e.g.Kind(x, y)
	return k == Empty || k.IsGas()
}

// sideOrder returns the two horizontal offsets in random order.
func (e *Engine) sideOrder() [2]int {
	if e.rng.Range(0, 1) == 1 {
		return [2]int{1, -1}
	}
	return [2]int{-1, 1}
}

func (e *Engine) explode(x, y, r int) {
	explode(e.g, e.rng, x, y, r, &e.params)
}

func isHeat(m Material) bool { return m == Fire || m == Lava }

func nearHeat(n Cell) bool { return isHeat(n.Kind) }
