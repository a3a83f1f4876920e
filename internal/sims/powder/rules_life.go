package powder

func (e *Engine) updateAgent(x, y int, c *Cell) {
	p := &e.params
	kind := c.Kind
	foe := Zombie
	if kind == Zombie {
		foe = Human
	}

	if e.anyNeighbor(x, y, 1, func(n Cell) bool { return n.Kind.IsHazard() || n.chargedWater() }) {
		if kind == Human {
			c.set(Ash, 0)
		} else {
			c.set(Fire, p.ZombieDeathLife)
		}
		return
	}

	c.Life++
	if e.openOrGas(x, y+1) {
		e.move(x, y, x, y+1)
		return
	}

	foeX, seen := e.nearest(x, y, foe, p.AgentSightRadius)

	e.neighbors(x, y, 1, func(_, _ int, n *Cell) bool {
		if n.Kind != foe {
			return true
		}
		if kind == Human {
			if !e.rng.Chance(p.HumanFightChance) {
				return true
			}
			if e.rng.Chance(p.HumanTorchChance) {
				n.set(Fire, e.rng.Range(p.TorchLifeMin, p.TorchLifeMax))
			} else {
				n.set(Ash, 0)
			}
			return true
		}
		if e.rng.Chance(p.ZombieInfectChance) {
			n.set(Zombie, 0)
		} else {
			n.set(Fire, p.InfectFireLife)
		}
		return true
	})

	var dir int
	switch {
	case seen && foeX > x:
		dir = 1
	case seen && foeX < x:
		dir = -1
	default:
		dir = direction(e.rng)
	}
	if seen && kind == Human && p.HumanFlee {
		dir = -dir
	}

	if e.walk(x, y, x+dir, y) {
		return
	}
	if e.open(x+dir, y-1) && e.open(x, y-1) && e.rng.Chance(p.AgentClimbChance) {
		e.move(x, y, x+dir, y-1)
		return
	}
	e.walk(x, y, x+direction(e.rng), y)
}

// walk moves an agent into an empty or gaseous cell.
func (e *Engine) walk(x, y, nx, ny int) bool {
	if !e.openOrGas(nx, ny) {
		return false
	}
	e.move(x, y, nx, ny)
	return true
}

// nearest finds the closest cell of kind within Chebyshev distance r and
// returns its column. Ties resolve to the first match in row-major order.
func (e *Engine) nearest(x, y int, kind Material, r int) (int, bool) {
	best, bestX := r+1, 0
	e.neighbors(x, y, r, func(nx, ny int, n *Cell) bool {
		if n.Kind != kind {
			return true
		}
		d := max(abs(nx-x), abs(ny-y))
		if d < best {
			best, bestX = d, nx
		}
		return true
	})
	return bestX, best <= r
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func (e *Engine) updateWetDirt(x, y int, c *Cell) {
	if e.anyNeighbor(x, y, 1, func(n Cell) bool { return n.Kind.IsWatery() }) {
		return
	}
	if c.decay() == 0 {
		c.set(Dirt, 0)
	}
}

func (e *Engine) updateGrowth(x, y int, c *Cell) {
	p := &e.params
	if e.anyNeighbor(x, y, 1, nearHeat) {
		c.set(Fire, p.PlantFireLife)
		return
	}
	switch c.Kind {
	case Plant:
		if e.g.Kind(x, y+1) == WetDirt && e.rng.Chance(p.PlantGrowChance) && e.open(x, y-1) {
			e.g.cell(x, y-1).set(Plant, 0)
		}
	case Seaweed:
		if e.g.Kind(x, y-1).IsWatery() && e.rng.Chance(p.SeaweedGrowChance) {
			e.g.cell(x, y-1).set(Seaweed, 0)
		}
	}
}

func (e *Engine) updateFuel(x, y int, c *Cell) {
	if !e.anyNeighbor(x, y, 1, nearHeat) {
		return
	}
	life := e.params.WoodFireLife
	if c.Kind == Coal {
		life = e.params.CoalFireLife
	}
	c.set(Fire, life)
}

func (e *Engine) updateIce(x, y int, c *Cell) {
	e.neighbors(x, y, 1, func(_, _ int, n *Cell) bool {
		if (isHeat(n.Kind) || n.Kind == Steam) && e.rng.Chance(e.params.IceMeltChance) {
			c.set(Water, 0)
			return false
		}
		return true
	})
}
