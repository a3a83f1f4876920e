package powder

func (e *Engine) updatePowder(x, y int, c *Cell) {
	kind := c.Kind
	cx, cy := x, y
	sinkable := func(nx, ny int) bool {
		if !e.g.InBounds(nx, ny) {
			return false
		}
		k := e.g.Kind(nx, ny)
		return k == Empty || k.IsLiquid()
	}
	if sinkable(x, y+1) {
		cx, cy, c = e.move(x, y, x, y+1)
	} else {
		dir := direction(e.rng)
		for _, dx := range [2]int{dir, -dir} {
			if sinkable(x+dx, y+1) {
				cx, cy, c = e.move(x, y, x+dx, y+1)
				break
			}
		}
	}

	switch kind {
	case Snow:
		if e.anyNeighbor(cx, cy, 1, nearHeat) {
			c.set(Water, 0)
		}
	case Gunpowder:
		if e.anyNeighbor(cx, cy, 1, nearHeat) {
			e.explode(cx, cy, e.params.GunpowderBlastRadius)
		}
	case Sand:
		e.seedSeaweed(cx, cy, c)
	}
}

// seedSeaweed counts how long a sand grain has sat under water and, once the
// count passes the threshold, grows seaweed above it unless some already
// grows nearby.
func (e *Engine) seedSeaweed(x, y int, c *Cell) {
	if e.g.Kind(x, y-1) != Water {
		c.Life = 0
		return
	}
	c.Life++
	if c.Life <= e.params.SandSeaweedTicks {
		return
	}
	if !e.anyNeighbor(x, y, 2, func(n Cell) bool { return n.Kind == Seaweed }) {
		e.g.cell(x, y-1).set(Seaweed, 0)
	}
	c.Life = 0
}

func (e *Engine) updateLiquid(x, y int, c *Cell) {
	kind := c.Kind
	density := kind.Density()
	cx, cy := x, y
	moved := false

	if e.g.InBounds(x, y+1) {
		below := e.g.Kind(x, y+1)
		if below == Empty || below.IsGas() || (below.IsLiquid() && density > below.Density()) {
			cx, cy, c = e.move(x, y, x, y+1)
			moved = true
		}
	}
	if !moved {
		for _, dx := range e.sideOrder() {
			nx := x + dx
			if !e.g.InBounds(nx, y) {
				continue
			}
			side := e.g.Kind(nx, y)
			if side == Empty || side.IsGas() ||
				(side.IsLiquid() && density > side.Density() && e.rng.Chance(e.params.LiquidSideDisplaceChance)) {
				cx, cy, c = e.move(x, y, nx, y)
				break
			}
		}
	}

	switch kind {
	case Water, Saltwater:
		e.reactWater(cx, cy, c)
	case Oil, Ethanol:
		if e.anyNeighbor(cx, cy, 1, nearHeat) {
			c.set(Fire, e.params.OilFireLife)
		}
	case Acid:
		e.reactAcid(cx, cy, c)
	case Lava:
		e.reactLava(cx, cy, c)
	}
}

// quench turns a liquid that met its opposite into steam or stone.
func (e *Engine) quench(c *Cell) {
	if e.rng.Chance(e.params.QuenchSteamChance) {
		c.set(Steam, e.params.SteamLife)
	} else {
		c.set(Stone, 0)
	}
}

func (e *Engine) reactWater(x, y int, c *Cell) {
	p := &e.params
	kind := c.Kind
	e.neighbors(x, y, 1, func(_, _ int, n *Cell) bool {
		switch n.Kind {
		case Fire:
			n.set(Smoke, p.QuenchSmokeLife)
		case Lava:
			n.set(Stone, 0)
			e.quench(c)
			return false
		}
		return true
	})
	if c.Kind != kind {
		return
	}

	e.neighbors(x, y, 1, func(_, _ int, n *Cell) bool {
		if n.Kind == Dirt || n.Kind == WetDirt {
			n.set(WetDirt, p.WetDirtMoisture)
		}
		return true
	})

	if c.Life <= 0 {
		return
	}
	q := c.Life
	e.neighbors(x, y, 1, func(_, _ int, n *Cell) bool {
		switch {
		case n.Kind.IsWatery():
			n.raise(q - 1)
		case n.Kind.IsAgent():
			n.set(Ash, 0)
		}
		return true
	})
	c.decay()
}

func (e *Engine) reactAcid(x, y int, c *Cell) {
	p := &e.params
	e.neighbors(x, y, 1, func(_, _ int, n *Cell) bool {
		if n.Kind.IsDissolvable() {
			if e.rng.Chance(p.AcidToxicChance) {
				n.set(ToxicGas, p.ToxicLife)
			} else {
				n.set(Empty, 0)
			}
			if e.rng.Chance(p.AcidConsumeChance) {
				c.set(Empty, 0)
				return false
			}
			return true
		}
		if n.Kind == Water && e.rng.Chance(p.AcidSaltChance) {
			c.set(Saltwater, 0)
			if e.rng.Chance(p.AcidSteamChance) {
				n.set(Steam, p.SteamLife)
			}
			return false
		}
		return true
	})
}

func (e *Engine) reactLava(x, y int, c *Cell) {
	p := &e.params
	e.neighbors(x, y, 1, func(_, _ int, n *Cell) bool {
		switch {
		case n.Kind.IsFlammable():
			n.set(Fire, p.LavaIgniteLife)
		case n.Kind == Sand || n.Kind == Snow:
			n.set(Glass, 0)
		case n.Kind.IsWatery():
			n.set(Stone, 0)
			e.quench(c)
			return false
		case n.Kind == Ice:
			n.set(Water, 0)
		}
		return true
	})
	if c.Kind != Lava {
		return
	}
	c.Life++
	if c.Life > p.LavaMaxAge {
		c.set(Stone, 0)
	}
}

func (e *Engine) updateGas(x, y int, c *Cell) {
	p := &e.params
	kind := c.Kind
	cx, cy := x, y
	moved := false

	steps := 1
	if kind == Hydrogen {
		steps = p.HydrogenRiseSteps
	}
	for i := 0; i < steps && e.open(cx, cy-1); i++ {
		cx, cy, c = e.move(cx, cy, cx, cy-1)
		moved = true
	}
	if !moved {
		for _, dx := range e.sideOrder() {
			ny := cy
			if e.rng.Chance(p.GasSideRiseChance) {
				ny--
			}
			if e.open(cx+dx, ny) {
				cx, cy, c = e.move(cx, cy, cx+dx, ny)
				break
			}
		}
	}

	switch kind {
	case Hydrogen:
		if e.anyNeighbor(cx, cy, 1, nearHeat) {
			e.explode(cx, cy, p.HydrogenBlastRadius)
			return
		}
	case Gas:
		if e.anyNeighbor(cx, cy, 1, nearHeat) {
			c.set(Fire, p.GasFireLife)
			return
		}
	case Chlorine:
		e.neighbors(cx, cy, 1, func(_, _ int, n *Cell) bool {
			if n.Kind == Plant && e.rng.Chance(p.ChlorinePlantChance) {
				n.set(ToxicGas, p.ToxicLife)
			}
			return true
		})
	}

	if c.decay() > 0 {
		return
	}
	switch {
	case kind == Steam && e.rng.Chance(p.SteamCondenseChance):
		c.set(Water, 0)
	case kind == Smoke && e.rng.Chance(p.SmokeAshChance):
		c.set(Ash, 0)
	default:
		c.set(Empty, 0)
	}
}
