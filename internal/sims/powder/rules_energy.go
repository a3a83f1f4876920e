package powder

func (e *Engine) updateFire(x, y int, c *Cell) {
	p := &e.params
	cx, cy := x, y
	if e.openOrGas(x, y-1) && e.rng.Chance(p.FireRiseChance) {
		cx, cy, c = e.move(x, y, x, y-1)
	}

	quenched := false
	e.neighbors(cx, cy, 1, func(nx, ny int, n *Cell) bool {
		if n.Kind.IsFlammable() && e.rng.Chance(p.FireIgniteChance) {
			if n.Kind == Gunpowder {
				e.explode(nx, ny, p.GunpowderBlastRadius)
				return true
			}
			n.set(Fire, e.rng.Range(p.FireLifeMin, p.FireLifeMax))
		}
		if n.Kind.IsWatery() {
			quenched = true
		}
		if (n.Kind == Wire || n.Kind == Metal) && e.rng.Chance(p.FireChargeChance) {
			n.raise(p.FireChargeLevel)
		}
		return true
	})
	if c.Kind != Fire {
		return
	}
	if quenched {
		c.set(Smoke, p.FireSmokeLife)
		return
	}
	if c.decay() == 0 {
		c.set(Smoke, p.FireSmokeLife)
	}
}

func (e *Engine) updateLightning(x, y int, c *Cell) {
	p := &e.params
	e.neighbors(x, y, 2, func(nx, ny int, n *Cell) bool {
		switch {
		case n.Kind == Wire || n.Kind == Metal:
			n.raise(p.LightningWireCharge)
		case n.Kind.IsWatery():
			n.raise(p.LightningWaterCharge)
		case n.Kind == Gunpowder:
			e.explode(nx, ny, p.LightningBlastRadius)
		case n.Kind.IsFlammable():
			n.set(Fire, e.rng.Range(p.LightningFireMin, p.LightningFireMax))
		case n.Kind == Hydrogen || n.Kind == Gas:
			e.explode(nx, ny, p.HydrogenBlastRadius)
		}
		return true
	})
	if c.Kind != Lightning {
		return
	}
	if c.decay() == 0 {
		c.set(Empty, 0)
	}
}

func (e *Engine) updateConductor(x, y int, c *Cell) {
	if c.Life <= 0 {
		return
	}
	p := &e.params
	q := c.Life
	e.neighbors(x, y, 1, func(nx, ny int, n *Cell) bool {
		switch {
		case n.Kind == Wire || n.Kind == Metal || n.Kind.IsWatery():
			n.raise(q - 1)
		case n.Kind.IsFlammable() && e.rng.Chance(p.WireIgniteChance):
			if n.Kind == Gunpowder {
				e.explode(nx, ny, p.GunpowderBlastRadius)
			} else {
				n.set(Fire, e.rng.Range(p.FireLifeMin, p.FireLifeMax))
			}
		case (n.Kind == Hydrogen || n.Kind == Gas) && e.rng.Chance(p.WireBlastChance):
			e.explode(nx, ny, p.HydrogenBlastRadius)
		}
		return true
	})
	c.decay()
}
