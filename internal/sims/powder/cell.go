package powder

// Cell is one grid position: a material and its per-kind counter. The
// meaning of Life depends on Kind; see Material.LifeRole.
type Cell struct {
	Kind Material
	Life int
}

func (c *Cell) set(kind Material, life int) {
	c.Kind = kind
	if life < 0 {
		life = 0
	}
	c.Life = life
}

// raise lifts Life to at least v.
func (c *Cell) raise(v int) {
	if c.Life < v {
		c.Life = v
	}
}

// decay decrements Life, clamping at zero, and returns the remainder.
func (c *Cell) decay() int {
	if c.Life > 0 {
		c.Life--
	}
	return c.Life
}

// Charged reports whether the cell carries electrical charge.
func (c Cell) Charged() bool {
	return c.Kind.LifeRole() == LifeCharge && c.Life > 0
}

// chargedWater reports whether the cell is electrified water, which kills agents.
func (c Cell) chargedWater() bool {
	return c.Kind.IsWatery() && c.Life > 0
}

// Glyph returns the character to draw, animating agents from their tick
// counter.
func (c Cell) Glyph() rune {
	switch c.Kind {
	case Human:
		if (c.Life/6)%2 != 0 {
			return 'y'
		}
	case Zombie:
		if (c.Life/6)%2 != 0 {
			return 't'
		}
	}
	return c.Kind.Glyph()
}

// ColorClass returns the colour bucket to draw; charged water glows like a
// bolt.
func (c Cell) ColorClass() ColorClass {
	if c.chargedWater() {
		return ColorChem
	}
	return c.Kind.ColorClass()
}
