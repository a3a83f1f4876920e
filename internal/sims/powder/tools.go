package powder

// StampCircle fills every cell within Euclidean distance r of (cx, cy) with
// kind, seeding gas and fire lifetimes from the stock rule table. Lightning
// is cast as a beam from the centre instead.
func StampCircle(g *Grid, cx, cy, r int, kind Material) {
	p := DefaultParams()
	stampCircle(g, cx, cy, r, kind, &p)
}

// Explode converts every non-rigid cell within radius r of (cx, cy) into
// fire, smoke or neutral gas using the stock rule table.
func Explode(g *Grid, rng Random, cx, cy, r int) {
	p := DefaultParams()
	explode(g, rng, cx, cy, r, &p)
}

// CastLightning drops a bolt from (x, y) down to the first obstruction and
// charges water it lands on.
func CastLightning(g *Grid, x, y int) {
	p := DefaultParams()
	castLightning(g, x, y, &p)
}

func stampCircle(g *Grid, cx, cy, r int, kind Material, p *Params) {
	if !kind.Valid() {
		return
	}
	if kind == Lightning {
		castLightning(g, cx, cy, p)
		return
	}
	if r < 0 {
		r = 0
	}
	life := 0
	switch {
	case kind.IsGas():
		life = p.BrushGasLife
	case kind == Fire:
		life = p.BrushFireLife
	}
	r2 := r * r
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			x, y := cx+dx, cy+dy
			if !g.InBounds(x, y) || dx*dx+dy*dy > r2 {
				continue
			}
			g.cell(x, y).set(kind, life)
		}
	}
}

func explode(g *Grid, rng Random, cx, cy, r int, p *Params) {
	if r < 0 {
		return
	}
	r2 := r * r
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			x, y := cx+dx, cy+dy
			if !g.InBounds(x, y) || dx*dx+dy*dy > r2 {
				continue
			}
			c := g.cell(x, y)
			if c.Kind.IsRigid() {
				continue
			}
			roll := rng.Range(1, 100)
			switch {
			case roll <= p.ExplodeFireChance:
				c.set(Fire, rng.Range(p.ExplodeFireLifeMin, p.ExplodeFireLifeMax))
			case roll <= p.ExplodeFireChance+p.ExplodeSmokeChance:
				c.set(Smoke, p.ExplodeSmokeLife)
			default:
				c.set(Gas, p.ExplodeGasLife)
			}
		}
	}
}

func castLightning(g *Grid, x, y int, p *Params) {
	if !g.InBounds(x, y) {
		return
	}
	end := y
	for end+1 < g.h {
		below := g.Kind(x, end+1)
		if below != Empty && !below.IsGas() {
			break
		}
		end++
	}
	for yy := y; yy <= end; yy++ {
		g.cell(x, yy).set(Lightning, p.LightningLife)
	}
	if g.InBounds(x, end+1) {
		if below := g.cell(x, end+1); below.Kind.IsWatery() {
			below.raise(p.LightningWaterCharge)
		}
	}
}
