package powder

import "testing"

// updateAt runs the rule for the single cell at (x, y) outside a full tick.
func updateAt(g *Grid, rng Random, p Params, x, y int) {
	e := NewEngine(p)
	e.g, e.rng = g, rng
	e.mask = make([]bool, g.Width()*g.Height())
	e.update(x, y, g.cell(x, y))
}

func TestFireKeepsScanningAfterQuench(t *testing.T) {
	g := newTestGrid(t, 3, 3)
	g.Set(0, 0, Cell{Kind: Water})
	g.Set(1, 0, Cell{Kind: Stone})
	g.Set(1, 1, Cell{Kind: Fire, Life: 10})
	g.Set(0, 2, Cell{Kind: Wire})
	g.Set(2, 2, Cell{Kind: Wood})

	updateAt(g, scriptedRandom{chance: true}, DefaultParams(), 1, 1)

	if c := g.At(1, 1); c.Kind != Smoke || c.Life != 15 {
		t.Fatalf("quenched fire = %+v", c)
	}
	if c := g.At(2, 2); c.Kind != Fire || c.Life != 15 {
		t.Fatalf("wood after the water in scan order = %+v", c)
	}
	if c := g.At(0, 2); c.Life != 5 {
		t.Fatalf("wire after the water in scan order has charge %d", c.Life)
	}
}

func TestFireScanSurvivesGunpowderBlast(t *testing.T) {
	g := newTestGrid(t, 3, 3)
	g.Set(0, 0, Cell{Kind: Gunpowder})
	g.Set(1, 0, Cell{Kind: Stone})
	g.Set(1, 1, Cell{Kind: Fire, Life: 10})
	g.Set(2, 2, Cell{Kind: Wire})

	updateAt(g, scriptedRandom{chance: true}, DefaultParams(), 1, 1)

	if g.Kind(0, 0) != Fire || g.Kind(1, 0) != Stone {
		t.Fatalf("blast left (0,0)=%s (1,0)=%s", g.Kind(0, 0), g.Kind(1, 0))
	}
	if c := g.At(2, 2); c.Kind != Wire || c.Life != 5 {
		t.Fatalf("wire scanned after the blast = %+v", c)
	}
}

func TestFireChargesConductors(t *testing.T) {
	cases := []struct {
		kind Material
		roll int
		want int
	}{
		{Wire, 5, 5},
		{Wire, 6, 0},
		{Metal, 5, 5},
		{Metal, 6, 0},
	}
	for _, tc := range cases {
		g := newTestGrid(t, 2, 1)
		g.Set(0, 0, Cell{Kind: Fire, Life: 10})
		g.Set(1, 0, Cell{Kind: tc.kind})
		updateAt(g, fixedRoll(tc.roll), DefaultParams(), 0, 0)
		if got := g.At(1, 0).Life; got != tc.want {
			t.Fatalf("%s with roll %d: charge %d, want %d", tc.kind, tc.roll, got, tc.want)
		}
		if c := g.At(0, 0); c.Kind != Fire || c.Life != 9 {
			t.Fatalf("fire should burn down to 9, got %+v", c)
		}
	}
}

func TestFuelBurnLifetimes(t *testing.T) {
	cases := []struct {
		kind Material
		life int
	}{
		{Wood, 25},
		{Coal, 35},
	}
	for _, tc := range cases {
		g := newTestGrid(t, 2, 1)
		g.Set(0, 0, Cell{Kind: Fire, Life: 10})
		g.Set(1, 0, Cell{Kind: tc.kind})
		updateAt(g, scriptedRandom{}, DefaultParams(), 1, 0)
		if c := g.At(1, 0); c.Kind != Fire || c.Life != tc.life {
			t.Fatalf("burning %s = %+v, want fire(%d)", tc.kind, c, tc.life)
		}
	}
}

func TestSnowMeltsNearHeat(t *testing.T) {
	cases := []struct {
		source Material
		want   Material
	}{
		{Fire, Water},
		{Lava, Water},
		{Wall, Snow},
	}
	for _, tc := range cases {
		g := newTestGrid(t, 3, 2)
		for x := 0; x < 3; x++ {
			g.Set(x, 1, Cell{Kind: Stone})
		}
		g.Set(0, 0, Cell{Kind: tc.source, Life: 10})
		g.Set(1, 0, Cell{Kind: Snow})
		updateAt(g, scriptedRandom{}, DefaultParams(), 1, 0)
		if got := g.Kind(1, 0); got != tc.want {
			t.Fatalf("snow next to %s = %s, want %s", tc.source, got, tc.want)
		}
	}
}

func TestRestingGunpowderDetonates(t *testing.T) {
	g := newTestGrid(t, 13, 12)
	for x := 0; x < 13; x++ {
		g.Set(x, 11, Cell{Kind: Stone})
	}
	g.Set(6, 10, Cell{Kind: Gunpowder})
	g.Set(5, 10, Cell{Kind: Fire, Life: 10})

	updateAt(g, fixedRoll(90), DefaultParams(), 6, 10)

	inside := [][2]int{{6, 10}, {5, 10}, {6, 5}, {1, 10}, {11, 10}}
	for _, p := range inside {
		if k := g.Kind(p[0], p[1]); k != Gas {
			t.Fatalf("(%d,%d) inside the blast = %s", p[0], p[1], k)
		}
	}
	outside := [][2]int{{6, 4}, {0, 10}, {12, 10}}
	for _, p := range outside {
		if k := g.Kind(p[0], p[1]); k != Empty {
			t.Fatalf("(%d,%d) outside the blast = %s", p[0], p[1], k)
		}
	}
	if g.Kind(6, 11) != Stone {
		t.Fatal("the stone floor should survive the blast")
	}
}

func TestFallingGunpowderDetonatesWhereItLands(t *testing.T) {
	g := newTestGrid(t, 3, 3)
	for x := 0; x < 3; x++ {
		g.Set(x, 2, Cell{Kind: Stone})
	}
	g.Set(1, 0, Cell{Kind: Gunpowder})
	g.Set(0, 1, Cell{Kind: Fire, Life: 10})

	updateAt(g, fixedRoll(90), DefaultParams(), 1, 0)

	if countKind(g, Gunpowder) != 0 || g.Kind(1, 1) != Gas {
		t.Fatalf("landed gunpowder should detonate, (1,1) = %s", g.Kind(1, 1))
	}
}

func TestChlorineConvertsPlants(t *testing.T) {
	for _, chance := range []bool{true, false} {
		g := newTestGrid(t, 3, 2)
		for x := 0; x < 3; x++ {
			g.Set(x, 0, Cell{Kind: Wall})
		}
		g.Set(0, 1, Cell{Kind: Plant})
		g.Set(1, 1, Cell{Kind: Chlorine, Life: 10})
		g.Set(2, 1, Cell{Kind: Plant})

		updateAt(g, scriptedRandom{chance: chance}, DefaultParams(), 1, 1)

		want := Cell{Kind: Plant}
		if chance {
			want = Cell{Kind: ToxicGas, Life: 25}
		}
		for _, x := range []int{0, 2} {
			if c := g.At(x, 1); c != want {
				t.Fatalf("chance=%v: plant at %d = %+v, want %+v", chance, x, c, want)
			}
		}
		if c := g.At(1, 1); c.Kind != Chlorine || c.Life != 9 {
			t.Fatalf("chlorine = %+v", c)
		}
	}
}

func TestPlantSproutsOnWetDirt(t *testing.T) {
	cases := []struct {
		soil Material
		want Material
	}{
		{WetDirt, Plant},
		{Dirt, Empty},
		{Stone, Empty},
	}
	for _, tc := range cases {
		g := newTestGrid(t, 1, 3)
		g.Set(0, 1, Cell{Kind: Plant})
		g.Set(0, 2, Cell{Kind: tc.soil, Life: 300})
		updateAt(g, scriptedRandom{chance: true}, DefaultParams(), 0, 1)
		if got := g.Kind(0, 0); got != tc.want {
			t.Fatalf("above a plant on %s = %s, want %s", tc.soil, got, tc.want)
		}
	}
}

func TestSeaweedGrowsFromTopSegment(t *testing.T) {
	g := newTestGrid(t, 1, 4)
	g.Set(0, 0, Cell{Kind: Water})
	g.Set(0, 1, Cell{Kind: Seaweed})
	g.Set(0, 2, Cell{Kind: Seaweed})
	g.Set(0, 3, Cell{Kind: Sand})
	rng := scriptedRandom{chance: true}

	updateAt(g, rng, DefaultParams(), 0, 2)
	if g.Kind(0, 0) != Water || g.Kind(0, 1) != Seaweed {
		t.Fatal("a submerged lower segment must not grow")
	}
	updateAt(g, rng, DefaultParams(), 0, 1)
	if g.Kind(0, 0) != Seaweed {
		t.Fatalf("water above the top segment = %s", g.Kind(0, 0))
	}
}

func TestFlammableLiquidsIgnite(t *testing.T) {
	for _, kind := range []Material{Oil, Ethanol} {
		g := newTestGrid(t, 3, 2)
		for x := 0; x < 3; x++ {
			g.Set(x, 1, Cell{Kind: Stone})
		}
		g.Set(0, 0, Cell{Kind: Fire, Life: 10})
		g.Set(1, 0, Cell{Kind: kind})
		g.Set(2, 0, Cell{Kind: Wall})
		updateAt(g, scriptedRandom{}, DefaultParams(), 1, 0)
		if c := g.At(1, 0); c.Kind != Fire || c.Life != 25 {
			t.Fatalf("%s next to fire = %+v", kind, c)
		}
	}
}

func TestLightningChargesAndIgnites(t *testing.T) {
	g := newTestGrid(t, 5, 5)
	g.Set(2, 2, Cell{Kind: Lightning, Life: 2})
	g.Set(0, 0, Cell{Kind: Wire})
	g.Set(4, 0, Cell{Kind: Metal})
	g.Set(0, 2, Cell{Kind: Wire, Life: 20})
	g.Set(0, 4, Cell{Kind: Water})
	g.Set(4, 4, Cell{Kind: Saltwater, Life: 3})
	g.Set(2, 0, Cell{Kind: Wood})

	updateAt(g, scriptedRandom{}, DefaultParams(), 2, 2)

	checks := []struct {
		x, y int
		want Cell
	}{
		{0, 0, Cell{Kind: Wire, Life: 12}},
		{4, 0, Cell{Kind: Metal, Life: 12}},
		{0, 2, Cell{Kind: Wire, Life: 20}},
		{0, 4, Cell{Kind: Water, Life: 8}},
		{4, 4, Cell{Kind: Saltwater, Life: 8}},
		{2, 0, Cell{Kind: Fire, Life: 20}},
		{2, 2, Cell{Kind: Lightning, Life: 1}},
	}
	for _, c := range checks {
		if got := g.At(c.x, c.y); got != c.want {
			t.Fatalf("(%d,%d) = %+v, want %+v", c.x, c.y, got, c.want)
		}
	}
}

func TestLightningDetonatesGunpowder(t *testing.T) {
	g := newTestGrid(t, 15, 16)
	g.Set(7, 7, Cell{Kind: Lightning, Life: 2})
	g.Set(7, 9, Cell{Kind: Gunpowder})

	updateAt(g, fixedRoll(1), DefaultParams(), 7, 7)

	for _, p := range [][2]int{{7, 9}, {7, 7}, {7, 3}, {1, 9}, {13, 9}, {7, 15}} {
		if k := g.Kind(p[0], p[1]); k != Fire {
			t.Fatalf("(%d,%d) inside the blast = %s", p[0], p[1], k)
		}
	}
	for _, p := range [][2]int{{7, 2}, {0, 9}, {14, 9}} {
		if k := g.Kind(p[0], p[1]); k != Empty {
			t.Fatalf("(%d,%d) outside the blast = %s", p[0], p[1], k)
		}
	}
}

func TestLightningScanSurvivesOwnBlast(t *testing.T) {
	for _, gas := range []Material{Gas, Hydrogen} {
		g := newTestGrid(t, 9, 9)
		g.Set(3, 3, Cell{Kind: gas, Life: 20})
		g.Set(4, 4, Cell{Kind: Lightning, Life: 2})
		g.Set(5, 5, Cell{Kind: Wire})

		updateAt(g, scriptedRandom{}, DefaultParams(), 4, 4)

		if g.Kind(4, 4) != Fire {
			t.Fatalf("%s blast should consume the bolt, got %s", gas, g.Kind(4, 4))
		}
		if c := g.At(5, 5); c.Kind != Wire || c.Life != 12 {
			t.Fatalf("wire scanned after the %s blast = %+v", gas, c)
		}
		if g.Kind(7, 3) != Fire || g.Kind(8, 3) != Empty {
			t.Fatalf("%s blast radius: (7,3)=%s (8,3)=%s", gas, g.Kind(7, 3), g.Kind(8, 3))
		}
	}
}

func TestChargedWireReactions(t *testing.T) {
	cases := []struct {
		neighbor Material
		roll     int
		want     Material
	}{
		{Wood, 15, Fire},
		{Wood, 16, Wood},
		{Gunpowder, 15, Fire},
		{Gunpowder, 16, Gunpowder},
		{Gas, 35, Fire},
		{Gas, 36, Gas},
		{Hydrogen, 35, Fire},
		{Hydrogen, 36, Hydrogen},
	}
	for _, tc := range cases {
		g := newTestGrid(t, 3, 1)
		g.Set(0, 0, Cell{Kind: tc.neighbor, Life: 20})
		g.Set(1, 0, Cell{Kind: Wire, Life: 10})

		updateAt(g, fixedRoll(tc.roll), DefaultParams(), 1, 0)

		if got := g.Kind(0, 0); got != tc.want {
			t.Fatalf("%s with roll %d = %s, want %s", tc.neighbor, tc.roll, got, tc.want)
		}
		if c := g.At(1, 0); c.Kind != Wire || c.Life != 9 {
			t.Fatalf("wire after discharge = %+v", c)
		}
	}
}
