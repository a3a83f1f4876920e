package powder

import (
	"testing"

	"powder-sandbox/internal/core"
)

func TestStampCircleSeedsLifetimes(t *testing.T) {
	g := newTestGrid(t, 9, 9)
	StampCircle(g, 4, 4, 2, Smoke)
	if c := g.At(4, 4); c.Kind != Smoke || c.Life != 25 {
		t.Fatalf("stamped smoke = %+v", c)
	}
	if g.Kind(6, 4) != Smoke || g.Kind(6, 6) == Smoke {
		t.Fatal("stamp must cover the Euclidean disc only")
	}
	StampCircle(g, 4, 4, 0, Fire)
	if c := g.At(4, 4); c.Kind != Fire || c.Life != 20 {
		t.Fatalf("stamped fire = %+v", c)
	}
	StampCircle(g, 0, 0, 3, Stone)
	if c := g.At(0, 0); c.Kind != Stone || c.Life != 0 {
		t.Fatalf("stamped stone = %+v", c)
	}
	StampCircle(g, -20, -20, 2, Wall)
	if countKind(g, Wall) != 0 {
		t.Fatal("off-grid stamps must be clipped")
	}
}

func TestStampLightningCastsBeam(t *testing.T) {
	g := newTestGrid(t, 3, 4)
	StampCircle(g, 1, 0, 3, Lightning)
	if n := countKind(g, Lightning); n != 4 {
		t.Fatalf("lightning brush should cast a single beam, got %d cells", n)
	}
}

func TestExplodeSparesRigidCells(t *testing.T) {
	g := newTestGrid(t, 15, 15)
	for i := range g.Cells() {
		g.Cells()[i] = Cell{Kind: Sand}
	}
	rigid := []Material{Wall, Stone, Glass, Metal, Wire, Ice}
	for i, m := range rigid {
		g.Set(5+i, 7, Cell{Kind: m})
	}

	const r = 4
	Explode(g, core.NewRNG(21), 7, 7, r)

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			dx, dy := x-7, y-7
			inside := dx*dx+dy*dy <= r*r
			k := g.Kind(x, y)
			if y == 7 && x >= 5 && x < 5+len(rigid) {
				if k != rigid[x-5] {
					t.Fatalf("rigid %s at (%d,%d) became %s", rigid[x-5], x, y, k)
				}
				continue
			}
			if !inside {
				if k != Sand {
					t.Fatalf("cell outside blast at (%d,%d) became %s", x, y, k)
				}
				continue
			}
			if k != Fire && k != Smoke && k != Gas {
				t.Fatalf("cell inside blast at (%d,%d) is %s", x, y, k)
			}
		}
	}
}

func TestExplodeOutcomeSplit(t *testing.T) {
	p := DefaultParams()
	g := newTestGrid(t, 1, 1)
	cases := []struct {
		roll int
		want Material
		life int
	}{
		{roll: 50, want: Fire, life: p.ExplodeFireLifeMin},
		{roll: 51, want: Smoke, life: p.ExplodeSmokeLife},
		{roll: 80, want: Smoke, life: p.ExplodeSmokeLife},
		{roll: 81, want: Gas, life: p.ExplodeGasLife},
	}
	for _, tc := range cases {
		explode(g, fixedRoll(tc.roll), 0, 0, 0, &p)
		if c := g.At(0, 0); c.Kind != tc.want || c.Life != tc.life {
			t.Fatalf("roll %d produced %+v, want %s/%d", tc.roll, c, tc.want, tc.life)
		}
	}
}

// fixedRoll answers the 1..100 explosion roll with a constant and every
// other range with its low end.
type fixedRoll int

func (r fixedRoll) Range(lo, hi int) int {
	if lo == 1 && hi == 100 {
		return int(r)
	}
	return lo
}

func (r fixedRoll) Chance(pct int) bool { return int(r) <= pct }

func TestCastLightningColumn(t *testing.T) {
	g := newTestGrid(t, 1, 5)
	CastLightning(g, 0, 0)
	for y := 0; y < 5; y++ {
		if c := g.At(0, y); c.Kind != Lightning || c.Life != 2 {
			t.Fatalf("row %d = %+v", y, c)
		}
	}
}

func TestCastLightningStopsAtObstacleAndChargesWater(t *testing.T) {
	g := newTestGrid(t, 1, 6)
	g.Set(0, 2, Cell{Kind: Smoke, Life: 4})
	g.Set(0, 4, Cell{Kind: Water})
	g.Set(0, 5, Cell{Kind: Stone})
	CastLightning(g, 0, 0)
	for y := 0; y < 4; y++ {
		if g.Kind(0, y) != Lightning {
			t.Fatalf("row %d = %s, beam should pass through gas", y, g.Kind(0, y))
		}
	}
	if c := g.At(0, 4); c.Kind != Water || c.Life != 8 {
		t.Fatalf("water below beam = %+v", c)
	}
	CastLightning(g, 3, 0)
	CastLightning(g, 0, -1)
}

func TestLightningDecaysAfterTwoTicks(t *testing.T) {
	g := newTestGrid(t, 1, 5)
	CastLightning(g, 0, 0)
	e := NewEngine(DefaultParams())
	e.Step(g, scriptedRandom{})
	if countKind(g, Lightning) != 5 {
		t.Fatal("lightning should survive its first tick")
	}
	e.Step(g, scriptedRandom{})
	if countKind(g, Lightning) != 0 {
		t.Fatal("lightning should be gone after two ticks")
	}
}
