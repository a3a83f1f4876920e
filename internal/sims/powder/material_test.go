package powder

import (
	"errors"
	"testing"
)

func TestMaterialCount(t *testing.T) {
	if NumMaterials != 34 {
		t.Fatalf("expected 34 materials, got %d", NumMaterials)
	}
	if got := len(Materials()); got != NumMaterials {
		t.Fatalf("Materials returned %d entries", got)
	}
}

func TestPhasePredicatesArePartition(t *testing.T) {
	for _, m := range Materials() {
		n := 0
		for _, in := range []bool{m.IsPowder(), m.IsLiquid(), m.IsSolid(), m.IsGas()} {
			if in {
				n++
			}
		}
		if n > 1 {
			t.Fatalf("%s belongs to %d phases", m, n)
		}
		special := m == Empty || m == Fire || m == Lightning || m.IsAgent()
		if special != (n == 0) {
			t.Fatalf("%s: special=%v but phases=%d", m, special, n)
		}
	}
}

func TestConductors(t *testing.T) {
	var got []Material
	for _, m := range Materials() {
		if m.IsConductive() {
			got = append(got, m)
		}
	}
	want := []Material{Saltwater, Mercury, Metal, Wire}
	if len(got) != len(want) {
		t.Fatalf("conductors = %v, want %v", got, want)
	}
	for _, m := range want {
		if !m.IsConductive() {
			t.Fatalf("%s should conduct", m)
		}
	}
}

func TestDensityOrdering(t *testing.T) {
	order := []Material{Gas, Steam, Smoke, Chlorine, Ethanol, Oil, Water, Saltwater, Acid, Lava, Mercury}
	for i := 1; i < len(order); i++ {
		if order[i-1].Density() >= order[i].Density() {
			t.Fatalf("expected %s lighter than %s", order[i-1], order[i])
		}
	}
	if Gas.Density() != Hydrogen.Density() {
		t.Fatal("gas and hydrogen should share a density")
	}
	for _, m := range []Material{Empty, Sand, Stone, Wall, Fire, Human} {
		if m.Density() <= Mercury.Density() {
			t.Fatalf("%s density %d must exceed every liquid", m, m.Density())
		}
	}
}

func TestParseMaterialRoundTrip(t *testing.T) {
	for _, m := range Materials() {
		got, err := ParseMaterial(m.String())
		if err != nil {
			t.Fatalf("parse %q: %v", m.String(), err)
		}
		if got != m {
			t.Fatalf("parse %q = %s, want %s", m.String(), got, m)
		}
	}

	aliases := map[string]Material{
		"salt_water": Saltwater,
		"WET-DIRT":   WetDirt,
		"toxicgas":   ToxicGas,
		" Sand ":     Sand,
	}
	for in, want := range aliases {
		got, err := ParseMaterial(in)
		if err != nil || got != want {
			t.Fatalf("parse %q = %s, %v; want %s", in, got, err, want)
		}
	}

	if _, err := ParseMaterial("unobtainium"); !errors.Is(err, ErrUnknownMaterial) {
		t.Fatalf("expected ErrUnknownMaterial, got %v", err)
	}
}

func TestGlyphsAreDistinct(t *testing.T) {
	seen := map[rune]Material{}
	for _, m := range Materials() {
		g := m.Glyph()
		if prev, ok := seen[g]; ok {
			t.Fatalf("%s and %s share glyph %q", prev, m, g)
		}
		seen[g] = m
	}
}

func TestCategories(t *testing.T) {
	total := 0
	for _, c := range Categories() {
		items := InCategory(c)
		if len(items) == 0 {
			t.Fatalf("category %s is empty", c)
		}
		for _, m := range items {
			if m != Empty && m.Category() != c {
				t.Fatalf("%s listed under %s but reports %s", m, c, m.Category())
			}
		}
		total += len(items)
	}
	if total != NumMaterials {
		t.Fatalf("categories list %d materials, want %d", total, NumMaterials)
	}
	special := InCategory(CategorySpecial)
	if special[len(special)-1] != Empty {
		t.Fatal("eraser should close the special tab")
	}
}

func TestLifeRoles(t *testing.T) {
	cases := map[Material]LifeRole{
		Sand:      LifeSubmersion,
		Water:     LifeCharge,
		Saltwater: LifeCharge,
		Wire:      LifeCharge,
		Lava:      LifeAge,
		Smoke:     LifeLifetime,
		Fire:      LifeLifetime,
		Lightning: LifeLifetime,
		WetDirt:   LifeMoisture,
		Zombie:    LifeAnimation,
		Stone:     LifeUnused,
	}
	for m, want := range cases {
		if got := m.LifeRole(); got != want {
			t.Fatalf("%s life role = %d, want %d", m, got, want)
		}
	}
	if (Cell{Kind: Sand, Life: 50}).Charged() {
		t.Fatal("a submerged sand counter must not read as charge")
	}
	if !(Cell{Kind: Wire, Life: 3}).Charged() {
		t.Fatal("wire with life should be charged")
	}
}

func TestCellDisplay(t *testing.T) {
	if g := (Cell{Kind: Human, Life: 6}).Glyph(); g != 'y' {
		t.Fatalf("animated human glyph = %q", g)
	}
	if g := (Cell{Kind: Zombie, Life: 0}).Glyph(); g != 'T' {
		t.Fatalf("zombie glyph = %q", g)
	}
	if c := (Cell{Kind: Water, Life: 4}).ColorClass(); c != ColorChem {
		t.Fatalf("charged water colour = %d", c)
	}
	if c := (Cell{Kind: Water}).ColorClass(); c != ColorWater {
		t.Fatalf("water colour = %d", c)
	}
}
