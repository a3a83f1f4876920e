package powder

import (
	"errors"
	"fmt"
	"strings"
)

// Material enumerates every kind of cell content. The value doubles as the
// render byte exposed through World.Cells.
type Material uint8

const (
	Empty Material = iota

	Sand
	Gunpowder
	Ash
	Snow

	Water
	Saltwater
	Oil
	Ethanol
	Acid
	Lava
	Mercury

	Stone
	Glass
	Wall
	Wood
	Plant
	Metal
	Wire
	Ice
	Coal
	Dirt
	WetDirt
	Seaweed

	Smoke
	Steam
	Gas
	ToxicGas
	Hydrogen
	Chlorine

	Fire
	Lightning
	Human
	Zombie

	materialCount
)

// NumMaterials is the number of distinct material kinds.
const NumMaterials = int(materialCount)

// ErrUnknownMaterial is returned when a material name cannot be resolved.
var ErrUnknownMaterial = errors.New("unknown material")

// nonLiquidDensity sorts every non-liquid below all liquids when compared.
const nonLiquidDensity = 999

var materialNames = [materialCount]string{
	Empty:     "Empty",
	Sand:      "Sand",
	Gunpowder: "Gunpowder",
	Ash:       "Ash",
	Snow:      "Snow",
	Water:     "Water",
	Saltwater: "Salt Water",
	Oil:       "Oil",
	Ethanol:   "Ethanol",
	Acid:      "Acid",
	Lava:      "Lava",
	Mercury:   "Mercury",
	Stone:     "Stone",
	Glass:     "Glass",
	Wall:      "Wall",
	Wood:      "Wood",
	Plant:     "Plant",
	Metal:     "Metal",
	Wire:      "Wire",
	Ice:       "Ice",
	Coal:      "Coal",
	Dirt:      "Dirt",
	WetDirt:   "Wet Dirt",
	Seaweed:   "Seaweed",
	Smoke:     "Smoke",
	Steam:     "Steam",
	Gas:       "Gas",
	ToxicGas:  "Toxic Gas",
	Hydrogen:  "Hydrogen",
	Chlorine:  "Chlorine",
	Fire:      "Fire",
	Lightning: "Lightning",
	Human:     "Human",
	Zombie:    "Zombie",
}

var materialDescriptions = [materialCount]string{
	Empty:     "Place empty space.",
	Sand:      "Classic falling grains.",
	Gunpowder: "Explodes when ignited.",
	Ash:       "Burnt residue.",
	Snow:      "Melts near heat.",
	Water:     "Flows, cools, extinguishes.",
	Saltwater: "Conductive water.",
	Oil:       "Light, flammable.",
	Ethanol:   "Very flammable.",
	Acid:      "Dissolves many materials.",
	Lava:      "Hot molten rock.",
	Mercury:   "Heavy liquid metal.",
	Stone:     "Heavy solid block.",
	Glass:     "From sand + lava.",
	Wall:      "Indestructible barrier.",
	Wood:      "Flammable solid.",
	Plant:     "Grows on wet dirt.",
	Metal:     "Conductive solid.",
	Wire:      "Conductive path.",
	Ice:       "Melts into water.",
	Coal:      "Burns longer.",
	Dirt:      "Gets wet; grows plants.",
	WetDirt:   "Dries over time.",
	Seaweed:   "Grows in water over sand.",
	Smoke:     "Rises; may fall as ash.",
	Steam:     "Condenses to water.",
	Gas:       "Neutral rising gas.",
	ToxicGas:  "Nasty chemical cloud.",
	Hydrogen:  "Very light, explosive.",
	Chlorine:  "Harms plants.",
	Fire:      "Burns & flickers upward.",
	Lightning: "Electrical bolt.",
	Human:     "Walks around, fights zombies.",
	Zombie:    "Chases and infects humans.",
}

// Materials lists every material in declaration order.
func Materials() []Material {
	out := make([]Material, 0, NumMaterials)
	for m := Empty; m < materialCount; m++ {
		out = append(out, m)
	}
	return out
}

// Valid reports whether m is a declared material.
func (m Material) Valid() bool { return m < materialCount }

// String returns the display name.
func (m Material) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Material(%d)", uint8(m))
	}
	return materialNames[m]
}

// Description returns the one-line picker blurb.
func (m Material) Description() string {
	if !m.Valid() {
		return ""
	}
	return materialDescriptions[m]
}

// ParseMaterial resolves a material from its display name or identifier.
// Matching ignores case, spaces, underscores and hyphens, so "Salt Water",
// "salt_water" and "saltwater" are equivalent.
func ParseMaterial(name string) (Material, error) {
	key := normalizeName(name)
	for m := Empty; m < materialCount; m++ {
		if normalizeName(materialNames[m]) == key {
			return m, nil
		}
	}
	return Empty, fmt.Errorf("%w: %q", ErrUnknownMaterial, name)
}

func normalizeName(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch r {
		case ' ', '_', '-':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// IsPowder reports whether m falls under gravity and piles diagonally.
func (m Material) IsPowder() bool {
	switch m {
	case Sand, Gunpowder, Ash, Snow:
		return true
	}
	return false
}

// IsLiquid reports whether m flows and stacks by density.
func (m Material) IsLiquid() bool {
	switch m {
	case Water, Saltwater, Oil, Ethanol, Acid, Lava, Mercury:
		return true
	}
	return false
}

// IsSolid reports whether m is a static solid.
func (m Material) IsSolid() bool {
	switch m {
	case Stone, Glass, Wall, Wood, Plant, Metal, Wire, Ice, Coal, Dirt, WetDirt, Seaweed:
		return true
	}
	return false
}

// IsGas reports whether m rises and decays over a lifetime.
func (m Material) IsGas() bool {
	switch m {
	case Smoke, Steam, Gas, ToxicGas, Hydrogen, Chlorine:
		return true
	}
	return false
}

// IsAgent reports whether m is a mobile human or zombie.
func (m Material) IsAgent() bool { return m == Human || m == Zombie }

// IsFlammable reports whether fire can ignite m.
func (m Material) IsFlammable() bool {
	switch m {
	case Wood, Plant, Oil, Ethanol, Gunpowder, Coal, Seaweed:
		return true
	}
	return false
}

// IsConductive reports whether m carries electricity.
func (m Material) IsConductive() bool {
	switch m {
	case Metal, Wire, Mercury, Saltwater:
		return true
	}
	return false
}

// IsDissolvable reports whether acid eats m.
func (m Material) IsDissolvable() bool {
	switch m {
	case Sand, Stone, Glass, Wood, Plant, Metal, Wire, Ash, Coal, Seaweed, Dirt, WetDirt:
		return true
	}
	return false
}

// IsHazard reports whether touching m kills an agent.
func (m Material) IsHazard() bool {
	switch m {
	case Fire, Lava, Acid, ToxicGas, Chlorine, Lightning:
		return true
	}
	return false
}

// IsWatery reports whether m is fresh or salt water.
func (m Material) IsWatery() bool { return m == Water || m == Saltwater }

// IsRigid reports whether m survives explosions.
func (m Material) IsRigid() bool {
	switch m {
	case Wall, Stone, Glass, Metal, Wire, Ice:
		return true
	}
	return false
}

// Density orders fluids; higher sinks. Every kind without a fluid density
// reports a sentinel above all liquids so liquids never displace it.
func (m Material) Density() int {
	switch m {
	case Gas, Hydrogen:
		return 1
	case Steam:
		return 2
	case Smoke:
		return 3
	case Chlorine:
		return 5
	case Ethanol:
		return 85
	case Oil:
		return 90
	case Water:
		return 100
	case Saltwater:
		return 103
	case Acid:
		return 110
	case Lava:
		return 160
	case Mercury:
		return 200
	}
	return nonLiquidDensity
}

// Category groups materials for the picker.
type Category uint8

const (
	CategoryPowders Category = iota
	CategoryLiquids
	CategorySolids
	CategoryGases
	CategorySpecial
)

// Categories lists the picker tabs in display order.
func Categories() []Category {
	return []Category{CategoryPowders, CategoryLiquids, CategorySolids, CategoryGases, CategorySpecial}
}

func (c Category) String() string {
	switch c {
	case CategoryPowders:
		return "Powders"
	case CategoryLiquids:
		return "Liquids"
	case CategorySolids:
		return "Solids"
	case CategoryGases:
		return "Gases"
	default:
		return "Special"
	}
}

// Category derives the picker tab from the classification predicates.
func (m Material) Category() Category {
	switch {
	case m.IsPowder():
		return CategoryPowders
	case m.IsLiquid():
		return CategoryLiquids
	case m.IsSolid():
		return CategorySolids
	case m.IsGas():
		return CategoryGases
	}
	return CategorySpecial
}

// InCategory lists the materials of a picker tab in declaration order. The
// special tab lists Empty last, as the eraser entry.
func InCategory(c Category) []Material {
	var out []Material
	for m := Sand; m < materialCount; m++ {
		if m.Category() == c {
			out = append(out, m)
		}
	}
	if c == CategorySpecial {
		out = append(out, Empty)
	}
	return out
}

// LifeRole names what a cell's Life counter means for a material.
type LifeRole uint8

const (
	LifeUnused LifeRole = iota
	// LifeSubmersion counts ticks a sand grain spent under still water.
	LifeSubmersion
	// LifeCharge is decaying electrical charge.
	LifeCharge
	// LifeAge counts up until lava solidifies.
	LifeAge
	// LifeLifetime counts down until the cell decays.
	LifeLifetime
	// LifeMoisture counts down until wet dirt dries.
	LifeMoisture
	// LifeAnimation is a cosmetic tick counter for agents.
	LifeAnimation
)

// LifeRole reports how Life is interpreted for m.
func (m Material) LifeRole() LifeRole {
	switch {
	case m == Sand:
		return LifeSubmersion
	case m.IsWatery(), m == Wire, m == Metal:
		return LifeCharge
	case m == Lava:
		return LifeAge
	case m.IsGas(), m == Fire, m == Lightning:
		return LifeLifetime
	case m == WetDirt:
		return LifeMoisture
	case m.IsAgent():
		return LifeAnimation
	}
	return LifeUnused
}

var materialGlyphs = [materialCount]rune{
	Empty:     ' ',
	Sand:      '.',
	Gunpowder: '%',
	Ash:       ';',
	Snow:      ',',
	Water:     '~',
	Saltwater: ':',
	Oil:       'o',
	Ethanol:   'e',
	Acid:      'a',
	Lava:      'L',
	Mercury:   'm',
	Stone:     '#',
	Glass:     '=',
	Wall:      '@',
	Wood:      'w',
	Plant:     'p',
	Metal:     'M',
	Wire:      '-',
	Ice:       'I',
	Coal:      'c',
	Dirt:      'd',
	WetDirt:   'D',
	Seaweed:   'v',
	Smoke:     '^',
	Steam:     '"',
	Gas:       '`',
	ToxicGas:  'x',
	Hydrogen:  '\'',
	Chlorine:  'X',
	Fire:      '*',
	Lightning: '|',
	Human:     'Y',
	Zombie:    'T',
}

// Glyph returns the terminal character drawn for m.
func (m Material) Glyph() rune {
	if !m.Valid() {
		return '?'
	}
	return materialGlyphs[m]
}

// ColorClass buckets materials into the handful of colour pairs a terminal
// can show.
type ColorClass uint8

const (
	ColorNone ColorClass = iota + 1
	ColorEarth
	ColorWater
	ColorSolid
	ColorLife
	ColorDanger
	ColorHaze
	ColorHeavy
	ColorChem
)

// ColorClass reports the colour bucket for m.
func (m Material) ColorClass() ColorClass {
	switch m {
	case Sand, Gunpowder, Snow, Dirt:
		return ColorEarth
	case Water, Saltwater, Steam, Ice, Ethanol:
		return ColorWater
	case Stone, Glass, Wall, Metal, Wire, Coal, WetDirt:
		return ColorSolid
	case Wood, Plant, Seaweed, Human:
		return ColorLife
	case Fire, Lava, Zombie:
		return ColorDanger
	case Smoke, Ash, Gas, Hydrogen:
		return ColorHaze
	case Oil, Mercury:
		return ColorHeavy
	case Acid, ToxicGas, Chlorine, Lightning:
		return ColorChem
	}
	return ColorNone
}
