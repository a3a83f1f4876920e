package powder

import "image/color"

var powderPalette = buildPowderPalette()

// Palette exposes the colour of every material, indexed by the bytes Cells
// returns.
func (w *World) Palette() []color.RGBA {
	return powderPalette
}

func buildPowderPalette() []color.RGBA {
	palette := make([]color.RGBA, NumMaterials)
	for m := Empty; m < materialCount; m++ {
		palette[m] = toRGBA(materialColor(m))
	}
	return palette
}

func toRGBA(c color.NRGBA) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// materialColor returns the window colour of m. Unknown values render magenta.
func materialColor(m Material) color.NRGBA {
	switch m {
	case Empty:
		return color.NRGBA{R: 12, G: 12, B: 16, A: 255}
	case Sand:
		return color.NRGBA{R: 220, G: 196, B: 120, A: 255}
	case Gunpowder:
		return color.NRGBA{R: 120, G: 110, B: 90, A: 255}
	case Snow:
		return color.NRGBA{R: 236, G: 240, B: 248, A: 255}
	case Dirt:
		return color.NRGBA{R: 120, G: 84, B: 50, A: 255}
	case WetDirt:
		return color.NRGBA{R: 78, G: 54, B: 34, A: 255}
	case Water:
		return color.NRGBA{R: 40, G: 110, B: 220, A: 255}
	case Saltwater:
		return color.NRGBA{R: 60, G: 140, B: 200, A: 255}
	case Ethanol:
		return color.NRGBA{R: 170, G: 220, B: 230, A: 255}
	case Steam:
		return color.NRGBA{R: 190, G: 200, B: 210, A: 255}
	case Ice:
		return color.NRGBA{R: 170, G: 220, B: 250, A: 255}
	case Stone:
		return color.NRGBA{R: 128, G: 128, B: 128, A: 255}
	case Glass:
		return color.NRGBA{R: 200, G: 230, B: 235, A: 255}
	case Wall:
		return color.NRGBA{R: 90, G: 90, B: 100, A: 255}
	case Metal:
		return color.NRGBA{R: 160, G: 165, B: 175, A: 255}
	case Wire:
		return color.NRGBA{R: 190, G: 120, B: 70, A: 255}
	case Coal:
		return color.NRGBA{R: 40, G: 40, B: 40, A: 255}
	case Wood:
		return color.NRGBA{R: 110, G: 70, B: 35, A: 255}
	case Plant:
		return color.NRGBA{R: 60, G: 170, B: 70, A: 255}
	case Seaweed:
		return color.NRGBA{R: 30, G: 120, B: 80, A: 255}
	case Human:
		return color.NRGBA{R: 240, G: 200, B: 160, A: 255}
	case Fire:
		return color.NRGBA{R: 255, G: 130, B: 40, A: 255}
	case Lava:
		return color.NRGBA{R: 255, G: 90, B: 40, A: 255}
	case Zombie:
		return color.NRGBA{R: 110, G: 160, B: 90, A: 255}
	case Smoke:
		return color.NRGBA{R: 90, G: 90, B: 95, A: 255}
	case Ash:
		return color.NRGBA{R: 150, G: 145, B: 140, A: 255}
	case Gas:
		return color.NRGBA{R: 170, G: 140, B: 190, A: 255}
	case Hydrogen:
		return color.NRGBA{R: 200, G: 170, B: 230, A: 255}
	case Oil:
		return color.NRGBA{R: 60, G: 45, B: 30, A: 255}
	case Mercury:
		return color.NRGBA{R: 180, G: 185, B: 200, A: 255}
	case Acid:
		return color.NRGBA{R: 140, G: 240, B: 60, A: 255}
	case ToxicGas:
		return color.NRGBA{R: 120, G: 200, B: 40, A: 255}
	case Chlorine:
		return color.NRGBA{R: 200, G: 230, B: 90, A: 255}
	case Lightning:
		return color.NRGBA{R: 255, G: 250, B: 140, A: 255}
	}
	return color.NRGBA{R: 255, G: 0, B: 255, A: 255}
}
