package powder

import (
	"math"

	"github.com/aquilax/go-perlin"
)

const (
	terrainAlpha   = 2.0
	terrainBeta    = 2.0
	terrainOctaves = 3
	terrainWaves   = 3.0

	forestSpacing = 6
)

func applyPreset(g *Grid, preset Preset, seed int64, rng Random) {
	switch preset {
	case PresetTerrain:
		applyTerrain(g, seed)
	case PresetForest:
		applyForest(g, rng)
	}
}

// terrainHeights samples 1D Perlin noise into a surface row per column.
func terrainHeights(w, h int, seed int64) []int {
	noise := perlin.NewPerlin(terrainAlpha, terrainBeta, terrainOctaves, seed)
	base := h * 2 / 3
	amp := float64(h) / 4
	tops := make([]int, w)
	for x := range tops {
		n := noise.Noise1D((float64(x) + 0.5) / float64(w) * terrainWaves)
		top := base - int(math.Round(n*amp))
		tops[x] = min(max(top, 1), h-1)
	}
	return tops
}

// applyTerrain lays dirt hills over a stone bed inside a wall border and
// floods the deepest valley.
func applyTerrain(g *Grid, seed int64) {
	w, h := g.w, g.h
	if w < 3 || h < 4 {
		return
	}
	tops := terrainHeights(w, h, seed)
	bed := h - max(1, h/8)
	for x := 0; x < w; x++ {
		for y := tops[x]; y < h; y++ {
			kind := Dirt
			if y >= bed {
				kind = Stone
			}
			g.cell(x, y).set(kind, 0)
		}
	}
	for y := 0; y < h; y++ {
		g.cell(0, y).set(Wall, 0)
		g.cell(w-1, y).set(Wall, 0)
	}
	for x := 0; x < w; x++ {
		g.cell(x, h-1).set(Wall, 0)
	}

	deepest := 1
	for x := 1; x < w-1; x++ {
		if tops[x] > tops[deepest] {
			deepest = x
		}
	}
	depth := max(1, h/10)
	for y := tops[deepest] - 1; y >= tops[deepest]-depth && y >= 0; y-- {
		for x := deepest; x > 0 && g.cells[g.Index(x, y)].Kind == Empty; x-- {
			g.cell(x, y).set(Water, 0)
		}
		for x := deepest + 1; x < w-1 && g.cells[g.Index(x, y)].Kind == Empty; x++ {
			g.cell(x, y).set(Water, 0)
		}
	}
}

// applyForest plants a row of wooden trunks with leafy crowns on a dirt
// floor.
func applyForest(g *Grid, rng Random) {
	w, h := g.w, g.h
	if h < 6 {
		return
	}
	ground := h - 2
	for y := ground; y < h; y++ {
		for x := 0; x < w; x++ {
			g.cell(x, y).set(Dirt, 0)
		}
	}
	for x := forestSpacing / 2; x < w; x += forestSpacing {
		trunk := rng.Range(3, min(6, ground-2))
		top := ground - trunk
		for y := top; y < ground; y++ {
			g.cell(x, y).set(Wood, 0)
		}
		for dx := -1; dx <= 1; dx++ {
			g.Set(x+dx, top-1, Cell{Kind: Plant})
		}
	}
}
