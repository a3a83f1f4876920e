package powder

import "powder-sandbox/internal/core"

// Random is the source of every stochastic decision the engine and tools
// make. *core.RNG satisfies it; tests substitute scripted sources.
type Random interface {
	// Range returns an int in the inclusive range [lo, hi].
	Range(lo, hi int) int
	// Chance succeeds with probability pct/100.
	Chance(pct int) bool
}

var _ Random = (*core.RNG)(nil)

// direction picks -1 or +1.
func direction(rng Random) int {
	if rng.Range(0, 1) == 1 {
		return 1
	}
	return -1
}
