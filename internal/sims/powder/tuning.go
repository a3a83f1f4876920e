package powder

import (
	"fmt"
	"strconv"
	"sync"
)

// FireSpreadResult captures telemetry from a deterministic forest-fire run
// used for tuning the combustion rules.
type FireSpreadResult struct {
	// InitialFuel counts the flammable cells present before ignition.
	InitialFuel int
	// FuelBurned counts flammable cells consumed by the end of the run.
	FuelBurned int
	// PeakFire tracks the maximum number of fire cells present at any step.
	PeakFire int
	// LastActiveStep records the final tick that still contained fire.
	LastActiveStep int
	// StepsSimulated reports how many ticks the run executed.
	StepsSimulated int
}

// BurnedFraction reports the share of the initial fuel that burned.
func (r FireSpreadResult) BurnedFraction() float64 {
	if r.InitialFuel == 0 {
		return 0
	}
	return float64(r.FuelBurned) / float64(r.InitialFuel)
}

// SweepRecord documents a single improvement encountered while exploring the
// tuning parameter space.
type SweepRecord struct {
	Pass      int
	Parameter string
	Value     string
	Result    FireSpreadResult
	Params    Params
}

func countFuel(c Census) int {
	total := 0
	for m := Empty; m < materialCount; m++ {
		if m.IsFlammable() {
			total += c[m]
		}
	}
	return total
}

// RunFireSpread plants the forest preset, lights the first trunk from its
// base and advances until the fire dies out or steps run out.
func RunFireSpread(cfg Config, steps int) (FireSpreadResult, error) {
	if steps <= 0 {
		return FireSpreadResult{}, nil
	}
	cfg.Preset = PresetForest
	world, err := NewWithConfig(cfg)
	if err != nil {
		return FireSpreadResult{}, err
	}

	result := FireSpreadResult{InitialFuel: countFuel(world.Census())}
	if x, y, ok := firstFuel(world.grid); ok {
		if world.grid.InBounds(x-1, y) {
			world.Place(x-1, y, 0, Fire)
		} else {
			world.Place(x+1, y, 0, Fire)
		}
	}

	const inactiveLimit = 16
	inactive := 0
	for step := 1; step <= steps; step++ {
		world.Step()
		result.StepsSimulated = step
		census := world.Census()
		fire := census.Count(Fire)
		if fire > result.PeakFire {
			result.PeakFire = fire
		}
		result.FuelBurned = result.InitialFuel - countFuel(census)
		if fire > 0 {
			result.LastActiveStep = step
			inactive = 0
			continue
		}
		inactive++
		if inactive >= inactiveLimit {
			break
		}
	}
	return result, nil
}

// firstFuel returns the lowest flammable cell in the leftmost column holding
// fuel.
func firstFuel(g *Grid) (int, int, bool) {
	for x := 0; x < g.w; x++ {
		for y := g.h - 1; y >= 0; y-- {
			if g.Kind(x, y).IsFlammable() {
				return x, y, true
			}
		}
	}
	return 0, 0, false
}

type intSpec struct {
	name   string
	values []int
}

// FireParameterSweep performs a coarse coordinate-descent search over the
// combustion parameters and returns the parameter set that burned the most
// fuel, breaking ties by the quicker burn, together with an improvement trace.
func FireParameterSweep(base Config, steps, passes, workers int) (Params, FireSpreadResult, []SweepRecord, error) {
	if steps <= 0 {
		steps = 400
	}
	if passes <= 0 {
		passes = 1
	}
	if workers <= 0 {
		workers = 1
	}

	currentParams := base.Params
	currentResult, err := RunFireSpread(base, steps)
	if err != nil {
		return currentParams, FireSpreadResult{}, nil, err
	}
	records := []SweepRecord{{
		Pass:      0,
		Parameter: "baseline",
		Result:    currentResult,
		Params:    currentParams,
	}}

	specs := []intSpec{
		{name: "fire_ignite_chance", values: []int{20, 30, 40, 50, 60}},
		{name: "fire_life_min", values: []int{5, 10, 15, 20}},
		{name: "fire_life_max", values: []int{20, 25, 30, 40}},
		{name: "wood_fire_life", values: []int{15, 25, 35, 45}},
		{name: "fire_rise_chance", values: []int{25, 50, 75}},
	}

	for pass := 1; pass <= passes; pass++ {
		improved := false
		for _, spec := range specs {
			bestParams, bestResult, changed, rec := evaluateIntSpec(base, currentParams, currentResult, spec, steps, workers, pass)
			if changed {
				currentParams = bestParams
				currentResult = bestResult
				records = append(records, rec...)
				improved = true
			}
		}
		if !improved {
			break
		}
	}
	return currentParams, currentResult, records, nil
}

func evaluateIntSpec(base Config, params Params, baseline FireSpreadResult, spec intSpec, steps, workers, pass int) (Params, FireSpreadResult, bool, []SweepRecord) {
	bestParams := params
	bestResult := baseline
	changed := false
	records := make([]SweepRecord, 0)

	field, ok := lookupParamField(spec.name)
	if !ok {
		return bestParams, bestResult, false, records
	}

	type candidate struct {
		params Params
		result FireSpreadResult
		valid  bool
	}

	candidates := make([]candidate, len(spec.values))
	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)

	for idx, value := range spec.values {
		if value == *field.ptr(&params) {
			continue
		}
		candidateParams := params
		*field.ptr(&candidateParams) = value
		candidateParams.normalize()
		if candidateParams.Validate() != nil {
			continue
		}

		wg.Add(1)
		sem <- struct{}{}
		go func(i int, p Params) {
			defer wg.Done()
			defer func() { <-sem }()
			cfg := base
			cfg.Params = p
			res, err := RunFireSpread(cfg, steps)
			if err != nil {
				return
			}
			candidates[i] = candidate{params: p, result: res, valid: true}
		}(idx, candidateParams)
	}

	wg.Wait()

	for idx, value := range spec.values {
		cand := candidates[idx]
		if !cand.valid {
			continue
		}
		if betterFireResult(cand.result, bestResult) {
			bestParams = cand.params
			bestResult = cand.result
			changed = true
			records = append(records, SweepRecord{
				Pass:      pass,
				Parameter: spec.name,
				Value:     strconv.Itoa(value),
				Result:    cand.result,
				Params:    cand.params,
			})
		}
	}

	return bestParams, bestResult, changed, records
}

func betterFireResult(a, b FireSpreadResult) bool {
	if a.FuelBurned != b.FuelBurned {
		return a.FuelBurned > b.FuelBurned
	}
	return a.LastActiveStep < b.LastActiveStep
}

// SeedResult pairs a seed with the outcome it produced.
type SeedResult struct {
	Seed   int64
	Result FireSpreadResult
	Err    error
}

// SeedSweep runs the forest-fire scenario once per seed on a pool of worker
// goroutines. Results come back in seed order.
func SeedSweep(base Config, steps int, seeds []int64, workers int) []SeedResult {
	if workers <= 0 {
		workers = 1
	}
	type job struct {
		idx  int
		seed int64
	}
	type done struct {
		idx int
		res SeedResult
	}
	jobs := make(chan job)
	results := make(chan done)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				cfg := base
				cfg.Seed = j.seed
				res, err := RunFireSpread(cfg, steps)
				if err != nil {
					err = fmt.Errorf("seed %d: %w", j.seed, err)
				}
				results <- done{idx: j.idx, res: SeedResult{Seed: j.seed, Result: res, Err: err}}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for i, seed := range seeds {
			jobs <- job{idx: i, seed: seed}
		}
		close(jobs)
	}()

	out := make([]SeedResult, len(seeds))
	for d := range results {
		out[d.idx] = d.res
	}
	return out
}
