package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"powder-sandbox/internal/sims/powder"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	steps := flag.Int("steps", 600, "number of ticks to simulate per candidate")
	passes := flag.Int("passes", 3, "coordinate-descent passes to execute")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel candidate evaluations")
	width := flag.Int("width", 120, "grid width for tuning runs")
	height := flag.Int("height", 60, "grid height for tuning runs")
	seed := flag.Int64("seed", 1337, "seed used for deterministic simulations")
	seeds := flag.Int("seeds", 0, "run the current rules over this many consecutive seeds instead of sweeping")
	paramsPath := flag.String("params", "", "YAML rule table to start from")
	manualOnly := flag.Bool("manual", false, "skip sweeping and only evaluate provided overrides")
	var overrides kvList
	flag.Var(&overrides, "set", "parameter override in key=value form (repeatable)")
	flag.Parse()

	values := map[string]string{
		"w":      strconv.Itoa(*width),
		"h":      strconv.Itoa(*height),
		"seed":   strconv.FormatInt(*seed, 10),
		"params": *paramsPath,
	}
	for _, kv := range overrides {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		values[key] = value
	}
	cfg, err := powder.FromMap(values)
	if err != nil {
		log.Fatal(err)
	}

	if *seeds > 0 {
		runSeeds(cfg, *steps, *seeds, *workers)
		return
	}

	baseline, err := powder.RunFireSpread(cfg, *steps)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Baseline: burned %d/%d fuel (%.1f%%), peak fire %d, last fire step %d/%d\n",
		baseline.FuelBurned, baseline.InitialFuel, 100*baseline.BurnedFraction(), baseline.PeakFire, baseline.LastActiveStep, baseline.StepsSimulated)

	if *manualOnly {
		fmt.Println("Manual evaluation requested; skipping sweep.")
		printParams(cfg.Params)
		return
	}

	params, result, trace, err := powder.FireParameterSweep(cfg, *steps, *passes, *workers)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("\nBest found: burned %d/%d fuel (%.1f%%), peak fire %d, last fire step %d/%d\n",
		result.FuelBurned, result.InitialFuel, 100*result.BurnedFraction(), result.PeakFire, result.LastActiveStep, result.StepsSimulated)
	printParams(params)

	if len(trace) > 1 {
		fmt.Println("\nImprovements:")
		for _, rec := range trace[1:] {
			fmt.Printf("  pass %d: %s=%s -> burned=%d, last fire step %d\n",
				rec.Pass, rec.Parameter, rec.Value, rec.Result.FuelBurned, rec.Result.LastActiveStep)
		}
	}
}

func runSeeds(cfg powder.Config, steps, count, workers int) {
	list := make([]int64, count)
	for i := range list {
		list[i] = cfg.Seed + int64(i)
	}
	fmt.Printf("Running %d seeds (%d workers, %d steps)\n", count, workers, steps)

	start := time.Now()
	results := powder.SeedSweep(cfg, steps, list, workers)
	elapsed := time.Since(start)

	var ok []powder.SeedResult
	for _, r := range results {
		if r.Err != nil {
			log.Printf("seed %d failed: %v", r.Seed, r.Err)
			continue
		}
		ok = append(ok, r)
	}
	sort.SliceStable(ok, func(i, j int) bool {
		return ok[i].Result.BurnedFraction() > ok[j].Result.BurnedFraction()
	})

	fmt.Printf("\nTop 5 results (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for i := 0; i < len(ok) && i < 5; i++ {
		r := ok[i]
		fmt.Printf("%2d) seed=%d burned=%d/%d (%.1f%%) peakFire=%d lastStep=%d\n",
			i+1, r.Seed, r.Result.FuelBurned, r.Result.InitialFuel, 100*r.Result.BurnedFraction(), r.Result.PeakFire, r.Result.LastActiveStep)
	}

	total := 0.0
	for _, r := range ok {
		total += r.Result.BurnedFraction()
	}
	if len(ok) > 0 {
		fmt.Printf("\nMean burned fraction over %d seeds: %.1f%%\n", len(ok), 100*total/float64(len(ok)))
	}
}

func printParams(params powder.Params) {
	out, err := yaml.Marshal(params)
	if err != nil {
		log.Printf("encode params: %v", err)
		return
	}
	fmt.Println("Parameters:")
	fmt.Print(string(out))
}
