package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"powder-sandbox/internal/sims/powder"
	"powder-sandbox/internal/tui"
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
	seed := flag.Int64("seed", 1337, "seed for the random stream and terrain")
	preset := flag.String("preset", string(powder.PresetEmpty), "starting layout: empty, terrain or forest")
	tps := flag.Int("tps", 60, "simulation ticks per second")
	paramsPath := flag.String("params", "", "YAML rule table to load")
	logPath := flag.String("log", "", "append diagnostics to this file")
	var overrides kvList
	flag.Var(&overrides, "set", "rule override in key=value form (repeatable)")
	flag.Parse()

	logger := log.New(io.Discard, "", 0)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("open log file: %v", err)
		}
		defer f.Close()
		logger = log.New(f, "sandbox-tui ", log.LstdFlags)
	}

	values := map[string]string{
		"seed":   strconv.FormatInt(*seed, 10),
		"preset": *preset,
		"params": *paramsPath,
	}
	for _, kv := range overrides {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			log.Fatalf("override %q is not key=value", kv)
		}
		values[key] = value
	}
	cfg, err := powder.FromMap(values)
	if err != nil {
		log.Fatal(err)
	}
	world, err := powder.NewWithConfig(cfg)
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init screen: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	app := tui.New(screen, world, *tps, logger)
	logger.Printf("started seed=%d preset=%s", cfg.Seed, cfg.Preset)
	err = app.Run(ctx)
	stop()
	screen.Fini()
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}
