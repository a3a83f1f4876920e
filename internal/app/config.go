// Package app hosts the windowed sandbox front-end.
package app

import (
	"flag"
	"image/color"
	"strconv"

	"powder-sandbox/internal/core"
	"powder-sandbox/internal/session"
	"powder-sandbox/internal/sims/powder"
)

// Sandbox is the simulation surface the window front-end drives.
type Sandbox interface {
	core.Sim
	session.Painter
	Palette() []color.RGBA
	Ticks() int
	Census() powder.Census
	Clear()
}

// Config holds the window front-end settings.
type Config struct {
	Sim      string
	Scale    int
	TPS      int
	Seed     int64
	Width    int
	Height   int
	Preset   string
	Params   string
	HUDWidth int
}

// NewConfig returns the default window settings.
func NewConfig() *Config {
	return &Config{
		Sim:      "powder",
		Scale:    4,
		TPS:      60,
		Seed:     1337,
		Width:    200,
		Height:   150,
		Preset:   string(powder.PresetEmpty),
		HUDWidth: 280,
	}
}

// Bind registers the settings as flags on fs.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "registered simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "window pixels per cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random stream and terrain")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.StringVar(&c.Preset, "preset", c.Preset, "starting layout: empty, terrain or forest")
	fs.StringVar(&c.Params, "params", c.Params, "YAML rule table to load")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "parameter panel width in pixels (0 hides it)")
}

// Values renders the simulation settings as the key/value map sim factories
// accept.
func (c *Config) Values() map[string]string {
	values := map[string]string{
		"w":      strconv.Itoa(c.Width),
		"h":      strconv.Itoa(c.Height),
		"seed":   strconv.FormatInt(c.Seed, 10),
		"preset": c.Preset,
	}
	if c.Params != "" {
		values["params"] = c.Params
	}
	return values
}
