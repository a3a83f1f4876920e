//go:build !ebiten

package app

import "errors"

// ErrHeadless reports a window front-end request in a build without ebiten.
var ErrHeadless = errors.New("the window front-end requires the ebiten build tag")

// Game stands in for the ebiten game in headless builds.
type Game struct{}

// New always fails in headless builds.
func New(Sandbox, *Config) (*Game, error) { return nil, ErrHeadless }

// Update always fails in headless builds.
func (g *Game) Update() error { return ErrHeadless }

// Draw does nothing in headless builds.
func (g *Game) Draw(any) {}

// Layout returns zeros in headless builds.
func (g *Game) Layout(int, int) (int, int) { return 0, 0 }
