//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The window front-end needs the ebiten build tag: go run -tags ebiten ./cmd/sandbox")
	fmt.Fprintln(os.Stderr, "For the terminal front-end run ./cmd/sandbox-tui.")
	os.Exit(2)
}
