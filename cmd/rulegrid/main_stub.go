//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The GUI build of rulegrid requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/rulegrid` or build with `-tags ebiten`.")
	fmt.Fprintln(os.Stderr, "For headless runs use ./cmd/batch.")
	os.Exit(2)
}
