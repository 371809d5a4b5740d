// Tonal - Material-style colour schemes from images
//
// Tonal extracts source colours from images and builds tonal palettes and
// light and dark colour schemes from them.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/tonal/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
