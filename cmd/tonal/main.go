// Tonal - a dominant-colour and colour-theory palette engine
//
// Tonal extracts a representative colour from an image and derives a full,
// perceptually informed palette from it, including contrast-safe text
// colours and accessibility diagnostics.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"github.com/jmylchreest/tonal/internal/cli"
)

func main() {
	cli.Execute()
}
