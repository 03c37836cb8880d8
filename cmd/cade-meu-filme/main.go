// Package main is the entry point for the cade-meu-filme API server.
package main

import (
	"os"

	"github.com/rodgo4k/cade-meu-filme/cmd/cade-meu-filme/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
