// Package main is the entry point for the cmf CLI client.
package main

import (
	"github.com/rodgo4k/cade-meu-filme/cmd/cmf/cmd"
)

func main() {
	cmd.Execute()
}
