// main is the entry point for the backpack CLI.
package main

import (
	"github.com/dcoder4/backpack/cmd"
	"github.com/dcoder4/backpack/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("Command failed", err)
	}
}
