// Package main is the entry point for the duct-cost CLI.
package main

import (
	"os"

	"duct-cost/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
