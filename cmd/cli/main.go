// Package main is the entry point for the artquote CLI.
package main

import (
	"os"

	"artquote/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
