// Package main provides the entry point for the lvsearch CLI.
package main

import (
	"os"

	"github.com/katalvlaran/lvsearch/cmd/lvsearch/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
