// Package main provides the btrfind CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/btrfind/btrfind"
	"github.com/btrfind/btrfind/cmd/btrfind/commands"
)

var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	err := commands.Execute(version)
	if err == nil {
		return 0
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return btrfind.ClassifyErr(err).ExitCode()
}
