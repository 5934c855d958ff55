// Package main is the entry point for the padpatch CLI.
package main

import (
	"os"

	"github.com/jmylchreest/padpatch/cmd/padpatch/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
