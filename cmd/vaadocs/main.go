// Package main is the entry point for the vaadocs CLI.
package main

import (
	"os"

	"vaadocs/cmd/vaadocs/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
