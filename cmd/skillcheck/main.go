// Package main is the entry point for the skillcheck CLI.
package main

import (
	"os"

	"github.com/thoreinstein/skillcheck/cmd/skillcheck/commands"
	"github.com/thoreinstein/skillcheck/internal/errors"
)

func main() {
	os.Exit(errors.ExitCode(commands.Execute()))
}
