// Package main is the entry point for the leapstyle CLI.
package main

import (
	"os"

	"github.com/leapstack-labs/leapstyle/internal/cli"
	"github.com/leapstack-labs/leapstyle/internal/cli/commands"
)

func main() {
	if err := cli.Execute(); err != nil {
		if commands.IsViolationsFound(err) {
			os.Exit(1)
		}
		os.Exit(2)
	}
}
