// Package main is the entry point for the timeline exporter CLI.
// Its sole responsibility is wiring dependencies together and running the command.
// No business logic belongs here.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
