// Package main is the entry point for the evosim application. It wires up
// the cobra command tree and hands control to it; all simulation logic
// lives under cli, sim, and their supporting packages.
package main

import (
	"evosim/cmd"
)

func main() {
	cmd.Execute()
}
