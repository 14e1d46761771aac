// SPDX-License-Identifier: MIT

// main.go sets up the command-line interface for the hillkey tool using
// Cobra. It defines the root command, the subcommands (generate, invert,
// encrypt, decrypt, keys, config), and the entry point.

package main

import (
	"os"
)

var version = "dev" // set by the linker

// main is the entry point of the application.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		// Cobra already printed the error.
		os.Exit(1)
	}
}
