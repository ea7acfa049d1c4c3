/*
marbles solves the marble circle game.

Usage:

	marbles solve [--input path] [--multiplier n]
	marbles play --players n --last n
	marbles serve [--port p]

Configuration is read from ./config.yml (see --config) and the environment.
*/
package main

import (
	"fmt"
	"os"

	"github.com/rocketscienceinc/marble-mania/internal/cmd"
)

// main - is the entry point of the application.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	os.Exit(cmd.Execute())
}
