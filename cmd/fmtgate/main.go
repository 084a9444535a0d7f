// Package main is the entry point for the fmtgate CLI.
package main

import (
	"os"

	"github.com/smartpr/fmtgate/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
