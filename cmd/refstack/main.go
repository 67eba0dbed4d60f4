// Package main provides the CLI entry point for refstack.
package main

import (
	"os"

	"github.com/refstack-labs/refstack/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
