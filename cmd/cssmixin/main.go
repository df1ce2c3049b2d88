// Package main provides the cssmixin CLI: it expands stylesheet templates
// that interpolate mixin helpers and evaluates single helper calls.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Issues have already been reported; only the exit code is left.
		if !errors.Is(err, errIssuesFound) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
