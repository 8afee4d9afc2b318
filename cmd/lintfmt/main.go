// Package main provides the lintfmt CLI tool for rendering static-analysis
// findings into annotated source reports.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "lintfmt: %v\n", err)
		os.Exit(2)
	}
}
