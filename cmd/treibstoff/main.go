// Package main is the entry point for the treibstoff asset host. It declares
// the treibstoff resources (by importing the package), loads configuration and
// serves the static view next to health, manifest and metrics endpoints.
package main

import (
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
