// Package main runs the gymstats CLI: progress and workout analytics over a
// training log snapshot exported by the app.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
