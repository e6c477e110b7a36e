// Package main is dimctl, a command line front end to the unit catalog and
// quantity calculator. The catalog is built in-process from the same
// configuration the server reads.
//
// Usage:
//
//	dimctl spaces
//	dimctl units --space si
//	dimctl calc divide 20 joule 4 metre
//	dimctl compat metre second
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
