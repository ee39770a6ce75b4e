//go:build !testcoverage

package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := run(os.Args, DefaultConfig()); err != nil {
		if !errors.Is(err, errInvalidSignature) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
