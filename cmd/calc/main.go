// Command calc evaluates arithmetic expressions.
package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errFailed) {
			fmt.Fprintln(os.Stderr, "calc:", err)
		}
		os.Exit(1)
	}
}
