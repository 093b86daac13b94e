// SPDX-License-Identifier: MIT

// Command swdgraph converts, inspects and generates sparse weighted directed
// graph files in the text (.txt), binary (.bin) and encoded (.enc) formats,
// each optionally zstd framed (.zst suffix).
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		if !errors.Is(err, errGraphsDiffer) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
