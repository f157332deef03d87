// SPDX-License-Identifier: Unlicense OR MIT

// Command cactus previews the cactus components in a Gio window, lists
// them, and renders their geometry to PNG.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "cactus:", err)
		os.Exit(1)
	}
}
