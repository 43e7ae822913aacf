// SPDX-License-Identifier: MIT
// Command socialnet queries and edits a social network described by a YAML
// dataset, either one command at a time or through an interactive shell.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
