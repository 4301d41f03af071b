// SPDX-License-Identifier: MIT

// Command magsim runs synthetic magnetic-microscopy surveys of a prism sample
// described by a YAML scenario.
//
//	magsim field    --config scenario.yaml
//	magsim jacobian --config scenario.yaml
//	magsim noise    --config scenario.yaml
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
