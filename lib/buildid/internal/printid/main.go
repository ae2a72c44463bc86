// Copyright 2026 The Buildident Authors
// SPDX-License-Identifier: Apache-2.0

// Printid prints the build identifier of its own binary and exits. It
// exists for the cross-process tests in lib/buildid: built once and
// run twice it must print the same value, built twice with different
// injected salt values it must print different ones.
package main

import (
	"fmt"
	"os"

	"github.com/buildident/buildident/lib/buildid"
)

// salt is injected via -ldflags -X to produce deliberately different
// data segments across otherwise identical builds.
var salt = "none"

func main() {
	if salt == "" {
		fmt.Fprintln(os.Stderr, "empty salt")
		os.Exit(2)
	}
	fmt.Println(buildid.Get())
}
