// Copyright 2026 The Buildident Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for buildident
// packages.
//
// [GoBuild] compiles an in-module helper program into a per-test
// temporary directory and returns the binary's path. Cross-process
// tests need real separate binaries — the identifier under test is a
// property of a compiled artifact, so it cannot be faked in-process.
// Tests that call GoBuild should skip under -short.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
package testutil

import (
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
)

// GoBuild compiles the Go main package at packagePath (relative to the
// calling test's package directory, e.g. "./internal/printid") and
// returns the path of the built binary. Extra arguments are passed to
// "go build" before the package path, so tests can inject -ldflags.
// The binary lands in t.TempDir() and is removed with it.
//
// Skips the test when no go tool is on PATH (stripped-down CI images).
func GoBuild(t *testing.T, packagePath string, extraArguments ...string) string {
	t.Helper()

	goTool, err := exec.LookPath("go")
	if err != nil {
		t.Skipf("go tool not available: %v", err)
	}

	binary := filepath.Join(t.TempDir(), filepath.Base(packagePath))
	if runtime.GOOS == "windows" {
		binary += ".exe"
	}

	arguments := append([]string{"build", "-o", binary}, extraArguments...)
	arguments = append(arguments, packagePath)
	output, err := exec.Command(goTool, arguments...).CombinedOutput()
	if err != nil {
		t.Fatalf("go build %s: %v\n%s", packagePath, err, output)
	}
	return binary
}
