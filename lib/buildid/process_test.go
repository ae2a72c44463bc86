// Copyright 2026 The Buildident Authors
// SPDX-License-Identifier: Apache-2.0

package buildid_test

import (
	"os/exec"
	"strings"
	"testing"

	"github.com/buildident/buildident/lib/testutil"
	"github.com/google/uuid"
)

// printID runs the printid helper binary and returns the identifier it
// printed, verifying it parses as a UUID.
func printID(t *testing.T, binary string) uuid.UUID {
	t.Helper()
	output, err := exec.Command(binary).Output()
	if err != nil {
		t.Fatalf("running %s: %v", binary, err)
	}
	id, err := uuid.Parse(strings.TrimSpace(string(output)))
	if err != nil {
		t.Fatalf("parsing output %q of %s: %v", output, binary, err)
	}
	return id
}

// TestCrossProcessStability verifies that two invocations of the
// identical binary report the identical identifier.
func TestCrossProcessStability(t *testing.T) {
	if testing.Short() {
		t.Skip("compiles a helper binary")
	}
	binary := testutil.GoBuild(t, "./internal/printid")

	first := printID(t, binary)
	second := printID(t, binary)
	if first != second {
		t.Errorf("same binary reported %s then %s", first, second)
	}
}

// TestDiscrimination builds the helper twice with different injected
// data content and expects different identifiers. Collisions are
// possible in principle but overwhelmingly unlikely.
func TestDiscrimination(t *testing.T) {
	if testing.Short() {
		t.Skip("compiles two helper binaries")
	}
	alpha := testutil.GoBuild(t, "./internal/printid",
		"-ldflags", "-X main.salt=alpha")
	beta := testutil.GoBuild(t, "./internal/printid",
		"-ldflags", "-X main.salt=beta")

	if idAlpha, idBeta := printID(t, alpha), printID(t, beta); idAlpha == idBeta {
		t.Errorf("binaries with different data content both reported %s", idAlpha)
	}
}
