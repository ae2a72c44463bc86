// Copyright 2026 The Buildident Authors
// SPDX-License-Identifier: Apache-2.0

package buildid

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// TestReadPlatformIDSelf reads the embedded build id of the running
// test binary. Some build configurations strip the id, so absence is a
// skip rather than a failure; when an id is present it must be
// non-empty and stable across reads.
func TestReadPlatformIDSelf(t *testing.T) {
	executable, err := os.Executable()
	if err != nil {
		t.Skipf("cannot resolve own executable: %v", err)
	}

	id, err := ReadPlatformID(executable)
	if errors.Is(err, errMetadataUnavailable) {
		t.Skipf("test binary carries no embedded build id")
	}
	if err != nil {
		t.Fatalf("ReadPlatformID(%s): %v", executable, err)
	}
	if len(id) == 0 {
		t.Fatal("ReadPlatformID returned an empty id")
	}

	again, err := ReadPlatformID(executable)
	if err != nil {
		t.Fatalf("ReadPlatformID (second read): %v", err)
	}
	if !bytes.Equal(id, again) {
		t.Errorf("embedded id not stable across reads: %x then %x", id, again)
	}
}

func TestReadPlatformIDNonBinary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-a-binary")
	if err := os.WriteFile(path, []byte("plain text\n"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := ReadPlatformID(path); err == nil {
		t.Error("ReadPlatformID should fail for a non-binary file")
	}
}

func TestReadPlatformIDMissingFile(t *testing.T) {
	if _, err := ReadPlatformID(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Error("ReadPlatformID should fail for a missing file")
	}
}
