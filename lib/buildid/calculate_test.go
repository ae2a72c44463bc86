// Copyright 2026 The Buildident Authors
// SPDX-License-Identifier: Apache-2.0

package buildid

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestHashImageStreamsFullContent(t *testing.T) {
	content := make([]byte, 128*1024)
	for i := range content {
		content[i] = byte(i % 251)
	}
	path := filepath.Join(t.TempDir(), "image")
	if err := os.WriteFile(path, content, 0755); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	var streamed bytes.Buffer
	if err := hashImage(path, &streamed); err != nil {
		t.Fatalf("hashImage: %v", err)
	}
	if !bytes.Equal(streamed.Bytes(), content) {
		t.Errorf("hashImage streamed %d bytes, want the full %d-byte image verbatim",
			streamed.Len(), len(content))
	}
}

func TestHashImageMissingFile(t *testing.T) {
	var sink bytes.Buffer
	err := hashImage(filepath.Join(t.TempDir(), "does-not-exist"), &sink)
	if err == nil {
		t.Fatal("hashImage should fail for a nonexistent file")
	}
	if sink.Len() != 0 {
		t.Errorf("hashImage wrote %d bytes despite failing", sink.Len())
	}
}

// TestWriteBinaryIdentity exercises the real primary chain against the
// test binary itself: whichever stage succeeds, some evidence of the
// binary must reach the accumulator.
func TestWriteBinaryIdentity(t *testing.T) {
	var evidence bytes.Buffer
	if err := writeBinaryIdentity(&evidence); err != nil {
		t.Fatalf("writeBinaryIdentity: %v", err)
	}
	if evidence.Len() == 0 {
		t.Error("writeBinaryIdentity wrote no bytes")
	}

	var again bytes.Buffer
	if err := writeBinaryIdentity(&again); err != nil {
		t.Fatalf("writeBinaryIdentity (second call): %v", err)
	}
	if !bytes.Equal(evidence.Bytes(), again.Bytes()) {
		t.Error("writeBinaryIdentity is not deterministic within one process")
	}
}
