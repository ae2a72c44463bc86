// Copyright 2026 The Buildident Authors
// SPDX-License-Identifier: Apache-2.0

package binhash

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/zeebo/blake3"
)

// HashFile computes the BLAKE3 digest of the file at path. The file is
// streamed through the hash in chunks (via io.Copy) to keep memory
// usage constant regardless of binary size.
func HashFile(path string) ([32]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return [32]byte{}, fmt.Errorf("opening %s for hashing: %w", path, err)
	}
	defer file.Close()

	hasher := blake3.New()
	if _, err := io.Copy(hasher, file); err != nil {
		return [32]byte{}, fmt.Errorf("hashing %s: %w", path, err)
	}

	var digest [32]byte
	copy(digest[:], hasher.Sum(nil))
	return digest, nil
}

// HashSelf returns the digest and absolute filesystem path of the
// currently running binary. os.Executable resolves the path via
// /proc/self/exe on Linux, which keeps pointing at the original binary
// even if it has been replaced on disk since the process started.
func HashSelf() ([32]byte, string, error) {
	executable, err := os.Executable()
	if err != nil {
		return [32]byte{}, "", fmt.Errorf("resolving own executable path: %w", err)
	}
	digest, err := HashFile(executable)
	if err != nil {
		return [32]byte{}, "", fmt.Errorf("hashing own binary: %w", err)
	}
	return digest, executable, nil
}

// FormatDigest returns the hex-encoded string representation of a
// digest, the canonical form for command output and comparisons.
func FormatDigest(digest [32]byte) string {
	return hex.EncodeToString(digest[:])
}

// ParseDigest parses a hex-encoded digest string back into a 32-byte
// array, validating length and encoding.
func ParseDigest(hexString string) ([32]byte, error) {
	var digest [32]byte
	decoded, err := hex.DecodeString(hexString)
	if err != nil {
		return digest, fmt.Errorf("parsing digest: %w", err)
	}
	if len(decoded) != 32 {
		return digest, fmt.Errorf("digest is %d bytes, want 32", len(decoded))
	}
	copy(digest[:], decoded)
	return digest, nil
}
