// Copyright 2026 The Buildident Authors
// SPDX-License-Identifier: Apache-2.0

package buildid

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// errMetadataUnavailable reports that a binary carries no
// linker-embedded build id the current platform reader understands.
// It is a fallback signal, never surfaced to callers of Get.
var errMetadataUnavailable = errors.New("no embedded build id available")

// calculate computes the build identifier from scratch. Get memoizes
// it; tests call it directly to verify determinism.
func calculate() uuid.UUID {
	return calculateFrom(writeBinaryIdentity)
}

// calculateFrom runs the identity source chain with the given primary
// source and formats the accumulated hash state into a UUID. The
// primary source is fallible; when it fails, the type fingerprint
// below is the sole entropy source, so the calculation as a whole
// never fails. Split out from calculate so the forced-fallback path is
// testable without a sandboxed environment.
func calculateFrom(primary func(io.Writer) error) uuid.UUID {
	digest := xxhash.New()
	_ = primary(digest)
	writeTypeFingerprint(digest)
	return finish(digest)
}

// writeBinaryIdentity feeds the strongest available evidence of the
// running binary's identity into w: the linker-embedded build id when
// the platform provides one, otherwise the full byte content of the
// executable image. Returns an error only when the executable cannot
// be resolved or read at all (restricted or non-native environments).
func writeBinaryIdentity(w io.Writer) error {
	executable, err := os.Executable()
	if err != nil {
		return fmt.Errorf("resolving own executable path: %w", err)
	}
	if id, err := ReadPlatformID(executable); err == nil {
		_, err = w.Write(id)
		return err
	}
	return hashImage(executable, w)
}

// hashImage streams the full content of the binary at path into w with
// constant memory usage. The file handle is released before return on
// every path.
func hashImage(path string, w io.Writer) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s for hashing: %w", path, err)
	}
	defer file.Close()

	if _, err := io.Copy(w, file); err != nil {
		return fmt.Errorf("hashing %s: %w", path, err)
	}
	return nil
}

// finish expands the accumulator's 64-bit digest into a 128-bit value
// and stamps the RFC 4122 variant and version-4 bits so the result is
// structurally a valid UUID. The second half comes from re-reading the
// digest after one discriminator byte advances the accumulator, which
// yields pseudo-independent material without a second hash instance.
// The stamped bits replace six bits of entropy; they add none. Byte
// order is fixed little-endian so the value never depends on the host.
func finish(digest *xxhash.Digest) uuid.UUID {
	var id uuid.UUID
	binary.LittleEndian.PutUint64(id[0:8], digest.Sum64())
	_, _ = digest.Write([]byte{0})
	binary.LittleEndian.PutUint64(id[8:16], digest.Sum64())
	id[6] = (id[6] & 0x0f) | 0x40
	id[8] = (id[8] & 0x3f) | 0x80
	return id
}
