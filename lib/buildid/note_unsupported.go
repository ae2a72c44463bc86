// Copyright 2026 The Buildident Authors
// SPDX-License-Identifier: Apache-2.0

//go:build !(linux || freebsd || netbsd || openbsd || dragonfly || solaris || darwin || windows)

package buildid

// ReadPlatformID fails fast on platforms with no known build-id
// metadata format (wasm, plan9, aix). Callers fall through to hashing
// the executable image, or to the type fingerprint alone on targets
// with no addressable executable file at all.
func ReadPlatformID(path string) ([]byte, error) {
	return nil, errMetadataUnavailable
}
