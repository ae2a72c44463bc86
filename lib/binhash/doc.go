// Copyright 2026 The Buildident Authors
// SPDX-License-Identifier: Apache-2.0

// Package binhash provides BLAKE3 content hashing for binary files.
//
// The build identifier from lib/buildid answers "same build?" with a
// fast 128-bit value; this package answers the stronger question "same
// bytes?" with a full content digest. The buildident CLI prints both
// so operators can distinguish a genuine rebuild from two views of one
// binary.
//
// The API surface is four functions:
//
//   - [HashFile] -- streams a file through BLAKE3, returning a
//     [32]byte digest with constant memory usage
//   - [HashSelf] -- HashFile applied to the currently running binary,
//     resolved through os.Executable
//   - [FormatDigest] -- canonical hex string form of a digest
//   - [ParseDigest] -- parses the hex form back, validating length
//     and encoding
//
// This package has no dependencies on other buildident packages.
package binhash
