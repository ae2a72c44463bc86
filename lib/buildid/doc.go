// Copyright 2026 The Buildident Authors
// SPDX-License-Identifier: Apache-2.0

// Package buildid computes a UUID uniquely representing the build of
// the currently running binary.
//
// Two processes that report the same identifier are running the exact
// same compiled artifact (same code and data layout). This lets
// distributed peers verify build compatibility by exchanging a single
// 16-byte value — in a handshake or heartbeat — without a central
// version registry.
//
// # Guarantees
//
//   - Identical across invocations of the same binary.
//   - Different across binaries with different code or data content,
//     with overwhelming probability (the hash is fast, not
//     cryptographic; equality is a strong signal, not proof).
//   - Unspecified for binaries that are byte-identical except for
//     immaterial metadata differences.
//
// # Identity sources
//
// [Get] derives the identifier from the strongest evidence available,
// in order:
//
//  1. The linker-embedded build id in the binary's own metadata: the
//     GNU or Go build-id note on ELF platforms, the LC_UUID load
//     command on Mach-O, the CodeView record on PE.
//  2. The full byte content of the executable image, streamed through
//     the hash, when the platform embeds no id.
//  3. A fingerprint of runtime type identities, always folded in as
//     supplementary entropy. On targets with no addressable executable
//     file (wasm, sandboxed environments) this is the only source, and
//     the uniqueness guarantee weakens to whatever the runtime's type
//     naming provides.
//
// Because the final source cannot fail, Get is total: it never returns
// an error and never panics. The value is computed once, under a
// sync.Once gate, and cached for the life of the process.
//
// [ReadPlatformID] exposes the first source on its own, for tooling
// that inspects binaries other than the running one.
package buildid
