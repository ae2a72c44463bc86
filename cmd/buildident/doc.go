// Copyright 2026 The Buildident Authors
// SPDX-License-Identifier: Apache-2.0

// Buildident prints build-identity information for binaries.
//
// With no arguments it prints the build identifier of its own binary,
// which is mainly useful for scripting demonstrations and for checking
// that two installed copies of a tool are the same build:
//
//	buildident
//	d4f0c2aa-91b7-4f9e-8c3e-5a2f6d1e0b47
//
// With a path argument it inspects that binary without executing it,
// printing the linker-embedded build id (when the platform format
// carries one) and the full BLAKE3 content digest:
//
//	buildident /usr/local/bin/mytool
//	embedded-id: 53f1c96be2a4...
//	digest: 9c7e4b...
//
// Exit codes:
//
//	0  success
//	1  --require-embedded was set and the binary carries no embedded id
//	2  error (unreadable path, bad arguments)
package main
