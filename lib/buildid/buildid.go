// Copyright 2026 The Buildident Authors
// SPDX-License-Identifier: Apache-2.0

package buildid

import (
	"sync"

	"github.com/google/uuid"
)

var (
	once   sync.Once
	cached uuid.UUID
)

// Get returns the build identifier of the currently running binary.
//
// The first call computes the identifier; concurrent first callers
// block until that computation finishes. Every call thereafter, from
// any goroutine, returns the identical cached value. The computation
// touches at most one file (the running executable) and cannot fail,
// so there is no error to handle and no context to thread through.
func Get() uuid.UUID {
	once.Do(func() {
		cached = calculate()
	})
	return cached
}
