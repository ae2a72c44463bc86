// Copyright 2026 The Buildident Authors
// SPDX-License-Identifier: Apache-2.0

//go:build darwin

package buildid

import (
	"debug/macho"
	"fmt"
)

// loadCommandUUID is the LC_UUID load command number. debug/macho
// exposes no named constant for it and leaves the command unparsed in
// File.Loads, so the payload is read from the raw command bytes.
const loadCommandUUID = 0x1b

// ReadPlatformID returns the 16-byte LC_UUID payload of the Mach-O
// binary at path — the per-link UUID the linker stamps into every
// image. Universal (fat) binaries are searched slice by slice and the
// first UUID found wins; which slice executes is irrelevant because
// any slice identifies the same build product.
func ReadPlatformID(path string) ([]byte, error) {
	if file, err := macho.Open(path); err == nil {
		defer file.Close()
		return uuidLoadCommand(file)
	}

	fat, err := macho.OpenFat(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s as Mach-O: %w", path, err)
	}
	defer fat.Close()

	for _, arch := range fat.Arches {
		if id, err := uuidLoadCommand(arch.File); err == nil {
			return id, nil
		}
	}
	return nil, errMetadataUnavailable
}

// uuidLoadCommand scans the image's load commands for LC_UUID and
// returns a copy of its payload. The raw command layout is cmd (4
// bytes), cmdsize (4 bytes), then the 16-byte UUID.
func uuidLoadCommand(file *macho.File) ([]byte, error) {
	for _, load := range file.Loads {
		raw := load.Raw()
		if len(raw) < 24 {
			continue
		}
		if file.ByteOrder.Uint32(raw[0:4]) != loadCommandUUID {
			continue
		}
		id := make([]byte, 16)
		copy(id, raw[8:24])
		return id, nil
	}
	return nil, errMetadataUnavailable
}
