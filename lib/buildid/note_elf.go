// Copyright 2026 The Buildident Authors
// SPDX-License-Identifier: Apache-2.0

//go:build linux || freebsd || netbsd || openbsd || dragonfly || solaris

package buildid

import (
	"bytes"
	"debug/elf"
	"encoding/binary"
	"fmt"
)

// ReadPlatformID returns the linker-embedded build id of the ELF
// binary at path: the GNU build-id note when present (ld --build-id),
// otherwise the Go toolchain's own build-id note, which the Go linker
// writes into every binary. Returns errMetadataUnavailable when the
// binary carries neither.
func ReadPlatformID(path string) ([]byte, error) {
	file, err := elf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s as ELF: %w", path, err)
	}
	defer file.Close()

	notes := []struct {
		section string
		owner   string
		kind    uint32
	}{
		{".note.gnu.build-id", "GNU", 3}, // NT_GNU_BUILD_ID
		{".note.go.buildid", "Go", 4},    // Go linker build id
	}
	for _, note := range notes {
		section := file.Section(note.section)
		if section == nil {
			continue
		}
		data, err := section.Data()
		if err != nil {
			return nil, fmt.Errorf("reading %s from %s: %w", note.section, path, err)
		}
		if id := parseNote(data, file.ByteOrder, note.owner, note.kind); len(id) > 0 {
			return id, nil
		}
	}
	return nil, errMetadataUnavailable
}

// parseNote walks the ELF note entries in data and returns the
// descriptor of the first entry with the given owner name and type.
// Each entry is a namesz/descsz/type header followed by the
// NUL-terminated owner name and the descriptor, both padded to 4-byte
// alignment. Length arithmetic is done in uint64 so a corrupt or
// crafted header with a near-maximal size field cannot wrap past the
// bounds check.
func parseNote(data []byte, order binary.ByteOrder, owner string, kind uint32) []byte {
	name := append([]byte(owner), 0)
	for len(data) >= 12 {
		namesz := order.Uint32(data[0:4])
		descsz := order.Uint32(data[4:8])
		entryKind := order.Uint32(data[8:12])
		data = data[12:]

		nameLen := align4(uint64(namesz))
		descLen := align4(uint64(descsz))
		if nameLen+descLen > uint64(len(data)) {
			return nil
		}
		if entryKind == kind && int(namesz) == len(name) && bytes.Equal(data[:len(name)], name) {
			return data[int(nameLen) : int(nameLen)+int(descsz)]
		}
		data = data[int(nameLen)+int(descLen):]
	}
	return nil
}

func align4(n uint64) uint64 { return (n + 3) &^ 3 }
