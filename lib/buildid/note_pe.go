// Copyright 2026 The Buildident Authors
// SPDX-License-Identifier: Apache-2.0

//go:build windows

package buildid

import (
	"debug/pe"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// PE debug directory layout constants. debug/pe exposes the data
// directory index but not the entry format, so entries are decoded
// from raw file bytes.
const (
	debugEntrySize    = 28
	debugTypeCodeView = 2 // IMAGE_DEBUG_TYPE_CODEVIEW
)

// ReadPlatformID returns the CodeView build signature of the PE binary
// at path: the 16-byte GUID plus 4-byte age from the RSDS record the
// linker embeds per link. Returns errMetadataUnavailable when the
// binary carries no CodeView debug entry.
func ReadPlatformID(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close()

	image, err := pe.NewFile(file)
	if err != nil {
		return nil, fmt.Errorf("parsing %s as PE: %w", path, err)
	}

	directory, err := debugDirectory(image)
	if err != nil {
		return nil, err
	}
	offset, err := fileOffset(image, directory.VirtualAddress)
	if err != nil {
		return nil, err
	}

	entry := make([]byte, debugEntrySize)
	for i := 0; i < int(directory.Size)/debugEntrySize; i++ {
		if _, err := file.ReadAt(entry, offset+int64(i*debugEntrySize)); err != nil {
			return nil, fmt.Errorf("reading debug directory of %s: %w", path, err)
		}
		if binary.LittleEndian.Uint32(entry[12:16]) != debugTypeCodeView {
			continue
		}
		size := binary.LittleEndian.Uint32(entry[16:20])
		pointer := binary.LittleEndian.Uint32(entry[24:28])
		return codeViewSignature(file, int64(pointer), size)
	}
	return nil, errMetadataUnavailable
}

// codeViewSignature reads an RSDS CodeView record and returns its GUID
// and age, the pair that uniquely identifies one link of the binary.
func codeViewSignature(r io.ReaderAt, offset int64, size uint32) ([]byte, error) {
	// 4-byte "RSDS" magic, 16-byte GUID, 4-byte age.
	if size < 24 {
		return nil, errMetadataUnavailable
	}
	record := make([]byte, 24)
	if _, err := r.ReadAt(record, offset); err != nil {
		return nil, fmt.Errorf("reading CodeView record: %w", err)
	}
	if string(record[0:4]) != "RSDS" {
		return nil, errMetadataUnavailable
	}
	return record[4:24], nil
}

// debugDirectory returns the debug data directory from whichever
// optional header format the image uses.
func debugDirectory(image *pe.File) (pe.DataDirectory, error) {
	var directories []pe.DataDirectory
	switch header := image.OptionalHeader.(type) {
	case *pe.OptionalHeader64:
		directories = header.DataDirectory[:]
	case *pe.OptionalHeader32:
		directories = header.DataDirectory[:]
	default:
		return pe.DataDirectory{}, errMetadataUnavailable
	}
	if len(directories) <= pe.IMAGE_DIRECTORY_ENTRY_DEBUG {
		return pe.DataDirectory{}, errMetadataUnavailable
	}
	directory := directories[pe.IMAGE_DIRECTORY_ENTRY_DEBUG]
	if directory.VirtualAddress == 0 || directory.Size == 0 {
		return pe.DataDirectory{}, errMetadataUnavailable
	}
	return directory, nil
}

// fileOffset translates a relative virtual address to a file offset
// through the section that contains it.
func fileOffset(image *pe.File, virtualAddress uint32) (int64, error) {
	for _, section := range image.Sections {
		if virtualAddress >= section.VirtualAddress &&
			virtualAddress < section.VirtualAddress+section.VirtualSize {
			return int64(virtualAddress-section.VirtualAddress) + int64(section.Offset), nil
		}
	}
	return 0, errMetadataUnavailable
}
