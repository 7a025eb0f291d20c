// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

// Package testutil builds synthetic archives and record streams for tests.
package testutil

import (
	"bytes"
	"encoding/binary"
	"strings"

	"github.com/suprsokr/go-tes3/bsa"
)

// DefaultArchiveVersion is the version tag of shipped archives.
var DefaultArchiveVersion = [4]byte{0x00, 0x01, 0x00, 0x00}

// ArchiveFile is a file to pack into a synthetic archive.
type ArchiveFile struct {
	Path string
	Data []byte
	Hash *bsa.Hash // Overrides the computed hash when set
}

// BuildArchive packs files, in order, into an archive image.
func BuildArchive(files ...ArchiveFile) []byte {
	return BuildArchiveVersion(DefaultArchiveVersion, files...)
}

// BuildArchiveVersion packs files into an archive image with the given version tag.
func BuildArchiveVersion(version [4]byte, files ...ArchiveFile) []byte {
	var names bytes.Buffer
	var payload bytes.Buffer
	nameOffsets := make([]uint32, len(files))
	records := make([]uint32, 0, 2*len(files))
	hashes := make([]uint32, 0, 2*len(files))

	for i, f := range files {
		stored := strings.ReplaceAll(f.Path, "/", "\\")
		nameOffsets[i] = uint32(names.Len())
		names.WriteString(stored)
		names.WriteByte(0)

		records = append(records, uint32(len(f.Data)), uint32(payload.Len()))
		payload.Write(f.Data)

		h := bsa.HashPath(f.Path)
		if f.Hash != nil {
			h = *f.Hash
		}
		hashes = append(hashes, h.Low, h.High)
	}

	hashTableOffset := uint32(len(files)*8 + len(files)*4 + names.Len())

	var out bytes.Buffer
	out.Write(version[:])
	writeLE(&out, hashTableOffset)
	writeLE(&out, uint32(len(files)))
	writeLE(&out, records)
	writeLE(&out, nameOffsets)
	out.Write(names.Bytes())
	writeLE(&out, hashes)
	out.Write(payload.Bytes())
	return out.Bytes()
}

// writeLE writes fixed-size data to a buffer, which cannot fail.
func writeLE(buf *bytes.Buffer, data any) {
	_ = binary.Write(buf, binary.LittleEndian, data)
}
