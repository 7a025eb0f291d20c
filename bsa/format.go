// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

package bsa

import (
	"fmt"

	"github.com/suprsokr/go-tes3/internal/cursor"
)

// BSA format constants
const (
	// Header: version tag, hash table offset, file count
	headerSize = 12

	// Size/offset pair per file
	fileRecordSize = 8

	// Name offset per file
	nameOffsetSize = 4

	// Two hash words per file
	hashRecordSize = 8
)

// archiveHeader is the fixed 12-byte archive header.
type archiveHeader struct {
	Version         [4]byte // Version tag, 0x00000100 for shipped archives
	HashTableOffset uint32  // Offset of the hash table, relative to the end of the header
	FileCount       uint32  // Number of entries
}

// hashTablePos returns the absolute position of the hash table.
func (h *archiveHeader) hashTablePos() int {
	return headerSize + int(h.HashTableOffset)
}

// payloadPos returns the absolute position of the first payload byte.
func (h *archiveHeader) payloadPos() int {
	return h.hashTablePos() + hashRecordSize*int(h.FileCount)
}

// readArchiveHeader reads the archive header from the start of c.
func readArchiveHeader(c *cursor.Cursor) (*archiveHeader, error) {
	h := &archiveHeader{}

	version, err := c.ReadBytes(4)
	if err != nil {
		return nil, err
	}
	copy(h.Version[:], version)

	if h.HashTableOffset, err = c.ReadUint32(); err != nil {
		return nil, err
	}
	if h.FileCount, err = c.ReadUint32(); err != nil {
		return nil, err
	}

	return h, nil
}

// validate checks that the tables the header describes fit in size bytes.
func (h *archiveHeader) validate(size int) error {
	tables := uint64(h.FileCount) * (fileRecordSize + nameOffsetSize)
	if uint64(headerSize)+tables > uint64(size) {
		return fmt.Errorf("%d entries need %d table bytes, archive has %d", h.FileCount, tables, size)
	}
	if uint64(h.hashTablePos())+uint64(h.FileCount)*hashRecordSize > uint64(size) {
		return fmt.Errorf("hash table at %d for %d entries exceeds archive size %d", h.hashTablePos(), h.FileCount, size)
	}
	if uint64(h.HashTableOffset) < tables {
		return fmt.Errorf("hash table offset %d overlaps %d table bytes", h.HashTableOffset, tables)
	}
	return nil
}
