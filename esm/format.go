// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

package esm

import (
	"github.com/suprsokr/go-tes3/internal/cursor"
)

// Header sizes
const (
	recordHeaderSize    = 16
	subrecordHeaderSize = 8
)

// Record header flags
const (
	FlagDeleted    = 0x00000020
	FlagPersistent = 0x00000400
	FlagBlocked    = 0x00002000
)

// RecordHeader precedes every top-level record.
type RecordHeader struct {
	Tag      Tag    // Record kind
	DataSize uint32 // Exact length of the body that follows
	Unknown  uint32
	Flags    uint32
}

// SubrecordHeader precedes every field inside a record body.
type SubrecordHeader struct {
	Tag      Tag
	DataSize uint32
}

// readRecordHeader reads a record header.
func readRecordHeader(c *cursor.Cursor) (RecordHeader, error) {
	var h RecordHeader
	b, err := c.ReadBytes(recordHeaderSize)
	if err != nil {
		return h, err
	}
	f := cursor.New(b)
	tag, _ := f.ReadUint32()
	h.Tag = Tag(tag)
	h.DataSize, _ = f.ReadUint32()
	h.Unknown, _ = f.ReadUint32()
	h.Flags, _ = f.ReadUint32()
	return h, nil
}

// readSubrecordHeader reads a sub-record header.
func readSubrecordHeader(c *cursor.Cursor) (SubrecordHeader, error) {
	var h SubrecordHeader
	b, err := c.ReadBytes(subrecordHeaderSize)
	if err != nil {
		return h, err
	}
	f := cursor.New(b)
	tag, _ := f.ReadUint32()
	h.Tag = Tag(tag)
	h.DataSize, _ = f.ReadUint32()
	return h, nil
}
