// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

// Package cursor provides a bounds-checked little-endian reader over an
// in-memory byte buffer.
package cursor

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// ErrOutOfBounds is returned when a read or seek would pass the end of the buffer.
var ErrOutOfBounds = errors.New("cursor: out of bounds")

// Cursor reads fixed-width values from a byte slice.
// A failed read leaves the position unchanged.
type Cursor struct {
	data []byte
	pos  int
}

// New returns a cursor positioned at the start of data.
func New(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Len returns the length of the underlying buffer.
func (c *Cursor) Len() int {
	return len(c.data)
}

// Pos returns the current absolute position.
func (c *Cursor) Pos() int {
	return c.pos
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.data) - c.pos
}

// EOF reports whether every byte has been consumed.
func (c *Cursor) EOF() bool {
	return c.pos >= len(c.data)
}

// Seek moves to an absolute position. Seeking to Len is allowed.
func (c *Cursor) Seek(pos int) error {
	if pos < 0 || pos > len(c.data) {
		return fmt.Errorf("seek to %d of %d: %w", pos, len(c.data), ErrOutOfBounds)
	}
	c.pos = pos
	return nil
}

// Skip advances the position by n bytes.
func (c *Cursor) Skip(n int) error {
	if _, err := c.take(n); err != nil {
		return err
	}
	return nil
}

// take returns the next n bytes and advances past them.
func (c *Cursor) take(n int) ([]byte, error) {
	if n < 0 || n > len(c.data)-c.pos {
		return nil, fmt.Errorf("read %d bytes at %d of %d: %w", n, c.pos, len(c.data), ErrOutOfBounds)
	}
	b := c.data[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

// ReadBytes returns the next n bytes. The result aliases the buffer.
func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	return c.take(n)
}

// Sub returns a cursor over the next n bytes and advances past them.
func (c *Cursor) Sub(n int) (*Cursor, error) {
	b, err := c.take(n)
	if err != nil {
		return nil, err
	}
	return New(b), nil
}

// ReadUint8 reads one byte.
func (c *Cursor) ReadUint8() (uint8, error) {
	b, err := c.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadInt8 reads one signed byte.
func (c *Cursor) ReadInt8() (int8, error) {
	v, err := c.ReadUint8()
	return int8(v), err
}

// ReadUint16 reads a little-endian uint16.
func (c *Cursor) ReadUint16() (uint16, error) {
	b, err := c.take(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// ReadInt16 reads a little-endian int16.
func (c *Cursor) ReadInt16() (int16, error) {
	v, err := c.ReadUint16()
	return int16(v), err
}

// ReadUint32 reads a little-endian uint32.
func (c *Cursor) ReadUint32() (uint32, error) {
	b, err := c.take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadInt32 reads a little-endian int32.
func (c *Cursor) ReadInt32() (int32, error) {
	v, err := c.ReadUint32()
	return int32(v), err
}

// ReadUint64 reads a little-endian uint64.
func (c *Cursor) ReadUint64() (uint64, error) {
	b, err := c.take(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// ReadInt64 reads a little-endian int64.
func (c *Cursor) ReadInt64() (int64, error) {
	v, err := c.ReadUint64()
	return int64(v), err
}

// ReadFloat32 reads an IEEE 754 single-precision value.
func (c *Cursor) ReadFloat32() (float32, error) {
	v, err := c.ReadUint32()
	return math.Float32frombits(v), err
}

// ReadFixedString reads exactly n bytes and returns the text before the first NUL.
func (c *Cursor) ReadFixedString(n int) (string, error) {
	b, err := c.take(n)
	if err != nil {
		return "", err
	}
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b), nil
}

// ReadTerminatedString reads until a NUL byte or until maxLen bytes have been
// consumed, whichever comes first. The NUL is consumed but not returned.
// Running out of buffer before either limit is an error.
func (c *Cursor) ReadTerminatedString(maxLen int) (string, error) {
	limit := min(maxLen, len(c.data)-c.pos)
	if limit < 0 {
		limit = 0
	}
	window := c.data[c.pos : c.pos+limit]
	if i := bytes.IndexByte(window, 0); i >= 0 {
		c.pos += i + 1
		return string(window[:i]), nil
	}
	if limit < maxLen {
		return "", fmt.Errorf("unterminated string at %d: %w", c.pos, ErrOutOfBounds)
	}
	c.pos += limit
	return string(window), nil
}
