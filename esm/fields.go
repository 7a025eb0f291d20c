// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

package esm

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"

	"github.com/suprsokr/go-tes3/internal/cursor"
)

// fieldReader decodes one sub-record body. It is bound to exactly the
// sub-record's bytes, so a decoder cannot read into its neighbours. The first
// error sticks and later reads return zero values.
type fieldReader struct {
	tag Tag
	c   *cursor.Cursor
	dec *encoding.Decoder
	err error
}

func (f *fieldReader) fail(err error) {
	if err != nil && f.err == nil {
		f.err = err
	}
}

// size returns the declared sub-record size.
func (f *fieldReader) size() int {
	return f.c.Len()
}

func (f *fieldReader) u8() uint8 {
	if f.err != nil {
		return 0
	}
	v, err := f.c.ReadUint8()
	f.fail(err)
	return v
}

func (f *fieldReader) i8() int8 {
	return int8(f.u8())
}

func (f *fieldReader) u16() uint16 {
	if f.err != nil {
		return 0
	}
	v, err := f.c.ReadUint16()
	f.fail(err)
	return v
}

func (f *fieldReader) i16() int16 {
	return int16(f.u16())
}

func (f *fieldReader) u32() uint32 {
	if f.err != nil {
		return 0
	}
	v, err := f.c.ReadUint32()
	f.fail(err)
	return v
}

func (f *fieldReader) i32() int32 {
	return int32(f.u32())
}

func (f *fieldReader) u64() uint64 {
	if f.err != nil {
		return 0
	}
	v, err := f.c.ReadUint64()
	f.fail(err)
	return v
}

func (f *fieldReader) f32() float32 {
	if f.err != nil {
		return 0
	}
	v, err := f.c.ReadFloat32()
	f.fail(err)
	return v
}

func (f *fieldReader) vec3() [3]float32 {
	return [3]float32{f.f32(), f.f32(), f.f32()}
}

// bytes returns a copy of the next n bytes.
func (f *fieldReader) bytes(n int) []byte {
	if f.err != nil {
		return nil
	}
	b, err := f.c.ReadBytes(n)
	f.fail(err)
	return bytes.Clone(b)
}

// rest returns a copy of the unread bytes.
func (f *fieldReader) rest() []byte {
	return f.bytes(f.c.Remaining())
}

func (f *fieldReader) skip(n int) {
	if f.err != nil {
		return
	}
	f.fail(f.c.Skip(n))
}

func (f *fieldReader) skipRest() {
	f.skip(f.c.Remaining())
}

// fixed reads an n-byte string field, cut at the first NUL.
func (f *fieldReader) fixed(n int) string {
	if f.err != nil {
		return ""
	}
	s, err := f.c.ReadFixedString(n)
	f.fail(err)
	return f.text(s)
}

// str reads the rest of the sub-record as a string, cut at the first NUL.
func (f *fieldReader) str() string {
	return f.fixed(f.c.Remaining())
}

// text converts a raw code page string to UTF-8.
func (f *fieldReader) text(s string) string {
	if f.dec == nil || isASCII(s) {
		return s
	}
	out, err := f.dec.String(s)
	if err != nil {
		f.fail(fmt.Errorf("decode %s text: %w", f.tag, err))
		return ""
	}
	return out
}

// list reads the rest of the sub-record as NUL-separated strings.
func (f *fieldReader) list() []string {
	raw := strings.TrimRight(string(f.rest()), "\x00")
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, "\x00")
	for i, p := range parts {
		parts[i] = f.text(p)
	}
	return parts
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
