// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

package testutil

import (
	"bytes"
	"encoding/binary"
	"math"
)

// Subrecord is one tagged field of a synthetic record.
type Subrecord struct {
	Tag  string
	Data []byte
}

// Sub returns a sub-record with the given tag and body.
func Sub(tag string, data []byte) Subrecord {
	return Subrecord{Tag: tag, Data: data}
}

// Zstring returns s followed by a NUL byte, the usual string sub-record body.
func Zstring(s string) []byte {
	return append([]byte(s), 0)
}

// Record encodes a record whose declared size matches its sub-records.
func Record(tag string, subs ...Subrecord) []byte {
	return RecordWithFlags(tag, 0, subs...)
}

// RecordWithFlags encodes a record with a header flags word.
func RecordWithFlags(tag string, flags uint32, subs ...Subrecord) []byte {
	body := Body(subs...)
	return RawRecord(tag, uint32(len(body)), flags, body)
}

// Body encodes sub-records back to back.
func Body(subs ...Subrecord) []byte {
	var body bytes.Buffer
	for _, s := range subs {
		body.Write(tag4(s.Tag))
		writeLE(&body, uint32(len(s.Data)))
		body.Write(s.Data)
	}
	return body.Bytes()
}

// RawRecord encodes a record header with an explicit declared size followed by body.
// The size need not match len(body).
func RawRecord(tag string, size, flags uint32, body []byte) []byte {
	var out bytes.Buffer
	out.Write(tag4(tag))
	writeLE(&out, size)
	writeLE(&out, uint32(0))
	writeLE(&out, flags)
	out.Write(body)
	return out.Bytes()
}

// Stream concatenates encoded records.
func Stream(records ...[]byte) []byte {
	return bytes.Join(records, nil)
}

func tag4(tag string) []byte {
	b := make([]byte, 4)
	copy(b, tag)
	return b
}

// Fields builds little-endian sub-record bodies.
type Fields struct {
	buf bytes.Buffer
}

// LE returns an empty field builder.
func LE() *Fields {
	return &Fields{}
}

func (f *Fields) U8(v uint8) *Fields   { f.buf.WriteByte(v); return f }
func (f *Fields) I8(v int8) *Fields    { f.buf.WriteByte(byte(v)); return f }
func (f *Fields) U16(v uint16) *Fields { writeLE(&f.buf, v); return f }
func (f *Fields) I16(v int16) *Fields  { writeLE(&f.buf, v); return f }
func (f *Fields) U32(v uint32) *Fields { writeLE(&f.buf, v); return f }
func (f *Fields) I32(v int32) *Fields  { writeLE(&f.buf, v); return f }
func (f *Fields) U64(v uint64) *Fields { writeLE(&f.buf, v); return f }

func (f *Fields) F32(v float32) *Fields {
	writeLE(&f.buf, math.Float32bits(v))
	return f
}

// Fixed writes s padded with NULs, or truncated, to exactly n bytes.
func (f *Fields) Fixed(s string, n int) *Fields {
	b := make([]byte, n)
	copy(b, s)
	f.buf.Write(b)
	return f
}

// Raw writes b unchanged.
func (f *Fields) Raw(b []byte) *Fields {
	f.buf.Write(b)
	return f
}

// Zeros writes n zero bytes.
func (f *Fields) Zeros(n int) *Fields {
	f.buf.Write(make([]byte, n))
	return f
}

// Bytes returns the encoded body.
func (f *Fields) Bytes() []byte {
	return bytes.Clone(f.buf.Bytes())
}

// PutUint32 overwrites a little-endian word at off, for corrupting fixtures.
func PutUint32(b []byte, off int, v uint32) {
	binary.LittleEndian.PutUint32(b[off:], v)
}
