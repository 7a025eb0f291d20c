// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

package esm

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"github.com/suprsokr/go-tes3/internal/cursor"
)

// reader holds the state of one decoding pass.
type reader struct {
	logger      *slog.Logger
	diagnostics func(Diagnostic)
	encoding    encoding.Encoding

	dec      *encoding.Decoder
	reported map[diagnosticKey]struct{}
	topic    string // ID of the last DIAL, owner of following INFOs
}

type diagnosticKey struct {
	record, sub Tag
}

func newReader(opts ...Option) *reader {
	r := &reader{
		logger:   slog.New(discardHandler{}),
		encoding: charmap.Windows1252,
		reported: make(map[diagnosticKey]struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.encoding != nil {
		r.dec = r.encoding.NewDecoder()
	}
	return r
}

// ReadFile reads and decodes a record database file.
func ReadFile(path string, opts ...Option) (*Database, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	return Read(data, opts...)
}

// Read decodes every record of a database. It either decodes the whole
// stream or returns an error; no partial database is returned. Records of
// unknown kinds are skipped.
//
// Decoded records do not reference data, so the caller may reuse it.
func Read(data []byte, opts ...Option) (*Database, error) {
	r := newReader(opts...)
	db := newDatabase()
	c := cursor.New(data)
	for !c.EOF() {
		offset := c.Pos()
		h, err := readRecordHeader(c)
		if err != nil {
			return nil, fmt.Errorf("%w: record header at offset %d: %w", ErrMalformed, offset, err)
		}
		if uint64(h.DataSize) > uint64(c.Remaining()) {
			return nil, fmt.Errorf("%w: %s record at offset %d: body of %d bytes exceeds %d remaining",
				ErrMalformed, h.Tag, offset, h.DataSize, c.Remaining())
		}
		body, err := c.Sub(int(h.DataSize))
		if err != nil {
			return nil, fmt.Errorf("%w: %s record at offset %d: %w", ErrMalformed, h.Tag, offset, err)
		}

		rec := newRecord(h.Tag)
		if rec == nil {
			r.report(Diagnostic{Kind: UnknownRecord, Record: h.Tag, Offset: offset, Size: h.DataSize})
			continue
		}
		if err := r.decodeBody(rec, h, offset, body); err != nil {
			return nil, err
		}
		switch v := rec.(type) {
		case *Dialogue:
			r.topic = v.ID
		case *Info:
			v.Topic = r.topic
		}
		db.add(rec)
	}
	r.logger.Debug("read record stream",
		slog.Int("bytes", len(data)),
		slog.Int("records", db.Len()),
		slog.Int("skipped_tags", len(r.reported)))
	return db, nil
}

// decodeBody decodes the sub-records of one record. body spans exactly the
// declared DataSize.
func (r *reader) decodeBody(rec Record, h RecordHeader, offset int, body *cursor.Cursor) error {
	base := rec.Meta()
	base.Header = h
	base.Offset = offset
	base.Deleted = h.Flags&FlagDeleted != 0

	bodyStart := offset + recordHeaderSize
	bodyEnd := bodyStart + body.Len()
	for !body.EOF() {
		subStart := body.Pos()
		sh, err := readSubrecordHeader(body)
		if err != nil {
			return &FormatViolationError{
				Tag:      h.Tag,
				Offset:   offset,
				Expected: bodyEnd,
				Actual:   bodyStart + subStart,
				Err:      err,
			}
		}
		dataStart := bodyStart + body.Pos()
		if uint64(sh.DataSize) > uint64(body.Remaining()) {
			return &FormatViolationError{
				Tag:      h.Tag,
				Offset:   offset,
				Subtag:   sh.Tag,
				Expected: bodyEnd,
				Actual:   dataStart + int(sh.DataSize),
				Err:      cursor.ErrOutOfBounds,
			}
		}
		data, _ := body.Sub(int(sh.DataSize))

		f := &fieldReader{tag: sh.Tag, c: data, dec: r.dec}
		if !r.decodeField(rec, base, f) {
			r.report(Diagnostic{
				Kind:      UnknownSubrecord,
				Record:    h.Tag,
				Subrecord: sh.Tag,
				Offset:    bodyStart + subStart,
				Size:      sh.DataSize,
			})
			f.skipRest()
		}
		if f.err != nil || !data.EOF() {
			return &FormatViolationError{
				Tag:      h.Tag,
				Offset:   offset,
				Subtag:   sh.Tag,
				Expected: dataStart + data.Len(),
				Actual:   dataStart + data.Pos(),
				Err:      f.err,
			}
		}
	}
	if pos := bodyStart + body.Pos(); pos != bodyEnd {
		return &FormatViolationError{Tag: h.Tag, Offset: offset, Expected: bodyEnd, Actual: pos}
	}
	return nil
}

// decodeField offers one sub-record to the record kind, then to the common
// fields. A handler that declines must not have consumed anything, but the
// cursor is rewound regardless.
func (r *reader) decodeField(rec Record, base *Base, f *fieldReader) bool {
	if rec.decodeField(f) {
		return true
	}
	f.err = nil
	_ = f.c.Seek(0)
	return base.decodeCommon(f)
}

// report delivers a diagnostic the first time its tags are seen.
func (r *reader) report(d Diagnostic) {
	key := diagnosticKey{record: d.Record, sub: d.Subrecord}
	if _, ok := r.reported[key]; ok {
		return
	}
	r.reported[key] = struct{}{}

	attrs := []any{
		slog.String("record", d.Record.String()),
		slog.Int("offset", d.Offset),
		slog.Uint64("size", uint64(d.Size)),
	}
	if d.Kind == UnknownSubrecord {
		attrs = append(attrs, slog.String("subrecord", d.Subrecord.String()))
	}
	r.logger.Debug("skipping "+d.Kind.String(), attrs...)

	if r.diagnostics != nil {
		r.diagnostics(d)
	}
}

// discardHandler discards all log output, matching slog.DiscardHandler
// (Go 1.24+), which is unavailable on the module's minimum Go version.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }
