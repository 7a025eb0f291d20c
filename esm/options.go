// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

package esm

import (
	"log/slog"

	"golang.org/x/text/encoding"
)

// DiagnosticKind classifies a Diagnostic.
type DiagnosticKind int

const (
	// UnknownRecord reports a top-level tag with no decoder. The record was skipped.
	UnknownRecord DiagnosticKind = iota + 1

	// UnknownSubrecord reports a sub-record tag the record kind does not decode.
	// The sub-record was skipped.
	UnknownSubrecord
)

func (k DiagnosticKind) String() string {
	switch k {
	case UnknownRecord:
		return "unknown record"
	case UnknownSubrecord:
		return "unknown sub-record"
	default:
		return "unknown diagnostic"
	}
}

// Diagnostic describes non-fatal content the reader skipped. Each distinct
// record tag, or (record tag, sub-record tag) pair, is reported once per read.
type Diagnostic struct {
	Kind      DiagnosticKind
	Record    Tag
	Subrecord Tag // Zero for UnknownRecord
	Offset    int // Stream offset of the first occurrence
	Size      uint32
}

// Option configures a read.
type Option func(*reader)

// WithLogger sets the logger used for diagnostics and load summaries.
// The default discards all output.
func WithLogger(logger *slog.Logger) Option {
	return func(r *reader) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithDiagnostics registers a callback that receives each first-time
// Diagnostic in stream order.
func WithDiagnostics(fn func(Diagnostic)) Option {
	return func(r *reader) {
		r.diagnostics = fn
	}
}

// WithEncoding sets the code page of string fields. The default is
// Windows-1252; localized data sets use Windows-1250 or Windows-1251.
// A nil encoding keeps bytes as-is.
func WithEncoding(enc encoding.Encoding) Option {
	return func(r *reader) {
		r.encoding = enc
	}
}
