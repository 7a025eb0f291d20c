// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

package tes3

import (
	"github.com/suprsokr/go-tes3/bsa"
	"github.com/suprsokr/go-tes3/esm"
)

// Errors re-exported from bsa.
var (
	// ErrNotFound is returned when no source has the requested file.
	ErrNotFound = bsa.ErrNotFound

	// ErrMalformedArchive is returned when an archive's header or tables are
	// truncated or inconsistent.
	ErrMalformedArchive = bsa.ErrMalformed

	// ErrHashCollision is returned when two distinct archive paths share a hash.
	ErrHashCollision = bsa.ErrHashCollision

	// ErrClosed is returned when extracting from closed data.
	ErrClosed = bsa.ErrClosed
)

// Errors re-exported from esm.
var (
	// ErrMalformedDatabase is returned when a record stream ends inside a record.
	ErrMalformedDatabase = esm.ErrMalformed

	// ErrFormatViolation is returned when a record body does not decode to
	// exactly its declared size. Use errors.As with *esm.FormatViolationError
	// for the record tag and offset.
	ErrFormatViolation = esm.ErrFormatViolation
)
