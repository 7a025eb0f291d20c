// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

package esm

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformed is returned when the stream is truncated: a record header
	// or body runs past the end of the buffer.
	ErrMalformed = errors.New("esm: malformed record stream")

	// ErrFormatViolation matches every *FormatViolationError.
	ErrFormatViolation = errors.New("esm: format violation")
)

// FormatViolationError reports a record whose body did not decode to exactly
// its declared size. Decoding stops at the first violation.
type FormatViolationError struct {
	Tag      Tag   // Record kind
	Offset   int   // Stream offset of the record header
	Subtag   Tag   // Sub-record being decoded, zero if the record boundary itself failed
	Expected int   // Position the decoder should have reached
	Actual   int   // Position the decoder reached
	Err      error // Underlying read error, if any
}

func (e *FormatViolationError) Error() string {
	msg := fmt.Sprintf("esm: %s record at offset %d", e.Tag, e.Offset)
	if e.Subtag != 0 {
		msg += fmt.Sprintf(", sub-record %s", e.Subtag)
	}
	msg += fmt.Sprintf(": expected position %d, got %d", e.Expected, e.Actual)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FormatViolationError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrFormatViolation}
	}
	return []error{ErrFormatViolation, e.Err}
}
