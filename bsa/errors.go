// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

package bsa

import "errors"

var (
	// ErrMalformed is returned when the header or tables are truncated or inconsistent.
	ErrMalformed = errors.New("bsa: malformed archive")

	// ErrNotFound is returned when a path is not in the archive.
	ErrNotFound = errors.New("bsa: file not found")

	// ErrHashCollision is returned when two distinct paths share a stored hash.
	ErrHashCollision = errors.New("bsa: hash collision")

	// ErrClosed is returned by operations on a closed archive.
	ErrClosed = errors.New("bsa: archive closed")
)
