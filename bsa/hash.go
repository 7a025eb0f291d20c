// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

package bsa

import (
	"fmt"
	"math/bits"
	"strings"
)

// Hash is the two-word path hash stored in the archive hash table.
type Hash struct {
	Low  uint32 // Hash of the first half of the normalized path
	High uint32 // Hash of the second half of the normalized path
}

// String returns the hash as 16 hex digits, high word first.
func (h Hash) String() string {
	return fmt.Sprintf("%08x%08x", h.High, h.Low)
}

// NormalizePath converts a path to the form the hash is computed over:
// ASCII lowercase with backslash separators. Bytes above 0x7F are kept as-is.
func NormalizePath(path string) string {
	return strings.ReplaceAll(asciiLower(path), "/", "\\")
}

// asciiLower lowercases A-Z and leaves every other byte unchanged.
func asciiLower(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch >= 'A' && ch <= 'Z' {
			ch += 'a' - 'A'
		}
		b.WriteByte(ch)
	}
	return b.String()
}

// HashPath computes the archive hash of a path.
// The path is normalized first, so "Meshes/A.nif" and "meshes\\a.nif" hash equally.
func HashPath(path string) Hash {
	return hashNormalized(NormalizePath(path))
}

// hashNormalized hashes an already normalized path.
func hashNormalized(s string) Hash {
	var h Hash
	half := len(s) >> 1

	var sum, off uint32
	for i := 0; i < half; i++ {
		sum ^= uint32(s[i]) << (off & 0x1F)
		off += 8
	}
	h.Low = sum

	sum, off = 0, 0
	for i := half; i < len(s); i++ {
		temp := uint32(s[i]) << (off & 0x1F)
		sum ^= temp
		sum = bits.RotateLeft32(sum, -int(temp&0x1F))
		off += 8
	}
	h.High = sum

	return h
}
