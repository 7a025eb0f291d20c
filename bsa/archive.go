// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

package bsa

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/suprsokr/go-tes3/internal/cursor"
)

// Entry describes one file stored in the archive.
type Entry struct {
	Path   string // Virtual path with forward slashes, as stored
	Size   uint32 // Payload size in bytes
	Offset uint32 // Payload offset, relative to the payload section
	Hash   Hash   // Stored path hash
}

// Archive is a decoded BSA archive held in memory.
// It is read-only after New returns. Lookups and extraction are safe for
// concurrent use between New and Close; Close must not run concurrently
// with them.
type Archive struct {
	data       []byte
	header     *archiveHeader
	entries    []Entry
	lookup     map[Hash]int
	root       *Node
	payloadPos int
	logger     *slog.Logger
}

// Open reads the archive at path into memory and decodes its tables.
func Open(path string, opts ...Option) (*Archive, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	a, err := New(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return a, nil
}

// New decodes an archive from data. The archive keeps a reference to data;
// callers must not modify it afterwards.
func New(data []byte, opts ...Option) (*Archive, error) {
	a := &Archive{
		data:   data,
		logger: slog.New(discardHandler{}),
	}
	for _, opt := range opts {
		opt(a)
	}

	if err := a.load(); err != nil {
		return nil, err
	}
	return a, nil
}

// load parses the header, the size/offset table, the name offsets, the names
// and the hash table, in that order, then builds the lookup table and tree.
func (a *Archive) load() error {
	c := cursor.New(a.data)

	header, err := readArchiveHeader(c)
	if err != nil {
		return fmt.Errorf("%w: read header: %w", ErrMalformed, err)
	}
	if err := header.validate(len(a.data)); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	count := int(header.FileCount)
	hashPos := header.hashTablePos()

	// Size/offset table
	entries := make([]Entry, count)
	for i := range entries {
		if entries[i].Size, err = c.ReadUint32(); err != nil {
			return fmt.Errorf("%w: read file record %d: %w", ErrMalformed, i, err)
		}
		if entries[i].Offset, err = c.ReadUint32(); err != nil {
			return fmt.Errorf("%w: read file record %d: %w", ErrMalformed, i, err)
		}
	}

	// Name offset table
	nameOffsets := make([]uint32, count)
	for i := range nameOffsets {
		if nameOffsets[i], err = c.ReadUint32(); err != nil {
			return fmt.Errorf("%w: read name offset %d: %w", ErrMalformed, i, err)
		}
	}

	// Names, each bounded by the start of the hash table
	namesPos := c.Pos()
	for i := range entries {
		pos := namesPos + int(nameOffsets[i])
		if pos >= hashPos {
			return fmt.Errorf("%w: name %d at %d is past the name section end %d", ErrMalformed, i, pos, hashPos)
		}
		if err := c.Seek(pos); err != nil {
			return fmt.Errorf("%w: seek to name %d: %w", ErrMalformed, i, err)
		}
		name, err := c.ReadTerminatedString(hashPos - pos)
		if err != nil {
			return fmt.Errorf("%w: read name %d: %w", ErrMalformed, i, err)
		}
		entries[i].Path = strings.ReplaceAll(name, "\\", "/")
	}

	// Hash table
	if err := c.Seek(hashPos); err != nil {
		return fmt.Errorf("%w: seek to hash table: %w", ErrMalformed, err)
	}
	for i := range entries {
		if entries[i].Hash.Low, err = c.ReadUint32(); err != nil {
			return fmt.Errorf("%w: read hash %d: %w", ErrMalformed, i, err)
		}
		if entries[i].Hash.High, err = c.ReadUint32(); err != nil {
			return fmt.Errorf("%w: read hash %d: %w", ErrMalformed, i, err)
		}
	}

	lookup, err := a.buildLookup(entries)
	if err != nil {
		return err
	}

	a.header = header
	a.entries = entries
	a.lookup = lookup
	a.payloadPos = header.payloadPos()
	a.root = buildTree(entries)
	for _, n := range fileDirs(a.root) {
		a.logger.Warn("file path is also a directory, hidden from the fs view",
			slog.String("path", n.Entry.Path))
	}

	a.logger.Debug("archive loaded",
		slog.Int("files", count),
		slog.String("version", fmt.Sprintf("%x", header.Version[:])),
		slog.Int("payload_offset", a.payloadPos))
	return nil
}

// buildLookup keys entries by stored hash. Distinct paths sharing a hash are
// rejected; a path listed twice resolves to its last entry.
func (a *Archive) buildLookup(entries []Entry) (map[Hash]int, error) {
	lookup := make(map[Hash]int, len(entries))
	for i, e := range entries {
		if computed := HashPath(e.Path); computed != e.Hash {
			a.logger.Warn("stored hash does not match path",
				slog.String("path", e.Path),
				slog.String("stored", e.Hash.String()),
				slog.String("computed", computed.String()))
		}
		if j, ok := lookup[e.Hash]; ok {
			prev := entries[j].Path
			if NormalizePath(prev) != NormalizePath(e.Path) {
				return nil, fmt.Errorf("%w: %q and %q share hash %s", ErrHashCollision, prev, e.Path, e.Hash)
			}
			a.logger.Warn("duplicate archive path, keeping last",
				slog.String("path", e.Path),
				slog.Int("first", j),
				slog.Int("last", i))
		}
		lookup[e.Hash] = i
	}
	return lookup, nil
}

// Version returns the 4-byte version tag from the header.
func (a *Archive) Version() [4]byte {
	return a.header.Version
}

// Len returns the number of entries in the archive.
func (a *Archive) Len() int {
	return len(a.entries)
}

// Entries returns a copy of the entry table in archive order.
func (a *Archive) Entries() []Entry {
	out := make([]Entry, len(a.entries))
	copy(out, a.entries)
	return out
}

// Root returns the root of the virtual directory tree.
func (a *Archive) Root() *Node {
	return a.root
}

// Entry returns the entry stored under path.
// The path may use either slash style and any case.
func (a *Archive) Entry(path string) (Entry, bool) {
	i, ok := a.lookup[HashPath(path)]
	if !ok {
		return Entry{}, false
	}
	return a.entries[i], true
}

// Contains returns true if the archive has an entry for path.
func (a *Archive) Contains(path string) bool {
	_, ok := a.lookup[HashPath(path)]
	return ok
}

// Extract returns a copy of the payload stored under path.
func (a *Archive) Extract(path string) ([]byte, error) {
	e, ok := a.Entry(path)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	return a.ExtractEntry(e)
}

// ExtractEntry returns a copy of the payload of an already resolved entry.
func (a *Archive) ExtractEntry(e Entry) ([]byte, error) {
	if a.data == nil {
		return nil, ErrClosed
	}

	c := cursor.New(a.data)
	if err := c.Seek(a.payloadPos + int(e.Offset)); err != nil {
		return nil, fmt.Errorf("%w: seek to %s: %w", ErrMalformed, e.Path, err)
	}
	payload, err := c.ReadBytes(int(e.Size))
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrMalformed, e.Path, err)
	}
	return bytes.Clone(payload), nil
}

// Close releases the archive buffer. Entry metadata stays available;
// extraction fails with ErrClosed.
func (a *Archive) Close() error {
	a.data = nil
	return nil
}

// discardHandler discards all log output, matching slog.DiscardHandler
// (Go 1.24+), which is unavailable on the module's minimum Go version.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }
