// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

package tes3

import (
	"fmt"
	"log/slog"
	"path"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/encoding"

	"github.com/suprsokr/go-tes3/bsa"
	"github.com/suprsokr/go-tes3/esm"
)

// Data is a prioritized list of sources. Later sources override earlier
// ones: a lookup answers from the last source that has the file or record.
// Data is read-only after construction and safe for concurrent lookups
// until Close.
type Data struct {
	sources   []*Source
	fileMap   map[bsa.Hash]int    // path hash -> index of the highest-priority source
	encodings []encoding.Encoding // distinct code pages of the sources
	closed    bool
	logger    *slog.Logger
}

// Open loads the sources in order of increasing priority. Independent
// sources are loaded concurrently up to the WithLoadConcurrency limit. If
// any source fails, every loaded source is closed and no Data is returned.
func Open(specs []SourceSpec, opts ...Option) (*Data, error) {
	cfg := newConfig(opts...)
	sources := make([]*Source, len(specs))

	var g errgroup.Group
	g.SetLimit(cfg.concurrency)
	for i, spec := range specs {
		i, spec := i, spec
		g.Go(func() error {
			src, err := openSource(spec, cfg)
			if err != nil {
				return fmt.Errorf("open source %s: %w", spec.Name, err)
			}
			sources[i] = src
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		for _, src := range sources {
			if src != nil {
				_ = src.Close()
			}
		}
		return nil, err
	}
	return newData(sources, cfg.logger), nil
}

// New composes already loaded sources, in order of increasing priority.
func New(sources ...*Source) *Data {
	return newData(sources, slog.New(discardHandler{}))
}

func newData(sources []*Source, logger *slog.Logger) *Data {
	d := &Data{
		sources: sources,
		logger:  logger,
	}
	for _, src := range sources {
		if src.encoding != nil && !slices.Contains(d.encodings, src.encoding) {
			d.encodings = append(d.encodings, src.encoding)
		}
	}
	d.buildFileMap()
	return d
}

// buildFileMap maps every archive path to the source that serves it.
func (d *Data) buildFileMap() {
	d.fileMap = make(map[bsa.Hash]int)

	// Highest priority first, so earlier sources never replace a mapping.
	for i := len(d.sources) - 1; i >= 0; i-- {
		archive := d.sources[i].Archive
		if archive == nil {
			continue
		}
		for _, e := range archive.Entries() {
			if _, exists := d.fileMap[e.Hash]; !exists {
				d.fileMap[e.Hash] = i
			}
		}
	}
	d.logger.Debug("built file map",
		slog.Int("sources", len(d.sources)),
		slog.Int("files", len(d.fileMap)))
}

// Close closes every source. Afterwards HasFile reports false, ListFiles is
// empty and LoadBytes fails with ErrClosed.
func (d *Data) Close() error {
	d.closed = true
	d.fileMap = nil

	var firstErr error
	for _, src := range d.sources {
		if err := src.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Sources returns the sources in order of increasing priority.
func (d *Data) Sources() []*Source {
	out := make([]*Source, len(d.sources))
	copy(out, d.sources)
	return out
}

// HasFile returns true if any source's archive contains path.
func (d *Data) HasFile(p string) bool {
	_, _, ok := d.lookup(p)
	return ok
}

// lookup returns the archive name and source index serving p. It tries p
// encoded with each source code page, then p as given.
func (d *Data) lookup(p string) (string, int, bool) {
	for _, enc := range d.encodings {
		name, err := enc.NewEncoder().String(p)
		if err != nil || name == p {
			continue
		}
		if i, ok := d.fileMap[bsa.HashPath(name)]; ok {
			return name, i, true
		}
	}
	i, ok := d.fileMap[bsa.HashPath(p)]
	return p, i, ok
}

// LoadBytes returns the highest-priority payload stored under p. If p itself
// is absent it tries, in order, p under textures/, then both of those with
// the extension replaced by .dds and by .tga. It returns ErrNotFound when
// no candidate exists. Paths taken from records are matched against archive
// names in the source code page.
func (d *Data) LoadBytes(p string) ([]byte, error) {
	if d.closed {
		return nil, ErrClosed
	}
	for _, candidate := range candidatePaths(p) {
		name, i, ok := d.lookup(candidate)
		if !ok {
			continue
		}
		data, err := d.sources[i].Archive.Extract(name)
		if err != nil {
			return nil, fmt.Errorf("load %s from %s: %w", candidate, d.sources[i].Name, err)
		}
		if candidate != p {
			d.logger.Debug("resolved path",
				slog.String("path", p),
				slog.String("candidate", candidate))
		}
		return data, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, p)
}

const texturesDir = "textures/"

// Extensions tried for textures whose stored format differs from the
// requested one.
var textureExtensions = []string{".dds", ".tga"}

// candidatePaths lists the paths LoadBytes tries for p.
func candidatePaths(p string) []string {
	p = strings.TrimLeft(strings.ReplaceAll(p, "\\", "/"), "/")
	bases := []string{p}
	if !strings.HasPrefix(strings.ToLower(p), texturesDir) {
		bases = append(bases, texturesDir+p)
	}

	candidates := append([]string(nil), bases...)
	for _, base := range bases {
		stem := strings.TrimSuffix(base, path.Ext(base))
		for _, ext := range textureExtensions {
			if c := stem + ext; !strings.EqualFold(c, base) {
				candidates = append(candidates, c)
			}
		}
	}
	return candidates
}

// ListFiles returns the union of archive paths across the sources, each
// once, in source then archive order.
func (d *Data) ListFiles() []string {
	if d.closed {
		return nil
	}
	seen := make(map[bsa.Hash]struct{})
	var result []string
	for _, src := range d.sources {
		if src.Archive == nil {
			continue
		}
		for _, e := range src.Archive.Entries() {
			if _, ok := seen[e.Hash]; ok {
				continue
			}
			seen[e.Hash] = struct{}{}
			result = append(result, e.Path)
		}
	}
	return result
}

// Records returns the records of kind T from every source, in source order
// then stream order.
//
//	doors := tes3.Records[*esm.Door](data)
func Records[T esm.Record](d *Data) []T {
	var out []T
	for _, src := range d.sources {
		if src.Database != nil {
			out = append(out, esm.RecordsOf[T](src.Database)...)
		}
	}
	return out
}

// RecordsOfKind returns the records with the given tag from every source, in
// source order then stream order.
func (d *Data) RecordsOfKind(kind esm.Tag) []esm.Record {
	var out []esm.Record
	for _, src := range d.sources {
		if src.Database != nil {
			out = append(out, src.Database.RecordsOfKind(kind)...)
		}
	}
	return out
}

// RecordByID returns the record with the given ID from the highest-priority
// source that has one.
func (d *Data) RecordByID(id string) (esm.Record, bool) {
	for i := len(d.sources) - 1; i >= 0; i-- {
		if db := d.sources[i].Database; db != nil {
			if rec, ok := db.ByID(id); ok {
				return rec, true
			}
		}
	}
	return nil, false
}

// ExteriorCell returns the exterior cell at grid (x, y) from the
// highest-priority source that has one.
func (d *Data) ExteriorCell(x, y int32) (*esm.Cell, bool) {
	grid := esm.GridCoord{X: x, Y: y}
	for i := len(d.sources) - 1; i >= 0; i-- {
		if db := d.sources[i].Database; db != nil {
			if cell, ok := db.ExteriorCell(grid); ok {
				return cell, true
			}
		}
	}
	return nil, false
}

// Landscape returns the terrain of grid (x, y) from the highest-priority
// source that has one.
func (d *Data) Landscape(x, y int32) (*esm.Land, bool) {
	grid := esm.GridCoord{X: x, Y: y}
	for i := len(d.sources) - 1; i >= 0; i-- {
		if db := d.sources[i].Database; db != nil {
			if land, ok := db.Landscape(grid); ok {
				return land, true
			}
		}
	}
	return nil, false
}
