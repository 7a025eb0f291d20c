// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

package esm

import (
	"slices"
	"strings"
)

// Database holds the records of one stream and the indices built over them.
// It is read-only once Read returns and safe for concurrent lookups.
//
// Every index resolves duplicate keys by keeping the later record in stream
// order.
type Database struct {
	records   []Record
	byKind    map[Tag][]Record
	byID      map[string]Record
	exterior  map[GridCoord]*Cell
	landscape map[GridCoord]*Land
	header    *FileHeader
}

func newDatabase() *Database {
	return &Database{
		byKind:    make(map[Tag][]Record),
		byID:      make(map[string]Record),
		exterior:  make(map[GridCoord]*Cell),
		landscape: make(map[GridCoord]*Land),
	}
}

// add appends a record and updates the indices.
func (db *Database) add(rec Record) {
	db.records = append(db.records, rec)
	kind := rec.Kind()
	db.byKind[kind] = append(db.byKind[kind], rec)

	if id := rec.Meta().ID; id != "" {
		db.byID[normalizeID(id)] = rec
	}

	switch v := rec.(type) {
	case *FileHeader:
		if db.header == nil {
			db.header = v
		}
	case *Cell:
		if !v.Interior() {
			db.exterior[v.Grid] = v
		}
	case *Land:
		db.landscape[v.Grid] = v
	}
}

// IDs are case-insensitive.
func normalizeID(id string) string {
	return strings.ToLower(id)
}

// Header returns the leading TES3 record, or nil if the stream had none.
func (db *Database) Header() *FileHeader {
	return db.header
}

// Len returns the number of decoded records.
func (db *Database) Len() int {
	return len(db.records)
}

// Records returns every decoded record in stream order.
func (db *Database) Records() []Record {
	return slices.Clone(db.records)
}

// RecordsOfKind returns the records with the given tag in stream order.
func (db *Database) RecordsOfKind(kind Tag) []Record {
	return slices.Clone(db.byKind[kind])
}

// Kinds returns the tags that have at least one record, sorted.
func (db *Database) Kinds() []Tag {
	kinds := make([]Tag, 0, len(db.byKind))
	for k := range db.byKind {
		kinds = append(kinds, k)
	}
	slices.SortFunc(kinds, func(a, b Tag) int {
		return strings.Compare(a.String(), b.String())
	})
	return kinds
}

// RecordsOf returns the records of kind T in stream order.
//
//	cells := esm.RecordsOf[*esm.Cell](db)
func RecordsOf[T Record](db *Database) []T {
	var zero T
	recs := db.byKind[zero.Kind()]
	out := make([]T, 0, len(recs))
	for _, rec := range recs {
		if v, ok := rec.(T); ok {
			out = append(out, v)
		}
	}
	return out
}

// ByID returns the last record with the given ID, compared case-insensitively.
func (db *Database) ByID(id string) (Record, bool) {
	rec, ok := db.byID[normalizeID(id)]
	return rec, ok
}

// ExteriorCell returns the exterior cell at the grid coordinate.
func (db *Database) ExteriorCell(grid GridCoord) (*Cell, bool) {
	cell, ok := db.exterior[grid]
	return cell, ok
}

// Landscape returns the terrain of the grid coordinate.
func (db *Database) Landscape(grid GridCoord) (*Land, bool) {
	land, ok := db.landscape[grid]
	return land, ok
}

// Close drops the records and indices. Lookups on a closed database find
// nothing.
func (db *Database) Close() error {
	db.records = nil
	db.byKind = nil
	db.byID = nil
	db.exterior = nil
	db.landscape = nil
	db.header = nil
	return nil
}
