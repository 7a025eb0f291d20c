// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

/*
Package esm decodes ESM/ESP record databases, the flat streams of tagged
records that describe the game world.

# Layout

A database is a run of records to the end of the file. All integers are
little-endian:

	[4]byte   record tag, e.g. "NPC_"
	uint32    body size
	uint32    unknown
	uint32    flags
	...       body: a run of sub-records

	[4]byte   sub-record tag, e.g. "NAME"
	uint32    sub-record size
	...       sub-record data

# Basic Usage

	db, err := esm.ReadFile("Morrowind.esm")
	if err != nil {
		log.Fatal(err)
	}

	for _, npc := range esm.RecordsOf[*esm.NPC](db) {
		fmt.Println(npc.ID, npc.Name)
	}

	if cell, ok := db.ExteriorCell(esm.GridCoord{X: -2, Y: -9}); ok {
		fmt.Println(len(cell.References), "references")
	}

# Strictness

Every record body must decode to exactly its declared size, and every
sub-record to exactly its own. Any mismatch aborts the read with a
[*FormatViolationError]; a stream that ends inside a record header or body
fails with [ErrMalformed].

Record kinds and sub-records the package does not know are skipped by their
declared size and reported once per read through [WithDiagnostics] and the
debug log.

# Text

String fields use a legacy single-byte code page. They are converted to
UTF-8 with Windows-1252 unless [WithEncoding] names another.
*/
package esm
