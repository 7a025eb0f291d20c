// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

/*
Package tes3 provides pure Go access to the data files of a TES3-era game:
BSA archives holding assets and ESM/ESP databases holding records.

A data set is one or more sources, each an archive, a record database, or
both. Sources are listed in order of increasing priority, the way a game
loads its master file before its expansions and plugins.

# Features

  - Pure Go, read-only, everything decoded up front into memory
  - Bit-exact BSA path hashing with case- and slash-insensitive lookups
  - Strict record decoding that rejects any body not consumed exactly
  - Typed records for every record kind of the format
  - Optional concurrent loading of independent sources

# Basic Usage

	data, err := tes3.Open([]tes3.SourceSpec{
		{Name: "Morrowind", ArchivePath: "Morrowind.bsa", DatabasePath: "Morrowind.esm"},
		{Name: "Tribunal", ArchivePath: "Tribunal.bsa", DatabasePath: "Tribunal.esm"},
	})
	if err != nil {
		log.Fatal(err)
	}
	defer data.Close()

	if cell, ok := data.ExteriorCell(-2, -9); ok {
		fmt.Println(cell.ID, len(cell.References))
	}

	sky, err := data.LoadBytes("tx_sky_clear.tga")

# Priority

A later source overrides an earlier one. RecordByID, ExteriorCell,
Landscape and LoadBytes answer from the highest-priority source that has a
match. Records and RecordsOfKind return the records of every source, earliest
source first.

# Path Rewrites

Records often name textures without their directory or with an extension
that differs from the packed file. LoadBytes tries, in order, the path as
given, the path under textures/, and both of those with the extension
replaced by .dds and then .tga.

# Packages

To read a single file without a data set, use the archive reader in
[github.com/suprsokr/go-tes3/bsa] or the record reader in
[github.com/suprsokr/go-tes3/esm].
*/
package tes3
