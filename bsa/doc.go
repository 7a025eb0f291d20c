// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

/*
Package bsa reads BSA packed-file archives, the asset containers shipped with
the game alongside its record databases.

An archive is loaded fully into memory. Its tables are decoded once; payloads
are sliced out of the buffer on demand.

# Layout

All integers are little-endian:

	[4]byte   version tag
	uint32    hash table offset, relative to the end of this 12-byte header
	uint32    file count
	count ×   (uint32 size, uint32 offset)   offset is relative to the payload section
	count ×   uint32 name offset              relative to the start of the names
	...       NUL-terminated names
	count ×   (uint32 low, uint32 high)      path hash
	...       payloads

# Basic Usage

	archive, err := bsa.Open("Morrowind.bsa")
	if err != nil {
		log.Fatal(err)
	}
	defer archive.Close()

	if archive.Contains("textures/tx_sky_clear.dds") {
		data, err := archive.Extract("textures/tx_sky_clear.dds")
		...
	}

# Path Conventions

Names are stored with backslashes. Entries expose them with forward slashes.
Lookups hash the ASCII-lowercased backslash form, so any case and either slash
style finds the same entry.

# Hash Collisions

Lookups go through the stored hash only. An archive in which two distinct
paths carry the same hash is rejected with [ErrHashCollision].
*/
package bsa
