// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

package tes3

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/opencontainers/go-digest"
	"golang.org/x/text/encoding"

	"github.com/suprsokr/go-tes3/bsa"
	"github.com/suprsokr/go-tes3/esm"
)

// SourceSpec names the files of one data source. Either path may be empty.
type SourceSpec struct {
	Name         string
	ArchivePath  string
	DatabasePath string
}

// Source is one loaded data set: an archive, a record database, or both.
type Source struct {
	Name     string
	Archive  *bsa.Archive  // nil if the source has no archive
	Database *esm.Database // nil if the source has no database

	// Content digests of the loaded bytes, empty for a missing part.
	ArchiveDigest  digest.Digest
	DatabaseDigest digest.Digest

	encoding encoding.Encoding // code page of record strings
}

// LoadSource decodes a source from in-memory bytes. A nil slice skips that
// part. The archive keeps a reference to archiveData.
func LoadSource(name string, archiveData, databaseData []byte, opts ...Option) (*Source, error) {
	return loadSource(name, archiveData, databaseData, newConfig(opts...))
}

func loadSource(name string, archiveData, databaseData []byte, cfg *config) (*Source, error) {
	src := &Source{Name: name, encoding: cfg.encoding}
	if archiveData != nil {
		archive, err := bsa.New(archiveData, cfg.archiveOptions(name)...)
		if err != nil {
			return nil, fmt.Errorf("load archive: %w", err)
		}
		src.Archive = archive
		src.ArchiveDigest = digest.FromBytes(archiveData)
	}
	if databaseData != nil {
		db, err := esm.Read(databaseData, cfg.databaseOptions(name)...)
		if err != nil {
			return nil, fmt.Errorf("load database: %w", err)
		}
		src.Database = db
		src.DatabaseDigest = digest.FromBytes(databaseData)
	}

	cfg.logger.Debug("loaded source",
		slog.String("source", name),
		slog.Int("files", src.fileCount()),
		slog.Int("records", src.recordCount()),
		slog.String("archive_digest", src.ArchiveDigest.String()),
		slog.String("database_digest", src.DatabaseDigest.String()))
	return src, nil
}

// openSource reads the files named by spec and decodes them.
func openSource(spec SourceSpec, cfg *config) (*Source, error) {
	var archiveData, databaseData []byte
	var err error
	if spec.ArchivePath != "" {
		if archiveData, err = os.ReadFile(spec.ArchivePath); err != nil {
			return nil, fmt.Errorf("open file: %w", err)
		}
	}
	if spec.DatabasePath != "" {
		if databaseData, err = os.ReadFile(spec.DatabasePath); err != nil {
			return nil, fmt.Errorf("open file: %w", err)
		}
	}
	return loadSource(spec.Name, archiveData, databaseData, cfg)
}

func (s *Source) fileCount() int {
	if s.Archive == nil {
		return 0
	}
	return s.Archive.Len()
}

func (s *Source) recordCount() int {
	if s.Database == nil {
		return 0
	}
	return s.Database.Len()
}

// Close releases the archive buffer and the decoded records.
func (s *Source) Close() error {
	var errs []error
	if s.Archive != nil {
		errs = append(errs, s.Archive.Close())
	}
	if s.Database != nil {
		errs = append(errs, s.Database.Close())
	}
	return errors.Join(errs...)
}
