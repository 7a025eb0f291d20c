// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

package tes3

import (
	"context"
	"log/slog"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"github.com/suprsokr/go-tes3/bsa"
	"github.com/suprsokr/go-tes3/esm"
)

// Option configures how sources are loaded.
type Option func(*config)

type config struct {
	logger      *slog.Logger
	encoding    encoding.Encoding
	diagnostics func(source string, d esm.Diagnostic)
	concurrency int
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		logger:      slog.New(discardHandler{}),
		encoding:    charmap.Windows1252,
		concurrency: 1,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithLogger sets the logger handed to the archive and record readers.
// The default discards all output.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithEncoding sets the code page of record string fields.
// The default is Windows-1252.
func WithEncoding(enc encoding.Encoding) Option {
	return func(c *config) {
		c.encoding = enc
	}
}

// WithDiagnostics registers a callback for skipped record content.
// It receives the name of the source being read. With more than one load
// running at a time the callback may be called concurrently.
func WithDiagnostics(fn func(source string, d esm.Diagnostic)) Option {
	return func(c *config) {
		c.diagnostics = fn
	}
}

// WithLoadConcurrency sets how many sources Open loads at once.
// Values below 1 are ignored. The default is 1.
func WithLoadConcurrency(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

func (c *config) archiveOptions(source string) []bsa.Option {
	return []bsa.Option{bsa.WithLogger(c.logger.With(slog.String("source", source)))}
}

func (c *config) databaseOptions(source string) []esm.Option {
	opts := []esm.Option{
		esm.WithLogger(c.logger.With(slog.String("source", source))),
		esm.WithEncoding(c.encoding),
	}
	if fn := c.diagnostics; fn != nil {
		opts = append(opts, esm.WithDiagnostics(func(d esm.Diagnostic) {
			fn(source, d)
		}))
	}
	return opts
}

// discardHandler discards all log output, matching slog.DiscardHandler
// (Go 1.24+), which is unavailable on the module's minimum Go version.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }
