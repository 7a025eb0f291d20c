// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

package bsa

import "log/slog"

// Option configures an Archive.
type Option func(*Archive)

// WithLogger sets the logger used for load diagnostics.
// The default discards all output.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Archive) {
		if logger != nil {
			a.logger = logger
		}
	}
}
