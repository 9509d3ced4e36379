// SPDX-License-Identifier: MIT
// Package: csp-json/urbcsp
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • genConfig is the single source of truth for generator knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newGenConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • logger = slog over io.Discard (silent unless a logger is supplied)
//
// None of the knobs influence the drawn instance; the document depends on
// the ParamSet alone.

package urbcsp

import (
	"io"
	"log/slog"
)

// genConfig aggregates all knobs used by Generate.
// It is passed by VALUE (immutable to callers).
type genConfig struct {
	// Structured logger for progress and diagnostics.
	logger *slog.Logger
}

// newGenConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newGenConfig(opts ...Option) genConfig {
	cfg := genConfig{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
